// Package native is the foreign-call boundary of the native engine.
//
// Kernels are compiled C (builtin, requires cgo). Float matrix and vector products
// can optionally be delegated to a CBLAS shared library (OpenBLAS by default)
// loaded at run time with purego.
//
// Every call passes the layout of an Ndarray view across the boundary unchanged:
// data pointer, dtype code, offset, ndim, shape and strides. Go buffers are only
// referenced for the duration of a call. Operands that BLAS-style kernels cannot
// address directly are copied into C-allocated staging buffers, which are always
// released before the call returns.
package native

import (
	"fmt"
	"log/slog"
	"unsafe"

	"github.com/born-ml/ndarray/internal/ndarray"
	"github.com/pkg/errors"
)

// MaxRank is the highest rank the kernels can walk.
const MaxRank = 32

var (
	// ErrUnavailable is returned by Open when the builtin kernels were not compiled in.
	ErrUnavailable = errors.New("native: library unavailable")

	// ErrNativeFailure is wrapped by every *Error.
	ErrNativeFailure = errors.New("native: call failed")
)

// Status is the code returned by every native entry point.
type Status int

// Native status codes.
const (
	StatusOK Status = iota
	StatusBadDType
	StatusBadArgument
	StatusAllocFailed
	StatusInternal
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusBadDType:
		return "bad dtype"
	case StatusBadArgument:
		return "bad argument"
	case StatusAllocFailed:
		return "allocation failed"
	case StatusInternal:
		return "internal error"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Error is a failed native call.
type Error struct {
	Op     string
	Status Status
}

func (e *Error) Error() string {
	return fmt.Sprintf("native: %s: %s", e.Op, e.Status)
}

// Unwrap makes every native failure match ErrNativeFailure.
func (e *Error) Unwrap() error {
	return ErrNativeFailure
}

func check(op string, s Status) error {
	if s == StatusOK {
		return nil
	}
	return errors.WithStack(&Error{Op: op, Status: s})
}

// Options configures Open.
type Options struct {
	// UseBLAS enables delegation of float products to a CBLAS library.
	UseBLAS bool
	// BLASLibrary names the shared library to load. Empty tries the usual
	// OpenBLAS sonames.
	BLASLibrary string
	// Logger receives load diagnostics. Nil means slog.Default().
	Logger *slog.Logger
}

// Library is an opened native library. It is safe for concurrent use.
type Library struct {
	blas   *blas
	logger *slog.Logger
}

// Open prepares the builtin kernels and, if requested, loads BLAS. A BLAS load
// failure is logged and the builtin kernels are used instead.
func Open(opts Options) (*Library, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if !builtinAvailable {
		return nil, errors.Wrap(ErrUnavailable, "builtin kernels need cgo")
	}

	l := &Library{logger: logger}
	if opts.UseBLAS {
		b, err := loadBLAS(opts.BLASLibrary)
		if err != nil {
			logger.Warn("BLAS unavailable, using builtin kernels", "library", opts.BLASLibrary, "err", err)
		} else {
			l.blas = b
			logger.Info("BLAS loaded", "library", b.name)
		}
	}
	return l, nil
}

// Available reports whether Open can succeed in this build.
func Available() bool {
	return builtinAvailable
}

// HasBLAS reports whether float products are delegated to BLAS.
func (l *Library) HasBLAS() bool {
	return l.blas != nil
}

// Describe returns a short human-readable description of the active drivers.
func (l *Library) Describe() string {
	if l.blas != nil {
		return "builtin kernels + " + l.blas.name
	}
	return "builtin kernels"
}

// view is the boundary representation of an Ndarray view.
type view struct {
	data    unsafe.Pointer
	dtype   ndarray.DataType
	offset  int64
	shape   []int64
	strides []int64
	keep    ndarray.Storage
}

func viewOf(op string, a ndarray.Array) (view, error) {
	if a.Rank() > MaxRank {
		return view{}, errors.WithStack(&Error{Op: op, Status: StatusBadArgument})
	}
	v := view{
		data:    a.Storage().Pointer(),
		dtype:   a.DType(),
		offset:  int64(a.Offset()),
		shape:   make([]int64, a.Rank()),
		strides: make([]int64, a.Rank()),
		keep:    a.Storage(),
	}
	for i, s := range a.Shape() {
		v.shape[i] = int64(s)
	}
	for i, s := range a.Strides() {
		v.strides[i] = int64(s)
	}
	return v, nil
}

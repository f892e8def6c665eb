package parity

import (
	"fmt"
	"math"
	"reflect"

	"github.com/born-ml/ndarray/internal/engine"
	"github.com/born-ml/ndarray/internal/ndarray"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	fuzz "github.com/google/gofuzz"
)

// inputs are the operands shared by every check of one kind and size.
type inputs struct {
	a  ndarray.Array // (m, k)
	b  ndarray.Array // (k, n)
	bt ndarray.Array // (k, n) transposed view of an (n, k) matrix
	bp ndarray.Array // (k, n) int16, exercises kind promotion
	x  ndarray.Array // (k)
	y  ndarray.Array // (k), strided
	w  ndarray.Array // (m, k) float64 weights
	d3 ndarray.Array // (2, m, k)
}

func generate(f *fuzz.Fuzzer, dt ndarray.DataType, size int) *inputs {
	m, k, n := size, size/2+1, size
	switch dt {
	case ndarray.Int8:
		return generateOf[int8](f, m, k, n)
	case ndarray.Int16:
		return generateOf[int16](f, m, k, n)
	case ndarray.Int32:
		return generateOf[int32](f, m, k, n)
	case ndarray.Int64:
		return generateOf[int64](f, m, k, n)
	case ndarray.Float32:
		return generateOf[float32](f, m, k, n)
	case ndarray.Float64:
		return generateOf[float64](f, m, k, n)
	default:
		panic(fmt.Sprintf("parity: %v (code %d)", ndarray.ErrTypeNotDefined, int(dt)))
	}
}

func generateOf[T ndarray.Number](f *fuzz.Fuzzer, m, k, n int) *inputs {
	y, err := ndarray.Select[T, ndarray.D2, ndarray.D1](random[T](f, k, 2), 1, 1)
	if err != nil {
		panic(err)
	}
	next := fuzzed[T](f)
	return &inputs{
		a:  random[T](f, m, k),
		b:  random[T](f, k, n),
		bt: random[T](f, n, k).Transpose(),
		bp: random[int16](f, k, n),
		x:  ndarray.D1Of(k, next),
		y:  y,
		w:  random[float64](f, m, k),
		d3: ndarray.D3Of(2, m, k, func(int, int, int) T { return next(0) }),
	}
}

func fuzzed[T ndarray.Number](f *fuzz.Fuzzer) func(int) T {
	return func(int) T {
		var v T
		f.Fuzz(&v)
		return v
	}
}

func random[T ndarray.Number](f *fuzz.Fuzzer, rows, cols int) *ndarray.D2Array[T] {
	next := fuzzed[T](f)
	return ndarray.D2Of(rows, cols, func(int, int) T { return next(0) })
}

type median struct {
	Value float64
	OK    bool
}

type check struct {
	name string
	run  func(e engine.Engine, in *inputs) (any, error)
}

var checks = []check{
	{"dot", func(e engine.Engine, in *inputs) (any, error) { return e.LinAlg().Dot(in.a, in.b) }},
	{"dot-transposed", func(e engine.Engine, in *inputs) (any, error) { return e.LinAlg().Dot(in.a, in.bt) }},
	{"dot-promoted", func(e engine.Engine, in *inputs) (any, error) { return e.LinAlg().Dot(in.a, in.bp) }},
	{"dot-mv", func(e engine.Engine, in *inputs) (any, error) { return e.LinAlg().DotMV(in.a, in.x) }},
	{"dot-vv", func(e engine.Engine, in *inputs) (any, error) { return e.LinAlg().DotVV(in.x, in.y) }},
	{"mean", func(e engine.Engine, in *inputs) (any, error) { return e.Statistics().Mean(in.a) }},
	{"mean-axis", func(e engine.Engine, in *inputs) (any, error) {
		rows, err := e.Statistics().MeanAlong(in.a, 0)
		if err != nil {
			return nil, err
		}
		cols, err := e.Statistics().MeanAlong(in.d3, 2)
		if err != nil {
			return nil, err
		}
		return []ndarray.Array{rows, cols}, nil
	}},
	{"median", func(e engine.Engine, in *inputs) (any, error) {
		v, ok, err := e.Statistics().Median(in.bt)
		return median{v, ok}, err
	}},
	{"average", func(e engine.Engine, in *inputs) (any, error) { return e.Statistics().Average(in.a, in.w) }},
	{"abs", func(e engine.Engine, in *inputs) (any, error) { return e.Statistics().Abs(in.bt) }},
	{"argmax", func(e engine.Engine, in *inputs) (any, error) { return e.Math().ArgMax(in.bt) }},
	{"argmin", func(e engine.Engine, in *inputs) (any, error) { return e.Math().ArgMin(in.a) }},
	{"sum", func(e engine.Engine, in *inputs) (any, error) { return e.Math().Sum(in.d3) }},
	{"cumsum", func(e engine.Engine, in *inputs) (any, error) { return e.Math().CumSum(in.bt) }},
	{"exp", func(e engine.Engine, in *inputs) (any, error) { return e.Math().Exp(in.x) }},
}

// scales give the magnitude against which scalar results that may cancel are
// compared. Array results are compared against their largest element.
var scales = map[string]func(in *inputs) float64{
	"dot-vv": func(in *inputs) float64 {
		x, y := floats(in.x), floats(in.y)
		var s float64
		for i := range x {
			s += math.Abs(x[i] * y[i])
		}
		return s
	},
}

// Checks returns the names of all checks in run order.
func Checks() []string {
	names := make([]string, len(checks))
	for i, c := range checks {
		names[i] = c.name
	}
	return names
}

// diff returns a human-readable difference between two check results, or "" when
// they agree. Floats agree when they differ by at most tol times the smaller value
// or tol times scale; tol 0 means exact.
func diff(want, got any, tol, scale float64) string {
	switch w := want.(type) {
	case ndarray.Array:
		return diffArrays(w, got.(ndarray.Array), tol, scale)
	case []ndarray.Array:
		g := got.([]ndarray.Array)
		for i := range w {
			if d := diffArrays(w[i], g[i], tol, scale); d != "" {
				return fmt.Sprintf("result %d: %s", i, d)
			}
		}
		return ""
	default:
		return cmp.Diff(want, got, approx(tol, scale))
	}
}

func diffArrays(want, got ndarray.Array, tol, scale float64) string {
	if reflect.TypeOf(want) != reflect.TypeOf(got) {
		return fmt.Sprintf("type: want %T, got %T", want, got)
	}
	if !want.Shape().Equal(got.Shape()) {
		return fmt.Sprintf("shape: want %v, got %v", want.Shape(), got.Shape())
	}
	for _, v := range floats(want) {
		scale = max(scale, math.Abs(v))
	}
	return cmp.Diff(values(want), values(got), approx(tol, scale))
}

func approx(tol, scale float64) cmp.Options {
	opts := cmp.Options{cmpopts.EquateNaNs()}
	if tol > 0 {
		margin := tol * scale
		if math.IsInf(margin, 0) || math.IsNaN(margin) {
			margin = 0
		}
		opts = append(opts, cmpopts.EquateApprox(tol, margin))
	}
	return opts
}

// values flattens a in element order; integers stay exact.
func values(a ndarray.Array) any {
	switch a.DType() {
	case ndarray.Int8:
		return collect[int8, int64](a)
	case ndarray.Int16:
		return collect[int16, int64](a)
	case ndarray.Int32:
		return collect[int32, int64](a)
	case ndarray.Int64:
		return collect[int64, int64](a)
	case ndarray.Float32:
		return collect[float32, float64](a)
	case ndarray.Float64:
		return collect[float64, float64](a)
	default:
		panic(fmt.Sprintf("parity: %v (code %d)", ndarray.ErrTypeNotDefined, int(a.DType())))
	}
}

// floats flattens a in element order as float64.
func floats(a ndarray.Array) []float64 {
	switch a.DType() {
	case ndarray.Int8:
		return collect[int8, float64](a)
	case ndarray.Int16:
		return collect[int16, float64](a)
	case ndarray.Int32:
		return collect[int32, float64](a)
	case ndarray.Int64:
		return collect[int64, float64](a)
	case ndarray.Float32:
		return collect[float32, float64](a)
	case ndarray.Float64:
		return collect[float64, float64](a)
	default:
		panic(fmt.Sprintf("parity: %v (code %d)", ndarray.ErrTypeNotDefined, int(a.DType())))
	}
}

func collect[S ndarray.Number, D int64 | float64](a ndarray.Array) []D {
	src := ndarray.Buffer[S](a)
	out := make([]D, 0, a.Size())
	for _, off := range ndarray.Offsets(a) {
		out = append(out, D(src[off]))
	}
	return out
}

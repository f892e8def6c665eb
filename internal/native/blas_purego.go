//go:build darwin || linux

package native

import (
	"runtime"
	"sync"

	"github.com/ebitengine/purego"
	"github.com/pkg/errors"
)

var (
	blasMu    sync.Mutex
	blasCache = map[string]*blas{}
)

func defaultBLASNames() []string {
	if runtime.GOOS == "darwin" {
		return []string{
			"libopenblas.dylib",
			"/opt/homebrew/opt/openblas/lib/libopenblas.dylib",
			"/usr/local/opt/openblas/lib/libopenblas.dylib",
			"/System/Library/Frameworks/Accelerate.framework/Accelerate",
		}
	}
	return []string{"libopenblas.so.0", "libopenblas.so", "libcblas.so.3", "libblas.so.3"}
}

// loadBLAS opens a CBLAS library and resolves the entry points. name may be
// empty to try the usual sonames. Loaded libraries are cached by name.
func loadBLAS(name string) (*blas, error) {
	blasMu.Lock()
	defer blasMu.Unlock()

	if b, ok := blasCache[name]; ok {
		return b, nil
	}

	names := defaultBLASNames()
	if name != "" {
		names = []string{name}
	}

	var (
		lib    uintptr
		err    error
		loaded string
	)
	for _, n := range names {
		lib, err = purego.Dlopen(n, purego.RTLD_NOW|purego.RTLD_GLOBAL)
		if err == nil {
			loaded = n
			break
		}
	}
	if err != nil {
		return nil, errors.Wrapf(err, "cannot load CBLAS from %v", names)
	}

	b := &blas{name: loaded}
	syms := []struct {
		fptr any
		name string
	}{
		{&b.dgemm, "cblas_dgemm"},
		{&b.sgemm, "cblas_sgemm"},
		{&b.dgemv, "cblas_dgemv"},
		{&b.sgemv, "cblas_sgemv"},
		{&b.ddot, "cblas_ddot"},
		{&b.sdot, "cblas_sdot"},
	}
	for _, s := range syms {
		addr, err := purego.Dlsym(lib, s.name)
		if err != nil {
			return nil, errors.Wrapf(err, "%s: missing symbol %s", loaded, s.name)
		}
		purego.RegisterFunc(s.fptr, addr)
	}

	blasCache[name] = b
	return b, nil
}

//go:build !(darwin || linux)

package native

import (
	"runtime"

	"github.com/pkg/errors"
)

func loadBLAS(string) (*blas, error) {
	return nil, errors.Errorf("loading CBLAS is not supported on %s", runtime.GOOS)
}

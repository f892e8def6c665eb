// Package parity compares two math engines on the same random inputs.
//
// The reference engine (normally the pure Go one) and the candidate run every check
// for every element kind and matrix size; results must agree in kind, shape and
// value. Checks on integer operands compare exactly, except exp. Float operands are
// compared with a tolerance per kind, relative to the magnitude of the result.
package parity

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/born-ml/ndarray/internal/engine"
	"github.com/born-ml/ndarray/internal/ndarray"
	"github.com/born-ml/ndarray/internal/parallel"
	fuzz "github.com/google/gofuzz"
)

// Options controls a parity run.
type Options struct {
	// Sizes are the matrix extents to test. Each size s yields (s, s/2+1) x (s/2+1, s)
	// products and matching vectors.
	Sizes []int
	// Seed makes the generated inputs reproducible.
	Seed int64
	// Tolerance bounds float64 differences, and exp on integers, relative to
	// the magnitude of the result. 0 means exact.
	Tolerance float64
	// Float32Tolerance is Tolerance for float32 operands. CBLAS accumulates
	// them in float32.
	Float32Tolerance float64
	// Workers bounds the checks in flight. <= 0 means NumCPU.
	Workers int
	// DTypes restricts the element kinds. Empty means all.
	DTypes []ndarray.DataType
	// Checks restricts the checks by name (see Checks). Empty means all.
	Checks []string
}

// DefaultOptions returns options covering 1x1 up to 200x200 matrices.
func DefaultOptions() Options {
	return Options{
		Sizes:            []int{1, 2, 7, 64, 200},
		Seed:             1,
		Tolerance:        1e-9,
		Float32Tolerance: 1e-5,
	}
}

// Result is the outcome of one check for one kind and size.
type Result struct {
	Check   string
	DType   ndarray.DataType
	Size    int
	Diff    string // empty when both engines agree
	Err     error  // set when an engine failed
	Elapsed time.Duration
}

// Passed reports whether both engines succeeded and agreed.
func (r Result) Passed() bool {
	return r.Err == nil && r.Diff == ""
}

// Report collects the results of a run in plan order.
type Report struct {
	Reference string
	Candidate string
	Results   []Result
}

// Failed returns the results that did not pass.
func (r *Report) Failed() []Result {
	var out []Result
	for _, res := range r.Results {
		if !res.Passed() {
			out = append(out, res)
		}
	}
	return out
}

// OK reports whether every check passed.
func (r *Report) OK() bool {
	return len(r.Failed()) == 0
}

type testCase struct {
	check *check
	dtype ndarray.DataType
	size  int
	in    *inputs
}

// Run executes the selected checks against ref and cand. It fails only when the
// options are invalid or ctx is canceled; disagreements are reported in the
// Report.
func Run(ctx context.Context, ref, cand engine.Engine, opts Options) (*Report, error) {
	cases, err := plan(opts)
	if err != nil {
		return nil, err
	}

	results := make([]Result, len(cases))
	err = parallel.Each(ctx, len(cases), opts.Workers, func(_ context.Context, i int) error {
		results[i] = runCase(ref, cand, cases[i], tolerance(opts, cases[i].dtype, cases[i].check.name))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("parity: %w", err)
	}

	return &Report{
		Reference: ref.Name(),
		Candidate: cand.Name(),
		Results:   results,
	}, nil
}

func plan(opts Options) ([]testCase, error) {
	if len(opts.Sizes) == 0 {
		return nil, fmt.Errorf("parity: no sizes given")
	}
	if opts.Tolerance < 0 || opts.Float32Tolerance < 0 {
		return nil, fmt.Errorf("parity: negative tolerance")
	}
	for _, s := range opts.Sizes {
		if s < 1 {
			return nil, fmt.Errorf("parity: size %d must be positive", s)
		}
	}

	dtypes := opts.DTypes
	if len(dtypes) == 0 {
		dtypes = ndarray.DataTypes
	}

	selected := checks
	if len(opts.Checks) > 0 {
		selected = nil
		for _, name := range opts.Checks {
			i := slices.IndexFunc(checks, func(c check) bool { return c.name == name })
			if i < 0 {
				return nil, fmt.Errorf("parity: unknown check %q", name)
			}
			selected = append(selected, checks[i])
		}
	}

	var cases []testCase
	for _, dt := range dtypes {
		if !dt.Valid() {
			return nil, fmt.Errorf("parity: %w (code %d)", ndarray.ErrTypeNotDefined, int(dt))
		}
		for si, size := range opts.Sizes {
			f := newFuzzer(opts.Seed + int64(dt)*1_000_003 + int64(si)*7919)
			in := generate(f, dt, size)
			for i := range selected {
				cases = append(cases, testCase{check: &selected[i], dtype: dt, size: size, in: in})
			}
		}
	}
	return cases, nil
}

func runCase(ref, cand engine.Engine, tc testCase, tol float64) Result {
	res := Result{Check: tc.check.name, DType: tc.dtype, Size: tc.size}

	want, err := tc.check.run(ref, tc.in)
	if err != nil {
		res.Err = fmt.Errorf("%s: %w", ref.Name(), err)
		return res
	}
	start := time.Now()
	got, err := tc.check.run(cand, tc.in)
	res.Elapsed = time.Since(start)
	if err != nil {
		res.Err = fmt.Errorf("%s: %w", cand.Name(), err)
		return res
	}
	var scale float64
	if f, ok := scales[tc.check.name]; ok {
		scale = f(tc.in)
	}
	res.Diff = diff(want, got, tol, scale)
	return res
}

// tolerance returns the tolerance of one check on operands of kind dt.
func tolerance(opts Options, dt ndarray.DataType, check string) float64 {
	switch {
	case dt == ndarray.Float32:
		return opts.Float32Tolerance
	case dt.IsInteger() && check != "exp":
		return 0
	default:
		return opts.Tolerance
	}
}

// newFuzzer returns a seeded fuzzer producing signed floats of moderate magnitude
// and full-range integers.
func newFuzzer(seed int64) *fuzz.Fuzzer {
	return fuzz.NewWithSeed(seed).NilChance(0).Funcs(
		func(v *float64, c fuzz.Continue) { *v = c.NormFloat64() * 100 },
		func(v *float32, c fuzz.Continue) { *v = float32(c.NormFloat64() * 100) },
	)
}

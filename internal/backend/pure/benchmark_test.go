package pure

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/born-ml/ndarray/internal/ndarray"
)

var benchSizes = []int{10, 100, 1000}

func randomMatrix(rng *rand.Rand, n int) *ndarray.D2Array[float64] {
	return ndarray.D2Of(n, n, func(int, int) float64 { return rng.Float64() })
}

func BenchmarkDot(b *testing.B) {
	e := New()
	for _, size := range benchSizes {
		rng := rand.New(rand.NewSource(1))
		x, y := randomMatrix(rng, size), randomMatrix(rng, size)

		b.Run(fmt.Sprintf("size=%d", size), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := e.Dot(x, y); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkArgMax(b *testing.B) {
	e := New()
	for _, size := range benchSizes {
		x := randomMatrix(rand.New(rand.NewSource(1)), size)

		b.Run(fmt.Sprintf("size=%d", size), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := e.ArgMax(x); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

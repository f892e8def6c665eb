package parallel

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFor(t *testing.T) {
	cfg := DefaultConfig()

	hits := make([]int32, 1000)
	For(len(hits), func(i int) {
		atomic.AddInt32(&hits[i], 1)
	}, cfg)

	for i, h := range hits {
		assert.Equal(t, int32(1), h, "index %d", i)
	}
}

func TestFor_Sequential(t *testing.T) {
	cfg := Config{Enabled: false}

	var order []int
	For(5, func(i int) {
		order = append(order, i)
	}, cfg)

	assert.Equal(t, []int{0, 1, 2, 3, 4}, order)
}

func TestFor_SmallChunk(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 4, MinChunkSize: 64}

	var order []int
	For(cfg.MinChunkSize-1, func(i int) {
		order = append(order, i)
	}, cfg)

	require.Len(t, order, cfg.MinChunkSize-1)
	for i, v := range order {
		assert.Equal(t, i, v)
	}
}

func TestEach(t *testing.T) {
	var counter int64
	err := Each(context.Background(), 100, 4, func(_ context.Context, i int) error {
		atomic.AddInt64(&counter, int64(i))
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, int64(4950), counter)
}

func TestEach_FirstErrorWins(t *testing.T) {
	boom := errors.New("boom")
	var inFlight, peak int64

	err := Each(context.Background(), 50, 2, func(_ context.Context, i int) error {
		cur := atomic.AddInt64(&inFlight, 1)
		defer atomic.AddInt64(&inFlight, -1)
		for {
			old := atomic.LoadInt64(&peak)
			if cur <= old || atomic.CompareAndSwapInt64(&peak, old, cur) {
				break
			}
		}
		if i == 3 {
			return boom
		}
		return nil
	})

	assert.ErrorIs(t, err, boom)
	assert.LessOrEqual(t, atomic.LoadInt64(&peak), int64(2))
}

func TestEach_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var ran int64
	err := Each(ctx, 10, 1, func(context.Context, int) error {
		atomic.AddInt64(&ran, 1)
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, atomic.LoadInt64(&ran))
}

func BenchmarkFor(b *testing.B) {
	cfg := DefaultConfig()
	n := 10000

	b.Run("parallel", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var sum int64
			For(n, func(i int) {
				atomic.AddInt64(&sum, int64(i))
			}, cfg)
		}
	})

	b.Run("sequential", func(b *testing.B) {
		cfgSeq := cfg
		cfgSeq.Enabled = false
		for i := 0; i < b.N; i++ {
			var sum int64
			For(n, func(i int) {
				atomic.AddInt64(&sum, int64(i))
			}, cfgSeq)
		}
	})
}

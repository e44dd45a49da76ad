package lbm

import (
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParallelForVisitsEachIndexOnce(t *testing.T) {
	for _, workers := range []int{0, 1, 3, 7, 64} {
		hits := make([]atomic.Int32, 29)
		parallelFor(workers, 2, 29, func(i int) { hits[i].Add(1) })
		for i := range hits {
			want := int32(1)
			if i < 2 {
				want = 0
			}
			require.Equal(t, want, hits[i].Load(), "workers %d index %d", workers, i)
		}
	}
	parallelFor(4, 5, 5, func(int) { t.Fatal("empty range must not call fn") })
}

func TestParallelRangeReportsError(t *testing.T) {
	boom := errors.New("boom")
	for _, workers := range []int{1, 4} {
		var calls atomic.Int32
		err := parallelRange(workers, 0, 100, func(i int) error {
			calls.Add(1)
			if i == 42 {
				return boom
			}
			return nil
		})
		assert.ErrorIs(t, err, boom, "workers %d", workers)
		assert.LessOrEqual(t, calls.Load(), int32(100))
	}
	assert.NoError(t, parallelRange(3, 0, 10, func(int) error { return nil }))
}

package lbm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProbe(t *testing.T) {
	p := NewProbe(0, 1)
	mean, variance := p.MeanVariance()
	assert.Zero(t, mean)
	assert.Zero(t, variance)

	for _, v := range []float64{1, 2, 3, 4} {
		f := newScalarField(1, 2, []float64{0, v})
		require.NoError(t, p.Record(f))
	}
	mean, variance = p.MeanVariance()
	assert.InDelta(t, 2.5, mean, 1e-15)
	assert.InDelta(t, 5.0/3, variance, 1e-15)
	assert.Equal(t, []float64{1, 2, 3, 4}, p.Samples())

	assert.ErrorIs(t, NewProbe(2, 0).Record(newScalarField(1, 2, []float64{0, 0})), ErrOutOfRange)
}

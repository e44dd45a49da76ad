package lbm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLatticeConstants(t *testing.T) {
	var sum float64
	for _, w := range Weights {
		sum += w
	}
	assert.InDelta(t, 1.0, sum, 1e-15)

	for d := 0; d < Q; d++ {
		o := Opposite[d]
		require.Equal(t, d, Opposite[o], "opposite of opposite of %d", d)
		assert.Equal(t, -CX[d], CX[o])
		assert.Equal(t, -CY[d], CY[o])
		assert.Equal(t, Weights[d], Weights[o])
	}
}

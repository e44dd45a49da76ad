package lbm

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// ScalarField is a read-only snapshot of a per-cell quantity addressed by
// (row, column).
type ScalarField struct {
	NumRows, NumCols   int
	MinValue, MaxValue float64
	values             []float64
}

func newScalarField(rows, cols int, values []float64) ScalarField {
	return ScalarField{
		NumRows:  rows,
		NumCols:  cols,
		MinValue: floats.Min(values),
		MaxValue: floats.Max(values),
		values:   values,
	}
}

func (s ScalarField) Value(row, col int) (float64, error) {
	if row < 0 || row >= s.NumRows {
		return 0.0, fmt.Errorf("%w: row %d, must be between 0 and %d", ErrOutOfRange, row, s.NumRows-1)
	}
	if col < 0 || col >= s.NumCols {
		return 0.0, fmt.Errorf("%w: column %d, must be between 0 and %d", ErrOutOfRange, col, s.NumCols-1)
	}

	return s.values[row*s.NumCols+col], nil
}

// Values returns a row-major copy of the field.
func (s ScalarField) Values() []float64 {
	return append([]float64(nil), s.values...)
}

// Dense returns the field as a NumRows×NumCols matrix.
func (s ScalarField) Dense() *mat.Dense {
	return mat.NewDense(s.NumRows, s.NumCols, s.Values())
}

// Sum returns the total over all cells.
func (s ScalarField) Sum() float64 {
	return floats.Sum(s.values)
}

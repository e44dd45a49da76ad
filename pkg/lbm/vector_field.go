package lbm

import "fmt"

// VectorField is a read-only snapshot of the velocity (ux, uy) per cell.
type VectorField struct {
	NumRows, NumCols int
	valuesX, valuesY []float64
}

func (v VectorField) Value(row, col int) (float64, float64, error) {
	if row < 0 || row >= v.NumRows {
		return 0.0, 0.0, fmt.Errorf("%w: row %d, must be between 0 and %d", ErrOutOfRange, row, v.NumRows-1)
	}
	if col < 0 || col >= v.NumCols {
		return 0.0, 0.0, fmt.Errorf("%w: column %d, must be between 0 and %d", ErrOutOfRange, col, v.NumCols-1)
	}

	return v.valuesX[row*v.NumCols+col], v.valuesY[row*v.NumCols+col], nil
}

// X returns the ux component.
func (v VectorField) X() ScalarField {
	return newScalarField(v.NumRows, v.NumCols, v.valuesX)
}

// Y returns the uy component.
func (v VectorField) Y() ScalarField {
	return newScalarField(v.NumRows, v.NumCols, v.valuesY)
}

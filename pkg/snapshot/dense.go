package snapshot

import (
	"fmt"
	"io"

	"gonum.org/v1/gonum/mat"

	"github.com/TheFellow/lbm/pkg/lbm"
)

// WriteDense writes f in gonum's binary matrix format.
func WriteDense(w io.Writer, f lbm.ScalarField) error {
	if _, err := f.Dense().MarshalBinaryTo(w); err != nil {
		return fmt.Errorf("snapshot: cannot write field: %w", err)
	}
	return nil
}

// ReadDense reads a matrix written by WriteDense. Rows index lattice rows.
func ReadDense(r io.Reader) (*mat.Dense, error) {
	var m mat.Dense
	if _, err := m.UnmarshalBinaryFrom(r); err != nil {
		return nil, fmt.Errorf("snapshot: cannot read field: %w", err)
	}
	return &m, nil
}

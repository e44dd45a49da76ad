package lbm

import "gonum.org/v1/gonum/stat"

// Probe records one cell of a ScalarField over time.
type Probe struct {
	Row, Col int
	samples  []float64
}

func NewProbe(row, col int) *Probe {
	return &Probe{Row: row, Col: col}
}

// Record appends the probed cell of f.
func (p *Probe) Record(f ScalarField) error {
	v, err := f.Value(p.Row, p.Col)
	if err != nil {
		return err
	}
	p.samples = append(p.samples, v)
	return nil
}

func (p *Probe) Samples() []float64 {
	return append([]float64(nil), p.samples...)
}

// MeanVariance returns the sample mean and unbiased variance. Fewer than two
// samples give a zero variance.
func (p *Probe) MeanVariance() (mean, variance float64) {
	switch len(p.samples) {
	case 0:
		return 0, 0
	case 1:
		return p.samples[0], 0
	}
	return stat.MeanVariance(p.samples, nil)
}

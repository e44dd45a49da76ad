package lbm

// Distribution holds the nine populations of every cell. Each direction is
// a contiguous row-major plane indexed by row*nx + col.
type Distribution struct {
	nx, ny int
	planes [Q][]float64
}

func newDistribution(nx, ny int) Distribution {
	d := Distribution{nx: nx, ny: ny}
	for i := range d.planes {
		d.planes[i] = make([]float64, nx*ny)
	}
	return d
}

// cell gathers the populations of one cell.
func (d *Distribution) cell(idx int) (pop [Q]float64) {
	for i := range pop {
		pop[i] = d.planes[i][idx]
	}
	return pop
}

func (d *Distribution) setCell(idx int, pop [Q]float64) {
	for i := range pop {
		d.planes[i][idx] = pop[i]
	}
}

func fill[T any](slice []T, val T) {
	for i := range slice {
		slice[i] = val
	}
}

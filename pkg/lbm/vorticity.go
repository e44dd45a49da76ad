package lbm

// vorticity returns ∂uy/∂x - ∂ux/∂y using central differences inside the
// grid and one-sided differences on its edges. No-slip cells are zero.
func vorticity(nx, ny int, ux, uy []float64, kinds []CellKind) []float64 {
	out := make([]float64, nx*ny)
	for r := 0; r < ny; r++ {
		for c := 0; c < nx; c++ {
			idx := r*nx + c
			if kinds[idx].NoSlip() {
				continue
			}
			out[idx] = derivative(uy, idx, c, nx, 1) - derivative(ux, idx, r, ny, nx)
		}
	}
	return out
}

// derivative differentiates v at idx along an axis of length n, where pos
// is the position of idx on that axis and stride the index step.
func derivative(v []float64, idx, pos, n, stride int) float64 {
	switch {
	case n == 1:
		return 0
	case pos == 0:
		return v[idx+stride] - v[idx]
	case pos == n-1:
		return v[idx] - v[idx-stride]
	}
	return 0.5 * (v[idx+stride] - v[idx-stride])
}

package lbm

import "math"

// recoverMacroscopic reduces the populations to density and velocity.
// No-slip cells report their density with zero velocity. A non-positive or
// non-finite density is reported as a *DivergedError.
func (s *Solver) recoverMacroscopic() error {
	nx := s.nx
	return parallelRange(s.cfg.Workers, 0, s.ny, func(r int) error {
		for idx := r * nx; idx < (r+1)*nx; idx++ {
			rho, ux, uy := Moments(s.f.cell(idx))
			if !(rho > 0) || math.IsInf(rho, 0) {
				return s.diverged(idx, "density", rho)
			}
			if s.kinds[idx].NoSlip() {
				ux, uy = 0, 0
			}
			s.rho[idx], s.ux[idx], s.uy[idx] = rho, ux, uy
		}
		return nil
	})
}

func (s *Solver) diverged(idx int, quantity string, value float64) *DivergedError {
	return &DivergedError{
		Step:          s.step + 1,
		Row:           idx / s.nx,
		Col:           idx % s.nx,
		Quantity:      quantity,
		Value:         value,
		Viscosity:     s.cfg.Viscosity,
		InletVelocity: s.cfg.InletVelocity,
		Omega:         s.omega,
	}
}

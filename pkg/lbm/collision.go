package lbm

import "math"

// collide relaxes every fluid cell towards the equilibrium of the moments
// last recovered. No-slip cells keep their bounced-back populations.
func (s *Solver) collide() error {
	nx := s.nx
	return parallelRange(s.cfg.Workers, 0, s.ny, func(r int) error {
		for idx := r * nx; idx < (r+1)*nx; idx++ {
			if s.kinds[idx].NoSlip() {
				continue
			}
			pop := Relax(s.f.cell(idx), s.rho[idx], s.ux[idx], s.uy[idx], s.omega)
			for d, v := range pop {
				if math.IsNaN(v) || math.IsInf(v, 0) {
					return s.diverged(idx, "population", v)
				}
				s.f.planes[d][idx] = v
			}
		}
		return nil
	})
}

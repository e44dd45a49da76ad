package lbm

// stream shifts every direction plane by its lattice velocity with
// wraparound on both axes. The result lands in s.tmp and the buffers are
// swapped, so s.f holds the post-streaming field on return.
func (s *Solver) stream() {
	nx, ny := s.nx, s.ny
	// One work item per (direction, destination row).
	parallelFor(s.cfg.Workers, 0, Q*ny, func(k int) {
		d, r := k/ny, k%ny
		sr := (r - CY[d] + ny) % ny
		src := s.f.planes[d][sr*nx : (sr+1)*nx]
		dst := s.tmp.planes[d][r*nx : (r+1)*nx]
		shiftRow(dst, src, CX[d])
	})
	s.f, s.tmp = s.tmp, s.f
}

// shiftRow writes src moved by dx (-1, 0 or 1) columns into dst, wrapping.
func shiftRow(dst, src []float64, dx int) {
	n := len(src)
	switch dx {
	case 0:
		copy(dst, src)
	case 1:
		copy(dst[1:], src[:n-1])
		dst[0] = src[n-1]
	case -1:
		copy(dst[:n-1], src[1:])
		dst[n-1] = src[0]
	}
}

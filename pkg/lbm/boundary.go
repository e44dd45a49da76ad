package lbm

import "fmt"

// CellKind tags how a cell is treated after streaming. Tags are resolved
// once at construction.
type CellKind uint8

const (
	Interior CellKind = iota
	Solid
	TopWall
	BottomWall
	Inlet
	Outlet
)

func (k CellKind) String() string {
	switch k {
	case Interior:
		return "interior"
	case Solid:
		return "obstacle"
	case TopWall:
		return "top-wall"
	case BottomWall:
		return "bottom-wall"
	case Inlet:
		return "inlet"
	case Outlet:
		return "outlet"
	}
	return fmt.Sprintf("CellKind(%d)", uint8(k))
}

// NoSlip reports whether cells of this kind are full-way bounce-back nodes:
// they reverse their populations, skip collision and carry zero velocity.
func (k CellKind) NoSlip() bool {
	return k == Solid || k == TopWall || k == BottomWall
}

// classify tags every cell. Precedence is obstacle > walls > inlet/outlet,
// so the four corners belong to the walls and the inlet and outlet only
// span the fluid rows.
func (s *Solver) classify() {
	nx, ny := s.nx, s.ny
	s.kinds = make([]CellKind, nx*ny)
	s.noSlip = s.noSlip[:0]

	o := s.cfg.Obstacle
	r2 := o.Radius * o.Radius
	for r := 0; r < ny; r++ {
		for c := 0; c < nx; c++ {
			idx := r*nx + c
			dx := float64(c) - o.CenterX
			dy := float64(r) - o.CenterY
			switch {
			case o.Radius > 0 && dx*dx+dy*dy < r2:
				s.kinds[idx] = Solid
			case !s.cfg.PeriodicY && r == 0:
				s.kinds[idx] = BottomWall
			case !s.cfg.PeriodicY && r == ny-1:
				s.kinds[idx] = TopWall
			case !s.cfg.PeriodicX && c == 0:
				s.kinds[idx] = Inlet
			case !s.cfg.PeriodicX && c == nx-1:
				s.kinds[idx] = Outlet
			}
			if s.kinds[idx].NoSlip() {
				s.noSlip = append(s.noSlip, idx)
			}
		}
	}
}

// applyBoundaries repairs the wrapped populations left by stream. Order:
// bounce-back on every no-slip cell, outlet copy, inlet overwrite.
// Populations that wrapped across y only ever land in a wall row and
// bounce between the two walls without reaching a fluid cell.
func (s *Solver) applyBoundaries() {
	nx := s.nx
	p := &s.f.planes

	for _, idx := range s.noSlip {
		pop := s.f.cell(idx)
		for d := range pop {
			p[d][idx] = pop[Opposite[d]]
		}
	}

	if s.cfg.PeriodicX {
		return
	}
	for r := 0; r < s.ny; r++ {
		if out := r*nx + nx - 1; s.kinds[out] == Outlet {
			for d := 0; d < Q; d++ {
				p[d][out] = p[d][out-1]
			}
		}
		if in := r * nx; s.kinds[in] == Inlet {
			s.f.setCell(in, s.inlet)
		}
	}
}

// Kind returns the boundary tag of a cell.
func (s *Solver) Kind(row, col int) (CellKind, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.initialized {
		return Interior, ErrUninitialized
	}
	if row < 0 || row >= s.ny || col < 0 || col >= s.nx {
		return Interior, fmt.Errorf("%w: (%d, %d) outside %dx%d grid", ErrOutOfRange, row, col, s.ny, s.nx)
	}
	return s.kinds[row*s.nx+col], nil
}

// IsSolid reports whether the cell lies inside the obstacle.
func (s *Solver) IsSolid(row, col int) (bool, error) {
	k, err := s.Kind(row, col)
	return k == Solid, err
}

package lbm

import (
	"math"
	"math/rand/v2"
	"sync"

	"gonum.org/v1/gonum/floats"
)

// Solver owns the lattice state of one simulation. The zero value is
// uninitialized; use New or Init. Step and the field accessors are safe to
// call from different goroutines, and steps never overlap.
type Solver struct {
	mu sync.RWMutex

	cfg         Config
	initialized bool
	nx, ny      int
	omega       float64
	inlet       [Q]float64

	f, tmp      Distribution
	rho, ux, uy []float64

	kinds  []CellKind
	noSlip []int

	step int
	err  error
}

// New validates cfg and returns a solver initialized to the inlet
// equilibrium.
func New(cfg Config) (*Solver, error) {
	s := &Solver{}
	if err := s.Init(cfg); err != nil {
		return nil, err
	}
	return s, nil
}

// Init (re)configures s. A configuration error leaves s unchanged.
func (s *Solver) Init(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	nx, ny := cfg.Width, cfg.Height
	s.cfg = cfg
	s.nx, s.ny = nx, ny
	s.omega = cfg.Omega()
	s.inlet = Equilibrium(cfg.density(), cfg.InletVelocity, 0)
	s.f = newDistribution(nx, ny)
	s.tmp = newDistribution(nx, ny)
	s.rho = make([]float64, nx*ny)
	s.ux = make([]float64, nx*ny)
	s.uy = make([]float64, nx*ny)
	s.classify()
	s.initialized = true
	return s.reset()
}

// Reset returns the field to the inlet equilibrium and clears the step
// count and any divergence.
func (s *Solver) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.initialized {
		return ErrUninitialized
	}
	return s.reset()
}

func (s *Solver) reset() error {
	for d := range s.f.planes {
		fill(s.f.planes[d], s.inlet[d])
	}
	if amp := s.cfg.Perturbation; amp > 0 {
		rng := rand.New(rand.NewPCG(s.cfg.Seed, s.cfg.Seed^0x9e3779b97f4a7c15))
		for d := range s.f.planes {
			plane := s.f.planes[d]
			for i := range plane {
				plane[i] *= 1 + amp*(2*rng.Float64()-1)
			}
		}
	}
	s.step = 0
	s.err = nil
	return s.recoverMacroscopic()
}

// Step advances the simulation by one timestep: streaming, boundary
// conditions, macroscopic recovery, then collision. Each stage completes
// before the next begins. Once a step has diverged every further call
// returns the same *DivergedError until Reset.
func (s *Solver) Step() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.initialized {
		return ErrUninitialized
	}
	if s.err != nil {
		return s.err
	}

	s.stream()
	s.applyBoundaries()
	if err := s.recoverMacroscopic(); err != nil {
		s.err = err
		return err
	}
	if err := s.collide(); err != nil {
		s.err = err
		return err
	}
	s.step++
	return nil
}

// Run performs n steps, stopping at the first error.
func (s *Solver) Run(n int) error {
	for i := 0; i < n; i++ {
		if err := s.Step(); err != nil {
			return err
		}
	}
	return nil
}

// Config returns the configuration the solver was built with.
func (s *Solver) Config() Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

// Steps returns the number of completed steps since the last reset.
func (s *Solver) Steps() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.step
}

// Omega returns the relaxation rate.
func (s *Solver) Omega() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.omega
}

// Density returns a snapshot of ρ as of the last macroscopic recovery.
func (s *Solver) Density() (ScalarField, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.initialized {
		return ScalarField{}, ErrUninitialized
	}
	return newScalarField(s.ny, s.nx, append([]float64(nil), s.rho...)), nil
}

// Velocity returns a snapshot of (ux, uy).
func (s *Solver) Velocity() (VectorField, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.initialized {
		return VectorField{}, ErrUninitialized
	}
	return VectorField{
		NumRows: s.ny,
		NumCols: s.nx,
		valuesX: append([]float64(nil), s.ux...),
		valuesY: append([]float64(nil), s.uy...),
	}, nil
}

// Speed returns |u| per cell.
func (s *Solver) Speed() (ScalarField, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.initialized {
		return ScalarField{}, ErrUninitialized
	}
	vals := make([]float64, len(s.ux))
	for i := range vals {
		vals[i] = math.Hypot(s.ux[i], s.uy[i])
	}
	return newScalarField(s.ny, s.nx, vals), nil
}

// Vorticity returns the curl of the velocity field. It is diagnostic only.
func (s *Solver) Vorticity() (ScalarField, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.initialized {
		return ScalarField{}, ErrUninitialized
	}
	return newScalarField(s.ny, s.nx, vorticity(s.nx, s.ny, s.ux, s.uy, s.kinds)), nil
}

// Populations returns a copy of the nine populations of a cell.
func (s *Solver) Populations(row, col int) ([Q]float64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.initialized {
		return [Q]float64{}, ErrUninitialized
	}
	if row < 0 || row >= s.ny || col < 0 || col >= s.nx {
		return [Q]float64{}, ErrOutOfRange
	}
	return s.f.cell(row*s.nx + col), nil
}

// TotalMass returns Σρ over the grid.
func (s *Solver) TotalMass() (float64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.initialized {
		return 0, ErrUninitialized
	}
	return floats.Sum(s.rho), nil
}

// AverageSpeed returns the mean |u| over fluid cells.
func (s *Solver) AverageSpeed() (float64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.initialized {
		return 0, ErrUninitialized
	}
	var total float64
	var n int
	for i, k := range s.kinds {
		if k.NoSlip() {
			continue
		}
		total += math.Hypot(s.ux[i], s.uy[i])
		n++
	}
	if n == 0 {
		return 0, nil
	}
	return total / float64(n), nil
}

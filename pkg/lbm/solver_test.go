package lbm

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUninitializedSolver(t *testing.T) {
	var s Solver

	err := s.Step()
	assert.ErrorIs(t, err, ErrUninitialized)
	assert.ErrorIs(t, err, ErrUsage)

	_, err = s.Density()
	assert.ErrorIs(t, err, ErrUninitialized)
	_, err = s.Velocity()
	assert.ErrorIs(t, err, ErrUninitialized)
	_, err = s.Vorticity()
	assert.ErrorIs(t, err, ErrUninitialized)
	_, err = s.Populations(0, 0)
	assert.ErrorIs(t, err, ErrUninitialized)
	_, err = s.TotalMass()
	assert.ErrorIs(t, err, ErrUninitialized)
	_, err = s.AverageSpeed()
	assert.ErrorIs(t, err, ErrUninitialized)
	_, err = s.Kind(0, 0)
	assert.ErrorIs(t, err, ErrUninitialized)
	_, err = s.IsSolid(0, 0)
	assert.ErrorIs(t, err, ErrUsage)
	assert.ErrorIs(t, s.Reset(), ErrUninitialized)

	require.NoError(t, s.Init(channelConfig(12, 8)))
	require.NoError(t, s.Step())
	assert.Equal(t, 1, s.Steps())
}

func TestInitialState(t *testing.T) {
	s := newTestSolver(t, channelConfig(12, 8))

	rho, err := s.Density()
	require.NoError(t, err)
	assert.InDelta(t, 1.0, rho.MinValue, 1e-14)
	assert.InDelta(t, 1.0, rho.MaxValue, 1e-14)

	vel, err := s.Velocity()
	require.NoError(t, err)
	ux, uy, err := vel.Value(3, 7)
	require.NoError(t, err)
	assert.InDelta(t, 0.05, ux, 1e-15)
	assert.InDelta(t, 0, uy, 1e-15)

	_, _, err = vel.Value(8, 0)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = rho.Value(0, -1)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = s.Populations(0, 12)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func totalMass(t testing.TB, s *Solver) float64 {
	t.Helper()
	m, err := s.TotalMass()
	require.NoError(t, err)
	return m
}

func TestMassConservationPeriodic(t *testing.T) {
	cfg := Config{
		Width: 48, Height: 32, Viscosity: 0.04, InletVelocity: 0.08,
		Obstacle:     Obstacle{CenterX: 16, CenterY: 15.5, Radius: 5},
		PeriodicX:    true,
		PeriodicY:    true,
		Perturbation: 0.02,
		Seed:         42,
	}
	s := newTestSolver(t, cfg)

	m0 := totalMass(t, s)
	for i := 0; i < 300; i++ {
		before := totalMass(t, s)
		require.NoError(t, s.Step())
		assert.InEpsilon(t, before, totalMass(t, s), 1e-10, "step %d", i)
	}
	assert.InEpsilon(t, m0, totalMass(t, s), 1e-10)

	rho, err := s.Density()
	require.NoError(t, err)
	assert.InEpsilon(t, m0, rho.Sum(), 1e-12)
}

func TestWorkersDoNotChangeResults(t *testing.T) {
	cfg := validConfig()
	cfg.Width, cfg.Height = 80, 40
	cfg.Obstacle = Obstacle{CenterX: 20, CenterY: 20, Radius: 5}
	cfg.Perturbation, cfg.Seed = 0.01, 9

	cfg.Workers = 1
	serial := newTestSolver(t, cfg)
	cfg.Workers = 4
	parallel := newTestSolver(t, cfg)

	require.NoError(t, serial.Run(50))
	require.NoError(t, parallel.Run(50))

	a, err := serial.Velocity()
	require.NoError(t, err)
	b, err := parallel.Velocity()
	require.NoError(t, err)
	assert.Equal(t, a.X().Values(), b.X().Values())
	assert.Equal(t, a.Y().Values(), b.Y().Values())
}

func TestDivergenceIsReportedAndSticky(t *testing.T) {
	const nx = 20
	cfg := channelConfig(nx, 10)
	s := newTestSolver(t, cfg)
	s.f.planes[Rest][5*nx+7] = -100

	err := s.Step()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDiverged)
	var de *DivergedError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, 1, de.Step)
	assert.Equal(t, 5, de.Row)
	assert.Equal(t, 7, de.Col)
	assert.Equal(t, "density", de.Quantity)
	assert.Equal(t, cfg.Viscosity, de.Viscosity)
	assert.Contains(t, err.Error(), "viscosity=0.1")
	assert.Contains(t, err.Error(), "inlet_velocity=0.05")

	assert.Same(t, de, stepErr(t, s))
	assert.Equal(t, 0, s.Steps())

	require.NoError(t, s.Reset())
	require.NoError(t, s.Step())
	assert.Equal(t, 1, s.Steps())
}

func stepErr(t *testing.T, s *Solver) *DivergedError {
	t.Helper()
	var de *DivergedError
	require.True(t, errors.As(s.Step(), &de))
	return de
}

func TestNaNPopulationDiverges(t *testing.T) {
	const nx = 20
	s := newTestSolver(t, channelConfig(nx, 10))
	s.f.planes[Rest][4*nx+4] = math.NaN()
	assert.ErrorIs(t, s.Step(), ErrDiverged)
}

func TestStabilitySweep(t *testing.T) {
	if testing.Short() {
		t.Skip("long-running stability sweep")
	}
	base := Config{
		Width: 96, Height: 40, InletVelocity: 0.15,
		Obstacle: Obstacle{CenterX: 24, CenterY: 20, Radius: 5},
	}
	const maxSteps = 5000

	run := func(nu float64) error {
		cfg := base
		cfg.Viscosity = nu
		s := newTestSolver(t, cfg)
		return s.Run(maxSteps)
	}

	for _, nu := range []float64{0.1, 0.05} {
		require.NoError(t, run(nu), "viscosity %g should be stable", nu)
	}

	var diverged *DivergedError
	for _, nu := range []float64{0.005, 0.001, 0.0002, 0.00002} {
		err := run(nu)
		if err == nil {
			continue
		}
		require.True(t, errors.As(err, &diverged), "unexpected error %v", err)
		break
	}
	require.NotNil(t, diverged, "omega approaching 2 never diverged")
	assert.Greater(t, diverged.Omega, 1.9)
}

func TestPoiseuilleProfile(t *testing.T) {
	if testing.Short() {
		t.Skip("long-running channel flow")
	}
	const nx, ny, probeCol = 200, 33, 150
	s := newTestSolver(t, Config{Width: nx, Height: ny, InletVelocity: 0.05, Viscosity: 1.0 / 6})
	m0 := totalMass(t, s)
	require.NoError(t, s.Run(6000))
	m6000 := totalMass(t, s)
	require.NoError(t, s.Run(2000))
	m8000 := totalMass(t, s)

	// Inflow and outflow balance: the channel neither fills up nor drains.
	assert.InEpsilon(t, m6000, m8000, 0.01, "mass still drifting at steady state")
	assert.InEpsilon(t, m0, m8000, 0.1)

	rho, err := s.Density()
	require.NoError(t, err)
	assert.GreaterOrEqual(t, rho.MinValue, 0.85)
	assert.LessOrEqual(t, rho.MaxValue, 1.1)

	vel, err := s.Velocity()
	require.NoError(t, err)
	ux := vel.X()
	profile := make([]float64, ny)
	for r := range profile {
		profile[r], err = ux.Value(r, probeCol)
		require.NoError(t, err)
	}

	center := ny / 2
	peak := profile[center]
	require.Greater(t, peak, 0.05)
	for r := 0; r < ny; r++ {
		assert.LessOrEqual(t, profile[r], peak+1e-12, "row %d exceeds centre", r)
		assert.InDelta(t, profile[r], profile[ny-1-r], 1e-9, "asymmetric at row %d", r)
	}
	assert.Zero(t, profile[0])
	assert.Zero(t, profile[ny-1])
	assert.Less(t, profile[1], 0.3*peak)

	// Parabola across the fluid rows with the no-slip walls half a cell
	// outside them.
	half := float64(ny-2) / 2
	var maxDev float64
	for r := 1; r < ny-1; r++ {
		y := (float64(r) - float64(center)) / half
		want := peak * (1 - y*y)
		maxDev = math.Max(maxDev, math.Abs(profile[r]-want))
	}
	assert.Less(t, maxDev, 0.1*peak, "profile deviates from parabola by %g", maxDev)
}

func TestVortexShedding(t *testing.T) {
	if testing.Short() {
		t.Skip("long-running vortex shedding scenario")
	}
	cfg := validConfig()
	cfg.Perturbation, cfg.Seed = 1e-3, 1
	s := newTestSolver(t, cfg)
	assert.InDelta(t, 150, s.Config().Reynolds(), 1e-9)

	probe := NewProbe(75, 160)
	for step := 1; step <= 4000; step++ {
		require.NoError(t, s.Step())
		if step >= 2000 && step%20 == 0 {
			w, err := s.Vorticity()
			require.NoError(t, err)
			require.NoError(t, probe.Record(w))
		}
	}
	require.Len(t, probe.Samples(), 101)
	_, variance := probe.MeanVariance()
	assert.Greater(t, variance, 1e-12, "wake is steady")

	// Vortices leaving through the open outlet cause local density dips;
	// the bulk must stay at the reference density.
	rho, err := s.Density()
	require.NoError(t, err)
	assert.Greater(t, rho.MinValue, 0.5)
	assert.Less(t, rho.MaxValue, 1.5)
	mean := totalMass(t, s) / float64(cfg.Width*cfg.Height)
	assert.InDelta(t, 1.0, mean, 0.05)

	speed, err := s.AverageSpeed()
	require.NoError(t, err)
	assert.Greater(t, speed, 0.0)
}

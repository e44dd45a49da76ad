package lbm

import (
	"fmt"
	"math"
)

// Reference density in lattice units.
const DefaultDensity = 1.0

// Obstacle is a circular solid body. A zero Radius means no obstacle.
type Obstacle struct {
	CenterX, CenterY float64 // column, row
	Radius           float64
}

// Config is the construction-time configuration of a Solver.
type Config struct {
	Width, Height int

	Obstacle Obstacle

	InletVelocity float64 // x-directed, lattice units
	// InletDensity defaults to DefaultDensity when zero.
	InletDensity float64
	Viscosity    float64

	// PeriodicX replaces the inlet and outlet with wraparound in x.
	PeriodicX bool
	// PeriodicY replaces the top and bottom walls with wraparound in y.
	PeriodicY bool

	// Perturbation is the relative amplitude of noise added to the initial
	// populations. Seed makes it reproducible.
	Perturbation float64
	Seed         uint64

	// Workers bounds stage parallelism. 0 uses GOMAXPROCS.
	Workers int
}

// Omega returns the BGK relaxation rate 1/(3ν + 0.5).
func (c Config) Omega() float64 {
	return 1 / (3*c.Viscosity + 0.5)
}

// Reynolds returns u·D/ν with D the obstacle diameter, or the channel
// height when there is no obstacle.
func (c Config) Reynolds() float64 {
	length := 2 * c.Obstacle.Radius
	if length == 0 {
		length = float64(c.Height)
	}
	return math.Abs(c.InletVelocity) * length / c.Viscosity
}

func (c Config) density() float64 {
	if c.InletDensity == 0 {
		return DefaultDensity
	}
	return c.InletDensity
}

// Validate reports the first invalid field as a *ConfigError.
func (c Config) Validate() error {
	if c.Width < 3 {
		return &ConfigError{Field: "grid_width", Reason: fmt.Sprintf("%d must be at least 3", c.Width)}
	}
	if c.Height < 3 {
		return &ConfigError{Field: "grid_height", Reason: fmt.Sprintf("%d must be at least 3", c.Height)}
	}
	if !isFinite(c.Viscosity) || c.Viscosity <= 0 {
		return &ConfigError{Field: "kinematic_viscosity", Reason: fmt.Sprintf("%g must be positive", c.Viscosity)}
	}
	if w := c.Omega(); !(w > 0 && w < 2) {
		return &ConfigError{Field: "kinematic_viscosity", Reason: fmt.Sprintf("omega %g outside (0, 2)", w)}
	}
	if !isFinite(c.InletVelocity) {
		return &ConfigError{Field: "inlet_velocity", Reason: fmt.Sprintf("%g is not finite", c.InletVelocity)}
	}
	if rho := c.density(); !isFinite(rho) || rho <= 0 {
		return &ConfigError{Field: "inlet_density", Reason: fmt.Sprintf("%g must be positive", rho)}
	}
	if !isFinite(c.Perturbation) || c.Perturbation < 0 || c.Perturbation >= 1 {
		return &ConfigError{Field: "perturbation", Reason: fmt.Sprintf("%g outside [0, 1)", c.Perturbation)}
	}
	if c.Workers < 0 {
		return &ConfigError{Field: "workers", Reason: fmt.Sprintf("%d is negative", c.Workers)}
	}
	return c.validateObstacle()
}

func (c Config) validateObstacle() error {
	o := c.Obstacle
	if !isFinite(o.Radius) || o.Radius < 0 {
		return &ConfigError{Field: "obstacle_radius", Reason: fmt.Sprintf("%g must be non-negative", o.Radius)}
	}
	if o.Radius == 0 {
		return nil
	}
	if !isFinite(o.CenterX) || !isFinite(o.CenterY) {
		return &ConfigError{Field: "obstacle_center", Reason: "must be finite"}
	}
	// Strictly inside the interior: clear of inlet, outlet and walls.
	if o.CenterX-o.Radius <= 0 || o.CenterX+o.Radius >= float64(c.Width-1) ||
		o.CenterY-o.Radius <= 0 || o.CenterY+o.Radius >= float64(c.Height-1) {
		return &ConfigError{
			Field:  "obstacle_center",
			Reason: fmt.Sprintf("circle (%g, %g) r=%g does not fit inside %dx%d grid", o.CenterX, o.CenterY, o.Radius, c.Width, c.Height),
		}
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

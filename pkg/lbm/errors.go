package lbm

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration is the class of every construction-time error.
	ErrConfiguration = errors.New("lbm: invalid configuration")
	// ErrDiverged indicates the run produced a non-positive density or a non-finite population.
	ErrDiverged = errors.New("lbm: simulation diverged")
	// ErrUsage indicates the solver was driven out of order.
	ErrUsage = errors.New("lbm: invalid usage")
	// ErrUninitialized indicates a step or field was requested before Init.
	ErrUninitialized = fmt.Errorf("%w: solver is not initialized", ErrUsage)
	// ErrOutOfRange indicates a (row, column) outside the grid.
	ErrOutOfRange = fmt.Errorf("%w: cell index out of range", ErrUsage)
)

// ConfigError reports which Config field was rejected.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("lbm: invalid configuration: %s: %s", e.Field, e.Reason)
}

func (e *ConfigError) Unwrap() error { return ErrConfiguration }

// DivergedError carries the step and cell where the breakdown was observed
// together with the parameters that produced it.
type DivergedError struct {
	Step          int
	Row, Col      int
	Quantity      string
	Value         float64
	Viscosity     float64
	InletVelocity float64
	Omega         float64
}

func (e *DivergedError) Error() string {
	return fmt.Sprintf("lbm: simulation diverged at step %d: %s=%g at (row %d, col %d) with viscosity=%g inlet_velocity=%g omega=%g; increase viscosity or lower inlet velocity",
		e.Step, e.Quantity, e.Value, e.Row, e.Col, e.Viscosity, e.InletVelocity, e.Omega)
}

func (e *DivergedError) Unwrap() error { return ErrDiverged }

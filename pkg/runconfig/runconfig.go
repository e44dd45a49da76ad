// Package runconfig loads driver settings from YAML and converts them to a
// solver configuration.
package runconfig

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/TheFellow/lbm/pkg/lbm"
)

// ErrInvalid indicates run settings that are inconsistent outside the solver.
var ErrInvalid = errors.New("runconfig: invalid run settings")

type Obstacle struct {
	CenterX float64 `yaml:"center_x"`
	CenterY float64 `yaml:"center_y"`
	Radius  float64 `yaml:"radius"`
}

// Run holds everything a driver needs: solver parameters plus stepping and
// output settings.
type Run struct {
	GridWidth     int      `yaml:"grid_width"`
	GridHeight    int      `yaml:"grid_height"`
	Obstacle      Obstacle `yaml:"obstacle"`
	InletVelocity float64  `yaml:"inlet_velocity"`
	InletDensity  float64  `yaml:"inlet_density"`
	Viscosity     float64  `yaml:"kinematic_viscosity"`
	PeriodicX     bool     `yaml:"periodic_x"`
	PeriodicY     bool     `yaml:"periodic_y"`
	Perturbation  float64  `yaml:"perturbation"`
	Seed          uint64   `yaml:"seed"`
	Workers       int      `yaml:"workers"`

	TotalSteps    int    `yaml:"total_steps"`
	StepsPerFrame int    `yaml:"steps_per_frame"`
	SnapshotEvery int    `yaml:"snapshot_every"`
	OutputDir     string `yaml:"output_dir"`
	Field         string `yaml:"field"`   // vorticity or speed
	Palette       string `yaml:"palette"` // sci or viridis
	Scale         int    `yaml:"scale"`   // window pixels per cell
}

// Default returns the vortex street setup: a 400x150 channel, radius 15
// cylinder, inlet 0.1 and viscosity 0.02 (Re 150).
func Default() Run {
	return Run{
		GridWidth:     400,
		GridHeight:    150,
		Obstacle:      Obstacle{CenterX: 100, CenterY: 75, Radius: 15},
		InletVelocity: 0.1,
		Viscosity:     0.02,
		Perturbation:  1e-3,
		Seed:          1,
		TotalSteps:    20000,
		StepsPerFrame: 20,
		SnapshotEvery: 500,
		OutputDir:     "output",
		Field:         "vorticity",
		Palette:       "sci",
		Scale:         2,
	}
}

// Load reads path over Default. Unknown keys are rejected.
func Load(path string) (Run, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Run{}, fmt.Errorf("runconfig: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML over Default and validates the result.
func Parse(data []byte) (Run, error) {
	r := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&r); err != nil && !errors.Is(err, io.EOF) {
		return Run{}, fmt.Errorf("runconfig: %w", err)
	}
	if err := r.Validate(); err != nil {
		return Run{}, err
	}
	return r, nil
}

// Validate checks the run settings and the solver configuration they
// produce.
func (r Run) Validate() error {
	if r.TotalSteps < 0 {
		return fmt.Errorf("%w: total_steps %d is negative", ErrInvalid, r.TotalSteps)
	}
	if r.StepsPerFrame < 1 {
		return fmt.Errorf("%w: steps_per_frame %d must be positive", ErrInvalid, r.StepsPerFrame)
	}
	if r.SnapshotEvery < 0 {
		return fmt.Errorf("%w: snapshot_every %d is negative", ErrInvalid, r.SnapshotEvery)
	}
	if r.Scale < 1 {
		return fmt.Errorf("%w: scale %d must be positive", ErrInvalid, r.Scale)
	}
	switch r.Field {
	case "vorticity", "speed":
	default:
		return fmt.Errorf("%w: field %q, want vorticity or speed", ErrInvalid, r.Field)
	}
	switch r.Palette {
	case "sci", "viridis":
	default:
		return fmt.Errorf("%w: palette %q, want sci or viridis", ErrInvalid, r.Palette)
	}
	return r.Solver().Validate()
}

// Solver converts the run settings to a solver configuration.
func (r Run) Solver() lbm.Config {
	return lbm.Config{
		Width:         r.GridWidth,
		Height:        r.GridHeight,
		Obstacle:      lbm.Obstacle(r.Obstacle),
		InletVelocity: r.InletVelocity,
		InletDensity:  r.InletDensity,
		Viscosity:     r.Viscosity,
		PeriodicX:     r.PeriodicX,
		PeriodicY:     r.PeriodicY,
		Perturbation:  r.Perturbation,
		Seed:          r.Seed,
		Workers:       r.Workers,
	}
}

// Marshal renders r as YAML.
func (r Run) Marshal() ([]byte, error) {
	return yaml.Marshal(r)
}

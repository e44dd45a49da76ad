package main

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/TheFellow/lbm/pkg/colormap"
	"github.com/TheFellow/lbm/pkg/lbm"
	"github.com/TheFellow/lbm/pkg/runconfig"
	"github.com/TheFellow/lbm/pkg/snapshot"
)

var solidColor = color.RGBA{R: 0x30, G: 0x30, B: 0x30, A: 0xff}

type Game struct {
	sim    *lbm.Solver
	run    runconfig.Run
	colors colormap.Map
	solid  []bool
	pixels []byte
	paused bool
}

func NewGame(sim *lbm.Solver, run runconfig.Run) (*Game, error) {
	cfg := sim.Config()
	solid := make([]bool, cfg.Width*cfg.Height)
	for r := 0; r < cfg.Height; r++ {
		for c := 0; c < cfg.Width; c++ {
			kind, err := sim.Kind(r, c)
			if err != nil {
				return nil, err
			}
			solid[r*cfg.Width+c] = kind.NoSlip()
		}
	}
	return &Game{
		sim:    sim,
		run:    run,
		colors: colormap.New(run.Palette),
		solid:  solid,
		pixels: make([]byte, 4*cfg.Width*cfg.Height),
	}, nil
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.sim.Reset(); err != nil {
			return err
		}
	}
	if g.paused {
		return nil
	}
	for i := 0; i < g.run.StepsPerFrame; i++ {
		if err := g.sim.Step(); err != nil {
			return err
		}
	}
	return nil
}

func (g *Game) field() (lbm.ScalarField, float64, float64, error) {
	if g.run.Field == "speed" {
		f, err := g.sim.Speed()
		return f, 0, f.MaxValue, err
	}
	f, err := g.sim.Vorticity()
	lim := math.Max(math.Abs(f.MinValue), math.Abs(f.MaxValue))
	return f, -lim, lim, err
}

func (g *Game) Draw(screen *ebiten.Image) {
	f, lo, hi, err := g.field()
	if err != nil {
		ebitenutil.DebugPrint(screen, err.Error())
		return
	}
	span := hi - lo
	if span <= 0 {
		span = 1
	}
	values := f.Values()
	for r := 0; r < f.NumRows; r++ {
		// Row 0 is the bottom wall.
		y := f.NumRows - 1 - r
		for c := 0; c < f.NumCols; c++ {
			col := g.colors((values[r*f.NumCols+c] - lo) / span)
			if g.solid[r*f.NumCols+c] {
				col = solidColor
			}
			p := 4 * (y*f.NumCols + c)
			g.pixels[p], g.pixels[p+1], g.pixels[p+2], g.pixels[p+3] = col.R, col.G, col.B, col.A
		}
	}
	screen.WritePixels(g.pixels)

	ebitenutil.DebugPrint(screen, fmt.Sprintf("LBM %s - step %d  Re %.0f\nFPS: %0.2f",
		g.run.Field, g.sim.Steps(), g.sim.Config().Reynolds(), ebiten.ActualFPS()))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (w, h int) {
	cfg := g.sim.Config()
	return cfg.Width, cfg.Height
}

// headless steps the solver to run.TotalSteps, writing snapshots every
// run.SnapshotEvery steps.
func headless(sim *lbm.Solver, run runconfig.Run) error {
	lastPercent := -1
	for step := 1; step <= run.TotalSteps; step++ {
		if err := sim.Step(); err != nil {
			return err
		}
		if run.SnapshotEvery > 0 && step%run.SnapshotEvery == 0 {
			paths, err := snapshot.Frame(run.OutputDir, step, sim)
			if err != nil {
				return err
			}
			log.Printf("step %d: wrote %d files (%s ...)", step, len(paths), paths[0])
		}
		if percent := step * 100 / run.TotalSteps; percent != lastPercent {
			mass, err := sim.TotalMass()
			if err != nil {
				return err
			}
			speed, err := sim.AverageSpeed()
			if err != nil {
				return err
			}
			log.Printf("Progress: %d%%  mass=%.6f  mean |u|=%.5f", percent, mass, speed)
			lastPercent = percent
		}
	}
	return nil
}

func main() {
	configPath := flag.String("config", "", "Path to YAML run configuration")
	noWindow := flag.Bool("headless", false, "Run without a window and write snapshots")
	steps := flag.Int("steps", -1, "Override total_steps")
	outDir := flag.String("out", "", "Override output_dir")
	flag.Parse()

	run := runconfig.Default()
	if *configPath != "" {
		var err error
		if run, err = runconfig.Load(*configPath); err != nil {
			log.Fatalf("Error loading configuration: %v", err)
		}
	}
	if *steps >= 0 {
		run.TotalSteps = *steps
	}
	if *outDir != "" {
		run.OutputDir = *outDir
	}

	sim, err := lbm.New(run.Solver())
	if err != nil {
		log.Fatalf("Error: %v", err)
	}
	log.Printf("grid %dx%d  omega=%.4f  Re=%.1f", run.GridWidth, run.GridHeight, sim.Omega(), run.Solver().Reynolds())

	if *noWindow {
		if err := headless(sim, run); err != nil {
			if errors.Is(err, lbm.ErrDiverged) {
				log.Fatalf("Simulation aborted: %v", err)
			}
			log.Fatalf("Error: %v", err)
		}
		log.Printf("Simulation complete after %d steps.", sim.Steps())
		return
	}

	ebiten.SetWindowSize(run.GridWidth*run.Scale, run.GridHeight*run.Scale)
	ebiten.SetWindowTitle("LBM vortex street")
	game, err := NewGame(sim, run)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

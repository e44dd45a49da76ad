package snapshot

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/TheFellow/lbm/pkg/lbm"
)

// Frame writes the state of s after step into dir: vorticity and speed
// heatmaps plus binary dumps of density and both velocity components.
// It returns the paths written.
func Frame(dir string, step int, s *lbm.Solver) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("snapshot: cannot create directory: %w", err)
	}

	vort, err := s.Vorticity()
	if err != nil {
		return nil, err
	}
	speed, err := s.Speed()
	if err != nil {
		return nil, err
	}
	rho, err := s.Density()
	if err != nil {
		return nil, err
	}
	vel, err := s.Velocity()
	if err != nil {
		return nil, err
	}

	var paths []string
	name := func(kind, ext string) string {
		p := filepath.Join(dir, fmt.Sprintf("%s_%06d.%s", kind, step, ext))
		paths = append(paths, p)
		return p
	}

	style := DefaultStyle(fmt.Sprintf("vorticity, step %d", step))
	style.Diverging = true
	if err := SaveHeatmapPNG(name("vorticity", "png"), vort, style); err != nil {
		return paths, err
	}
	if err := SaveHeatmapPNG(name("speed", "png"), speed, DefaultStyle(fmt.Sprintf("|u|, step %d", step))); err != nil {
		return paths, err
	}
	for _, d := range []struct {
		kind  string
		field lbm.ScalarField
	}{
		{"density", rho},
		{"ux", vel.X()},
		{"uy", vel.Y()},
	} {
		if err := saveDense(name(d.kind, "bin"), d.field); err != nil {
			return paths, err
		}
	}
	return paths, nil
}

func saveDense(filename string, f lbm.ScalarField) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("snapshot: cannot create dump: %w", err)
	}
	defer file.Close()

	bw := bufio.NewWriter(file)
	if err := WriteDense(bw, f); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("snapshot: cannot write dump: %w", err)
	}
	return file.Close()
}

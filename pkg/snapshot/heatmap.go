package snapshot

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/TheFellow/lbm/pkg/lbm"
)

// Style controls heatmap rendering.
type Style struct {
	Title string
	// Diverging uses a blue-red map centred on zero, for signed fields
	// such as vorticity. Otherwise a sequential map spans [min, max].
	Diverging bool
	// Width and Height are in inches.
	Width, Height float64
	DPI           int
}

// DefaultStyle returns an 8x3 inch, 150 DPI sequential style.
func DefaultStyle(title string) Style {
	return Style{Title: title, Width: 8, Height: 3, DPI: 150}
}

// grid exposes a ScalarField as a plotter.GridXYZ with columns on x and
// rows on y.
type grid struct {
	f lbm.ScalarField
}

func (g grid) Dims() (c, r int) { return g.f.NumCols, g.f.NumRows }
func (g grid) Z(c, r int) float64 {
	v, _ := g.f.Value(r, c)
	return v
}
func (g grid) X(c int) float64 { return float64(c) }
func (g grid) Y(r int) float64 { return float64(r) }

// Heatmap builds a plot of f.
func Heatmap(f lbm.ScalarField, style Style) *plot.Plot {
	p := plot.New()
	p.Title.Text = style.Title
	p.X.Label.Text = "column"
	p.Y.Label.Text = "row"

	var cmap palette.ColorMap
	if style.Diverging {
		cmap = moreland.SmoothBlueRed()
	} else {
		cmap = moreland.Kindlmann()
	}
	cmap.SetMax(1)
	cmap.SetMin(0)

	hm := plotter.NewHeatMap(grid{f}, cmap.Palette(255))
	lo, hi := f.MinValue, f.MaxValue
	if style.Diverging {
		lim := math.Max(math.Abs(lo), math.Abs(hi))
		lo, hi = -lim, lim
	}
	if hi <= lo {
		lo, hi = lo-1, lo+1
	}
	hm.Min, hm.Max = lo, hi
	p.Add(hm)
	return p
}

// WriteHeatmapPNG renders f as PNG into w.
func WriteHeatmapPNG(w io.Writer, f lbm.ScalarField, style Style) error {
	c := vgimg.NewWith(
		vgimg.UseWH(vg.Length(style.Width)*vg.Inch, vg.Length(style.Height)*vg.Inch),
		vgimg.UseDPI(style.DPI),
	)
	Heatmap(f, style).Draw(draw.New(c))

	png := vgimg.PngCanvas{Canvas: c}
	if _, err := png.WriteTo(w); err != nil {
		return fmt.Errorf("snapshot: cannot write png: %w", err)
	}
	return nil
}

// SaveHeatmapPNG writes f to filename, creating parent directories.
func SaveHeatmapPNG(filename string, f lbm.ScalarField, style Style) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0o755); err != nil {
		return fmt.Errorf("snapshot: cannot create directory: %w", err)
	}
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("snapshot: cannot create png: %w", err)
	}
	defer file.Close()

	bw := bufio.NewWriter(file)
	if err := WriteHeatmapPNG(bw, f, style); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("snapshot: cannot write png: %w", err)
	}
	return file.Close()
}

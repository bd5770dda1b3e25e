// Package heatmap renders a region grid as an image for debugging map
// analysis: one color per region id, with area centers and deposit centers
// drawn on top.
package heatmap

import (
	"errors"
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/katalvlaran/terrain/areagraph"
	"github.com/katalvlaran/terrain/deposit"
	"github.com/katalvlaran/terrain/segment"
)

// ErrTooSmall is returned for maps narrower or shorter than two tiles,
// which a heat map cannot grid.
var ErrTooSmall = errors.New("heatmap: map must be at least 2x2 tiles")

// regionGrid adapts a RegionGrid to plotter.GridXYZ.
type regionGrid struct {
	rg *segment.RegionGrid
}

func (g regionGrid) Dims() (c, r int)   { return g.rg.Width, g.rg.Height }
func (g regionGrid) Z(c, r int) float64 { return float64(g.rg.IDs[r*g.rg.Width+c]) }
func (g regionGrid) X(c int) float64    { return float64(c) }
func (g regionGrid) Y(r int) float64    { return float64(r) }

// Plot builds the region heat map of gr with deposit centers marked.
func Plot(gr *areagraph.Graph, deposits []deposit.Deposit, title string) (*plot.Plot, error) {
	rg := gr.Regions()
	if rg.Width < 2 || rg.Height < 2 {
		return nil, ErrTooSmall
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	n := rg.Count() + 1
	if n < 2 {
		n = 2
	}
	hm := plotter.NewHeatMap(regionGrid{rg: rg}, palette.Heat(n, 1))
	hm.Min, hm.Max = 0, float64(n-1)
	p.Add(hm)

	var centers plotter.XYs
	for _, a := range gr.Areas() {
		centers = append(centers, plotter.XY{X: float64(a.Center.X), Y: float64(a.Center.Y)})
	}
	if len(centers) > 0 {
		s, err := plotter.NewScatter(centers)
		if err != nil {
			return nil, fmt.Errorf("area centers: %w", err)
		}
		s.GlyphStyle.Shape = draw.CircleGlyph{}
		s.GlyphStyle.Color = color.Black
		p.Add(s)
		p.Legend.Add("area center", s)
	}

	var sites plotter.XYs
	for _, d := range deposits {
		sites = append(sites, plotter.XY{X: float64(d.Center.X), Y: float64(d.Center.Y)})
	}
	if len(sites) > 0 {
		s, err := plotter.NewScatter(sites)
		if err != nil {
			return nil, fmt.Errorf("deposit centers: %w", err)
		}
		s.GlyphStyle.Shape = draw.PyramidGlyph{}
		s.GlyphStyle.Color = color.RGBA{B: 255, A: 255}
		s.GlyphStyle.Radius = vg.Points(4)
		p.Add(s)
		p.Legend.Add("deposit", s)
	}

	p.Legend.Top = true
	return p, nil
}

// Save renders gr to path; the format follows the file extension
// (.png, .svg, .pdf, ...). The image is 8 inches wide and keeps the map's
// aspect ratio.
func Save(gr *areagraph.Graph, deposits []deposit.Deposit, title, path string) error {
	p, err := Plot(gr, deposits, title)
	if err != nil {
		return err
	}
	rg := gr.Regions()
	w := 8 * vg.Inch
	h := w * vg.Length(rg.Height) / vg.Length(rg.Width)
	if h < 2*vg.Inch {
		h = 2 * vg.Inch
	}
	if err := p.Save(w, h, path); err != nil {
		return fmt.Errorf("save heat map: %w", err)
	}
	return nil
}

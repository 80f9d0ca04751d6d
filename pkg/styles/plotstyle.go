package styles

import (
	"image/color"
	"sync"

	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/font/liberation"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// LineStyle returns a line style for data series matching cfg, the
// counterpart of the axis line widths Apply sets.
func LineStyle(cfg Config) draw.LineStyle {
	return draw.LineStyle{
		Color: color.Black,
		Width: vg.Points(cfg.LineWidth),
	}
}

// Grid returns a grid plotter whose lines match cfg's line width.
func Grid(cfg Config) *plotter.Grid {
	g := plotter.NewGrid()
	g.Vertical.Width = vg.Points(cfg.LineWidth)
	g.Horizontal.Width = vg.Points(cfg.LineWidth)
	return g
}

var (
	texOnce sync.Once
	tex     text.Latex
)

// texHandler returns the shared LaTeX text handler. The font cache is built
// once; drawing through it is not guaranteed to be concurrency-safe, so
// callers rendering in parallel must serialize draws.
func texHandler() text.Latex {
	texOnce.Do(func() {
		tex = text.Latex{
			Fonts: font.NewCache(liberation.Collection()),
			DPI:   72,
		}
	})
	return tex
}

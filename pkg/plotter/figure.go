package plotter

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg/draw"

	"github.com/matzehuels/sciplot/pkg/errors"
	"github.com/matzehuels/sciplot/pkg/styles"
)

// Figure is a drawing surface of fixed physical size. Subplots are arranged
// on a row-major grid in the add_subplot(rows, cols, index) convention; each
// subplot is a *plot.Plot pre-styled with the figure's config.
type Figure struct {
	width  float64 // inches
	height float64 // inches
	cfg    styles.Config

	rows, cols int
	plots      []*plot.Plot // row-major, nil for empty cells
}

func newFigure(width, height float64, cfg styles.Config) *Figure {
	return &Figure{width: width, height: height, cfg: cfg}
}

// Width returns the figure width in inches.
func (f *Figure) Width() float64 { return f.width }

// Height returns the figure height in inches.
func (f *Figure) Height() float64 { return f.height }

// Config returns the rendering config applied to this figure's subplots.
func (f *Figure) Config() styles.Config { return f.cfg }

// AddSubplot creates (or returns) the subplot at the 1-based, row-major
// index of a rows x cols grid. The first call fixes the grid; later calls
// with a different geometry fail with an INVALID_SUBPLOT error. Asking for
// an already-created cell returns the existing subplot.
func (f *Figure) AddSubplot(rows, cols, index int) (*plot.Plot, error) {
	if rows < 1 || cols < 1 {
		return nil, errors.New(errors.ErrCodeInvalidSubplot,
			"subplot grid %dx%d is not positive", rows, cols)
	}
	if index < 1 || index > rows*cols {
		return nil, errors.New(errors.ErrCodeInvalidSubplot,
			"subplot index %d outside %dx%d grid", index, rows, cols)
	}

	if f.rows == 0 {
		f.rows, f.cols = rows, cols
		f.plots = make([]*plot.Plot, rows*cols)
	} else if rows != f.rows || cols != f.cols {
		return nil, errors.New(errors.ErrCodeInvalidSubplot,
			"subplot grid %dx%d conflicts with existing %dx%d grid", rows, cols, f.rows, f.cols)
	}

	if existing := f.plots[index-1]; existing != nil {
		return existing, nil
	}

	p := plot.New()
	styles.Apply(f.cfg, p)
	f.plots[index-1] = p
	return p, nil
}

// Subplots returns the created subplots in row-major order, skipping empty
// grid cells.
func (f *Figure) Subplots() []*plot.Plot {
	out := make([]*plot.Plot, 0, len(f.plots))
	for _, p := range f.plots {
		if p != nil {
			out = append(out, p)
		}
	}
	return out
}

// draw aligns the subplot grid on dc and renders every subplot.
func (f *Figure) draw(dc draw.Canvas) {
	if f.rows == 0 {
		return
	}

	grid := make([][]*plot.Plot, f.rows)
	for r := 0; r < f.rows; r++ {
		grid[r] = f.plots[r*f.cols : (r+1)*f.cols]
	}

	tiles := draw.Tiles{Rows: f.rows, Cols: f.cols}
	canvases := plot.Align(grid, tiles, dc)
	for r := 0; r < f.rows; r++ {
		for c := 0; c < f.cols; c++ {
			if grid[r][c] != nil {
				grid[r][c].Draw(canvases[r][c])
			}
		}
	}
}

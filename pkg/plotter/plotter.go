package plotter

import (
	"strings"
	"time"

	"gonum.org/v1/plot"

	"github.com/matzehuels/sciplot/pkg/errors"
	"github.com/matzehuels/sciplot/pkg/observability"
	"github.com/matzehuels/sciplot/pkg/sizes"
	"github.com/matzehuels/sciplot/pkg/styles"
)

// Defaults applied when construction parameters are left empty.
const (
	DefaultFormatSpec = "latex,revtex"
	DefaultFlag       = "default"
)

// Plotter is the figure-production facade: one style, one size profile, one
// output target, and at most one current figure.
type Plotter struct {
	Style  styles.Style
	Size   *sizes.Profile
	Config styles.Config

	// OutputPath is where Save writes; its extension selects the format.
	OutputPath string

	// Flag is an opaque value for the calling script. The plotter stores
	// it verbatim and never interprets it.
	Flag string

	figure *Figure
}

// New creates a Plotter from an output filename and a format spec of the
// form "style,size" (e.g. "latex,revtex", "matlab,a0poster"). Empty
// formatSpec and flag fall back to DefaultFormatSpec and DefaultFlag.
//
// Both names must resolve against their registries; the style's rendering
// config is computed immediately so later figure calls cannot fail on it.
func New(output, formatSpec, flag string) (*Plotter, error) {
	if output == "" {
		return nil, errors.New(errors.ErrCodeInvalidInput, "output filename is empty")
	}
	if formatSpec == "" {
		formatSpec = DefaultFormatSpec
	}
	if flag == "" {
		flag = DefaultFlag
	}

	styleName, sizeName, err := splitFormatSpec(formatSpec)
	if err != nil {
		return nil, err
	}

	style, err := styles.Lookup(styleName)
	if err != nil {
		return nil, err
	}
	size, err := sizes.Lookup(sizeName)
	if err != nil {
		return nil, err
	}
	cfg, err := style.Config(size)
	if err != nil {
		return nil, err
	}

	return &Plotter{
		Style:      style,
		Size:       size,
		Config:     cfg,
		OutputPath: output,
		Flag:       flag,
	}, nil
}

// splitFormatSpec splits "style,size" into its two parts.
func splitFormatSpec(spec string) (style, size string, err error) {
	parts := strings.Split(spec, ",")
	if len(parts) != 2 {
		return "", "", errors.New(errors.ErrCodeInvalidFormat,
			"format spec %q must be exactly \"style,size\"", spec)
	}
	return parts[0], parts[1], nil
}

// FigureOption configures figure creation.
type FigureOption func(*figureOptions)

type figureOptions struct {
	height float64
}

// WithHeight overrides the size profile's default figure height (inches).
func WithHeight(inches float64) FigureOption {
	return func(o *figureOptions) { o.height = inches }
}

// NormalFigure creates a figure of normal (single-column) width and makes
// it the current figure. The height defaults to the size profile's normal
// default height.
func (p *Plotter) NormalFigure(opts ...FigureOption) *Figure {
	return p.newFigure(p.Size.NormalWidth, p.Size.NormalHeight, opts)
}

// WideFigure creates a figure of wide (double-column) width and makes it
// the current figure.
func (p *Plotter) WideFigure(opts ...FigureOption) *Figure {
	return p.newFigure(p.Size.WideWidth, p.Size.WideHeight, opts)
}

// NormalFigureSingleAxes creates a normal figure with a single subplot
// spanning the whole surface and returns that subplot.
func (p *Plotter) NormalFigureSingleAxes(opts ...FigureOption) (*plot.Plot, error) {
	return p.NormalFigure(opts...).AddSubplot(1, 1, 1)
}

// Figure returns the current figure, or nil if none has been created.
func (p *Plotter) Figure() *Figure {
	return p.figure
}

func (p *Plotter) newFigure(width, defaultHeight float64, opts []FigureOption) *Figure {
	o := figureOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	height := o.height
	if height <= 0 {
		height = defaultHeight
	}

	p.figure = newFigure(width, height, p.Config)
	observability.Render().OnFigure(p.Style.Name, p.Size.Name, width, height)
	return p.figure
}

// SaveOption configures saving.
type SaveOption func(*saveOptions)

type saveOptions struct {
	dpi int
}

// WithDPI sets the raster resolution in dots per inch (default 300).
// Vector formats ignore it.
func WithDPI(dpi int) SaveOption {
	return func(o *saveOptions) { o.dpi = dpi }
}

// Save renders the current figure to OutputPath with the format inferred
// from the filename extension. It fails with a NO_FIGURE error if no figure
// has been created yet.
func (p *Plotter) Save(opts ...SaveOption) error {
	if p.figure == nil {
		return errors.New(errors.ErrCodeNoFigure,
			"save called before any figure was created")
	}

	o := saveOptions{dpi: DefaultDPI}
	for _, opt := range opts {
		opt(&o)
	}

	start := time.Now()
	err := p.figure.WriteFile(p.OutputPath, o.dpi)
	observability.Render().OnSave(p.OutputPath, formatFromPath(p.OutputPath), o.dpi, time.Since(start), err)
	return err
}

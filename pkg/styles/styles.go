package styles

import (
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"

	"github.com/matzehuels/sciplot/pkg/errors"
	"github.com/matzehuels/sciplot/pkg/sizes"
)

// Config bundles the rendering defaults a style derives from a size profile.
// It travels with each figure instead of living in process-wide state, so
// two plotters with different styles can coexist in one process.
type Config struct {
	FontSize  float64 // base font size in points (labels, ticks, legend)
	TitleSize float64 // axes title size in points
	LineWidth float64 // axis, tick and grid line width in points

	Serif   bool // use the serif typeface family
	TeXText bool // render text through the LaTeX handler
}

// Style associates a name with a rule for deriving a Config from a size
// profile. Styles read their own column of the profile's metric tables.
type Style struct {
	Name      string
	configure func(*sizes.Profile) (Config, error)
}

// Config computes the rendering defaults this style derives from prof.
func (s Style) Config(prof *sizes.Profile) (Config, error) {
	return s.configure(prof)
}

var registry = map[string]Style{
	"latex": {
		Name: "latex",
		configure: func(prof *sizes.Profile) (Config, error) {
			fontSize, titleSize, lineWidth, err := prof.Metrics("latex")
			if err != nil {
				return Config{}, err
			}
			return Config{
				FontSize:  fontSize,
				TitleSize: titleSize,
				LineWidth: lineWidth,
				Serif:     true,
				TeXText:   true,
			}, nil
		},
	},
	"matlab": {
		Name: "matlab",
		configure: func(prof *sizes.Profile) (Config, error) {
			fontSize, titleSize, lineWidth, err := prof.Metrics("matlab")
			if err != nil {
				return Config{}, err
			}
			return Config{
				FontSize:  fontSize,
				TitleSize: titleSize,
				LineWidth: lineWidth,
			}, nil
		},
	},
}

// Lookup returns the style registered under name.
func Lookup(name string) (Style, error) {
	s, ok := registry[name]
	if !ok {
		return Style{}, errors.New(errors.ErrCodeStyleNotFound,
			"style %q not registered (available: %v)", name, Names())
	}
	return s, nil
}

// Names returns the registered style names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Apply pushes cfg onto a plot: line widths for axes and ticks, font sizes
// for title, labels, ticks and legend, and optionally the serif typeface
// and LaTeX text handler.
func Apply(cfg Config, p *plot.Plot) {
	lw := vg.Points(cfg.LineWidth)
	fontSize := vg.Points(cfg.FontSize)

	p.X.LineStyle.Width = lw
	p.Y.LineStyle.Width = lw
	p.X.Tick.LineStyle.Width = lw
	p.Y.Tick.LineStyle.Width = lw

	p.Title.TextStyle.Font.Size = vg.Points(cfg.TitleSize)
	for _, ts := range textStyles(p) {
		if ts != &p.Title.TextStyle {
			ts.Font.Size = fontSize
		}
		if cfg.Serif {
			ts.Font.Typeface = serifTypeface
			ts.Font.Variant = "Serif"
		}
	}

	if cfg.TeXText {
		h := texHandler()
		p.TextHandler = h
		for _, ts := range textStyles(p) {
			ts.Handler = h
		}
	}
}

// textStyles collects the text styles a config applies to.
func textStyles(p *plot.Plot) []*text.Style {
	return []*text.Style{
		&p.Title.TextStyle,
		&p.X.Label.TextStyle,
		&p.Y.Label.TextStyle,
		&p.X.Tick.Label,
		&p.Y.Tick.Label,
		&p.Legend.TextStyle,
	}
}

const serifTypeface = font.Typeface("Liberation")

package sizes

import (
	"sort"

	"github.com/matzehuels/sciplot/pkg/errors"
)

// Profile describes the physical geometry and per-style typography metrics
// for one publication format. Widths and heights are in inches, font and
// line metrics in printer's points.
//
// The per-style maps are keyed by style name (e.g. "latex", "matlab"), so a
// profile can carry different metrics for every rendering style that might
// consume it.
type Profile struct {
	Name string

	NormalWidth  float64 // width of a normal (single-column) figure
	NormalHeight float64 // default height of a normal figure
	WideWidth    float64 // width of a wide (double-column) figure
	WideHeight   float64 // default height of a wide figure

	FontSize  map[string]float64 // base font size per style
	TitleSize map[string]float64 // axes title size per style
	LineWidth map[string]float64 // line width per style
}

// Metrics returns the font size, title size and line width this profile
// specifies for the given style name.
func (p *Profile) Metrics(style string) (fontSize, titleSize, lineWidth float64, err error) {
	fontSize, okF := p.FontSize[style]
	titleSize, okT := p.TitleSize[style]
	lineWidth, okL := p.LineWidth[style]
	if !okF || !okT || !okL {
		return 0, 0, 0, errors.New(errors.ErrCodeStyleNotFound,
			"size profile %q has no metrics for style %q", p.Name, style)
	}
	return fontSize, titleSize, lineWidth, nil
}

// clone returns a deep copy so registry entries stay immutable.
func (p *Profile) clone() *Profile {
	c := *p
	c.FontSize = cloneMap(p.FontSize)
	c.TitleSize = cloneMap(p.TitleSize)
	c.LineWidth = cloneMap(p.LineWidth)
	return &c
}

func cloneMap(m map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Built-in profiles. Column widths are given in points by the publication
// formats and converted to inches (1 in = 72 pt).
var registry = map[string]*Profile{
	"revtex": {
		Name:         "revtex",
		NormalWidth:  243.0 / 72.0,
		NormalHeight: 2.0,
		WideWidth:    482.0 / 72.0,
		WideHeight:   4.0,
		FontSize:     map[string]float64{"matlab": 7, "latex": 8},
		TitleSize:    map[string]float64{"matlab": 8, "latex": 9},
		LineWidth:    map[string]float64{"matlab": 0.4, "latex": 0.4},
	},
	"a0poster": {
		Name:         "a0poster",
		NormalWidth:  700.0 / 72.0,
		NormalHeight: 500.0 / 72.0,
		WideWidth:    1400.0 / 72.0,
		WideHeight:   500.0 / 72.0,
		FontSize:     map[string]float64{"matlab": 14, "latex": 16},
		TitleSize:    map[string]float64{"matlab": 16, "latex": 18},
		LineWidth:    map[string]float64{"matlab": 1, "latex": 1},
	},
}

// Lookup returns the size profile registered under name.
// The returned profile is a copy; callers may modify it freely without
// affecting later lookups.
func Lookup(name string) (*Profile, error) {
	p, ok := registry[name]
	if !ok {
		return nil, errors.New(errors.ErrCodeSizeNotFound,
			"size %q not registered (available: %v)", name, Names())
	}
	return p.clone(), nil
}

// Names returns the registered profile names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Register adds a profile to the registry, replacing any existing profile
// with the same name. Replacing a built-in is allowed so users can tweak
// the stock formats from a profile file.
func Register(p Profile) error {
	if err := validate(&p); err != nil {
		return err
	}
	registry[p.Name] = p.clone()
	return nil
}

func validate(p *Profile) error {
	if p.Name == "" {
		return errors.New(errors.ErrCodeInvalidProfile, "size profile has no name")
	}
	if p.NormalWidth <= 0 || p.NormalHeight <= 0 || p.WideWidth <= 0 || p.WideHeight <= 0 {
		return errors.New(errors.ErrCodeInvalidProfile,
			"size profile %q has non-positive dimensions", p.Name)
	}
	return nil
}

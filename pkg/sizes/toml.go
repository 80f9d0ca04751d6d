package sizes

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/sciplot/pkg/errors"
)

// profileFile is the TOML document shape for user-defined size profiles.
type profileFile struct {
	Sizes []tomlProfile `toml:"size"`
}

type tomlProfile struct {
	Name         string             `toml:"name"`
	NormalWidth  float64            `toml:"normal_width"`
	NormalHeight float64            `toml:"normal_height"`
	WideWidth    float64            `toml:"wide_width"`
	WideHeight   float64            `toml:"wide_height"`
	FontSize     map[string]float64 `toml:"fontsize"`
	TitleSize    map[string]float64 `toml:"titlesize"`
	LineWidth    map[string]float64 `toml:"linewidth"`
}

// LoadFile parses size profiles from a TOML file without registering them.
func LoadFile(path string) ([]Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidProfile, err, "read profiles %s", path)
	}

	var doc profileFile
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidProfile, err, "parse profiles %s", path)
	}

	profiles := make([]Profile, 0, len(doc.Sizes))
	for _, tp := range doc.Sizes {
		p := Profile{
			Name:         tp.Name,
			NormalWidth:  tp.NormalWidth,
			NormalHeight: tp.NormalHeight,
			WideWidth:    tp.WideWidth,
			WideHeight:   tp.WideHeight,
			FontSize:     tp.FontSize,
			TitleSize:    tp.TitleSize,
			LineWidth:    tp.LineWidth,
		}
		if err := validate(&p); err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, nil
}

// RegisterFile loads profiles from a TOML file and registers all of them.
func RegisterFile(path string) error {
	profiles, err := LoadFile(path)
	if err != nil {
		return err
	}
	for _, p := range profiles {
		if err := Register(p); err != nil {
			return err
		}
	}
	return nil
}

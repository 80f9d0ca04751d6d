package plotter

import (
	"github.com/matzehuels/sciplot/pkg/errors"
)

// Defaults fills in the fields an argument vector leaves unspecified.
type Defaults struct {
	Format     string // format spec, e.g. "latex,revtex"
	OutputType string // extension appended when no filename is given
	Flag       string // opaque flag value
}

// DefaultArgs are the defaults used by FromArgs.
var DefaultArgs = Defaults{
	Format:     DefaultFormatSpec,
	OutputType: "pdf",
	Flag:       DefaultFlag,
}

// FromArgs creates a Plotter from a positional argument vector, typically
// os.Args. Expected invocations:
//
//	prog output.pdf latex,revtex do_legend
//	prog output.pdf latex,revtex
//	prog output.pdf
//	prog
//
// With no arguments beyond the program name, the output filename becomes
// "<prog>.<type>". Unspecified trailing fields take their defaults.
func FromArgs(args []string) (*Plotter, error) {
	return FromArgsWith(args, DefaultArgs)
}

// FromArgsWith is FromArgs with caller-provided defaults. Zero fields of d
// fall back to DefaultArgs.
func FromArgsWith(args []string, d Defaults) (*Plotter, error) {
	if d.Format == "" {
		d.Format = DefaultArgs.Format
	}
	if d.OutputType == "" {
		d.OutputType = DefaultArgs.OutputType
	}
	if d.Flag == "" {
		d.Flag = DefaultArgs.Flag
	}

	var output, format, flag string
	switch len(args) {
	case 1:
		output, format, flag = args[0]+"."+d.OutputType, d.Format, d.Flag
	case 2:
		output, format, flag = args[1], d.Format, d.Flag
	case 3:
		output, format, flag = args[1], args[2], d.Flag
	case 4:
		output, format, flag = args[1], args[2], args[3]
	default:
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"expected 1 to 4 positional arguments, got %d", len(args))
	}

	return New(output, format, flag)
}

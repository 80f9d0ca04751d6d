package plotter

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgeps"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"
	"gonum.org/v1/plot/vg/vgtex"

	"github.com/matzehuels/sciplot/pkg/errors"
)

// DefaultDPI is the raster resolution used when none is given.
const DefaultDPI = 300

// formatFromPath derives the output format from a filename extension.
func formatFromPath(path string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
}

// WriteFile renders the figure to path, the format inferred from the
// extension. Raster formats honor dpi; vector formats ignore it.
func (f *Figure) WriteFile(path string, dpi int) error {
	format := formatFromPath(path)
	if format == "" {
		return errors.New(errors.ErrCodeUnsupported,
			"output %q has no extension to infer a format from", path)
	}

	fd, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "create %s", path)
	}
	if err := f.WriteTo(fd, format, dpi); err != nil {
		fd.Close()
		return err
	}
	if err := fd.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "close %s", path)
	}
	return nil
}

// WriteTo renders the figure to w in the given format. Supported formats:
// png, jpg, jpeg, tif, tiff (raster, at dpi), pdf, svg, eps, tex (vector).
// A dpi of zero or less falls back to DefaultDPI.
func (f *Figure) WriteTo(w io.Writer, format string, dpi int) error {
	if dpi <= 0 {
		dpi = DefaultDPI
	}
	width := vg.Length(f.width) * vg.Inch
	height := vg.Length(f.height) * vg.Inch

	var out io.WriterTo
	switch format {
	case "png", "jpg", "jpeg", "tif", "tiff":
		c := vgimg.NewWith(vgimg.UseWH(width, height), vgimg.UseDPI(dpi))
		f.draw(draw.New(c))
		switch format {
		case "png":
			out = vgimg.PngCanvas{Canvas: c}
		case "jpg", "jpeg":
			out = vgimg.JpegCanvas{Canvas: c}
		default:
			out = vgimg.TiffCanvas{Canvas: c}
		}
	case "pdf":
		c := vgpdf.New(width, height)
		f.draw(draw.New(c))
		out = c
	case "svg":
		c := vgsvg.New(width, height)
		f.draw(draw.New(c))
		out = c
	case "eps":
		c := vgeps.New(width, height)
		f.draw(draw.New(c))
		out = c
	case "tex":
		c := vgtex.NewDocument(width, height)
		f.draw(draw.New(c))
		out = c
	default:
		return errors.New(errors.ErrCodeUnsupported, "unsupported output format %q", format)
	}

	if _, err := out.WriteTo(w); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode %s", format)
	}
	return nil
}

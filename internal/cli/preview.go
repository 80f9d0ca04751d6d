package cli

import (
	"context"
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	gplt "gonum.org/v1/plot/plotter"

	"github.com/matzehuels/sciplot/pkg/plotter"
	"github.com/matzehuels/sciplot/pkg/sizes"
	"github.com/matzehuels/sciplot/pkg/styles"
)

// previewOpts holds the command-line flags for the preview command.
type previewOpts struct {
	format      string  // format spec "style,size"
	flag        string  // opaque flag handed to the plot script
	wide        bool    // use the wide figure width
	height      float64 // height override in inches (0 = profile default)
	dpi         int     // raster resolution
	profiles    string  // TOML file with extra size profiles
	all         bool    // render every style/size combination
	interactive bool    // pick the format interactively
}

// previewCommand creates the preview command rendering demonstration figures.
func (c *CLI) previewCommand() *cobra.Command {
	opts := previewOpts{
		format: plotter.DefaultFormatSpec,
		flag:   plotter.DefaultFlag,
		dpi:    plotter.DefaultDPI,
	}

	cmd := &cobra.Command{
		Use:   "preview [output]",
		Short: "Render a demonstration figure for a format",
		Long: `Render a demonstration figure for a format.

The preview command produces a small damped-oscillation plot through the
same facade plot scripts use, so the effect of a style/size combination can
be judged before committing a paper's figures to it. The output format is
inferred from the filename extension (png, pdf, svg, eps, tex, ...).

With --all, every registered style/size combination is rendered to
<base>_<style>_<size>.<ext>. With --interactive, the combination is picked
from a list instead of --format.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := "preview.png"
			if len(args) == 1 {
				output = args[0]
			}
			if err := loadProfiles(opts.profiles); err != nil {
				return err
			}
			return c.runPreview(cmd.Context(), output, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, `format spec "style,size"`)
	cmd.Flags().StringVar(&opts.flag, "flag", opts.flag, "opaque flag passed through to the demo script")
	cmd.Flags().BoolVar(&opts.wide, "wide", false, "use the wide figure width")
	cmd.Flags().Float64Var(&opts.height, "height", 0, "figure height in inches (0 = profile default)")
	cmd.Flags().IntVar(&opts.dpi, "dpi", opts.dpi, "raster resolution in dots per inch")
	cmd.Flags().StringVar(&opts.profiles, "profiles", "", "TOML file with additional size profiles")
	cmd.Flags().BoolVar(&opts.all, "all", false, "render every style/size combination")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "pick the format interactively")

	return cmd
}

func (c *CLI) runPreview(ctx context.Context, output string, opts *previewOpts) error {
	if opts.all {
		return c.runPreviewAll(ctx, output, opts)
	}

	format := opts.format
	if opts.interactive {
		picked, err := pickFormat()
		if err != nil {
			return err
		}
		if picked == "" {
			printDetail("no format selected")
			return nil
		}
		format = picked
	}

	if err := renderPreview(output, format, opts.flag, opts.wide, opts.height, opts.dpi); err != nil {
		return err
	}

	printSuccess("rendered %s", format)
	printFile(output)
	return nil
}

// runPreviewAll renders every style/size combination next to output.
func (c *CLI) runPreviewAll(ctx context.Context, output string, opts *previewOpts) error {
	ext := filepath.Ext(output)
	base := strings.TrimSuffix(output, ext)
	if ext == "" {
		ext = ".png"
	}

	spinner := newSpinnerWithContext(ctx, "Rendering previews...")
	spinner.Start()

	var outputs []string
	for _, sizeName := range sizes.Names() {
		for _, styleName := range styles.Names() {
			if err := ctx.Err(); err != nil {
				spinner.Stop()
				return err
			}
			spinner.SetMessage(fmt.Sprintf("Rendering %s,%s...", styleName, sizeName))

			path := fmt.Sprintf("%s_%s_%s%s", base, styleName, sizeName, ext)
			format := styleName + "," + sizeName
			if err := renderPreview(path, format, opts.flag, opts.wide, opts.height, opts.dpi); err != nil {
				spinner.StopWithError(fmt.Sprintf("Rendering %s failed", format))
				return err
			}
			outputs = append(outputs, path)
		}
	}
	spinner.Stop()

	printSuccess("rendered %d previews", len(outputs))
	for _, path := range outputs {
		printFile(path)
	}
	return nil
}

// renderPreview draws the demonstration figure through the facade and saves it.
func renderPreview(output, format, flag string, wide bool, height float64, dpi int) error {
	p, err := plotter.New(output, format, flag)
	if err != nil {
		return err
	}
	if err := buildDemoFigure(p, wide, height); err != nil {
		return err
	}
	return p.Save(plotter.WithDPI(dpi))
}

// buildDemoFigure fills the plotter's figure with a damped oscillation.
// The opaque flag is interpreted here, in calling code, the way a plot
// script would: "no-legend" suppresses the legend.
func buildDemoFigure(p *plotter.Plotter, wide bool, height float64) error {
	var figOpts []plotter.FigureOption
	if height > 0 {
		figOpts = append(figOpts, plotter.WithHeight(height))
	}

	var fig *plotter.Figure
	if wide {
		fig = p.WideFigure(figOpts...)
	} else {
		fig = p.NormalFigure(figOpts...)
	}

	ax, err := fig.AddSubplot(1, 1, 1)
	if err != nil {
		return err
	}

	const samples = 200
	pts := make(gplt.XYs, samples)
	for i := range pts {
		x := 20 * float64(i) / float64(samples-1)
		pts[i] = gplt.XY{X: x, Y: math.Exp(-x/5) * math.Sin(x)}
	}
	line, err := gplt.NewLine(pts)
	if err != nil {
		return err
	}
	line.LineStyle = styles.LineStyle(p.Config)

	ax.Add(styles.Grid(p.Config), line)
	ax.Title.Text = "damped oscillation"
	ax.X.Label.Text = "t"
	ax.Y.Label.Text = "u(t)"

	if p.Flag != "no-legend" {
		ax.Legend.Add("u(t)", line)
	}
	return nil
}

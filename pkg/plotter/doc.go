// Package plotter provides a convenience facade for producing
// publication-sized scientific figures with gonum/plot.
//
// A [Plotter] combines a rendering style ("latex", "matlab"), a size profile
// ("revtex", "a0poster"), an output filename and an opaque flag. It hands
// out figures whose dimensions come from the size profile and whose
// typography comes from the style, then saves the current figure with the
// output format inferred from the filename extension.
//
// Format parameters can come from the command line:
//
//	p, err := plotter.FromArgs(os.Args)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	ax, _ := p.NormalFigureSingleAxes()
//	// ... add plotters to ax ...
//	if err := p.Save(); err != nil {
//	    log.Fatal(err)
//	}
//
// or be given directly:
//
//	p, err := plotter.New("output.pdf", "matlab,revtex", "do_legend")
//	fig := p.NormalFigure(plotter.WithHeight(8))
//	left, _ := fig.AddSubplot(1, 2, 1)
//	right, _ := fig.AddSubplot(1, 2, 2)
//	// ... plot into left and right ...
//	if p.Flag == "do_legend" {
//	    // the flag is never interpreted by the plotter itself
//	}
//	err = p.Save(plotter.WithDPI(600))
//
// The flag is an opaque pass-through for the calling script, e.g. to omit a
// legend or switch the plot arrangement; this package never inspects it.
//
// Unlike matplotlib's rcParams there is no process-global rendering state:
// each figure carries its own [styles.Config], so plotters with different
// styles can coexist. The LaTeX text handler shares a font cache, so draws
// should not run concurrently.
package plotter

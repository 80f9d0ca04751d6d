// Package styles holds the registry of rendering styles and applies their
// typography and line-width defaults to gonum/plot plots.
//
// Two styles ship built in:
//
//   - "latex": serif typeface, text rendered through the LaTeX handler,
//     metrics from the size profile's "latex" column
//   - "matlab": the backend's default sans typeface, metrics from the
//     "matlab" column
//
// A style turns a size profile into a [Config], the explicit counterpart of
// matplotlib's global rcParams:
//
//	style, _ := styles.Lookup("latex")
//	cfg, _ := style.Config(prof)
//	styles.Apply(cfg, p)
//
// [LineStyle] and [Grid] give callers series and grid styles matching the
// same config.
package styles

// Package sizes holds the registry of size profiles: the physical figure
// dimensions and per-style typography metrics for publication formats.
//
// Two profiles ship built in:
//
//   - "revtex": single- and double-column figures for REVTeX journal papers
//   - "a0poster": large figures for A0 posters
//
// Profiles are looked up by name:
//
//	prof, err := sizes.Lookup("revtex")
//
// Additional profiles can be registered programmatically with [Register] or
// loaded from a TOML file with [RegisterFile], e.g.:
//
//	[[size]]
//	name = "beamer"
//	normal_width = 4.2
//	normal_height = 2.4
//	wide_width = 5.0
//	wide_height = 3.0
//
//	[size.fontsize]
//	latex = 10
//	matlab = 9
//
// All dimensions are in inches, font and line metrics in points.
package sizes

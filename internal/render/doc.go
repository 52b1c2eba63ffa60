// Package render draws exercise results: Braille-canvas terminal plots for
// 2-D geometry, a rotating camera projection for 3-D scatters, SVG export
// of geometry, and PNG/SVG figures via gonum/plot for series, histograms
// and spectra.
package render

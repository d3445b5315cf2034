// Package layout carries the page-geometry value objects shared across the
// conversion core and the pre-grid inference that can override the generic
// table-grid detector for label/value style documents.
package layout

import (
	"sort"
)

// TextFragment is a single piece of recognized text with its page-relative
// position in page points (bottom-left origin). Produced by the upstream
// extraction stage; immutable.
type TextFragment struct {
	Text string
	X    float64
	Y    float64
}

// GridBoundaries defines one page's cell layout: ordered column divider X
// coordinates and row divider Y coordinates. Rows are sorted page-top to
// page-bottom (descending Y) for stable iteration; a grid always has at least
// two dividers per axis (one cell).
type GridBoundaries struct {
	Columns []float64
	Rows    []float64
}

// maxPaddingPt caps the horizontal padding added around the outermost
// fragments when bracketing the column span.
const maxPaddingPt = 20.0

// InferLayout computes a forced two-column (label zone / value zone) grid from
// the fragment X positions: one vertical split at the median X, bracketed by
// the outermost fragments plus padding. Rows are the distinct fragment Y
// positions top to bottom, bracketed by the page edges.
//
// Deterministic: identical fragment sets yield identical boundaries regardless
// of input order. The median is the upper-median element (sorted index len/2),
// not an average of the middle pair; downstream grids depend on the split
// landing exactly on an observed X.
//
// No fragments yields a degenerate full-page single cell, never an error.
func InferLayout(fragments []TextFragment, pageWidth, pageHeight float64) GridBoundaries {
	if len(fragments) == 0 {
		return GridBoundaries{
			Columns: []float64{0, pageWidth},
			Rows:    []float64{0, pageHeight},
		}
	}

	xs := make([]float64, len(fragments))
	for i, f := range fragments {
		xs[i] = f.X
	}
	sort.Float64s(xs)

	medianX := xs[len(xs)/2]
	padding := pageWidth * 0.05
	if padding > maxPaddingPt {
		padding = maxPaddingPt
	}
	left := xs[0] - padding
	if left < 0 {
		left = 0
	}
	right := xs[len(xs)-1] + padding
	if right > pageWidth {
		right = pageWidth
	}

	ys := make([]float64, 0, len(fragments)+2)
	ys = append(ys, pageHeight)
	for _, f := range fragments {
		ys = append(ys, f.Y)
	}
	ys = append(ys, 0)
	sort.Sort(sort.Reverse(sort.Float64Slice(ys)))

	return GridBoundaries{
		Columns: []float64{left, medianX, right},
		Rows:    dedupe(ys),
	}
}

// dedupe collapses adjacent equal values in a sorted slice.
func dedupe(sorted []float64) []float64 {
	out := sorted[:1]
	for _, v := range sorted[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}

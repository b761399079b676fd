package pixelize

import (
	"fmt"
	"math"
)

// HexTiler maps each pixel to the nearest center of a regular hexagonal
// tiling with two edges parallel to the Y axis.
//
// # Geometry
//
// For hexagons with outer circumradius R, the inner radius (apothem) is
// r = R·cos(π/6) and rows of centers are spaced g = 3R/2 apart
// vertically. Adjacent rows are offset horizontally by r, which makes the
// centers fall on a grid indexed by (col, row) with pixel position
// (col·r, row·g) — but only grid positions whose column and row indices
// share parity actually hold a center.
//
// A pixel sits between two column indices and two row indices. Of the
// four corner combinations, exactly two satisfy the parity rule, so the
// nearest center is found by comparing squared distances to just those
// two candidates.
//
// Both spacings are truncated to whole pixels, so the tiling drifts
// slightly from the ideal lattice for small radii; the parity structure
// is unaffected.
type HexTiler struct {
	inner int // apothem, horizontal spacing between lattice columns
	gap   int // vertical spacing between lattice rows
	maxX  int
	maxY  int
}

// NewHexTiler returns a HexTiler for hexagons of the given outer radius,
// clamping mapped centers to a width-by-height image. The radius must be
// large enough that the truncated inner radius and row gap are both
// nonzero (radius >= 2 in practice); smaller values would divide by zero
// in Map and are rejected here, before any pixel is processed.
func NewHexTiler(radius, width, height int) (*HexTiler, error) {
	if radius < 1 {
		return nil, fmt.Errorf("invalid tile radius %d: must be at least 1", radius)
	}
	inner := int(float64(radius) * math.Cos(math.Pi/6))
	gap := radius * 3 / 2
	if inner < 1 || gap < 1 {
		return nil, fmt.Errorf("invalid tile radius %d: inner radius rounds to zero", radius)
	}
	return &HexTiler{
		inner: inner,
		gap:   gap,
		maxX:  width - 1,
		maxY:  height - 1,
	}, nil
}

// gridIndex identifies a candidate hexagon by its lattice position. The
// pixel-space center is (col·inner, row·gap).
type gridIndex struct {
	col, row int
}

// candidates returns the two lattice positions that can hold the center
// nearest to (x, y). The bracketing column and row indices give four
// corners; the lattice parity rule (centers exist only where col and row
// parity match) eliminates two of them.
func (t *HexTiler) candidates(x, y int) (a, b gridIndex) {
	colLow := x / t.inner
	rowLow := y / t.gap
	if (colLow%2 == 0) == (rowLow%2 == 0) {
		return gridIndex{colLow, rowLow}, gridIndex{colLow + 1, rowLow + 1}
	}
	return gridIndex{colLow, rowLow + 1}, gridIndex{colLow + 1, rowLow}
}

// Map returns the coordinate of the hexagon center nearest to (x, y),
// clamped into the image so a center on or past the border still yields a
// valid sample position.
//
// Distances are compared in signed arithmetic: a candidate center
// regularly lies to the right of or below the pixel, and the differences
// must be allowed to go negative before squaring. On an exact distance
// tie the first candidate (the one anchored at the lower column index)
// wins.
func (t *HexTiler) Map(x, y int) (int, int) {
	a, b := t.candidates(x, y)

	ax, ay := a.col*t.inner, a.row*t.gap
	bx, by := b.col*t.inner, b.row*t.gap

	da := sqr(ax-x) + sqr(ay-y)
	db := sqr(bx-x) + sqr(by-y)

	cx, cy := ax, ay
	if db < da {
		cx, cy = bx, by
	}
	return clamp(cx, t.maxX), clamp(cy, t.maxY)
}

func sqr(i int) int {
	return i * i
}

func clamp(v, max int) int {
	if v > max {
		return max
	}
	if v < 0 {
		return 0
	}
	return v
}

package pixelize

import "fmt"

// Mode selects the tile shape used for pixelisation.
type Mode int

const (
	// ModeSquare tiles the image with axis-aligned squares.
	ModeSquare Mode = iota

	// ModeHexagon tiles the image with regular hexagons.
	ModeHexagon
)

// ParseMode converts a mode name from the command line into a Mode.
// Accepted names are "sqr"/"square" and "hex"/"hexagon".
func ParseMode(s string) (Mode, error) {
	switch s {
	case "sqr", "square":
		return ModeSquare, nil
	case "hex", "hexagon":
		return ModeHexagon, nil
	default:
		return 0, fmt.Errorf("unknown mode %q (want sqr or hex)", s)
	}
}

// String returns the canonical short name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeSquare:
		return "sqr"
	case ModeHexagon:
		return "hex"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// A Tiler maps an output pixel coordinate to the in-bounds source
// coordinate of the center of the tile containing it. Implementations are
// pure functions of their configuration; Map never fails on coordinates
// inside the image.
type Tiler interface {
	Map(x, y int) (int, int)
}

// SquareTiler maps each pixel to the top-left corner of the square tile
// containing it. For tile size R the mapped coordinate is the largest
// multiple of R not exceeding the input, so Map(x, y) <= (x, y)
// componentwise and the result is always in bounds for in-bounds input.
type SquareTiler struct {
	radius int
}

// NewSquareTiler returns a SquareTiler with the given tile size in
// pixels. The size must be at least 1.
func NewSquareTiler(radius int) (*SquareTiler, error) {
	if radius < 1 {
		return nil, fmt.Errorf("invalid tile size %d: must be at least 1", radius)
	}
	return &SquareTiler{radius: radius}, nil
}

// Map aligns (x, y) down to the containing tile's origin.
func (t *SquareTiler) Map(x, y int) (int, int) {
	return x / t.radius * t.radius, y / t.radius * t.radius
}

package pixelize

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/parallel"
)

// Options configure a pixelisation run.
type Options struct {
	// Mode selects the tile shape. The zero value is ModeSquare.
	Mode Mode

	// Radius is the tile size in pixels: the edge length of a square
	// tile, or the outer circumradius of a hexagonal one. Must be
	// positive; hexagonal tiling additionally requires the derived inner
	// radius to be nonzero (see NewHexTiler).
	Radius int

	// Sampling selects the tile coloring strategy. The zero value is
	// SampleCenter.
	Sampling Sampling
}

// NewTiler returns the Tiler for the given mode, validating the radius
// against a width-by-height image before any pixel work happens.
func NewTiler(mode Mode, radius, width, height int) (Tiler, error) {
	switch mode {
	case ModeSquare:
		return NewSquareTiler(radius)
	case ModeHexagon:
		return NewHexTiler(radius, width, height)
	default:
		return nil, fmt.Errorf("unknown mode %v", mode)
	}
}

// Pixelize remaps every pixel of img onto the tiling described by opts
// and returns the result as a new image of the same dimensions. The
// source image is only read, never modified.
//
// Each output pixel depends only on its own coordinates, the source
// image, and the options, so rows are processed in parallel across
// available CPUs. All validation happens up front; once the first pixel
// is written the call cannot fail.
func Pixelize(img image.Image, opts Options) (*image.RGBA, error) {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	tiler, err := NewTiler(opts.Mode, opts.Radius, width, height)
	if err != nil {
		return nil, err
	}

	out := image.NewRGBA(image.Rect(0, 0, width, height))
	if width == 0 || height == 0 {
		return out, nil
	}

	switch opts.Sampling {
	case SampleCenter:
		parallel.Line(height, func(start, end int) {
			for y := start; y < end; y++ {
				for x := 0; x < width; x++ {
					sx, sy := tiler.Map(x, y)
					out.Set(x, y, img.At(bounds.Min.X+sx, bounds.Min.Y+sy))
				}
			}
		})
	case SampleMean:
		// Two passes: accumulate per-tile means, then fill. The means
		// map is read-only during the parallel fill.
		means := meanColors(img, tiler)
		parallel.Line(height, func(start, end int) {
			for y := start; y < end; y++ {
				for x := 0; x < width; x++ {
					out.Set(x, y, means[image.Pt(tiler.Map(x, y))])
				}
			}
		})
	default:
		return nil, fmt.Errorf("unknown sampling strategy %v", opts.Sampling)
	}

	return out, nil
}

package pixelize

import (
	"fmt"
	"image"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Sampling selects how a tile's representative color is chosen.
type Sampling int

const (
	// SampleCenter colors each tile with the source pixel at its center.
	// This is the classic pixelisation look: fast, and crisp colors
	// straight from the source.
	SampleCenter Sampling = iota

	// SampleMean colors each tile with the average of every source pixel
	// mapped to it. Averaging happens in CIE Lab space, which avoids the
	// muddy results of naive RGB averaging; alpha is averaged linearly.
	SampleMean
)

// ParseSampling converts a strategy name from the command line into a
// Sampling. Accepted names are "center" and "mean"/"average".
func ParseSampling(s string) (Sampling, error) {
	switch s {
	case "center":
		return SampleCenter, nil
	case "mean", "average":
		return SampleMean, nil
	default:
		return 0, fmt.Errorf("unknown sampling strategy %q (want center or mean)", s)
	}
}

// String returns the canonical name of the strategy.
func (s Sampling) String() string {
	switch s {
	case SampleCenter:
		return "center"
	case SampleMean:
		return "mean"
	default:
		return fmt.Sprintf("Sampling(%d)", int(s))
	}
}

// meanAccum accumulates pixel colors for one tile in Lab space.
type meanAccum struct {
	l, a, b float64
	alpha   uint64
	n       uint64
}

func (m *meanAccum) add(c color.Color) {
	// MakeColor reports false for fully transparent pixels, which carry
	// no hue; they still count toward the alpha average.
	if cf, ok := colorful.MakeColor(c); ok {
		l, a, b := cf.Lab()
		m.l += l
		m.a += a
		m.b += b
	}
	_, _, _, alpha := c.RGBA()
	m.alpha += uint64(alpha >> 8)
	m.n++
}

func (m *meanAccum) color() color.Color {
	if m.n == 0 {
		return color.NRGBA{}
	}
	n := float64(m.n)
	r, g, b := colorful.Lab(m.l/n, m.a/n, m.b/n).Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(m.alpha / m.n)}
}

// meanColors computes the mean color of every tile in one pass over the
// source image, keyed by the tile's mapped center coordinate.
func meanColors(img image.Image, tiler Tiler) map[image.Point]color.Color {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	accums := make(map[image.Point]*meanAccum)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			center := image.Pt(tiler.Map(x, y))
			acc := accums[center]
			if acc == nil {
				acc = &meanAccum{}
				accums[center] = acc
			}
			acc.add(img.At(bounds.Min.X+x, bounds.Min.Y+y))
		}
	}

	means := make(map[image.Point]color.Color, len(accums))
	for center, acc := range accums {
		means[center] = acc.color()
	}
	return means
}

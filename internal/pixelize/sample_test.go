package pixelize

import (
	"image/color"
	"testing"
)

func TestParseSampling(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Sampling
		wantErr bool
	}{
		{"center", "center", SampleCenter, false},
		{"mean", "mean", SampleMean, false},
		{"average alias", "average", SampleMean, false},
		{"empty", "", 0, true},
		{"unknown", "median", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSampling(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseSampling(%q) should fail", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSampling(%q) failed: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseSampling(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// colorNear reports whether two colors agree within tolerance on every
// 8-bit channel. Lab round trips can be off by a unit.
func colorNear(a, b color.Color, tolerance int) bool {
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	near := func(x, y uint32) bool {
		d := int(x>>8) - int(y>>8)
		if d < 0 {
			d = -d
		}
		return d <= tolerance
	}
	return near(ar, br) && near(ag, bg) && near(ab, bb) && near(aa, ba)
}

func TestPixelize_MeanSolidColor(t *testing.T) {
	orange := color.RGBA{200, 100, 50, 255}
	src := createInMemoryImage(8, 8, orange)

	out, err := Pixelize(src, Options{Mode: ModeSquare, Radius: 4, Sampling: SampleMean})
	if err != nil {
		t.Fatalf("Pixelize failed: %v", err)
	}

	// Averaging identical pixels must reproduce the color, modulo Lab
	// conversion rounding.
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if !colorNear(out.At(x, y), orange, 2) {
				t.Fatalf("pixel (%d,%d) = %v, want ~%v", x, y, out.At(x, y), orange)
			}
		}
	}
}

func TestPixelize_MeanBlendsTile(t *testing.T) {
	// One tile covering the whole image, left half black, right half
	// white: the mean must be a single mid gray, not either extreme.
	src := createInMemoryImage(4, 4, color.RGBA{0, 0, 0, 255})
	for y := 0; y < 4; y++ {
		for x := 2; x < 4; x++ {
			src.Set(x, y, color.RGBA{255, 255, 255, 255})
		}
	}

	out, err := Pixelize(src, Options{Mode: ModeSquare, Radius: 4, Sampling: SampleMean})
	if err != nil {
		t.Fatalf("Pixelize failed: %v", err)
	}

	first := out.At(0, 0)
	r, g, b, a := first.RGBA()
	r8, g8, b8, a8 := uint8(r>>8), uint8(g>>8), uint8(b>>8), uint8(a>>8)

	if r8 == 0 || r8 == 255 {
		t.Errorf("mean red channel = %d, want a blend strictly between 0 and 255", r8)
	}
	if !colorNear(first, color.RGBA{r8, r8, r8, 255}, 1) {
		t.Errorf("mean of black and white should be gray, got (%d,%d,%d)", r8, g8, b8)
	}
	if a8 != 255 {
		t.Errorf("alpha = %d, want 255", a8)
	}

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if !sameColor(out.At(x, y), first) {
				t.Fatalf("pixel (%d,%d) differs within a single tile", x, y)
			}
		}
	}
}

func TestPixelize_MeanHexInBoundsAndUniformPerCell(t *testing.T) {
	const width, height, radius = 60, 60, 10
	src := createCheckerboardImage(width, height)

	out, err := Pixelize(src, Options{Mode: ModeHexagon, Radius: radius, Sampling: SampleMean})
	if err != nil {
		t.Fatalf("Pixelize failed: %v", err)
	}

	tiler, err := NewTiler(ModeHexagon, radius, width, height)
	if err != nil {
		t.Fatalf("NewTiler failed: %v", err)
	}

	// Pixels mapped to the same center must come out identical.
	seen := make(map[[2]int]color.Color)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			sx, sy := tiler.Map(x, y)
			key := [2]int{sx, sy}
			if c, ok := seen[key]; ok {
				if !sameColor(out.At(x, y), c) {
					t.Fatalf("pixel (%d,%d) differs from other pixels of cell (%d,%d)",
						x, y, sx, sy)
				}
			} else {
				seen[key] = out.At(x, y)
			}
		}
	}
}

func TestMeanAccum_Empty(t *testing.T) {
	var acc meanAccum
	r, g, b, a := acc.color().RGBA()
	if r != 0 || g != 0 || b != 0 || a != 0 {
		t.Errorf("empty accumulator should yield transparent black, got (%d,%d,%d,%d)", r, g, b, a)
	}
}

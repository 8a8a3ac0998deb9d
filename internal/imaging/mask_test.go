package imaging

import (
	"image/color"
	"testing"

	"github.com/ironsheep/target-follow/internal/target"
)

func TestMaskImage(t *testing.T) {
	g := target.NewGrid(3, 2)
	g.Set(0, 0, true)
	g.Set(2, 1, true)

	img := MaskImage(g)
	if img.Bounds().Dx() != 3 || img.Bounds().Dy() != 2 {
		t.Fatalf("bounds: got %v", img.Bounds())
	}
	for x := 0; x < 3; x++ {
		for y := 0; y < 2; y++ {
			want := color.Gray{}
			if g.At(x, y) {
				want = color.Gray{Y: 255}
			}
			if got := img.GrayAt(x, y); got != want {
				t.Errorf("(%d,%d): got %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestEncodeMask(t *testing.T) {
	g := target.NewGrid(10, 8)
	for x := 2; x < 5; x++ {
		g.Set(x, 3, true)
	}

	result, err := EncodeMask(g)
	if err != nil {
		t.Fatalf("EncodeMask failed: %v", err)
	}
	if result.Count != 3 {
		t.Errorf("Count: got %d, want 3", result.Count)
	}

	img := decodeResult(t, result.ImageResult)
	if r, _, _ := rgb8(img.At(3, 3)); r != 255 {
		t.Errorf("target cell should be white, got %d", r)
	}
	if r, _, _ := rgb8(img.At(3, 4)); r != 0 {
		t.Errorf("background cell should be black, got %d", r)
	}
}

func TestEncodeMask_Empty(t *testing.T) {
	if _, err := EncodeMask(nil); err == nil {
		t.Error("EncodeMask(nil) should fail")
	}
	if _, err := EncodeMask(target.NewGrid(0, 0)); err == nil {
		t.Error("EncodeMask of a 0x0 grid should fail")
	}
}

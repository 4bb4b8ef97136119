package icon

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func TestRenderDimensions(t *testing.T) {
	for _, size := range []int{16, 32, 180} {
		img, err := Render(size)
		if err != nil {
			t.Fatalf("Render(%d): %v", size, err)
		}
		b := img.Bounds()
		if b.Dx() != size || b.Dy() != size {
			t.Errorf("Render(%d) bounds = %dx%d, want %dx%d", size, b.Dx(), b.Dy(), size, size)
		}
	}
}

func TestRenderOpaque(t *testing.T) {
	img, err := Render(32)
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range []image.Point{{0, 0}, {16, 16}, {31, 31}} {
		if _, _, _, a := img.At(p.X, p.Y).RGBA(); a != 0xFFFF {
			t.Errorf("pixel (%d,%d) alpha = %#x, want opaque", p.X, p.Y, a)
		}
	}
}

func TestBackgroundOutsideDisc(t *testing.T) {
	img, err := Render(16)
	if err != nil {
		t.Fatal(err)
	}
	// Disc radius is 6 around (8,8); the corners are well clear of it and of
	// the accent strokes.
	for _, p := range []image.Point{{0, 0}, {15, 0}, {0, 15}, {15, 15}} {
		assertColorNear(t, img, p.X, p.Y, Background, 1)
	}
}

func TestGradientDiscColors(t *testing.T) {
	img, err := Render(32)
	if err != nil {
		t.Fatal(err)
	}

	// The innermost ring carries the blend at ratio 1/12.
	center := blend(GradientOuter, GradientInner, 1.0/12)
	assertColorNear(t, img, 16, 16, center, 16)

	// Just inside the rim the fill is the pure outer endpoint, give or take
	// anti-aliasing against the neighboring ring.
	assertColorNear(t, img, 26, 16, GradientOuter, 16)
}

func TestAccentsPresent(t *testing.T) {
	img, err := Render(180)
	if err != nil {
		t.Fatal(err)
	}

	// Interior of the light arc at its apex (angle 270°).
	assertColorNear(t, img, 90, 68, AccentLight, 6)
	// Interior of the teal arc near angle 170°.
	assertColorNear(t, img, 47, 125, AccentTeal, 6)
	// Interior of the highlight ellipse left of center.
	assertColorNear(t, img, 79, 84, AccentLight, 6)
}

func TestTinyCanvasIsBackgroundOnly(t *testing.T) {
	// int(2*0.4) = 0: no disc fits, so no ring ratio is ever computed.
	img, err := Render(2)
	if err != nil {
		t.Fatal(err)
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			assertColorNear(t, img, x, y, Background, 1)
		}
	}
}

func TestRenderDeterministic(t *testing.T) {
	var bufs [2]bytes.Buffer
	for i := range bufs {
		img, err := Render(32)
		if err != nil {
			t.Fatal(err)
		}
		if err := png.Encode(&bufs[i], img); err != nil {
			t.Fatal(err)
		}
	}
	if !bytes.Equal(bufs[0].Bytes(), bufs[1].Bytes()) {
		t.Error("two renders of the same size produced different PNG bytes")
	}
}

func TestBlendEndpoints(t *testing.T) {
	if got := blend(GradientOuter, GradientInner, 1); got != GradientOuter {
		t.Errorf("blend(_, _, 1) = %v, want %v", got, GradientOuter)
	}
	if got := blend(GradientOuter, GradientInner, 0); got != GradientInner {
		t.Errorf("blend(_, _, 0) = %v, want %v", got, GradientInner)
	}
}

func assertColorNear(t *testing.T, img image.Image, x, y int, want color.RGBA, tol int) {
	t.Helper()
	r, g, b, _ := img.At(x, y).RGBA()
	dr := abs(int(r>>8) - int(want.R))
	dg := abs(int(g>>8) - int(want.G))
	db := abs(int(b>>8) - int(want.B))
	if dr > tol || dg > tol || db > tol {
		t.Errorf("pixel (%d,%d) = (%d,%d,%d), want within %d of (%d,%d,%d)",
			x, y, r>>8, g>>8, b>>8, tol, want.R, want.G, want.B)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

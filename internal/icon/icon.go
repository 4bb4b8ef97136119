// Package icon renders the CoralLedger favicon artwork: a radial gradient
// disc on a dark background with two sheen arcs and a highlight ellipse.
package icon

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/gogpu/gg"
)

// Render draws the artwork on a fresh size×size canvas and returns the
// finished image. Canvases are never reused between calls.
func Render(size int) (image.Image, error) {
	dc := gg.NewContext(size, size)
	defer dc.Close()

	dc.ClearWithColor(gg.FromColor(Background))

	radius, cx, cy, err := drawGradientDisc(dc, size)
	if err != nil {
		return nil, fmt.Errorf("gradient disc: %w", err)
	}
	// Canvases too small for a 1px disc stay background-only.
	if radius >= 1 {
		if err := drawAccents(dc, radius, cx, cy, size); err != nil {
			return nil, fmt.Errorf("accents: %w", err)
		}
	}
	return dc.Image(), nil
}

// drawGradientDisc paints concentric shrinking discs centered on the canvas.
// Each ring i carries the blend at ratio i/radius, so the outermost ring is
// pure GradientOuter and the fill converges on GradientInner toward the
// center as smaller discs overwrite the interior of larger ones.
func drawGradientDisc(dc *gg.Context, size int) (radius int, cx, cy float64, err error) {
	cx = float64(size / 2)
	cy = cx
	radius = int(float64(size) * 0.4)
	for i := radius; i >= 1; i-- {
		ratio := float64(i) / float64(radius)
		dc.SetColor(blend(GradientOuter, GradientInner, ratio))
		dc.DrawCircle(cx, cy, float64(i))
		if err = dc.Fill(); err != nil {
			return radius, cx, cy, fmt.Errorf("fill ring %d: %w", i, err)
		}
	}
	return radius, cx, cy, nil
}

// drawAccents overlays the sheen: a near-white arc across the upper half of
// the disc, a teal arc along the lower half, and a small filled highlight
// ellipse left of center. Geometry scales with the disc radius.
func drawAccents(dc *gg.Context, radius int, cx, cy float64, size int) error {
	r := float64(radius)

	w1 := math.Max(1, float64(size/16))
	if err := strokeArc(dc, cx, cy+0.1*r, 0.7*r, 0.4*r, 200, 340, w1, AccentLight); err != nil {
		return fmt.Errorf("light arc: %w", err)
	}

	w2 := math.Max(2, float64(size/12))
	if err := strokeArc(dc, cx, cy+0.4*r, 0.6*r, 0.5*r, 120, 220, w2, AccentTeal); err != nil {
		return fmt.Errorf("teal arc: %w", err)
	}

	h := float64(int(0.25 * r))
	dc.SetColor(AccentLight)
	dc.DrawEllipse(cx-0.6*h, cy-0.3*h, 0.4*h, 0.3*h)
	if err := dc.Fill(); err != nil {
		return fmt.Errorf("highlight: %w", err)
	}
	return nil
}

// strokeArc strokes the elliptical arc centered at (x, y) with radii rx, ry
// between deg1 and deg2. Angles are degrees from three o'clock, increasing
// clockwise in raster space. The arc is approximated by chords sampled every
// couple of degrees, which keeps the output deterministic.
func strokeArc(dc *gg.Context, x, y, rx, ry, deg1, deg2, width float64, col color.Color) error {
	const step = 2.0 // degrees per chord

	dc.SetColor(col)
	dc.SetLineWidth(width)
	dc.SetLineCap(gg.LineCapRound)

	steps := int(math.Ceil((deg2 - deg1) / step))
	if steps < 1 {
		steps = 1
	}
	for s := 0; s <= steps; s++ {
		a := (deg1 + (deg2-deg1)*float64(s)/float64(steps)) * math.Pi / 180
		px := x + rx*math.Cos(a)
		py := y + ry*math.Sin(a)
		if s == 0 {
			dc.MoveTo(px, py)
		} else {
			dc.LineTo(px, py)
		}
	}
	return dc.Stroke()
}

// blend mixes a toward b; ratio 1 is pure a, ratio 0 is pure b. Channels are
// truncated to keep the per-ring colors stable across platforms.
func blend(a, b color.RGBA, ratio float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(a.R)*ratio + float64(b.R)*(1-ratio)),
		G: uint8(float64(a.G)*ratio + float64(b.G)*(1-ratio)),
		B: uint8(float64(a.B)*ratio + float64(b.B)*(1-ratio)),
		A: 0xFF,
	}
}

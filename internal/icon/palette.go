package icon

import "image/color"

// Brand palette for the CoralLedger favicon artwork.
var (
	// Gradient endpoints: the disc blends from GradientOuter at the rim
	// toward GradientInner at the center.
	GradientOuter = color.RGBA{R: 46, G: 227, B: 255, A: 0xFF} // #2ee3ff
	GradientInner = color.RGBA{R: 0, G: 197, B: 161, A: 0xFF}  // #00c5a1

	// Background fills everything outside the disc.
	Background = color.RGBA{R: 5, G: 12, B: 26, A: 0xFF} // #050c1a

	// Accent tones for the sheen arcs and the highlight ellipse.
	AccentLight = color.RGBA{R: 244, G: 251, B: 255, A: 0xFF} // #f4fbff
	AccentTeal  = color.RGBA{R: 18, G: 168, B: 195, A: 0xFF}  // #12a8c3
)

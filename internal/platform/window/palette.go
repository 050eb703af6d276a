package window

import (
	"image/color"

	"github.com/vovakirdan/tui-jumper/internal/core"
)

var (
	skyColor    = color.RGBA{R: 0x87, G: 0xce, B: 0xeb, A: 0xff}
	groundColor = color.RGBA{R: 0x8b, G: 0x5a, B: 0x2b, A: 0xff}
	shadeColor  = color.RGBA{A: 0x99}
)

// rgba maps the shared palette onto screen colors.
func rgba(c core.Color) color.RGBA {
	switch c {
	case core.ColorRed:
		return color.RGBA{R: 0xe5, G: 0x25, B: 0x21, A: 0xff}
	case core.ColorBrightRed:
		return color.RGBA{R: 0xff, G: 0x6b, B: 0x6b, A: 0xff}
	case core.ColorGreen:
		return color.RGBA{R: 0x1f, G: 0x9d, B: 0x2f, A: 0xff}
	case core.ColorBrightGreen:
		return color.RGBA{R: 0x4c, G: 0xd9, B: 0x5a, A: 0xff}
	case core.ColorYellow:
		return color.RGBA{R: 0xf5, G: 0xc5, B: 0x18, A: 0xff}
	case core.ColorCyan:
		return color.RGBA{R: 0x2b, G: 0xc4, B: 0xd8, A: 0xff}
	case core.ColorGray:
		return color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
	default:
		return color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	}
}

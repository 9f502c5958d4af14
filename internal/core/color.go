package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorBrown
)

// RGB returns an approximate 8-bit RGB triple for the color.
// Used by frontends that draw pixels instead of terminal cells.
func (c Color) RGB() (r, g, b uint8) {
	switch c {
	case ColorRed:
		return 205, 49, 49
	case ColorGreen:
		return 84, 170, 52
	case ColorYellow:
		return 229, 229, 16
	case ColorBlue:
		return 36, 114, 200
	case ColorMagenta:
		return 188, 63, 188
	case ColorCyan:
		return 78, 192, 202
	case ColorWhite:
		return 229, 229, 229
	case ColorBrightRed:
		return 241, 76, 76
	case ColorBrightGreen:
		return 35, 209, 139
	case ColorBrightYellow:
		return 245, 245, 67
	case ColorBrightBlue:
		return 59, 142, 234
	case ColorBrightMagenta:
		return 214, 112, 214
	case ColorBrightCyan:
		return 41, 184, 219
	case ColorBrightWhite:
		return 255, 255, 255
	case ColorOrange:
		return 255, 135, 0
	case ColorGray:
		return 138, 138, 138
	case ColorBrown:
		return 222, 216, 149
	default:
		return 0, 0, 0
	}
}

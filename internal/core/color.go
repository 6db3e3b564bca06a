package core

// Color is a foreground colour for a screen cell. The platform layer maps
// each value to an ANSI 256 code.
type Color uint8

// Base colours cover the seven pieces and the chrome around the well.
// Bright variants are used for highlights.
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
)

// Bright returns the highlighted variant of c. Colours without one, and
// colours that are already bright, highlight to bright white.
func (c Color) Bright() Color {
	switch {
	case c >= ColorRed && c <= ColorCyan:
		return c + (ColorBrightRed - ColorRed)
	case c == ColorOrange:
		return ColorBrightYellow
	default:
		return ColorBrightWhite
	}
}

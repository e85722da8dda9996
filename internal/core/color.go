package core

// Color is a foreground color index for a screen cell. The platform
// layer maps these to ANSI colors when compositing the frame; the
// zero value leaves the terminal's default foreground in place.
type Color uint8

// The standard ANSI palette, normal then bright.
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
)

// Extended colors drawn from the 256-color range.
const (
	ColorOrange Color = ColorBrightWhite + 1 + iota
	ColorGray
)

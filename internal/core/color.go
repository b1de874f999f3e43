package core

// Color represents a foreground color for a screen cell.
// Front-ends map it to ANSI codes, tcell colors or RGBA.
type Color uint8

// Palette used by the game and its screens.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightBlue
	ColorGray
)

// String returns the palette name, used in logs and screenshots.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorYellow:
		return "yellow"
	case ColorBlue:
		return "blue"
	case ColorCyan:
		return "cyan"
	case ColorWhite:
		return "white"
	case ColorBrightRed:
		return "bright-red"
	case ColorBrightGreen:
		return "bright-green"
	case ColorBrightBlue:
		return "bright-blue"
	case ColorGray:
		return "gray"
	default:
		return "unknown"
	}
}

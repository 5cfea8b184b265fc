package core

// Color represents a foreground color for a screen cell.
// Values map to ANSI colors in the platform layer.
type Color uint8

// Palette used by the game and its overlays.
const (
	ColorDefault Color = iota
	ColorCyan
	ColorWhite
	ColorBrightYellow
	ColorBrightRed
	ColorGray
)

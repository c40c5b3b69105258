package core

// Color represents a foreground color for a screen cell.
// Values are mapped to ANSI 256-color codes by the platform renderer.
type Color uint8

// Predefined colors. The tile shades follow the indigo → violet → purple →
// fuchsia → pink → red ramp used for increasing tile values.
const (
	ColorDefault Color = iota
	ColorGray
	ColorBlue
	ColorBrightBlue
	ColorIndigo
	ColorBrightIndigo
	ColorViolet
	ColorBrightViolet
	ColorPurple
	ColorBrightPurple
	ColorFuchsia
	ColorBrightFuchsia
	ColorPink
	ColorBrightPink
	ColorRed
	ColorBrightRed
	ColorYellow
	ColorGreen
)

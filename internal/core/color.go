package core

// Color is a render palette entry. It is a presentation concept only;
// game state never stores colors.
type Color uint8

// Palette used by the board renderer.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorCyan
	ColorWhite
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightWhite
	ColorGray
	ColorBoard // felt green background for board squares
)

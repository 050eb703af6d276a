package core

// Color represents a foreground color for a screen cell.
// The platform layer maps these to ANSI codes.
type Color uint8

// Colors used by the stage and HUD.
const (
	ColorDefault Color = iota
	ColorRed           // player
	ColorGreen         // ground pipes
	ColorBrightGreen   // pipe lips
	ColorYellow        // flying pipes
	ColorCyan          // level indicator
	ColorWhite         // message boxes
	ColorGray          // ground line
	ColorBrightRed     // crashed player
)

package core

// Color is a foreground color for a screen cell. The renderer maps each
// value to an ANSI 256-color code.
type Color uint8

// Arena palette.
const (
	ColorDefault      Color = iota
	ColorGray               // walls, crates, frame
	ColorYellow             // ammo loot
	ColorOrange             // throwables
	ColorBrightRed          // projectiles in the entity graph
	ColorBrightGreen        // player marker, consumables
	ColorBrightYellow       // projectiles on screen, player model
	ColorBrightCyan         // weapon loot, facing marker
)

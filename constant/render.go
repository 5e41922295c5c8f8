package constant

// Board layout in terminal cells
const (
	// CellColumns is how many terminal columns one grid cell spans (keeps cells square-ish)
	CellColumns = 2

	// HUDRows is the height of the score area above the board
	HUDRows = 2
)

// Glyphs
const (
	GlyphBlock = '█'
	GlyphArrow = '>'
)

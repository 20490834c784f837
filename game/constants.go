package game

const (
	// BoardWidth and BoardHeight are the playfield dimensions in cells.
	// The top HiddenRows rows sit above the visible well and give freshly
	// spawned pieces room to enter.
	BoardWidth  = 10
	BoardHeight = 22
	HiddenRows  = 2
)

// Color tags a filled cell or a piece. The terminal layer decides how each
// value is actually styled.
type Color int

const (
	Black Color = iota
	Red
	Green
	Orange
	Blue
	Purple
	Cyan
	White
)

package game

// Key is a logical keyboard symbol decoded by the terminal layer. The raw
// byte decoding (including arrow escape sequences) happens below this
// boundary; the engine only ever sees whole keys.
type Key int

const (
	KeyChar Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeySpace
	KeyCtrlC
)

func (key Key) String() string {
	switch key {
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeySpace:
		return "space"
	case KeyCtrlC:
		return "ctrl-c"
	case KeyChar:
		return "char"
	default:
		return "unknown"
	}
}

// parseKey is the inverse of Key.String.
func parseKey(s string) (Key, bool) {
	switch s {
	case "up":
		return KeyUp, true
	case "down":
		return KeyDown, true
	case "left":
		return KeyLeft, true
	case "right":
		return KeyRight, true
	case "space":
		return KeySpace, true
	case "ctrl-c":
		return KeyCtrlC, true
	case "char":
		return KeyChar, true
	default:
		return KeyChar, false
	}
}

// KeyEvent is one decoded keypress. Char is meaningful only for KeyChar.
type KeyEvent struct {
	Key  Key
	Char rune
}

// UpdateKind discriminates entries on the game loop's event stream.
type UpdateKind int

const (
	TickUpdate UpdateKind = iota
	KeyPressUpdate
)

// Update is a single immutable message delivered to the game loop. Ticks
// drive gravity; keypresses carry the decoded key.
type Update struct {
	Kind UpdateKind
	Key  KeyEvent

	// replayed marks updates fed from a recorded playthrough rather than a
	// live producer.
	replayed bool
}

// Display is the off-screen styled text buffer the game draws into. A frame
// is staged with SetText calls and flushed to the terminal with Render.
type Display interface {
	SetText(text string, x, y int, fg, bg Color)
	ClearBuffer()
	Render()
}

// KeySource yields decoded keys from the terminal. ReadKey blocks until a
// key arrives and reports ok=false once the source is closed.
type KeySource interface {
	ReadKey() (KeyEvent, bool)
}

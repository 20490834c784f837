package game

// Cell is one playfield slot; Color is meaningful only when Filled.
type Cell struct {
	Filled bool
	Color  Color
}

// Board is the fixed-size playfield. Cells become filled only when a piece
// locks, and cleared rows are shifted down immediately, so filled cells
// never float above a gap left by a clear.
type Board struct {
	cells [][]Cell
}

func NewBoard() *Board {
	board := &Board{cells: make([][]Cell, BoardHeight)}
	for y := range board.cells {
		board.cells[y] = make([]Cell, BoardWidth)
	}
	return board
}

func (board *Board) CellAt(x, y int) Cell {
	return board.cells[y][x]
}

// CollisionTest reports whether the piece, placed at origin, would leave
// the playfield or overlap a filled cell. It is the single source of truth
// for placement legality: movement, rotation, spawning and the ghost
// projection all go through it.
func (board *Board) CollisionTest(piece Piece, origin Point) bool {
	found := false
	piece.EachPoint(func(row, col int) {
		if found {
			return
		}
		x := origin.X + col
		y := origin.Y + row
		if x < 0 || x >= BoardWidth || y < 0 || y >= BoardHeight || board.cells[y][x].Filled {
			found = true
		}
	})
	return found
}

// LockPiece writes the piece's color into every covered cell. The caller
// has already verified there is no collision; locking is irreversible.
func (board *Board) LockPiece(piece Piece, origin Point) {
	piece.EachPoint(func(row, col int) {
		board.cells[origin.Y+row][origin.X+col] = Cell{Filled: true, Color: piece.Color}
	})
}

// ClearLines removes every complete row, shifting the rows above down to
// take their place, and returns how many rows were cleared. Multiple
// simultaneous clears shift by the running count, not one row at a time.
func (board *Board) ClearLines() uint {
	cleared := 0
	for row := len(board.cells) - 1; row >= 0; row-- {
		if row-cleared < 0 {
			break
		}

		if cleared > 0 {
			board.cells[row] = board.cells[row-cleared]
			board.cells[row-cleared] = make([]Cell, BoardWidth)
		}

		for board.rowComplete(row) {
			cleared++
			if row-cleared < 0 {
				// No rows remain above; the cleared row just empties.
				board.cells[row] = make([]Cell, BoardWidth)
				break
			}
			board.cells[row] = board.cells[row-cleared]
			board.cells[row-cleared] = make([]Cell, BoardWidth)
		}
	}
	return uint(cleared)
}

func (board *Board) rowComplete(row int) bool {
	for _, cell := range board.cells[row] {
		if !cell.Filled {
			return false
		}
	}
	return true
}

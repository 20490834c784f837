package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func fillRow(board *Board, row int, color Color) {
	for col := 0; col < BoardWidth; col++ {
		board.cells[row][col] = Cell{Filled: true, Color: color}
	}
}

func TestCollisionTestBounds(t *testing.T) {
	board := NewBoard()
	piece := NewPiece(TetrominoO)

	assert.False(t, board.CollisionTest(piece, Point{0, 0}))
	assert.False(t, board.CollisionTest(piece, Point{BoardWidth - 2, BoardHeight - 2}))

	assert.True(t, board.CollisionTest(piece, Point{-1, 0}))
	assert.True(t, board.CollisionTest(piece, Point{0, -1}))
	assert.True(t, board.CollisionTest(piece, Point{BoardWidth - 1, 0}))
	assert.True(t, board.CollisionTest(piece, Point{0, BoardHeight - 1}))
}

func TestCollisionTestOccupied(t *testing.T) {
	board := NewBoard()
	piece := NewPiece(TetrominoO)
	board.cells[5][5] = Cell{Filled: true, Color: Red}

	assert.True(t, board.CollisionTest(piece, Point{4, 4}))
	assert.True(t, board.CollisionTest(piece, Point{5, 5}))
	assert.False(t, board.CollisionTest(piece, Point{6, 5}))
	assert.False(t, board.CollisionTest(piece, Point{3, 4}))
}

func TestCollisionTestIgnoresUnoccupiedOffsets(t *testing.T) {
	board := NewBoard()
	// L's top row is 0,0,1; the empty offsets must not collide.
	piece := NewPiece(TetrominoL)
	board.cells[3][0] = Cell{Filled: true, Color: Blue}

	assert.False(t, board.CollisionTest(piece, Point{0, 3}))
}

func TestLockPieceWritesColors(t *testing.T) {
	board := NewBoard()
	piece := NewPiece(TetrominoO)

	board.LockPiece(piece, Point{4, BoardHeight - 2})

	for _, pt := range [][2]int{{BoardHeight - 2, 4}, {BoardHeight - 2, 5}, {BoardHeight - 1, 4}, {BoardHeight - 1, 5}} {
		assert.Equal(t, Cell{Filled: true, Color: Cyan}, board.CellAt(pt[1], pt[0]))
	}
	assert.False(t, board.CellAt(6, BoardHeight-2).Filled)
}

func TestClearLinesEmptyBoard(t *testing.T) {
	board := NewBoard()
	assert.Equal(t, uint(0), board.ClearLines())
}

func TestClearLinesSingle(t *testing.T) {
	board := NewBoard()
	fillRow(board, BoardHeight-1, Red)

	assert.Equal(t, uint(1), board.ClearLines())
	for col := 0; col < BoardWidth; col++ {
		assert.False(t, board.cells[BoardHeight-1][col].Filled)
	}
}

func TestClearLinesShiftsPartialRowsDown(t *testing.T) {
	board := NewBoard()
	// Bottom two rows full, a partial row above them.
	fillRow(board, BoardHeight-1, Red)
	fillRow(board, BoardHeight-2, Green)
	board.cells[BoardHeight-3][0] = Cell{Filled: true, Color: Blue}
	board.cells[BoardHeight-3][7] = Cell{Filled: true, Color: Blue}

	assert.Equal(t, uint(2), board.ClearLines())

	// The partial row moved down by two.
	assert.Equal(t, Cell{Filled: true, Color: Blue}, board.cells[BoardHeight-1][0])
	assert.Equal(t, Cell{Filled: true, Color: Blue}, board.cells[BoardHeight-1][7])
	for col := 0; col < BoardWidth; col++ {
		if col != 0 && col != 7 {
			assert.False(t, board.cells[BoardHeight-1][col].Filled)
		}
		assert.False(t, board.cells[BoardHeight-2][col].Filled)
		assert.False(t, board.cells[BoardHeight-3][col].Filled)
	}
}

func TestClearLinesTopRow(t *testing.T) {
	board := NewBoard()
	fillRow(board, 0, Red)

	var cleared uint
	assert.NotPanics(t, func() { cleared = board.ClearLines() })
	assert.Equal(t, uint(1), cleared)
	for col := 0; col < BoardWidth; col++ {
		assert.False(t, board.cells[0][col].Filled)
	}
}

func TestClearLinesTopTwoRows(t *testing.T) {
	board := NewBoard()
	fillRow(board, 0, Red)
	fillRow(board, 1, Green)

	assert.Equal(t, uint(2), board.ClearLines())
	for row := 0; row < 2; row++ {
		for col := 0; col < BoardWidth; col++ {
			assert.False(t, board.cells[row][col].Filled)
		}
	}
}

func TestClearLinesTopAndBottomRows(t *testing.T) {
	board := NewBoard()
	fillRow(board, 0, Red)
	fillRow(board, BoardHeight-1, Green)
	board.cells[5][2] = Cell{Filled: true, Color: Blue}

	assert.Equal(t, uint(2), board.ClearLines())

	// The lone survivor shifted down past the cleared bottom row.
	assert.Equal(t, Cell{Filled: true, Color: Blue}, board.cells[6][2])
	assert.False(t, board.cells[5][2].Filled)
	for col := 0; col < BoardWidth; col++ {
		assert.False(t, board.cells[0][col].Filled)
		assert.False(t, board.cells[BoardHeight-1][col].Filled)
	}
}

func TestClearLinesNonAdjacent(t *testing.T) {
	board := NewBoard()
	fillRow(board, BoardHeight-1, Red)
	board.cells[BoardHeight-2][3] = Cell{Filled: true, Color: Green}
	fillRow(board, BoardHeight-3, Purple)

	assert.Equal(t, uint(2), board.ClearLines())

	// The partial row between the cleared rows lands on the bottom.
	assert.Equal(t, Cell{Filled: true, Color: Green}, board.cells[BoardHeight-1][3])
	for col := 0; col < BoardWidth; col++ {
		if col != 3 {
			assert.False(t, board.cells[BoardHeight-1][col].Filled)
		}
		assert.False(t, board.cells[BoardHeight-2][col].Filled)
		assert.False(t, board.cells[BoardHeight-3][col].Filled)
	}
}

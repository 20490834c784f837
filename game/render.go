package game

import "fmt"

// panelMargin is the column the status panel starts at, to the right of
// the well.
const panelMargin = BoardWidth*2 + 5

// Render draws a full frame: the well, the active piece with its ghost, the
// next-piece preview and the status panel.
func (game *Game) Render(display Display) {
	game.board.render(display)

	display.SetText(fmt.Sprintf("Level: %d", game.level), panelMargin, 3, Red, Black)
	display.SetText(fmt.Sprintf("Score: %d", game.score), panelMargin, 4, Red, Black)
	display.SetText(fmt.Sprintf("Lines: %d", game.totalLines), panelMargin, 5, Red, Black)

	// Ghost first, so the active piece wins where the two overlap.
	x := 1 + 2*game.piecePos.X
	ghost := game.FindDroppedPosition()
	renderPiece(display, game.piece, Point{X: x, Y: ghost.Y})
	renderPiece(display, game.piece, Point{X: x, Y: game.piecePos.Y})

	display.SetText("Next piece:", panelMargin, 7, Red, Black)
	renderPiece(display, game.bag.Peek(), Point{X: panelMargin + 2, Y: 9})
}

// RenderGameOver draws the terminal end screen with the final score and the
// restart/quit prompt.
func (game *Game) RenderGameOver(display Display) {
	display.SetText("Game Over!", 10, 10, Red, Black)
	display.SetText(fmt.Sprintf("Your Score: %d", game.score), 10, 12, Red, Black)
	display.SetText("Press 'r' to restart or 'q' to quit.", 10, 14, Red, Black)
}

func (board *Board) render(display Display) {
	for y := HiddenRows; y < BoardHeight; y++ {
		display.SetText("|", 0, y, Red, Black)
		display.SetText("|", BoardWidth*2+1, y, Red, Black)
	}
	for x := 0; x < BoardWidth*2+1; x++ {
		display.SetText("-", x, BoardHeight, Red, Black)
	}

	for row := 0; row < BoardHeight; row++ {
		for col := 0; col < BoardWidth; col++ {
			if cell := board.cells[row][col]; cell.Filled {
				display.SetText("  ", 1+col*2, row, cell.Color, cell.Color)
			}
		}
	}
}

// renderPiece draws a piece at origin, two columns per cell. The origin's X
// is already in screen columns; only the occupied offsets are doubled.
func renderPiece(display Display, piece Piece, origin Point) {
	piece.EachPoint(func(row, col int) {
		display.SetText("  ", origin.X+2*col, origin.Y+row, piece.Color, piece.Color)
	})
}

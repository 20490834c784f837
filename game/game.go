package game

import (
	log "github.com/sirupsen/logrus"
)

// Config carries everything needed to start a session.
type Config struct {
	// Seed drives the piece bag; identical seeds produce identical piece
	// sequences. Zero tells the command layer to pick one.
	Seed int64

	// StartLevel is the level the session begins at. The tick interval is
	// fixed from it for the whole session.
	StartLevel uint

	// RecordDir, when set, is where finished sessions are saved as
	// playthrough files.
	RecordDir string

	// Replay, when set, replaces the live tick producer with a recorded
	// session played back through the same update stream.
	Replay *Playthrough
}

func NewConfig() Config {
	return Config{
		Seed:       0,
		StartLevel: 0,
	}
}

// lineScores maps rows cleared by a single lock to the points awarded.
var lineScores = map[uint]uint{
	1: 40,
	2: 100,
	3: 300,
	4: 1200,
}

// Game aggregates the board, the piece bag and the active piece, and owns
// the score, level, line count and the terminal game-over flag. It is only
// ever touched from the loop's consumer goroutine, so it needs no locking.
type Game struct {
	board    *Board
	bag      *PieceBag
	piece    Piece
	piecePos Point

	score      uint
	level      uint
	totalLines uint
	gameOver   bool
}

func NewGame(config Config) *Game {
	bag := NewPieceBag(config.Seed)
	game := &Game{
		board: NewBoard(),
		bag:   bag,
		piece: bag.Pop(),
		level: config.StartLevel,
	}
	game.PlaceNewPiece()
	return game
}

func (game *Game) Over() bool {
	return game.gameOver
}

func (game *Game) Score() uint {
	return game.score
}

func (game *Game) Level() uint {
	return game.level
}

func (game *Game) TotalLines() uint {
	return game.totalLines
}

// MovePiece offsets the active piece, committing only when the new origin
// is collision free.
func (game *Game) MovePiece(dx, dy int) bool {
	newPosition := game.piecePos.Plus(Point{dx, dy})
	if game.board.CollisionTest(game.piece, newPosition) {
		return false
	}
	game.piecePos = newPosition
	return true
}

// RotatePiece rotates a copy of the active piece and commits it if it still
// fits at the current origin. There is no wall-kick search.
func (game *Game) RotatePiece(direction Direction) bool {
	rotated := game.piece.Clone()
	rotated.Rotate(direction)

	if game.board.CollisionTest(rotated, game.piecePos) {
		return false
	}
	game.piece = rotated
	return true
}

// PlaceNewPiece positions the active piece at its spawn origin, centered
// horizontally at the top of the board.
func (game *Game) PlaceNewPiece() bool {
	origin := Point{X: (BoardWidth - game.piece.Size()) / 2, Y: 0}
	if game.board.CollisionTest(game.piece, origin) {
		return false
	}
	game.piecePos = origin
	return true
}

// FindDroppedPosition returns where the active piece would come to rest if
// dropped straight down, without moving it. The ghost projection uses this
// too.
func (game *Game) FindDroppedPosition() Point {
	origin := game.piecePos
	for !game.board.CollisionTest(game.piece, origin) {
		origin.Y++
	}
	origin.Y--
	return origin
}

// AdvanceGame performs one gravity step. When the piece can no longer move
// down it is locked, complete rows are cleared and scored, and the next
// piece is drawn from the bag and spawned. Returns false exactly when the
// fresh piece cannot be placed and the game transitions to over.
func (game *Game) AdvanceGame() bool {
	if game.MovePiece(0, 1) {
		return true
	}

	game.board.LockPiece(game.piece, game.piecePos)

	if cleared := game.board.ClearLines(); cleared > 0 {
		game.score += lineScores[cleared]
		game.totalLines += cleared
		log.WithFields(log.Fields{
			"cleared": cleared,
			"total":   game.totalLines,
			"score":   game.score,
		}).Info("cleared lines")

		if game.totalLines >= game.level*10 {
			game.level++
			log.WithField("level", game.level).Info("level up")
		}
	}

	game.piece = game.bag.Pop()
	if !game.PlaceNewPiece() {
		// Top-out, lock-out and block-out all land here; they are one and
		// the same terminal state.
		game.gameOver = true
		log.WithFields(log.Fields{
			"score": game.score,
			"lines": game.totalLines,
		}).Info("game over")
		return false
	}
	return true
}

// DropPiece sends the active piece straight to its resting position, then
// advances once to lock it and spawn the next piece.
func (game *Game) DropPiece() bool {
	for game.MovePiece(0, 1) {
	}
	return game.AdvanceGame()
}

// Keypress dispatches a decoded key to the matching operation. Keys with no
// binding are ignored here; quitting and restarting are loop concerns.
func (game *Game) Keypress(ev KeyEvent) {
	switch ev.Key {
	case KeyLeft:
		game.MovePiece(-1, 0)
	case KeyRight:
		game.MovePiece(1, 0)
	case KeyDown:
		game.AdvanceGame()
	case KeyUp:
		game.RotatePiece(Left)
	case KeySpace:
		game.DropPiece()
	case KeyChar:
		switch ev.Char {
		case 'q':
			game.RotatePiece(Left)
		case 'e':
			game.RotatePiece(Right)
		}
	}
}

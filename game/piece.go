package game

// Tetromino identifies one of the seven canonical piece shapes.
type Tetromino int

const (
	TetrominoO Tetromino = iota
	TetrominoL
	TetrominoJ
	TetrominoT
	TetrominoS
	TetrominoZ
	TetrominoI
)

var Tetrominoes = []Tetromino{
	TetrominoO,
	TetrominoL,
	TetrominoJ,
	TetrominoT,
	TetrominoS,
	TetrominoZ,
	TetrominoI,
}

// Direction selects a rotation: Left is counter-clockwise, Right clockwise.
type Direction int

const (
	Left Direction = iota
	Right
)

type pieceTemplate struct {
	color Color
	shape [][]uint8
}

// pieceTemplates holds the canonical shape and color of each tetromino.
// Shapes are square matrices; rotation depends on that.
var pieceTemplates = [...]pieceTemplate{
	TetrominoO: {
		color: Cyan,
		shape: [][]uint8{
			{1, 1},
			{1, 1},
		},
	},
	TetrominoL: {
		color: Orange,
		shape: [][]uint8{
			{0, 0, 1},
			{1, 1, 1},
			{0, 0, 0},
		},
	},
	TetrominoJ: {
		color: Blue,
		shape: [][]uint8{
			{1, 0, 0},
			{1, 1, 1},
			{0, 0, 0},
		},
	},
	TetrominoT: {
		color: Purple,
		shape: [][]uint8{
			{0, 1, 0},
			{1, 1, 1},
			{0, 0, 0},
		},
	},
	TetrominoS: {
		color: Green,
		shape: [][]uint8{
			{0, 1, 1},
			{1, 1, 0},
			{0, 0, 0},
		},
	},
	TetrominoZ: {
		color: Red,
		shape: [][]uint8{
			{1, 1, 0},
			{0, 1, 1},
			{0, 0, 0},
		},
	},
	TetrominoI: {
		color: Cyan,
		shape: [][]uint8{
			{0, 0, 0, 0},
			{1, 1, 1, 1},
			{0, 0, 0, 0},
			{0, 0, 0, 0},
		},
	},
}

// Piece is a square occupancy matrix with a color. The active piece, its
// rotation candidate, its ghost projection and bag entries all evolve
// independently, so copies are always deep.
type Piece struct {
	Color Color

	shape [][]uint8
}

func NewPiece(tetromino Tetromino) Piece {
	template := pieceTemplates[tetromino]
	return Piece{Color: template.color, shape: copyShape(template.shape)}
}

func copyShape(shape [][]uint8) [][]uint8 {
	out := make([][]uint8, len(shape))
	for i, row := range shape {
		out[i] = append([]uint8(nil), row...)
	}
	return out
}

// Size is the dimension of the piece's square matrix.
func (piece Piece) Size() int {
	return len(piece.shape)
}

func (piece Piece) Clone() Piece {
	return Piece{Color: piece.Color, shape: copyShape(piece.shape)}
}

// Rotate turns the piece 90 degrees in place using layer-by-layer four-way
// cell swaps. Purely geometric; callers collision-test the result.
func (piece *Piece) Rotate(direction Direction) {
	size := len(piece.shape)

	for row := 0; row < size/2; row++ {
		for col := row; col < size-row-1; col++ {
			t := piece.shape[row][col]

			switch direction {
			case Left:
				piece.shape[row][col] = piece.shape[col][size-row-1]
				piece.shape[col][size-row-1] = piece.shape[size-row-1][size-col-1]
				piece.shape[size-row-1][size-col-1] = piece.shape[size-col-1][row]
				piece.shape[size-col-1][row] = t
			case Right:
				piece.shape[row][col] = piece.shape[size-col-1][row]
				piece.shape[size-col-1][row] = piece.shape[size-row-1][size-col-1]
				piece.shape[size-row-1][size-col-1] = piece.shape[col][size-row-1]
				piece.shape[col][size-row-1] = t
			}
		}
	}
}

// EachPoint calls fn with every occupied (row, col) offset in raster order.
// Collision testing, locking and rendering all go through this enumeration,
// so a rotation is reflected everywhere automatically.
func (piece Piece) EachPoint(fn func(row, col int)) {
	for row := range piece.shape {
		for col := range piece.shape[row] {
			if piece.shape[row][col] != 0 {
				fn(row, col)
			}
		}
	}
}

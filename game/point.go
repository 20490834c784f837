package game

// Point is an integer offset, used both for board coordinates and piece
// origins.
type Point struct {
	X, Y int
}

func (p Point) Plus(other Point) Point {
	return Point{p.X + other.X, p.Y + other.Y}
}

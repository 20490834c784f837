package game

import (
	"math/rand"

	"github.com/gammazero/deque"
)

// PieceBag supplies the ordered stream of upcoming pieces. Each refill
// pushes a shuffled permutation of all seven tetrominoes, so every variant
// is drawn exactly once before any repeats.
type PieceBag struct {
	queue deque.Deque[Piece]
	rand  *rand.Rand
}

func NewPieceBag(seed int64) *PieceBag {
	bag := &PieceBag{rand: rand.New(rand.NewSource(seed))}
	bag.fill()
	return bag
}

// Pop removes and returns the front piece, refilling the queue whenever it
// drains so the front is always populated for Peek.
func (bag *PieceBag) Pop() Piece {
	if bag.queue.Len() == 0 {
		bag.fill()
	}
	piece := bag.queue.PopFront()
	if bag.queue.Len() == 0 {
		bag.fill()
	}
	return piece
}

// Peek returns a copy of the front piece without removing it. The pop
// discipline keeps the front populated at all times; an empty queue here is
// a logic defect.
func (bag *PieceBag) Peek() Piece {
	if bag.queue.Len() == 0 {
		panic("piece bag is empty")
	}
	return bag.queue.Front().Clone()
}

func (bag *PieceBag) fill() {
	for _, i := range bag.rand.Perm(len(Tetrominoes)) {
		bag.queue.PushBack(NewPiece(Tetrominoes[i]))
	}
}

package testutil

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// Put describes a piece for MustTestBoard.
func Put(colour chess.Colour, pieceType chess.PieceType, id, x, y int) chess.Placement {
	pos := chess.Position{X: x, Y: y}
	return chess.Placement{
		Position: pos,
		Piece:    chess.Piece{ID: id, Type: pieceType, Colour: colour, Position: pos},
	}
}

// MustTestBoard builds a sparse board and calls t.Fatal if a placement is
// off the board.
func MustTestBoard(t *testing.T, placements ...chess.Placement) *chess.Board {
	t.Helper()
	board, err := chess.NewTestBoard(placements)
	if err != nil {
		t.Fatalf("NewTestBoard: %v", err)
	}
	return board
}

// MustPieceAt returns a copy of the piece on (x, y), failing the test if
// the square is empty.
func MustPieceAt(t *testing.T, board *chess.Board, x, y int) chess.Piece {
	t.Helper()
	p := board.PieceAt(chess.Position{X: x, Y: y})
	if p == nil {
		t.Fatalf("no piece at (%d,%d)", x, y)
	}
	return *p
}

// HasMoveTo reports whether any move lands on (x, y).
func HasMoveTo(moves []chess.Move, x, y int) bool {
	_, ok := MoveTo(moves, x, y)
	return ok
}

// MoveTo returns the first move landing on (x, y).
func MoveTo(moves []chess.Move, x, y int) (chess.Move, bool) {
	for _, m := range moves {
		if m.NewPosition.X == x && m.NewPosition.Y == y {
			return m, true
		}
	}
	return chess.Move{}, false
}

// CountType returns how many moves have the given type.
func CountType(moves []chess.Move, moveType chess.MoveType) int {
	n := 0
	for _, m := range moves {
		if m.Type == moveType {
			n++
		}
	}
	return n
}

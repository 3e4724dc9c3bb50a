package engine

import (
	"math/bits"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// SquareSet is a set of board squares, one bit per square.
type SquareSet uint64

func squareBit(pos chess.Position) SquareSet {
	return 1 << uint(pos.Y*chess.BoardSize+pos.X)
}

// Add returns the set with pos included. Off-board positions are ignored.
func (s SquareSet) Add(pos chess.Position) SquareSet {
	if !pos.Valid() {
		return s
	}
	return s | squareBit(pos)
}

// Has reports whether pos is in the set.
func (s SquareSet) Has(pos chess.Position) bool {
	return pos.Valid() && s&squareBit(pos) != 0
}

// Len returns the number of squares in the set.
func (s SquareSet) Len() int {
	return bits.OnesCount64(uint64(s))
}

// AttackedSquares returns the squares the given side attacks. Pawns attack
// their two forward diagonals whether or not anything stands there, kings
// attack the eight neighbouring squares they could step to (never a
// castling destination), and every other piece attacks its geometric
// destinations.
func AttackedSquares(board *chess.Board, by chess.Colour) SquareSet {
	var set SquareSet
	for _, p := range board.Pieces(by) {
		switch p.Type {
		case chess.Pawn:
			for _, dir := range chess.PawnCaptureDirections(p.Colour) {
				set = set.Add(p.Position.Add(dir))
			}
		case chess.King:
			for _, m := range stepMoves(*p, board, chess.PatternFor(chess.King).Directions) {
				set = set.Add(m.NewPosition)
			}
		default:
			for _, m := range GeometricMoves(*p, board, nil) {
				set = set.Add(m.NewPosition)
			}
		}
	}
	return set
}

// IsSquareAttacked reports whether pos is attacked by the given side.
func IsSquareAttacked(board *chess.Board, pos chess.Position, by chess.Colour) bool {
	return AttackedSquares(board, by).Has(pos)
}

// IsInCheck returns true if the given colour's king is attacked. A board
// without that king is never in check.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	king := board.FindKing(colour)
	if king == nil {
		return false
	}
	return IsSquareAttacked(board, king.Position, colour.Opposite())
}

// WillBeInCheck copies the board, moves the king by delta and reports
// whether the king's new square is attacked. An off-board destination
// reports true.
func WillBeInCheck(king chess.Piece, board *chess.Board, delta chess.Position) bool {
	to := king.Position.Add(delta)
	if !to.Valid() {
		return true
	}

	testBoard := board.Copy()
	if from, err := testBoard.GetTile(king.Position); err == nil && chess.SameIdentity(from.Piece, &king) {
		from.Piece = nil
	}
	moved := king
	moved.Position = to
	testBoard.Tiles[to.Y][to.X].Piece = &moved

	return IsSquareAttacked(testBoard, to, king.Colour.Opposite())
}

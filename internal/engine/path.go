package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// newMove builds a move for piece to the given square. The captured piece,
// if any, is copied so the move never aliases the board it came from.
func newMove(piece chess.Piece, to chess.Position, moveType chess.MoveType, captured *chess.Piece) chess.Move {
	move := chess.Move{
		Piece:       piece,
		NewPosition: to,
		Steps:       to.Sub(piece.Position),
		Type:        moveType,
	}
	if captured != nil {
		c := *captured
		move.Capture = &c
	}
	return move
}

// slideMoves walks each ray outward from the piece. Empty squares yield a
// normal move and the walk continues; an enemy yields one capture and ends
// the ray; a friendly piece or the edge ends it with nothing.
func slideMoves(piece chess.Piece, board *chess.Board, dirs []chess.Position) []chess.Move {
	var moves []chess.Move
	for _, dir := range dirs {
		for to := piece.Position.Add(dir); to.Valid(); to = to.Add(dir) {
			target := board.PieceAt(to)
			if target == nil {
				moves = append(moves, newMove(piece, to, chess.Normal, nil))
				continue
			}
			if target.Colour != piece.Colour {
				moves = append(moves, newMove(piece, to, chess.Capture, target))
			}
			break // Blocked
		}
	}
	return moves
}

// stepMoves tries one jump per offset, keeping on-board squares that are
// empty or hold an enemy.
func stepMoves(piece chess.Piece, board *chess.Board, offsets []chess.Position) []chess.Move {
	var moves []chess.Move
	for _, offset := range offsets {
		to := piece.Position.Add(offset)
		if !to.Valid() {
			continue
		}
		switch target := board.PieceAt(to); {
		case target == nil:
			moves = append(moves, newMove(piece, to, chess.Normal, nil))
		case target.Colour != piece.Colour:
			moves = append(moves, newMove(piece, to, chess.Capture, target))
		}
	}
	return moves
}

// isRowClear reports whether every square strictly between two squares on
// the same row is empty.
func isRowClear(board *chess.Board, from, to chess.Position) bool {
	if from.Y != to.Y {
		return false
	}
	dir := sign(to.X - from.X)
	for x := from.X + dir; x != to.X; x += dir {
		if board.PieceAt(chess.Position{X: x, Y: from.Y}) != nil {
			return false
		}
	}
	return true
}

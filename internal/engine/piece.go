// Package engine generates, filters and applies chess moves over
// immutable board snapshots.
package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// GeometricMoves returns every move the piece's movement pattern allows on
// this board, without regard to whether the mover's king is left attacked.
// Castling is included when it is structurally possible; the corridor
// safety check belongs to LegalMoves. History is consulted only for en
// passant. The result order is deterministic for a given board.
func GeometricMoves(piece chess.Piece, board *chess.Board, history chess.History) []chess.Move {
	if !piece.Position.Valid() {
		return nil
	}

	pattern := chess.PatternFor(piece.Type)
	switch pattern.Kind {
	case chess.SlidePattern:
		return slideMoves(piece, board, pattern.Directions)
	case chess.StepPattern:
		moves := stepMoves(piece, board, pattern.Directions)
		if piece.Type == chess.King {
			moves = append(moves, castlingMoves(piece, board)...)
		}
		return moves
	case chess.PawnPattern:
		return pawnMoves(piece, board, history)
	}
	return nil
}

// MovesForPiece returns the piece's moves. With detectCheck false the
// result is purely geometric; with it true, moves that would leave the
// mover's king attacked are removed.
func MovesForPiece(piece chess.Piece, board *chess.Board, history chess.History, detectCheck bool) []chess.Move {
	if detectCheck {
		return LegalMoves(piece, board, history)
	}
	return GeometricMoves(piece, board, history)
}

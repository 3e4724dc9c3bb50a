package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// Verdict is the outcome of a game-over check for the side to move.
type Verdict string

const (
	Ongoing   Verdict = ""
	Checkmate Verdict = "checkmate"
	Stalemate Verdict = "stalemate"
)

// IsOver reports whether the verdict ends the game.
func (v Verdict) IsOver() bool {
	return v != Ongoing
}

// String returns the verdict, or "ongoing" when the game continues.
func (v Verdict) String() string {
	if v == Ongoing {
		return "ongoing"
	}
	return string(v)
}

// DetectCheckmate returns Checkmate if colour's king is attacked and no
// legal move removes the attack.
func DetectCheckmate(board *chess.Board, colour chess.Colour, history chess.History) Verdict {
	if IsInCheck(board, colour) && !HasLegalMoves(board, colour, history) {
		return Checkmate
	}
	return Ongoing
}

// DetectStalemate returns Stalemate if colour's king is not attacked and
// colour has no legal move.
func DetectStalemate(board *chess.Board, colour chess.Colour, history chess.History) Verdict {
	if !IsInCheck(board, colour) && !HasLegalMoves(board, colour, history) {
		return Stalemate
	}
	return Ongoing
}

// DetectGameOver classifies the position for the side about to move:
// checkmate first, then stalemate.
func DetectGameOver(board *chess.Board, colour chess.Colour, history chess.History) Verdict {
	if HasLegalMoves(board, colour, history) {
		return Ongoing
	}
	if IsInCheck(board, colour) {
		return Checkmate
	}
	return Stalemate
}

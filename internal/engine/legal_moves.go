package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// LegalMoves returns the piece's geometric moves that do not leave its own
// king attacked. Each candidate is applied to a copy of the board and the
// result inspected. Castling is further refused while the king is in check
// or when the square it crosses is attacked.
func LegalMoves(piece chess.Piece, board *chess.Board, history chess.History) []chess.Move {
	var legal []chess.Move
	for _, move := range GeometricMoves(piece, board, history) {
		if isLegal(board, move, history) {
			legal = append(legal, move)
		}
	}
	return legal
}

// AllLegalMoves returns the legal moves of every piece of the given colour,
// in board order.
func AllLegalMoves(board *chess.Board, colour chess.Colour, history chess.History) []chess.Move {
	var moves []chess.Move
	for _, p := range board.Pieces(colour) {
		moves = append(moves, LegalMoves(*p, board, history)...)
	}
	return moves
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func HasLegalMoves(board *chess.Board, colour chess.Colour, history chess.History) bool {
	for _, p := range board.Pieces(colour) {
		for _, move := range GeometricMoves(*p, board, history) {
			if isLegal(board, move, history) {
				return true
			}
		}
	}
	return false
}

// isLegal makes the move on a copied board and checks if it leaves the king in check.
func isLegal(board *chess.Board, move chess.Move, history chess.History) bool {
	colour := move.Piece.Colour

	if move.Type == chess.Castling {
		if IsInCheck(board, colour) {
			return false
		}
		if WillBeInCheck(move.Piece, board, castlingTransit(move).Sub(move.Piece.Position)) {
			return false
		}
	}

	testBoard, err := ApplyMove(board, move, history)
	if err != nil {
		return false
	}
	return !IsInCheck(testBoard, colour)
}

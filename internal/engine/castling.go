package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// castlingMoves returns the structurally possible castling moves for an
// unmoved king: an unmoved rook of the same colour in a corner of the
// king's row, with nothing between them. Whether the king passes through
// an attacked square is decided by LegalMoves.
func castlingMoves(king chess.Piece, board *chess.Board) []chess.Move {
	if king.HasMoved {
		return nil
	}

	var moves []chess.Move
	for _, rookX := range []int{chess.MaxCoord, chess.MinCoord} {
		rook := board.PieceAt(chess.Position{X: rookX, Y: king.Position.Y})
		if !chess.IsRook(rook) || rook.Colour != king.Colour || rook.HasMoved {
			continue
		}
		// The king travels two squares and the rook must lie beyond them.
		if abs(rookX-king.Position.X) < 3 {
			continue
		}
		if !isRowClear(board, king.Position, rook.Position) {
			continue
		}

		dir := sign(rookX - king.Position.X)
		kingTo := king.Position.Add(chess.Position{X: 2 * dir})
		rookTo := king.Position.Add(chess.Position{X: dir})

		move := newMove(king, kingTo, chess.Castling, nil)
		move.Castling = &chess.CastlingMove{
			Rook:            *rook,
			RookNewPosition: rookTo,
			RookSteps:       rookTo.Sub(rook.Position),
		}
		moves = append(moves, move)
	}
	return moves
}

// castlingTransit returns the square the king crosses while castling.
func castlingTransit(move chess.Move) chess.Position {
	return move.Piece.Position.Add(chess.Position{X: sign(move.Steps.X)})
}

package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// pawnMoves generates pushes, diagonal captures and en passant for a pawn.
// A move onto the farthest rank is an ordinary normal or capture move here;
// ApplyMove performs the promotion.
func pawnMoves(pawn chess.Piece, board *chess.Board, history chess.History) []chess.Move {
	var moves []chess.Move
	forward := chess.Position{Y: chess.ForwardDirection(pawn.Colour)}

	one := pawn.Position.Add(forward)
	if one.Valid() && board.PieceAt(one) == nil {
		moves = append(moves, newMove(pawn, one, chess.Normal, nil))

		// Double push from the starting rank
		two := one.Add(forward)
		if !pawn.HasMoved && pawn.Position.Y == chess.StartRank(pawn.Colour) &&
			two.Valid() && board.PieceAt(two) == nil {
			moves = append(moves, newMove(pawn, two, chess.Normal, nil))
		}
	}

	for _, dir := range chess.PawnCaptureDirections(pawn.Colour) {
		to := pawn.Position.Add(dir)
		if !to.Valid() {
			continue
		}
		if target := board.PieceAt(to); target != nil {
			if target.Colour != pawn.Colour {
				moves = append(moves, newMove(pawn, to, chess.Capture, target))
			}
			continue
		}
		if victim := enPassantVictim(pawn, to, board, history); victim != nil {
			moves = append(moves, newMove(pawn, to, chess.CaptureEnPassant, victim))
		}
	}
	return moves
}

// enPassantVictim returns the pawn that pawn may capture en passant by
// moving to the empty square to, or nil. Only the most recent history item
// counts, so the chance lapses after one ply.
func enPassantVictim(pawn chess.Piece, to chess.Position, board *chess.Board, history chess.History) *chess.Piece {
	last := history.Last()
	if last == nil || !last.IsDoublePawnStep() || last.Piece.Colour == pawn.Colour {
		return nil
	}
	// The passed pawn must sit beside ours, on the file we are moving to.
	if last.To.Y != pawn.Position.Y || last.To.X != to.X {
		return nil
	}
	victim := board.PieceAt(last.To)
	if !chess.SameIdentity(victim, &last.Piece) {
		return nil
	}
	return victim
}

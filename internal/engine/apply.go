package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// ApplyMove commits a move to a copy of the board and returns the copy.
// The mover is relocated and, for pawns, kings and rooks, marked as moved.
// A pawn reaching its farthest rank becomes move.PromotionType() under a
// fresh id. En passant removes the pawn on the last history item's
// destination, and castling relocates the rook.
//
// If any square or piece the move refers to does not match the board, the
// input board is returned unchanged together with an error wrapping
// errors.ErrStaleReference. The input board is never modified.
func ApplyMove(board *chess.Board, move chess.Move, history chess.History) (*chess.Board, error) {
	stale := func(reason string) (*chess.Board, error) {
		return board, &errors.MoveError{
			Err:   errors.Wrap(errors.ErrStaleReference, reason),
			Ply:   len(history) + 1,
			Piece: chess.CreateID(move.Piece),
			From:  move.Piece.Position.String(),
			To:    move.NewPosition.String(),
		}
	}

	next := board.Copy()

	from, err := next.GetTile(move.Piece.Position)
	if err != nil || !chess.SameIdentity(from.Piece, &move.Piece) {
		return stale("mover not on its square")
	}
	if from.Piece.HasMoved != move.Piece.HasMoved {
		return stale("mover has moved since the move was generated")
	}
	to, err := next.GetTile(move.NewPosition)
	if err != nil || to == from {
		return stale("destination unavailable")
	}

	switch move.Type {
	case chess.Normal, chess.Castling:
		if to.Piece != nil {
			return stale("destination occupied")
		}
	case chess.Capture:
		if !chess.SameIdentity(to.Piece, move.Capture) || to.Piece.Colour == move.Piece.Colour {
			return stale("captured piece not on destination")
		}
	case chess.CaptureEnPassant:
		if to.Piece != nil {
			return stale("destination occupied")
		}
		last := history.Last()
		if last == nil {
			return stale("no move to capture en passant")
		}
		victim, err := next.GetTile(last.To)
		if err != nil || !chess.IsPawn(victim.Piece) || !chess.SameIdentity(victim.Piece, move.Capture) {
			return stale("passed pawn not found")
		}
		victim.Piece = nil
	default:
		return stale("unknown move type")
	}

	if move.Type == chess.Castling {
		if move.Castling == nil {
			return stale("castling without rook")
		}
		if from.Piece.HasMoved || abs(to.Position.X-from.Position.X) != 2 || to.Position.Y != from.Position.Y {
			return stale("king cannot castle")
		}
		rookFrom, err := next.GetTile(move.Castling.Rook.Position)
		if err != nil || !chess.SameIdentity(rookFrom.Piece, &move.Castling.Rook) || rookFrom.Piece.HasMoved {
			return stale("castling rook not on its square")
		}
		dir := sign(to.Position.X - from.Position.X)
		if rookFrom.Position.Y != from.Position.Y || sign(rookFrom.Position.X-from.Position.X) != dir ||
			!isRowClear(next, from.Position, rookFrom.Position) {
			return stale("castling rook not beside a clear row")
		}
		// The rook lands on the square the king crosses.
		if move.Castling.RookNewPosition != from.Position.Add(chess.Position{X: dir}) {
			return stale("castling rook destination")
		}
		rookTo, err := next.GetTile(move.Castling.RookNewPosition)
		if err != nil || rookTo.Piece != nil {
			return stale("castling rook destination occupied")
		}
		rook := rookFrom.Piece
		rookFrom.Piece = nil
		rook.Position = rookTo.Position
		rook.HasMoved = true
		rookTo.Piece = rook
	}

	mover := from.Piece
	from.Piece = nil
	mover.Position = to.Position
	if chess.IsPawn(mover) || chess.IsKing(mover) || chess.IsRook(mover) {
		mover.HasMoved = true
	}

	if move.IsPromotion() {
		mover = &chess.Piece{
			ID:       next.NextID(),
			Type:     move.PromotionType(),
			Colour:   mover.Colour,
			Position: mover.Position,
			HasMoved: true,
		}
	}
	to.Piece = mover

	return next, nil
}

// NewHistoryItem records a committed move. after is the board ApplyMove
// returned for it.
func NewHistoryItem(after *chess.Board, move chess.Move) chess.HistoryItem {
	item := chess.HistoryItem{
		Board:     after,
		From:      move.Piece.Position,
		To:        move.NewPosition,
		Steps:     move.Steps,
		Type:      move.Type,
		Piece:     move.Piece,
		Promotion: move.PromotionType(),
	}
	if move.Capture != nil {
		c := *move.Capture
		item.Capture = &c
	}
	return item
}

package chess

// MoveType tags the kind of a generated move.
type MoveType int

const (
	Normal MoveType = iota
	Capture
	Castling
	CaptureEnPassant
)

// String returns the string representation of a move type.
func (t MoveType) String() string {
	switch t {
	case Normal:
		return "normal"
	case Capture:
		return "capture"
	case Castling:
		return "castling"
	case CaptureEnPassant:
		return "captureEnPassant"
	}
	return "unknown"
}

// CastlingMove describes the rook half of a castling move.
type CastlingMove struct {
	Rook            Piece
	RookNewPosition Position
	RookSteps       Position
}

// Move is a candidate or chosen move. It is a pure value: generating it
// never mutates the board.
type Move struct {
	// The mover, as it was before the move.
	Piece Piece

	NewPosition Position

	// Delta from the mover's position to NewPosition.
	Steps Position

	Type MoveType

	// The captured piece for Capture and CaptureEnPassant. For en passant
	// this is the passed pawn, not the (empty) destination occupant.
	Capture *Piece

	// Rook relocation for Castling.
	Castling *CastlingMove

	// Requested promotion piece. NoPieceType means queen.
	Promotion PieceType
}

// From returns the mover's starting square.
func (m Move) From() Position {
	return m.Piece.Position
}

// IsPromotion reports whether the move takes a pawn to its farthest rank.
func (m Move) IsPromotion() bool {
	return m.Piece.Type == Pawn && m.NewPosition.Y == PromotionRank(m.Piece.Colour)
}

// PromotionType returns the piece a promoting pawn becomes. It is
// NoPieceType for moves that do not promote.
func (m Move) PromotionType() PieceType {
	if !m.IsPromotion() {
		return NoPieceType
	}
	if IsPromotionType(m.Promotion) {
		return m.Promotion
	}
	return Queen
}

// HistoryItem records one committed move.
type HistoryItem struct {
	// Board after the move.
	Board *Board

	From  Position
	To    Position
	Steps Position

	Capture *Piece
	Type    MoveType

	// The mover as it was before the move.
	Piece Piece

	// The piece a promoting pawn became, NoPieceType otherwise.
	Promotion PieceType
}

// IsDoublePawnStep reports whether the recorded move was a pawn's two-square advance.
func (h HistoryItem) IsDoublePawnStep() bool {
	dy := h.To.Y - h.From.Y
	return h.Piece.Type == Pawn && h.From.X == h.To.X && (dy == 2 || dy == -2)
}

// History is the append-only sequence of committed moves.
type History []HistoryItem

// Last returns the most recent item, or nil if no move has been made.
func (h History) Last() *HistoryItem {
	if len(h) == 0 {
		return nil
	}
	return &h[len(h)-1]
}

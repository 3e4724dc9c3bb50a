// Package notation converts between board moves and the coordinate move
// format ("e2e4", "e7e8q") exchanged with move-suggestion services.
package notation

import (
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// File and rank characters.
const (
	FirstFile = 'a'
	LastFile  = 'h'
	FirstRank = '1'
	LastRank  = '8'
)

// Coordinate is a decoded coordinate move.
type Coordinate struct {
	From      chess.Position
	To        chess.Position
	Promotion chess.PieceType // NoPieceType when no letter was given
}

// String encodes the coordinate back to its text form.
func (c Coordinate) String() string {
	var sb strings.Builder
	sb.WriteString(SquareName(c.From))
	sb.WriteString(SquareName(c.To))
	if c.Promotion != chess.NoPieceType {
		sb.WriteByte(c.Promotion.Letter())
	}
	return sb.String()
}

func isFile(c byte) bool {
	return c >= FirstFile && c <= LastFile
}

func isRank(c byte) bool {
	return c >= FirstRank && c <= LastRank
}

// SquareName returns the algebraic name of a board position. Row 0 is rank 8.
func SquareName(pos chess.Position) string {
	return pos.Square()
}

// ParseSquare converts an algebraic square name to a board position.
func ParseSquare(s string) (chess.Position, error) {
	if len(s) != 2 {
		return chess.Position{}, errors.Wrapf(errors.ErrInvalidNotation, "square %q", s)
	}
	file, rank := s[0], s[1]
	if file >= 'A' && file <= 'Z' {
		file += 'a' - 'A'
	}
	if !isFile(file) || !isRank(rank) {
		return chess.Position{}, errors.Wrapf(errors.ErrOutOfRange, "square %q", s)
	}
	return chess.Position{X: int(file - FirstFile), Y: chess.BoardSize - int(rank-'0')}, nil
}

// promotionPiece maps a promotion letter to a piece type.
func promotionPiece(c byte) chess.PieceType {
	switch c {
	case 'q', 'Q':
		return chess.Queen
	case 'r', 'R':
		return chess.Rook
	case 'b', 'B':
		return chess.Bishop
	case 'n', 'N':
		return chess.Knight
	}
	return chess.NoPieceType
}

// Encode returns the coordinate form of a move. A promoting move always
// carries its promotion letter, queen when none was chosen.
func Encode(move chess.Move) string {
	c := Coordinate{From: move.From(), To: move.NewPosition, Promotion: move.PromotionType()}
	return c.String()
}

// Decode parses a coordinate move such as "e2e4" or "e7e8q". A '-'
// between the squares and an '=' before the promotion letter are accepted.
func Decode(s string) (Coordinate, error) {
	text := strings.TrimSpace(s)
	text = strings.Replace(text, "-", "", 1)
	text = strings.Replace(text, "=", "", 1)

	if len(text) != 4 && len(text) != 5 {
		return Coordinate{}, errors.Wrapf(errors.ErrInvalidNotation, "move %q", s)
	}

	from, err := ParseSquare(text[0:2])
	if err != nil {
		return Coordinate{}, err
	}
	to, err := ParseSquare(text[2:4])
	if err != nil {
		return Coordinate{}, err
	}

	c := Coordinate{From: from, To: to}
	if len(text) == 5 {
		c.Promotion = promotionPiece(text[4])
		if c.Promotion == chess.NoPieceType {
			return Coordinate{}, errors.Wrapf(errors.ErrInvalidNotation, "promotion in %q", s)
		}
	}
	return c, nil
}

// FromHistory returns the coordinate form of every committed move, oldest first.
func FromHistory(history chess.History) []string {
	moves := make([]string, len(history))
	for i, item := range history {
		moves[i] = Coordinate{From: item.From, To: item.To, Promotion: item.Promotion}.String()
	}
	return moves
}

// Match resolves a coordinate move to the legal move it names on the
// current board. A coordinate that names no legal move yields
// ErrIllegalSuggestion; the board is never touched.
func Match(c Coordinate, board *chess.Board, history chess.History) (chess.Move, error) {
	piece := board.PieceAt(c.From)
	if piece == nil {
		return chess.Move{}, errors.Wrapf(errors.ErrIllegalSuggestion, "%s: no piece on %s", c, SquareName(c.From))
	}

	for _, move := range engine.LegalMoves(*piece, board, history) {
		if move.NewPosition != c.To {
			continue
		}
		if !move.IsPromotion() {
			if c.Promotion != chess.NoPieceType {
				return chess.Move{}, errors.Wrapf(errors.ErrIllegalSuggestion, "%s: not a promotion", c)
			}
			return move, nil
		}
		move.Promotion = c.Promotion
		return move, nil
	}
	return chess.Move{}, errors.Wrapf(errors.ErrIllegalSuggestion, "%s", c)
}

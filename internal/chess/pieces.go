package chess

import "fmt"

// Piece is a single piece on the board. ID is unique per game instance and
// survives moves, so a snapshot taken before a move can be matched against
// the board after it.
type Piece struct {
	ID       int
	Type     PieceType
	Colour   Colour
	Position Position
	HasMoved bool
}

// String returns a short description such as "white knight (1,7)".
func (p Piece) String() string {
	return fmt.Sprintf("%s %s %s", p.Colour, p.Type, p.Position)
}

// CreateID returns the comparison key used to match a piece snapshot
// with the live board.
func CreateID(p Piece) string {
	return fmt.Sprintf("%s-%s-%d", p.Colour, p.Type, p.ID)
}

// SameIdentity reports whether two piece snapshots are the same piece.
func SameIdentity(a, b *Piece) bool {
	if a == nil || b == nil {
		return false
	}
	return CreateID(*a) == CreateID(*b)
}

// IsPawn reports whether p is a pawn. Nil-safe.
func IsPawn(p *Piece) bool {
	return p != nil && p.Type == Pawn
}

// IsKing reports whether p is a king. Nil-safe.
func IsKing(p *Piece) bool {
	return p != nil && p.Type == King
}

// IsRook reports whether p is a rook. Nil-safe.
func IsRook(p *Piece) bool {
	return p != nil && p.Type == Rook
}

// PatternKind selects how a piece's directions are interpreted.
type PatternKind int

const (
	StepPattern  PatternKind = iota // One jump per direction (knight, king)
	SlidePattern                    // Ray until blocked (bishop, rook, queen)
	PawnPattern                     // Forward pushes plus diagonal captures
)

// Pattern describes how a piece type moves. For pawns, Directions holds
// the capture diagonals with Y counted in steps forward, so one table
// serves both colours.
type Pattern struct {
	Kind       PatternKind
	Directions []Position
}

var (
	diagonalDirs = []Position{{-1, -1}, {1, -1}, {-1, 1}, {1, 1}}
	straightDirs = []Position{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}
	allDirs      = append(append([]Position{}, straightDirs...), diagonalDirs...)
	knightDirs   = []Position{{1, -2}, {2, -1}, {2, 1}, {1, 2}, {-1, 2}, {-2, 1}, {-2, -1}, {-1, -2}}
	pawnCaptures = []Position{{-1, 1}, {1, 1}}
)

// patterns is indexed by PieceType; every type must have an entry.
var patterns = [NumPieceTypes]Pattern{
	NoPieceType: {},
	Pawn:        {Kind: PawnPattern, Directions: pawnCaptures},
	Knight:      {Kind: StepPattern, Directions: knightDirs},
	Bishop:      {Kind: SlidePattern, Directions: diagonalDirs},
	Rook:        {Kind: SlidePattern, Directions: straightDirs},
	Queen:       {Kind: SlidePattern, Directions: allDirs},
	King:        {Kind: StepPattern, Directions: allDirs},
}

// PatternFor returns the movement pattern of a piece type.
func PatternFor(t PieceType) Pattern {
	if t <= NoPieceType || t >= NumPieceTypes {
		return Pattern{}
	}
	return patterns[t]
}

// PawnCaptureDirections returns the diagonal capture offsets for a colour.
func PawnCaptureDirections(colour Colour) []Position {
	dirs := PatternFor(Pawn).Directions
	out := make([]Position, len(dirs))
	for i, d := range dirs {
		out[i] = Position{X: d.X, Y: d.Y * ForwardDirection(colour)}
	}
	return out
}

// ForwardDirection returns the y delta of a pawn advance: White moves
// toward row 0, Black toward row 7.
func ForwardDirection(colour Colour) int {
	if colour == White {
		return -1
	}
	return 1
}

// StartRank returns the row holding a colour's pawns at the start.
func StartRank(colour Colour) int {
	if colour == White {
		return 6
	}
	return 1
}

// BackRank returns the row holding a colour's king and rooks at the start.
func BackRank(colour Colour) int {
	if colour == White {
		return MaxCoord
	}
	return MinCoord
}

// PromotionRank returns the farthest row from a colour's start.
func PromotionRank(colour Colour) int {
	return BackRank(colour.Opposite())
}

// IsPromotionType reports whether a pawn may promote to t.
func IsPromotionType(t PieceType) bool {
	return t == Knight || t == Bishop || t == Rook || t == Queen
}

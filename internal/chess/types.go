// Package chess provides core chess types and operations.
package chess

import "fmt"

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// PieceType represents a chess piece type.
type PieceType int

const (
	NoPieceType PieceType = iota // Unspecified (e.g. no promotion choice)
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieceTypes
)

// String returns the string representation of a piece type.
func (t PieceType) String() string {
	names := []string{"none", "pawn", "knight", "bishop", "rook", "queen", "king"}
	if t >= 0 && int(t) < len(names) {
		return names[t]
	}
	return "unknown"
}

// Letter returns the lowercase coordinate-notation letter for a piece type.
func (t PieceType) Letter() byte {
	letters := []byte{' ', 'p', 'n', 'b', 'r', 'q', 'k'}
	if t >= 0 && int(t) < len(letters) {
		return letters[t]
	}
	return '?'
}

// Board dimensions.
const (
	BoardSize = 8
	MinCoord  = 0
	MaxCoord  = BoardSize - 1
)

// Position is a board coordinate. Y is the row (0 = black's back rank),
// X is the column (0 = the a-file).
type Position struct {
	X int
	Y int
}

// Valid reports whether the position lies on the board.
func (p Position) Valid() bool {
	return p.X >= MinCoord && p.X <= MaxCoord && p.Y >= MinCoord && p.Y <= MaxCoord
}

// Add returns p offset by delta.
func (p Position) Add(delta Position) Position {
	return Position{X: p.X + delta.X, Y: p.Y + delta.Y}
}

// Sub returns the delta that moves q onto p.
func (p Position) Sub(q Position) Position {
	return Position{X: p.X - q.X, Y: p.Y - q.Y}
}

// Square returns the algebraic name of the position, e.g. (4,6) is "e2".
// Row 0 is rank 8.
func (p Position) Square() string {
	return string([]byte{byte('a' + p.X), byte('0' + BoardSize - p.Y)})
}

// String returns the position as "(x,y)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// PositionsMatch reports whether both positions are non-nil and equal.
// A nil position never matches anything, including another nil.
func PositionsMatch(a, b *Position) bool {
	if a == nil || b == nil {
		return false
	}
	return a.X == b.X && a.Y == b.Y
}

package chess

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Tile is one square of the board. A nil Piece means the square is empty.
type Tile struct {
	Position Position
	Piece    *Piece
}

// Board is an 8x8 grid of tiles indexed [row][col], where row = y and col = x.
// Boards are treated as immutable by convention: callers Copy before mutating.
type Board struct {
	Tiles [BoardSize][BoardSize]Tile

	// Highest piece id issued on this board. Promotion mints lastID+1.
	lastID int
}

// Placement places a piece on a test board.
type Placement struct {
	Position Position
	Piece    Piece
}

// backRankOrder is the standard piece order from x = 0 to x = 7.
var backRankOrder = [BoardSize]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// newEmptyBoard creates a board whose tiles carry their positions and no pieces.
func newEmptyBoard() *Board {
	b := &Board{}
	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			b.Tiles[y][x].Position = Position{X: x, Y: y}
		}
	}
	return b
}

// NewBoard creates a board in the standard starting position. Black occupies
// rows 0 and 1, White rows 6 and 7. Ids run 1..32 in board order.
func NewBoard() *Board {
	b := newEmptyBoard()
	id := 0
	place := func(x, y int, t PieceType, c Colour) {
		id++
		b.Tiles[y][x].Piece = &Piece{ID: id, Type: t, Colour: c, Position: Position{X: x, Y: y}}
	}

	for x := 0; x < BoardSize; x++ {
		place(x, BackRank(Black), backRankOrder[x], Black)
	}
	for x := 0; x < BoardSize; x++ {
		place(x, StartRank(Black), Pawn, Black)
	}
	for x := 0; x < BoardSize; x++ {
		place(x, StartRank(White), Pawn, White)
	}
	for x := 0; x < BoardSize; x++ {
		place(x, BackRank(White), backRankOrder[x], White)
	}
	b.lastID = id
	return b
}

// NewTestBoard creates a sparse board for arbitrary scenarios. Each piece's
// Position is overwritten with its placement. Off-board placements are an
// error; a later placement on the same square replaces an earlier one.
func NewTestBoard(placements []Placement) (*Board, error) {
	b := newEmptyBoard()
	for _, pl := range placements {
		if !pl.Position.Valid() {
			return nil, errors.Wrapf(errors.ErrOutOfRange, "placing %s at %s", pl.Piece.Type, pl.Position)
		}
		piece := pl.Piece
		piece.Position = pl.Position
		b.Tiles[pl.Position.Y][pl.Position.X].Piece = &piece
		if piece.ID > b.lastID {
			b.lastID = piece.ID
		}
	}
	return b, nil
}

// GetTile returns the tile at pos, or ErrOutOfRange when pos is off the board.
func (b *Board) GetTile(pos Position) (*Tile, error) {
	if !pos.Valid() {
		return nil, fmt.Errorf("tile %s: %w", pos, errors.ErrOutOfRange)
	}
	return &b.Tiles[pos.Y][pos.X], nil
}

// PieceAt returns the piece at pos, or nil if the square is empty or off the board.
func (b *Board) PieceAt(pos Position) *Piece {
	if !pos.Valid() {
		return nil
	}
	return b.Tiles[pos.Y][pos.X].Piece
}

// Pieces returns the pieces of the given colour in row-major board order.
func (b *Board) Pieces(colour Colour) []*Piece {
	var out []*Piece
	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			if p := b.Tiles[y][x].Piece; p != nil && p.Colour == colour {
				out = append(out, p)
			}
		}
	}
	return out
}

// FindKing returns the king of the given colour, or nil if there is none.
func (b *Board) FindKing(colour Colour) *Piece {
	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			if p := b.Tiles[y][x].Piece; IsKing(p) && p.Colour == colour {
				return p
			}
		}
	}
	return nil
}

// NextID reserves and returns a fresh piece id.
func (b *Board) NextID() int {
	b.lastID++
	return b.lastID
}

// Copy creates a deep copy of the board. Pieces in the copy are equal in
// value to the originals but never shared with them.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			if p := b.Tiles[y][x].Piece; p != nil {
				piece := *p
				newBoard.Tiles[y][x].Piece = &piece
			}
		}
	}
	return newBoard
}

// Equal reports whether two boards hold the same pieces on the same squares.
func (b *Board) Equal(other *Board) bool {
	if b == nil || other == nil {
		return b == other
	}
	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			p, q := b.Tiles[y][x].Piece, other.Tiles[y][x].Piece
			if (p == nil) != (q == nil) {
				return false
			}
			if p != nil && *p != *q {
				return false
			}
		}
	}
	return true
}

// String draws the board with White in upper case and Black in lower case,
// row 0 first.
func (b *Board) String() string {
	buf := make([]byte, 0, BoardSize*(BoardSize+1))
	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			p := b.Tiles[y][x].Piece
			switch {
			case p == nil:
				buf = append(buf, '.')
			case p.Colour == White:
				buf = append(buf, p.Type.Letter()-'a'+'A')
			default:
				buf = append(buf, p.Type.Letter())
			}
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}

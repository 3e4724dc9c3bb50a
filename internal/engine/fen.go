package engine

import (
	"strconv"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ToFEN describes the position in Forsyth-Edwards Notation for handing to
// an external engine. Castling rights are read from unmoved kings and rooks
// on their home squares. The en passant field and both clocks come from
// history, which is assumed to start from the standard initial position
// with White to move.
func ToFEN(board *chess.Board, toMove chess.Colour, history chess.History) string {
	var sb strings.Builder
	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	writeSideToMove(&sb, toMove)
	sb.WriteByte(' ')
	writeCastlingRights(&sb, board)
	sb.WriteByte(' ')
	writeEnPassant(&sb, history)
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(halfmoveClock(history)))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(len(history)/2 + 1))
	return sb.String()
}

// writePiecePositions writes the placement field, row 0 (rank 8) first.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for y := 0; y < chess.BoardSize; y++ {
		if y > 0 {
			sb.WriteByte('/')
		}
		empty := 0
		for x := 0; x < chess.BoardSize; x++ {
			p := board.Tiles[y][x].Piece
			if p == nil {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(fenLetter(p))
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
	}
}

func fenLetter(p *chess.Piece) byte {
	letter := p.Type.Letter()
	if p.Colour == chess.White {
		letter = letter - 'a' + 'A'
	}
	return letter
}

func writeSideToMove(sb *strings.Builder, toMove chess.Colour) {
	if toMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}

func writeCastlingRights(sb *strings.Builder, board *chess.Board) {
	var rights []byte
	for _, c := range []chess.Colour{chess.White, chess.Black} {
		row := chess.BackRank(c)
		king := board.PieceAt(chess.Position{X: 4, Y: row})
		if !chess.IsKing(king) || king.Colour != c || king.HasMoved {
			continue
		}
		for _, side := range []struct {
			x      int
			letter byte
		}{{chess.MaxCoord, 'k'}, {chess.MinCoord, 'q'}} {
			rook := board.PieceAt(chess.Position{X: side.x, Y: row})
			if !chess.IsRook(rook) || rook.Colour != c || rook.HasMoved {
				continue
			}
			letter := side.letter
			if c == chess.White {
				letter = letter - 'a' + 'A'
			}
			rights = append(rights, letter)
		}
	}
	if len(rights) == 0 {
		sb.WriteByte('-')
		return
	}
	sb.Write(rights)
}

// writeEnPassant writes the square passed over by a double pawn step made
// on the previous ply.
func writeEnPassant(sb *strings.Builder, history chess.History) {
	last := history.Last()
	if last == nil || !last.IsDoublePawnStep() {
		sb.WriteByte('-')
		return
	}
	passed := chess.Position{X: last.To.X, Y: (last.From.Y + last.To.Y) / 2}
	sb.WriteString(passed.Square())
}

// halfmoveClock counts plies since the last pawn move or capture.
func halfmoveClock(history chess.History) int {
	clock := 0
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Piece.Type == chess.Pawn || history[i].Capture != nil {
			break
		}
		clock++
	}
	return clock
}

package engine

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func TestApplyMove_Normal(t *testing.T) {
	board := chess.NewBoard()
	before := board.Copy()
	knight := testutil.MustPieceAt(t, board, 6, 7)

	move, ok := testutil.MoveTo(LegalMoves(knight, board, nil), 5, 5)
	if !ok {
		t.Fatal("knight g1 should reach (5,5)")
	}
	after, err := ApplyMove(board, move, nil)
	testutil.AssertNoError(t, err)

	if board.PieceAt(chess.Position{X: 6, Y: 7}) == nil {
		t.Error("input board was modified")
	}
	testutil.AssertEqual(t, board, before, "input board")

	if after.PieceAt(chess.Position{X: 6, Y: 7}) != nil {
		t.Error("origin square still occupied")
	}
	moved := after.PieceAt(chess.Position{X: 5, Y: 5})
	if moved == nil || moved.ID != knight.ID || moved.Position != (chess.Position{X: 5, Y: 5}) {
		t.Fatalf("piece on (5,5) = %v; want knight %d", moved, knight.ID)
	}
	if moved.HasMoved {
		t.Error("knight HasMoved = true; only pawns, kings and rooks are flagged")
	}
}

func TestApplyMove_HasMovedFlags(t *testing.T) {
	tests := []struct {
		name      string
		pieceType chess.PieceType
		toX, toY  int
	}{
		{"pawn", chess.Pawn, 4, 3},
		{"king", chess.King, 4, 3},
		{"rook", chess.Rook, 4, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := testutil.MustTestBoard(t, testutil.Put(chess.White, tt.pieceType, 1, 4, 4))
			piece := testutil.MustPieceAt(t, board, 4, 4)

			move, ok := testutil.MoveTo(GeometricMoves(piece, board, nil), tt.toX, tt.toY)
			if !ok {
				t.Fatalf("no move to (%d,%d)", tt.toX, tt.toY)
			}
			after, err := ApplyMove(board, move, nil)
			testutil.AssertNoError(t, err)
			if p := after.PieceAt(chess.Position{X: tt.toX, Y: tt.toY}); p == nil || !p.HasMoved {
				t.Errorf("%s HasMoved not set", tt.pieceType)
			}
		})
	}
}

func TestApplyMove_Capture(t *testing.T) {
	board := testutil.MustTestBoard(t,
		testutil.Put(chess.White, chess.Rook, 1, 4, 4),
		testutil.Put(chess.Black, chess.Knight, 1, 4, 2),
	)
	move, _ := testutil.MoveTo(GeometricMoves(testutil.MustPieceAt(t, board, 4, 4), board, nil), 4, 2)

	after, err := ApplyMove(board, move, nil)
	testutil.AssertNoError(t, err)

	if n := len(after.Pieces(chess.Black)); n != 0 {
		t.Errorf("black pieces = %d; want 0", n)
	}
	if p := after.PieceAt(chess.Position{X: 4, Y: 2}); !chess.IsRook(p) {
		t.Errorf("piece on (4,2) = %v; want rook", p)
	}
}

func TestApplyMove_Promotion(t *testing.T) {
	tests := []struct {
		name      string
		promotion chess.PieceType
		want      chess.PieceType
	}{
		{"default is queen", chess.NoPieceType, chess.Queen},
		{"explicit queen", chess.Queen, chess.Queen},
		{"under-promotion to knight", chess.Knight, chess.Knight},
		{"under-promotion to rook", chess.Rook, chess.Rook},
		{"invalid choice falls back to queen", chess.King, chess.Queen},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := testutil.MustTestBoard(t,
				testutil.Put(chess.White, chess.Pawn, 7, 6, 1),
				testutil.Put(chess.Black, chess.Rook, 12, 0, 7),
			)
			pawn := testutil.MustPieceAt(t, board, 6, 1)
			move, ok := testutil.MoveTo(GeometricMoves(pawn, board, nil), 6, 0)
			if !ok {
				t.Fatal("pawn should advance to (6,0)")
			}
			if !move.IsPromotion() {
				t.Fatal("move to the last rank should be a promotion")
			}
			move.Promotion = tt.promotion

			after, err := ApplyMove(board, move, nil)
			testutil.AssertNoError(t, err)

			promoted := after.PieceAt(chess.Position{X: 6, Y: 0})
			if promoted == nil || promoted.Type != tt.want || promoted.Colour != chess.White {
				t.Fatalf("piece on (6,0) = %v; want white %s", promoted, tt.want)
			}
			if promoted.ID == pawn.ID {
				t.Errorf("promoted piece kept id %d; want a fresh id", pawn.ID)
			}
			if promoted.ID <= 12 {
				t.Errorf("promoted id = %d; want above every id on the board", promoted.ID)
			}
			if after.PieceAt(chess.Position{X: 6, Y: 1}) != nil {
				t.Error("pawn left behind on its origin")
			}
		})
	}
}

func TestApplyMove_PromotionBlack(t *testing.T) {
	board := testutil.MustTestBoard(t,
		testutil.Put(chess.Black, chess.Pawn, 3, 2, 6),
		testutil.Put(chess.White, chess.Knight, 4, 1, 7),
	)
	move, ok := testutil.MoveTo(GeometricMoves(testutil.MustPieceAt(t, board, 2, 6), board, nil), 1, 7)
	if !ok || move.Type != chess.Capture {
		t.Fatalf("capture-promotion to (1,7) = %+v, %v", move, ok)
	}

	after, err := ApplyMove(board, move, nil)
	testutil.AssertNoError(t, err)
	if p := after.PieceAt(chess.Position{X: 1, Y: 7}); p == nil || p.Type != chess.Queen || p.Colour != chess.Black || p.ID != 5 {
		t.Errorf("piece on (1,7) = %+v; want black queen with id 5", p)
	}
}

func TestApplyMove_EnPassant(t *testing.T) {
	board := testutil.MustTestBoard(t,
		testutil.Put(chess.White, chess.Pawn, 1, 4, 3),
		testutil.Put(chess.Black, chess.Pawn, 2, 3, 3),
	)
	history := chess.History{doubleStep(t, board, 3, 1, 3, 3)}
	move, ok := testutil.MoveTo(GeometricMoves(testutil.MustPieceAt(t, board, 4, 3), board, history), 3, 2)
	if !ok {
		t.Fatal("missing en passant move")
	}

	after, err := ApplyMove(board, move, history)
	testutil.AssertNoError(t, err)

	if p := after.PieceAt(chess.Position{X: 3, Y: 3}); p != nil {
		t.Errorf("passed pawn still on (3,3): %v", p)
	}
	if p := after.PieceAt(chess.Position{X: 3, Y: 2}); !chess.IsPawn(p) || p.Colour != chess.White {
		t.Errorf("piece on (3,2) = %v; want white pawn", p)
	}

	t.Run("stale without history", func(t *testing.T) {
		got, err := ApplyMove(board, move, nil)
		testutil.AssertErrorIs(t, err, errors.ErrStaleReference)
		if got != board {
			t.Error("failed apply should return the input board")
		}
	})
}

func TestApplyMove_Castling(t *testing.T) {
	tests := []struct {
		name           string
		rookX          int
		kingTo, rookTo int
	}{
		{"kingside", 7, 6, 5},
		{"queenside", 0, 2, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := testutil.MustTestBoard(t,
				testutil.Put(chess.White, chess.King, 1, 4, 7),
				testutil.Put(chess.White, chess.Rook, 2, tt.rookX, 7),
			)
			king := testutil.MustPieceAt(t, board, 4, 7)
			move, ok := testutil.MoveTo(LegalMoves(king, board, nil), tt.kingTo, 7)
			if !ok || move.Type != chess.Castling {
				t.Fatalf("castling to (%d,7) = %+v, %v", tt.kingTo, move, ok)
			}

			after, err := ApplyMove(board, move, nil)
			testutil.AssertNoError(t, err)

			if k := after.PieceAt(chess.Position{X: tt.kingTo, Y: 7}); !chess.IsKing(k) || !k.HasMoved {
				t.Errorf("piece on king destination = %+v; want moved king", k)
			}
			if r := after.PieceAt(chess.Position{X: tt.rookTo, Y: 7}); !chess.IsRook(r) || !r.HasMoved {
				t.Errorf("piece on rook destination = %+v; want moved rook", r)
			}
			if after.PieceAt(chess.Position{X: tt.rookX, Y: 7}) != nil {
				t.Error("rook still in its corner")
			}
			if after.PieceAt(chess.Position{X: 4, Y: 7}) != nil {
				t.Error("king still on its origin")
			}

			// Castling is withdrawn once the pieces have moved.
			moved := testutil.MustPieceAt(t, after, tt.kingTo, 7)
			if got := testutil.CountType(GeometricMoves(moved, after, nil), chess.Castling); got != 0 {
				t.Errorf("castling offered again after castling: %d moves", got)
			}
		})
	}
}

func TestApplyMove_StaleReference(t *testing.T) {
	board := testutil.MustTestBoard(t,
		testutil.Put(chess.White, chess.King, 1, 4, 7),
		testutil.Put(chess.White, chess.Rook, 2, 7, 7),
		testutil.Put(chess.White, chess.Knight, 3, 1, 7),
		testutil.Put(chess.Black, chess.Pawn, 1, 2, 5),
	)

	knight := testutil.MustPieceAt(t, board, 1, 7)
	knightMove, _ := testutil.MoveTo(GeometricMoves(knight, board, nil), 2, 5)
	castle, _ := testutil.MoveTo(GeometricMoves(testutil.MustPieceAt(t, board, 4, 7), board, nil), 6, 7)

	tests := []struct {
		name   string
		mutate func(b *chess.Board)
		move   chess.Move
	}{
		{
			name:   "mover gone",
			mutate: func(b *chess.Board) { b.Tiles[7][1].Piece = nil },
			move:   knightMove,
		},
		{
			name: "different piece on origin",
			mutate: func(b *chess.Board) {
				b.Tiles[7][1].Piece = &chess.Piece{ID: 99, Type: chess.Knight, Colour: chess.White, Position: chess.Position{X: 1, Y: 7}}
			},
			move: knightMove,
		},
		{
			name:   "captured piece gone",
			mutate: func(b *chess.Board) { b.Tiles[5][2].Piece = nil },
			move:   knightMove,
		},
		{
			name:   "castling rook gone",
			mutate: func(b *chess.Board) { b.Tiles[7][7].Piece = nil },
			move:   castle,
		},
		{
			name: "castling rook destination filled",
			mutate: func(b *chess.Board) {
				b.Tiles[7][5].Piece = &chess.Piece{ID: 50, Type: chess.Bishop, Colour: chess.White, Position: chess.Position{X: 5, Y: 7}}
			},
			move: castle,
		},
		{
			name:   "king has moved since",
			mutate: func(b *chess.Board) { b.Tiles[7][4].Piece.HasMoved = true },
			move:   castle,
		},
		{
			name:   "castling rook has moved since",
			mutate: func(b *chess.Board) { b.Tiles[7][7].Piece.HasMoved = true },
			move:   castle,
		},
		{
			name:   "forged castling rook destination",
			mutate: func(b *chess.Board) {},
			move: func() chess.Move {
				m := castle
				rook := *m.Castling
				rook.RookNewPosition = chess.Position{X: 0, Y: 4}
				m.Castling = &rook
				return m
			}(),
		},
		{
			name:   "off-board destination",
			mutate: func(b *chess.Board) {},
			move: func() chess.Move {
				m := knightMove
				m.NewPosition = chess.Position{X: 9, Y: 9}
				return m
			}(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snapshot := board.Copy()
			tt.mutate(snapshot)
			before := snapshot.Copy()

			got, err := ApplyMove(snapshot, tt.move, nil)
			testutil.AssertErrorIs(t, err, errors.ErrStaleReference)
			if got != snapshot {
				t.Error("ApplyMove should return the input board on failure")
			}
			if !snapshot.Equal(before) {
				t.Error("input board was partially modified")
			}
		})
	}
}

func TestNewHistoryItem(t *testing.T) {
	board := testutil.MustTestBoard(t,
		testutil.Put(chess.White, chess.Pawn, 1, 0, 1),
		testutil.Put(chess.Black, chess.Rook, 1, 1, 0),
	)
	pawn := testutil.MustPieceAt(t, board, 0, 1)
	move, _ := testutil.MoveTo(GeometricMoves(pawn, board, nil), 1, 0)
	move.Promotion = chess.Knight

	after, err := ApplyMove(board, move, nil)
	testutil.AssertNoError(t, err)
	item := NewHistoryItem(after, move)

	testutil.AssertEqual(t, item.From, chess.Position{X: 0, Y: 1})
	testutil.AssertEqual(t, item.To, chess.Position{X: 1, Y: 0})
	testutil.AssertEqual(t, item.Steps, chess.Position{X: 1, Y: -1})
	testutil.AssertEqual(t, item.Type, chess.Capture)
	testutil.AssertEqual(t, item.Promotion, chess.Knight)
	testutil.AssertEqual(t, item.Piece, pawn)
	if item.Capture == nil || item.Capture.Type != chess.Rook {
		t.Errorf("Capture = %v; want rook", item.Capture)
	}
	if item.Board != after {
		t.Error("Board should be the board after the move")
	}
	if item.IsDoublePawnStep() {
		t.Error("capture recorded as double step")
	}
}

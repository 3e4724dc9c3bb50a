package engine

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

func BenchmarkAllLegalMoves(b *testing.B) {
	board := chess.NewBoard()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		AllLegalMoves(board, chess.White, nil)
	}
}

func BenchmarkAttackedSquares(b *testing.B) {
	board := chess.NewBoard()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		AttackedSquares(board, chess.Black)
	}
}

func BenchmarkPerft(b *testing.B) {
	for _, depth := range []int{1, 2, 3} {
		b.Run(string(rune('0'+depth)), func(b *testing.B) {
			board := chess.NewBoard()
			for i := 0; i < b.N; i++ {
				if _, err := Perft(board, chess.White, nil, depth); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkParallelPerft(b *testing.B) {
	board := chess.NewBoard()
	for i := 0; i < b.N; i++ {
		if _, _, err := ParallelPerft(board, chess.White, nil, 3, 4); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkToFEN(b *testing.B) {
	board := chess.NewBoard()
	for i := 0; i < b.N; i++ {
		ToFEN(board, chess.White, nil)
	}
}

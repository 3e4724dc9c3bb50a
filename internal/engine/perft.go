package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/worker"
)

// Perft counts the leaf nodes of the legal move tree depth plies deep,
// with colour to move. Depth 0 counts the position itself.
func Perft(board *chess.Board, colour chess.Colour, history chess.History, depth int) (uint64, error) {
	if depth <= 0 {
		return 1, nil
	}

	moves := AllLegalMoves(board, colour, history)
	if depth == 1 {
		return uint64(len(moves)), nil
	}

	var nodes uint64
	for _, move := range moves {
		next, hist, err := play(board, move, history)
		if err != nil {
			return 0, err
		}
		n, err := Perft(next, colour.Opposite(), hist, depth-1)
		if err != nil {
			return 0, err
		}
		nodes += n
	}
	return nodes, nil
}

// PerftDivide holds the subtree count below one root move.
type PerftDivide struct {
	Move  chess.Move
	Nodes uint64
}

// ParallelPerft runs Perft with each root move's subtree searched on a
// worker pool. The per-move counts are returned in root move order.
func ParallelPerft(board *chess.Board, colour chess.Colour, history chess.History, depth, workers int) (uint64, []PerftDivide, error) {
	if depth <= 0 {
		return 1, nil, nil
	}

	moves := AllLegalMoves(board, colour, history)
	divide := make([]PerftDivide, len(moves))
	if len(moves) == 0 {
		return 0, divide, nil
	}

	pool := worker.NewPool(func(item worker.WorkItem) worker.ProcessResult {
		n, err := Perft(item.Board, item.Move.Piece.Colour.Opposite(), item.History, item.Depth)
		return worker.ProcessResult{Move: item.Move, Index: item.Index, Nodes: n, Error: err}
	}, worker.WithWorkers(workers), worker.WithBufferSize(len(moves)))
	pool.Start()

	var firstErr error
	for i, move := range moves {
		next, hist, err := play(board, move, history)
		if err != nil {
			firstErr = err
			pool.Stop()
			break
		}
		pool.Submit(worker.WorkItem{Board: next, History: hist, Move: move, Depth: depth - 1, Index: i})
	}
	go pool.Close()

	var total uint64
	for result := range pool.Results() {
		if result.Error != nil {
			if firstErr == nil {
				firstErr = result.Error
			}
			pool.Stop()
			continue
		}
		divide[result.Index] = PerftDivide{Move: result.Move, Nodes: result.Nodes}
		total += result.Nodes
	}
	if firstErr != nil {
		return 0, nil, firstErr
	}
	return total, divide, nil
}

// play applies move and returns the new board with the extended history.
// The returned history never shares a backing array with the input.
func play(board *chess.Board, move chess.Move, history chess.History) (*chess.Board, chess.History, error) {
	next, err := ApplyMove(board, move, history)
	if err != nil {
		return nil, nil, err
	}
	hist := make(chess.History, len(history), len(history)+1)
	copy(hist, history)
	return next, append(hist, NewHistoryItem(next, move)), nil
}

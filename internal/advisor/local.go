package advisor

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/dylhunn/dragontoothmg"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// LocalSource names suggestions produced by Local.
const LocalSource = "local"

// Local suggests moves without a service: a mate in one if there is one,
// otherwise a capture, otherwise the first legal move. It plays well
// enough to keep a game moving when the remote engine is down.
type Local struct {
	Logger *log.Logger
}

// Suggest implements Suggester.
func (l *Local) Suggest(ctx context.Context, req Request) (Suggestion, error) {
	if err := ctx.Err(); err != nil {
		return Suggestion{}, &errors.AdvisorError{Err: err, Endpoint: LocalSource}
	}

	board, err := localBoard(req)
	if err != nil {
		return Suggestion{}, &errors.AdvisorError{Err: err, Endpoint: LocalSource}
	}

	moves := board.GenerateLegalMoves()
	if len(moves) == 0 {
		return Suggestion{}, &errors.AdvisorError{Err: fmt.Errorf("no legal moves"), Endpoint: LocalSource}
	}

	best := pickMove(&board, moves)
	logger(l.Logger).Debug("local suggestion", "bestmove", best, "candidates", len(moves))
	return Suggestion{BestMove: best, Source: LocalSource}, nil
}

// localBoard sets up the request position, replaying Moves from the
// initial position when no FEN is given.
func localBoard(req Request) (dragontoothmg.Board, error) {
	if req.FEN != "" {
		return dragontoothmg.ParseFen(req.FEN), nil
	}
	board := dragontoothmg.ParseFen(dragontoothmg.Startpos)
	for _, text := range req.Moves {
		move, ok := findMove(board.GenerateLegalMoves(), text)
		if !ok {
			return board, fmt.Errorf("move %q is not legal in the replayed position", text)
		}
		board.Apply(move)
	}
	return board, nil
}

func findMove(moves []dragontoothmg.Move, text string) (dragontoothmg.Move, bool) {
	for i := range moves {
		if moves[i].String() == text {
			return moves[i], true
		}
	}
	return 0, false
}

// pickMove prefers checkmate, then a capture, then the first move.
func pickMove(board *dragontoothmg.Board, moves []dragontoothmg.Move) string {
	opponent := board.Black.All
	if !board.Wtomove {
		opponent = board.White.All
	}

	capture := -1
	for i := range moves {
		undo := board.Apply(moves[i])
		mate := board.OurKingInCheck() && len(board.GenerateLegalMoves()) == 0
		undo()
		if mate {
			return moves[i].String()
		}
		if capture < 0 && opponent&(uint64(1)<<moves[i].To()) != 0 {
			capture = i
		}
	}
	if capture >= 0 {
		return moves[capture].String()
	}
	return moves[0].String()
}

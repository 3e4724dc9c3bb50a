// Package advisor asks move-suggestion collaborators for a move. The
// suggestions are advisory: callers must still check them against the
// legal move list before touching the board.
package advisor

import (
	"context"
	"io"

	"github.com/charmbracelet/log"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// EngineOptions tunes the strength of a suggestion engine.
type EngineOptions struct {
	SkillLevel int  `json:"skillLevel"`
	Depth      int  `json:"depth"`
	MoveTime   int  `json:"movetime"` // milliseconds
	UseElo     bool `json:"useElo"`
	EloRating  int  `json:"eloRating,omitempty"`
	Threads    int  `json:"threads"`
	Hash       int  `json:"hash"` // megabytes
}

// Elo returns the rating to send, or 0 when rating limits are off.
func (o EngineOptions) Elo() int {
	if !o.UseElo {
		return 0
	}
	return o.EloRating
}

// Request describes the position to suggest a move for. Either FEN or the
// move list from the initial position identifies it; engines that accept
// both prefer FEN.
type Request struct {
	FEN     string
	Moves   []string
	Options EngineOptions
}

// Evaluation is the engine's score for its best line.
type Evaluation struct {
	Type  string   `json:"type"` // "cp" or "mate"
	Value int      `json:"value"`
	Depth int      `json:"depth"`
	Nodes int64    `json:"nodes"`
	Time  int      `json:"time"`
	PV    []string `json:"pv"`
}

// Suggestion is a suggested move in coordinate notation.
type Suggestion struct {
	BestMove   string      `json:"bestmove"`
	Ponder     string      `json:"ponder,omitempty"`
	Evaluation *Evaluation `json:"evaluation,omitempty"`
	Source     string      `json:"-"`
}

// Suggester produces a move suggestion for a position.
type Suggester interface {
	Suggest(ctx context.Context, req Request) (Suggestion, error)
}

// Fallback asks Primary first and Secondary when Primary is unavailable.
type Fallback struct {
	Primary   Suggester
	Secondary Suggester
	Logger    *log.Logger
}

// Suggest implements Suggester.
func (f *Fallback) Suggest(ctx context.Context, req Request) (Suggestion, error) {
	s, err := f.Primary.Suggest(ctx, req)
	if err == nil {
		return s, nil
	}
	if !errors.Is(err, errors.ErrAdvisorUnavailable) || ctx.Err() != nil {
		return Suggestion{}, err
	}
	logger(f.Logger).Warn("primary advisor failed, using fallback", "err", err)
	return f.Secondary.Suggest(ctx, req)
}

func logger(l *log.Logger) *log.Logger {
	if l == nil {
		return log.New(io.Discard)
	}
	return l
}

// Package session keeps the board of record for one game. It threads the
// board, history and side to move through the rules engine, so callers
// never hold shared mutable game state of their own.
package session

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/lgbarn/chessrules-go/internal/advisor"
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/notation"
)

// Game is a game in progress. It is safe for concurrent use.
type Game struct {
	mu      sync.RWMutex
	board   *chess.Board
	history chess.History
	turn    chess.Colour
	verdict engine.Verdict
	options advisor.EngineOptions
	logger  *log.Logger
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the game's logger.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		g.logger = l
	}
}

// WithEngineOptions sets the options sent with suggestion requests.
func WithEngineOptions(o advisor.EngineOptions) Option {
	return func(g *Game) {
		g.options = o
	}
}

// WithBoard starts the game from the given position instead of the
// standard layout. The position is copied.
func WithBoard(board *chess.Board, toMove chess.Colour) Option {
	return func(g *Game) {
		g.board = board.Copy()
		g.turn = toMove
	}
}

// New creates a game at the standard starting position with White to move.
func New(opts ...Option) *Game {
	g := &Game{
		board: chess.NewBoard(),
		turn:  chess.White,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}
	g.verdict = engine.DetectGameOver(g.board, g.turn, nil)
	return g
}

// Board returns a copy of the current board.
func (g *Game) Board() *chess.Board {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.board.Copy()
}

// History returns a copy of the committed moves.
func (g *Game) History() chess.History {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return append(chess.History(nil), g.history...)
}

// Turn returns the side to move.
func (g *Game) Turn() chess.Colour {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.turn
}

// Verdict returns the game state after the last committed move.
func (g *Game) Verdict() engine.Verdict {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.verdict
}

// FEN returns the current position in Forsyth-Edwards Notation.
func (g *Game) FEN() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return engine.ToFEN(g.board, g.turn, g.history)
}

// LegalMoves returns the legal moves of the piece on pos. An empty square
// or a piece of the side not to move has none.
func (g *Game) LegalMoves(pos chess.Position) ([]chess.Move, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	tile, err := g.board.GetTile(pos)
	if err != nil {
		return nil, err
	}
	if tile.Piece == nil || tile.Piece.Colour != g.turn || g.verdict.IsOver() {
		return nil, nil
	}
	return engine.LegalMoves(*tile.Piece, g.board, g.history), nil
}

// Play commits a move. The move must be one of the current legal moves;
// its Promotion field may be changed to pick the promotion piece.
func (g *Game) Play(move chess.Move) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.play(move)
}

// PlayCoordinate decodes and commits a coordinate move such as "e2e4".
func (g *Game) PlayCoordinate(s string) (chess.Move, error) {
	c, err := notation.Decode(s)
	if err != nil {
		return chess.Move{}, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	move, err := g.resolve(c, errors.ErrIllegalMove)
	if err != nil {
		return chess.Move{}, err
	}
	return move, g.play(move)
}

// RequestSuggestion asks s for a move and, if it is legal, plays it. A
// failed request or an illegal suggestion leaves the game untouched.
func (g *Game) RequestSuggestion(ctx context.Context, s advisor.Suggester) (chess.Move, error) {
	g.mu.RLock()
	if g.verdict.IsOver() {
		g.mu.RUnlock()
		return chess.Move{}, errors.ErrGameOver
	}
	req := advisor.Request{
		FEN:     engine.ToFEN(g.board, g.turn, g.history),
		Moves:   notation.FromHistory(g.history),
		Options: g.options,
	}
	ply := len(g.history)
	g.mu.RUnlock()

	suggestion, err := s.Suggest(ctx, req)
	if err != nil {
		g.logger.Warn("suggestion failed", "ply", ply+1, "err", err)
		return chess.Move{}, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if len(g.history) != ply {
		return chess.Move{}, errors.Wrapf(errors.ErrIllegalSuggestion, "%s: position changed while waiting", suggestion.BestMove)
	}

	c, err := notation.Decode(suggestion.BestMove)
	if err != nil {
		g.logger.Warn("unreadable suggestion", "move", suggestion.BestMove, "source", suggestion.Source)
		return chess.Move{}, errors.Wrapf(errors.ErrIllegalSuggestion, "%v", err)
	}
	move, err := g.resolve(c, errors.ErrIllegalSuggestion)
	if err != nil {
		g.logger.Warn("illegal suggestion", "move", suggestion.BestMove, "source", suggestion.Source)
		return chess.Move{}, err
	}
	g.logger.Info("playing suggestion", "move", suggestion.BestMove, "source", suggestion.Source)
	return move, g.play(move)
}

// resolve finds the legal move a coordinate names for the side to move.
// Failures wrap sentinel.
func (g *Game) resolve(c notation.Coordinate, sentinel error) (chess.Move, error) {
	if g.verdict.IsOver() {
		return chess.Move{}, errors.ErrGameOver
	}
	if p := g.board.PieceAt(c.From); p != nil && p.Colour != g.turn {
		return chess.Move{}, fmt.Errorf("%s: %w: %w", c, sentinel, errors.ErrWrongTurn)
	}
	move, err := notation.Match(c, g.board, g.history)
	if err != nil {
		return chess.Move{}, errors.Wrapf(sentinel, "%s", c)
	}
	return move, nil
}

// play commits move. g.mu must be held for writing.
func (g *Game) play(move chess.Move) error {
	if g.verdict.IsOver() {
		return errors.ErrGameOver
	}
	if move.Piece.Colour != g.turn {
		return &errors.MoveError{
			Err:   errors.ErrWrongTurn,
			Ply:   len(g.history) + 1,
			Piece: chess.CreateID(move.Piece),
		}
	}
	legal, ok := g.liveMove(move)
	if !ok {
		return &errors.MoveError{
			Err:   errors.ErrIllegalMove,
			Ply:   len(g.history) + 1,
			Piece: chess.CreateID(move.Piece),
			From:  notation.SquareName(move.From()),
			To:    notation.SquareName(move.NewPosition),
		}
	}
	move = legal

	next, err := engine.ApplyMove(g.board, move, g.history)
	if err != nil {
		return err
	}
	g.history = append(g.history, engine.NewHistoryItem(next, move))
	g.board = next
	g.turn = g.turn.Opposite()
	g.verdict = engine.DetectGameOver(g.board, g.turn, g.history)

	g.logger.Debug("move played", "ply", len(g.history), "move", notation.Encode(move), "type", move.Type)
	if g.verdict.IsOver() {
		g.logger.Info("game over", "verdict", g.verdict, "to_move", g.turn, "plies", len(g.history))
	}
	return nil
}

// liveMove finds the legal move of the piece now standing on move's origin
// that matches move's destination and type. Only the promotion choice is
// taken from move; everything else comes from the current board.
func (g *Game) liveMove(move chess.Move) (chess.Move, bool) {
	live := g.board.PieceAt(move.From())
	if live == nil || !chess.SameIdentity(live, &move.Piece) || live.HasMoved != move.Piece.HasMoved {
		return chess.Move{}, false
	}
	if move.Promotion != chess.NoPieceType && !chess.IsPromotionType(move.Promotion) {
		return chess.Move{}, false
	}
	for _, m := range engine.LegalMoves(*live, g.board, g.history) {
		if m.NewPosition != move.NewPosition || m.Type != move.Type {
			continue
		}
		if m.Castling != nil && (move.Castling == nil || *m.Castling != *move.Castling) {
			return chess.Move{}, false
		}
		if m.IsPromotion() {
			m.Promotion = move.Promotion
		}
		return m, true
	}
	return chess.Move{}, false
}

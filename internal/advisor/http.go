package advisor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Service endpoints.
const (
	healthPath = "/health"
	initPath   = "/api/engine/init"
	movePath   = "/api/engine/move"
	quitPath   = "/api/engine/quit"
)

// DefaultBaseURL is where the engine service listens unless configured.
const DefaultBaseURL = "http://localhost:3001"

// Defaults applied to move requests that leave the field unset.
const (
	defaultDepth    = 15
	defaultMoveTime = 2000
	defaultSkill    = 10
	defaultThreads  = 2
	defaultHash     = 128
)

// maxErrorBody bounds how much of a failed response is kept in the error.
const maxErrorBody = 512

// HTTPClient talks to a remote engine service over JSON.
type HTTPClient struct {
	baseURL string
	client  *http.Client
	logger  *log.Logger
}

// ClientOption configures an HTTPClient.
type ClientOption func(*HTTPClient)

// WithHTTPClient sets the underlying http.Client.
func WithHTTPClient(c *http.Client) ClientOption {
	return func(h *HTTPClient) {
		h.client = c
	}
}

// WithTimeout sets a per-request timeout on the default http.Client.
func WithTimeout(d time.Duration) ClientOption {
	return func(h *HTTPClient) {
		if d > 0 {
			h.client = &http.Client{Timeout: d}
		}
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(l *log.Logger) ClientOption {
	return func(h *HTTPClient) {
		h.logger = l
	}
}

// NewHTTPClient creates a client for the service at baseURL.
func NewHTTPClient(baseURL string, opts ...ClientOption) *HTTPClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	h := &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(h)
	}
	h.logger = logger(h.logger)
	return h
}

// Health returns nil if the service answers its health check.
func (h *HTTPClient) Health(ctx context.Context) error {
	return h.do(ctx, http.MethodGet, healthPath, nil, nil)
}

type initBody struct {
	SkillLevel int    `json:"skillLevel"`
	EloRating  int    `json:"eloRating,omitempty"`
	Threads    int    `json:"threads"`
	Hash       int    `json:"hash"`
	EngineType string `json:"engineType"`
}

// Init starts or reconfigures the remote engine.
func (h *HTTPClient) Init(ctx context.Context, opts EngineOptions) error {
	body := initBody{
		SkillLevel: orDefault(opts.SkillLevel, defaultSkill),
		EloRating:  opts.Elo(),
		Threads:    orDefault(opts.Threads, defaultThreads),
		Hash:       orDefault(opts.Hash, defaultHash),
		EngineType: "stockfish",
	}
	return h.do(ctx, http.MethodPost, initPath, body, nil)
}

type moveBody struct {
	Position   string   `json:"position,omitempty"`
	Moves      []string `json:"moves,omitempty"`
	Depth      int      `json:"depth"`
	MoveTime   int      `json:"movetime"`
	SkillLevel int      `json:"skillLevel"`
	EloRating  int      `json:"eloRating,omitempty"`
}

// Suggest implements Suggester by posting the position to the service.
func (h *HTTPClient) Suggest(ctx context.Context, req Request) (Suggestion, error) {
	body := moveBody{
		Position:   req.FEN,
		Moves:      req.Moves,
		Depth:      orDefault(req.Options.Depth, defaultDepth),
		MoveTime:   orDefault(req.Options.MoveTime, defaultMoveTime),
		SkillLevel: req.Options.SkillLevel,
		EloRating:  req.Options.Elo(),
	}

	var s Suggestion
	if err := h.do(ctx, http.MethodPost, movePath, body, &s); err != nil {
		return Suggestion{}, err
	}
	if s.BestMove == "" || s.BestMove == "(none)" {
		return Suggestion{}, &errors.AdvisorError{
			Err:      fmt.Errorf("no move in response %q", s.BestMove),
			Endpoint: movePath,
		}
	}
	s.Source = h.baseURL
	h.logger.Debug("suggestion received", "bestmove", s.BestMove, "ponder", s.Ponder)
	return s, nil
}

// Quit asks the service to stop its engine.
func (h *HTTPClient) Quit(ctx context.Context) error {
	return h.do(ctx, http.MethodDelete, quitPath, nil, nil)
}

// do sends a JSON request and decodes a JSON response into out when out
// is non-nil. Every failure is returned as an *errors.AdvisorError.
func (h *HTTPClient) do(ctx context.Context, method, path string, in, out interface{}) error {
	fail := func(status int, err error) error {
		return &errors.AdvisorError{Err: err, Endpoint: path, StatusCode: status}
	}

	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fail(0, err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, h.baseURL+path, body)
	if err != nil {
		return fail(0, err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := h.client.Do(req)
	if err != nil {
		h.logger.Debug("advisor request failed", "method", method, "path", path, "err", err)
		return fail(0, err)
	}
	defer resp.Body.Close()
	h.logger.Debug("advisor request", "method", method, "path", path, "status", resp.StatusCode, "elapsed", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		msg := strings.TrimSpace(string(snippet))
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return fail(resp.StatusCode, fmt.Errorf("%s", msg))
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fail(resp.StatusCode, fmt.Errorf("decoding response: %w", err))
	}
	return nil
}

func orDefault(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}

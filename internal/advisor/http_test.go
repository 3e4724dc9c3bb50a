package advisor

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// fakeEngine records requests and answers like the engine service.
type fakeEngine struct {
	mu       sync.Mutex
	requests map[string][]map[string]interface{}
	status   int
	reply    string
	delay    time.Duration
}

func newFakeEngine(t *testing.T) (*fakeEngine, *httptest.Server) {
	t.Helper()
	f := &fakeEngine{
		requests: make(map[string][]map[string]interface{}),
		status:   http.StatusOK,
		reply:    `{"bestmove":"e2e4","ponder":"e7e5","evaluation":{"type":"cp","value":31,"depth":12,"nodes":4096,"time":40,"pv":["e2e4","e7e5"]}}`,
	}
	mux := http.NewServeMux()
	handle := func(method, path string) {
		mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
			if r.Method != method {
				http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
				return
			}
			body := map[string]interface{}{}
			if r.Body != nil {
				_ = json.NewDecoder(r.Body).Decode(&body)
			}
			f.mu.Lock()
			f.requests[path] = append(f.requests[path], body)
			status, reply, delay := f.status, f.reply, f.delay
			f.mu.Unlock()

			if delay > 0 {
				select {
				case <-time.After(delay):
				case <-r.Context().Done():
					return
				}
			}
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(status)
			if path == movePath {
				_, _ = w.Write([]byte(reply))
				return
			}
			_, _ = w.Write([]byte(`{"ok":true}`))
		})
	}
	handle(http.MethodGet, healthPath)
	handle(http.MethodPost, initPath)
	handle(http.MethodPost, movePath)
	handle(http.MethodDelete, quitPath)

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return f, srv
}

func (f *fakeEngine) last(path string) map[string]interface{} {
	f.mu.Lock()
	defer f.mu.Unlock()
	reqs := f.requests[path]
	if len(reqs) == 0 {
		return nil
	}
	return reqs[len(reqs)-1]
}

func TestHTTPClient_Suggest(t *testing.T) {
	f, srv := newFakeEngine(t)
	c := NewHTTPClient(srv.URL + "/")

	s, err := c.Suggest(context.Background(), Request{
		Moves:   []string{"d2d4", "d7d5"},
		Options: EngineOptions{SkillLevel: 5, Depth: 8, UseElo: true, EloRating: 1500},
	})
	require.NoError(t, err)
	assert.Equal(t, "e2e4", s.BestMove)
	assert.Equal(t, "e7e5", s.Ponder)
	require.NotNil(t, s.Evaluation)
	assert.Equal(t, "cp", s.Evaluation.Type)
	assert.Equal(t, []string{"e2e4", "e7e5"}, s.Evaluation.PV)
	assert.Equal(t, srv.URL, s.Source)

	body := f.last(movePath)
	require.NotNil(t, body)
	assert.Equal(t, []interface{}{"d2d4", "d7d5"}, body["moves"])
	assert.EqualValues(t, 8, body["depth"])
	assert.EqualValues(t, defaultMoveTime, body["movetime"])
	assert.EqualValues(t, 5, body["skillLevel"])
	assert.EqualValues(t, 1500, body["eloRating"])
	assert.NotContains(t, body, "position")
}

func TestHTTPClient_SuggestSendsFEN(t *testing.T) {
	f, srv := newFakeEngine(t)
	c := NewHTTPClient(srv.URL)

	fen := "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1"
	_, err := c.Suggest(context.Background(), Request{FEN: fen, Options: EngineOptions{EloRating: 2000}})
	require.NoError(t, err)

	body := f.last(movePath)
	assert.Equal(t, fen, body["position"])
	assert.EqualValues(t, defaultDepth, body["depth"])
	assert.NotContains(t, body, "eloRating", "rating is only sent when UseElo is set")
}

func TestHTTPClient_Errors(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		reply      string
		wantStatus int
	}{
		{"server error", http.StatusInternalServerError, `engine crashed`, http.StatusInternalServerError},
		{"bad gateway", http.StatusBadGateway, ``, http.StatusBadGateway},
		{"malformed body", http.StatusOK, `{"bestmove":`, http.StatusOK},
		{"no move", http.StatusOK, `{"bestmove":"(none)"}`, 0},
		{"empty move", http.StatusOK, `{}`, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, srv := newFakeEngine(t)
			f.status, f.reply = tt.status, tt.reply

			_, err := NewHTTPClient(srv.URL).Suggest(context.Background(), Request{})
			require.Error(t, err)
			assert.ErrorIs(t, err, errors.ErrAdvisorUnavailable)

			var advisorErr *errors.AdvisorError
			require.ErrorAs(t, err, &advisorErr)
			assert.Equal(t, movePath, advisorErr.Endpoint)
			assert.Equal(t, tt.wantStatus, advisorErr.StatusCode)
		})
	}
}

func TestHTTPClient_Timeout(t *testing.T) {
	f, srv := newFakeEngine(t)
	f.delay = time.Second

	c := NewHTTPClient(srv.URL, WithTimeout(50*time.Millisecond))
	_, err := c.Suggest(context.Background(), Request{})
	assert.ErrorIs(t, err, errors.ErrAdvisorUnavailable)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err = NewHTTPClient(srv.URL).Suggest(ctx, Request{})
	assert.ErrorIs(t, err, errors.ErrAdvisorUnavailable)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestHTTPClient_Lifecycle(t *testing.T) {
	f, srv := newFakeEngine(t)
	c := NewHTTPClient(srv.URL, WithHTTPClient(srv.Client()))
	ctx := context.Background()

	require.NoError(t, c.Health(ctx))
	require.NoError(t, c.Init(ctx, EngineOptions{SkillLevel: 20, Threads: 4, Hash: 512}))
	require.NoError(t, c.Quit(ctx))

	got := f.last(initPath)
	assert.EqualValues(t, 20, got["skillLevel"])
	assert.EqualValues(t, 4, got["threads"])
	assert.EqualValues(t, 512, got["hash"])
	assert.Equal(t, "stockfish", got["engineType"])
	assert.NotNil(t, f.last(quitPath))

	require.NoError(t, c.Init(ctx, EngineOptions{}))
	got = f.last(initPath)
	assert.EqualValues(t, defaultSkill, got["skillLevel"])
	assert.EqualValues(t, defaultThreads, got["threads"])
	assert.EqualValues(t, defaultHash, got["hash"])
}

func TestHTTPClient_HealthDown(t *testing.T) {
	_, srv := newFakeEngine(t)
	url := srv.URL
	srv.Close()

	err := NewHTTPClient(url).Health(context.Background())
	assert.ErrorIs(t, err, errors.ErrAdvisorUnavailable)
}

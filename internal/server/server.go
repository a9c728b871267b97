package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/haider92/ChessAI/pkg/agent"
)

const maxStateBytes = 1 << 10

type MindFactory func() (agent.Mind, error)

// Server exposes one Mind to a remote game host over HTTP and gives every websocket connection its own Mind.
type Server struct {
	mind       agent.Mind
	newSession MindFactory
	logger     zerolog.Logger
	mu         sync.Mutex
	inRun      bool
}

func New(mind agent.Mind, newSession MindFactory, logger zerolog.Logger) *Server {
	return &Server{
		mind:       mind,
		newSession: newSession,
		logger:     logger,
	}
}

type actionRequest struct {
	Fen string `json:"fen"`
}

type actionResponse struct {
	Action string `json:"action"`
	From   int    `json:"from"`
	To     int    `json:"to"`
}

func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.logger))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = io.WriteString(w, "ok")
	})
	r.Post("/newrun", s.handleNewRun)
	r.Post("/endrun", s.handleEndRun)
	r.Post("/action", s.handleAction)
	r.Get("/ws", s.serveWS)
	return r
}

func (s *Server) handleNewRun(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.mind.NewRun(); err != nil {
		s.logger.Error().Err(err).Msg("new run")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.inRun = true
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleEndRun(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.mind.EndRun(); err != nil {
		s.logger.Error().Err(err).Msg("end run")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.inRun = false
	w.WriteHeader(http.StatusNoContent)
}

// handleAction reads a FEN, as plain text or as {"fen": ...}, and answers with the mind's action.
// A bad position is still answered with 200 and the forfeit action.
func (s *Server) handleAction(w http.ResponseWriter, r *http.Request) {
	var body, err = io.ReadAll(io.LimitReader(r.Body, maxStateBytes))
	if err != nil {
		http.Error(w, errors.Wrap(err, "read body").Error(), http.StatusBadRequest)
		return
	}
	var isJSON = strings.HasPrefix(r.Header.Get("Content-Type"), "application/json")
	var state = string(body)
	if isJSON {
		var req actionRequest
		if err := json.Unmarshal(body, &req); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
			return
		}
		state = req.Fen
	}

	s.mu.Lock()
	var action = s.mind.GetAction(strings.TrimSpace(state))
	s.mu.Unlock()

	if isJSON {
		writeJSON(w, http.StatusOK, actionResponse{Action: action.String(), From: action.From, To: action.To})
		return
	}
	w.Header().Set("Content-Type", "text/plain")
	_, _ = io.WriteString(w, action.String())
}

// ListenAndServe runs until ctx is done, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	var server = &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	var serverErrCh = make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrCh <- err
		}
		close(serverErrCh)
	}()
	s.logger.Info().Str("addr", addr).Msg("listening")

	var runErr error
	select {
	case <-ctx.Done():
		s.logger.Info().Err(ctx.Err()).Msg("shutdown signal received")
	case err, ok := <-serverErrCh:
		if ok {
			runErr = err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		s.logger.Error().Err(err).Msg("graceful shutdown failed")
		_ = server.Close()
	}

	s.mu.Lock()
	if s.inRun {
		_ = s.mind.EndRun()
		s.inRun = false
	}
	s.mu.Unlock()
	return runErr
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func requestLogger(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var ww = middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			var start = time.Now()
			defer func() {
				logger.Debug().
					Str("request_id", middleware.GetReqID(r.Context())).
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Int("status", ww.Status()).
					Int("bytes", ww.BytesWritten()).
					Dur("elapsed", time.Since(start)).
					Msg("request")
			}()
			next.ServeHTTP(ww, r)
		})
	}
}

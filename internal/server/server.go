package server

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// historyEntry records one exchange kept in server-side conversation state.
type historyEntry struct {
	Message  string    `json:"message"`
	Response string    `json:"response"`
	At       time.Time `json:"at"`
}

// Server exposes the BizChat Assistant HTTP surface backed by a Chatbot.
// Conversation state is in-memory, keyed by the session_id query parameter.
type Server struct {
	bot *Chatbot

	mu        sync.Mutex
	histories map[string][]historyEntry
}

// New creates a server answering with the given chatbot.
func New(bot *Chatbot) *Server {
	return &Server{
		bot:       bot,
		histories: make(map[string][]historyEntry),
	}
}

// Handler returns the HTTP router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleRoot)
	r.Get("/intents", s.handleIntents)
	r.Post("/chat", s.handleChat)
	r.Post("/clear-history", s.handleClearHistory)

	return r
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"message": "¡BizChat Assistant API está en línea!",
	})
}

func (s *Server) handleIntents(w http.ResponseWriter, r *http.Request) {
	type tagOnly struct {
		Tag string `json:"tag"`
	}
	tags := make([]tagOnly, 0, len(s.bot.Intents()))
	for _, intent := range s.bot.Intents() {
		tags = append(tags, tagOnly{Tag: intent.Tag})
	}
	respondJSON(w, http.StatusOK, map[string]any{"intents": tags})
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if payload.Message == "" {
		respondError(w, http.StatusBadRequest, "message is required")
		return
	}

	response := s.bot.Respond(payload.Message)

	if sessionID := r.URL.Query().Get("session_id"); sessionID != "" {
		s.mu.Lock()
		s.histories[sessionID] = append(s.histories[sessionID], historyEntry{
			Message:  payload.Message,
			Response: response,
			At:       time.Now(),
		})
		s.mu.Unlock()
	}

	respondJSON(w, http.StatusOK, map[string]string{"response": response})
}

func (s *Server) handleClearHistory(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("session_id")

	s.mu.Lock()
	delete(s.histories, sessionID)
	s.mu.Unlock()

	respondJSON(w, http.StatusOK, map[string]string{"status": "cleared"})
}

// HistoryLen returns the number of recorded exchanges for a session.
func (s *Server) HistoryLen(sessionID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.histories[sessionID])
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("bizchat dev server listening on %s", addr)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

// maxBodyBytes limits the size of an extend request body
const maxBodyBytes = 32 << 20

// Server represents the HTTP API server
type Server struct {
	vocab  *SyncVocab
	server *http.Server
	logger zerolog.Logger
}

type lookupResponse struct {
	Word     string `json:"word"`
	Position *int   `json:"position,omitempty"`
	Error    string `json:"error,omitempty"`
}

type extendRequest struct {
	Words []string `json:"words"`
}

type extendResponse struct {
	Added int `json:"added"`
	Size  int `json:"size"`
}

type statsResponse struct {
	Size int `json:"size"`
}

// NewServer creates a new API server
func NewServer(addr string, v *SyncVocab, logger zerolog.Logger) *Server {
	s := &Server{
		vocab:  v,
		logger: logger,
	}

	// Words may contain "/", "." or "..", so match on the raw path without
	// cleaning it and unescape the word in the handler.
	r := mux.NewRouter().SkipClean(true).UseEncodedPath()
	r.Use(s.logRequests)

	r.HandleFunc("/health", s.health).Methods(http.MethodGet)
	r.HandleFunc("/stats", s.stats).Methods(http.MethodGet)
	r.HandleFunc("/lookup", s.lookupQuery).Methods(http.MethodGet)
	r.HandleFunc("/words", s.extend).Methods(http.MethodPost)
	r.HandleFunc("/words/{word:.+}", s.lookupPath).Methods(http.MethodGet)

	s.server = &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s
}

// Handler returns the HTTP handler for the server
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// Start listens on the configured address and serves until Shutdown is called
func (s *Server) Start() error {
	listener, err := net.Listen("tcp", s.server.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.server.Addr, err)
	}

	s.logger.Info().Str("addr", listener.Addr().String()).Msg("Server listening")

	if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// Shutdown gracefully stops the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) stats(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, statsResponse{Size: s.vocab.Len()})
}

func (s *Server) lookupPath(w http.ResponseWriter, r *http.Request) {
	word, err := url.PathUnescape(mux.Vars(r)["word"])
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, lookupResponse{Error: fmt.Sprintf("invalid word: %v", err)})
		return
	}
	s.lookup(w, word)
}

func (s *Server) lookupQuery(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	if !query.Has("word") {
		s.writeJSON(w, http.StatusBadRequest, lookupResponse{Error: "missing word parameter"})
		return
	}
	s.lookup(w, query.Get("word"))
}

func (s *Server) lookup(w http.ResponseWriter, word string) {
	pos, ok := s.vocab.Lookup(word)
	if !ok {
		s.writeJSON(w, http.StatusNotFound, lookupResponse{Word: word, Error: "word not found"})
		return
	}
	s.writeJSON(w, http.StatusOK, lookupResponse{Word: word, Position: &pos})
}

func (s *Server) extend(w http.ResponseWriter, r *http.Request) {
	var req extendRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&req); err != nil {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": fmt.Sprintf("invalid request body: %v", err)})
		return
	}

	size := s.vocab.Extend(req.Words)
	s.logger.Info().Int("added", len(req.Words)).Int("size", size).Msg("Vocabulary extended")
	s.writeJSON(w, http.StatusOK, extendResponse{Added: len(req.Words), Size: size})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error().Err(err).Msg("Failed to encode response")
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rec.status).
			Dur("duration", time.Since(start)).
			Msg("Handled request")
	})
}

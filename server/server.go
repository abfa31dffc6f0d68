package server

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/eyalcohen4/ag-ui-tests/logging"
	"github.com/eyalcohen4/ag-ui-tests/protocol"
	"github.com/eyalcohen4/ag-ui-tests/runner"
)

// Options holds configuration overrides passed to New().
type Options struct {
	// Logger receives request diagnostics.
	Logger logging.Logger
}

// Server wires the runner to HTTP handlers.
type Server struct {
	runner *runner.Runner
	logger logging.Logger
}

// New constructs a Server around a runner.
func New(r *runner.Runner, optFns ...func(o *Options)) *Server {
	opts := Options{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Server{runner: r, logger: opts.Logger}
}

// Handler returns the routed HTTP handler with CORS applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /{$}", s.handleChat)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /debug", s.handleDebug)
	return allowAllCORS(mux)
}

// ListenAndServe runs the HTTP server until it fails or is shut down.
func (s *Server) ListenAndServe(addr string) error {
	s.logger.Info("server.listen", "addr", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// handleChat is the streaming chat endpoint: it validates the run input,
// negotiates the event encoder from the Accept header, and streams the run's
// events, flushing after every one.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "failed to read request body", http.StatusBadRequest)
		return
	}

	input, err := protocol.ParseRunAgentInput(body)
	if err != nil {
		s.logger.Warn("request.invalid_input", "error", err)
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	encoder := protocol.NewEncoder(r.Header.Get("Accept"))

	h := w.Header()
	h.Set("Content-Type", encoder.ContentType())
	h.Set("Cache-Control", "no-cache, no-store, must-revalidate")
	h.Set("Connection", "keep-alive")
	h.Set("X-Accel-Buffering", "no") // disable proxy buffering

	flusher, _ := w.(http.Flusher)
	emit := func(ev protocol.Event) error {
		frame, err := encoder.Encode(ev)
		if err != nil {
			return err
		}
		if _, err := w.Write(frame); err != nil {
			return err
		}
		if flusher != nil {
			flusher.Flush()
		}
		return nil
	}

	s.runner.Run(r.Context(), input, emit)
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

// handleDebug echoes the parsed request body, for inspecting what a client
// actually sends.
func (s *Server) handleDebug(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "failed to read request body", http.StatusBadRequest)
		return
	}

	var parsed any
	if err := json.Unmarshal(body, &parsed); err != nil {
		parsed = string(body)
	}
	s.logger.Info("debug.request", "body", parsed)

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"received": parsed})
}

// allowAllCORS applies the permissive CORS policy the local development
// front-end expects.
func allowAllCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Methods", "*")
		h.Set("Access-Control-Allow-Headers", "*")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

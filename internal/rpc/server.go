package rpc

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"mail-settings/internal/domain"
	"mail-settings/internal/service"
)

const (
	PathSettingsGet  = "/api/settings.get"
	PathSettingsSave = "/api/settings.save"

	headerRequestID = "X-Request-ID"
)

// fetchResponse is the body of settings.get
type fetchResponse struct {
	Settings *domain.Settings `json:"settings"`
}

type saveResponse struct {
	Success bool `json:"success"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Server exposes a SettingsService over HTTP.
type Server struct {
	settings service.SettingsService
	token    string
	logger   *log.Logger
}

// NewServer builds the handler set. An empty token disables authentication.
func NewServer(settings service.SettingsService, token string, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{
		settings: settings,
		token:    token,
		logger:   logger.WithPrefix("rpc"),
	}
}

// Handler returns the routed handler wrapped in the middleware chain.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET "+PathSettingsGet, s.handleFetch)
	mux.HandleFunc("POST "+PathSettingsSave, s.handleSave)

	return chain(mux, s.requestID, s.logRequests, s.authenticate)
}

// ListenAndServe runs until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) handleFetch(w http.ResponseWriter, r *http.Request) {
	settings, err := s.settings.Fetch(r.Context())
	if err != nil {
		s.logger.Error("fetch failed", "err", err, "request_id", r.Header.Get(headerRequestID))
		jsonError(w, "failed to load settings", http.StatusInternalServerError)
		return
	}
	jsonOK(w, fetchResponse{Settings: settings})
}

func (s *Server) handleSave(w http.ResponseWriter, r *http.Request) {
	var settings domain.Settings
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20)).Decode(&settings); err != nil {
		jsonError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := settings.Validate(); err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := s.settings.Save(r.Context(), &settings); err != nil {
		s.logger.Error("save failed", "err", err, "request_id", r.Header.Get(headerRequestID))
		jsonError(w, "failed to save settings", http.StatusInternalServerError)
		return
	}

	jsonOK(w, saveResponse{Success: true})
}

type middleware func(http.Handler) http.Handler

// chain applies middlewares so the first one is outermost.
func chain(h http.Handler, mws ...middleware) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(headerRequestID)
		if id == "" {
			id = uuid.NewString()
			r.Header.Set(headerRequestID, id)
		}
		w.Header().Set(headerRequestID, id)
		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
			"request_id", r.Header.Get(headerRequestID),
		)
	})
}

func (s *Server) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.token == "" {
			next.ServeHTTP(w, r)
			return
		}

		got := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		if subtle.ConstantTimeCompare([]byte(got), []byte(s.token)) != 1 {
			jsonError(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func jsonOK(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(data)
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(errorResponse{Error: msg})
}

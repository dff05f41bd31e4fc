// Package server exposes URL risk analysis over an HTTP JSON API and
// keeps a queryable history of past reports.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ludo-technologies/phishscan/domain"
	"github.com/ludo-technologies/phishscan/internal/constants"
	"github.com/ludo-technologies/phishscan/internal/history"
	"github.com/ludo-technologies/phishscan/internal/logging"
	"github.com/ludo-technologies/phishscan/internal/version"
	"github.com/ludo-technologies/phishscan/service"
)

// Server is the HTTP API surface for phishscan.
type Server struct {
	cfg    Config
	svc    domain.RiskService
	store  *history.Store
	router chi.Router
	logger logging.Logger
}

// NewServer creates a new Server with its own risk service and report store.
func NewServer(cfg Config) (*Server, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.NewJSONLogger("server")
	}

	store, err := history.NewStore(cfg.StorageDir, logger)
	if err != nil {
		return nil, fmt.Errorf("opening report store: %w", err)
	}

	s := &Server{
		cfg:    cfg,
		svc:    service.NewRiskService(cfg.RiskConfig),
		store:  store,
		router: chi.NewRouter(),
		logger: logger,
	}

	s.routes()
	return s, nil
}

func (s *Server) routes() {
	r := s.router

	r.Use(s.corsMiddleware)

	r.Options("/api/v1/analyze", s.optionsHandler("POST"))
	r.Options("/api/v1/analyze/batch", s.optionsHandler("POST"))
	r.Options("/api/v1/reports", s.optionsHandler("GET"))
	r.Options("/api/v1/reports/{reportID}", s.optionsHandler("GET"))

	r.Post("/api/v1/analyze", s.handleAnalyze)
	r.Post("/api/v1/analyze/batch", s.handleAnalyzeBatch)
	r.Get("/api/v1/reports", s.handleListReports)
	r.Get("/api/v1/reports/{reportID}", s.handleGetReport)

	r.Get("/healthz", s.handleHealth)
}

func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Access-Control-Max-Age", "86400")

		next.ServeHTTP(w, r)
	})
}

func (s *Server) optionsHandler(methods string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Methods", methods)
		w.WriteHeader(http.StatusNoContent)
	}
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.logger.Info("http_request",
		logging.Field{Key: "method", Value: r.Method},
		logging.Field{Key: "path", Value: r.URL.Path},
	)
	s.router.ServeHTTP(w, r)
}

// ListenAndServe starts the HTTP server and blocks until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              s.cfg.ListenAddr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", logging.Field{Key: "addr", Value: s.cfg.ListenAddr})
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// Close releases the report store.
func (s *Server) Close() error {
	return s.store.Close()
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeURLRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if req.URL == "" {
		writeError(w, http.StatusBadRequest, "url is required")
		return
	}
	if len(req.URL) > constants.MaxURLLength {
		writeError(w, http.StatusBadRequest, "url exceeds maximum length")
		return
	}

	result := s.svc.AnalyzeURL(r.Context(), req.URL)

	reportID, err := s.store.SaveResult(r.Context(), result)
	if err != nil {
		s.logger.Error("saving report", logging.Field{Key: "error", Value: err.Error()})
	}

	writeJSON(w, http.StatusOK, AnalyzeURLResponse{ReportID: reportID, Result: result})
}

func (s *Server) handleAnalyzeBatch(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if len(req.URLs) == 0 {
		writeError(w, http.StatusBadRequest, "urls is required")
		return
	}
	if len(req.URLs) > constants.MaxBatchSize {
		writeError(w, http.StatusBadRequest,
			fmt.Sprintf("batch exceeds maximum size of %d", constants.MaxBatchSize))
		return
	}

	resp, err := s.svc.Analyze(r.Context(), domain.AnalyzeRequest{URLs: req.URLs})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	reportIDs, err := s.store.SaveResults(r.Context(), resp.Results)
	if err != nil {
		s.logger.Error("saving reports", logging.Field{Key: "error", Value: err.Error()})
	}

	writeJSON(w, http.StatusOK, AnalyzeBatchResponse{
		ReportIDs: reportIDs,
		Results:   resp.Results,
		Summary:   resp.Summary,
	})
}

func (s *Server) handleListReports(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	switch status {
	case "", constants.StatusSafe, constants.StatusSuspicious, constants.StatusDangerous:
	default:
		writeError(w, http.StatusBadRequest, "invalid status filter")
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}

	reports, err := s.store.ListReports(r.Context(), status, limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if reports == nil {
		reports = []history.Report{}
	}

	writeJSON(w, http.StatusOK, reports)
}

func (s *Server) handleGetReport(w http.ResponseWriter, r *http.Request) {
	reportID := chi.URLParam(r, "reportID")

	report, err := s.store.GetReport(r.Context(), reportID)
	if errors.Is(err, history.ErrReportNotFound) {
		writeError(w, http.StatusNotFound, "report not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": version.Version,
	})
}

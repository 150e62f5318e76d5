// Package api - thin HTTP layer for road cost estimation.
// The API is only responsible for input ingestion, pipeline orchestration
// and output serialization; it never performs cost logic itself.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"roadcost/catalog"
	"roadcost/core/estimate"
	"roadcost/core/types"
	"roadcost/internal/errors"
	"roadcost/internal/logging"
	"roadcost/report"
	"roadcost/volume"
)

// RateLister exposes raw rate entries for the reference-data endpoint.
// Both the in-memory catalog and the database store satisfy it.
type RateLister interface {
	Entries(ctx context.Context, region string) ([]types.RateEntry, error)
}

// Server is the API server
type Server struct {
	estimator *estimate.Estimator
	reports   *report.Registry
	rates     RateLister
	items     catalog.CostItemCatalog
	mux       *http.ServeMux
	version   string

	// reportDir is where generated reports are written
	reportDir string

	// reportBaseURL prefixes report download links
	reportBaseURL string
}

// Options configures the server
type Options struct {
	// Rates is the rate catalog used for estimates
	Rates catalog.RateCatalog

	// RateLister serves GET /rates; usually the same object as Rates
	RateLister RateLister

	// Items is the cost item catalog
	Items catalog.CostItemCatalog

	// Source supplies volume intervals
	Source volume.Source

	// ReportDir is the report output directory
	ReportDir string

	// ReportBaseURL prefixes report download links
	ReportBaseURL string

	// Version is the service version string
	Version string
}

// NewServer creates the API server and registers its routes
func NewServer(opts Options) *Server {
	s := &Server{
		estimator:     estimate.New(opts.Rates, opts.Items, opts.Source),
		reports:       report.NewRegistry(),
		rates:         opts.RateLister,
		items:         opts.Items,
		mux:           http.NewServeMux(),
		version:       opts.Version,
		reportDir:     opts.ReportDir,
		reportBaseURL: strings.TrimSuffix(opts.ReportBaseURL, "/"),
	}

	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("POST /estimate", s.handleEstimate)
	s.mux.HandleFunc("GET /reports/{filename}", s.handleReport)

	// Reference data
	s.mux.HandleFunc("GET /rates", s.handleRates)
	s.mux.HandleFunc("GET /items", s.handleItems)

	s.mux.HandleFunc("GET /health", s.handleHealth)
	s.mux.HandleFunc("GET /version", s.handleVersion)
}

// handleEstimate handles POST /estimate
func (s *Server) handleEstimate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()
	requestID := generateRequestID()

	var req EstimateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return
	}

	// Validate the report format up front: the estimate is not attempted
	// for malformed input.
	formatLabel := req.ReportFormat
	if formatLabel == "" {
		formatLabel = string(report.FormatExcel)
	}
	format, err := report.ParseFormat(formatLabel)
	if err != nil {
		s.writeError(w, string(errors.TypeValidation), err.Error(), http.StatusBadRequest)
		return
	}

	result, err := s.estimator.Estimate(ctx, req.toEstimateRequest())
	if err != nil {
		s.writeEstimateError(w, err)
		return
	}

	resp := &EstimateResponse{
		ProjectID:   result.ProjectID,
		AlignmentID: result.AlignmentID,
		TotalCost:   result.TotalCost.InexactFloat64(),
		CostPerKm:   result.CostPerKm.InexactFloat64(),
		Breakdown:   toBreakdownPayload(result.Breakdown),
		Warnings:    result.Warnings,
		Metadata: ResponseMetadata{
			RequestID:     requestID,
			EngineVersion: s.version,
		},
	}

	// Rendering is decoupled from estimation: the computed totals are
	// returned whether or not the report file was produced.
	filename, err := s.reports.Generate(result, format, s.reportDir)
	if err != nil {
		logging.Error("report rendering failed",
			zap.String("request_id", requestID),
			zap.String("format", string(format)),
			zap.Error(err),
		)
		resp.RenderError = err.Error()
	} else {
		resp.ReportURL = s.reportBaseURL + "/" + filename
	}

	resp.Metadata.DurationMs = time.Since(start).Milliseconds()
	s.writeJSON(w, resp, http.StatusOK)
}

// handleReport handles GET /reports/{filename}
func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	filename := r.PathValue("filename")
	if filename == "" || filename != filepath.Base(filename) {
		s.writeError(w, string(errors.TypeValidation), "invalid report filename", http.StatusBadRequest)
		return
	}
	http.ServeFile(w, r, filepath.Join(s.reportDir, filename))
}

// handleRates handles GET /rates
func (s *Server) handleRates(w http.ResponseWriter, r *http.Request) {
	region := r.URL.Query().Get("region")
	if region == "" {
		region = "default"
	}

	entries, err := s.rates.Entries(r.Context(), region)
	if err != nil {
		s.writeError(w, string(errors.TypeStorage), err.Error(), http.StatusInternalServerError)
		return
	}

	s.writeJSON(w, map[string]interface{}{
		"region": region,
		"rates":  entries,
		"count":  len(entries),
	}, http.StatusOK)
}

// handleItems handles GET /items
func (s *Server) handleItems(w http.ResponseWriter, r *http.Request) {
	items, err := s.items.Items(r.Context())
	if err != nil {
		s.writeError(w, string(errors.TypeStorage), err.Error(), http.StatusInternalServerError)
		return
	}

	defs := make([]types.CostItemDef, 0, len(items))
	for _, item := range items {
		defs = append(defs, item)
	}

	s.writeJSON(w, map[string]interface{}{
		"items": defs,
		"count": len(defs),
	}, http.StatusOK)
}

// handleHealth handles GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]interface{}{
		"status":  "healthy",
		"version": s.version,
		"time":    time.Now().UTC().Format(time.RFC3339),
	}, http.StatusOK)
}

// handleVersion handles GET /version
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{
		"version":     s.version,
		"engine":      "roadcost",
		"api_version": "v1",
	}, http.StatusOK)
}

// writeEstimateError maps domain errors onto HTTP statuses
func (s *Server) writeEstimateError(w http.ResponseWriter, err error) {
	code := string(errors.TypeInternal)
	status := http.StatusInternalServerError

	if e, ok := err.(*errors.Error); ok {
		code = string(e.Type)
		switch e.Type {
		case errors.TypeValidation:
			status = http.StatusBadRequest
		case errors.TypeInsufficientData, errors.TypeEmptyLedger:
			status = http.StatusUnprocessableEntity
		case errors.TypeNotFound:
			status = http.StatusNotFound
		}
	}

	s.writeError(w, code, err.Error(), status)
}

func (s *Server) writeJSON(w http.ResponseWriter, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (s *Server) writeError(w http.ResponseWriter, code, message string, status int) {
	s.writeJSON(w, map[string]interface{}{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	}, status)
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// ListenAndServe starts the server
func (s *Server) ListenAndServe(addr string) error {
	logging.Info("api server listening", zap.String("addr", addr))
	return http.ListenAndServe(addr, s)
}

func generateRequestID() string {
	return fmt.Sprintf("est-%d", time.Now().UnixNano())
}

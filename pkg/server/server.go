// Package server exposes the scoring and keyword analysis engine over HTTP.
package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/abc-elearning/aso-audit/internal/store"
	"github.com/abc-elearning/aso-audit/pkg/aso"
	"github.com/abc-elearning/aso-audit/pkg/keyword"
)

// Server provides the HTTP API.
type Server struct {
	store store.Store
	port  int
}

// New creates a new HTTP server. store may be nil, in which case scoring
// endpoints work but nothing is persisted and history endpoints return 503.
func New(s store.Store, port int) *Server {
	if port == 0 {
		port = 8080
	}
	return &Server{store: s, port: port}
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe() error {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/api/v1/score", s.handleScore)
	mux.HandleFunc("/api/v1/keywords/compare", s.handleKeywordCompare)
	mux.HandleFunc("/api/v1/keywords/clusters", s.handleKeywordClusters)
	mux.HandleFunc("/api/v1/audits", s.handleAudits)

	addr := fmt.Sprintf(":%d", s.port)
	fmt.Printf("asoaudit server listening on %s\n", addr)
	return http.ListenAndServe(addr, mux)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// scoreRequest is the POST /api/v1/score payload.
type scoreRequest struct {
	AppName  string           `json:"app_name"`
	Platform string           `json:"platform"`
	Metrics  aso.MetricsInput `json:"metrics"`
}

func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	var req scoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body: " + err.Error()})
		return
	}

	if req.Platform != "" {
		req.Metrics.Platform = req.Platform
	}
	report := aso.ScoreInput(req.Metrics)

	if s.store != nil {
		reportJSON, _ := json.Marshal(report)
		audit := &store.Audit{
			AppName:      req.AppName,
			Platform:     report.Platform,
			OverallScore: report.OverallScore,
			HealthStatus: report.HealthStatus,
			ReportJSON:   string(reportJSON),
		}
		if err := s.store.SaveAudit(r.Context(), audit); err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"audit_id": audit.ID, "report": report})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"report": report})
}

func (s *Server) handleKeywordCompare(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	var inputs []keyword.Input
	if err := json.NewDecoder(r.Body).Decode(&inputs); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body: " + err.Error()})
		return
	}

	comparison := keyword.NewAnalyzer().CompareKeywords(inputs)

	if s.store != nil {
		resultJSON, _ := json.Marshal(comparison)
		run := &store.KeywordRun{
			KeywordCount: comparison.TotalKeywordsAnalyzed,
			ResultJSON:   string(resultJSON),
		}
		if len(comparison.RankedKeywords) > 0 {
			run.TopKeyword = comparison.RankedKeywords[0].Keyword
		}
		if err := s.store.SaveKeywordRun(r.Context(), run); err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}
	}

	writeJSON(w, http.StatusOK, comparison)
}

// clusterRequest is the POST /api/v1/keywords/clusters payload.
type clusterRequest struct {
	Keywords    []string                 `json:"keywords"`
	KeywordData map[string]keyword.Stats `json:"keyword_data"`
}

func (s *Server) handleKeywordClusters(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	var req clusterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body: " + err.Error()})
		return
	}

	clusters := keyword.ClusterByIntent(req.Keywords, req.KeywordData)
	writeJSON(w, http.StatusOK, map[string]any{
		"data":  clusters,
		"count": len(clusters),
	})
}

func (s *Server) handleAudits(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}
	if s.store == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "audit history is not configured"})
		return
	}

	opts := store.AuditListOpts{Limit: 50}
	if platform := r.URL.Query().Get("platform"); platform != "" {
		opts.Platform = platform
	}
	if minScore := r.URL.Query().Get("min_score"); minScore != "" {
		if v, err := strconv.ParseFloat(minScore, 64); err == nil {
			opts.MinScore = v
		}
	}
	if limit := r.URL.Query().Get("limit"); limit != "" {
		if v, err := strconv.Atoi(limit); err == nil {
			opts.Limit = v
		}
	}

	audits, err := s.store.ListAudits(r.Context(), opts)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"data":  audits,
		"count": len(audits),
	})
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

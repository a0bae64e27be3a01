package main

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/poiesic/assessrec"
	"github.com/poiesic/assessrec/recommend"
)

// defaultTopK is used when a request omits top_k.
const defaultTopK = 10

type server struct {
	sys    *assessrec.System
	logger *slog.Logger
}

func newServer(sys *assessrec.System) *server {
	return &server{
		sys:    sys,
		logger: slog.Default().With("component", "http"),
	}
}

func (s *server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /recommend", s.handleRecommend)
	mux.HandleFunc("GET /health", s.handleHealth)
	return mux
}

type recommendRequest struct {
	Query string `json:"query"`
	TopK  int    `json:"top_k"`
}

type recommendedAssessment struct {
	URL             string  `json:"url"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	TestType        string  `json:"test_type"`
	Duration        int     `json:"duration"`
	AdaptiveSupport bool    `json:"adaptive_support"`
	RemoteSupport   bool    `json:"remote_support"`
	Score           float64 `json:"score"`
}

type recommendResponse struct {
	RecommendedAssessments []recommendedAssessment `json:"recommended_assessments"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *server) handleRecommend(w http.ResponseWriter, r *http.Request) {
	var req recommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.TopK == 0 {
		req.TopK = defaultTopK
	}

	results, err := s.sys.Recommend(r.Context(), req.Query, req.TopK)
	if err != nil {
		if errors.Is(err, recommend.ErrEmptyQuery) || errors.Is(err, recommend.ErrInvalidK) {
			s.writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		s.logger.Error("recommendation failed", "err", err)
		s.writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	resp := recommendResponse{
		RecommendedAssessments: make([]recommendedAssessment, 0, len(results)),
	}
	for _, candidate := range results {
		a := candidate.Assessment
		resp.RecommendedAssessments = append(resp.RecommendedAssessments, recommendedAssessment{
			URL:             a.Key,
			Name:            a.Name,
			Description:     a.Description,
			TestType:        string(a.TestType),
			Duration:        a.Duration,
			AdaptiveSupport: a.AdaptiveSupport,
			RemoteSupport:   a.RemoteSupport,
			Score:           candidate.FinalScore,
		})
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	health := s.sys.Health()
	s.writeJSON(w, http.StatusOK, map[string]any{
		"status":       health.Status,
		"catalog_size": health.CatalogSize,
	})
}

func (s *server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("failed to encode response", "err", err)
	}
}

func (s *server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, errorResponse{Error: message})
}

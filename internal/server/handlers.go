package server

import (
	"encoding/json"
	"math"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/skill-gap-analyzer/internal/types"
)

// handleAnalyzeGap runs the full analysis for a pair of extraction results.
func (s *Server) handleAnalyzeGap(w http.ResponseWriter, r *http.Request) {
	var req types.AnalyzeGapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	start := time.Now()
	result, err := s.generator.Generate(req.ResumeSkills, req.JDSkills, req.Weights)
	if err != nil {
		s.logger.Warn("analysis failed", zap.Error(err))
		s.writeError(w, HTTPStatus(err), err.Error())
		return
	}
	elapsed := time.Since(start).Seconds()

	s.logger.Info("analysis complete",
		zap.String("report_id", result.ReportID),
		zap.Int("matched", result.FitScore.MatchedCount),
		zap.Int("missing", result.FitScore.MissingCount),
		zap.Float64("elapsed_seconds", elapsed))

	s.writeJSON(w, http.StatusOK, types.AnalyzeGapResponse{
		Report:       result,
		AnalysisTime: math.Round(elapsed*1000) / 1000,
	})
}

// handleHealth is the liveness endpoint.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("failed to encode response", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"error": message})
}

package server

import (
	"encoding/json"
	"net/http"

	"github.com/WillyEverGreen/gigbridge/internal/analyzer"
	"github.com/WillyEverGreen/gigbridge/internal/catalog"
	"github.com/WillyEverGreen/gigbridge/internal/extraction"
)

// ---------------------------------------------------------------------
// Analysis Handlers
// ---------------------------------------------------------------------

// AnalyzeResumeRequest carries raw resume text for analysis.
type AnalyzeResumeRequest struct {
	Text string `json:"text" validate:"required"`
}

// handleAnalyzeResume runs the analyzer on raw text and returns the analysis.
// No ledger state is touched.
func (s *Server) handleAnalyzeResume(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeResumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := s.validate.Struct(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Field 'text' is required")
		return
	}

	analysis, err := analyzer.Analyze(req.Text)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), userMessage(err))
		return
	}

	s.jsonResponse(w, http.StatusOK, analysis)
}

// ProcessResumeRequest identifies an uploaded document and the user whose
// ledger should absorb the extracted skills.
type ProcessResumeRequest struct {
	UserID   string              `json:"user_id" validate:"required"`
	Document extraction.Document `json:"document" validate:"required"`
}

// handleProcessResume is the full upload flow: extraction collaborator →
// analyzer → ledger skill import. Extraction is the only long-running step;
// it runs under the request context so client disconnects cancel it.
func (s *Server) handleProcessResume(w http.ResponseWriter, r *http.Request) {
	var req ProcessResumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := s.validate.Struct(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Fields 'user_id' and 'document.url' are required")
		return
	}

	result, err := s.extractor.ExtractText(r.Context(), req.Document)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), userMessage(err))
		return
	}

	analysis, err := analyzer.Analyze(result.Text)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), userMessage(err))
		return
	}

	record, err := s.ledger.ImportSkillsFromResume(r.Context(), req.UserID, analysis.Skills)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), userMessage(err))
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"analysis":   analysis,
		"extraction": map[string]any{"confidence": result.Confidence, "keywords": result.Keywords},
		"rating":     record,
	})
}

// handleCatalogSkills returns the recognized skill catalog in match order,
// for marketplace UIs that render skill pickers.
func (s *Server) handleCatalogSkills(w http.ResponseWriter, _ *http.Request) {
	skills := catalog.Skills()
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"skills": skills,
		"count":  len(skills),
	})
}

package server

import (
	"encoding/json"
	"net/http"
	"strconv"
)

// ---------------------------------------------------------------------
// Rating Ledger Handlers
// ---------------------------------------------------------------------

// SkillsRequest carries a skill list for import or project-outcome endpoints.
type SkillsRequest struct {
	Skills []string `json:"skills" validate:"required,min=1,dive,min=1"`
}

// decodeSkillsRequest parses and validates the shared request shape.
func (s *Server) decodeSkillsRequest(w http.ResponseWriter, r *http.Request) (*SkillsRequest, bool) {
	var req SkillsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return nil, false
	}
	if err := s.validate.Struct(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Field 'skills' must be a non-empty list of skill names")
		return nil, false
	}
	return &req, true
}

// userIDFromPath returns the user id path segment. User ids come from the
// external identity provider and are treated as opaque strings.
func (s *Server) userIDFromPath(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := r.PathValue("id")
	if id == "" {
		s.errorResponse(w, http.StatusBadRequest, "Invalid user ID")
		return "", false
	}
	return id, true
}

func (s *Server) handleResumeImport(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.userIDFromPath(w, r)
	if !ok {
		return
	}
	req, ok := s.decodeSkillsRequest(w, r)
	if !ok {
		return
	}

	record, err := s.ledger.ImportSkillsFromResume(r.Context(), userID, req.Skills)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), userMessage(err))
		return
	}
	s.jsonResponse(w, http.StatusOK, record)
}

func (s *Server) handleProjectSuccess(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.userIDFromPath(w, r)
	if !ok {
		return
	}
	req, ok := s.decodeSkillsRequest(w, r)
	if !ok {
		return
	}

	record, err := s.ledger.RecordProjectSuccess(r.Context(), userID, req.Skills)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), userMessage(err))
		return
	}
	s.jsonResponse(w, http.StatusOK, record)
}

func (s *Server) handleProjectFailure(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.userIDFromPath(w, r)
	if !ok {
		return
	}
	req, ok := s.decodeSkillsRequest(w, r)
	if !ok {
		return
	}

	record, err := s.ledger.RecordProjectFailure(r.Context(), userID, req.Skills)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), userMessage(err))
		return
	}
	s.jsonResponse(w, http.StatusOK, record)
}

func (s *Server) handleProjectCancellation(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.userIDFromPath(w, r)
	if !ok {
		return
	}
	req, ok := s.decodeSkillsRequest(w, r)
	if !ok {
		return
	}

	record, err := s.ledger.RecordProjectCancellation(r.Context(), userID, req.Skills)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), userMessage(err))
		return
	}
	s.jsonResponse(w, http.StatusOK, record)
}

func (s *Server) handleGetRatings(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.userIDFromPath(w, r)
	if !ok {
		return
	}

	record, err := s.ledger.Get(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), userMessage(err))
		return
	}
	s.jsonResponse(w, http.StatusOK, record)
}

func (s *Server) handleGetStats(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.userIDFromPath(w, r)
	if !ok {
		return
	}

	stats, err := s.ledger.GetStats(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), userMessage(err))
		return
	}
	s.jsonResponse(w, http.StatusOK, stats)
}

func (s *Server) handleGetTopSkills(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.userIDFromPath(w, r)
	if !ok {
		return
	}

	limit := s.topSkillsLimit
	if limit <= 0 {
		limit = 3
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			s.errorResponse(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = parsed
	}

	skills, err := s.ledger.GetTopSkills(r.Context(), userID, limit)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), userMessage(err))
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"skills": skills,
		"count":  len(skills),
	})
}

func (s *Server) handleClearHistory(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.userIDFromPath(w, r)
	if !ok {
		return
	}

	record, err := s.ledger.ClearHistory(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), userMessage(err))
		return
	}
	s.jsonResponse(w, http.StatusOK, record)
}

func (s *Server) handleDeleteRatings(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.userIDFromPath(w, r)
	if !ok {
		return
	}

	if err := s.ledger.DeleteAll(r.Context(), userID); err != nil {
		s.errorResponse(w, HTTPStatus(err), userMessage(err))
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}

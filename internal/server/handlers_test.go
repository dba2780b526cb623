package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WillyEverGreen/gigbridge/internal/extraction"
	"github.com/WillyEverGreen/gigbridge/internal/ledger"
	"github.com/WillyEverGreen/gigbridge/internal/store"
)

// fakeExtractor returns a canned result or error without network I/O.
type fakeExtractor struct {
	result *extraction.Result
	err    error
}

func (f *fakeExtractor) ExtractText(context.Context, extraction.Document) (*extraction.Result, error) {
	return f.result, f.err
}

// newTestServer builds a server on the in-memory store with no auth or rate
// limiting, returning its router for direct requests.
func newTestServer(t *testing.T, extractor extraction.Client) (*Server, http.Handler) {
	t.Helper()
	s := &Server{
		ledger:    ledger.NewService(store.NewMemoryStore()),
		extractor: extractor,
		validate:  validator.New(),
	}
	return s, s.routes()
}

func doJSON(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestHandleHealth(t *testing.T) {
	_, h := newTestServer(t, nil)

	rec := doJSON(t, h, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decodeBody(t, rec)["status"])
}

func TestHandleCatalogSkills(t *testing.T) {
	_, h := newTestServer(t, nil)

	rec := doJSON(t, h, http.MethodGet, "/catalog/skills", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	skills := body["skills"].([]any)
	assert.NotEmpty(t, skills)
	assert.Equal(t, float64(len(skills)), body["count"])
}

func TestHandleAnalyzeResume(t *testing.T) {
	_, h := newTestServer(t, nil)

	rec := doJSON(t, h, http.MethodPost, "/resumes/analyze",
		`{"text": "Senior Software Engineer 2020 with Python, React and AWS"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Contains(t, body, "overall_rating")
	assert.Contains(t, body["skills"], "Python")
}

func TestHandleAnalyzeResume_MissingText(t *testing.T) {
	_, h := newTestServer(t, nil)

	rec := doJSON(t, h, http.MethodPost, "/resumes/analyze", `{}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleAnalyzeResume_UnreadableText(t *testing.T) {
	_, h := newTestServer(t, nil)

	rec := doJSON(t, h, http.MethodPost, "/resumes/analyze", `{"text": "a b"}`)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, decodeBody(t, rec)["error"], "File unreadable")
}

func TestHandleProcessResume_FullFlow(t *testing.T) {
	extractor := &fakeExtractor{result: &extraction.Result{
		Text:       "Senior Software Engineer 2019, Python, Docker, PostgreSQL",
		Confidence: 0.9,
		Keywords:   extraction.KeywordHits{All: []string{"python"}},
	}}
	s, h := newTestServer(t, extractor)

	rec := doJSON(t, h, http.MethodPost, "/resumes/process",
		`{"user_id": "user-1", "document": {"url": "https://files.example.com/r.pdf"}}`)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Contains(t, body, "analysis")
	assert.Contains(t, body, "rating")

	// Extracted skills landed in the ledger at rating 0
	record, err := s.ledger.Get(context.Background(), "user-1")
	require.NoError(t, err)
	assert.NotEmpty(t, record.Skills)
	assert.Equal(t, 0.0, record.Skills[0].Rating)
	assert.Len(t, record.RatingHistory, 1)
}

func TestHandleProcessResume_ExtractorDown(t *testing.T) {
	extractor := &fakeExtractor{err: &extraction.UnavailableError{Message: "connection refused"}}
	_, h := newTestServer(t, extractor)

	rec := doJSON(t, h, http.MethodPost, "/resumes/process",
		`{"user_id": "user-1", "document": {"url": "https://files.example.com/r.pdf"}}`)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestHandleProcessResume_UnreadableDocument(t *testing.T) {
	extractor := &fakeExtractor{err: &extraction.NoReadableTextError{Length: 2}}
	_, h := newTestServer(t, extractor)

	rec := doJSON(t, h, http.MethodPost, "/resumes/process",
		`{"user_id": "user-1", "document": {"url": "https://files.example.com/r.pdf"}}`)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, decodeBody(t, rec)["error"], "Retry with a clearer scan")
}

func TestHandleResumeImport(t *testing.T) {
	_, h := newTestServer(t, nil)

	rec := doJSON(t, h, http.MethodPost, "/users/user-1/ratings/resume-import",
		`{"skills": ["React", "Docker"]}`)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "user-1", body["user_id"])
	assert.Len(t, body["skills"], 2)
}

func TestHandleResumeImport_EmptySkills(t *testing.T) {
	_, h := newTestServer(t, nil)

	rec := doJSON(t, h, http.MethodPost, "/users/user-1/ratings/resume-import",
		`{"skills": []}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProjectOutcomeEndpoints(t *testing.T) {
	_, h := newTestServer(t, nil)

	rec := doJSON(t, h, http.MethodPost, "/users/user-1/ratings/project-success",
		`{"skills": ["React"]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, h, http.MethodPost, "/users/user-1/ratings/project-failure",
		`{"skills": ["React"]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, h, http.MethodPost, "/users/user-1/ratings/project-cancellation",
		`{"skills": ["React"]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, float64(1), body["total_projects_completed"])
	assert.Equal(t, float64(2), body["total_projects_failed"])
}

func TestHandleGetRatings_UnknownUser(t *testing.T) {
	_, h := newTestServer(t, nil)

	rec := doJSON(t, h, http.MethodGet, "/users/ghost/ratings", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "ghost", body["user_id"])
	assert.Empty(t, body["skills"])
}

func TestHandleGetStats(t *testing.T) {
	_, h := newTestServer(t, nil)

	doJSON(t, h, http.MethodPost, "/users/user-1/ratings/project-success", `{"skills": ["React"]}`)

	rec := doJSON(t, h, http.MethodGet, "/users/user-1/ratings/stats", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, float64(100), body["success_rate"])
	assert.Equal(t, float64(1), body["total_skills"])
}

func TestHandleGetTopSkills_LimitParam(t *testing.T) {
	_, h := newTestServer(t, nil)

	doJSON(t, h, http.MethodPost, "/users/user-1/ratings/resume-import",
		`{"skills": ["React", "Vue", "Go", "Rust", "Docker"]}`)

	rec := doJSON(t, h, http.MethodGet, "/users/user-1/ratings/top-skills?limit=2", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(2), decodeBody(t, rec)["count"])

	// Default limit is 3
	rec = doJSON(t, h, http.MethodGet, "/users/user-1/ratings/top-skills", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(3), decodeBody(t, rec)["count"])

	rec = doJSON(t, h, http.MethodGet, "/users/user-1/ratings/top-skills?limit=bogus", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleClearHistory(t *testing.T) {
	_, h := newTestServer(t, nil)

	doJSON(t, h, http.MethodPost, "/users/user-1/ratings/project-success", `{"skills": ["React"]}`)

	rec := doJSON(t, h, http.MethodDelete, "/users/user-1/ratings/history", "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Empty(t, body["rating_history"])
	assert.Len(t, body["skills"], 1)
}

func TestHandleDeleteRatings(t *testing.T) {
	_, h := newTestServer(t, nil)

	doJSON(t, h, http.MethodPost, "/users/user-1/ratings/project-success", `{"skills": ["React"]}`)

	rec := doJSON(t, h, http.MethodDelete, "/users/user-1/ratings", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "deleted", decodeBody(t, rec)["status"])

	rec = doJSON(t, h, http.MethodGet, "/users/user-1/ratings", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decodeBody(t, rec)["skills"])
}

func TestProtectedEndpointsRequireTokenWhenConfigured(t *testing.T) {
	s := &Server{
		ledger:     ledger.NewService(store.NewMemoryStore()),
		validate:   validator.New(),
		jwtService: NewJWTService("test-secret"),
	}
	h := s.routes()

	rec := doJSON(t, h, http.MethodPost, "/users/user-1/ratings/resume-import",
		`{"skills": ["React"]}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Reads stay open
	rec = doJSON(t, h, http.MethodGet, "/users/user-1/ratings", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

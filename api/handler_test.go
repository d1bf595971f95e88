package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prepstock/catalog"
	"prepstock/core/clock"
	"prepstock/core/engine"
	"prepstock/core/types"
)

func newTestServer() *Server {
	fixed := clock.Fixed(time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC))
	eng := engine.New(catalog.Standard(), engine.WithClock(fixed))
	return NewServer(eng, "test")
}

func doRequest(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	newTestServer().Router().ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	rec := doRequest(t, http.MethodGet, "/health", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var resp healthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "test", resp.Version)
}

func TestCatalogEndpoint(t *testing.T) {
	rec := doRequest(t, http.MethodGet, "/api/v1/catalog", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var entries []types.RecommendedItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entries))
	assert.NotEmpty(t, entries)
}

func TestReportEndpoint(t *testing.T) {
	body := `{"household": {"adults": 2, "supply_duration_days": 3},
		"items": [{"name": "Water", "category": "water", "quantity": 18, "unit": "l",
		"never_expires": true, "template": "drinking-water"}]}`

	rec := doRequest(t, http.MethodPost, "/api/v1/report", body)

	require.Equal(t, http.StatusOK, rec.Code)
	var report types.HouseholdReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.NotEmpty(t, report.Categories)
	assert.GreaterOrEqual(t, report.Score, 0)
	assert.LessOrEqual(t, report.Score, 100)
}

func TestScoreEndpoint(t *testing.T) {
	body := `{"household": {"adults": 1, "supply_duration_days": 3}, "items": []}`

	rec := doRequest(t, http.MethodPost, "/api/v1/score", body)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp scoreResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.GreaterOrEqual(t, resp.Score, 0)
	assert.LessOrEqual(t, resp.Score, 100)
	assert.NotEmpty(t, resp.Tier)
}

func TestReportEndpointBadBody(t *testing.T) {
	rec := doRequest(t, http.MethodPost, "/api/v1/report", `{"household": [not json`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var resp errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Type)
}

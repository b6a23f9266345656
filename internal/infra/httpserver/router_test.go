package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmazoveracode/veracode-target-urls/internal/application/extract"
	domain "github.com/jmazoveracode/veracode-target-urls/internal/domain/targets"
)

type stubSource struct{}

func (stubSource) ListAnalyses(ctx context.Context) (domain.AnalysesPage, error) {
	return domain.AnalysesPage{Analyses: []domain.Analysis{
		{ID: "A1", Name: "App Scan", Application: domain.Application{Name: "Shop"}},
	}}, nil
}

func (stubSource) ListScans(ctx context.Context, id domain.AnalysisID) (domain.ScansPage, error) {
	return domain.ScansPage{Scans: []domain.Scan{
		{ScanID: "s1", TargetURL: "https://shop.example.com"},
	}}, nil
}

type stubClock struct{}

func (stubClock) Now() time.Time { return time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC) }

func newTestRouter(opts Options) http.Handler {
	svc := &extract.Service{Source: stubSource{}, Clock: stubClock{}}
	return NewRouter(svc, nil, nil, opts)
}

func TestHandleExtract(t *testing.T) {
	srv := httptest.NewServer(newTestRouter(Options{RateCapacity: 100, RateRefill: 100}))
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/v1/extract", "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Run     domain.ExtractionRun  `json:"run"`
		Records []domain.TargetRecord `json:"records"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Records, 1)
	assert.Equal(t, "https://shop.example.com", body.Records[0].TargetURL)
	assert.Equal(t, domain.RunStatusSuccess, body.Run.Status)
}

func TestRunsEndpointsWithoutHistory(t *testing.T) {
	srv := httptest.NewServer(newTestRouter(Options{}))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/v1/runs/latest")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestAPIKeyAuthEnforced(t *testing.T) {
	srv := httptest.NewServer(newTestRouter(Options{APIKeys: []string{"sekrit"}, RateCapacity: 100, RateRefill: 100}))
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/v1/extract", "application/json", nil)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	req, _ := http.NewRequest(http.MethodPost, srv.URL+"/v1/extract", nil)
	req.Header.Set("Authorization", "Bearer sekrit")
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestHealthOpenWithoutKey(t *testing.T) {
	srv := httptest.NewServer(newTestRouter(Options{APIKeys: []string{"sekrit"}}))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestExtractRateLimited(t *testing.T) {
	srv := httptest.NewServer(newTestRouter(Options{RateCapacity: 1, RateRefill: 1}))
	defer srv.Close()

	req, _ := http.NewRequest(http.MethodPost, srv.URL+"/v1/extract", nil)
	req.Header.Set("Authorization", "same-caller")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	req2, _ := http.NewRequest(http.MethodPost, srv.URL+"/v1/extract", nil)
	req2.Header.Set("Authorization", "same-caller")
	resp2, err := http.DefaultClient.Do(req2)
	require.NoError(t, err)
	resp2.Body.Close()
	assert.Equal(t, http.StatusTooManyRequests, resp2.StatusCode)
}

package httpserver

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	appai "github.com/jmazoveracode/veracode-target-urls/internal/application/ai"
	"github.com/jmazoveracode/veracode-target-urls/internal/application/extract"
	domai "github.com/jmazoveracode/veracode-target-urls/internal/domain/ai"
	domain "github.com/jmazoveracode/veracode-target-urls/internal/domain/targets"
	"github.com/jmazoveracode/veracode-target-urls/internal/middleware"
)

type Router struct {
	extractSvc *extract.Service
	aiSvc      *appai.Service
	repo       domain.Repository
}

// Options configure the router surface.
type Options struct {
	APIKeys        []string
	HealthCheckers map[string]middleware.HealthChecker
	RateCapacity   int // extraction triggers per caller
	RateRefill     int // tokens per second
}

func NewRouter(extractSvc *extract.Service, aiSvc *appai.Service, repo domain.Repository, opts Options) http.Handler {
	r := &Router{extractSvc: extractSvc, aiSvc: aiSvc, repo: repo}
	mux := chi.NewRouter()

	mux.Use(middleware.Logging)
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))
	mux.Use(middleware.APIKeyAuth(opts.APIKeys))

	capacity, refill := opts.RateCapacity, opts.RateRefill
	if capacity <= 0 {
		capacity = 2
	}
	if refill <= 0 {
		refill = 1
	}
	limiter := middleware.NewRateLimiter(capacity, refill)

	mux.Get("/health", middleware.HealthHandler(opts.HealthCheckers))

	mux.Route("/v1", func(rt chi.Router) {
		rt.With(limiter.Limit).Post("/extract", r.wrap(r.handleExtract))
		rt.Get("/runs/latest", r.wrap(r.handleLatestRuns))
		rt.Get("/runs/{id}", r.wrap(r.handleGetRun))
		rt.Get("/report", r.wrap(r.handleReport))
		rt.Post("/summarize", r.wrap(r.handleSummarize))
	})

	return mux
}

type handlerFunc func(http.ResponseWriter, *http.Request) error

func (r *Router) wrap(h handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		if err := h(w, req); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				http.Error(w, "not found", http.StatusNotFound)
				return
			}
			if errors.Is(err, domai.ErrQuotaExceeded) {
				http.Error(w, "ai quota exceeded", http.StatusTooManyRequests)
				return
			}
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	}
}

func writeJSON(w http.ResponseWriter, v any) error {
	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(v)
}

// POST /v1/extract
// Runs one extraction synchronously and responds with the run plus records.
// The walk is sequential upstream, so responses take as long as 1+N GETs.
func (r *Router) handleExtract(w http.ResponseWriter, req *http.Request) error {
	res := r.extractSvc.Extract(req.Context())
	if res.Records == nil {
		res.Records = []domain.TargetRecord{}
	}
	return writeJSON(w, map[string]any{
		"run":     res.Run,
		"records": res.Records,
	})
}

// GET /v1/runs/latest?limit=
func (r *Router) handleLatestRuns(w http.ResponseWriter, req *http.Request) error {
	if r.repo == nil {
		return fmt.Errorf("run history is not configured")
	}
	limit, _ := strconv.Atoi(req.URL.Query().Get("limit"))
	runs, err := r.repo.LatestRuns(req.Context(), limit)
	if err != nil {
		return err
	}
	return writeJSON(w, runs)
}

// GET /v1/runs/{id}
func (r *Router) handleGetRun(w http.ResponseWriter, req *http.Request) error {
	if r.repo == nil {
		return fmt.Errorf("run history is not configured")
	}
	run, err := r.repo.GetRun(req.Context(), chi.URLParam(req, "id"))
	if err != nil {
		return err
	}
	return writeJSON(w, run)
}

// GET /v1/report
// The records of the most recent run, in discovery order.
func (r *Router) handleReport(w http.ResponseWriter, req *http.Request) error {
	if r.repo == nil {
		return fmt.Errorf("run history is not configured")
	}
	runs, err := r.repo.LatestRuns(req.Context(), 1)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		return writeJSON(w, []domain.TargetRecord{})
	}
	recs, err := r.repo.RecordsForRun(req.Context(), runs[0].ID)
	if err != nil {
		return err
	}
	if recs == nil {
		recs = []domain.TargetRecord{}
	}
	return writeJSON(w, recs)
}

// POST /v1/summarize
// Body: {"run_id": "<id>"}
func (r *Router) handleSummarize(w http.ResponseWriter, req *http.Request) error {
	if r.aiSvc == nil {
		return fmt.Errorf("ai summaries are not configured")
	}
	if r.repo == nil {
		return fmt.Errorf("run history is not configured")
	}
	var body struct {
		RunID string `json:"run_id"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return err
	}
	if body.RunID == "" {
		return fmt.Errorf("run_id is required")
	}

	recs, err := r.repo.RecordsForRun(req.Context(), body.RunID)
	if err != nil {
		return err
	}
	summary, err := r.aiSvc.SummarizeRecords(req.Context(), recs)
	if err != nil {
		return err
	}
	return writeJSON(w, map[string]string{"run_id": body.RunID, "summary": summary})
}

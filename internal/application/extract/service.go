package extract

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	domain "github.com/jmazoveracode/veracode-target-urls/internal/domain/targets"
)

// Clock abstraction supaya gampang ditest
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// Service implements the extraction use-case: walk every analysis, list its
// scans, and flatten scans that carry a target URL into TargetRecords.
// The walk is strictly sequential, one scans-listing call per analysis, so a
// run issues exactly 1+N upstream requests.
type Service struct {
	Source domain.Source
	Repo   domain.Repository // optional; nil disables run history
	Clock  Clock
}

// Extraction is the outcome of one run.
type Extraction struct {
	Run     *domain.ExtractionRun
	Records []domain.TargetRecord
}

// Extract performs one full pass. Upstream failures never surface as an
// error to the caller: a failed or empty analyses listing aborts with an
// empty record set, a failed scans listing skips that analysis only.
func (s *Service) Extract(ctx context.Context) Extraction {
	run := &domain.ExtractionRun{
		ID:        uuid.New().String(),
		StartedAt: s.Clock.Now(),
		Status:    domain.RunStatusSuccess,
	}

	records := s.collect(ctx, run)

	run.FinishedAt = s.Clock.Now()
	run.DurationMS = run.FinishedAt.Sub(run.StartedAt).Milliseconds()
	run.RecordCount = len(records)

	if s.Repo != nil {
		if err := s.Repo.SaveRun(ctx, run); err != nil {
			log.Printf("run history: save run: %v", err)
		} else if err := s.Repo.SaveRecords(ctx, run.ID, records); err != nil {
			log.Printf("run history: save records: %v", err)
		}
	}

	return Extraction{Run: run, Records: records}
}

func (s *Service) collect(ctx context.Context, run *domain.ExtractionRun) []domain.TargetRecord {
	fmt.Println("Fetching all analyses...")
	page, err := s.Source.ListAnalyses(ctx)
	if err != nil {
		fmt.Println("Failed to fetch analyses")
		logFailure(err)
		run.Status = domain.RunStatusFailed
		return nil
	}
	if len(page.Analyses) == 0 {
		fmt.Println("No analyses found")
		return nil
	}

	fmt.Printf("Found %d analyses\n", len(page.Analyses))
	run.AnalysesTotal = len(page.Analyses)

	var records []domain.TargetRecord
	for _, analysis := range page.Analyses {
		fmt.Printf("\nProcessing analysis: %s (ID: %s, App: %s)\n",
			analysis.Name, analysis.ID, analysis.ApplicationName())

		fmt.Printf("Fetching scans for analysis ID: %s\n", analysis.ID)
		scans, err := s.Source.ListScans(ctx, analysis.ID)
		if err != nil {
			fmt.Printf("  No scans found for analysis %s\n", analysis.ID)
			logFailure(err)
			run.AnalysesFailed++
			run.Status = domain.RunStatusPartial
			continue
		}

		for _, scan := range scans.Scans {
			rec, ok := domain.NewTargetRecord(analysis, scan)
			if !ok {
				// scan without a target URL: filtered, not an error
				continue
			}
			records = append(records, rec)
			fmt.Printf("  Found target URL: %s\n", rec.TargetURL)
		}
	}
	return records
}

// logFailure prints the failure and, when the config service sent a response
// body, its raw text.
func logFailure(err error) {
	log.Printf("API request failed: %v", err)
	var apiErr *domain.APIError
	if errors.As(err, &apiErr) && apiErr.RawBody != "" {
		log.Printf("Response: %s", apiErr.RawBody)
	}
}

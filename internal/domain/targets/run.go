package targets

import "time"

// Status enum for an extraction run
type RunStatus string

const (
	RunStatusSuccess RunStatus = "success"
	RunStatusPartial RunStatus = "partial"
	RunStatusFailed  RunStatus = "failed"
)

// ExtractionRun records one full pass over the analyses listing.
type ExtractionRun struct {
	ID             string    `json:"id"`
	StartedAt      time.Time `json:"started_at"`
	FinishedAt     time.Time `json:"finished_at"`
	AnalysesTotal  int       `json:"analyses_total"`
	AnalysesFailed int       `json:"analyses_failed"`
	RecordCount    int       `json:"record_count"`
	Status         RunStatus `json:"status"`
	ArtifactURL    string    `json:"artifact_url,omitempty"`
	DurationMS     int64     `json:"duration_ms"`
}

package targets

import "context"

// Source port (interface for the config service listings)
type Source interface {
	ListAnalyses(ctx context.Context) (AnalysesPage, error)
	ListScans(ctx context.Context, id AnalysisID) (ScansPage, error)
}

// Repository port (interface for run-history persistence)
type Repository interface {
	SaveRun(ctx context.Context, run *ExtractionRun) error
	SaveRecords(ctx context.Context, runID string, recs []TargetRecord) error
	GetRun(ctx context.Context, id string) (*ExtractionRun, error)
	LatestRuns(ctx context.Context, limit int) ([]*ExtractionRun, error)
	RecordsForRun(ctx context.Context, runID string) ([]TargetRecord, error)
}

// ArtifactStore port (interface for report upload)
type ArtifactStore interface {
	Upload(ctx context.Context, localPath, key string) (string, error)
}

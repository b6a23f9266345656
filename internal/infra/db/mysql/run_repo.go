package mysql

import (
	"context"
	"database/sql"
	"fmt"

	domain "github.com/jmazoveracode/veracode-target-urls/internal/domain/targets"
)

type RunRepository struct {
	db *sql.DB
}

func NewRunRepository(db *sql.DB) *RunRepository {
	return &RunRepository{db: db}
}

// SaveRun insert/update one extraction run
func (r *RunRepository) SaveRun(ctx context.Context, run *domain.ExtractionRun) error {
	const q = `
INSERT INTO extraction_runs
(id, started_at, finished_at, analyses_total, analyses_failed, record_count, status, artifact_url, duration_ms)
VALUES (?,?,?,?,?,?,?,?,?)
ON DUPLICATE KEY UPDATE
 finished_at=VALUES(finished_at),
 analyses_total=VALUES(analyses_total), analyses_failed=VALUES(analyses_failed),
 record_count=VALUES(record_count), status=VALUES(status),
 artifact_url=VALUES(artifact_url), duration_ms=VALUES(duration_ms);
`
	_, err := r.db.ExecContext(ctx, q,
		run.ID, timeOrNow(run.StartedAt), timeOrNow(run.FinishedAt),
		run.AnalysesTotal, run.AnalysesFailed, run.RecordCount,
		stringOrDash(string(run.Status)), run.ArtifactURL, run.DurationMS,
	)
	return err
}

// SaveRecords replaces the records of one run, keeping discovery order via seq.
func (r *RunRepository) SaveRecords(ctx context.Context, runID string, recs []domain.TargetRecord) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM target_records WHERE run_id=?`, runID); err != nil {
		return fmt.Errorf("clearing records: %w", err)
	}

	const q = `
INSERT INTO target_records
(run_id, seq, analysis_id, analysis_name, application_name, scan_id, scan_config_name,
 target_url, latest_status, created_on, last_modified_on)
VALUES (?,?,?,?,?,?,?,?,?,?,?);
`
	for i, rec := range recs {
		if _, err := tx.ExecContext(ctx, q,
			runID, i, rec.AnalysisID, rec.AnalysisName, rec.ApplicationName,
			rec.ScanID, rec.ScanConfigName, rec.TargetURL, rec.LatestStatus,
			rec.CreatedOn, rec.LastModifiedOn,
		); err != nil {
			return fmt.Errorf("inserting record %d: %w", i, err)
		}
	}
	return tx.Commit()
}

// GetRun by ID
func (r *RunRepository) GetRun(ctx context.Context, id string) (*domain.ExtractionRun, error) {
	const q = `
SELECT id, started_at, finished_at, analyses_total, analyses_failed, record_count, status, artifact_url, duration_ms
FROM extraction_runs
WHERE id=? LIMIT 1;
`
	row := r.db.QueryRowContext(ctx, q, id)
	return scanRun(row)
}

// LatestRuns newest-first
func (r *RunRepository) LatestRuns(ctx context.Context, limit int) ([]*domain.ExtractionRun, error) {
	if limit <= 0 {
		limit = 20
	}
	const q = `
SELECT id, started_at, finished_at, analyses_total, analyses_failed, record_count, status, artifact_url, duration_ms
FROM extraction_runs
ORDER BY started_at DESC LIMIT ?;
`
	rows, err := r.db.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.ExtractionRun
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, run)
	}
	return out, rows.Err()
}

// RecordsForRun in discovery order
func (r *RunRepository) RecordsForRun(ctx context.Context, runID string) ([]domain.TargetRecord, error) {
	const q = `
SELECT analysis_id, analysis_name, application_name, scan_id, scan_config_name,
       target_url, latest_status, created_on, last_modified_on
FROM target_records
WHERE run_id=? ORDER BY seq;
`
	rows, err := r.db.QueryContext(ctx, q, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.TargetRecord
	for rows.Next() {
		var rec domain.TargetRecord
		if err := rows.Scan(
			&rec.AnalysisID, &rec.AnalysisName, &rec.ApplicationName,
			&rec.ScanID, &rec.ScanConfigName, &rec.TargetURL, &rec.LatestStatus,
			&rec.CreatedOn, &rec.LastModifiedOn,
		); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (*domain.ExtractionRun, error) {
	var run domain.ExtractionRun
	if err := row.Scan(
		&run.ID, &run.StartedAt, &run.FinishedAt,
		&run.AnalysesTotal, &run.AnalysesFailed, &run.RecordCount,
		&run.Status, &run.ArtifactURL, &run.DurationMS,
	); err != nil {
		return nil, err
	}
	return &run, nil
}

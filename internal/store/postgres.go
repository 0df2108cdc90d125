package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hospitech/fcproc/internal/model"
	embedsql "github.com/hospitech/fcproc/internal/sql"
)

// Postgres persists reports in fc.form_reports and resolves FA numbers
// from fc.inference_jobs. The full report is stored as jsonb alongside a
// few promoted columns used for lookups.
type Postgres struct {
	pool *pgxpool.Pool
}

var _ ReportStore = (*Postgres)(nil)
var _ JobStore = (*Postgres)(nil)

func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{pool: pool}
}

func (p *Postgres) PutIfAbsent(ctx context.Context, report *model.Report) error {
	payload, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("marshal report %s: %w", report.JobID, err)
	}

	tag, err := p.pool.Exec(ctx, embedsql.InsertReport,
		report.JobID,
		report.FANumber,
		report.TemplateID,
		report.TemplateName,
		report.ProcessedAt,
		payload,
	)
	if err != nil {
		return fmt.Errorf("insert report %s: %w", report.JobID, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrDuplicate
	}
	return nil
}

func (p *Postgres) FANumber(ctx context.Context, jobID string) (*string, error) {
	var fa *string
	err := p.pool.QueryRow(ctx, embedsql.SelectFANumber, jobID).Scan(&fa)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select fa number for %s: %w", jobID, err)
	}
	return fa, nil
}

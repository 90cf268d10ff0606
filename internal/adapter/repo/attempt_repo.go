package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/Ashis-Mishra07/genAi-sub000/internal/domain"
	"github.com/Ashis-Mishra07/genAi-sub000/internal/infra"
	"github.com/Ashis-Mishra07/genAi-sub000/internal/pipeline"
	"github.com/Ashis-Mishra07/genAi-sub000/internal/sqlinline"
)

// AttemptRepositoryPG stores dispatch traces in PostgreSQL.
type AttemptRepositoryPG struct {
	db infra.SQLExecutor
}

// NewAttemptRepository creates a repository backed by the given executor.
func NewAttemptRepository(db infra.SQLExecutor) *AttemptRepositoryPG {
	return &AttemptRepositoryPG{db: db}
}

// EnsureSchema creates the generation_attempts table when missing.
func (r *AttemptRepositoryPG) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, sqlinline.QEnsureGenerationAttempts); err != nil {
		return fmt.Errorf("ensure generation_attempts: %w", err)
	}
	return nil
}

// RecordAttempts inserts one row per attempt in trace order.
func (r *AttemptRepositoryPG) RecordAttempts(ctx context.Context, trace pipeline.Trace) error {
	if len(trace.Attempts) == 0 {
		return nil
	}
	n := len(trace.Attempts)
	positions := make([]int32, n)
	backends := make([]string, n)
	outcomes := make([]string, n)
	kinds := make([]string, n)
	details := make([]string, n)
	durations := make([]int64, n)
	for i, a := range trace.Attempts {
		positions[i] = int32(i)
		backends[i] = a.Backend
		outcomes[i] = string(a.Outcome)
		kinds[i] = a.Kind
		details[i] = a.Detail
		durations[i] = a.Duration.Milliseconds()
	}
	_, err := r.db.Exec(ctx, sqlinline.QInsertGenerationAttempts,
		trace.RequestID,
		string(trace.Category),
		string(trace.Style),
		string(trace.Artifact),
		positions,
		backends,
		outcomes,
		kinds,
		details,
		durations,
	)
	if err != nil {
		return fmt.Errorf("insert generation attempts: %w", err)
	}
	return nil
}

// ListByRequest returns the stored trace of one request.
func (r *AttemptRepositoryPG) ListByRequest(ctx context.Context, requestID string) ([]domain.ProviderAttempt, error) {
	rows, err := r.db.Query(ctx, sqlinline.QListGenerationAttempts, requestID)
	if err != nil {
		return nil, fmt.Errorf("list generation attempts: %w", err)
	}
	defer rows.Close()

	var out []domain.ProviderAttempt
	for rows.Next() {
		var (
			a          domain.ProviderAttempt
			outcome    string
			durationMS int64
		)
		if err := rows.Scan(&a.Backend, &outcome, &a.Kind, &a.Detail, &durationMS); err != nil {
			return nil, fmt.Errorf("scan generation attempt: %w", err)
		}
		a.Outcome = domain.Outcome(outcome)
		a.Duration = time.Duration(durationMS) * time.Millisecond
		out = append(out, a)
	}
	return out, rows.Err()
}

// BackendStat counts attempts per backend and outcome.
type BackendStat struct {
	Backend string         `json:"backend"`
	Outcome domain.Outcome `json:"outcome"`
	Count   int64          `json:"count"`
}

// OutcomeStats aggregates attempts over the last window.
func (r *AttemptRepositoryPG) OutcomeStats(ctx context.Context, window time.Duration) ([]BackendStat, error) {
	hours := int(window.Hours())
	if hours <= 0 {
		hours = 24
	}
	rows, err := r.db.Query(ctx, sqlinline.QBackendOutcomeStats, hours)
	if err != nil {
		return nil, fmt.Errorf("backend outcome stats: %w", err)
	}
	defer rows.Close()

	var out []BackendStat
	for rows.Next() {
		var (
			s       BackendStat
			outcome string
		)
		if err := rows.Scan(&s.Backend, &outcome, &s.Count); err != nil {
			return nil, fmt.Errorf("scan backend stat: %w", err)
		}
		s.Outcome = domain.Outcome(outcome)
		out = append(out, s)
	}
	return out, rows.Err()
}

var _ pipeline.TraceRecorder = (*AttemptRepositoryPG)(nil)

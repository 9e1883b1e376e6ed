package mysql

import (
	"context"
	"database/sql"
	"time"

	domain "github.com/visionlane/vision-board/internal/domain/faults"
)

type FaultRepository struct {
	db *sql.DB
}

func NewFaultRepository(db *sql.DB) *FaultRepository {
	return &FaultRepository{db: db}
}

// Save inserts one collaborator fault row. Best-effort: callers ignore
// the error except for logging.
func (r *FaultRepository) Save(ctx context.Context, f *domain.Fault) error {
	const q = `
INSERT INTO collaborator_faults (session_id, service, stage, message, created_at)
VALUES (?,?,?,?,?);
`
	created := f.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}
	_, err := r.db.ExecContext(ctx, q,
		stringOrDash(f.SessionID), stringOrDash(f.Service), f.Stage, f.Message, created)
	return err
}

func (r *FaultRepository) ListBySession(ctx context.Context, sessionID string, limit int) ([]*domain.Fault, error) {
	if limit <= 0 {
		limit = 20
	}
	const q = `
SELECT id, session_id, service, stage, message, created_at
FROM collaborator_faults
WHERE session_id=? ORDER BY created_at DESC LIMIT ?;
`
	rows, err := r.db.QueryContext(ctx, q, sessionID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.Fault
	for rows.Next() {
		var f domain.Fault
		if err := rows.Scan(&f.ID, &f.SessionID, &f.Service, &f.Stage, &f.Message, &f.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, &f)
	}
	return out, rows.Err()
}

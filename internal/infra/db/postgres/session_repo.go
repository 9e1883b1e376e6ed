package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"time"

	domain "github.com/visionlane/vision-board/internal/domain/sessions"
)

type SessionRepository struct{ db *sql.DB }

func NewSessionRepository(db *sql.DB) *SessionRepository { return &SessionRepository{db: db} }

// Create inserts the session row and one row per collected answer.
// Creating the same id again is an upsert that replaces the answer
// set, so a retried completion does not trip over the existing row.
func (r *SessionRepository) Create(ctx context.Context, s *domain.Session) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	created := s.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}
	const qs = `
INSERT INTO sessions (id, short_analysis, comprehensive_analysis, email, report_url, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7)
ON CONFLICT (id) DO UPDATE SET updated_at = EXCLUDED.updated_at;`
	if _, err := tx.ExecContext(ctx, qs,
		s.ID, s.ShortAnalysis, s.ComprehensiveAnalysis, s.Email, s.ReportURL, created, created,
	); err != nil {
		return fmt.Errorf("inserting session: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM session_answers WHERE session_id = $1;`, s.ID); err != nil {
		return fmt.Errorf("clearing answers: %w", err)
	}

	const qa = `
INSERT INTO session_answers (session_id, question, answer, position)
VALUES ($1,$2,$3,$4);`
	for _, a := range s.Answers {
		if _, err := tx.ExecContext(ctx, qa, s.ID, a.Question, a.Answer, a.Position); err != nil {
			return fmt.Errorf("inserting answer: %w", err)
		}
	}
	return tx.Commit()
}

func (r *SessionRepository) Get(ctx context.Context, id domain.SessionID) (*domain.Session, error) {
	const q = `
SELECT id, short_analysis, comprehensive_analysis, email, report_url, created_at, updated_at
FROM sessions
WHERE id=$1
LIMIT 1;`
	var s domain.Session
	if err := r.db.QueryRowContext(ctx, q, id).Scan(
		&s.ID, &s.ShortAnalysis, &s.ComprehensiveAnalysis, &s.Email, &s.ReportURL, &s.CreatedAt, &s.UpdatedAt,
	); err != nil {
		return nil, err
	}

	const qa = `
SELECT question, answer, position
FROM session_answers
WHERE session_id=$1
ORDER BY position ASC;`
	rows, err := r.db.QueryContext(ctx, qa, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var a domain.Answer
		if err := rows.Scan(&a.Question, &a.Answer, &a.Position); err != nil {
			return nil, err
		}
		s.Answers = append(s.Answers, a)
	}
	return &s, rows.Err()
}

func (r *SessionRepository) UpdateShortAnalysis(ctx context.Context, id domain.SessionID, analysis string) error {
	const q = `
UPDATE sessions
SET short_analysis = $1, updated_at = $2
WHERE id = $3;`
	_, err := r.db.ExecContext(ctx, q, analysis, time.Now(), id)
	return err
}

func (r *SessionRepository) SaveReport(ctx context.Context, id domain.SessionID, email, analysis, reportURL string) error {
	const q = `
UPDATE sessions
SET email = $1, comprehensive_analysis = $2, report_url = $3, updated_at = $4
WHERE id = $5;`
	_, err := r.db.ExecContext(ctx, q, email, analysis, reportURL, time.Now(), id)
	return err
}

func (r *SessionRepository) Latest(ctx context.Context, limit int) ([]*domain.Session, error) {
	if limit <= 0 {
		limit = 20
	}
	const q = `
SELECT id, short_analysis, comprehensive_analysis, email, report_url, created_at, updated_at
FROM sessions
ORDER BY created_at DESC
LIMIT $1;`
	rows, err := r.db.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.Session
	for rows.Next() {
		var s domain.Session
		if err := rows.Scan(
			&s.ID, &s.ShortAnalysis, &s.ComprehensiveAnalysis, &s.Email, &s.ReportURL, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, &s)
	}
	return out, rows.Err()
}

func (r *SessionRepository) Paginate(ctx context.Context, page, pageSize int) (domain.PaginatedResult, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	const q = `
SELECT id, short_analysis, comprehensive_analysis, email, report_url, created_at, updated_at
FROM sessions
ORDER BY created_at DESC
LIMIT $1 OFFSET $2;`
	rows, err := r.db.QueryContext(ctx, q, pageSize, offset)
	if err != nil {
		return domain.PaginatedResult{}, fmt.Errorf("querying sessions: %w", err)
	}
	defer rows.Close()

	var list []*domain.Session
	for rows.Next() {
		var s domain.Session
		if err := rows.Scan(
			&s.ID, &s.ShortAnalysis, &s.ComprehensiveAnalysis, &s.Email, &s.ReportURL, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return domain.PaginatedResult{}, fmt.Errorf("scanning row: %w", err)
		}
		list = append(list, &s)
	}
	if err = rows.Err(); err != nil {
		return domain.PaginatedResult{}, fmt.Errorf("iterating rows: %w", err)
	}

	var total int64
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM sessions").Scan(&total); err != nil {
		return domain.PaginatedResult{}, fmt.Errorf("getting total count: %w", err)
	}

	return domain.PaginatedResult{
		Data:       list,
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: int(math.Ceil(float64(total) / float64(pageSize))),
	}, nil
}

package sessions

import "context"

// Repository port (interface untuk persistence)
type Repository interface {
	// Create inserts the session row plus one row per answer. Creating
	// an id that already exists replaces its answer set, so a retried
	// completion hand-off is safe.
	Create(ctx context.Context, s *Session) error
	Get(ctx context.Context, id SessionID) (*Session, error)
	UpdateShortAnalysis(ctx context.Context, id SessionID, analysis string) error
	// SaveReport records the email capture together with the
	// comprehensive analysis and the archived report URL.
	SaveReport(ctx context.Context, id SessionID, email, analysis, reportURL string) error
	Latest(ctx context.Context, limit int) ([]*Session, error)
	Paginate(ctx context.Context, page, pageSize int) (PaginatedResult, error)
}

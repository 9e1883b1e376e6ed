package faults

import "time"

// Fault represents a persisted collaborator failure entry. Failures are
// never retried automatically; these rows exist for operator visibility.
type Fault struct {
	ID        int64     `json:"id"`
	SessionID string    `json:"session_id"`
	Service   string    `json:"service"` // analysis | email | storage | persistence
	Stage     string    `json:"stage,omitempty"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

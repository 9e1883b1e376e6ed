package faults

import (
	"context"
)

// Repository defines persistence for collaborator faults
type Repository interface {
	Save(ctx context.Context, f *Fault) error
	ListBySession(ctx context.Context, sessionID string, limit int) ([]*Fault, error)
}

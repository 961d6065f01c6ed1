// Package store persists the terminal draft record: one insert per
// submission, after all upstream work has settled.
package store

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Draft is the stored record summarizing one submitted application draft.
// Payload is the serialized ledger document.
type Draft struct {
	ID            uuid.UUID
	ApplicantName string
	DateOfBirth   string
	Email         string
	TradingBranch string
	Payload       []byte
	CreatedAt     time.Time
}

// DraftStore is implemented by the memory and postgres stores.
type DraftStore interface {
	Insert(ctx context.Context, draft Draft) error
	FindByID(ctx context.Context, id uuid.UUID) (*Draft, error)
}

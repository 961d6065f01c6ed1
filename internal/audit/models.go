package audit

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Actions recorded by the draft pipeline.
const (
	ActionPersistFailed = "verification.persist_failed"
	ActionDraftCreated  = "draft.created"
	ActionDraftFailed   = "draft.failed"
)

// Event captures one notable action in the submission pipeline. Keep it
// transport-agnostic so stores and sinks can fan out.
type Event struct {
	ID        uuid.UUID
	Timestamp time.Time
	RequestID string
	Table     string
	Action    string
	Detail    string
	Payload   json.RawMessage
}

package audit

import (
	"encoding/json"
	"time"
)

// wirePayload is the JSON structure published to Kafka. Field names match
// Event so consumers can deserialize without a schema registry.
type wirePayload struct {
	ID        string          `json:"ID"`
	Timestamp string          `json:"Timestamp"`
	RequestID string          `json:"RequestID,omitempty"`
	Table     string          `json:"Table,omitempty"`
	Action    string          `json:"Action"`
	Detail    string          `json:"Detail,omitempty"`
	Payload   json.RawMessage `json:"Payload,omitempty"`
}

func marshalEvent(event Event) ([]byte, error) {
	return json.Marshal(wirePayload{
		ID:        event.ID.String(),
		Timestamp: event.Timestamp.Format(time.RFC3339Nano),
		RequestID: event.RequestID,
		Table:     event.Table,
		Action:    event.Action,
		Detail:    event.Detail,
		Payload:   event.Payload,
	})
}

package audit_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loandraft/internal/audit"
	"loandraft/internal/audit/store/memory"
	"loandraft/internal/platform/logger"
	"loandraft/pkg/requestcontext"
)

type captureSink struct {
	keys   []string
	values [][]byte
	err    error
}

func (s *captureSink) Publish(_ context.Context, key string, value []byte) error {
	if s.err != nil {
		return s.err
	}
	s.keys = append(s.keys, key)
	s.values = append(s.values, value)
	return nil
}

func TestRecordFillsDefaultsAndStores(t *testing.T) {
	store := memory.NewInMemoryStore()
	sink := &captureSink{}
	recorder := audit.NewRecorder(store, sink, logger.NewNop())

	ctx := requestcontext.WithRequestID(context.Background(), "req-42")
	recorder.Record(ctx, audit.Event{
		Action:  audit.ActionPersistFailed,
		Table:   "phone_verifications",
		Detail:  "connection refused",
		Payload: json.RawMessage(`{"number":"0211234567"}`),
	})

	events, err := store.ListByAction(context.Background(), audit.ActionPersistFailed)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.NotZero(t, events[0].ID)
	assert.False(t, events[0].Timestamp.IsZero())
	assert.Equal(t, "req-42", events[0].RequestID)
	assert.Equal(t, "phone_verifications", events[0].Table)

	require.Len(t, sink.values, 1)
	var published map[string]any
	require.NoError(t, json.Unmarshal(sink.values[0], &published))
	assert.Equal(t, audit.ActionPersistFailed, published["Action"])
	assert.Equal(t, events[0].ID.String(), sink.keys[0])
}

func TestRecordSurvivesSinkFailure(t *testing.T) {
	store := memory.NewInMemoryStore()
	sink := &captureSink{err: errors.New("broker unreachable")}
	recorder := audit.NewRecorder(store, sink, logger.NewNop())

	recorder.Record(context.Background(), audit.Event{Action: audit.ActionDraftCreated})

	events, err := store.ListByAction(context.Background(), audit.ActionDraftCreated)
	require.NoError(t, err)
	assert.Len(t, events, 1)
}

func TestRecordWithoutSink(t *testing.T) {
	store := memory.NewInMemoryStore()
	recorder := audit.NewRecorder(store, nil, logger.NewNop())

	recorder.Record(context.Background(), audit.Event{Action: audit.ActionDraftFailed})

	events, err := store.ListByAction(context.Background(), audit.ActionDraftFailed)
	require.NoError(t, err)
	assert.Len(t, events, 1)
}

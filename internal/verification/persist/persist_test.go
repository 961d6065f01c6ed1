package persist

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loandraft/internal/audit"
	auditmemory "loandraft/internal/audit/store/memory"
	"loandraft/internal/platform/logger"
	"loandraft/internal/verification"
	"loandraft/internal/verification/store"
)

type flakyStore struct {
	*store.InMemory
	phoneErr error
}

func (s *flakyStore) UpdatePhone(ctx context.Context, ref int64, upd store.ContactPhoneUpdate) error {
	if s.phoneErr != nil {
		return s.phoneErr
	}
	return s.InMemory.UpdatePhone(ctx, ref, upd)
}

func ref(v int64) *int64 { return &v }

func newAdapter(contacts store.ContactStore) (*Adapter, *auditmemory.InMemoryStore) {
	auditStore := auditmemory.NewInMemoryStore()
	recorder := audit.NewRecorder(auditStore, nil, logger.NewNop())
	return New(contacts, recorder, logger.NewNop(), nil), auditStore
}

func succeededSet() verification.ResultSet {
	set := verification.NewResultSet()
	set[verification.KindMobile] = verification.Result{
		Kind:   verification.KindMobile,
		Status: verification.StatusSucceeded,
		Phone:  &verification.PhoneResult{Success: true, FormattedNational: "021 123 4567"},
	}
	set[verification.KindEmail] = verification.Result{
		Kind:   verification.KindEmail,
		Status: verification.StatusSucceeded,
		Email:  &verification.EmailResult{Success: true, EmailAddress: "person@example.org"},
	}
	set[verification.KindResidentialAddress] = verification.Result{
		Kind:    verification.KindResidentialAddress,
		Status:  verification.StatusSucceeded,
		Address: &verification.AddressResult{Pxid: "2-abc", RawPayload: []byte(`{"pxid":"2-abc"}`)},
	}
	return set
}

func TestPersistAllWritesSucceededWithRefs(t *testing.T) {
	contacts := store.NewInMemory()
	adapter, _ := newAdapter(contacts)

	refs := verification.Refs{
		Mobile:             ref(1),
		Email:              ref(2),
		ResidentialAddress: ref(3),
	}
	batch := adapter.PersistAll(context.Background(), refs, succeededSet())

	assert.Len(t, batch.Written, 3)
	assert.Empty(t, batch.Failed)

	phone, err := contacts.PhoneRecord(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "021", phone.NetworkCode)
	assert.Equal(t, "1234567", phone.LocalNumber)
	assert.True(t, phone.Verified)

	email, err := contacts.EmailRecord(context.Background(), 2)
	require.NoError(t, err)
	assert.True(t, email.VerificationTriggered)
	assert.Equal(t, "person@example.org", email.VerifiedEmail)

	address, err := contacts.AddressRecord(context.Background(), 3)
	require.NoError(t, err)
	assert.JSONEq(t, `{"pxid":"2-abc"}`, string(address.RawPayload))
}

func TestPersistAllSkipsNilRefsAndNonSucceeded(t *testing.T) {
	contacts := store.NewInMemory()
	adapter, _ := newAdapter(contacts)

	set := succeededSet()
	set[verification.KindEmail] = verification.Result{
		Kind:   verification.KindEmail,
		Status: verification.StatusFailed,
		Err:    errors.New("provider down"),
	}

	// Mobile succeeded but has no ref; email failed; residential has both.
	refs := verification.Refs{Email: ref(2), ResidentialAddress: ref(3)}
	batch := adapter.PersistAll(context.Background(), refs, set)

	assert.Equal(t, 1, batch.Attempted())
	require.Len(t, batch.Written, 1)
	assert.Equal(t, verification.KindResidentialAddress, batch.Written[0].Kind)

	_, err := contacts.EmailRecord(context.Background(), 2)
	assert.Error(t, err)
}

func TestPersistAllAuditsFailures(t *testing.T) {
	contacts := &flakyStore{InMemory: store.NewInMemory(), phoneErr: errors.New("deadlock detected")}
	adapter, auditStore := newAdapter(contacts)

	refs := verification.Refs{Mobile: ref(1), Email: ref(2)}
	batch := adapter.PersistAll(context.Background(), refs, succeededSet())

	require.Len(t, batch.Failed, 1)
	assert.Equal(t, store.TablePhone, batch.Failed[0].Table)
	assert.Len(t, batch.Written, 1)

	events, err := auditStore.ListByAction(context.Background(), audit.ActionPersistFailed)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, store.TablePhone, events[0].Table)
	assert.Contains(t, events[0].Detail, "deadlock")
	assert.NotEmpty(t, events[0].Payload)
}

func TestSplitNational(t *testing.T) {
	tests := []struct {
		in      string
		network string
		local   string
	}{
		{"021 123 4567", "021", "1234567"},
		{"04 385 8000", "04", "3858000"},
		{"0211234567", "", ""},
		{"", "", ""},
	}
	for _, tt := range tests {
		network, local := splitNational(tt.in)
		assert.Equal(t, tt.network, network, tt.in)
		assert.Equal(t, tt.local, local, tt.in)
	}
}

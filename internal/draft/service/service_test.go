package service

import (
	"context"
	"encoding/json"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loandraft/internal/audit"
	auditmemory "loandraft/internal/audit/store/memory"
	"loandraft/internal/draft/models"
	"loandraft/internal/draft/store"
	"loandraft/internal/ledger"
	"loandraft/internal/platform/logger"
	"loandraft/internal/verification"
	"loandraft/internal/verification/orchestrator"
	"loandraft/internal/verification/persist"
	vstore "loandraft/internal/verification/store"
	domainerrors "loandraft/pkg/domain-errors"
	"loandraft/pkg/requestcontext"
)

var testNow = time.Date(2024, 6, 15, 9, 30, 0, 0, time.UTC)

type countingClients struct {
	phoneCalls   atomic.Int64
	emailCalls   atomic.Int64
	addressCalls atomic.Int64
}

func (c *countingClients) VerifyMobile(_ context.Context, number string) (*verification.PhoneResult, error) {
	c.phoneCalls.Add(1)
	return &verification.PhoneResult{Success: true, RawNational: number, FormattedNational: "021 123 4567"}, nil
}

func (c *countingClients) VerifyLandline(_ context.Context, number string) (*verification.PhoneResult, error) {
	c.phoneCalls.Add(1)
	return &verification.PhoneResult{Success: true, RawNational: number}, nil
}

func (c *countingClients) Verify(_ context.Context, address string) (*verification.EmailResult, error) {
	c.emailCalls.Add(1)
	return &verification.EmailResult{Success: true, EmailAddress: address}, nil
}

func (c *countingClients) Lookup(_ context.Context, pxid string) (*verification.AddressResult, error) {
	c.addressCalls.Add(1)
	return &verification.AddressResult{Pxid: pxid, RawPayload: []byte(`{"pxid":"` + pxid + `"}`)}, nil
}

type harness struct {
	service  *Service
	clients  *countingClients
	contacts *vstore.InMemory
	drafts   *store.InMemory
	audits   *auditmemory.InMemoryStore
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	clients := &countingClients{}
	contacts := vstore.NewInMemory()
	drafts := store.NewInMemory()
	audits := auditmemory.NewInMemoryStore()
	nop := logger.NewNop()

	recorder := audit.NewRecorder(audits, nil, nop)
	verifier := orchestrator.New(clients, clients, clients, time.Second, nop, nil)
	persister := persist.New(contacts, recorder, nop, nil)

	return &harness{
		service:  New(verifier, persister, contacts, drafts, recorder, nop, nil),
		clients:  clients,
		contacts: contacts,
		drafts:   drafts,
		audits:   audits,
	}
}

func testCtx() context.Context {
	return requestcontext.WithTime(context.Background(), testNow)
}

func ref(v int64) *int64 { return &v }

func baseProfile() models.ApplicantProfile {
	return models.ApplicantProfile{
		Personal: models.PersonalDetails{
			Title:       "Mr",
			FirstName:   "James",
			LastName:    "Cook",
			GenderCode:  "M",
			DateOfBirth: "1985-03-12",
		},
		Contact: models.ContactDetails{
			AccommodationType: "board",
			WorkPhoneNumber:   "",
		},
		Preliminary: models.PreliminaryDetails{
			NZCitizen:       true,
			LoanPurposeCode: "DCN",
			TradingBranch:   "WLG",
		},
		Employment: models.EmploymentDetails{TypeCode: "FT"},
	}
}

func singleRequest() models.SingleDraftRequest {
	return models.SingleDraftRequest{
		Applicant: baseProfile(),
		Loan:      models.LoanDetails{Term: "24", PaymentFrequency: "F", TotalAmount: "8000.00", CostOfGoods: "7500.00"},
	}
}

func TestSubmitSingleAddressOnlyScenario(t *testing.T) {
	h := newHarness(t)

	req := singleRequest()
	req.Applicant.Contact.ResidentialAddress = "12 Example Street"
	req.Applicant.Contact.ResidentialPxid = "3-1qMeWeX2z5FFv95fNhcpee"
	req.Applicant.Refs.ResidentialAddress = ref(30)

	draft, err := h.service.SubmitSingle(testCtx(), req)
	require.NoError(t, err)
	require.NotNil(t, draft)

	// Exactly one verification call was issued, for the address.
	assert.EqualValues(t, 0, h.clients.phoneCalls.Load())
	assert.EqualValues(t, 0, h.clients.emailCalls.Load())
	assert.EqualValues(t, 1, h.clients.addressCalls.Load())

	// The address write landed; nothing else did.
	rec, err := h.contacts.AddressRecord(context.Background(), 30)
	require.NoError(t, err)
	assert.Contains(t, string(rec.RawPayload), "3-1qMeWeX2z5FFv95fNhcpee")

	var payload ledger.DraftPayload
	require.NoError(t, json.Unmarshal(draft.Payload, &payload))
	contacts := payload.Included[0].Attributes.ClientMaint.ContactDetails
	assert.Empty(t, contacts.Mobile)
	assert.Empty(t, contacts.Phone)
	assert.Empty(t, contacts.Email)
}

func TestSubmitSinglePersistsVerifiedContacts(t *testing.T) {
	h := newHarness(t)

	req := singleRequest()
	req.Applicant.Contact.MobileNumber = "0211234567"
	req.Applicant.Contact.EmailAddress = "james@example.org"
	req.Applicant.Refs.Mobile = ref(1)
	req.Applicant.Refs.Email = ref(2)

	draft, err := h.service.SubmitSingle(testCtx(), req)
	require.NoError(t, err)

	phone, err := h.contacts.PhoneRecord(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "021", phone.NetworkCode)

	var payload ledger.DraftPayload
	require.NoError(t, json.Unmarshal(draft.Payload, &payload))
	contacts := payload.Included[0].Attributes.ClientMaint.ContactDetails
	require.Len(t, contacts.Mobile, 1)
	assert.Equal(t, "1234567", contacts.Mobile[0].Number)
	require.Len(t, contacts.Email, 1)
	assert.Equal(t, "james@example.org", contacts.Email[0].Address)
}

func TestSubmitSingleSkipsVerificationWithoutRef(t *testing.T) {
	h := newHarness(t)

	// Mobile verifies but has no record ref: the call happens, no write does.
	req := singleRequest()
	req.Applicant.Contact.MobileNumber = "0211234567"

	draft, err := h.service.SubmitSingle(testCtx(), req)
	require.NoError(t, err)

	assert.EqualValues(t, 1, h.clients.phoneCalls.Load())
	_, err = h.contacts.PhoneRecord(context.Background(), 1)
	assert.Error(t, err)

	var payload ledger.DraftPayload
	require.NoError(t, json.Unmarshal(draft.Payload, &payload))
	assert.Empty(t, payload.Included[0].Attributes.ClientMaint.ContactDetails.Mobile)
}

func TestSubmitSingleDraftRecordFields(t *testing.T) {
	h := newHarness(t)

	req := singleRequest()
	req.Applicant.Contact.WorkPhoneNumber = "04 385 8000"

	draft, err := h.service.SubmitSingle(testCtx(), req)
	require.NoError(t, err)

	assert.Equal(t, "Mr J. Cook", draft.ApplicantName)
	assert.Equal(t, "1985-03-12", draft.DateOfBirth)
	// The submission email carries the work-phone value; see
	// models.ContactDetails.SubmissionEmail.
	assert.Equal(t, "04 385 8000", draft.Email)
	assert.Equal(t, "WLG", draft.TradingBranch)
	assert.Equal(t, testNow, draft.CreatedAt)

	stored, err := h.drafts.FindByID(context.Background(), draft.ID)
	require.NoError(t, err)
	assert.Equal(t, draft.Payload, stored.Payload)

	events, err := h.audits.ListByAction(context.Background(), audit.ActionDraftCreated)
	require.NoError(t, err)
	assert.Len(t, events, 1)
}

func TestSubmitSingleLookupMissIsFatal(t *testing.T) {
	h := newHarness(t)

	req := singleRequest()
	req.Applicant.Preliminary.LoanPurposeCode = "XXX"

	_, err := h.service.SubmitSingle(testCtx(), req)
	require.Error(t, err)
	assert.True(t, domainerrors.Is(err, domainerrors.CodeLookupMiss))

	events, listErr := h.audits.ListByAction(context.Background(), audit.ActionDraftFailed)
	require.NoError(t, listErr)
	assert.Len(t, events, 1)
}

func TestSubmitJointRunsBothLanesAndIgnoresFlags(t *testing.T) {
	h := newHarness(t)

	prime := baseProfile()
	prime.Contact.MobileNumber = "0211234567"
	prime.Refs.Mobile = ref(1)
	// Already marked complete: the joint flow re-verifies anyway.
	prime.CompletionFlags.Mobile = true

	joint := baseProfile()
	joint.Personal.Title = "Mrs"
	joint.Personal.FirstName = "Ana"
	joint.Contact.MobileNumber = "0227654321"
	joint.Refs.Mobile = ref(2)

	req := models.JointDraftRequest{
		Prime: prime,
		Joint: joint,
		Loan:  models.LoanDetails{Term: "36", TotalAmount: "20000.00", CostOfGoods: "18000.00"},
		Vehicle: models.VehicleSecurity{
			RegistrationNumber: "FAM958",
		},
	}

	draft, err := h.service.SubmitJoint(testCtx(), req)
	require.NoError(t, err)

	assert.EqualValues(t, 2, h.clients.phoneCalls.Load())

	var payload ledger.DraftPayload
	require.NoError(t, json.Unmarshal(draft.Payload, &payload))

	var clients, securities int
	for _, entry := range payload.Included {
		switch entry.Type {
		case ledger.TypeAssociatedClient:
			clients++
		case ledger.TypeSecurity:
			securities++
		}
	}
	assert.Equal(t, 2, clients)
	assert.Equal(t, 1, securities)
	assert.Len(t, payload.Data.Relationships.Securities.Data, 1)
	assert.Equal(t, "Mr J. Cook & Mrs A. Cook", draft.ApplicantName)
}

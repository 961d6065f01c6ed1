package orchestrator

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loandraft/internal/platform/logger"
	"loandraft/internal/verification"
)

type fakePhones struct {
	mobileCalls   atomic.Int64
	landlineCalls atomic.Int64
	mobileErr     error
	landlineErr   error
}

func (f *fakePhones) VerifyMobile(_ context.Context, number string) (*verification.PhoneResult, error) {
	f.mobileCalls.Add(1)
	if f.mobileErr != nil {
		return nil, f.mobileErr
	}
	return &verification.PhoneResult{Success: true, RawNational: number}, nil
}

func (f *fakePhones) VerifyLandline(_ context.Context, number string) (*verification.PhoneResult, error) {
	f.landlineCalls.Add(1)
	if f.landlineErr != nil {
		return nil, f.landlineErr
	}
	return &verification.PhoneResult{Success: true, RawNational: number}, nil
}

type fakeEmails struct {
	calls atomic.Int64
	err   error
}

func (f *fakeEmails) Verify(_ context.Context, address string) (*verification.EmailResult, error) {
	f.calls.Add(1)
	if f.err != nil {
		return nil, f.err
	}
	return &verification.EmailResult{Success: true, EmailAddress: address}, nil
}

type fakeAddresses struct {
	calls atomic.Int64
	err   error
}

func (f *fakeAddresses) Lookup(_ context.Context, pxid string) (*verification.AddressResult, error) {
	f.calls.Add(1)
	if f.err != nil {
		return nil, f.err
	}
	return &verification.AddressResult{Pxid: pxid, FullAddress: "12 Example Street"}, nil
}

func newTestOrchestrator(p *fakePhones, e *fakeEmails, a *fakeAddresses) *Orchestrator {
	return New(p, e, a, time.Second, logger.NewNop(), nil)
}

func fullContact() verification.ContactFields {
	return verification.ContactFields{
		MobileNumber:    "0211234567",
		WorkPhoneNumber: "043858000",
		EmailAddress:    "person@example.org",
		ResidentialPxid: "2-residential",
		MailingPxid:     "2-mailing",
	}
}

func TestRunAllPresent(t *testing.T) {
	phones := &fakePhones{}
	emails := &fakeEmails{}
	addresses := &fakeAddresses{}
	o := newTestOrchestrator(phones, emails, addresses)

	results := o.Run(context.Background(), fullContact(), verification.CompletionFlags{}, Single)

	for _, kind := range verification.Kinds {
		assert.True(t, results.Succeeded(kind), "expected %s to succeed", kind)
	}
	assert.EqualValues(t, 1, phones.mobileCalls.Load())
	assert.EqualValues(t, 1, phones.landlineCalls.Load())
	assert.EqualValues(t, 1, emails.calls.Load())
	assert.EqualValues(t, 2, addresses.calls.Load())
}

func TestRunEmptyFieldsStayAbsent(t *testing.T) {
	phones := &fakePhones{}
	emails := &fakeEmails{}
	addresses := &fakeAddresses{}
	o := newTestOrchestrator(phones, emails, addresses)

	contact := verification.ContactFields{MobileNumber: "0211234567"}
	results := o.Run(context.Background(), contact, verification.CompletionFlags{}, Single)

	assert.True(t, results.Succeeded(verification.KindMobile))
	assert.Equal(t, verification.StatusAbsent, results[verification.KindEmail].Status)
	assert.Equal(t, verification.StatusAbsent, results[verification.KindResidentialAddress].Status)
	assert.EqualValues(t, 0, emails.calls.Load())
	assert.EqualValues(t, 0, addresses.calls.Load())
}

func TestRunSingleHonoursCompletionFlags(t *testing.T) {
	phones := &fakePhones{}
	emails := &fakeEmails{}
	addresses := &fakeAddresses{}
	o := newTestOrchestrator(phones, emails, addresses)

	flags := verification.CompletionFlags{Mobile: true, Email: true}
	results := o.Run(context.Background(), fullContact(), flags, Single)

	assert.Equal(t, verification.StatusAbsent, results[verification.KindMobile].Status)
	assert.Equal(t, verification.StatusAbsent, results[verification.KindEmail].Status)
	assert.True(t, results.Succeeded(verification.KindWorkPhone))
	assert.EqualValues(t, 0, phones.mobileCalls.Load())
	assert.EqualValues(t, 0, emails.calls.Load())
}

func TestRunJointIgnoresCompletionFlags(t *testing.T) {
	phones := &fakePhones{}
	emails := &fakeEmails{}
	addresses := &fakeAddresses{}
	o := newTestOrchestrator(phones, emails, addresses)

	flags := verification.CompletionFlags{
		Mobile:             true,
		WorkPhone:          true,
		Email:              true,
		ResidentialAddress: true,
		MailingAddress:     true,
	}
	results := o.Run(context.Background(), fullContact(), flags, Joint)

	for _, kind := range verification.Kinds {
		assert.True(t, results.Succeeded(kind), "expected %s to succeed", kind)
	}
	assert.EqualValues(t, 1, phones.mobileCalls.Load())
	assert.EqualValues(t, 2, addresses.calls.Load())
}

func TestRunShortCircuitsAfterRepeatedProviderFailures(t *testing.T) {
	emails := &fakeEmails{err: errors.New("provider down")}
	o := newTestOrchestrator(&fakePhones{}, emails, &fakeAddresses{})

	contact := verification.ContactFields{EmailAddress: "person@example.org"}
	for i := 0; i < 5; i++ {
		o.Run(context.Background(), contact, verification.CompletionFlags{}, Single)
	}
	require.EqualValues(t, 5, emails.calls.Load())

	// Breaker is open now: the kind still fails, but no call goes out.
	results := o.Run(context.Background(), contact, verification.CompletionFlags{}, Single)
	assert.Equal(t, verification.StatusFailed, results[verification.KindEmail].Status)
	assert.EqualValues(t, 5, emails.calls.Load())
}

type panickingEmails struct {
	calls atomic.Int64
}

func (p *panickingEmails) Verify(context.Context, string) (*verification.EmailResult, error) {
	p.calls.Add(1)
	panic("email provider client bug")
}

func TestRunPanickingProviderFoldsToFailed(t *testing.T) {
	emails := &panickingEmails{}
	o := New(&fakePhones{}, emails, &fakeAddresses{}, time.Second, logger.NewNop(), nil)

	results := o.Run(context.Background(), fullContact(), verification.CompletionFlags{}, Single)

	require.EqualValues(t, 1, emails.calls.Load())
	require.Equal(t, verification.StatusFailed, results[verification.KindEmail].Status)
	assert.Equal(t, verification.KindEmail, results[verification.KindEmail].Kind)
	assert.ErrorContains(t, results[verification.KindEmail].Err, "panicked")

	// The panic must not leak a zero-value entry, and the other kinds
	// must be unaffected.
	_, leaked := results[verification.Kind("")]
	assert.False(t, leaked)
	assert.True(t, results.Succeeded(verification.KindMobile))
	assert.True(t, results.Succeeded(verification.KindResidentialAddress))
}

func TestRunFailureDoesNotBlockOthers(t *testing.T) {
	phones := &fakePhones{mobileErr: errors.New("provider down")}
	emails := &fakeEmails{err: errors.New("timeout")}
	addresses := &fakeAddresses{}
	o := newTestOrchestrator(phones, emails, addresses)

	results := o.Run(context.Background(), fullContact(), verification.CompletionFlags{}, Single)

	require.Equal(t, verification.StatusFailed, results[verification.KindMobile].Status)
	require.Equal(t, verification.StatusFailed, results[verification.KindEmail].Status)
	assert.Error(t, results[verification.KindMobile].Err)
	assert.True(t, results.Succeeded(verification.KindWorkPhone))
	assert.True(t, results.Succeeded(verification.KindResidentialAddress))
	assert.True(t, results.Succeeded(verification.KindMailingAddress))
}

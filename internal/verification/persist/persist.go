// Package persist writes successful verification outcomes back onto the
// applicant's contact records. Failures are collected and audited, never
// returned: a broken write must not sink the submission.
package persist

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"loandraft/internal/audit"
	"loandraft/internal/platform/metrics"
	"loandraft/internal/verification"
	"loandraft/internal/verification/store"
	"loandraft/pkg/requestcontext"
)

// Adapter maps verification results to contact-record updates.
type Adapter struct {
	store   store.ContactStore
	auditor *audit.Recorder
	logger  *slog.Logger
	metrics *metrics.Metrics
}

func New(contacts store.ContactStore, auditor *audit.Recorder, logger *slog.Logger, m *metrics.Metrics) *Adapter {
	return &Adapter{store: contacts, auditor: auditor, logger: logger, metrics: m}
}

// WriteOutcome records how one persistence attempt went.
type WriteOutcome struct {
	Kind  verification.Kind
	Ref   int64
	Table string
	Err   error
}

// BatchResult aggregates the outcomes of one PersistAll call.
type BatchResult struct {
	Written []WriteOutcome
	Failed  []WriteOutcome
}

// Attempted reports how many writes were issued.
func (b BatchResult) Attempted() int { return len(b.Written) + len(b.Failed) }

// PersistAll writes every succeeded result that has a record ref, all kinds
// concurrently. Results without a ref, and results that are absent or
// failed, are skipped without comment.
func (a *Adapter) PersistAll(ctx context.Context, refs verification.Refs, results verification.ResultSet) BatchResult {
	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		batch BatchResult
	)

	collect := func(outcome WriteOutcome) {
		mu.Lock()
		defer mu.Unlock()
		if outcome.Err != nil {
			batch.Failed = append(batch.Failed, outcome)
			return
		}
		batch.Written = append(batch.Written, outcome)
	}

	for _, kind := range verification.Kinds {
		ref := refs.Ref(kind)
		if ref == nil || !results.Succeeded(kind) {
			continue
		}

		wg.Add(1)
		go func(kind verification.Kind, ref int64, result verification.Result) {
			defer wg.Done()
			outcome := a.write(ctx, kind, ref, result)
			if outcome.Err != nil {
				a.reportFailure(ctx, outcome, result)
			}
			collect(outcome)
		}(kind, *ref, results[kind])
	}

	wg.Wait()
	return batch
}

func (a *Adapter) write(ctx context.Context, kind verification.Kind, ref int64, result verification.Result) WriteOutcome {
	outcome := WriteOutcome{Kind: kind, Ref: ref}

	switch kind {
	case verification.KindMobile, verification.KindWorkPhone:
		outcome.Table = store.TablePhone
		outcome.Err = a.store.UpdatePhone(ctx, ref, phoneUpdate(ctx, result.Phone))
	case verification.KindEmail:
		outcome.Table = store.TableEmail
		outcome.Err = a.store.UpdateEmail(ctx, ref, emailUpdate(result.Email))
	case verification.KindResidentialAddress, verification.KindMailingAddress:
		outcome.Table = store.TableAddress
		outcome.Err = a.store.UpdateAddress(ctx, ref, store.ContactAddressUpdate{
			RawPayload: result.Address.RawPayload,
		})
	}
	return outcome
}

func phoneUpdate(ctx context.Context, phone *verification.PhoneResult) store.ContactPhoneUpdate {
	networkCode, localNumber := splitNational(phone.FormattedNational)
	raw, _ := json.Marshal(phone)
	return store.ContactPhoneUpdate{
		Verified:               phone.Success,
		LineType:               phone.LineType,
		LineStatus:             phone.LineStatus,
		LineStatusReason:       phone.LineStatusReason,
		CountryCode:            phone.CountryCode,
		CallingCode:            phone.CallingCode,
		RawNational:            phone.RawNational,
		FormattedNational:      phone.FormattedNational,
		RawInternational:       phone.RawInternational,
		FormattedInternational: phone.FormattedInternational,
		NotVerifiedCode:        phone.NotVerifiedCode,
		NotVerifiedReason:      phone.NotVerifiedReason,
		NetworkCode:            networkCode,
		LocalNumber:            localNumber,
		VerifiedAt:             requestcontext.Now(ctx),
		RawPayload:             raw,
	}
}

func emailUpdate(email *verification.EmailResult) store.ContactEmailUpdate {
	raw, _ := json.Marshal(email)
	return store.ContactEmailUpdate{
		VerifiedEmail:         email.EmailAddress,
		Account:               email.Account,
		Domain:                email.Domain,
		ProviderDomain:        email.ProviderDomain,
		IsDisposable:          email.IsDisposable,
		IsRole:                email.IsRole,
		IsPublic:              email.IsPublic,
		IsCatchAll:            email.IsCatchAll,
		NotVerifiedCode:       email.NotVerifiedCode,
		NotVerifiedReason:     email.NotVerifiedReason,
		Success:               email.Success,
		VerificationTriggered: true,
		RawPayload:            raw,
	}
}

func (a *Adapter) reportFailure(ctx context.Context, outcome WriteOutcome, result verification.Result) {
	a.logger.ErrorContext(ctx, "verification persist failed",
		"kind", outcome.Kind,
		"table", outcome.Table,
		"ref", outcome.Ref,
		"error", outcome.Err,
	)
	a.metrics.IncPersistenceFailure(outcome.Table)

	payload, err := json.Marshal(result)
	if err != nil {
		payload = nil
	}
	a.auditor.Record(ctx, audit.Event{
		Table:   outcome.Table,
		Action:  audit.ActionPersistFailed,
		Detail:  outcome.Err.Error(),
		Payload: payload,
	})
}

// Package orchestrator fans the verification calls for one applicant out to
// the third-party providers and collects the outcomes into a ResultSet.
package orchestrator

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"loandraft/internal/verification"
	"loandraft/internal/verification/metrics"
	"loandraft/pkg/platform/circuit"
)

// PhoneVerifier verifies phone numbers against the phone provider.
type PhoneVerifier interface {
	VerifyMobile(ctx context.Context, number string) (*verification.PhoneResult, error)
	VerifyLandline(ctx context.Context, number string) (*verification.PhoneResult, error)
}

// EmailVerifier verifies email addresses against the email provider.
type EmailVerifier interface {
	Verify(ctx context.Context, address string) (*verification.EmailResult, error)
}

// AddressLookup resolves an address identifier to its full record.
type AddressLookup interface {
	Lookup(ctx context.Context, pxid string) (*verification.AddressResult, error)
}

// Mode selects the skip policy. Single-applicant submissions honour the
// completion flags from earlier attempts; joint submissions always re-run
// every verification with a present input.
type Mode int

const (
	Single Mode = iota
	Joint
)

// Orchestrator runs all applicable verification calls for one applicant
// concurrently. A verification failing never blocks or fails the others.
type Orchestrator struct {
	phones    PhoneVerifier
	emails    EmailVerifier
	addresses AddressLookup

	callTimeout time.Duration
	logger      *slog.Logger
	metrics     *metrics.Metrics

	// One breaker per provider. Phone kinds share a provider, as do the
	// address kinds.
	breakers map[verification.Kind]*circuit.Breaker
}

func New(phones PhoneVerifier, emails EmailVerifier, addresses AddressLookup, callTimeout time.Duration, logger *slog.Logger, m *metrics.Metrics) *Orchestrator {
	if callTimeout <= 0 {
		callTimeout = 10 * time.Second
	}

	phoneBreaker := circuit.New("phone", circuit.WithCooldown(30*time.Second))
	emailBreaker := circuit.New("email", circuit.WithCooldown(30*time.Second))
	addressBreaker := circuit.New("address", circuit.WithCooldown(30*time.Second))

	return &Orchestrator{
		phones:      phones,
		emails:      emails,
		addresses:   addresses,
		callTimeout: callTimeout,
		logger:      logger,
		metrics:     m,
		breakers: map[verification.Kind]*circuit.Breaker{
			verification.KindMobile:             phoneBreaker,
			verification.KindWorkPhone:          phoneBreaker,
			verification.KindEmail:              emailBreaker,
			verification.KindResidentialAddress: addressBreaker,
			verification.KindMailingAddress:     addressBreaker,
		},
	}
}

// Run issues one call per verification kind whose input is present and, in
// single mode, not already completed. Calls run concurrently; each outcome is
// folded into the returned ResultSet. Skipped kinds stay absent.
func (o *Orchestrator) Run(ctx context.Context, contact verification.ContactFields, flags verification.CompletionFlags, mode Mode) verification.ResultSet {
	results := verification.NewResultSet()

	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)

	record := func(res verification.Result) {
		mu.Lock()
		results[res.Kind] = res
		mu.Unlock()
	}

	for _, kind := range verification.Kinds {
		value := contact.Value(kind)
		if value == "" {
			continue
		}
		if mode == Single && flags.Done(kind) {
			continue
		}

		wg.Add(1)
		go func(kind verification.Kind, value string) {
			defer wg.Done()
			started := time.Now()
			res := o.guardedCall(ctx, kind, value)
			o.metrics.ObserveOutcome(string(kind), string(res.Status), time.Since(started))
			if res.Status == verification.StatusFailed {
				o.logger.WarnContext(ctx, "verification failed",
					"kind", kind,
					"error", res.Err,
				)
			}
			record(res)
		}(kind, value)
	}

	wg.Wait()
	return results
}

// guardedCall runs the provider call behind the provider's circuit breaker.
// An open breaker fails the kind immediately instead of waiting out another
// timeout against a provider that is already known to be down.
func (o *Orchestrator) guardedCall(ctx context.Context, kind verification.Kind, value string) verification.Result {
	breaker := o.breakers[kind]
	if breaker.IsOpen() {
		return failed(kind, fmt.Errorf("%s verification skipped: provider circuit open", kind))
	}

	res := o.call(ctx, kind, value)
	switch res.Status {
	case verification.StatusFailed:
		if _, change := breaker.RecordFailure(); change.Opened {
			o.logger.WarnContext(ctx, "verification circuit opened", "provider", breaker.Name())
		}
	case verification.StatusSucceeded:
		if _, change := breaker.RecordSuccess(); change.Closed {
			o.logger.InfoContext(ctx, "verification circuit closed", "provider", breaker.Name())
		}
	}
	return res
}

// call dispatches one provider call. The return value is named so the
// recover path can overwrite a result that never came back from the client.
func (o *Orchestrator) call(ctx context.Context, kind verification.Kind, value string) (res verification.Result) {
	ctx, cancel := context.WithTimeout(ctx, o.callTimeout)
	defer cancel()

	res.Kind = kind

	defer func() {
		if r := recover(); r != nil {
			res.Status = verification.StatusFailed
			res.Err = fmt.Errorf("verification %s panicked: %v", kind, r)
		}
	}()

	switch kind {
	case verification.KindMobile:
		phone, err := o.phones.VerifyMobile(ctx, value)
		return fold(kind, phone, err)
	case verification.KindWorkPhone:
		phone, err := o.phones.VerifyLandline(ctx, value)
		return fold(kind, phone, err)
	case verification.KindEmail:
		email, err := o.emails.Verify(ctx, value)
		if err != nil || email == nil {
			return failed(kind, err)
		}
		res.Status = verification.StatusSucceeded
		res.Email = email
		return res
	case verification.KindResidentialAddress, verification.KindMailingAddress:
		addr, err := o.addresses.Lookup(ctx, value)
		if err != nil || addr == nil {
			return failed(kind, err)
		}
		res.Status = verification.StatusSucceeded
		res.Address = addr
		return res
	}

	return failed(kind, fmt.Errorf("unknown verification kind %q", kind))
}

func fold(kind verification.Kind, phone *verification.PhoneResult, err error) verification.Result {
	if err != nil || phone == nil {
		return failed(kind, err)
	}
	return verification.Result{Kind: kind, Status: verification.StatusSucceeded, Phone: phone}
}

func failed(kind verification.Kind, err error) verification.Result {
	if err == nil {
		err = fmt.Errorf("verification %s returned no result", kind)
	}
	return verification.Result{Kind: kind, Status: verification.StatusFailed, Err: err}
}

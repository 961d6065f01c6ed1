// Package service orchestrates the full draft submission: verification
// fan-out, persistence, contact-record fetch, payload assembly and the
// terminal draft insert.
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"loandraft/internal/audit"
	"loandraft/internal/draft/models"
	"loandraft/internal/draft/store"
	"loandraft/internal/ledger/assemble"
	"loandraft/internal/lookup"
	"loandraft/internal/platform/metrics"
	"loandraft/internal/verification"
	"loandraft/internal/verification/orchestrator"
	"loandraft/internal/verification/persist"
	vstore "loandraft/internal/verification/store"
	domainerrors "loandraft/pkg/domain-errors"
	"loandraft/pkg/requestcontext"
)

// Verifier runs the verification fan-out for one applicant.
type Verifier interface {
	Run(ctx context.Context, contact verification.ContactFields, flags verification.CompletionFlags, mode orchestrator.Mode) verification.ResultSet
}

// Persister writes succeeded results onto the contact records.
type Persister interface {
	PersistAll(ctx context.Context, refs verification.Refs, results verification.ResultSet) persist.BatchResult
}

type Service struct {
	verifier  Verifier
	persister Persister
	contacts  vstore.ContactStore
	drafts    store.DraftStore
	auditor   *audit.Recorder
	logger    *slog.Logger
	metrics   *metrics.Metrics
	catalog   []lookup.InsuranceCatalogRow
}

func New(verifier Verifier, persister Persister, contacts vstore.ContactStore, drafts store.DraftStore, auditor *audit.Recorder, logger *slog.Logger, m *metrics.Metrics) *Service {
	return &Service{
		verifier:  verifier,
		persister: persister,
		contacts:  contacts,
		drafts:    drafts,
		auditor:   auditor,
		logger:    logger,
		metrics:   m,
		catalog:   lookup.InsuranceCatalog(),
	}
}

// SubmitSingle runs the single-applicant pipeline and returns the inserted
// draft. Verification and persistence failures never fail the submission;
// a reference-data miss during assembly does.
func (s *Service) SubmitSingle(ctx context.Context, req models.SingleDraftRequest) (*store.Draft, error) {
	started := time.Now()

	lane := s.runLane(ctx, req.Applicant, orchestrator.Single)

	input := assemble.Input{
		Flow:      assemble.FlowSingle,
		Prime:     assemble.Applicant{Profile: req.Applicant, Contacts: lane.contacts},
		Loan:      req.Loan,
		Vehicle:   req.Vehicle,
		Insurance: req.Insurance,
		Catalog:   s.catalog,
	}
	draft, err := s.finish(ctx, input, req.Applicant, "single")
	if err != nil {
		return nil, err
	}
	s.metrics.ObserveSubmission("single", time.Since(started))
	return draft, nil
}

// SubmitJoint runs both applicant lanes concurrently, then assembles the
// joint document.
func (s *Service) SubmitJoint(ctx context.Context, req models.JointDraftRequest) (*store.Draft, error) {
	started := time.Now()

	var primeLane, jointLane laneResult
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		primeLane = s.runLane(groupCtx, req.Prime, orchestrator.Joint)
		return nil
	})
	group.Go(func() error {
		jointLane = s.runLane(groupCtx, req.Joint, orchestrator.Joint)
		return nil
	})
	if err := group.Wait(); err != nil {
		return nil, err
	}

	input := assemble.Input{
		Flow:      assemble.FlowJoint,
		Prime:     assemble.Applicant{Profile: req.Prime, Contacts: primeLane.contacts},
		Joint:     &assemble.Applicant{Profile: req.Joint, Contacts: jointLane.contacts},
		Loan:      req.Loan,
		Vehicle:   req.Vehicle,
		Insurance: req.Insurance,
		Catalog:   s.catalog,
	}
	draft, err := s.finish(ctx, input, req.Prime, "joint")
	if err != nil {
		return nil, err
	}
	s.metrics.ObserveSubmission("joint", time.Since(started))
	return draft, nil
}

type laneResult struct {
	results  verification.ResultSet
	batch    persist.BatchResult
	contacts assemble.ContactRecords
}

// runLane verifies, persists and re-reads the contact records for one
// applicant. Nothing in the lane can fail the submission: verification and
// persistence outcomes are logged and audited inline.
func (s *Service) runLane(ctx context.Context, profile models.ApplicantProfile, mode orchestrator.Mode) laneResult {
	refs := profile.VerificationRefs()
	results := s.verifier.Run(ctx, profile.ContactFields(), profile.VerificationFlags(), mode)
	batch := s.persister.PersistAll(ctx, refs, results)
	if len(batch.Failed) > 0 {
		s.logger.WarnContext(ctx, "contact persistence partially failed",
			"failed", len(batch.Failed),
			"written", len(batch.Written),
		)
	}
	return laneResult{
		results:  results,
		batch:    batch,
		contacts: s.fetchContacts(ctx, refs),
	}
}

// fetchContacts loads whatever stored records exist for the applicant's
// refs. A missing or unreadable record leaves the field nil, which keeps
// the matching contact array empty in the document.
func (s *Service) fetchContacts(ctx context.Context, refs verification.Refs) assemble.ContactRecords {
	var records assemble.ContactRecords
	if refs.Mobile != nil {
		records.Mobile = s.fetchPhone(ctx, *refs.Mobile)
	}
	if refs.WorkPhone != nil {
		records.WorkPhone = s.fetchPhone(ctx, *refs.WorkPhone)
	}
	if refs.Email != nil {
		if rec, err := s.contacts.EmailRecord(ctx, *refs.Email); err == nil {
			records.Email = rec
		}
	}
	if refs.ResidentialAddress != nil {
		if rec, err := s.contacts.AddressRecord(ctx, *refs.ResidentialAddress); err == nil {
			records.Residential = rec
		}
	}
	if refs.MailingAddress != nil {
		if rec, err := s.contacts.AddressRecord(ctx, *refs.MailingAddress); err == nil {
			records.Mailing = rec
		}
	}
	return records
}

func (s *Service) fetchPhone(ctx context.Context, ref int64) *vstore.PhoneRecord {
	rec, err := s.contacts.PhoneRecord(ctx, ref)
	if err != nil {
		return nil
	}
	return rec
}

// finish assembles the document and inserts the draft record exactly once.
func (s *Service) finish(ctx context.Context, input assemble.Input, prime models.ApplicantProfile, flow string) (*store.Draft, error) {
	now := requestcontext.Now(ctx)

	payload, err := assemble.Assemble(input, now)
	if err != nil {
		s.auditor.Record(ctx, audit.Event{
			Action: audit.ActionDraftFailed,
			Detail: err.Error(),
		})
		return nil, err
	}

	serialized, err := json.Marshal(payload)
	if err != nil {
		return nil, domainerrors.Wrap(domainerrors.CodeInternal, "serialize draft payload", err)
	}

	draft := store.Draft{
		ID:            uuid.New(),
		ApplicantName: payload.Data.Attributes.ApplicationName,
		DateOfBirth:   prime.Personal.DateOfBirth,
		Email:         prime.Contact.SubmissionEmail(),
		TradingBranch: prime.Preliminary.TradingBranch,
		Payload:       serialized,
		CreatedAt:     now,
	}
	if err := s.drafts.Insert(ctx, draft); err != nil {
		s.auditor.Record(ctx, audit.Event{
			Action: audit.ActionDraftFailed,
			Detail: err.Error(),
		})
		return nil, domainerrors.Wrap(domainerrors.CodeUnavailable, "insert draft", err)
	}

	s.auditor.Record(ctx, audit.Event{
		Action: audit.ActionDraftCreated,
		Detail: fmt.Sprintf("draft %s (%s)", draft.ID, flow),
	})
	s.logger.InfoContext(ctx, "draft created",
		"draft_id", draft.ID,
		"flow", flow,
		"applicant", draft.ApplicantName,
	)
	return &draft, nil
}

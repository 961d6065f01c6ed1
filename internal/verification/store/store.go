// Package store persists verification outcomes onto the contact records the
// intake form created earlier. Records are addressed by their numeric refs.
package store

import (
	"context"
	"time"
)

// Table names, used in audit events when a write fails.
const (
	TablePhone   = "phone_verifications"
	TableEmail   = "email_verifications"
	TableAddress = "address_verifications"
)

// ContactPhoneUpdate carries the verified phone fields written back onto a
// phone contact record.
type ContactPhoneUpdate struct {
	Verified               bool
	LineType               string
	LineStatus             string
	LineStatusReason       string
	CountryCode            string
	CallingCode            string
	RawNational            string
	FormattedNational      string
	RawInternational       string
	FormattedInternational string
	NotVerifiedCode        string
	NotVerifiedReason      string
	NetworkCode            string
	LocalNumber            string
	VerifiedAt             time.Time
	RawPayload             []byte
}

// ContactEmailUpdate carries the verified email fields.
type ContactEmailUpdate struct {
	VerifiedEmail         string
	Account               string
	Domain                string
	ProviderDomain        string
	IsDisposable          bool
	IsRole                bool
	IsPublic              bool
	IsCatchAll            bool
	NotVerifiedCode       string
	NotVerifiedReason     string
	Success               bool
	VerificationTriggered bool
	RawPayload            []byte
}

// ContactAddressUpdate stores only the raw provider payload; the structured
// address already lives on the record from the intake form.
type ContactAddressUpdate struct {
	RawPayload []byte
}

// Stored record shapes returned to the assembler.
type (
	PhoneRecord struct {
		Ref int64
		ContactPhoneUpdate
	}
	EmailRecord struct {
		Ref int64
		ContactEmailUpdate
	}
	AddressRecord struct {
		Ref int64
		ContactAddressUpdate
	}
)

// ContactStore is implemented by the memory and postgres stores. Reads
// return sentinel.ErrNotFound when the ref has no record.
type ContactStore interface {
	UpdatePhone(ctx context.Context, ref int64, upd ContactPhoneUpdate) error
	UpdateEmail(ctx context.Context, ref int64, upd ContactEmailUpdate) error
	UpdateAddress(ctx context.Context, ref int64, upd ContactAddressUpdate) error

	PhoneRecord(ctx context.Context, ref int64) (*PhoneRecord, error)
	EmailRecord(ctx context.Context, ref int64) (*EmailRecord, error)
	AddressRecord(ctx context.Context, ref int64) (*AddressRecord, error)
}

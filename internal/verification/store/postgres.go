package store

import (
	"context"
	"database/sql"
	"fmt"

	"loandraft/pkg/platform/sentinel"
)

// Postgres writes verification outcomes onto the contact records created by
// the intake form. This store is pure I/O; which kinds get written and when
// belongs to the persistence adapter.
type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

func (s *Postgres) UpdatePhone(ctx context.Context, ref int64, upd ContactPhoneUpdate) error {
	query := `
		UPDATE phone_verifications SET
			verified = $2,
			line_type = $3,
			line_status = $4,
			line_status_reason = $5,
			country_code = $6,
			calling_code = $7,
			raw_national = $8,
			formatted_national = $9,
			raw_international = $10,
			formatted_international = $11,
			not_verified_code = $12,
			not_verified_reason = $13,
			network_code = $14,
			local_number = $15,
			verified_at = $16,
			raw_payload = $17
		WHERE id = $1
	`
	result, err := s.db.ExecContext(ctx, query, ref,
		upd.Verified, upd.LineType, upd.LineStatus, upd.LineStatusReason,
		upd.CountryCode, upd.CallingCode, upd.RawNational, upd.FormattedNational,
		upd.RawInternational, upd.FormattedInternational,
		upd.NotVerifiedCode, upd.NotVerifiedReason,
		upd.NetworkCode, upd.LocalNumber, upd.VerifiedAt, upd.RawPayload,
	)
	if err != nil {
		return fmt.Errorf("update phone verification %d: %w", ref, err)
	}
	return requireRow(result, ref)
}

func (s *Postgres) UpdateEmail(ctx context.Context, ref int64, upd ContactEmailUpdate) error {
	query := `
		UPDATE email_verifications SET
			verified_email = $2,
			account = $3,
			domain = $4,
			provider_domain = $5,
			is_disposable = $6,
			is_role = $7,
			is_public = $8,
			is_catch_all = $9,
			not_verified_code = $10,
			not_verified_reason = $11,
			success = $12,
			verification_triggered = $13,
			raw_payload = $14
		WHERE id = $1
	`
	result, err := s.db.ExecContext(ctx, query, ref,
		upd.VerifiedEmail, upd.Account, upd.Domain, upd.ProviderDomain,
		upd.IsDisposable, upd.IsRole, upd.IsPublic, upd.IsCatchAll,
		upd.NotVerifiedCode, upd.NotVerifiedReason,
		upd.Success, upd.VerificationTriggered, upd.RawPayload,
	)
	if err != nil {
		return fmt.Errorf("update email verification %d: %w", ref, err)
	}
	return requireRow(result, ref)
}

func (s *Postgres) UpdateAddress(ctx context.Context, ref int64, upd ContactAddressUpdate) error {
	query := `UPDATE address_verifications SET raw_payload = $2 WHERE id = $1`
	result, err := s.db.ExecContext(ctx, query, ref, upd.RawPayload)
	if err != nil {
		return fmt.Errorf("update address verification %d: %w", ref, err)
	}
	return requireRow(result, ref)
}

func (s *Postgres) PhoneRecord(ctx context.Context, ref int64) (*PhoneRecord, error) {
	query := `
		SELECT verified, line_type, line_status, line_status_reason,
			country_code, calling_code, raw_national, formatted_national,
			raw_international, formatted_international,
			not_verified_code, not_verified_reason,
			network_code, local_number, verified_at, raw_payload
		FROM phone_verifications
		WHERE id = $1
	`
	record := PhoneRecord{Ref: ref}
	err := s.db.QueryRowContext(ctx, query, ref).Scan(
		&record.Verified, &record.LineType, &record.LineStatus, &record.LineStatusReason,
		&record.CountryCode, &record.CallingCode, &record.RawNational, &record.FormattedNational,
		&record.RawInternational, &record.FormattedInternational,
		&record.NotVerifiedCode, &record.NotVerifiedReason,
		&record.NetworkCode, &record.LocalNumber, &record.VerifiedAt, &record.RawPayload,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("get phone verification %d: %w", ref, err)
	}
	return &record, nil
}

func (s *Postgres) EmailRecord(ctx context.Context, ref int64) (*EmailRecord, error) {
	query := `
		SELECT verified_email, account, domain, provider_domain,
			is_disposable, is_role, is_public, is_catch_all,
			not_verified_code, not_verified_reason,
			success, verification_triggered, raw_payload
		FROM email_verifications
		WHERE id = $1
	`
	record := EmailRecord{Ref: ref}
	err := s.db.QueryRowContext(ctx, query, ref).Scan(
		&record.VerifiedEmail, &record.Account, &record.Domain, &record.ProviderDomain,
		&record.IsDisposable, &record.IsRole, &record.IsPublic, &record.IsCatchAll,
		&record.NotVerifiedCode, &record.NotVerifiedReason,
		&record.Success, &record.VerificationTriggered, &record.RawPayload,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("get email verification %d: %w", ref, err)
	}
	return &record, nil
}

func (s *Postgres) AddressRecord(ctx context.Context, ref int64) (*AddressRecord, error) {
	query := `SELECT raw_payload FROM address_verifications WHERE id = $1`
	record := AddressRecord{Ref: ref}
	err := s.db.QueryRowContext(ctx, query, ref).Scan(&record.RawPayload)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("get address verification %d: %w", ref, err)
	}
	return &record, nil
}

func requireRow(result sql.Result, ref int64) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected for ref %d: %w", ref, err)
	}
	if affected == 0 {
		return fmt.Errorf("ref %d: %w", ref, sentinel.ErrNotFound)
	}
	return nil
}

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"loandraft/pkg/platform/sentinel"
)

type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

func (s *Postgres) Insert(ctx context.Context, draft Draft) error {
	const query = `
		INSERT INTO application_drafts (id, applicant_name, date_of_birth, email, trading_branch, payload, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := s.db.ExecContext(ctx, query,
		draft.ID,
		draft.ApplicantName,
		draft.DateOfBirth,
		draft.Email,
		draft.TradingBranch,
		draft.Payload,
		draft.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert draft %s: %w", draft.ID, err)
	}
	return nil
}

func (s *Postgres) FindByID(ctx context.Context, id uuid.UUID) (*Draft, error) {
	const query = `
		SELECT id, applicant_name, date_of_birth, email, trading_branch, payload, created_at
		FROM application_drafts
		WHERE id = $1`
	var draft Draft
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&draft.ID,
		&draft.ApplicantName,
		&draft.DateOfBirth,
		&draft.Email,
		&draft.TradingBranch,
		&draft.Payload,
		&draft.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find draft %s: %w", id, err)
	}
	return &draft, nil
}

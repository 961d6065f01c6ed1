package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loandraft/pkg/platform/sentinel"
)

func newMockDraftStore(t *testing.T) (*Postgres, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewPostgres(db), mock
}

func TestPostgresInsert(t *testing.T) {
	store, mock := newMockDraftStore(t)
	id := uuid.New()

	mock.ExpectExec(`INSERT INTO application_drafts`).
		WithArgs(id, "Mr J. Cook", "1985-03-12", "04 385 8000", "WLG", []byte(`{}`), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := store.Insert(context.Background(), Draft{
		ID:            id,
		ApplicantName: "Mr J. Cook",
		DateOfBirth:   "1985-03-12",
		Email:         "04 385 8000",
		TradingBranch: "WLG",
		Payload:       []byte(`{}`),
		CreatedAt:     time.Now().UTC(),
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresFindByIDMissing(t *testing.T) {
	store, mock := newMockDraftStore(t)
	id := uuid.New()

	mock.ExpectQuery(`SELECT .* FROM application_drafts`).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := store.FindByID(context.Background(), id)
	assert.True(t, errors.Is(err, sentinel.ErrNotFound))
}

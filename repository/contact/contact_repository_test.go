package contact_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/vastu-shakti/constant"
	"github.com/muhammadheryan/vastu-shakti/model"
	contactrepo "github.com/muhammadheryan/vastu-shakti/repository/contact"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var columns = []string{"id", "name", "email", "mobile", "subject", "message", "status", "created_at", "updated_at"}

func newRepo(t *testing.T) (contactrepo.ContactRepository, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	return contactrepo.NewContactRepository(sqlx.NewDb(mockDB, "mysql")), mock
}

func TestContactRepository_Create(t *testing.T) {
	repo, mock := newRepo(t)
	now := time.Now()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO contacts")).
		WithArgs("Ravi", "ravi@example.com", "9876543210", "Office layout", "Need help with my office", "new", now, now).
		WillReturnResult(sqlmock.NewResult(12, 1))

	got, err := repo.Create(context.Background(), &model.ContactEntity{
		Name: "Ravi", Email: "ravi@example.com", Mobile: "9876543210", Subject: "Office layout",
		Message: "Need help with my office", Status: constant.ContactStatusNew, CreatedAt: now, UpdatedAt: now,
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(12), got.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContactRepository_GetByID(t *testing.T) {
	tests := []struct {
		name     string
		mockCall func(mock sqlmock.Sqlmock)
		wantNil  bool
		wantErr  bool
	}{
		{
			name: "found",
			mockCall: func(mock sqlmock.Sqlmock) {
				now := time.Now()
				mock.ExpectQuery(regexp.QuoteMeta("FROM contacts WHERE id = ?")).
					WithArgs(5).
					WillReturnRows(sqlmock.NewRows(columns).AddRow(5, "Ravi", "ravi@example.com", "9876543210", "Office", "Need help", "in_progress", now, now))
			},
		},
		{
			name: "not found",
			mockCall: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("FROM contacts WHERE id = ?")).
					WithArgs(5).
					WillReturnRows(sqlmock.NewRows(columns))
			},
			wantNil: true,
		},
		{
			name: "db error",
			mockCall: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("FROM contacts WHERE id = ?")).
					WithArgs(5).
					WillReturnError(errors.New("db down"))
			},
			wantNil: true,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newRepo(t)
			tt.mockCall(mock)

			got, err := repo.GetByID(context.Background(), 5)
			if (err != nil) != tt.wantErr {
				t.Fatalf("GetByID() error = %v, wantErr %v", err, tt.wantErr)
			}
			if (got == nil) != tt.wantNil {
				t.Fatalf("GetByID() = %+v, wantNil %v", got, tt.wantNil)
			}
			if got != nil {
				assert.Equal(t, constant.ContactStatusInProgress, got.Status)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestContactRepository_ListByStatus(t *testing.T) {
	repo, mock := newRepo(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM contacts WHERE true AND status = ?")).
		WithArgs("new").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(21))
	mock.ExpectQuery(regexp.QuoteMeta("FROM contacts WHERE true AND status = ? ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?")).
		WithArgs("new", 20, 20).
		WillReturnRows(sqlmock.NewRows(columns).AddRow(1, "Ravi", "ravi@example.com", "9876543210", "Office", "Need help", "new", now, now))

	items, total, err := repo.List(context.Background(), &model.ContactFilter{Status: constant.ContactStatusNew, Page: 2, PerPage: 20})
	require.NoError(t, err)
	assert.Equal(t, int64(21), total)
	require.Len(t, items, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContactRepository_UpdateStatusAndCount(t *testing.T) {
	repo, mock := newRepo(t)
	now := time.Now()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE contacts SET status = ?, updated_at = ? WHERE id = ?")).
		WithArgs("resolved", now, 4).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM contacts WHERE true")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(9))

	require.NoError(t, repo.UpdateStatus(context.Background(), &model.ContactEntity{ID: 4, Status: constant.ContactStatusResolved, UpdatedAt: now}))
	total, err := repo.Count(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, int64(9), total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

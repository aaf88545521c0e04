//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"court-booking/internal/domain/booking"
	"court-booking/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockDBTX struct {
	mock.Mock
}

func (m *mockDBTX) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	mockArgs := m.Called(ctx, sql, args)
	return mockArgs.Get(0).(pgconn.CommandTag), mockArgs.Error(1)
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	mockArgs := m.Called(ctx, sql, args)
	rows, _ := mockArgs.Get(0).(pgx.Rows)
	return rows, mockArgs.Error(1)
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	mockArgs := m.Called(ctx, sql, args)
	return mockArgs.Get(0).(pgx.Row)
}

// emptyRows is a result set with no rows and an optional deferred error.
type emptyRows struct {
	err error
}

func (r *emptyRows) Close()                                       {}
func (r *emptyRows) Err() error                                   { return r.err }
func (r *emptyRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *emptyRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *emptyRows) Next() bool                                   { return false }
func (r *emptyRows) Scan(...any) error                            { return r.err }
func (r *emptyRows) Values() ([]any, error)                       { return nil, r.err }
func (r *emptyRows) RawValues() [][]byte                          { return nil }
func (r *emptyRows) Conn() *pgx.Conn                              { return nil }

type boolRow struct {
	value bool
	err   error
}

func (r boolRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*dest[0].(*bool) = r.value
	return nil
}

func TestBookingRepository_Insert_ErrorKinds(t *testing.T) {
	ctx := context.Background()
	b := booking.ReconstructBooking(uuid.New(), uuid.New(), mustInterval(t), booking.StatusConfirmed, 3000,
		time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))

	testCases := []struct {
		name     string
		rowsErr  error
		wantKind infra.RepositoryErrorKind
	}{
		{name: "exclusion violation is a conflict", rowsErr: &pgconn.PgError{Code: "23P01"}, wantKind: infra.KindConflict},
		{name: "duplicate id", rowsErr: &pgconn.PgError{Code: "23505"}, wantKind: infra.KindDuplicateKey},
		{name: "unknown resource", rowsErr: &pgconn.PgError{Code: "23503"}, wantKind: infra.KindForeignKeyViolated},
		{name: "other failure", rowsErr: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			db := new(mockDBTX)
			db.On("Query", ctx, insertBookingSQL, mock.Anything).Return(&emptyRows{err: tc.rowsErr}, nil)

			repo := NewBookingRepository(db)
			got, err := repo.Insert(ctx, b)

			require.Error(t, err)
			assert.Nil(t, got)
			assert.True(t, infra.IsKind(err, tc.wantKind), "got %v", err)
			db.AssertExpectations(t)
		})
	}
}

func TestBookingRepository_UpdateStatus_NoMatchingRow(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	at := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name     string
		exists   bool
		wantKind infra.RepositoryErrorKind
	}{
		{name: "status moved on concurrently", exists: true, wantKind: infra.KindConflict},
		{name: "booking does not exist", exists: false, wantKind: infra.KindNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			db := new(mockDBTX)
			db.On("Query", ctx, updateBookingStatusSQL, mock.Anything).Return(&emptyRows{}, nil)
			db.On("QueryRow", ctx, bookingExistsSQL, []any{id}).Return(boolRow{value: tc.exists})

			repo := NewBookingRepository(db)
			got, err := repo.UpdateStatus(ctx, id, booking.StatusConfirmed, booking.StatusCancelled, at)

			require.Error(t, err)
			assert.Nil(t, got)
			assert.True(t, infra.IsKind(err, tc.wantKind), "got %v", err)
			db.AssertExpectations(t)
		})
	}
}

func TestBookingRepository_Get_NotFound(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	db := new(mockDBTX)
	db.On("Query", ctx, getBookingForUpdateSQL, []any{id}).Return(&emptyRows{}, nil)

	_, err := NewBookingRepository(db).GetForUpdate(ctx, id)

	assert.True(t, infra.IsKind(err, infra.KindNotFound))
	db.AssertExpectations(t)
}

func TestBookingRepository_FindByResourceAndDate_QueryError(t *testing.T) {
	ctx := context.Background()
	iv := mustInterval(t)

	db := new(mockDBTX)
	db.On("Query", ctx, findBookingsByResourceAndDateSQL, mock.Anything).Return(nil, assert.AnError)

	got, err := NewBookingRepository(db).FindByResourceAndDate(ctx, uuid.New(), iv.Date())

	assert.Nil(t, got)
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	assert.ErrorIs(t, err, assert.AnError)
}

//go:build unit

package repository

import (
	"context"
	"testing"

	"court-booking/internal/domain/interval"
	"court-booking/internal/infra"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustInterval(t *testing.T) interval.Interval {
	t.Helper()
	iv, err := interval.Parse("2025-03-01", "10:00", "11:00")
	require.NoError(t, err)
	return iv
}

func TestResourceRepository_FindByID_NotFound(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	db := new(mockDBTX)
	db.On("Query", ctx, getResourceByIDSQL, []any{id}).Return(&emptyRows{}, nil)

	got, err := NewResourceRepository(db).FindByID(ctx, id)

	assert.Nil(t, got)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
	db.AssertExpectations(t)
}

func TestResourceRepository_ListAll(t *testing.T) {
	ctx := context.Background()

	t.Run("empty catalog", func(t *testing.T) {
		db := new(mockDBTX)
		db.On("Query", ctx, listResourcesSQL, []any(nil)).Return(&emptyRows{}, nil)

		got, err := NewResourceRepository(db).ListAll(ctx)

		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("query failure", func(t *testing.T) {
		db := new(mockDBTX)
		db.On("Query", ctx, listResourcesSQL, []any(nil)).Return(nil, assert.AnError)

		_, err := NewResourceRepository(db).ListAll(ctx)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

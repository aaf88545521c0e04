//go:build unit

package resource_test

import (
	"strings"
	"testing"

	"court-booking/internal/domain/interval"
	"court-booking/internal/domain/resource"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewResource(t *testing.T) {
	open := interval.MustTimeOfDay(6, 0)
	close := interval.MustTimeOfDay(22, 0)

	testCases := []struct {
		name     string
		resName  string
		opens    interval.TimeOfDay
		closes   interval.TimeOfDay
		price    int64
		errIs    error
		wantName string
	}{
		{name: "valid", resName: "Elite Sports Complex", opens: open, closes: close, price: 150000, wantName: "Elite Sports Complex"},
		{name: "trims name", resName: "  Court 1  ", opens: open, closes: close, price: 0, wantName: "Court 1"},
		{name: "empty name", resName: "   ", opens: open, closes: close, errIs: resource.ErrEmptyResourceName},
		{name: "name too long", resName: strings.Repeat("a", resource.MaxResourceNameLength+1), opens: open, closes: close, errIs: resource.ErrResourceNameTooLong},
		{name: "hours inverted", resName: "Court", opens: close, closes: open, errIs: resource.ErrInvalidHours},
		{name: "zero-length hours", resName: "Court", opens: open, closes: open, errIs: resource.ErrInvalidHours},
		{name: "negative price", resName: "Court", opens: open, closes: close, price: -1, errIs: resource.ErrNegativePrice},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual, err := resource.NewResource(uuid.Nil, tc.resName, nil, tc.opens, tc.closes, tc.price)
			if tc.errIs != nil {
				require.Nil(t, actual)
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, actual.ID())
			assert.Equal(t, tc.wantName, actual.Name())
		})
	}
}

func TestResource_SearchTerms(t *testing.T) {
	res, err := resource.NewResource(uuid.New(), "Ace Arena", []string{"Tennis", " ", "tennis", "Padel"},
		interval.MustTimeOfDay(8, 0), interval.MustTimeOfDay(20, 0), 1000)
	require.NoError(t, err)

	assert.Equal(t, []string{"Tennis", "Padel"}, res.Categories())
	assert.Equal(t, []string{
		"Ace Arena",
		"Ace Arena Tennis", "Tennis",
		"Ace Arena Padel", "Padel",
	}, res.SearchTerms())
}

func TestResource_Covers(t *testing.T) {
	res, err := resource.NewResource(uuid.New(), "Court", nil,
		interval.MustTimeOfDay(6, 0), interval.MustTimeOfDay(9, 0), 0)
	require.NoError(t, err)

	inside, _ := interval.Parse("2025-03-01", "06:00", "09:00")
	early, _ := interval.Parse("2025-03-01", "05:30", "06:30")
	late, _ := interval.Parse("2025-03-01", "08:30", "09:30")

	assert.True(t, res.Covers(inside))
	assert.False(t, res.Covers(early))
	assert.False(t, res.Covers(late))
}

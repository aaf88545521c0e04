//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"court-booking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestMark_IsSeesMarkButStdlibDoesNot(t *testing.T) {
	cause := errors.New("connection reset")
	marked := errs.Mark(cause, errs.ErrDatabaseOperationFailed)

	assert.True(t, errs.Is(marked, errs.ErrDatabaseOperationFailed))
	assert.True(t, errs.Is(marked, cause))
	assert.False(t, errors.Is(marked, errs.ErrDatabaseOperationFailed))
}

func TestMark_NilErrReturnsMark(t *testing.T) {
	assert.Equal(t, errs.ErrValidation, errs.Mark(nil, errs.ErrValidation))
}

func TestWrap_Nil(t *testing.T) {
	assert.NoError(t, errs.Wrap(nil, "ignored"))
	assert.NoError(t, errs.Wrapf(nil, "ignored %d", 1))
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, errs.IsNotFound(errs.Wrapf(errs.ErrBookingNotFound, "booking %d", 7)))
	assert.True(t, errs.IsNotFound(errs.ErrResourceNotFound))
	assert.False(t, errs.IsNotFound(errs.ErrValidation))
}

func TestExtractStackLines(t *testing.T) {
	err := errs.Wrap(errs.New("root cause"), "while booking")

	lines := errs.ExtractStackLines(err, 3)

	assert.Len(t, lines, 3)
	assert.Contains(t, lines[0], "while booking")
	for _, l := range lines {
		assert.NotEmpty(t, l)
	}
	assert.Nil(t, errs.ExtractStackLines(nil, 3))
}

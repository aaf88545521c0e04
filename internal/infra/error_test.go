//go:build unit

package infra_test

import (
	"errors"
	"testing"

	"court-booking/internal/infra"
	"court-booking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr(t *testing.T) {
	cause := errors.New("connection reset")

	err := infra.WrapRepoErr("failed to insert booking", cause)
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "DB_FAILURE: failed to insert booking")

	conflict := errs.Wrap(infra.WrapRepoErr("overlap", nil, infra.KindConflict), "insert")
	assert.True(t, infra.IsKind(conflict, infra.KindConflict))
	assert.False(t, infra.IsKind(conflict, infra.KindNotFound))
	assert.False(t, infra.IsKind(cause, infra.KindDBFailure))
}

//go:build unit

package errs_test

import (
	"fmt"
	"testing"

	"car-rental/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestDefine(t *testing.T) {
	errCarMissing := errs.Define("car missing", errs.ErrNotFound)

	wrapped := errs.Wrap(errCarMissing, "confirm booking")

	assert.True(t, errs.Is(wrapped, errCarMissing))
	assert.True(t, errs.Is(wrapped, errs.ErrNotFound))
	assert.False(t, errs.Is(wrapped, errs.ErrConflict))
	assert.Contains(t, wrapped.Error(), "car missing")
}

func TestDefine_SameCategoryStaysDistinct(t *testing.T) {
	errCarMissing := errs.Define("car missing", errs.ErrNotFound)
	errUserMissing := errs.Define("user missing", errs.ErrNotFound)

	marked := errs.Mark(errs.New("no rows"), errCarMissing)

	assert.True(t, errs.Is(marked, errCarMissing))
	assert.True(t, errs.Is(marked, errs.ErrNotFound))
	assert.False(t, errs.Is(marked, errUserMissing))
	assert.False(t, errs.Is(errCarMissing, errUserMissing))
	assert.Equal(t, "no rows", marked.Error())
}

func TestMark(t *testing.T) {
	t.Run("nil error returns the mark", func(t *testing.T) {
		assert.Equal(t, errs.ErrConflict, errs.Mark(nil, errs.ErrConflict))
	})

	t.Run("marked error matches both", func(t *testing.T) {
		base := errs.New("duplicate key")
		marked := errs.Mark(base, errs.ErrConflict)
		assert.True(t, errs.Is(marked, base))
		assert.True(t, errs.Is(marked, errs.ErrConflict))
	})
}

func TestWrapNil(t *testing.T) {
	assert.NoError(t, errs.Wrap(nil, "ignored"))
	assert.NoError(t, errs.Wrapf(nil, "ignored %d", 1))
}

func TestExtractStackLines(t *testing.T) {
	lines := errs.ExtractStackLines(errs.New("boom"), 3)
	assert.Len(t, lines, 3)
	assert.Nil(t, errs.ExtractStackLines(nil, 3))
}

func TestWithCause(t *testing.T) {
	errRoleMissing := errs.Define("role not found", errs.ErrNotFound)
	cause := errs.New("NOT_FOUND: no rows")

	err := errs.WithCause(errRoleMissing, cause)

	assert.Equal(t, "role not found", err.Error())
	assert.True(t, errs.Is(err, errRoleMissing))
	assert.True(t, errs.Is(err, errs.ErrNotFound))
	assert.Contains(t, fmt.Sprintf("%+v", err), "no rows")
	assert.Equal(t, errRoleMissing, errs.WithCause(errRoleMissing, nil))
}

package lib

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPartialCheckoutError(t *testing.T) {
	cause := errors.New("bulk insert failed")
	err := &PartialCheckoutError{OrderId: "abc-123", Err: cause}

	assert.Contains(t, err.Error(), "abc-123")
	assert.Contains(t, err.Error(), "bulk insert failed")
	assert.ErrorIs(t, err, cause)
}

func TestMapPgError_PassesThroughUnknownErrors(t *testing.T) {
	assert.NoError(t, MapPgError(nil))

	plain := errors.New("connection refused")
	assert.Equal(t, plain, MapPgError(plain))
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(ErrNotFound))
	assert.True(t, IsNotFound(fmt.Errorf("loading order: %w", ErrNotFound)))
	assert.False(t, IsNotFound(ErrConflict))
	assert.False(t, IsNotFound(nil))
}

func TestGetDetailForLogging_TruncatesLongMessages(t *testing.T) {
	assert.Empty(t, GetDetailForLogging(nil))

	long := errors.New(strings.Repeat("x", 500))
	assert.Len(t, GetDetailForLogging(long), 200)

	short := errors.New("short")
	assert.Equal(t, "short", GetDetailForLogging(short))
}

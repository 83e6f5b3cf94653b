package lib

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSessionKey(t *testing.T) {
	r := httptest.NewRequest("GET", "/menu/bistro/cart", nil)
	r.Header.Set(SessionKeyHeader, "abc123")

	key, err := GetSessionKey(r)
	require.NoError(t, err)
	assert.Equal(t, "abc123", key)
}

func TestGetSessionKey_Missing(t *testing.T) {
	r := httptest.NewRequest("GET", "/menu/bistro/cart", nil)

	_, err := GetSessionKey(r)
	assert.ErrorIs(t, err, ErrMissingSessionKey)
}

func TestGenerateRandomToken(t *testing.T) {
	first, err := GenerateRandomToken()
	require.NoError(t, err)
	second, err := GenerateRandomToken()
	require.NoError(t, err)

	assert.NotEmpty(t, first)
	assert.NotEqual(t, first, second)
}

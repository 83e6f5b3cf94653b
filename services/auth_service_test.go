package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luanmendes74/menu-flow-saas/structs"
)

// cheap params keep the hashing tests fast; production uses DefaultParams
var testArgonParams = &structs.ArgonParams{
	Memory:  8 * 1024,
	Time:    1,
	Threads: 1,
	KeyLen:  32,
	SaltLen: 16,
}

func TestAuthService_HashAndVerifyPassword(t *testing.T) {
	as := &AuthService{}

	hash, err := as.HashPassword("correct horse battery staple", testArgonParams)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$"))

	ok, err := as.VerifyPassword("correct horse battery staple", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = as.VerifyPassword("wrong password", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAuthService_HashPasswordUniqueSalts(t *testing.T) {
	as := &AuthService{}

	first, err := as.HashPassword("senha123", testArgonParams)
	require.NoError(t, err)
	second, err := as.HashPassword("senha123", testArgonParams)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestAuthService_VerifyPasswordRejectsMalformedHash(t *testing.T) {
	as := &AuthService{}

	_, err := as.VerifyPassword("anything", "not-a-hash")
	assert.Error(t, err)
}

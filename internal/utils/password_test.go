package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("Abc12345!")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "Abc12345!", hash)

	assert.True(t, CheckPasswordHash("Abc12345!", hash))
	assert.False(t, CheckPasswordHash("Abc12345?", hash))
}

func TestHashPasswordSaltsEveryCall(t *testing.T) {
	first, err := HashPassword("Abc12345!")
	require.NoError(t, err)
	second, err := HashPassword("Abc12345!")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, CheckPasswordHash("Abc12345!", first))
	assert.True(t, CheckPasswordHash("Abc12345!", second))
}

func TestCheckPasswordHashMalformedStoredHash(t *testing.T) {
	assert.False(t, CheckPasswordHash("Abc12345!", "not-a-bcrypt-hash"))
}

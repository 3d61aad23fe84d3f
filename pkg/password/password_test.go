package password_test

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avelov/authkit/pkg/password"
)

// Low-cost parameters keep the scrypt calls fast in tests.
func newTestHasher() *password.Hasher {
	return password.New(password.WithCost(1<<4, 8, 1))
}

func TestHasher_GenerateSalt(t *testing.T) {
	t.Parallel()

	hasher := newTestHasher()

	salt, err := hasher.GenerateSalt()
	require.NoError(t, err)

	raw, err := hex.DecodeString(salt)
	require.NoError(t, err)
	assert.Len(t, raw, 24)

	other, err := hasher.GenerateSalt()
	require.NoError(t, err)
	assert.NotEqual(t, salt, other)
}

func TestHasher_Hash(t *testing.T) {
	t.Parallel()

	hasher := newTestHasher()

	t.Run("is deterministic for same password and salt", func(t *testing.T) {
		t.Parallel()

		first, err := hasher.Hash("secret1", "aabbcc")
		require.NoError(t, err)
		second, err := hasher.Hash("secret1", "aabbcc")
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("differs across salts for same password", func(t *testing.T) {
		t.Parallel()

		first, err := hasher.Hash("secret1", "aabbcc")
		require.NoError(t, err)
		second, err := hasher.Hash("secret1", "ddeeff")
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
	})

	t.Run("produces hex-encoded 64-byte output", func(t *testing.T) {
		t.Parallel()

		hash, err := hasher.Hash("secret1", "aabbcc")
		require.NoError(t, err)

		raw, err := hex.DecodeString(hash)
		require.NoError(t, err)
		assert.Len(t, raw, 64)
	})
}

func TestHasher_Verify(t *testing.T) {
	t.Parallel()

	hasher := newTestHasher()

	salt, err := hasher.GenerateSalt()
	require.NoError(t, err)
	hash, err := hasher.Hash("correct horse", salt)
	require.NoError(t, err)

	t.Run("accepts matching password", func(t *testing.T) {
		t.Parallel()
		assert.True(t, hasher.Verify("correct horse", salt, hash))
	})

	t.Run("rejects wrong password", func(t *testing.T) {
		t.Parallel()
		assert.False(t, hasher.Verify("battery staple", salt, hash))
	})

	t.Run("rejects wrong salt", func(t *testing.T) {
		t.Parallel()
		assert.False(t, hasher.Verify("correct horse", "00ff00ff", hash))
	})

	t.Run("rejects malformed expected hash without error", func(t *testing.T) {
		t.Parallel()
		assert.False(t, hasher.Verify("correct horse", salt, "not-hex"))
	})
}

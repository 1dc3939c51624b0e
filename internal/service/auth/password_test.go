package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptVerifier(t *testing.T) {
	t.Parallel()

	// MinCost keeps the hashing fast in tests.
	verifier := &BcryptVerifier{Cost: bcrypt.MinCost}

	t.Run("hash and compare round trip", func(t *testing.T) {
		t.Parallel()

		hash, err := verifier.Hash("securepassword123")
		require.NoError(t, err)
		assert.NotEqual(t, "securepassword123", hash)

		assert.NoError(t, verifier.Compare(hash, "securepassword123"))
	})

	t.Run("wrong password reports mismatch", func(t *testing.T) {
		t.Parallel()

		hash, err := verifier.Hash("securepassword123")
		require.NoError(t, err)

		err = verifier.Compare(hash, "wrongpassword456")

		assert.ErrorIs(t, err, ErrPasswordMismatch)
	})

	t.Run("malformed hash is an error but not a mismatch", func(t *testing.T) {
		t.Parallel()

		err := verifier.Compare("not-a-bcrypt-hash", "securepassword123")

		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrPasswordMismatch)
	})

	t.Run("zero cost defaults", func(t *testing.T) {
		t.Parallel()

		v := &BcryptVerifier{}
		hash, err := v.Hash("securepassword123")

		require.NoError(t, err)
		cost, err := bcrypt.Cost([]byte(hash))
		require.NoError(t, err)
		assert.Equal(t, bcrypt.DefaultCost, cost)
	})
}

package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignParseRoundtrip(t *testing.T) {
	token, err := Sign("64f1c7e2a9b3d40012345678", "admin", time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "64f1c7e2a9b3d40012345678", claims.UserID)
	assert.Equal(t, "admin", claims.Role)
	assert.NotEmpty(t, claims.ID)
}

func TestParseFailsClosed(t *testing.T) {
	t.Run("malformed", func(t *testing.T) {
		_, err := Parse("not-a-token")
		assert.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		token, err := Sign("u1", "user", -time.Minute)
		require.NoError(t, err)
		_, err = Parse(token)
		assert.Error(t, err)
	})

	t.Run("wrong signature", func(t *testing.T) {
		token, err := Sign("u1", "user", time.Minute)
		require.NoError(t, err)

		SetSecret("another-secret")
		defer SetSecret(defaultSecret)

		_, err = Parse(token)
		assert.Error(t, err)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := Parse("")
		assert.Error(t, err)
	})
}

package api

import (
	"encoding/base64"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// signedToken crafts a token with arbitrary claims, signed with the codec's
// own key. Used to exercise expiry without waiting out the TTL.
func signedToken(t *testing.T, codec *SessionCodec, claims sessionClaims) string {
	payload, err := json.Marshal(claims)
	require.NoError(t, err)
	encoded := base64.RawURLEncoding.EncodeToString(payload)
	return encoded + "." + codec.sign(encoded)
}

func TestSessionCodec(t *testing.T) {
	codec := NewSessionCodec("signing-key")

	t.Run("round trip", func(t *testing.T) {
		token, err := codec.Issue("admin@example.com")
		require.NoError(t, err)

		email, err := codec.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, "admin@example.com", email)
	})

	t.Run("issued tokens are unique", func(t *testing.T) {
		first, err := codec.Issue("admin@example.com")
		require.NoError(t, err)
		second, err := codec.Issue("admin@example.com")
		require.NoError(t, err)
		assert.NotEqual(t, first, second)
	})

	t.Run("tampered token rejected", func(t *testing.T) {
		token, err := codec.Issue("admin@example.com")
		require.NoError(t, err)

		_, err = codec.Verify(token + "ff")
		assert.ErrorIs(t, err, ErrInvalidSession)
	})

	t.Run("wrong key rejected", func(t *testing.T) {
		token, err := codec.Issue("admin@example.com")
		require.NoError(t, err)

		_, err = NewSessionCodec("other-key").Verify(token)
		assert.ErrorIs(t, err, ErrInvalidSession)
	})

	t.Run("malformed values rejected", func(t *testing.T) {
		for _, value := range []string{"", "no-dot", "a.b", "!!!.ffff"} {
			_, err := codec.Verify(value)
			assert.ErrorIs(t, err, ErrInvalidSession, "value %q", value)
		}
	})

	t.Run("expired session rejected", func(t *testing.T) {
		token := signedToken(t, codec, sessionClaims{
			Email:     "admin@example.com",
			ExpiresAt: time.Now().Add(-time.Hour).Unix(),
			Nonce:     "n",
		})

		_, err := codec.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidSession)
	})

	t.Run("empty email rejected", func(t *testing.T) {
		token := signedToken(t, codec, sessionClaims{
			ExpiresAt: time.Now().Add(time.Hour).Unix(),
			Nonce:     "n",
		})

		_, err := codec.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidSession)
	})
}

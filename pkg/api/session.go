package api

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// sessionCookieName is the cookie the signed session travels in.
	sessionCookieName = "admin_session"

	// sessionTTL is how long a login stays valid.
	sessionTTL = 24 * time.Hour
)

// ErrInvalidSession marks session cookies that are malformed, tampered with
// or expired. The middleware answers all of them with 401.
var ErrInvalidSession = errors.New("invalid session")

// sessionClaims is what the cookie signs: who is logged in and until when.
// The nonce makes every issued cookie unique.
type sessionClaims struct {
	Email     string `json:"email"`
	ExpiresAt int64  `json:"exp"`
	Nonce     string `json:"nonce"`
}

// SessionCodec issues and verifies the HMAC-SHA256 signed session cookie
// value. Sessions are stateless: everything lives in the cookie, nothing on
// the server.
type SessionCodec struct {
	key []byte
}

// NewSessionCodec creates a codec signing with the given key.
func NewSessionCodec(key string) *SessionCodec {
	return &SessionCodec{key: []byte(key)}
}

// Issue returns a cookie value binding email for the session TTL. The value
// is "<base64url claims>.<hex signature>".
func (c *SessionCodec) Issue(email string) (string, error) {
	claims := sessionClaims{
		Email:     email,
		ExpiresAt: time.Now().Add(sessionTTL).Unix(),
		Nonce:     uuid.NewString(),
	}
	payload, err := json.Marshal(claims)
	if err != nil {
		return "", fmt.Errorf("failed to marshal session claims: %w", err)
	}

	encoded := base64.RawURLEncoding.EncodeToString(payload)
	return encoded + "." + c.sign(encoded), nil
}

// Verify checks the signature and expiry of a cookie value and returns the
// email it was issued for.
func (c *SessionCodec) Verify(value string) (string, error) {
	encoded, signature, ok := strings.Cut(value, ".")
	if !ok {
		return "", ErrInvalidSession
	}
	if !hmac.Equal([]byte(signature), []byte(c.sign(encoded))) {
		return "", ErrInvalidSession
	}

	payload, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return "", ErrInvalidSession
	}
	var claims sessionClaims
	if err := json.Unmarshal(payload, &claims); err != nil {
		return "", ErrInvalidSession
	}
	if claims.Email == "" || time.Now().Unix() > claims.ExpiresAt {
		return "", ErrInvalidSession
	}

	return claims.Email, nil
}

func (c *SessionCodec) sign(payload string) string {
	mac := hmac.New(sha256.New, c.key)
	mac.Write([]byte(payload))
	return hex.EncodeToString(mac.Sum(nil))
}

// setSessionCookie writes the session cookie; maxAge < 0 clears it.
func setSessionCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookieName, value, maxAge, "/", "", false, true)
}

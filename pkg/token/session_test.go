package token

import (
	"testing"
	"time"

	"casino_web/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var secret = []byte("test-secret")

func TestGenerateAndVerify(t *testing.T) {
	session := &model.Session{ID: "sess-1", UserID: 42, ExpiresAt: time.Now().Add(time.Hour)}

	tok, err := GenerateSessionToken(session, secret)
	require.NoError(t, err)

	claims, err := VerifyToken(tok, secret)
	require.NoError(t, err)
	assert.Equal(t, "sess-1", claims.ID)
	assert.Equal(t, "42", claims.Subject)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	tok, err := GenerateSessionToken(&model.Session{ID: "s", UserID: 1, ExpiresAt: time.Now().Add(time.Hour)}, secret)
	require.NoError(t, err)

	_, err = VerifyToken(tok, []byte("other"))
	assert.Error(t, err)
}

func TestVerifyRejectsExpired(t *testing.T) {
	tok, err := GenerateSessionToken(&model.Session{ID: "s", UserID: 1, ExpiresAt: time.Now().Add(-time.Minute)}, secret)
	require.NoError(t, err)

	_, err = VerifyToken(tok, secret)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	_, err := VerifyToken("not.a.token", secret)
	assert.Error(t, err)
}

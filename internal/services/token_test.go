package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTokenService() TokenService {
	return TokenService{
		Secret: []byte("test-secret"),
		Issuer: "abroberts-test",
		TTL:    time.Hour,
	}
}

func TestPasswordHashRoundTrip(t *testing.T) {
	tokens := testTokenService()
	hash, err := tokens.HashPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hash)
	assert.True(t, tokens.VerifyPassword("correct horse battery staple", hash))
	assert.False(t, tokens.VerifyPassword("wrong password", hash))
	assert.False(t, tokens.VerifyPassword("correct horse battery staple", "not-a-hash"))
}

func TestTokenRoundTrip(t *testing.T) {
	tokens := testTokenService()
	signed, exp, err := tokens.CreateToken("user-1", "admin@example.com", "admin")
	require.NoError(t, err)
	assert.Greater(t, exp, time.Now().Unix())

	token, claims, err := tokens.ParseToken(signed)
	require.NoError(t, err)
	assert.True(t, token.Valid)
	assert.Equal(t, "user-1", claims["sub"])
	assert.Equal(t, "admin@example.com", claims["email"])
	assert.Equal(t, "admin", claims["role"])
	assert.Equal(t, "abroberts-test", claims["iss"])
}

func TestTokenExpired(t *testing.T) {
	tokens := testTokenService()
	tokens.TTL = -time.Minute
	signed, _, err := tokens.CreateToken("user-1", "admin@example.com", "admin")
	require.NoError(t, err)

	_, _, err = tokens.ParseToken(signed)
	assert.Error(t, err)
}

func TestTokenWrongSecret(t *testing.T) {
	signed, _, err := testTokenService().CreateToken("user-1", "admin@example.com", "admin")
	require.NoError(t, err)

	other := testTokenService()
	other.Secret = []byte("different-secret")
	_, _, err = other.ParseToken(signed)
	assert.Error(t, err)
}

func TestTokenWrongIssuer(t *testing.T) {
	issuer := testTokenService()
	issuer.Issuer = "someone-else"
	signed, _, err := issuer.CreateToken("user-1", "admin@example.com", "admin")
	require.NoError(t, err)

	_, _, err = testTokenService().ParseToken(signed)
	assert.Error(t, err)
}

func TestTokenGarbage(t *testing.T) {
	_, _, err := testTokenService().ParseToken("not.a.token")
	assert.Error(t, err)
}

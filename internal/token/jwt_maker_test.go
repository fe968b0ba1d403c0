package token

import (
	"testing"
	"time"
	
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "01234567890123456789012345678901"

func TestJWTMaker(t *testing.T) {
	maker, err := NewJWTMaker(testSecret)
	require.NoError(t, err)
	
	token, payload, err := maker.CreateToken("user-1", "admin", time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	
	verified, err := maker.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, payload.ID, verified.ID)
	assert.Equal(t, "user-1", verified.Subject)
	assert.Equal(t, "admin", verified.Role)
}

func TestJWTMakerRejects(t *testing.T) {
	_, err := NewJWTMaker("short")
	require.Error(t, err)
	
	maker, err := NewJWTMaker(testSecret)
	require.NoError(t, err)
	
	expired, _, err := maker.CreateToken("user-1", "client", -time.Minute)
	require.NoError(t, err)
	_, err = maker.VerifyToken(expired)
	require.ErrorIs(t, err, ErrInvalidToken)
	
	payload, err := NewPayload("user-1", "admin", time.Minute)
	require.NoError(t, err)
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, payload).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = maker.VerifyToken(unsigned)
	require.ErrorIs(t, err, ErrInvalidToken)
}

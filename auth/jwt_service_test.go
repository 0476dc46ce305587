package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	tokenString, expires, err := GenerateToken(7, "alice")
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)
	assert.True(t, expires.After(time.Now()))

	claims, err := ValidateToken(tokenString)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "note_map_go", claims.Issuer)
}

func TestValidateMalformedToken(t *testing.T) {
	_, err := ValidateToken("not.a.token")
	assert.Error(t, err)

	_, err = ValidateToken("")
	assert.Error(t, err)
}

func TestValidateWrongSignature(t *testing.T) {
	claims := &Claims{
		UserID:   1,
		Username: "mallory",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("some_other_secret"))
	require.NoError(t, err)

	_, err = ValidateToken(signed)
	assert.Error(t, err)
}

func TestValidateExpiredToken(t *testing.T) {
	claims := &Claims{
		UserID:   1,
		Username: "late",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(jwtKey)
	require.NoError(t, err)

	_, err = ValidateToken(signed)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expired")
}

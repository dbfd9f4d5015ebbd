package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jas-4484/enrollment-api/internal/models"
)

func TestGenerateAndValidateJWT(t *testing.T) {
	issuer := NewIssuer("test-secret", time.Hour)
	user := models.User{Username: "6610000000", Role: models.RoleStudent, StudentID: "6610000000"}

	token, err := issuer.GenerateJWT(user)
	require.NoError(t, err)

	claims, err := issuer.ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "6610000000", claims.Username)
	assert.Equal(t, "6610000000", claims.StudentID)
	assert.Equal(t, models.RoleStudent, claims.Role)
}

func TestValidateJWT_WrongSecret(t *testing.T) {
	token, err := NewIssuer("one", time.Hour).GenerateJWT(models.User{Username: "admin", Role: models.RoleAdmin})
	require.NoError(t, err)

	_, err = NewIssuer("two", time.Hour).ValidateJWT(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateJWT_Expired(t *testing.T) {
	issuer := NewIssuer("test-secret", time.Minute)
	issued := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	issuer.now = func() time.Time { return issued }

	token, err := issuer.GenerateJWT(models.User{Username: "admin", Role: models.RoleAdmin})
	require.NoError(t, err)

	issuer.now = func() time.Time { return issued.Add(2 * time.Minute) }
	_, err = issuer.ValidateJWT(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateJWT_RejectsOtherAlgorithms(t *testing.T) {
	claims := &Claims{Username: "admin", Role: models.RoleAdmin}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewIssuer("test-secret", time.Hour).ValidateJWT(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateJWT_Garbage(t *testing.T) {
	_, err := NewIssuer("test-secret", time.Hour).ValidateJWT("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestPasswords(t *testing.T) {
	hash, err := HashPassword("password", bcrypt.MinCost)
	require.NoError(t, err)

	assert.NoError(t, CheckPassword(hash, "password"))
	assert.ErrorIs(t, CheckPassword(hash, "wrong"), ErrInvalidCredentials)
}

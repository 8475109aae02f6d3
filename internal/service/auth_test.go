package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestAuthService(t *testing.T, password string) *AuthService {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return NewAuthService(string(hash), "test-secret")
}

func TestLogin(t *testing.T) {
	svc := newTestAuthService(t, "correct horse")

	token, err := svc.Login("correct horse")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "owner", claims.Subject)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newTestAuthService(t, "correct horse")

	_, err := svc.Login("battery staple")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	svc := newTestAuthService(t, "pw")
	token, err := svc.Login("pw")
	require.NoError(t, err)

	other := NewAuthService(svc.passwordHash, "different-secret")
	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenGarbage(t *testing.T) {
	svc := newTestAuthService(t, "pw")
	_, err := svc.ValidateToken("not.a.token")
	assert.Error(t, err)
}

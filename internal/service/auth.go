package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/cooknext/backend/internal/types"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

const tokenSubject = "owner"

// AuthService guards the single account the deployment serves. The
// password is configured as a bcrypt hash; a successful login yields a
// 24 hour session token.
type AuthService struct {
	passwordHash string
	jwtSecret    string
}

// NewAuthService creates a new AuthService instance
func NewAuthService(passwordHash, jwtSecret string) *AuthService {
	return &AuthService{
		passwordHash: passwordHash,
		jwtSecret:    jwtSecret,
	}
}

// Login checks the account password and returns a session token
func (s *AuthService) Login(password string) (string, error) {
	if err := bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}
	return s.generateToken()
}

func (s *AuthService) generateToken() (string, error) {
	claims := jwt.MapClaims{
		"sub": tokenSubject,
		"exp": time.Now().Add(time.Hour * 24).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

// ValidateToken parses and verifies a session token
func (s *AuthService) ValidateToken(tokenString string) (*types.TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub != tokenSubject {
		return nil, errors.New("invalid token claims")
	}

	return &types.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: sub},
	}, nil
}

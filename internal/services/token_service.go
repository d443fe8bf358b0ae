package services

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"config_service_backend/internal/config"
)

var (
	// ErrInvalidCredentials is returned when the operator name or password
	// does not match the configured credential.
	ErrInvalidCredentials = errors.New("invalid operator name or password")

	// ErrInvalidToken is returned for tokens that fail parsing, signature
	// verification, or expiry checks.
	ErrInvalidToken = errors.New("invalid or expired token")
)

// Claims defines the JWT claims carried by issued tokens.
type Claims struct {
	Operator string `json:"operator"`
	jwt.RegisteredClaims
}

// TokenService issues and validates operator access tokens. The operator
// credential and signing secret come from the environment-resolved Config;
// there is no user store.
type TokenService interface {
	IssueToken(operator, password string) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

type tokenService struct {
	operatorName string
	passwordHash string
	secret       []byte
	ttl          time.Duration
}

// NewTokenService creates a TokenService backed by the given configuration.
func NewTokenService(cfg *config.Config) TokenService {
	return &tokenService{
		operatorName: cfg.OperatorName,
		passwordHash: cfg.OperatorPasswordHash,
		secret:       []byte(cfg.JWTSecret),
		ttl:          cfg.TokenTTL,
	}
}

// IssueToken verifies the operator credential against the configured bcrypt
// hash and mints a signed token on success.
func (s *tokenService) IssueToken(operator, password string) (string, error) {
	if operator != s.operatorName {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	now := time.Now()
	claims := &Claims{
		Operator: operator,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			Subject:   operator,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", err
	}
	return signed, nil
}

// ValidateToken parses and verifies a token string, returning its claims.
func (s *tokenService) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

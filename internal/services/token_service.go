package services

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/propwise/manager-api/internal/config"
	"github.com/propwise/manager-api/internal/utils"
)

// ---------------------------------------------------------------------
// TokenService interface
// ---------------------------------------------------------------------

// TokenService issues and verifies the signed session tokens carried in the
// jwt cookie. Sessions are stateless: the token is the only session record.
type TokenService interface {
	// Issue signs a token for the account. A non-positive ttl falls back to
	// the configured default (three days).
	Issue(accountID uuid.UUID, ttl time.Duration) (string, error)

	// Verify returns the embedded account id, or one of
	// utils.ErrTokenMissing / ErrTokenInvalid / ErrTokenExpired.
	Verify(tokenString string) (uuid.UUID, error)
}

// ---------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------

type tokenService struct {
	secret     []byte
	defaultTTL time.Duration
}

func NewTokenService(cfg *config.Config) TokenService {
	return &tokenService{
		secret:     cfg.JWTSecret,
		defaultTTL: cfg.TokenTTL,
	}
}

func (s *tokenService) Issue(accountID uuid.UUID, ttl time.Duration) (string, error) {
	if len(s.secret) == 0 {
		return "", utils.NewConfigurationError("JWT secret is not defined")
	}
	if ttl <= 0 {
		ttl = s.defaultTTL
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"id":  accountID.String(),
		"iat": now.Unix(),
		"exp": now.Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *tokenService) Verify(tokenString string) (uuid.UUID, error) {
	if len(s.secret) == 0 {
		return uuid.Nil, utils.NewConfigurationError("JWT secret is not defined")
	}
	if tokenString == "" {
		return uuid.Nil, utils.ErrTokenMissing
	}

	parsed, err := jwt.Parse(
		tokenString,
		func(t *jwt.Token) (interface{}, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{"HS256"}),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return uuid.Nil, utils.ErrTokenExpired
		}
		return uuid.Nil, utils.ErrTokenInvalid
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, utils.ErrTokenInvalid
	}
	idStr, ok := claims["id"].(string)
	if !ok {
		return uuid.Nil, utils.ErrTokenInvalid
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, utils.ErrTokenInvalid
	}
	return id, nil
}

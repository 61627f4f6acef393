package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/guttosm/discount-service/config"
	"github.com/guttosm/discount-service/internal/domain/dto"
)

var (
	// ErrInvalidCredentials is returned when username or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrInvalidToken is returned when token is invalid or expired.
	ErrInvalidToken = errors.New("invalid or expired token")
	// ErrAuthNotConfigured is returned when no admin password hash is set.
	ErrAuthNotConfigured = errors.New("admin credentials not configured")
)

// Claims is re-exported from dto to avoid import cycles in callers.
type Claims = dto.Claims

// jwtClaims is the wire form of an access token. The registered claims carry
// everything this service needs; the dto.Claims handed to callers are built
// from the parsed subject.
type jwtClaims struct {
	jwt.RegisteredClaims
}

// AuthService provides authentication for the single admin principal.
// Credentials come from configuration rather than a user store: the service
// exposes a narrow admin surface (pricing rules management) and does not
// need accounts, roles, or refresh tokens.
type AuthService interface {
	Login(ctx context.Context, username, password string) (*dto.LoginResponse, error)
	ValidateToken(ctx context.Context, tokenString string) (*dto.Claims, error)
}

// AuthServiceImpl implements AuthService.
type AuthServiceImpl struct {
	cfg config.AuthConfig
}

// NewAuthService creates a new authentication service.
func NewAuthService(authConfig config.AuthConfig) AuthService {
	return &AuthServiceImpl{cfg: authConfig}
}

// Login verifies the admin credentials and issues a signed access token.
func (s *AuthServiceImpl) Login(ctx context.Context, username, password string) (*dto.LoginResponse, error) {
	if s.cfg.AdminPasswordHash == "" {
		return nil, ErrAuthNotConfigured
	}

	// Compare both factors even on a username mismatch to keep timing uniform.
	userMatch := subtle.ConstantTimeCompare([]byte(username), []byte(s.cfg.AdminUser)) == 1
	err := bcrypt.CompareHashAndPassword([]byte(s.cfg.AdminPasswordHash), []byte(password))
	if !userMatch || err != nil {
		return nil, ErrInvalidCredentials
	}

	now := time.Now()
	claims := jwtClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   s.cfg.AdminUser,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.AccessTokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecretKey))
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &dto.LoginResponse{
		Token:     signed,
		ExpiresIn: int64(s.cfg.AccessTokenTTL.Seconds()),
	}, nil
}

// ValidateToken parses and verifies an access token and returns its claims.
func (s *AuthServiceImpl) ValidateToken(ctx context.Context, tokenString string) (*dto.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwtClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.cfg.JWTSecretKey), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*jwtClaims)
	if !ok || claims.Subject == "" {
		return nil, ErrInvalidToken
	}

	return &dto.Claims{Subject: claims.Subject}, nil
}

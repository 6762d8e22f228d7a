package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"rtrw-admin-svc/internal/config"
	"rtrw-admin-svc/internal/models"
	"rtrw-admin-svc/internal/repository"
	"rtrw-admin-svc/internal/store"
	"rtrw-admin-svc/pkg/logger"
)

// ErrInvalidCredentials is returned for every login rejection. Unknown
// email, wrong password and disabled accounts are indistinguishable to
// the caller so accounts cannot be enumerated.
var ErrInvalidCredentials = errors.New("invalid credentials")

// SessionClaims is the payload carried by the signed session token
type SessionClaims struct {
	Role string `json:"role"`
	Name string `json:"name"`
	jwt.RegisteredClaims
}

// UserID returns the numeric user id stored in the subject claim
func (c *SessionClaims) UserID() uint {
	id, err := strconv.ParseUint(c.Subject, 10, 32)
	if err != nil {
		return 0
	}
	return uint(id)
}

// AuthService verifies credentials and mints session tokens
type AuthService interface {
	Login(ctx context.Context, email, password string) (string, *models.User, error)
	ParseToken(tokenString string) (*SessionClaims, error)
	RefreshIfStale(tokenString string) (string, bool, error)
}

// authService implements AuthService
type authService struct {
	userRepo repository.UserRepository
	cfg      config.JWTConfig
	logger   *logger.Logger
	now      func() time.Time
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository, cfg config.JWTConfig, logger *logger.Logger) AuthService {
	return &authService{
		userRepo: userRepo,
		cfg:      cfg,
		logger:   logger,
		now:      time.Now,
	}
}

// Login verifies the email/password pair and issues a signed session
// token carrying the user's id, role and name
func (s *authService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.logger.WithField("email", email).Warn("Login attempt for unknown email")
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("lookup user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		s.logger.WithField("email", email).Warn("Login attempt with wrong password")
		return "", nil, ErrInvalidCredentials
	}

	if user.Status != "aktif" {
		s.logger.WithField("email", email).Warn("Login attempt for inactive account")
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.mintToken(user.ID, user.Role, user.Name)
	if err != nil {
		return "", nil, fmt.Errorf("sign session token: %w", err)
	}

	s.logger.WithFields(map[string]interface{}{
		"user_id": user.ID,
		"role":    user.Role,
	}).Info("User logged in")

	return token, user, nil
}

// ParseToken validates the token signature and expiry and returns the claims
func (s *authService) ParseToken(tokenString string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.cfg.Secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse session token: %w", err)
	}
	if !token.Valid {
		return nil, errors.New("invalid session token")
	}
	return claims, nil
}

// RefreshIfStale re-issues the token with a fresh 30-day expiry when it
// was minted more than the rolling refresh window ago. Younger tokens
// are returned unchanged so a busy session only pays for one re-issue
// per window.
func (s *authService) RefreshIfStale(tokenString string) (string, bool, error) {
	claims, err := s.ParseToken(tokenString)
	if err != nil {
		return "", false, err
	}

	if claims.IssuedAt == nil || s.now().Sub(claims.IssuedAt.Time) < s.cfg.RefreshAge {
		return tokenString, false, nil
	}

	refreshed, err := s.mintToken(claims.UserID(), claims.Role, claims.Name)
	if err != nil {
		return "", false, fmt.Errorf("sign refreshed token: %w", err)
	}
	return refreshed, true, nil
}

// mintToken signs a session token for the given identity
func (s *authService) mintToken(userID uint, role, name string) (string, error) {
	now := s.now()
	claims := &SessionClaims{
		Role: role,
		Name: name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.MaxAge)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.Secret))
}

// HashPassword hashes a plaintext password with bcrypt. Used at account
// creation so login can compare with the same scheme.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

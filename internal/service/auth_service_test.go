package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"rtrw-admin-svc/internal/config"
	"rtrw-admin-svc/internal/models"
	"rtrw-admin-svc/internal/store"
	"rtrw-admin-svc/pkg/logger"
)

type stubUserRepo struct {
	user *models.User
}

func (r *stubUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	if r.user == nil || r.user.Email != email {
		return nil, store.ErrNotFound
	}
	return r.user, nil
}

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:     "test-secret",
		MaxAge:     30 * 24 * time.Hour,
		RefreshAge: 24 * time.Hour,
	}
}

func newTestAuthService(repo *stubUserRepo, now func() time.Time) *authService {
	return &authService{
		userRepo: repo,
		cfg:      testJWTConfig(),
		logger:   logger.NewLogger("error", "text"),
		now:      now,
	}
}

func activeUser(t *testing.T, password string) *models.User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &models.User{
		ID:       12,
		Name:     "Pak RT",
		Email:    "rt@warga.id",
		Password: string(hashed),
		Role:     models.RoleAdmin,
		Status:   "aktif",
	}
}

func TestLoginIssuesTokenWithIdentityClaims(t *testing.T) {
	svc := newTestAuthService(&stubUserRepo{user: activeUser(t, "rahasia1")}, time.Now)

	token, user, err := svc.Login(context.Background(), "rt@warga.id", "rahasia1")

	require.NoError(t, err)
	assert.Equal(t, uint(12), user.ID)

	claims, err := svc.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(12), claims.UserID())
	assert.Equal(t, models.RoleAdmin, claims.Role)
	assert.Equal(t, "Pak RT", claims.Name)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	user := activeUser(t, "rahasia1")

	tests := []struct {
		name     string
		repo     *stubUserRepo
		email    string
		password string
	}{
		{"unknown email", &stubUserRepo{user: user}, "lain@warga.id", "rahasia1"},
		{"wrong password", &stubUserRepo{user: user}, "rt@warga.id", "salah"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestAuthService(tt.repo, time.Now)
			_, _, err := svc.Login(context.Background(), tt.email, tt.password)
			assert.ErrorIs(t, err, ErrInvalidCredentials)
		})
	}

	t.Run("inactive account", func(t *testing.T) {
		inactive := activeUser(t, "rahasia1")
		inactive.Status = "nonaktif"
		svc := newTestAuthService(&stubUserRepo{user: inactive}, time.Now)
		_, _, err := svc.Login(context.Background(), "rt@warga.id", "rahasia1")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	svc := newTestAuthService(&stubUserRepo{user: activeUser(t, "rahasia1")}, time.Now)
	token, _, err := svc.Login(context.Background(), "rt@warga.id", "rahasia1")
	require.NoError(t, err)

	other := newTestAuthService(&stubUserRepo{}, time.Now)
	other.cfg.Secret = "different-secret"

	_, err = other.ParseToken(token)
	assert.Error(t, err)
}

func TestRefreshIfStaleKeepsYoungTokens(t *testing.T) {
	issued := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	svc := newTestAuthService(&stubUserRepo{user: activeUser(t, "rahasia1")}, func() time.Time { return issued })

	token, _, err := svc.Login(context.Background(), "rt@warga.id", "rahasia1")
	require.NoError(t, err)

	// an hour later the token is still inside the refresh window
	svc.now = func() time.Time { return issued.Add(time.Hour) }
	same, changed, err := svc.RefreshIfStale(token)

	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, token, same)
}

func TestRefreshIfStaleReissuesOldTokens(t *testing.T) {
	issued := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	svc := newTestAuthService(&stubUserRepo{user: activeUser(t, "rahasia1")}, func() time.Time { return issued })

	token, _, err := svc.Login(context.Background(), "rt@warga.id", "rahasia1")
	require.NoError(t, err)

	later := issued.Add(25 * time.Hour)
	svc.now = func() time.Time { return later }
	refreshed, changed, err := svc.RefreshIfStale(token)

	require.NoError(t, err)
	assert.True(t, changed)
	assert.NotEqual(t, token, refreshed)

	claims, err := svc.ParseToken(refreshed)
	require.NoError(t, err)
	assert.Equal(t, uint(12), claims.UserID())
	assert.Equal(t, later.Unix(), claims.IssuedAt.Unix())
}

func TestHashPasswordRoundTrip(t *testing.T) {
	hashed, err := HashPassword("rahasia1")
	require.NoError(t, err)
	assert.NotEqual(t, "rahasia1", hashed)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hashed), []byte("rahasia1")))
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(hashed), []byte("salah")))
}

package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"rtrw-admin-svc/internal/config"
	"rtrw-admin-svc/internal/models"
	"rtrw-admin-svc/internal/service"
	"rtrw-admin-svc/pkg/logger"
)

type stubAuthService struct {
	claims    *service.SessionClaims
	refreshed string
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	return "", nil, errors.New("not implemented")
}

func (s *stubAuthService) ParseToken(tokenString string) (*service.SessionClaims, error) {
	if s.claims == nil {
		return nil, errors.New("invalid session token")
	}
	return s.claims, nil
}

func (s *stubAuthService) RefreshIfStale(tokenString string) (string, bool, error) {
	if s.refreshed != "" {
		return s.refreshed, true, nil
	}
	return tokenString, false, nil
}

func sessionClaims(id, role, name string) *service.SessionClaims {
	claims := &service.SessionClaims{Role: role, Name: name}
	claims.Subject = id
	return claims
}

func newAuthRouter(svc service.AuthService, extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	cfg := config.JWTConfig{Secret: "test", MaxAge: 30 * 24 * time.Hour, RefreshAge: 24 * time.Hour}
	handlers := []gin.HandlerFunc{RequireAuth(svc, cfg, logger.NewLogger("error", "text"))}
	handlers = append(handlers, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		identity, _ := CurrentIdentity(c)
		c.JSON(http.StatusOK, identity)
	})
	router.GET("/protected", handlers...)

	return router
}

func TestRequireAuthRejectsMissingToken(t *testing.T) {
	router := newAuthRouter(&stubAuthService{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthRejectsInvalidToken(t *testing.T) {
	router := newAuthRouter(&stubAuthService{claims: nil})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthAcceptsBearerHeader(t *testing.T) {
	router := newAuthRouter(&stubAuthService{claims: sessionClaims("12", "admin", "Pak RT")})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Pak RT")
}

func TestRequireAuthAcceptsCookie(t *testing.T) {
	router := newAuthRouter(&stubAuthService{claims: sessionClaims("12", "admin", "Pak RT")})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: AuthCookieName, Value: "some-token"})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireAuthReissuesStaleCookie(t *testing.T) {
	router := newAuthRouter(&stubAuthService{
		claims:    sessionClaims("12", "admin", "Pak RT"),
		refreshed: "fresh-token",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: AuthCookieName, Value: "stale-token"})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	cookies := w.Result().Cookies()
	var found bool
	for _, cookie := range cookies {
		if cookie.Name == AuthCookieName {
			found = true
			assert.Equal(t, "fresh-token", cookie.Value)
			assert.True(t, cookie.HttpOnly)
		}
	}
	assert.True(t, found, "expected a refreshed auth cookie")
}

func TestRequireRole(t *testing.T) {
	t.Run("matching role passes", func(t *testing.T) {
		router := newAuthRouter(
			&stubAuthService{claims: sessionClaims("1", models.RoleSuperAdmin, "Admin")},
			RequireRole(models.RoleSuperAdmin),
		)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer token")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("other role forbidden", func(t *testing.T) {
		router := newAuthRouter(
			&stubAuthService{claims: sessionClaims("2", models.RolePengurus, "Pengurus")},
			RequireRole(models.RoleSuperAdmin),
		)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer token")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

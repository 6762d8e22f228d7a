package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"rtrw-admin-svc/internal/config"
	"rtrw-admin-svc/internal/service"
	"rtrw-admin-svc/pkg/logger"
	"rtrw-admin-svc/pkg/utils"
)

// AuthCookieName is the cookie the session token travels in when the
// client does not send an Authorization header
const AuthCookieName = "auth-token"

const identityKey = "identity"

// Identity is the authenticated caller, resolved once per request and
// passed explicitly to anything that needs it
type Identity struct {
	ID   uint   `json:"id"`
	Role string `json:"role"`
	Name string `json:"name"`
}

// CurrentIdentity returns the identity set by RequireAuth. The second
// return value is false on unauthenticated requests, which callers must
// branch on explicitly.
func CurrentIdentity(c *gin.Context) (Identity, bool) {
	value, exists := c.Get(identityKey)
	if !exists {
		return Identity{}, false
	}
	identity, ok := value.(Identity)
	return identity, ok
}

// RequireAuth gates protected routes. It validates the session token,
// exposes the caller's identity to handlers, and re-issues the cookie
// when the token has aged past the rolling refresh window.
func RequireAuth(authService service.AuthService, jwtCfg config.JWTConfig, log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := TokenFromRequest(c)
		if tokenString == "" {
			utils.UnauthorizedResponse(c, "Authentication required")
			c.Abort()
			return
		}

		claims, err := authService.ParseToken(tokenString)
		if err != nil {
			log.WithError(err).Warn("Rejected session token")
			utils.UnauthorizedResponse(c, "Invalid or expired session")
			c.Abort()
			return
		}

		// sliding refresh keeps active sessions alive without re-login
		if refreshed, changed, err := authService.RefreshIfStale(tokenString); err == nil && changed {
			c.SetCookie(AuthCookieName, refreshed, int(jwtCfg.MaxAge.Seconds()), "/", "", false, true)
		}

		c.Set(identityKey, Identity{
			ID:   claims.UserID(),
			Role: claims.Role,
			Name: claims.Name,
		})
		c.Next()
	}
}

// RequireRole rejects authenticated callers whose role is not listed
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := CurrentIdentity(c)
		if !ok {
			utils.UnauthorizedResponse(c, "Authentication required")
			c.Abort()
			return
		}
		for _, role := range roles {
			if identity.Role == role {
				c.Next()
				return
			}
		}
		utils.ForbiddenResponse(c, "Insufficient role")
		c.Abort()
	}
}

// TokenFromRequest reads the session token from the Authorization header
// or the auth cookie
func TokenFromRequest(c *gin.Context) string {
	if header := c.GetHeader("Authorization"); header != "" {
		if strings.HasPrefix(header, "Bearer ") {
			return strings.TrimPrefix(header, "Bearer ")
		}
	}
	if cookie, err := c.Cookie(AuthCookieName); err == nil {
		return cookie
	}
	return ""
}

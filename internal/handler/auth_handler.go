package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"rtrw-admin-svc/internal/config"
	"rtrw-admin-svc/internal/middleware"
	"rtrw-admin-svc/internal/service"
	"rtrw-admin-svc/pkg/logger"
	"rtrw-admin-svc/pkg/utils"
)

// LoginRequest is the credential payload for the login endpoint
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the session token and the authenticated user
type LoginResponse struct {
	Token string      `json:"token"`
	User  interface{} `json:"user"`
}

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService service.AuthService
	jwtCfg      config.JWTConfig
	logger      *logger.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService service.AuthService, jwtCfg config.JWTConfig, logger *logger.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		jwtCfg:      jwtCfg,
		logger:      logger,
	}
}

// Login handles POST /api/v1/auth/login
// @Summary Log in
// @Description Verify credentials and issue a session token. The token is returned in the body and also set as an httpOnly cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} utils.APIResponse{data=LoginResponse}
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /api/v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Email and password are required", err)
		return
	}

	token, user, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			utils.UnauthorizedResponse(c, "Invalid email or password")
			return
		}
		h.logger.WithError(err).Error("Login failed")
		utils.InternalServerErrorResponse(c, "Login failed", err)
		return
	}

	c.SetCookie(middleware.AuthCookieName, token, int(h.jwtCfg.MaxAge.Seconds()), "/", "", false, true)

	utils.SuccessResponse(c, "Login successful", LoginResponse{
		Token: token,
		User:  user,
	})
}

// Refresh handles POST /api/v1/auth/refresh
// @Summary Refresh session
// @Description Re-issue the session token when it has aged past the rolling refresh window. Younger tokens are returned unchanged.
// @Tags auth
// @Produce json
// @Success 200 {object} utils.APIResponse{data=LoginResponse}
// @Failure 401 {object} utils.APIResponse
// @Router /api/v1/auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	tokenString := middleware.TokenFromRequest(c)
	if tokenString == "" {
		utils.UnauthorizedResponse(c, "Authentication required")
		return
	}

	refreshed, changed, err := h.authService.RefreshIfStale(tokenString)
	if err != nil {
		h.logger.WithError(err).Warn("Rejected refresh attempt")
		utils.UnauthorizedResponse(c, "Invalid or expired session")
		return
	}

	if changed {
		c.SetCookie(middleware.AuthCookieName, refreshed, int(h.jwtCfg.MaxAge.Seconds()), "/", "", false, true)
	}

	utils.SuccessResponse(c, "Session refreshed", LoginResponse{Token: refreshed})
}

// Logout handles POST /api/v1/auth/logout
// @Summary Log out
// @Description Clear the session cookie. Stateless tokens remain valid until expiry; clients must also discard any stored token.
// @Tags auth
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /api/v1/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(middleware.AuthCookieName, "", -1, "/", "", false, true)
	utils.SuccessResponse(c, "Logout successful", nil)
}

// Me handles GET /api/v1/auth/me
// @Summary Current session
// @Description Return the identity of the authenticated caller
// @Tags auth
// @Produce json
// @Success 200 {object} utils.APIResponse{data=middleware.Identity}
// @Failure 401 {object} utils.APIResponse
// @Router /api/v1/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		utils.UnauthorizedResponse(c, "Authentication required")
		return
	}

	utils.SuccessResponse(c, "Session retrieved successfully", identity)
}

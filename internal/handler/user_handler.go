package handler

import (
	"github.com/gin-gonic/gin"

	"rtrw-admin-svc/internal/service"
	"rtrw-admin-svc/pkg/logger"
	"rtrw-admin-svc/pkg/utils"
)

// UserHandler handles user account management HTTP endpoints. The whole
// group sits behind the super-admin role gate.
type UserHandler struct {
	userService service.UserService
	logger      *logger.Logger
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService service.UserService, logger *logger.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		logger:      logger,
	}
}

// ListUsers handles GET /api/v1/users
// @Summary List user accounts
// @Tags users
// @Produce json
// @Param role query string false "Filter by role (super-admin, admin, pengurus)"
// @Param status query string false "Filter by status (aktif, nonaktif)"
// @Success 200 {object} utils.APIResponse{data=[]models.User}
// @Failure 500 {object} utils.APIResponse
// @Router /api/v1/users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	filters := equalityFilters(c, "role", "status")

	users, err := h.userService.List(c.Request.Context(), filters)
	if err != nil {
		h.logger.WithError(err).Error("Failed to list users")
		utils.InternalServerErrorResponse(c, "Failed to fetch users", err)
		return
	}

	utils.SuccessResponse(c, "Users retrieved successfully", users)
}

// GetUser handles GET /api/v1/users/:id
// @Summary Get user by ID
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} utils.APIResponse{data=models.User}
// @Failure 404 {object} utils.APIResponse
// @Router /api/v1/users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	user, err := h.userService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, h.logger, err, "User not found", "Failed to fetch user")
		return
	}

	utils.SuccessResponse(c, "User retrieved successfully", user)
}

// CreateUser handles POST /api/v1/users
// @Summary Create user account
// @Description Create a dashboard account. The password is hashed before storage and never returned.
// @Tags users
// @Accept json
// @Produce json
// @Param request body service.UserInput true "User payload"
// @Success 201 {object} utils.APIResponse{data=models.User}
// @Failure 400 {object} utils.APIResponse
// @Router /api/v1/users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var input service.UserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.WithError(err).Error("Invalid request body")
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	user, err := h.userService.Create(c.Request.Context(), &input)
	if err != nil {
		respondServiceError(c, h.logger, err, "User not found", "Failed to create user")
		return
	}

	utils.CreatedResponse(c, "User created successfully", user)
}

// UpdateUser handles PUT /api/v1/users/:id
// @Summary Update user account
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body service.UserUpdateInput true "Fields to update"
// @Success 200 {object} utils.APIResponse{data=models.User}
// @Failure 404 {object} utils.APIResponse
// @Router /api/v1/users/{id} [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input service.UserUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.WithError(err).Error("Invalid request body")
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	user, err := h.userService.Update(c.Request.Context(), id, &input)
	if err != nil {
		respondServiceError(c, h.logger, err, "User not found", "Failed to update user")
		return
	}

	utils.SuccessResponse(c, "User updated successfully", user)
}

// DeleteUser handles DELETE /api/v1/users/:id
// @Summary Delete user account
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/v1/users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.userService.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, h.logger, err, "User not found", "Failed to delete user")
		return
	}

	utils.SuccessResponse(c, "User deleted successfully", nil)
}

package handler

import (
	"github.com/gin-gonic/gin"

	"rtrw-admin-svc/internal/service"
	"rtrw-admin-svc/pkg/logger"
	"rtrw-admin-svc/pkg/utils"
)

// ActivityHandler handles community activity HTTP endpoints
type ActivityHandler struct {
	activityService service.ActivityService
	logger          *logger.Logger
}

// NewActivityHandler creates a new activity handler
func NewActivityHandler(activityService service.ActivityService, logger *logger.Logger) *ActivityHandler {
	return &ActivityHandler{
		activityService: activityService,
		logger:          logger,
	}
}

// ListActivities handles GET /api/v1/activities
// @Summary List activities
// @Tags activities
// @Produce json
// @Param status query string false "Filter by status (planned, ongoing, completed, cancelled)"
// @Param date query string false "Filter by date (YYYY-MM-DD)"
// @Success 200 {object} utils.APIResponse{data=[]models.Activity}
// @Failure 500 {object} utils.APIResponse
// @Router /api/v1/activities [get]
func (h *ActivityHandler) ListActivities(c *gin.Context) {
	filters := equalityFilters(c, "status", "date")

	activities, err := h.activityService.List(c.Request.Context(), filters)
	if err != nil {
		h.logger.WithError(err).Error("Failed to list activities")
		utils.InternalServerErrorResponse(c, "Failed to fetch activities", err)
		return
	}

	utils.SuccessResponse(c, "Activities retrieved successfully", activities)
}

// GetActivity handles GET /api/v1/activities/:id
// @Summary Get activity by ID
// @Tags activities
// @Produce json
// @Param id path int true "Activity ID"
// @Success 200 {object} utils.APIResponse{data=models.Activity}
// @Failure 404 {object} utils.APIResponse
// @Router /api/v1/activities/{id} [get]
func (h *ActivityHandler) GetActivity(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	activity, err := h.activityService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, h.logger, err, "Activity not found", "Failed to fetch activity")
		return
	}

	utils.SuccessResponse(c, "Activity retrieved successfully", activity)
}

// CreateActivity handles POST /api/v1/activities
// @Summary Schedule activity
// @Tags activities
// @Accept json
// @Produce json
// @Param request body service.ActivityInput true "Activity payload"
// @Success 201 {object} utils.APIResponse{data=models.Activity}
// @Failure 400 {object} utils.APIResponse
// @Router /api/v1/activities [post]
func (h *ActivityHandler) CreateActivity(c *gin.Context) {
	var input service.ActivityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.WithError(err).Error("Invalid request body")
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	activity, err := h.activityService.Create(c.Request.Context(), &input)
	if err != nil {
		respondServiceError(c, h.logger, err, "Activity not found", "Failed to create activity")
		return
	}

	h.logger.WithField("activity_id", activity.ID).Info("Activity created successfully")

	utils.CreatedResponse(c, "Activity created successfully", activity)
}

// UpdateActivity handles PUT /api/v1/activities/:id
// @Summary Update activity
// @Tags activities
// @Accept json
// @Produce json
// @Param id path int true "Activity ID"
// @Param request body service.ActivityUpdateInput true "Fields to update"
// @Success 200 {object} utils.APIResponse{data=models.Activity}
// @Failure 404 {object} utils.APIResponse
// @Router /api/v1/activities/{id} [put]
func (h *ActivityHandler) UpdateActivity(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input service.ActivityUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.WithError(err).Error("Invalid request body")
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	activity, err := h.activityService.Update(c.Request.Context(), id, &input)
	if err != nil {
		respondServiceError(c, h.logger, err, "Activity not found", "Failed to update activity")
		return
	}

	utils.SuccessResponse(c, "Activity updated successfully", activity)
}

// DeleteActivity handles DELETE /api/v1/activities/:id
// @Summary Delete activity
// @Tags activities
// @Produce json
// @Param id path int true "Activity ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/v1/activities/{id} [delete]
func (h *ActivityHandler) DeleteActivity(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.activityService.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, h.logger, err, "Activity not found", "Failed to delete activity")
		return
	}

	utils.SuccessResponse(c, "Activity deleted successfully", nil)
}

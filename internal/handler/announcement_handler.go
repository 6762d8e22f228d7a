package handler

import (
	"github.com/gin-gonic/gin"

	"rtrw-admin-svc/internal/service"
	"rtrw-admin-svc/pkg/logger"
	"rtrw-admin-svc/pkg/utils"
)

// AnnouncementHandler handles announcement-related HTTP requests
type AnnouncementHandler struct {
	announcementService service.AnnouncementService
	logger              *logger.Logger
}

// NewAnnouncementHandler creates a new announcement handler
func NewAnnouncementHandler(announcementService service.AnnouncementService, logger *logger.Logger) *AnnouncementHandler {
	return &AnnouncementHandler{
		announcementService: announcementService,
		logger:              logger,
	}
}

// ListAnnouncements handles GET /api/v1/announcements
// @Summary List announcements
// @Description List all announcements, optionally filtered by priority and status
// @Tags announcements
// @Accept json
// @Produce json
// @Param priority query string false "Filter by priority (rendah, sedang, tinggi)"
// @Param status query string false "Filter by status (draft, published)"
// @Success 200 {object} utils.APIResponse{data=[]models.Announcement} "Announcements retrieved successfully"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/announcements [get]
func (h *AnnouncementHandler) ListAnnouncements(c *gin.Context) {
	filters := equalityFilters(c, "priority", "status")

	announcements, err := h.announcementService.List(c.Request.Context(), filters)
	if err != nil {
		h.logger.WithError(err).Error("Failed to list announcements")
		utils.InternalServerErrorResponse(c, "Failed to fetch announcements", err)
		return
	}

	utils.SuccessResponse(c, "Announcements retrieved successfully", announcements)
}

// GetAnnouncement handles GET /api/v1/announcements/:id
// @Summary Get announcement by ID
// @Tags announcements
// @Accept json
// @Produce json
// @Param id path int true "Announcement ID"
// @Success 200 {object} utils.APIResponse{data=models.Announcement} "Announcement retrieved successfully"
// @Failure 400 {object} utils.APIResponse "Invalid ID"
// @Failure 404 {object} utils.APIResponse "Announcement not found"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/announcements/{id} [get]
func (h *AnnouncementHandler) GetAnnouncement(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	announcement, err := h.announcementService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, h.logger, err, "Announcement not found", "Failed to fetch announcement")
		return
	}

	utils.SuccessResponse(c, "Announcement retrieved successfully", announcement)
}

// CreateAnnouncement handles POST /api/v1/announcements
// @Summary Create announcement
// @Description Create a new announcement. Priority must be one of rendah, sedang, tinggi; status one of draft, published.
// @Tags announcements
// @Accept json
// @Produce json
// @Param request body service.AnnouncementInput true "Announcement payload"
// @Success 201 {object} utils.APIResponse{data=models.Announcement} "Announcement created successfully"
// @Failure 400 {object} utils.APIResponse "Validation error"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/announcements [post]
func (h *AnnouncementHandler) CreateAnnouncement(c *gin.Context) {
	var input service.AnnouncementInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.WithError(err).Error("Invalid request body")
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	announcement, err := h.announcementService.Create(c.Request.Context(), &input)
	if err != nil {
		respondServiceError(c, h.logger, err, "Announcement not found", "Failed to create announcement")
		return
	}

	h.logger.WithField("announcement_id", announcement.ID).Info("Announcement created successfully")

	utils.CreatedResponse(c, "Announcement created successfully", announcement)
}

// UpdateAnnouncement handles PUT /api/v1/announcements/:id
// @Summary Update announcement
// @Description Partially update an announcement; only the provided fields are touched
// @Tags announcements
// @Accept json
// @Produce json
// @Param id path int true "Announcement ID"
// @Param request body service.AnnouncementUpdateInput true "Fields to update"
// @Success 200 {object} utils.APIResponse{data=models.Announcement} "Announcement updated successfully"
// @Failure 400 {object} utils.APIResponse "Validation error"
// @Failure 404 {object} utils.APIResponse "Announcement not found"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/announcements/{id} [put]
func (h *AnnouncementHandler) UpdateAnnouncement(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input service.AnnouncementUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.WithError(err).Error("Invalid request body")
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	announcement, err := h.announcementService.Update(c.Request.Context(), id, &input)
	if err != nil {
		respondServiceError(c, h.logger, err, "Announcement not found", "Failed to update announcement")
		return
	}

	utils.SuccessResponse(c, "Announcement updated successfully", announcement)
}

// DeleteAnnouncement handles DELETE /api/v1/announcements/:id
// @Summary Delete announcement
// @Tags announcements
// @Accept json
// @Produce json
// @Param id path int true "Announcement ID"
// @Success 200 {object} utils.APIResponse "Announcement deleted successfully"
// @Failure 400 {object} utils.APIResponse "Invalid ID"
// @Failure 404 {object} utils.APIResponse "Announcement not found"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/announcements/{id} [delete]
func (h *AnnouncementHandler) DeleteAnnouncement(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.announcementService.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, h.logger, err, "Announcement not found", "Failed to delete announcement")
		return
	}

	utils.SuccessResponse(c, "Announcement deleted successfully", nil)
}

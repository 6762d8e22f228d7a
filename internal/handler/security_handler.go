package handler

import (
	"github.com/gin-gonic/gin"

	"rtrw-admin-svc/internal/service"
	"rtrw-admin-svc/pkg/logger"
	"rtrw-admin-svc/pkg/utils"
)

// SecurityHandler handles security incident report HTTP endpoints
type SecurityHandler struct {
	securityService service.SecurityService
	logger          *logger.Logger
}

// NewSecurityHandler creates a new security handler
func NewSecurityHandler(securityService service.SecurityService, logger *logger.Logger) *SecurityHandler {
	return &SecurityHandler{
		securityService: securityService,
		logger:          logger,
	}
}

// ListSecurityReports handles GET /api/v1/securities
// @Summary List security reports
// @Tags securities
// @Produce json
// @Param status query string false "Filter by status (open, in-progress, resolved)"
// @Success 200 {object} utils.APIResponse{data=[]models.SecurityReport}
// @Failure 500 {object} utils.APIResponse
// @Router /api/v1/securities [get]
func (h *SecurityHandler) ListSecurityReports(c *gin.Context) {
	filters := equalityFilters(c, "status")

	reports, err := h.securityService.List(c.Request.Context(), filters)
	if err != nil {
		h.logger.WithError(err).Error("Failed to list security reports")
		utils.InternalServerErrorResponse(c, "Failed to fetch security reports", err)
		return
	}

	utils.SuccessResponse(c, "Security reports retrieved successfully", reports)
}

// GetSecurityReport handles GET /api/v1/securities/:id
// @Summary Get security report by ID
// @Tags securities
// @Produce json
// @Param id path int true "Security report ID"
// @Success 200 {object} utils.APIResponse{data=models.SecurityReport}
// @Failure 404 {object} utils.APIResponse
// @Router /api/v1/securities/{id} [get]
func (h *SecurityHandler) GetSecurityReport(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	report, err := h.securityService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, h.logger, err, "Security report not found", "Failed to fetch security report")
		return
	}

	utils.SuccessResponse(c, "Security report retrieved successfully", report)
}

// CreateSecurityReport handles POST /api/v1/securities
// @Summary File security report
// @Tags securities
// @Accept json
// @Produce json
// @Param request body service.SecurityInput true "Security report payload"
// @Success 201 {object} utils.APIResponse{data=models.SecurityReport}
// @Failure 400 {object} utils.APIResponse
// @Router /api/v1/securities [post]
func (h *SecurityHandler) CreateSecurityReport(c *gin.Context) {
	var input service.SecurityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.WithError(err).Error("Invalid request body")
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	report, err := h.securityService.Create(c.Request.Context(), &input)
	if err != nil {
		respondServiceError(c, h.logger, err, "Security report not found", "Failed to create security report")
		return
	}

	h.logger.WithField("security_id", report.ID).Info("Security report created successfully")

	utils.CreatedResponse(c, "Security report created successfully", report)
}

// UpdateSecurityReport handles PUT /api/v1/securities/:id
// @Summary Update security report
// @Tags securities
// @Accept json
// @Produce json
// @Param id path int true "Security report ID"
// @Param request body service.SecurityUpdateInput true "Fields to update"
// @Success 200 {object} utils.APIResponse{data=models.SecurityReport}
// @Failure 404 {object} utils.APIResponse
// @Router /api/v1/securities/{id} [put]
func (h *SecurityHandler) UpdateSecurityReport(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input service.SecurityUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.WithError(err).Error("Invalid request body")
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	report, err := h.securityService.Update(c.Request.Context(), id, &input)
	if err != nil {
		respondServiceError(c, h.logger, err, "Security report not found", "Failed to update security report")
		return
	}

	utils.SuccessResponse(c, "Security report updated successfully", report)
}

// DeleteSecurityReport handles DELETE /api/v1/securities/:id
// @Summary Delete security report
// @Tags securities
// @Produce json
// @Param id path int true "Security report ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/v1/securities/{id} [delete]
func (h *SecurityHandler) DeleteSecurityReport(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.securityService.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, h.logger, err, "Security report not found", "Failed to delete security report")
		return
	}

	utils.SuccessResponse(c, "Security report deleted successfully", nil)
}

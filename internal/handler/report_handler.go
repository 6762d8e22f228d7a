package handler

import (
	"github.com/gin-gonic/gin"

	"rtrw-admin-svc/internal/service"
	"rtrw-admin-svc/pkg/logger"
	"rtrw-admin-svc/pkg/utils"
)

// ReportHandler handles resident complaint report HTTP endpoints
type ReportHandler struct {
	reportService service.ReportService
	logger        *logger.Logger
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService service.ReportService, logger *logger.Logger) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
		logger:        logger,
	}
}

// ListReports handles GET /api/v1/reports
// @Summary List reports
// @Tags reports
// @Produce json
// @Param status query string false "Filter by status (open, in-progress, resolved, closed)"
// @Param priority query string false "Filter by priority (rendah, sedang, tinggi)"
// @Success 200 {object} utils.APIResponse{data=[]models.Report}
// @Failure 500 {object} utils.APIResponse
// @Router /api/v1/reports [get]
func (h *ReportHandler) ListReports(c *gin.Context) {
	filters := equalityFilters(c, "status", "priority")

	reports, err := h.reportService.List(c.Request.Context(), filters)
	if err != nil {
		h.logger.WithError(err).Error("Failed to list reports")
		utils.InternalServerErrorResponse(c, "Failed to fetch reports", err)
		return
	}

	utils.SuccessResponse(c, "Reports retrieved successfully", reports)
}

// GetReport handles GET /api/v1/reports/:id
// @Summary Get report by ID
// @Tags reports
// @Produce json
// @Param id path int true "Report ID"
// @Success 200 {object} utils.APIResponse{data=models.Report}
// @Failure 404 {object} utils.APIResponse
// @Router /api/v1/reports/{id} [get]
func (h *ReportHandler) GetReport(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	report, err := h.reportService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, h.logger, err, "Report not found", "Failed to fetch report")
		return
	}

	utils.SuccessResponse(c, "Report retrieved successfully", report)
}

// CreateReport handles POST /api/v1/reports
// @Summary File report
// @Tags reports
// @Accept json
// @Produce json
// @Param request body service.ReportInput true "Report payload"
// @Success 201 {object} utils.APIResponse{data=models.Report}
// @Failure 400 {object} utils.APIResponse
// @Router /api/v1/reports [post]
func (h *ReportHandler) CreateReport(c *gin.Context) {
	var input service.ReportInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.WithError(err).Error("Invalid request body")
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	report, err := h.reportService.Create(c.Request.Context(), &input)
	if err != nil {
		respondServiceError(c, h.logger, err, "Report not found", "Failed to create report")
		return
	}

	h.logger.WithField("report_id", report.ID).Info("Report created successfully")

	utils.CreatedResponse(c, "Report created successfully", report)
}

// UpdateReport handles PUT /api/v1/reports/:id
// @Summary Update report
// @Tags reports
// @Accept json
// @Produce json
// @Param id path int true "Report ID"
// @Param request body service.ReportUpdateInput true "Fields to update"
// @Success 200 {object} utils.APIResponse{data=models.Report}
// @Failure 404 {object} utils.APIResponse
// @Router /api/v1/reports/{id} [put]
func (h *ReportHandler) UpdateReport(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input service.ReportUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.WithError(err).Error("Invalid request body")
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	report, err := h.reportService.Update(c.Request.Context(), id, &input)
	if err != nil {
		respondServiceError(c, h.logger, err, "Report not found", "Failed to update report")
		return
	}

	utils.SuccessResponse(c, "Report updated successfully", report)
}

// DeleteReport handles DELETE /api/v1/reports/:id
// @Summary Delete report
// @Tags reports
// @Produce json
// @Param id path int true "Report ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/v1/reports/{id} [delete]
func (h *ReportHandler) DeleteReport(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.reportService.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, h.logger, err, "Report not found", "Failed to delete report")
		return
	}

	utils.SuccessResponse(c, "Report deleted successfully", nil)
}

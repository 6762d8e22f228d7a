package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"rtrw-admin-svc/internal/service"
	"rtrw-admin-svc/pkg/logger"
	"rtrw-admin-svc/pkg/utils"
)

// FinanceHandler handles finance record HTTP endpoints, including the
// spreadsheet export
type FinanceHandler struct {
	financeService service.FinanceService
	logger         *logger.Logger
}

// NewFinanceHandler creates a new finance handler
func NewFinanceHandler(financeService service.FinanceService, logger *logger.Logger) *FinanceHandler {
	return &FinanceHandler{
		financeService: financeService,
		logger:         logger,
	}
}

// ListFinances handles GET /api/v1/finances
// @Summary List finance records
// @Tags finances
// @Produce json
// @Param finance_category query string false "Filter by direction (pemasukan, pengeluaran)"
// @Param category query string false "Filter by category label"
// @Success 200 {object} utils.APIResponse{data=[]models.FinanceRecord}
// @Failure 500 {object} utils.APIResponse
// @Router /api/v1/finances [get]
func (h *FinanceHandler) ListFinances(c *gin.Context) {
	filters := equalityFilters(c, "finance_category", "category")

	records, err := h.financeService.List(c.Request.Context(), filters)
	if err != nil {
		h.logger.WithError(err).Error("Failed to list finance records")
		utils.InternalServerErrorResponse(c, "Failed to fetch finance records", err)
		return
	}

	utils.SuccessResponse(c, "Finance records retrieved successfully", records)
}

// GetFinance handles GET /api/v1/finances/:id
// @Summary Get finance record by ID
// @Tags finances
// @Produce json
// @Param id path int true "Finance record ID"
// @Success 200 {object} utils.APIResponse{data=models.FinanceRecord}
// @Failure 404 {object} utils.APIResponse
// @Router /api/v1/finances/{id} [get]
func (h *FinanceHandler) GetFinance(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	record, err := h.financeService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, h.logger, err, "Finance record not found", "Failed to fetch finance record")
		return
	}

	utils.SuccessResponse(c, "Finance record retrieved successfully", record)
}

// CreateFinance handles POST /api/v1/finances
// @Summary Record finance transaction
// @Description Record an income (pemasukan) or expense (pengeluaran) transaction
// @Tags finances
// @Accept json
// @Produce json
// @Param request body service.FinanceInput true "Finance payload"
// @Success 201 {object} utils.APIResponse{data=models.FinanceRecord}
// @Failure 400 {object} utils.APIResponse
// @Router /api/v1/finances [post]
func (h *FinanceHandler) CreateFinance(c *gin.Context) {
	var input service.FinanceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.WithError(err).Error("Invalid request body")
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	record, err := h.financeService.Create(c.Request.Context(), &input)
	if err != nil {
		respondServiceError(c, h.logger, err, "Finance record not found", "Failed to create finance record")
		return
	}

	h.logger.WithField("finance_id", record.ID).Info("Finance record created successfully")

	utils.CreatedResponse(c, "Finance record created successfully", record)
}

// UpdateFinance handles PUT /api/v1/finances/:id
// @Summary Update finance record
// @Tags finances
// @Accept json
// @Produce json
// @Param id path int true "Finance record ID"
// @Param request body service.FinanceUpdateInput true "Fields to update"
// @Success 200 {object} utils.APIResponse{data=models.FinanceRecord}
// @Failure 404 {object} utils.APIResponse
// @Router /api/v1/finances/{id} [put]
func (h *FinanceHandler) UpdateFinance(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input service.FinanceUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.WithError(err).Error("Invalid request body")
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	record, err := h.financeService.Update(c.Request.Context(), id, &input)
	if err != nil {
		respondServiceError(c, h.logger, err, "Finance record not found", "Failed to update finance record")
		return
	}

	utils.SuccessResponse(c, "Finance record updated successfully", record)
}

// DeleteFinance handles DELETE /api/v1/finances/:id
// @Summary Delete finance record
// @Tags finances
// @Produce json
// @Param id path int true "Finance record ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/v1/finances/{id} [delete]
func (h *FinanceHandler) DeleteFinance(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.financeService.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, h.logger, err, "Finance record not found", "Failed to delete finance record")
		return
	}

	utils.SuccessResponse(c, "Finance record deleted successfully", nil)
}

// ExportFinances handles GET /api/v1/finances/export
// @Summary Export finance report as Excel
// @Description Download the finance ledger as an xlsx workbook with an income/expense/balance summary. Optional date range and category filters.
// @Tags finances
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param start_date query string false "Start date (YYYY-MM-DD, inclusive)"
// @Param end_date query string false "End date (YYYY-MM-DD, inclusive)"
// @Param category query string false "Filter by direction (pemasukan, pengeluaran, all)"
// @Success 200 {file} binary "Excel file"
// @Failure 400 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Router /api/v1/finances/export [get]
func (h *FinanceHandler) ExportFinances(c *gin.Context) {
	opts := service.ExportOptions{
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
		Category:  c.Query("category"),
	}

	content, filename, err := h.financeService.Export(c.Request.Context(), opts)
	if err != nil {
		respondServiceError(c, h.logger, err, "Finance record not found", "Failed to export finance report")
		return
	}

	h.logger.WithFields(map[string]interface{}{
		"filename": filename,
		"bytes":    len(content),
	}).Info("Finance report exported")

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", content)
}

package handler

import (
	"github.com/gin-gonic/gin"

	"rtrw-admin-svc/internal/service"
	"rtrw-admin-svc/pkg/logger"
	"rtrw-admin-svc/pkg/utils"
)

// ResidentHandler handles resident-related HTTP requests
type ResidentHandler struct {
	residentService service.ResidentService
	logger          *logger.Logger
}

// NewResidentHandler creates a new resident handler
func NewResidentHandler(residentService service.ResidentService, logger *logger.Logger) *ResidentHandler {
	return &ResidentHandler{
		residentService: residentService,
		logger:          logger,
	}
}

// ListResidents handles GET /api/v1/residents
// @Summary List residents
// @Description List all residents, optionally filtered by status, rt and rw
// @Tags residents
// @Produce json
// @Param status query string false "Filter by status (aktif, pindah, meninggal)"
// @Param rt query string false "Filter by RT"
// @Param rw query string false "Filter by RW"
// @Success 200 {object} utils.APIResponse{data=[]models.Resident}
// @Failure 500 {object} utils.APIResponse
// @Router /api/v1/residents [get]
func (h *ResidentHandler) ListResidents(c *gin.Context) {
	filters := equalityFilters(c, "status", "rt", "rw")

	residents, err := h.residentService.List(c.Request.Context(), filters)
	if err != nil {
		h.logger.WithError(err).Error("Failed to list residents")
		utils.InternalServerErrorResponse(c, "Failed to fetch residents", err)
		return
	}

	utils.SuccessResponse(c, "Residents retrieved successfully", residents)
}

// GetResident handles GET /api/v1/residents/:id
// @Summary Get resident by ID
// @Tags residents
// @Produce json
// @Param id path int true "Resident ID"
// @Success 200 {object} utils.APIResponse{data=models.Resident}
// @Failure 404 {object} utils.APIResponse
// @Router /api/v1/residents/{id} [get]
func (h *ResidentHandler) GetResident(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	resident, err := h.residentService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, h.logger, err, "Resident not found", "Failed to fetch resident")
		return
	}

	utils.SuccessResponse(c, "Resident retrieved successfully", resident)
}

// CreateResident handles POST /api/v1/residents
// @Summary Register resident
// @Tags residents
// @Accept json
// @Produce json
// @Param request body service.ResidentInput true "Resident payload"
// @Success 201 {object} utils.APIResponse{data=models.Resident}
// @Failure 400 {object} utils.APIResponse
// @Router /api/v1/residents [post]
func (h *ResidentHandler) CreateResident(c *gin.Context) {
	var input service.ResidentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.WithError(err).Error("Invalid request body")
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	resident, err := h.residentService.Create(c.Request.Context(), &input)
	if err != nil {
		respondServiceError(c, h.logger, err, "Resident not found", "Failed to create resident")
		return
	}

	h.logger.WithField("resident_id", resident.ID).Info("Resident created successfully")

	utils.CreatedResponse(c, "Resident created successfully", resident)
}

// UpdateResident handles PUT /api/v1/residents/:id
// @Summary Update resident
// @Tags residents
// @Accept json
// @Produce json
// @Param id path int true "Resident ID"
// @Param request body service.ResidentUpdateInput true "Fields to update"
// @Success 200 {object} utils.APIResponse{data=models.Resident}
// @Failure 404 {object} utils.APIResponse
// @Router /api/v1/residents/{id} [put]
func (h *ResidentHandler) UpdateResident(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input service.ResidentUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.WithError(err).Error("Invalid request body")
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	resident, err := h.residentService.Update(c.Request.Context(), id, &input)
	if err != nil {
		respondServiceError(c, h.logger, err, "Resident not found", "Failed to update resident")
		return
	}

	utils.SuccessResponse(c, "Resident updated successfully", resident)
}

// DeleteResident handles DELETE /api/v1/residents/:id
// @Summary Delete resident
// @Tags residents
// @Produce json
// @Param id path int true "Resident ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/v1/residents/{id} [delete]
func (h *ResidentHandler) DeleteResident(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.residentService.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, h.logger, err, "Resident not found", "Failed to delete resident")
		return
	}

	utils.SuccessResponse(c, "Resident deleted successfully", nil)
}

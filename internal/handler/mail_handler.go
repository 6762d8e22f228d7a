package handler

import (
	"github.com/gin-gonic/gin"

	"rtrw-admin-svc/internal/service"
	"rtrw-admin-svc/pkg/logger"
	"rtrw-admin-svc/pkg/utils"
)

// MailHandler handles mail request HTTP endpoints
type MailHandler struct {
	mailService service.MailService
	logger      *logger.Logger
}

// NewMailHandler creates a new mail handler
func NewMailHandler(mailService service.MailService, logger *logger.Logger) *MailHandler {
	return &MailHandler{
		mailService: mailService,
		logger:      logger,
	}
}

// ListMails handles GET /api/v1/mails
// @Summary List mail requests
// @Tags mails
// @Produce json
// @Param status query string false "Filter by status (pending, diproses, selesai, ditolak)"
// @Param mail_category query string false "Filter by mail category"
// @Success 200 {object} utils.APIResponse{data=[]models.MailRequest}
// @Failure 500 {object} utils.APIResponse
// @Router /api/v1/mails [get]
func (h *MailHandler) ListMails(c *gin.Context) {
	filters := equalityFilters(c, "status", "mail_category")

	mails, err := h.mailService.List(c.Request.Context(), filters)
	if err != nil {
		h.logger.WithError(err).Error("Failed to list mail requests")
		utils.InternalServerErrorResponse(c, "Failed to fetch mail requests", err)
		return
	}

	utils.SuccessResponse(c, "Mail requests retrieved successfully", mails)
}

// GetMail handles GET /api/v1/mails/:id
// @Summary Get mail request by ID
// @Tags mails
// @Produce json
// @Param id path int true "Mail request ID"
// @Success 200 {object} utils.APIResponse{data=models.MailRequest}
// @Failure 404 {object} utils.APIResponse
// @Router /api/v1/mails/{id} [get]
func (h *MailHandler) GetMail(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	mail, err := h.mailService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, h.logger, err, "Mail request not found", "Failed to fetch mail request")
		return
	}

	utils.SuccessResponse(c, "Mail request retrieved successfully", mail)
}

// CreateMail handles POST /api/v1/mails
// @Summary File mail request
// @Tags mails
// @Accept json
// @Produce json
// @Param request body service.MailInput true "Mail request payload"
// @Success 201 {object} utils.APIResponse{data=models.MailRequest}
// @Failure 400 {object} utils.APIResponse
// @Router /api/v1/mails [post]
func (h *MailHandler) CreateMail(c *gin.Context) {
	var input service.MailInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.WithError(err).Error("Invalid request body")
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	mail, err := h.mailService.Create(c.Request.Context(), &input)
	if err != nil {
		respondServiceError(c, h.logger, err, "Mail request not found", "Failed to create mail request")
		return
	}

	h.logger.WithField("mail_id", mail.ID).Info("Mail request created successfully")

	utils.CreatedResponse(c, "Mail request created successfully", mail)
}

// UpdateMail handles PUT /api/v1/mails/:id
// @Summary Update mail request
// @Tags mails
// @Accept json
// @Produce json
// @Param id path int true "Mail request ID"
// @Param request body service.MailUpdateInput true "Fields to update"
// @Success 200 {object} utils.APIResponse{data=models.MailRequest}
// @Failure 404 {object} utils.APIResponse
// @Router /api/v1/mails/{id} [put]
func (h *MailHandler) UpdateMail(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input service.MailUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.WithError(err).Error("Invalid request body")
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	mail, err := h.mailService.Update(c.Request.Context(), id, &input)
	if err != nil {
		respondServiceError(c, h.logger, err, "Mail request not found", "Failed to update mail request")
		return
	}

	utils.SuccessResponse(c, "Mail request updated successfully", mail)
}

// DeleteMail handles DELETE /api/v1/mails/:id
// @Summary Delete mail request
// @Tags mails
// @Produce json
// @Param id path int true "Mail request ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/v1/mails/{id} [delete]
func (h *MailHandler) DeleteMail(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.mailService.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, h.logger, err, "Mail request not found", "Failed to delete mail request")
		return
	}

	utils.SuccessResponse(c, "Mail request deleted successfully", nil)
}

package handler

import (
	"github.com/gin-gonic/gin"

	"rtrw-admin-svc/internal/service"
	"rtrw-admin-svc/pkg/logger"
	"rtrw-admin-svc/pkg/utils"
)

// DashboardHandler serves the aggregated dashboard counters
type DashboardHandler struct {
	dashboardService service.DashboardService
	logger           *logger.Logger
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService service.DashboardService, logger *logger.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		logger:           logger,
	}
}

// GetStats handles GET /api/v1/dashboard/stats
// @Summary Dashboard statistics
// @Description Entity counters plus the current month's income, expense and balance
// @Tags dashboard
// @Produce json
// @Success 200 {object} utils.APIResponse{data=response.DashboardStatsResponse}
// @Failure 500 {object} utils.APIResponse
// @Router /api/v1/dashboard/stats [get]
func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats, err := h.dashboardService.GetStats(c.Request.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to collect dashboard stats")
		utils.InternalServerErrorResponse(c, "Failed to fetch dashboard statistics", err)
		return
	}

	utils.SuccessResponse(c, "Dashboard statistics retrieved successfully", stats)
}

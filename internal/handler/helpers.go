package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"rtrw-admin-svc/internal/service"
	"rtrw-admin-svc/internal/store"
	"rtrw-admin-svc/pkg/logger"
	"rtrw-admin-svc/pkg/utils"
)

// parseID reads and validates the numeric :id path parameter
func parseID(c *gin.Context) (uint, bool) {
	idParam := c.Param("id")
	id, err := strconv.ParseUint(idParam, 10, 32)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid ID", err)
		return 0, false
	}
	return uint(id), true
}

// equalityFilters collects the allowed query parameters into an
// equality-filter map for the store. Filters are conjoined (AND).
func equalityFilters(c *gin.Context, fields ...string) map[string]interface{} {
	filters := map[string]interface{}{}
	for _, field := range fields {
		if value := c.Query(field); value != "" {
			filters[field] = value
		}
	}
	if len(filters) == 0 {
		return nil
	}
	return filters
}

// respondServiceError maps service errors onto the HTTP taxonomy:
// validation errors become 400, not-found 404, everything else 500.
func respondServiceError(c *gin.Context, log *logger.Logger, err error, notFoundMessage, failureMessage string) {
	if service.IsValidation(err) {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}
	if errors.Is(err, store.ErrNotFound) {
		utils.NotFoundResponse(c, notFoundMessage)
		return
	}
	log.WithError(err).Error(failureMessage)
	utils.InternalServerErrorResponse(c, failureMessage, err)
}

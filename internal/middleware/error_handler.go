package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rtrw-admin-svc/pkg/utils"
)

// ErrorHandler recovers from panics and returns a 500 envelope
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError, utils.APIResponse{
					Success: false,
					Message: "Internal server error",
				})
			}
		}()
		c.Next()
	}
}

// NoRouteHandler returns a 404 envelope for unknown paths
func NoRouteHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotFound, utils.APIResponse{
			Success: false,
			Message: "Route not found",
		})
	}
}

// NoMethodHandler returns a 405 envelope for unsupported methods
func NoMethodHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, utils.APIResponse{
			Success: false,
			Message: "Method not allowed",
		})
	}
}

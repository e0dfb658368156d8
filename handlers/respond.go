package handlers

import (
	"log/slog"
	"net/http"

	"salt-n-sugar-backend/middleware"

	"github.com/gin-gonic/gin"
)

// serverError logs the underlying cause with the request id and returns a
// generic 500 to the caller. Persistence failures never leak details.
func serverError(c *gin.Context, msg string, err error) {
	slog.Error(msg,
		"error", err,
		"request_id", middleware.GetRequestID(c),
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
	)
	c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
}

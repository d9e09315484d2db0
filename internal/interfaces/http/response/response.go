package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	domainerrors "memedrop.backend/internal/domain/errors"
)

// Success sends a success response
func Success(c *gin.Context, status int, body interface{}) {
	c.JSON(status, body)
}

// Error sends an error response, mapping unknown errors to a generic 500
func Error(c *gin.Context, err error) {
	var appErr *domainerrors.AppError
	if !errors.As(err, &appErr) {
		appErr = domainerrors.InternalError("Internal server error", err)
	}

	c.JSON(appErr.Status, gin.H{"error": appErr.Message})
}

// Unauthorized aborts the request with the fixed credential-gate body
func Unauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error": "Unauthorized - Invalid or missing API key",
	})
}

package delivery

import (
	"errors"
	"net/http"

	"catalog_service/internal/domain"

	"github.com/gin-gonic/gin"
)

// ErrorResponse writes the uniform error body. Store-internal detail is
// logged server-side by the layers below, never surfaced here.
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"error": message})
}

// statusAndMessage maps an error to the response the caller sees.
// Validation failures carry their own text; anything else is a store
// failure reported generically.
func statusAndMessage(err error, generic string) (int, string) {
	if errors.Is(err, domain.ErrValidation) {
		return http.StatusBadRequest, err.Error()
	}
	return http.StatusInternalServerError, generic
}

package rest

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lenddesk/los/internal/domain/valueobject"
)

// respondError maps domain errors onto HTTP status codes:
// ValidationError -> 400, ErrNotFound -> 404, anything else -> 500.
func respondError(c *gin.Context, logger *slog.Logger, err error) {
	switch {
	case valueobject.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, valueobject.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		logger.Error("request failed",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"error", err,
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

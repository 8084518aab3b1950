package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobportal/internal/database"
)

// storageError maps gateway errors onto HTTP responses. notFound and
// invalid carry the entity-specific messages ("Job not found", "Invalid job
// id"); the unconfigured message is fixed across all endpoints.
func storageError(c *gin.Context, err error, notFound, invalid string) {
	switch {
	case errors.Is(err, database.ErrNotConfigured):
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database not configured"})
	case errors.Is(err, database.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFound})
	case errors.Is(err, database.ErrInvalidID):
		c.JSON(http.StatusBadRequest, gin.H{"error": invalid})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

package handlers

import (
	"errors"
	"net/http"

	"factboard/internal/models"
	"factboard/internal/store"

	"github.com/gin-gonic/gin"
)

// JSONError writes the common error body shape.
func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"error": message})
}

// storeError maps store failures onto status codes: absence is 404,
// rejected input is 400, anything else is a 500 the client cannot fix.
func storeError(c *gin.Context, err error) {
	var ve *models.ValidationError
	switch {
	case errors.Is(err, store.ErrNotFound):
		JSONError(c, http.StatusNotFound, "fact not found")
	case errors.As(err, &ve):
		JSONError(c, http.StatusBadRequest, ve.Error())
	default:
		JSONError(c, http.StatusInternalServerError, "storage failure")
	}
}

// Health reports liveness for deployment probes.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

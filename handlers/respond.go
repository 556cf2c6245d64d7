package handlers

import (
	"net/http"

	"delivery-api/apperr"

	"github.com/gin-gonic/gin"
)

// respondError maps an error kind to an HTTP status. Unclassified errors are
// reported generically so internal details never leak to the client.
func respondError(c *gin.Context, err error) {
	kind := apperr.KindOf(err)
	status := http.StatusInternalServerError
	message := err.Error()

	switch kind {
	case apperr.KindNotFound:
		status = http.StatusNotFound
	case apperr.KindValidation:
		status = http.StatusBadRequest
	case apperr.KindBusiness:
		status = http.StatusUnprocessableEntity
	case apperr.KindConflict:
		status = http.StatusConflict
	default:
		message = "internal server error"
	}

	c.JSON(status, gin.H{"error": message, "kind": kind})
}

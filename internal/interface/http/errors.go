package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"markethub/pkg/apperr"
	"markethub/pkg/response"
)

// writeServiceError is the single place a service error kind becomes an
// HTTP status code.
func writeServiceError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch apperr.KindOf(err) {
	case apperr.Invalid:
		status = http.StatusBadRequest
	case apperr.NotFound:
		status = http.StatusNotFound
	case apperr.Conflict:
		status = http.StatusConflict
	}
	response.Error(c, status, err.Error(), nil)
}

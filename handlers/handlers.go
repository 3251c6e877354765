package handlers

import (
	"net/http"

	"barberbook/services/booking"
	"barberbook/utils"

	"github.com/gin-gonic/gin"
)

// respondSchedulingError maps engine errors to HTTP statuses. Conflict must
// reach the client distinctly so it can refresh availability and re-select.
func respondSchedulingError(c *gin.Context, err error) {
	switch {
	case booking.IsNotFound(err):
		utils.JSONError(c, http.StatusNotFound, "Not found", err.Error())
	case booking.IsConflict(err):
		utils.JSONError(c, http.StatusConflict, "Slot unavailable", err.Error())
	case booking.IsValidation(err):
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
	default:
		utils.JSONError(c, http.StatusServiceUnavailable, "Store unavailable", err.Error())
	}
}

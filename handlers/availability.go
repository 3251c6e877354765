package handlers

import (
	"net/http"

	"barberbook/scheduling"
	"barberbook/services/booking"
	"barberbook/utils"

	"github.com/gin-gonic/gin"
)

// AvailabilityHandler serves slot availability queries.
type AvailabilityHandler struct {
	Engine booking.SchedulingEngine
}

func NewAvailabilityHandler(engine booking.SchedulingEngine) *AvailabilityHandler {
	return &AvailabilityHandler{Engine: engine}
}

// GetAvailableSlots handles GET /api/available-slots?date=&service_id=.
// Start times are formatted for display here, at the boundary; the engine
// works in minutes from midnight.
func (h *AvailabilityHandler) GetAvailableSlots(c *gin.Context) {
	date := c.Query("date")
	serviceID := c.Query("service_id")
	if date == "" || serviceID == "" {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", "date and service_id are required")
		return
	}

	starts, err := h.Engine.AvailableSlots(c.Request.Context(), date, serviceID)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}

	slots := make([]string, 0, len(starts))
	for _, m := range starts {
		slots = append(slots, scheduling.FormatClock12(m))
	}
	c.JSON(http.StatusOK, gin.H{"available_slots": slots})
}

package handlers

import (
	"net/http"
	"time"

	"barberbook/services/dashboard"
	"barberbook/utils"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the admin statistics view.
type DashboardHandler struct {
	Dashboard *dashboard.Service
}

func NewDashboardHandler(svc *dashboard.Service) *DashboardHandler {
	return &DashboardHandler{Dashboard: svc}
}

// GetStats handles GET /api/dashboard/stats.
func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats, err := h.Dashboard.Stats(c.Request.Context(), time.Now())
	if err != nil {
		utils.JSONError(c, http.StatusServiceUnavailable, "Store unavailable", err.Error())
		return
	}
	c.JSON(http.StatusOK, stats)
}

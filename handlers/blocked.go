package handlers

import (
	"fmt"
	"net/http"

	"barberbook/database/repository/blocked"
	"barberbook/models"
	"barberbook/services/booking"
	"barberbook/utils"

	"github.com/gin-gonic/gin"
)

// BlockedSlotHandler serves administrator blackout-window management.
type BlockedSlotHandler struct {
	Engine  booking.SchedulingEngine
	Blocked blockedRepo.BlockedRepository
}

func NewBlockedSlotHandler(engine booking.SchedulingEngine, repo blockedRepo.BlockedRepository) *BlockedSlotHandler {
	return &BlockedSlotHandler{Engine: engine, Blocked: repo}
}

// CreateBlockedSlots handles POST /api/blocked-slots. A date range expands to
// one record per date sharing the same time window.
func (h *BlockedSlotHandler) CreateBlockedSlots(c *gin.Context) {
	var in models.BlockedSlotRangeCreate
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	created, err := h.Engine.BlockDateRange(c.Request.Context(), in)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":       fmt.Sprintf("Blocked %d day(s)", len(created)),
		"blocked_slots": created,
	})
}

// ListBlockedSlots handles GET /api/blocked-slots?date=.
func (h *BlockedSlotHandler) ListBlockedSlots(c *gin.Context) {
	var (
		blocks []models.BlockedSlot
		err    error
	)
	if date := c.Query("date"); date != "" {
		blocks, err = h.Blocked.ListByDate(c.Request.Context(), date)
	} else {
		blocks, err = h.Blocked.List(c.Request.Context())
	}
	if err != nil {
		utils.JSONError(c, http.StatusServiceUnavailable, "Store unavailable", err.Error())
		return
	}
	if blocks == nil {
		blocks = []models.BlockedSlot{}
	}
	c.JSON(http.StatusOK, blocks)
}

// DeleteBlockedSlot handles DELETE /api/blocked-slots/:id.
func (h *BlockedSlotHandler) DeleteBlockedSlot(c *gin.Context) {
	if err := h.Engine.Unblock(c.Request.Context(), c.Param("id")); err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

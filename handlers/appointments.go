package handlers

import (
	"errors"
	"net/http"

	"barberbook/database/repository/appointment"
	"barberbook/models"
	"barberbook/services/booking"
	"barberbook/utils"

	"github.com/gin-gonic/gin"
)

// AppointmentHandler serves booking creation and appointment management.
type AppointmentHandler struct {
	Engine       booking.SchedulingEngine
	Appointments appointmentRepo.AppointmentRepository
}

func NewAppointmentHandler(engine booking.SchedulingEngine, repo appointmentRepo.AppointmentRepository) *AppointmentHandler {
	return &AppointmentHandler{Engine: engine, Appointments: repo}
}

// CreateAppointment handles POST /api/appointments.
func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	var in models.AppointmentCreate
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	appt, err := h.Engine.Book(c.Request.Context(), in)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, appt)
}

// ListAppointments handles GET /api/appointments?date=&status=.
func (h *AppointmentHandler) ListAppointments(c *gin.Context) {
	status := c.Query("status")
	if status != "" && !models.ValidStatus(status) {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", "unknown status filter")
		return
	}

	appts, err := h.Appointments.ListByDate(c.Request.Context(), c.Query("date"), status)
	if err != nil {
		utils.JSONError(c, http.StatusServiceUnavailable, "Store unavailable", err.Error())
		return
	}
	if appts == nil {
		appts = []models.Appointment{}
	}
	c.JSON(http.StatusOK, appts)
}

// UpdateAppointmentStatus handles PATCH /api/appointments/:id. Only the
// status field is patchable.
func (h *AppointmentHandler) UpdateAppointmentStatus(c *gin.Context) {
	var in models.AppointmentStatusUpdate
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	appt, err := h.Engine.UpdateStatus(c.Request.Context(), c.Param("id"), in.Status)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

// DeleteAppointment handles DELETE /api/appointments/:id. Administrative
// override outside the engine's consistency guarantees.
func (h *AppointmentHandler) DeleteAppointment(c *gin.Context) {
	err := h.Appointments.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Not found", "appointment not found")
			return
		}
		utils.JSONError(c, http.StatusServiceUnavailable, "Store unavailable", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

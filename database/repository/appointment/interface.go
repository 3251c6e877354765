package appointmentRepo

import (
	"context"

	"barberbook/models"
)

// AppointmentRepository defines access to committed bookings. Appointments
// are never deleted by the booking engine; Delete exists only as an
// administrative override.
type AppointmentRepository interface {
	// Insert persists a new appointment. It returns ErrDuplicateSlot when the
	// unique slot index rejects an exact (date, time) duplicate among active
	// appointments.
	Insert(ctx context.Context, appt *models.Appointment) error
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	// ListByDate returns appointments, optionally filtered by date and/or
	// status, sorted by date then time.
	ListByDate(ctx context.Context, date, status string) ([]models.Appointment, error)
	// BookedIntervals returns the {time, duration} projections of appointments
	// on the date whose status still occupies the slot (scheduled/completed).
	BookedIntervals(ctx context.Context, date string) ([]models.BookedInterval, error)
	UpdateStatus(ctx context.Context, id, status string) (*models.Appointment, error)
	Delete(ctx context.Context, id string) error
	CountByDateStatus(ctx context.Context, date, status string) (int64, error)
	// ListMonthByStatus returns appointments whose date falls in the given
	// YYYY-MM month with the given status.
	ListMonthByStatus(ctx context.Context, month, status string) ([]models.Appointment, error)
}

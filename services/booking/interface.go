package booking

import (
	"context"

	"barberbook/models"
)

// SchedulingEngine is the slot-availability and booking-consistency engine.
// Every call re-reads current appointments and blocks from the store; the
// engine holds no state between requests.
type SchedulingEngine interface {
	// AvailableSlots returns the ordered bookable start times (minutes from
	// midnight) for a date and service. Display formatting happens at the
	// HTTP boundary.
	AvailableSlots(ctx context.Context, date, serviceID string) ([]int, error)
	// Book validates a booking request against current appointments and
	// blocks and atomically persists it, upserting the customer aggregate.
	Book(ctx context.Context, in models.AppointmentCreate) (*models.Appointment, error)
	// UpdateStatus overwrites an appointment's status with any value from the
	// enumerated set.
	UpdateStatus(ctx context.Context, id, status string) (*models.Appointment, error)
	// BlockDateRange creates one blocked slot per date in the inclusive range,
	// all sharing the same time window.
	BlockDateRange(ctx context.Context, in models.BlockedSlotRangeCreate) ([]models.BlockedSlot, error)
	// Unblock deletes a blocked slot by id.
	Unblock(ctx context.Context, id string) error
}

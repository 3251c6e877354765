package booking

import (
	"barberbook/database/repository/appointment"
	"barberbook/database/repository/blocked"
	"barberbook/database/repository/catalog"
	"barberbook/database/repository/customer"
	"barberbook/models"
	"barberbook/scheduling"
	"barberbook/services/notification"

	"go.uber.org/zap"
)

// ReminderScheduler enqueues a reminder for a committed appointment. Like
// notification delivery it is strictly downstream of the booking: failures
// are logged, never propagated.
type ReminderScheduler interface {
	ScheduleReminder(appt models.Appointment) error
}

// DefaultSchedulingEngine is the production scheduling engine. All
// dependencies are injected; the process entry point owns their lifecycle.
type DefaultSchedulingEngine struct {
	Catalog      catalogRepo.ServiceRepository
	Appointments appointmentRepo.AppointmentRepository
	Blocked      blockedRepo.BlockedRepository
	Customers    customerRepo.CustomerRepository
	Notifier     notification.NotificationService
	Reminders    ReminderScheduler // optional
	Calendar     scheduling.Calendar
	Logger       *zap.Logger
}

// busyIntervals converts stored booked and blocked records into occupancy
// intervals. A record whose time cannot be parsed is skipped with a warning
// rather than failing the whole computation.
func (e *DefaultSchedulingEngine) busyIntervals(booked []models.BookedInterval, blocks []models.BlockedSlot) []scheduling.Interval {
	busy := make([]scheduling.Interval, 0, len(booked)+len(blocks))

	for _, b := range booked {
		start, err := scheduling.ParseClock(b.Time)
		if err != nil {
			e.Logger.Warn("skipping appointment with malformed time",
				zap.String("time", b.Time), zap.Error(err))
			continue
		}
		busy = append(busy, scheduling.Interval{Start: start, End: start + b.DurationMinutes})
	}

	for _, b := range blocks {
		start, err := scheduling.ParseClock(b.StartTime)
		if err != nil {
			e.Logger.Warn("skipping blocked slot with malformed start time",
				zap.String("id", b.ID), zap.String("start_time", b.StartTime), zap.Error(err))
			continue
		}
		end, err := scheduling.ParseClock(b.EndTime)
		if err != nil {
			e.Logger.Warn("skipping blocked slot with malformed end time",
				zap.String("id", b.ID), zap.String("end_time", b.EndTime), zap.Error(err))
			continue
		}
		busy = append(busy, scheduling.Interval{Start: start, End: end})
	}

	return busy
}

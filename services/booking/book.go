package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"barberbook/database/repository/appointment"
	"barberbook/database/repository/catalog"
	"barberbook/models"
	"barberbook/scheduling"
	"barberbook/services/notification"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Book validates and commits a booking. The conflict check runs against
// freshly fetched appointments and blocks, not against an earlier
// availability response, to close the gap between a client viewing slots and
// submitting a booking. The store's unique slot index is the final arbiter
// for concurrent commits on the identical start time.
func (e *DefaultSchedulingEngine) Book(ctx context.Context, in models.AppointmentCreate) (*models.Appointment, error) {
	service, err := e.Catalog.GetByID(ctx, in.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrNotFound) {
			return nil, NewNotFoundError("service not found")
		}
		return nil, fmt.Errorf("failed to fetch service: %w", err)
	}

	if _, err := scheduling.ParseDate(in.Date); err != nil {
		return nil, NewValidationError(fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", in.Date))
	}
	start, err := scheduling.ParseClock(in.Time)
	if err != nil {
		return nil, NewValidationError(fmt.Sprintf("invalid time %q, expected HH:MM", in.Time))
	}
	occupancy := scheduling.Interval{Start: start, End: start + service.DurationMinutes}

	booked, err := e.Appointments.BookedIntervals(ctx, in.Date)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booked intervals: %w", err)
	}
	for _, b := range booked {
		bStart, err := scheduling.ParseClock(b.Time)
		if err != nil {
			e.Logger.Warn("skipping appointment with malformed time",
				zap.String("time", b.Time), zap.Error(err))
			continue
		}
		if scheduling.Overlaps(occupancy, scheduling.Interval{Start: bStart, End: bStart + b.DurationMinutes}) {
			return nil, NewConflictError("time slot already booked")
		}
	}

	blocks, err := e.Blocked.ListByDate(ctx, in.Date)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch blocked slots: %w", err)
	}
	for _, b := range blocks {
		bStart, startErr := scheduling.ParseClock(b.StartTime)
		bEnd, endErr := scheduling.ParseClock(b.EndTime)
		if startErr != nil || endErr != nil {
			e.Logger.Warn("skipping blocked slot with malformed time window",
				zap.String("id", b.ID))
			continue
		}
		if scheduling.Overlaps(occupancy, scheduling.Interval{Start: bStart, End: bEnd}) {
			return nil, NewConflictError("time slot is blocked")
		}
	}

	language := in.Language
	if language == "" {
		language = "en"
	}
	appt := &models.Appointment{
		ID:              uuid.New().String(),
		ServiceID:       service.ID,
		ServiceName:     service.Name,
		CustomerName:    in.CustomerName,
		CustomerPhone:   in.CustomerPhone,
		CustomerEmail:   in.CustomerEmail,
		Date:            in.Date,
		Time:            in.Time,
		DurationMinutes: service.DurationMinutes,
		Status:          models.StatusScheduled,
		CreatedAt:       time.Now().UTC().Format(time.RFC3339),
		Language:        language,
	}

	if err := e.Appointments.Insert(ctx, appt); err != nil {
		if errors.Is(err, appointmentRepo.ErrDuplicateSlot) {
			return nil, NewConflictError("time slot already booked")
		}
		return nil, fmt.Errorf("failed to persist appointment: %w", err)
	}

	if _, err := e.Customers.UpsertByPhone(ctx, in.CustomerPhone, in.CustomerName, in.CustomerEmail, in.Date); err != nil {
		// The booking is committed; the aggregate catches up on the next one.
		e.Logger.Error("customer upsert failed after booking",
			zap.String("phone", in.CustomerPhone), zap.Error(err))
	}

	e.confirm(*appt)

	return appt, nil
}

// confirm dispatches the booking-confirmed notification and schedules the
// reminder. Both are fire-and-forget: a committed booking never fails or
// rolls back because delivery did.
func (e *DefaultSchedulingEngine) confirm(appt models.Appointment) {
	payload := notification.Payload{
		ServiceName:  appt.ServiceName,
		CustomerName: appt.CustomerName,
		Date:         appt.Date,
		Time:         appt.Time,
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := e.Notifier.Notify(ctx, notification.ChannelSMS, appt.CustomerPhone, payload, appt.Language); err != nil {
			e.Logger.Warn("booking confirmation SMS failed", zap.String("appointment", appt.ID), zap.Error(err))
		}
		if appt.CustomerEmail != "" {
			if err := e.Notifier.Notify(ctx, notification.ChannelEmail, appt.CustomerEmail, payload, appt.Language); err != nil {
				e.Logger.Warn("booking confirmation email failed", zap.String("appointment", appt.ID), zap.Error(err))
			}
		}
	}()

	if e.Reminders != nil {
		if err := e.Reminders.ScheduleReminder(appt); err != nil {
			e.Logger.Warn("failed to schedule reminder", zap.String("appointment", appt.ID), zap.Error(err))
		}
	}
}

// UpdateStatus overwrites an appointment's status. Any value from the
// enumerated set may replace any other; there is no transition graph.
func (e *DefaultSchedulingEngine) UpdateStatus(ctx context.Context, id, status string) (*models.Appointment, error) {
	if !models.ValidStatus(status) {
		return nil, NewValidationError(fmt.Sprintf("invalid status %q", status))
	}
	appt, err := e.Appointments.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrNotFound) {
			return nil, NewNotFoundError("appointment not found")
		}
		return nil, fmt.Errorf("failed to update appointment status: %w", err)
	}
	return appt, nil
}

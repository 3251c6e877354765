package tasks

import (
	"encoding/json"
	"fmt"
	"time"

	"barberbook/models"
	"barberbook/scheduling"

	"github.com/hibiken/asynq"
)

const TypeSendReminder = "reminder:send"

// NewReminderTask builds the queued reminder task for an appointment.
func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// ReminderScheduler enqueues appointment reminders on the asynq queue.
type ReminderScheduler struct {
	Client *asynq.Client
	Lead   time.Duration // how long before the appointment the reminder fires
}

// ScheduleReminder enqueues a reminder Lead before the appointment start.
// Appointments starting too soon for the lead window are skipped.
func (s *ReminderScheduler) ScheduleReminder(appt models.Appointment) error {
	day, err := scheduling.ParseDate(appt.Date)
	if err != nil {
		return fmt.Errorf("cannot schedule reminder: %w", err)
	}
	startMin, err := scheduling.ParseClock(appt.Time)
	if err != nil {
		return fmt.Errorf("cannot schedule reminder: %w", err)
	}

	startsAt := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.Local).
		Add(time.Duration(startMin) * time.Minute)
	fireAt := startsAt.Add(-s.Lead)
	if fireAt.Before(time.Now()) {
		return nil
	}

	payload := models.ReminderPayload{
		AppointmentID: appt.ID,
		ServiceName:   appt.ServiceName,
		CustomerName:  appt.CustomerName,
		CustomerPhone: appt.CustomerPhone,
		Date:          appt.Date,
		Time:          appt.Time,
		Language:      appt.Language,
	}
	task, opts, err := NewReminderTask(payload, fireAt)
	if err != nil {
		return fmt.Errorf("failed to build reminder task: %w", err)
	}
	if _, err := s.Client.Enqueue(task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue reminder: %w", err)
	}
	return nil
}

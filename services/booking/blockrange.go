package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"barberbook/database/repository/blocked"
	"barberbook/models"
	"barberbook/scheduling"

	"github.com/google/uuid"
)

// BlockDateRange expands an inclusive date range into one blocked slot per
// date, all sharing the same time-of-day window, and persists them in a
// single batch.
func (e *DefaultSchedulingEngine) BlockDateRange(ctx context.Context, in models.BlockedSlotRangeCreate) ([]models.BlockedSlot, error) {
	startDate, err := scheduling.ParseDate(in.StartDate)
	if err != nil {
		return nil, NewValidationError(fmt.Sprintf("invalid start date %q, expected YYYY-MM-DD", in.StartDate))
	}
	endDate, err := scheduling.ParseDate(in.EndDate)
	if err != nil {
		return nil, NewValidationError(fmt.Sprintf("invalid end date %q, expected YYYY-MM-DD", in.EndDate))
	}
	if startDate.After(endDate) {
		return nil, NewValidationError("start date must not be after end date")
	}

	startMin, err := scheduling.ParseClock(in.StartTime)
	if err != nil {
		return nil, NewValidationError(fmt.Sprintf("invalid start time %q, expected HH:MM", in.StartTime))
	}
	endMin, err := scheduling.ParseClock(in.EndTime)
	if err != nil {
		return nil, NewValidationError(fmt.Sprintf("invalid end time %q, expected HH:MM", in.EndTime))
	}
	if startMin >= endMin {
		return nil, NewValidationError("start time must be before end time")
	}

	now := time.Now().UTC().Format(time.RFC3339)
	var blocks []models.BlockedSlot
	for d := startDate; !d.After(endDate); d = d.AddDate(0, 0, 1) {
		blocks = append(blocks, models.BlockedSlot{
			ID:        uuid.New().String(),
			Date:      d.Format("2006-01-02"),
			StartTime: in.StartTime,
			EndTime:   in.EndTime,
			Reason:    in.Reason,
			CreatedAt: now,
		})
	}

	if err := e.Blocked.InsertMany(ctx, blocks); err != nil {
		return nil, fmt.Errorf("failed to persist blocked slots: %w", err)
	}
	return blocks, nil
}

// Unblock removes a blocked slot by id.
func (e *DefaultSchedulingEngine) Unblock(ctx context.Context, id string) error {
	if err := e.Blocked.Delete(ctx, id); err != nil {
		if errors.Is(err, blockedRepo.ErrNotFound) {
			return NewNotFoundError("blocked slot not found")
		}
		return fmt.Errorf("failed to delete blocked slot: %w", err)
	}
	return nil
}

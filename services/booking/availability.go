package booking

import (
	"context"
	"errors"
	"fmt"

	"barberbook/database/repository/catalog"
	"barberbook/scheduling"
)

// AvailableSlots computes the bookable start times for a date and service.
// The computation is purely derived from the store's current appointments and
// blocks; nothing is cached between calls.
func (e *DefaultSchedulingEngine) AvailableSlots(ctx context.Context, date, serviceID string) ([]int, error) {
	day, err := scheduling.ParseDate(date)
	if err != nil {
		return nil, NewValidationError(fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", date))
	}

	service, err := e.Catalog.GetByID(ctx, serviceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrNotFound) {
			return nil, NewNotFoundError("service not found")
		}
		return nil, fmt.Errorf("failed to fetch service: %w", err)
	}

	candidates := e.Calendar.CandidateStarts(day, service.DurationMinutes)
	if len(candidates) == 0 {
		// Closed weekday. An empty list is a valid, non-error result.
		return []int{}, nil
	}

	booked, err := e.Appointments.BookedIntervals(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booked intervals: %w", err)
	}
	blocks, err := e.Blocked.ListByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch blocked slots: %w", err)
	}

	busy := e.busyIntervals(booked, blocks)
	return filterCandidates(candidates, service.DurationMinutes, busy), nil
}

// filterCandidates retains the candidates whose occupancy interval overlaps
// no busy interval. Pure; calendar order is preserved.
func filterCandidates(candidates []int, durationMinutes int, busy []scheduling.Interval) []int {
	free := make([]int, 0, len(candidates))
	for _, start := range candidates {
		occupancy := scheduling.Interval{Start: start, End: start + durationMinutes}
		if !scheduling.OverlapsAny(occupancy, busy) {
			free = append(free, start)
		}
	}
	return free
}

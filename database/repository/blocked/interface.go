package blockedRepo

import (
	"context"

	"barberbook/models"
)

// BlockedRepository defines access to administrator-imposed unavailability
// windows.
type BlockedRepository interface {
	// InsertMany persists a batch of blocked slots, typically one per date of
	// a contiguous range sharing the same time window.
	InsertMany(ctx context.Context, blocks []models.BlockedSlot) error
	ListByDate(ctx context.Context, date string) ([]models.BlockedSlot, error)
	List(ctx context.Context) ([]models.BlockedSlot, error)
	Delete(ctx context.Context, id string) error
}

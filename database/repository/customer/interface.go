package customerRepo

import (
	"context"

	"barberbook/models"
)

// CustomerRepository defines access to customer records keyed by phone.
type CustomerRepository interface {
	// UpsertByPhone creates a customer on first booking by a phone number, or
	// refreshes the name, sets last-visit and increments the appointment
	// counter on subsequent bookings. Returns the post-update record.
	UpsertByPhone(ctx context.Context, phone, fullName, email, visitDate string) (*models.Customer, error)
	GetByPhone(ctx context.Context, phone string) (*models.Customer, error)
	// List returns all customers sorted by most recent visit first.
	List(ctx context.Context) ([]models.Customer, error)
	Count(ctx context.Context) (int64, error)
	// Update applies an explicit field-level patch. Administrative use.
	Update(ctx context.Context, id string, patch models.CustomerPatch) (*models.Customer, error)
	Delete(ctx context.Context, id string) error
}

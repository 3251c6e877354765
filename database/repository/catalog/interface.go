package catalogRepo

import (
	"context"

	"barberbook/models"
)

// ServiceRepository defines access to the service catalog.
type ServiceRepository interface {
	List(ctx context.Context) ([]models.Service, error)
	GetByID(ctx context.Context, id string) (*models.Service, error)
	// Seed inserts the reference catalog iff the collection is empty.
	Seed(ctx context.Context, services []models.Service) error
}

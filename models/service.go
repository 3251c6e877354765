package models

// Service is a catalog entry. Entries are immutable after creation and are
// seeded once at first startup if the catalog is empty.
type Service struct {
	ID              string  `bson:"id" json:"id"`
	Name            string  `bson:"name" json:"name"`
	Price           float64 `bson:"price" json:"price"`
	DurationMinutes int     `bson:"duration_minutes" json:"duration_minutes"`
	Description     string  `bson:"description,omitempty" json:"description,omitempty"`
}

package models

// Appointment statuses. Status updates are a free-form overwrite across this
// set; no transition graph is enforced.
const (
	StatusScheduled = "scheduled"
	StatusCompleted = "completed"
	StatusNoShow    = "no-show"
	StatusCancelled = "cancelled"
)

// ValidStatus reports whether s is one of the enumerated appointment statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusScheduled, StatusCompleted, StatusNoShow, StatusCancelled:
		return true
	}
	return false
}

// ActiveStatuses are the statuses that occupy a slot. Cancelled and no-show
// appointments free their time range.
var ActiveStatuses = []string{StatusScheduled, StatusCompleted}

// Appointment is a committed booking. ServiceName and DurationMinutes are
// snapshots taken at booking time; later catalog edits must not retroactively
// alter them.
type Appointment struct {
	ID              string `bson:"id" json:"id"`
	ServiceID       string `bson:"service_id" json:"service_id"`
	ServiceName     string `bson:"service_name" json:"service_name"`
	CustomerName    string `bson:"customer_name" json:"customer_name"`
	CustomerPhone   string `bson:"customer_phone" json:"customer_phone"`
	CustomerEmail   string `bson:"customer_email,omitempty" json:"customer_email,omitempty"`
	Date            string `bson:"date" json:"date"` // YYYY-MM-DD
	Time            string `bson:"time" json:"time"` // HH:MM
	DurationMinutes int    `bson:"duration_minutes" json:"duration_minutes"`
	Status          string `bson:"status" json:"status"`
	CreatedAt       string `bson:"created_at" json:"created_at"`
	Language        string `bson:"language" json:"language"` // locale tag, e.g. "en" or "pt"
}

// BookedInterval is the projection of an appointment used for overlap checks.
type BookedInterval struct {
	Time            string `bson:"time" json:"time"`
	DurationMinutes int    `bson:"duration_minutes" json:"duration_minutes"`
}

package models

// Customer is keyed naturally by phone number. Records are created and
// updated only by the booking transaction.
type Customer struct {
	ID                string `bson:"id" json:"id"`
	FullName          string `bson:"full_name" json:"full_name"`
	Phone             string `bson:"phone" json:"phone"`
	Email             string `bson:"email,omitempty" json:"email,omitempty"`
	TotalAppointments int    `bson:"total_appointments" json:"total_appointments"`
	LastVisit         string `bson:"last_visit,omitempty" json:"last_visit,omitempty"` // YYYY-MM-DD
}

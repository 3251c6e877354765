package models

// BlockedSlot is an administrator-imposed unavailability window on a date.
// The window is half-open: [StartTime, EndTime).
type BlockedSlot struct {
	ID        string `bson:"id" json:"id"`
	Date      string `bson:"date" json:"date"`             // YYYY-MM-DD
	StartTime string `bson:"start_time" json:"start_time"` // HH:MM
	EndTime   string `bson:"end_time" json:"end_time"`     // HH:MM
	Reason    string `bson:"reason,omitempty" json:"reason,omitempty"`
	CreatedAt string `bson:"created_at" json:"created_at"`
}

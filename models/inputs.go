package models

// AppointmentCreate is the booking request payload.
type AppointmentCreate struct {
	ServiceID     string `json:"service_id" binding:"required"`
	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerPhone string `json:"customer_phone" binding:"required"`
	CustomerEmail string `json:"customer_email"`
	Date          string `json:"date" binding:"required"` // YYYY-MM-DD
	Time          string `json:"time" binding:"required"` // HH:MM
	Language      string `json:"language"`
}

// AppointmentStatusUpdate is the only accepted appointment patch. Free-form
// document patches are deliberately not supported.
type AppointmentStatusUpdate struct {
	Status string `json:"status" binding:"required"`
}

// BlockedSlotRangeCreate blocks the same time-of-day window on every date in
// [StartDate, EndDate], one BlockedSlot record per date.
type BlockedSlotRangeCreate struct {
	StartDate string `json:"start_date" binding:"required"` // YYYY-MM-DD
	EndDate   string `json:"end_date" binding:"required"`   // YYYY-MM-DD
	StartTime string `json:"start_time" binding:"required"` // HH:MM
	EndTime   string `json:"end_time" binding:"required"`   // HH:MM
	Reason    string `json:"reason"`
}

// LoginRequest is the admin login payload.
type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued admin token.
type LoginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token,omitempty"`
}

// CustomerPatch is the explicit, validated customer update payload.
type CustomerPatch struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

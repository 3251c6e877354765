package models

// ReminderPayload is the queued reminder task body for an upcoming appointment.
type ReminderPayload struct {
	AppointmentID string `json:"appointmentId"`
	ServiceName   string `json:"serviceName"`
	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	Language      string `json:"language"`
}

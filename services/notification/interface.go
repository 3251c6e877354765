package notification

import "context"

// Delivery channels.
const (
	ChannelSMS   = "sms"
	ChannelEmail = "email"
	ChannelChat  = "chat"
)

// Payload carries the booking details rendered into an outbound message.
type Payload struct {
	ServiceName  string
	CustomerName string
	Date         string
	Time         string
}

// NotificationService delivers booking confirmations and reminders. Delivery
// is best-effort: implementations must never fail the booking path, and
// callers log and swallow any returned error.
type NotificationService interface {
	Notify(ctx context.Context, channel, recipient string, payload Payload, locale string) error
}

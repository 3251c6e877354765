package notification

import (
	"context"
	"fmt"

	"barberbook/utils"

	"go.uber.org/zap"
)

// LogNotificationService is the default delivery backend: it writes the
// message that would be sent to the log. Real SMS/email/chat providers plug
// in behind the same interface.
type LogNotificationService struct{}

func NewLogNotificationService() *LogNotificationService {
	return &LogNotificationService{}
}

func (s *LogNotificationService) Notify(ctx context.Context, channel, recipient string, payload Payload, locale string) error {
	logger := utils.GetLogger()

	var body string
	switch locale {
	case "pt":
		body = fmt.Sprintf("Agendamento confirmado: %s em %s às %s", payload.ServiceName, payload.Date, payload.Time)
	default:
		body = fmt.Sprintf("Appointment confirmed: %s on %s at %s", payload.ServiceName, payload.Date, payload.Time)
	}

	logger.Info("notification dispatched",
		zap.String("channel", channel),
		zap.String("recipient", recipient),
		zap.String("locale", locale),
		zap.String("customer", payload.CustomerName),
		zap.String("body", body),
	)
	return nil
}

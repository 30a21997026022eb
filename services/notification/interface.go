package notification

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"shootbook/models"
)

// NotificationService delivers booking confirmations to clients.
type NotificationService interface {
	SendBookingConfirmation(ctx context.Context, p models.ConfirmationPayload) error
}

// Message is a rendered confirmation ready for a delivery channel.
type Message struct {
	To    string
	Title string
	Body  string
}

var templates = map[string]struct{ title, body string }{
	"en": {"Your photoshoot is booked", "Hi %s, your session on %s is confirmed. Total: $%.2f. Reference: %s."},
	"fr": {"Votre séance photo est réservée", "Bonjour %s, votre séance du %s est confirmée. Total : %.2f $. Référence : %s."},
	"zh": {"您的拍摄已预订", "%s您好，您在 %s 的拍摄已确认。总计：$%.2f。编号：%s。"},
}

// Compose renders the confirmation in the client's language, falling back to English.
func Compose(p models.ConfirmationPayload) Message {
	tpl, ok := templates[p.Language]
	if !ok {
		tpl = templates["en"]
	}
	return Message{
		To:    fmt.Sprintf("%s:%s", p.ContactMethod, p.Contact),
		Title: tpl.title,
		Body:  fmt.Sprintf(tpl.body, p.ClientName, p.Start, p.Total, p.BookingID),
	}
}

// LogNotificationService records confirmations in the log. Actual delivery
// over email, WeChat or SMS is handled outside this service.
type LogNotificationService struct {
	Logger *zap.Logger
}

func NewLogNotificationService(logger *zap.Logger) (*LogNotificationService, error) {
	if logger == nil {
		return nil, fmt.Errorf("notification service initialization error: logger is nil")
	}
	return &LogNotificationService{Logger: logger}, nil
}

func (s *LogNotificationService) SendBookingConfirmation(ctx context.Context, p models.ConfirmationPayload) error {
	if p.Contact == "" {
		return fmt.Errorf("SendBookingConfirmation: booking %s has no contact", p.BookingID)
	}
	msg := Compose(p)
	s.Logger.Info("Booking confirmation sent",
		zap.String("bookingId", p.BookingID),
		zap.String("to", msg.To),
		zap.String("title", msg.Title),
		zap.String("body", msg.Body))
	return nil
}

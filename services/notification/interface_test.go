package notification

import (
	"context"
	"strings"
	"testing"

	"go.uber.org/zap"

	"shootbook/models"
)

func TestCompose(t *testing.T) {
	p := models.ConfirmationPayload{
		BookingID:     "b-7",
		ClientName:    "Ana",
		ContactMethod: models.ContactEmail,
		Contact:       "ana@example.com",
		Start:         "2026-10-25 14:00",
		Total:         360,
	}

	cases := []struct {
		lang, title string
	}{
		{"en", "Your photoshoot is booked"},
		{"fr", "Votre séance photo est réservée"},
		{"zh", "您的拍摄已预订"},
		{"de", "Your photoshoot is booked"},
	}
	for _, c := range cases {
		t.Run(c.lang, func(t *testing.T) {
			p.Language = c.lang
			msg := Compose(p)
			if msg.Title != c.title {
				t.Errorf("title = %q, want %q", msg.Title, c.title)
			}
			if !strings.Contains(msg.Body, "360.00") || !strings.Contains(msg.Body, "b-7") {
				t.Errorf("body = %q", msg.Body)
			}
			if msg.To != "email:ana@example.com" {
				t.Errorf("to = %q", msg.To)
			}
		})
	}
}

func TestSendBookingConfirmationRequiresContact(t *testing.T) {
	svc, err := NewLogNotificationService(zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	if err := svc.SendBookingConfirmation(context.Background(), models.ConfirmationPayload{BookingID: "x"}); err == nil {
		t.Error("expected error without contact")
	}
	ok := models.ConfirmationPayload{BookingID: "x", Contact: "+15145550199", ContactMethod: models.ContactPhone}
	if err := svc.SendBookingConfirmation(context.Background(), ok); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

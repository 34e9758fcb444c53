// Package notify pushes kept schedules to an outside channel. The default
// notifier does nothing; WhatsApp delivery via Twilio is opt-in by
// configuration.
package notify

import (
	"fmt"
	"log"
	"strings"

	twilio "github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/seojunpark/homeroom/internal/model"
)

// Notifier is told about schedules the user chose to keep.
type Notifier interface {
	ScheduleKept(s model.Schedule) error
}

// Noop swallows notifications. It is the default when no channel is
// configured.
type Noop struct{}

// NewNoop creates the do-nothing notifier.
func NewNoop() Noop {
	return Noop{}
}

func (Noop) ScheduleKept(model.Schedule) error {
	return nil
}

// WhatsApp delivers kept schedules as WhatsApp messages through Twilio.
type WhatsApp struct {
	client *twilio.RestClient
	from   string
	to     string
	logger *log.Logger
}

// NewWhatsApp creates a notifier bound to the configured sender and
// recipient numbers.
func NewWhatsApp(accountSID, authToken, from, to string, logger *log.Logger) *WhatsApp {
	return &WhatsApp{
		client: twilio.NewRestClientWithParams(twilio.ClientParams{Username: accountSID, Password: authToken}),
		from:   from,
		to:     to,
		logger: logger,
	}
}

func (w *WhatsApp) ScheduleKept(s model.Schedule) error {
	sender := normalizeWhatsAppAddress(w.from)
	if sender == "" {
		return fmt.Errorf("sender WhatsApp number is not configured")
	}
	recipient := normalizeWhatsAppAddress(w.to)
	if recipient == "" {
		return fmt.Errorf("recipient number missing or invalid")
	}

	params := &openapi.CreateMessageParams{}
	params.SetTo(recipient)
	params.SetFrom(sender)
	params.SetBody(formatSchedule(s))

	resp, err := w.client.Api.CreateMessage(params)
	if err != nil {
		return fmt.Errorf("twilio send message error: %w", err)
	}
	if resp.Sid != nil {
		w.logger.Printf("whatsapp notification sent, sid=%s", *resp.Sid)
	}
	return nil
}

// formatSchedule renders the one-line message body for a kept schedule.
func formatSchedule(s model.Schedule) string {
	var b strings.Builder
	b.WriteString("Schedule saved: " + s.Title)
	if s.Date != "" {
		b.WriteString(" | " + s.Date)
		if s.Time != "" {
			b.WriteString(" " + s.Time)
		}
	} else if s.Time != "" {
		b.WriteString(" | " + s.Time)
	}
	if s.Location != "" {
		b.WriteString(" @ " + s.Location)
	}
	return b.String()
}

func normalizeWhatsAppAddress(number string) string {
	trimmed := strings.TrimSpace(number)
	if trimmed == "" {
		return ""
	}
	if strings.HasPrefix(trimmed, "whatsapp:") {
		return trimmed
	}
	if strings.HasPrefix(trimmed, "+") {
		return "whatsapp:" + trimmed
	}
	return "whatsapp:+" + trimmed
}

package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/driverp/bike-marketplace/internal/core/domain"
	"github.com/driverp/bike-marketplace/internal/core/ports"
)

var (
	contactNameRe    = regexp.MustCompile(`^[A-Za-z\s\.\-']{2,100}$`)
	contactEmailRe   = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]{2,}$`)
	contactPhoneRe   = regexp.MustCompile(`^[0-9]{7,15}$`)
	contactMessageRe = regexp.MustCompile(`^[A-Za-z\s\.\,\?\!\-'\(\)]{5,1000}$`)
)

var allowedContactReasons = map[string]bool{
	"General Enquiry": true,
	"Buy a Bike":      true,
	"Sell a Bike":     true,
	"Exchange a Bike": true,
	"RTO Service":     true,
	"Others":          true,
}

var allowedContactChannels = map[string]bool{
	"OLX":       true,
	"Instagram": true,
	"Youtube":   true,
	"Google":    true,
	"Website":   true,
	"Facebook":  true,
	"Walk - in": true,
}

type ContactMessage struct {
	Name    string
	Email   string
	Phone   string
	Reason  string
	Channel string
	Message string
}

type ContactService struct {
	mailer ports.MailerPort
	logger ports.LoggerPort
}

func NewContactService(mailer ports.MailerPort, logger ports.LoggerPort) *ContactService {
	return &ContactService{
		mailer: mailer,
		logger: logger,
	}
}

// Submit validates a contact-form submission and relays it by mail.
// Nothing is persisted.
func (s *ContactService) Submit(ctx context.Context, msg ContactMessage) error {
	msg.Name = strings.TrimSpace(msg.Name)
	msg.Email = strings.TrimSpace(msg.Email)
	msg.Phone = strings.TrimSpace(msg.Phone)
	msg.Reason = strings.TrimSpace(msg.Reason)
	msg.Channel = strings.TrimSpace(msg.Channel)
	msg.Message = strings.TrimSpace(msg.Message)

	if !contactNameRe.MatchString(msg.Name) {
		return domain.NewValidationError("name", "invalid name")
	}
	if !contactEmailRe.MatchString(msg.Email) {
		return domain.NewValidationError("email", "invalid email")
	}
	if !contactPhoneRe.MatchString(msg.Phone) {
		return domain.NewValidationError("phone", "invalid phone")
	}
	if !allowedContactReasons[msg.Reason] {
		return domain.NewValidationError("reason", "invalid selection")
	}
	if !allowedContactChannels[msg.Channel] {
		return domain.NewValidationError("channel", "invalid selection")
	}
	if !contactMessageRe.MatchString(msg.Message) {
		return domain.NewValidationError("message", "invalid message content")
	}

	subject := fmt.Sprintf("Contact form: %s - %s", msg.Reason, msg.Name)
	body := fmt.Sprintf(
		"You have received a new contact form submission.\n\n"+
			"Name: %s\nEmail: %s\nPhone: %s\nReason: %s\nChannel: %s\n\nMessage:\n%s\n",
		msg.Name, msg.Email, msg.Phone, msg.Reason, msg.Channel, msg.Message,
	)

	if err := s.mailer.Send(ctx, subject, body); err != nil {
		s.logger.Error("Failed to send contact email", map[string]interface{}{
			"error":  err.Error(),
			"reason": msg.Reason,
		})
		return fmt.Errorf("send contact email: %w", err)
	}

	s.logger.Info("Contact form relayed", map[string]interface{}{
		"reason":  msg.Reason,
		"channel": msg.Channel,
	})

	return nil
}

package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidInput = errors.New("invalid input")

// Mailer relays a message to the support inbox.
type Mailer interface {
	Send(ctx context.Context, from, to, subject, body string) error
}

type Inquiry struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

type Service struct {
	mailer Mailer
	from   string
	to     string
}

func NewService(mailer Mailer, from, to string) *Service {
	return &Service{
		mailer: mailer,
		from:   from,
		to:     to,
	}
}

// SubmitInquiry validates the contact form and relays it. The reply-to
// address is the visitor's own, carried in the body since the mail port
// only takes a fixed sender.
func (s *Service) SubmitInquiry(ctx context.Context, in Inquiry) error {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	message := strings.TrimSpace(in.Message)

	if name == "" || message == "" {
		return ErrInvalidInput
	}
	if !strings.Contains(email, "@") || strings.HasPrefix(email, "@") || strings.HasSuffix(email, "@") {
		return ErrInvalidInput
	}

	subject := fmt.Sprintf("Contact Form: %s", name)
	body := fmt.Sprintf("From: %s\n\n%s", email, message)

	if err := s.mailer.Send(ctx, s.from, s.to, subject, body); err != nil {
		return fmt.Errorf("send inquiry: %w", err)
	}
	return nil
}

package notification

import (
	"context"
	"errors"
	"fmt"

	"github.com/muhammadheryan/vastu-shakti/model"
	"github.com/muhammadheryan/vastu-shakti/thirdparty/mailer"
)

// Sender delivers a notification to its recipients.
type Sender interface {
	Send(ctx context.Context, n *model.Notification) error
}

// EmailSender renders a notification and mails each resulting email, one attempt each.
type EmailSender struct {
	renderer *Renderer
	mailer   mailer.Mailer
}

func NewEmailSender(renderer *Renderer, m mailer.Mailer) *EmailSender {
	return &EmailSender{renderer: renderer, mailer: m}
}

func (s *EmailSender) Send(ctx context.Context, n *model.Notification) error {
	emails, err := s.renderer.Render(n)
	if err != nil {
		return err
	}

	var errs []error
	for _, e := range emails {
		if err := s.mailer.Send(ctx, e); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", e.To, err))
		}
	}
	return errors.Join(errs...)
}

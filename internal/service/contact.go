package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SergeyBogomolovv/buynothing-checkout/internal/entities"
	"github.com/go-playground/validator/v10"
)

type ContactSender interface {
	SubmitContact(ctx context.Context, msg entities.ContactMessage) (bool, error)
}

type contactForm struct {
	Name    string `validate:"required"`
	Email   string `validate:"required,email"`
	Message string `validate:"required"`
}

var contactMessages = map[string]struct {
	field   string
	message string
}{
	"Name":    {"customerName", "Name is required"},
	"Email":   {"customerEmail", "Valid email is required"},
	"Message": {"message", "Message is required"},
}

type contactService struct {
	logger   *slog.Logger
	sender   ContactSender
	validate *validator.Validate
}

func NewContactService(logger *slog.Logger, sender ContactSender) *contactService {
	return &contactService{
		logger:   logger.With(slog.String("service", "contact")),
		sender:   sender,
		validate: validator.New(),
	}
}

// Submit validates the form and forwards it. The returned flag is the
// storefront's own success report.
func (s *contactService) Submit(ctx context.Context, msg entities.ContactMessage) (bool, error) {
	msg.Name = strings.TrimSpace(msg.Name)
	msg.Email = strings.TrimSpace(msg.Email)
	msg.Message = strings.TrimSpace(msg.Message)

	form := contactForm{Name: msg.Name, Email: msg.Email, Message: msg.Message}
	if err := s.validate.Struct(form); err != nil {
		var errs validator.ValidationErrors
		if !errors.As(err, &errs) {
			return false, fmt.Errorf("failed to validate contact form: %w", err)
		}
		fields := make(map[string]string, len(errs))
		for _, fe := range errs {
			m := contactMessages[fe.Field()]
			fields[m.field] = m.message
		}
		return false, &entities.ValidationError{Fields: fields}
	}

	ok, err := s.sender.SubmitContact(ctx, msg)
	if err != nil {
		return false, fmt.Errorf("failed to submit contact form: %w", err)
	}
	s.logger.Info("contact message submitted", slog.Bool("success", ok))
	return ok, nil
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/email"

	"github.com/go-playground/validator/v10"
)

// ErrNotConfigured signals a deployment problem (missing mail credentials),
// never a bad request.
var ErrNotConfigured = errors.New("email service is not configured")

// ContactMailer is the transport the usecase dispatches through. Satisfied
// by *email.EmailService; tests substitute a fake to exercise failures.
type ContactMailer interface {
	IsConfigured() bool
	SendContactEmail(data email.ContactEmailData) error
}

type contactUsecase struct {
	mailer   ContactMailer
	validate *validator.Validate
}

// NewContactUsecase creates a new contact usecase
func NewContactUsecase(mailer ContactMailer, validate *validator.Validate) domain.ContactUsecase {
	return &contactUsecase{
		mailer:   mailer,
		validate: validate,
	}
}

// IsAvailable reports whether the mail transport currently has credentials
func (uc *contactUsecase) IsAvailable() bool {
	return uc.mailer.IsConfigured()
}

// SendContactMessage revalidates the submission independently of whatever
// the client already checked, then relays it by email.
func (uc *contactUsecase) SendContactMessage(ctx context.Context, sub *domain.Submission) error {
	if !uc.mailer.IsConfigured() {
		return ErrNotConfigured
	}

	// Validation runs on what will actually be dispatched: surrounding
	// whitespace must not count toward the name's length bounds.
	candidate := *sub
	candidate.Name = strings.TrimSpace(candidate.Name)
	candidate.Email = strings.TrimSpace(candidate.Email)

	if err := uc.validate.Struct(&candidate); err != nil {
		return err
	}

	emailData := email.ContactEmailData{
		SenderName:   candidate.Name,
		SenderEmail:  candidate.Email,
		ProjectLabel: domain.ProjectTypeLabel(candidate.ProjectType),
		Message:      candidate.Message,
	}

	if err := uc.mailer.SendContactEmail(emailData); err != nil {
		return fmt.Errorf("failed to send contact email: %w", err)
	}

	return nil
}

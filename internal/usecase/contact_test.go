package usecase_test

import (
	"context"
	"errors"
	"testing"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/internal/usecase"
	"go-portfolio-backend/pkg/email"
	"go-portfolio-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) IsConfigured() bool {
	return m.Called().Bool(0)
}

func (m *MockMailer) SendContactEmail(data email.ContactEmailData) error {
	return m.Called(data).Error(0)
}

func validSubmission() *domain.Submission {
	return &domain.Submission{
		Name:        "Jane Doe",
		Email:       "jane@example.com",
		ProjectType: "rag_system",
		Message:     "I need a retrieval system for my docs.",
	}
}

func TestSendContactMessage(t *testing.T) {
	ctx := context.Background()

	t.Run("Should fail with ErrNotConfigured before validating", func(t *testing.T) {
		mailer := new(MockMailer)
		mailer.On("IsConfigured").Return(false)
		uc := usecase.NewContactUsecase(mailer, validation.New())

		err := uc.SendContactMessage(ctx, &domain.Submission{})
		assert.ErrorIs(t, err, usecase.ErrNotConfigured)
		mailer.AssertNotCalled(t, "SendContactEmail", mock.Anything)
	})

	t.Run("Should reject invalid input without dispatching", func(t *testing.T) {
		mailer := new(MockMailer)
		mailer.On("IsConfigured").Return(true)
		uc := usecase.NewContactUsecase(mailer, validation.New())

		sub := validSubmission()
		sub.Message = "too short"

		err := uc.SendContactMessage(ctx, sub)
		var validationErrors validator.ValidationErrors
		assert.ErrorAs(t, err, &validationErrors)
		mailer.AssertNotCalled(t, "SendContactEmail", mock.Anything)
	})

	t.Run("Should map the project type to its display label", func(t *testing.T) {
		mailer := new(MockMailer)
		mailer.On("IsConfigured").Return(true)
		mailer.On("SendContactEmail", mock.AnythingOfType("email.ContactEmailData")).Return(nil).Run(func(args mock.Arguments) {
			data := args.Get(0).(email.ContactEmailData)
			assert.Equal(t, "Jane Doe", data.SenderName)
			assert.Equal(t, "jane@example.com", data.SenderEmail)
			assert.Equal(t, "RAG System", data.ProjectLabel)
			assert.Equal(t, "I need a retrieval system for my docs.", data.Message)
		})
		uc := usecase.NewContactUsecase(mailer, validation.New())

		err := uc.SendContactMessage(ctx, validSubmission())
		assert.NoError(t, err)
		mailer.AssertExpectations(t)
	})

	t.Run("Should reject a name that is too short once trimmed", func(t *testing.T) {
		mailer := new(MockMailer)
		mailer.On("IsConfigured").Return(true)
		uc := usecase.NewContactUsecase(mailer, validation.New())

		sub := validSubmission()
		sub.Name = "  J "

		err := uc.SendContactMessage(ctx, sub)
		var validationErrors validator.ValidationErrors
		assert.ErrorAs(t, err, &validationErrors)
		mailer.AssertNotCalled(t, "SendContactEmail", mock.Anything)
	})

	t.Run("Should trim surrounding whitespace from the name", func(t *testing.T) {
		mailer := new(MockMailer)
		mailer.On("IsConfigured").Return(true)
		mailer.On("SendContactEmail", mock.AnythingOfType("email.ContactEmailData")).Return(nil).Run(func(args mock.Arguments) {
			data := args.Get(0).(email.ContactEmailData)
			assert.Equal(t, "Jane Doe", data.SenderName)
		})
		uc := usecase.NewContactUsecase(mailer, validation.New())

		sub := validSubmission()
		sub.Name = "  Jane Doe  "

		err := uc.SendContactMessage(ctx, sub)
		assert.NoError(t, err)
	})

	t.Run("Should wrap transport failures", func(t *testing.T) {
		mailer := new(MockMailer)
		mailer.On("IsConfigured").Return(true)
		transportErr := errors.New("smtp: 535 authentication failed")
		mailer.On("SendContactEmail", mock.AnythingOfType("email.ContactEmailData")).Return(transportErr)
		uc := usecase.NewContactUsecase(mailer, validation.New())

		err := uc.SendContactMessage(ctx, validSubmission())
		assert.ErrorIs(t, err, transportErr)
		assert.Contains(t, err.Error(), "failed to send contact email")
	})
}

package v1

import (
	"errors"
	"net/http"

	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/internal/usecase"
	"go-portfolio-backend/pkg/apperror"
	"go-portfolio-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

// NewContactHandler registers the contact route (public, no auth required)
func NewContactHandler(public *gin.RouterGroup, contactUC domain.ContactUsecase, routeMiddleware ...gin.HandlerFunc) {
	handler := &ContactHandler{
		contactUC: contactUC,
	}

	handlers := append(routeMiddleware, handler.SubmitContact)
	public.POST("/contact", handlers...)
}

// SubmitContact godoc
// @Summary      Submit Contact Form
// @Description  Relay a portfolio contact submission by email. Public endpoint.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        contact  body      domain.Submission  true  "Contact Form Data"
// @Success      200      {object}  response.SuccessResponse
// @Failure      400      {object}  response.ErrorResponse
// @Failure      500      {object}  response.ErrorResponse
// @Failure      503      {object}  response.ErrorResponse
// @Router       /contact [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	// Availability gate runs before any body read: missing mail credentials
	// are a deployment problem, not a bad request
	if !h.contactUC.IsAvailable() {
		c.Error(apperror.ServiceUnavailable("Email service is not configured."))
		return
	}

	var sub domain.Submission
	if err := c.ShouldBindJSON(&sub); err != nil {
		c.Error(apperror.BadRequest("Invalid JSON body."))
		return
	}

	if err := h.contactUC.SendContactMessage(c.Request.Context(), &sub); err != nil {
		var validationErrors validator.ValidationErrors
		switch {
		case errors.As(err, &validationErrors):
			c.Error(apperror.BadRequest(validation.Summary(validationErrors)))
		case errors.Is(err, usecase.ErrNotConfigured):
			c.Error(apperror.ServiceUnavailable("Email service is not configured."))
		default:
			c.Error(apperror.Internal("Failed to send message. Please try again later.", err))
		}
		return
	}

	response.Success(c, http.StatusOK)
}

package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// messageIDs maps JSON field name to the contactForm message identifier the
// localization catalog resolves for inline display. Length violations on
// name/message pick the matching min/max variant; everything else on a field
// collapses to its single identifier.
var messageIDs = map[string]map[string]string{
	"name": {
		"required": "error_nameMin",
		"min":      "error_nameMin",
		"max":      "error_nameMax",
	},
	"email": {
		"required":    "error_email",
		"email_shape": "error_email",
	},
	"projectType": {
		"required":     "error_projectType",
		"project_type": "error_projectType",
	},
	"message": {
		"required": "error_messageMin",
		"min":      "error_messageMin",
		"max":      "error_messageMax",
	},
}

// FieldErrors converts validation errors into a message identifier per
// failing field, keyed by JSON field name. Used by the form SDK for inline
// errors; unknown fields fall back to a generic identifier.
func FieldErrors(err error) map[string]string {
	out := make(map[string]string)
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return out
	}
	for _, e := range validationErrors {
		if _, seen := out[e.Field()]; seen {
			continue
		}
		if byTag, ok := messageIDs[e.Field()]; ok {
			if id, ok := byTag[e.Tag()]; ok {
				out[e.Field()] = id
				continue
			}
		}
		out[e.Field()] = "error_invalid"
	}
	return out
}

// FormatValidationErrors converts validation errors to user-facing messages
// suitable for the HTTP error body.
func FormatValidationErrors(err error) []string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		// Not a validation error, return generic message
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}
	return messages
}

// Summary joins the formatted messages into the single error string the
// wire contract allows.
func Summary(err error) string {
	return strings.Join(FormatValidationErrors(err), "; ")
}

func formatSingleError(e validator.FieldError) string {
	field := e.Field()

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, e.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, e.Param())
	case "email_shape":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "project_type":
		return fmt.Sprintf("%s must be one of: ai_chatbot, rag_system, fullstack_webapp, other", field)
	default:
		return fmt.Sprintf("%s is invalid (%s)", field, e.Tag())
	}
}

package contactform

import "errors"

// ErrSubmitting is returned when Submit is called while a request is
// already in flight for the same form instance.
var ErrSubmitting = errors.New("contactform: submission already in flight")

// ErrInvalid is returned when local validation rejects the field values.
// No HTTP request is issued; per-field messages are on the form.
var ErrInvalid = errors.New("contactform: submission failed validation")

// ServerError is a failure the backend reported (or a response it mangled).
// Message is the user-safe string from the body, empty when the body could
// not be decoded.
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	if e.Message == "" {
		return "contactform: server reported a failure"
	}
	return "contactform: " + e.Message
}

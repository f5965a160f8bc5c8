package contactform

import (
	"context"
	"errors"
	"sync"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/i18n"
	"go-portfolio-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// State is the form controller state.
type State int

const (
	StateEditing State = iota
	StateSubmitting
	StateSuccess
	StateError
)

func (s State) String() string {
	switch s {
	case StateEditing:
		return "editing"
	case StateSubmitting:
		return "submitting"
	case StateSuccess:
		return "success"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// Notifier is the toast surface. Calls are fire-and-forget; no
// acknowledgement is expected.
type Notifier interface {
	Success(message string)
	Error(message string)
}

type noopNotifier struct{}

func (noopNotifier) Success(string) {}
func (noopNotifier) Error(string)   {}

// FormOption customizes a Form.
type FormOption func(*Form)

// WithTranslator replaces the bundled English catalog with any lookup
// function; the controller is locale-agnostic.
func WithTranslator(t func(key string) string) FormOption {
	return func(f *Form) {
		if t != nil {
			f.t = t
		}
	}
}

// Form drives one contact form instance through
// editing -> submitting -> {success, error} -> editing.
// It validates locally with the same schema the backend enforces, so a
// rejected submission never issues an HTTP request. Safe for concurrent use.
type Form struct {
	client   *Client
	validate *validator.Validate
	notify   Notifier
	t        func(key string) string

	mu          sync.Mutex
	state       State
	values      domain.Submission
	fieldErrors map[string]string
}

// NewForm creates a form controller bound to a client and a notifier.
// A nil notifier is allowed and discards notifications.
func NewForm(client *Client, notify Notifier, opts ...FormOption) *Form {
	if notify == nil {
		notify = noopNotifier{}
	}
	f := &Form{
		client:      client,
		validate:    validation.New(),
		notify:      notify,
		t:           i18n.ContactForm().Translator("en"),
		state:       StateEditing,
		fieldErrors: make(map[string]string),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// State returns the current controller state.
func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Values returns the current field values. After a successful submission
// they are the initial empty state; after a failure they are retained.
func (f *Form) Values() domain.Submission {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.values
}

// FieldError returns the localized inline error under the given field
// ("name", "email", "projectType", "message"), or "" when the field is fine.
func (f *Form) FieldError(field string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fieldErrors[field]
}

// FieldErrors returns a copy of all inline errors keyed by field name.
func (f *Form) FieldErrors() map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[string]string, len(f.fieldErrors))
	for k, v := range f.fieldErrors {
		out[k] = v
	}
	return out
}

// SetField updates one field value, clears that field's inline error, and
// returns the controller to editing after a terminal outcome. Unknown field
// names are ignored.
func (f *Form) SetField(field, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state == StateSubmitting {
		// Fields are disabled while a request is in flight
		return
	}

	switch field {
	case "name":
		f.values.Name = value
	case "email":
		f.values.Email = value
	case "projectType":
		f.values.ProjectType = value
	case "message":
		f.values.Message = value
	default:
		return
	}

	delete(f.fieldErrors, field)
	f.state = StateEditing
}

// Submit runs the editing -> submitting transition: validate locally, and
// only on success issue the single HTTP request. The returned error mirrors
// the notification: nil, ErrInvalid, ErrSubmitting, a *ServerError, or a
// wrapped transport error.
func (f *Form) Submit(ctx context.Context) error {
	f.mu.Lock()
	if f.state == StateSubmitting {
		f.mu.Unlock()
		return ErrSubmitting
	}

	candidate := f.values
	if err := f.validate.Struct(&candidate); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			f.fieldErrors = f.localize(validation.FieldErrors(validationErrors))
			f.state = StateEditing
			f.mu.Unlock()
			return ErrInvalid
		}
		f.mu.Unlock()
		return err
	}

	f.fieldErrors = make(map[string]string)
	f.state = StateSubmitting
	f.mu.Unlock()

	err := f.client.Submit(ctx, candidate)

	f.mu.Lock()
	defer f.mu.Unlock()

	if err == nil {
		// Clear to the initial empty state
		f.values = domain.Submission{}
		f.state = StateSuccess
		f.notify.Success(f.t("toast_success"))
		return nil
	}

	// Entered values are retained so nothing the visitor typed is lost
	f.state = StateError

	var serverErr *ServerError
	if errors.As(err, &serverErr) {
		msg := serverErr.Message
		if msg == "" {
			msg = f.t("toast_error")
		}
		f.notify.Error(msg)
		return err
	}

	// The request itself never completed (offline, DNS, timeout)
	f.notify.Error(f.t("toast_errorSend"))
	return err
}

// localize maps message identifiers to display strings via the translator.
func (f *Form) localize(ids map[string]string) map[string]string {
	out := make(map[string]string, len(ids))
	for field, id := range ids {
		out[field] = f.t(id)
	}
	return out
}

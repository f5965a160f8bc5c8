package validation

import (
	"reflect"
	"regexp"
	"strings"

	"go-portfolio-backend/internal/domain"

	"github.com/go-playground/validator/v10"
)

// Permissive address shape: local-part@domain with a dot in the domain.
// Deliberately not full RFC 5322 - odd-but-valid addresses may be rejected,
// which is an accepted trade-off for a contact form.
var emailShapeRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// New returns a validator with the submission rules registered. Both the
// HTTP handler and the form SDK validate through this factory, so the two
// sides can never drift apart.
func New() *validator.Validate {
	v := validator.New()
	RegisterValidators(v)
	return v
}

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("email_shape", EmailShape)
	_ = v.RegisterValidation("project_type", ProjectType)

	// Report errors under the JSON field name so per-field error maps line
	// up with what the frontend renders under each input.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// EmailShape validates the basic local@domain.tld address shape
func EmailShape(fl validator.FieldLevel) bool {
	return emailShapeRegex.MatchString(fl.Field().String())
}

// ProjectType validates membership in the closed project type set
func ProjectType(fl validator.FieldLevel) bool {
	_, ok := domain.ProjectTypeLabels[fl.Field().String()]
	return ok
}

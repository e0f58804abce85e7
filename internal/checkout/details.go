package checkout

import (
	"errors"
	"fmt"
	"strings"

	"github.com/SergeyBogomolovv/buynothing-checkout/internal/entities"
	"github.com/go-playground/validator/v10"
)

// DetailsForm is the raw customer input.
type DetailsForm struct {
	Name  string
	Email string
}

type details struct {
	Name  string `validate:"required"`
	Email string `validate:"required,email"`
}

var detailMessages = map[string]struct {
	field   string
	message string
}{
	"Name":  {"customerName", "Name is required"},
	"Email": {"customerEmail", "Valid email is required"},
}

var validate = validator.New()

// CaptureDetails validates the form without any network I/O.
func CaptureDetails(form DetailsForm) (entities.CustomerDetails, error) {
	d := details{
		Name:  strings.TrimSpace(form.Name),
		Email: strings.TrimSpace(form.Email),
	}

	if err := validate.Struct(d); err != nil {
		var errs validator.ValidationErrors
		if !errors.As(err, &errs) {
			return entities.CustomerDetails{}, fmt.Errorf("failed to validate details: %w", err)
		}
		fields := make(map[string]string, len(errs))
		for _, fe := range errs {
			m := detailMessages[fe.Field()]
			fields[m.field] = m.message
		}
		return entities.CustomerDetails{}, &entities.ValidationError{Fields: fields}
	}

	return entities.CustomerDetails{Name: d.Name, Email: d.Email}, nil
}

package deck

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

// FlashDuration is how long a form result stays on screen.
const FlashDuration = 3 * time.Second

// Form result statuses sent by the server.
const (
	StatusSuccess = "success"
	StatusDanger  = "danger"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// CardForm is the add/edit card form.
type CardForm struct {
	Question string `validate:"required,max=500"`
	Answer   string `validate:"required,max=500"`
}

// Normalize trims surrounding whitespace from both fields.
func (f CardForm) Normalize() CardForm {
	return CardForm{
		Question: strings.TrimSpace(f.Question),
		Answer:   strings.TrimSpace(f.Answer),
	}
}

// Validate checks the normalized form. The returned error lists every
// offending field in a form suitable for display.
func (f CardForm) Validate() error {
	err := validate.Struct(f.Normalize())
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := lo.Map(verrs, func(fe validator.FieldError, _ int) string {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			return field + " is required"
		case "max":
			return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
		default:
			return fmt.Sprintf("%s is invalid (%s)", field, fe.Tag())
		}
	})
	return &FormError{Messages: msgs}
}

// FormError reports client-side form validation failures.
type FormError struct {
	Messages []string
}

func (e *FormError) Error() string {
	return strings.Join(e.Messages, "; ")
}

// FormResult is the server's answer to a form submission.
type FormResult struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// OK reports whether the server accepted the submission.
func (r FormResult) OK() bool {
	return r.Status == StatusSuccess
}

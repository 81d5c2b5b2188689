package httpapi

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// bindingErrors turns a gin binding failure into ordered field/message
// pairs for the 422 envelope.
func bindingErrors(err error) []FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Field: "body", Message: "The request body is invalid."}}
	}

	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		out = append(out, FieldError{Field: field, Message: validationMessage(field, fe.Tag())})
	}
	return out
}

func validationMessage(field, tag string) string {
	switch tag {
	case "required":
		return fmt.Sprintf("The %s field is required.", field)
	case "email":
		return fmt.Sprintf("The %s field must be a valid email address.", field)
	case "oneof":
		return fmt.Sprintf("The selected %s is invalid.", field)
	default:
		return fmt.Sprintf("The %s field is invalid.", field)
	}
}

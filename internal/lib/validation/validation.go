// Package validation переводит ошибки go-playground/validator в человекочитаемый текст.
package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator"
)

// Message формирует сообщение из ошибки валидации.
// Каждое нарушение описывается отдельно, описания объединяются через запятую.
func Message(err error) string {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return err.Error()
	}

	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		switch e.ActualTag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("field %s is a required field", e.Field()))
		case "email":
			msgs = append(msgs, fmt.Sprintf("field %s must be a valid email", e.Field()))
		case "min":
			msgs = append(msgs, fmt.Sprintf("field %s must be at least %s characters", e.Field(), e.Param()))
		case "gt":
			msgs = append(msgs, fmt.Sprintf("field %s must be greater than %s", e.Field(), e.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("field %s is not valid", e.Field()))
		}
	}
	return strings.Join(msgs, ", ")
}

package exceptions

import (
	"errors"
	"mrn-validator-service/internal/pkg/constvars"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FormatAllValidationErrors renders validator errors as "field message" pairs for logs.
func FormatAllValidationErrors(err error) string {
	if err == nil {
		return constvars.ErrClientCannotProcessRequest
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err.Error()
	}

	var messages []string
	for _, fieldErr := range validationErrors {
		fieldName := strings.ToLower(fieldErr.Field())
		tag := fieldErr.Tag()
		customMessage, ok := constvars.CustomValidationErrorMessages[tag]
		if !ok {
			customMessage = "is invalid"
		}
		if constvars.TagsWithParams[tag] {
			if tag == "oneof" {
				customMessage = strings.Replace(customMessage, "%s", strings.Join(strings.Fields(fieldErr.Param()), ", "), 1)
			} else {
				customMessage = strings.Replace(customMessage, "%s", fieldErr.Param(), 1)
			}
		}
		messages = append(messages, fieldName+" "+customMessage)
	}
	return strings.Join(messages, ", ")
}

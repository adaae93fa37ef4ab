package httpx

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateStruct runs the `validate` tags of s and returns one detail per failing field.
func ValidateStruct(s any) []ErrorDetail {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []ErrorDetail{{Field: "", Message: err.Error()}}
	}

	var details []ErrorDetail
	for _, fe := range validationErrors {
		field := fe.Field()
		fieldName := strings.ToLower(field[:1]) + field[1:]

		var message string
		switch fe.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", fieldName)
		case "gt":
			message = fmt.Sprintf("%s must be greater than %s", fieldName, fe.Param())
		default:
			message = fmt.Sprintf("%s is invalid", fieldName)
		}

		details = append(details, ErrorDetail{
			Field:   fieldName,
			Message: message,
		})
	}

	return details
}

package serverutils

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"ytchat-web/internal/dto"
)

var validate = validator.New()

// ValidateRequest runs struct tag validation and folds failures into a single
// ValidationError so the error middleware renders them as a 400.
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return dto.NewValidationError("Invalid request payload")
	}

	msgs := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", fe.Field()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s is invalid", fe.Field()))
		}
	}

	return dto.NewValidationError(strings.Join(msgs, "; "))
}

package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"ytchat-web/internal/dto"
	"ytchat-web/pkg/gateway"
)

// ErrorHandlerMiddleware converts errors bubbling out of controllers into the
// JSON error envelope. Gateway failures keep their normalized human-readable
// message; the HTTP code follows the failure category.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		code := fiber.StatusInternalServerError
		message := err.Error()

		var validationErr *dto.ValidationError
		var busyErr *dto.ChatBusyError
		var notFoundErr *dto.SessionNotFoundError
		var backendErr *gateway.BackendError
		var fiberErr *fiber.Error

		switch {
		case errors.As(err, &validationErr):
			code = fiber.StatusBadRequest
		case errors.As(err, &busyErr):
			code = fiber.StatusConflict
		case errors.As(err, &notFoundErr):
			code = fiber.StatusNotFound
		case errors.As(err, &backendErr):
			switch backendErr.Kind {
			case gateway.ErrKindTimeout:
				code = fiber.StatusGatewayTimeout
			case gateway.ErrKindUnreachable, gateway.ErrKindNoResponse:
				code = fiber.StatusBadGateway
			case gateway.ErrKindBackend:
				code = backendErr.StatusCode
				if code < 400 {
					code = fiber.StatusBadGateway
				}
			}
		case errors.As(err, &fiberErr):
			code = fiberErr.Code
		}

		return ctx.Status(code).JSON(ErrorResponse(code, message))
	}
}

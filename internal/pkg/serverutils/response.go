package serverutils

import (
	"github.com/gofiber/fiber/v2"
)

type ErrorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func ErrorResponse(code int, message string) ErrorBody {
	return ErrorBody{Code: code, Message: message}
}

// ErrorHandlerMiddleware converts panics and unhandled errors into JSON
// error bodies so handlers never leak stack traces to clients.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		defer func() {
			if r := recover(); r != nil {
				_ = ctx.Status(fiber.StatusInternalServerError).
					JSON(ErrorResponse(fiber.StatusInternalServerError, "internal server error"))
			}
		}()

		if err := ctx.Next(); err != nil {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return ctx.Status(code).JSON(ErrorResponse(code, err.Error()))
		}
		return nil
	}
}

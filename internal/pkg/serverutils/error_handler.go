package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"paddy-kbs-be/internal/entity"
)

// StatusFor maps an error to its HTTP status. Unknown disease and location
// stay 500 for compatibility with existing clients; the kind in the body
// tells them apart from a failing backend.
func StatusFor(err error) int {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fiberErr.Code
	}

	switch entity.KindOf(err) {
	case entity.KindValidation, entity.KindInvalidBudget:
		return fiber.StatusBadRequest
	case entity.KindSessionNotFound:
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

// ErrorHandler renders err in the shared response envelope. It doubles as
// fiber.Config.ErrorHandler.
func ErrorHandler(ctx *fiber.Ctx, err error) error {
	code := StatusFor(err)
	res := ErrorResponse(code, err.Error())
	res.Kind = string(entity.KindOf(err))
	return ctx.Status(code).JSON(res)
}

func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}
		return ErrorHandler(ctx, err)
	}
}

package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"study-planner-be/pkg/planner"
)

// ErrorHandlerMiddleware converts errors bubbled up from controllers into
// the JSON envelope. Planner sentinels map to client errors; anything
// unrecognized is a 500. No error is fatal to the session store.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		status := fiber.StatusInternalServerError
		switch {
		case errors.Is(err, planner.ErrInvalidDate),
			errors.Is(err, planner.ErrUnsupportedFile),
			errors.Is(err, planner.ErrTooManyTopics):
			status = fiber.StatusBadRequest
		case errors.Is(err, planner.ErrNoTopics):
			status = fiber.StatusConflict
		case errors.Is(err, planner.ErrNoSchedule):
			status = fiber.StatusNotFound
		default:
			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				status = fiberErr.Code
			}
		}

		return ctx.Status(status).JSON(ErrorResponse(err.Error(), nil))
	}
}

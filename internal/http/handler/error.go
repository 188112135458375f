package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"studentdocs/internal/apperr"
)

// errorPayload is the flat error body every endpoint returns.
type errorPayload struct {
	Error string `json:"error"`
}

// writeError writes the standardized JSON error body.
func writeError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(errorPayload{Error: message})
}

// mapError translates the core error taxonomy to an HTTP response. Internal
// details never leak; the body carries only the safe message per kind.
func mapError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, apperr.ErrUnauthenticated):
		return writeError(c, fiber.StatusUnauthorized, "missing or invalid credential")
	case errors.Is(err, apperr.ErrUnauthorized):
		return writeError(c, fiber.StatusForbidden, "no employee record for credential")
	case errors.Is(err, apperr.ErrForbidden):
		return writeError(c, fiber.StatusForbidden, "forbidden")
	case errors.Is(err, apperr.ErrNotFound):
		return writeError(c, fiber.StatusNotFound, "not found")
	case errors.Is(err, apperr.ErrValidation):
		return writeError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, apperr.ErrConsistency):
		// The orphaned key is reported through metrics and the server log,
		// never to the caller.
		return writeError(c, fiber.StatusInternalServerError, "internal server error")
	default:
		return writeError(c, fiber.StatusInternalServerError, "internal server error")
	}
}

// ErrorHandler returns a Fiber global error handler that standardizes
// unhandled errors to the same flat body.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			status = e.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "bad request")
		case fiber.StatusNotFound:
			return writeError(c, status, "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "method not allowed")
		default:
			return writeError(c, status, "internal server error")
		}
	}
}

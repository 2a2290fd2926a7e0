package handlers

import (
	"errors"

	"trip-desk/internal/docpath"
	"trip-desk/internal/repository"
	"trip-desk/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	var pathErr *docpath.PathError
	var conflictErr *docpath.TypeConflictError

	switch {
	case errors.Is(err, repository.ErrTripNotFound), errors.Is(err, repository.ErrDraftNotFound):
		return fiber.StatusNotFound
	case errors.As(err, &pathErr), errors.As(err, &conflictErr), errors.Is(err, service.ErrUnknownItemKind):
		return fiber.StatusBadRequest
	case errors.Is(err, service.ErrInvalidDocument):
		return fiber.StatusUnprocessableEntity
	}
	return fiber.StatusInternalServerError
}

// respondError writes err as {"error": ...}. Internal errors are logged and
// replaced by fallback so storage details do not leak to clients.
func respondError(c *fiber.Ctx, logger *zap.Logger, err error, fallback string) error {
	status := statusFor(err)
	msg := err.Error()
	if status == fiber.StatusInternalServerError {
		logger.Error(fallback, zap.String("path", c.Path()), zap.Error(err))
		msg = fallback
	}
	return c.Status(status).JSON(fiber.Map{
		"error": msg,
	})
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": msg,
	})
}

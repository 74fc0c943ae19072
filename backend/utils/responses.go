package utils

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"coursehub/backend/store"
)

// ErrorResponse is the JSON body every failed request gets.
type ErrorResponse struct {
	Success bool        `json:"success"`
	Error   string      `json:"error"`
	Message string      `json:"message,omitempty"`
	Details interface{} `json:"details,omitempty"`
}

// Error writes a JSON error with the given status.
func Error(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(ErrorResponse{
		Success: false,
		Error:   http.StatusText(status),
		Message: message,
	})
}

// StoreError maps the store's error kinds onto HTTP statuses. Inconsistent
// state and anything unrecognized surface as 500.
func StoreError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return Error(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, store.ErrConflict):
		return Error(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, store.ErrForbidden):
		return Error(c, fiber.StatusForbidden, err.Error())
	case errors.Is(err, store.ErrInvalidInput):
		return Error(c, fiber.StatusBadRequest, err.Error())
	default:
		return Error(c, fiber.StatusInternalServerError, err.Error())
	}
}

// ValidationError reports field-level validation failures as 422.
func ValidationError(c *fiber.Ctx, fields map[string]string) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(ErrorResponse{
		Success: false,
		Error:   "Validation Error",
		Details: fields,
	})
}

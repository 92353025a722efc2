package middleware

import (
	"errors"

	"carmart/services"

	"github.com/gofiber/fiber/v2"
)

// SuccessResponse writes the {message, data} envelope. A nil data field is
// omitted (delete responses carry only the message).
func SuccessResponse(c *fiber.Ctx, statusCode int, message string, data interface{}) error {
	body := fiber.Map{"message": message}
	if data != nil {
		body["data"] = data
	}
	return c.Status(statusCode).JSON(body)
}

// PaginatedResponse writes the list envelope with pagination totals.
func PaginatedResponse(c *fiber.Ctx, message string, data interface{}, page, limit, totalPages int, totalItems int64) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":    message,
		"page":       page,
		"limit":      limit,
		"totalPages": totalPages,
		"totalItems": totalItems,
		"data":       data,
	})
}

// ErrorResponse writes the {message, errors} envelope. A nil errs field is
// omitted.
func ErrorResponse(c *fiber.Ctx, statusCode int, message string, errs interface{}) error {
	body := fiber.Map{"message": message}
	if errs != nil && errs != "" {
		body["errors"] = errs
	}
	return c.Status(statusCode).JSON(body)
}

// ValidationErrorResponse writes a 422 with the collected field messages.
func ValidationErrorResponse(c *fiber.Ctx, messages []string) error {
	return ErrorResponse(c, fiber.StatusUnprocessableEntity, "Validation Error", messages)
}

// ServiceErrorResponse maps a services error to its HTTP status. Anything
// outside the taxonomy degrades to a 500 with the underlying message.
func ServiceErrorResponse(c *fiber.Ctx, err error) error {
	var validationErr *services.ValidationError
	if errors.As(err, &validationErr) {
		return ValidationErrorResponse(c, validationErr.Messages)
	}
	var notFoundErr *services.NotFoundError
	if errors.As(err, &notFoundErr) {
		return ErrorResponse(c, fiber.StatusNotFound, notFoundErr.Message, nil)
	}
	var conflictErr *services.ConflictError
	if errors.As(err, &conflictErr) {
		return ErrorResponse(c, fiber.StatusConflict, conflictErr.Message, nil)
	}
	var badRequestErr *services.BadRequestError
	if errors.As(err, &badRequestErr) {
		return ErrorResponse(c, fiber.StatusBadRequest, badRequestErr.Message, nil)
	}
	return ErrorResponse(c, fiber.StatusInternalServerError, err.Error(), nil)
}

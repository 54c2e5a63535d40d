package handlers

import (
	"errors"
	"fmt"
	"log"

	"globalbazaar/internal/repositories"
	"globalbazaar/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// fail translates a service or repository error into the HTTP response for
// it. Unrecognized errors are logged and reported as a generic 500 so no
// storage detail leaks to the caller.
func fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "not found",
		})
	case errors.Is(err, repositories.ErrInsufficientStock):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "out of stock",
		})
	case errors.Is(err, repositories.ErrInvalidQuantity):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "invalid quantity",
		})
	case errors.Is(err, repositories.ErrDuplicateEmail):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message": "email already registered",
		})
	case errors.Is(err, services.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "Forbidden Access",
		})
	case errors.Is(err, services.ErrInvalidCredentials):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "invalid credentials",
		})
	default:
		log.Printf("Unhandled error on %s %s: %v", c.Method(), c.Path(), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal Server Error",
		})
	}
}

// badRequest reports a malformed or invalid request body.
func badRequest(c *fiber.Ctx, err error) error {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		messages := make(map[string]string, len(validationErrors))
		for _, e := range validationErrors {
			messages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  messages,
		})
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Invalid request body",
		"error":   err.Error(),
	})
}

// principal returns the verified email set by the auth middleware.
func principal(c *fiber.Ctx) string {
	email, _ := c.Locals("email").(string)
	return email
}

package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-matcher/internal/models"
)

// ErrorHandler returns a fiber error handler that answers with
// models.ErrorResponse. Internal errors are logged by the caller-supplied
// hook and never leak their text to the client.
func ErrorHandler(maxFileSize int64, onInternal func(c *fiber.Ctx, err error)) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "Internal server error"

		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
			message = fe.Message
		}

		switch {
		case code == fiber.StatusRequestEntityTooLarge:
			message = fmt.Sprintf("Resume file too large. Max size: %d bytes", maxFileSize)
		case code >= fiber.StatusInternalServerError && onInternal != nil:
			onInternal(c, err)
		}

		return c.Status(code).JSON(models.ErrorResponse{
			Error: message,
			Code:  code,
		})
	}
}

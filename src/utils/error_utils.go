// error_utils.go
package utils

import (
	"github.com/gofiber/fiber/v2"

	"Backend-Yeoun-Survey/src/i18n"
	"Backend-Yeoun-Survey/src/models"
)

// LocaleKey is the fiber.Ctx local holding the request locale.
const LocaleKey = "locale"

func HandleError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(models.ErrorResponse{
		Status:  status,
		Message: message,
	})
}

// HandleLocalizedError resolves key in the request locale.
func HandleLocalizedError(c *fiber.Ctx, status int, key string) error {
	return c.Status(status).JSON(models.ErrorResponse{
		Status:  status,
		Message: Localize(c, key),
		Code:    key,
	})
}

func Localize(c *fiber.Ctx, key string) string {
	locale, _ := c.Locals(LocaleKey).(string)
	return i18n.Localize(locale, key)
}

// HandleValidationError answers 400 with per-field details from the validator.
func HandleValidationError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
		Status:  fiber.StatusBadRequest,
		Message: Localize(c, i18n.MsgInvalidInput),
		Code:    i18n.MsgInvalidInput,
		Details: ValidationDetails(err),
	})
}

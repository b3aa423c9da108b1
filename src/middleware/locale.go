package middleware

import (
	"github.com/gofiber/fiber/v2"

	"Backend-Yeoun-Survey/src/i18n"
	"Backend-Yeoun-Survey/src/utils"
)

// Locale picks the response language from ?lang= or Accept-Language.
func Locale() fiber.Handler {
	return func(c *fiber.Ctx) error {
		locale := i18n.DetermineLocale(c.Query("lang"), c.Get(fiber.HeaderAcceptLanguage))
		c.Locals(utils.LocaleKey, locale)
		c.Set(fiber.HeaderContentLanguage, locale)
		return c.Next()
	}
}

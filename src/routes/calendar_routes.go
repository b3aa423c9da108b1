package routes

import (
	"github.com/gofiber/fiber/v2"

	"Backend-Yeoun-Survey/src/controllers"
)

func calendarRoutes(app *fiber.App) {
	cal := app.Group("/calendar")
	cal.Get("/events", controllers.GetCalendarEvents)
	cal.Get("/month", controllers.GetCalendarMonth)
	cal.Get("/today", controllers.GetCalendarToday)
}

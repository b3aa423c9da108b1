package routes

import (
	"github.com/gofiber/fiber/v2"

	"Backend-Yeoun-Survey/src/controllers"
)

func catalogRoutes(app *fiber.App) {
	app.Get("/songs", controllers.GetSongs)
	app.Get("/positions", controllers.GetPositions)
}

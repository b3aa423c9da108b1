package routes

import (
	"github.com/gofiber/fiber/v2"

	"Backend-Yeoun-Survey/src/controllers"
	"Backend-Yeoun-Survey/src/middleware"
)

// Deps is everything the routes need, built once in main.
type Deps struct {
	Auth   *controllers.AuthController
	Survey *controllers.SurveyController
	Admin  *controllers.AdminController

	RequireAuth  fiber.Handler
	RequireAdmin fiber.Handler
}

func InitRoutes(app *fiber.App, d Deps) {
	authRoutes(app, d)
	catalogRoutes(app)
	calendarRoutes(app)
	surveyRoutes(app, d)
	adminRoutes(app, d)

	// Route เช็คว่า API ทำงานอยู่
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("✅ API is running...")
	})
}

// NewDeps wires the middleware chain around the controllers.
func NewDeps(auth *controllers.AuthController, survey *controllers.SurveyController, admin *controllers.AdminController, requireAuth fiber.Handler, lookup middleware.AdminLookup) Deps {
	return Deps{
		Auth:         auth,
		Survey:       survey,
		Admin:        admin,
		RequireAuth:  requireAuth,
		RequireAdmin: middleware.AdminOnly(lookup),
	}
}

package routes

import (
	"github.com/gofiber/fiber/v2"
)

// adminRoutes กำหนดเส้นทางสำหรับ Admin API
func adminRoutes(app *fiber.App, d Deps) {
	admin := app.Group("/admin", d.RequireAuth, d.RequireAdmin)

	admin.Get("/responses", d.Admin.ListResponses)
	admin.Get("/songs/stats", d.Admin.SongStats)
	admin.Get("/users", d.Admin.ListUsers)
	admin.Post("/promote", d.Admin.PromoteUser)
}

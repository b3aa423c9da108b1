package routes

import (
	"github.com/gofiber/fiber/v2"
)

// authRoutes กำหนด route สำหรับ auth (kakao login/logout)
func authRoutes(app *fiber.App, d Deps) {
	auth := app.Group("/auth")

	auth.Get("/kakao/login", d.Auth.KakaoLogin)
	auth.Post("/kakao/callback", d.Auth.KakaoCallback)
	auth.Post("/kakao/direct", d.Auth.KakaoDirect)
	auth.Get("/me", d.RequireAuth, d.Auth.Me)
	auth.Post("/logout", d.RequireAuth, d.Auth.Logout)
}

package routes

import (
	"github.com/gofiber/fiber/v2"
)

func surveyRoutes(app *fiber.App, d Deps) {
	survey := app.Group("/survey")

	// public: only exposes whether a response exists
	survey.Get("/check", d.Survey.CheckCompletion)

	authed := survey.Group("", d.RequireAuth)
	authed.Get("/state", d.Survey.GetState)
	authed.Post("/advance", d.Survey.Advance)
	authed.Post("/retreat", d.Survey.Retreat)
	authed.Post("/songs/next", d.Survey.NextSong)
	authed.Post("/songs/prev", d.Survey.PrevSong)
	authed.Put("/positions", d.Survey.SetPositions)
	authed.Put("/songs", d.Survey.SetSongs)
	authed.Patch("/songs/:songId", d.Survey.UpdateSongDetail)
	authed.Post("/submit", d.Survey.Submit)
	authed.Get("/response", d.Survey.GetResponse)
	authed.Post("/reset", d.Survey.Reset)
}

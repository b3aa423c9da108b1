package controllers

import (
	"github.com/gofiber/fiber/v2"

	"Backend-Yeoun-Survey/src/services/catalog"
)

// GetSongs godoc
// @Summary      Active songs in display order
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  models.Song
// @Router       /songs [get]
func GetSongs(c *fiber.Ctx) error {
	return c.JSON(catalog.ActiveSongs())
}

// GetPositions godoc
// @Summary      Main and detailed positions
// @Tags         catalog
// @Produce      json
// @Param        main  query  string  false  "Comma separated main positions to expand"
// @Success      200  {object}  map[string]interface{}
// @Router       /positions [get]
func GetPositions(c *fiber.Ctx) error {
	resp := fiber.Map{
		"main":     catalog.MainPositions(),
		"detailed": catalog.DetailedPositions(),
	}
	if main := c.Query("main"); main != "" {
		resp["available"] = catalog.ExpandPositions(splitCSV(main))
	}
	return c.JSON(resp)
}

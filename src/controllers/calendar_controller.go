package controllers

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"Backend-Yeoun-Survey/src/i18n"
	"Backend-Yeoun-Survey/src/services/calendar"
	"Backend-Yeoun-Survey/src/utils"
)

// GetCalendarEvents godoc
// @Summary      Schedule events, optionally for one month
// @Tags         calendar
// @Produce      json
// @Param        year   query  int  false  "Year"
// @Param        month  query  int  false  "Month (1-12)"
// @Success      200  {array}  models.CalendarEvent
// @Router       /calendar/events [get]
func GetCalendarEvents(c *fiber.Ctx) error {
	if c.Query("year") == "" && c.Query("month") == "" {
		return c.JSON(calendar.Events())
	}
	year, month, ok := yearMonth(c)
	if !ok {
		return utils.HandleLocalizedError(c, fiber.StatusBadRequest, i18n.MsgInvalidInput)
	}
	events := calendar.EventsForMonth(year, month)
	if events == nil {
		return c.JSON([]interface{}{})
	}
	return c.JSON(events)
}

// GetCalendarMonth godoc
// @Summary      Month grid with events per day
// @Tags         calendar
// @Produce      json
// @Param        year   query  int  false  "Year, defaults to now"
// @Param        month  query  int  false  "Month (1-12), defaults to now"
// @Success      200  {object}  models.CalendarMonth
// @Failure      400  {object}  models.ErrorResponse
// @Router       /calendar/month [get]
func GetCalendarMonth(c *fiber.Ctx) error {
	year, month, ok := yearMonth(c)
	if !ok {
		return utils.HandleLocalizedError(c, fiber.StatusBadRequest, i18n.MsgInvalidInput)
	}
	grid, err := calendar.MonthGrid(year, month)
	if err != nil {
		return utils.HandleLocalizedError(c, fiber.StatusBadRequest, i18n.MsgInvalidInput)
	}
	return c.JSON(grid)
}

// GetCalendarToday godoc
// @Summary      Events on a date (default today, Seoul time)
// @Tags         calendar
// @Produce      json
// @Param        date  query  string  false  "YYYY-MM-DD"
// @Success      200  {array}  models.CalendarEvent
// @Router       /calendar/today [get]
func GetCalendarToday(c *fiber.Ctx) error {
	day := time.Now()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.ParseInLocation("2006-01-02", raw, calendar.KST)
		if err != nil {
			return utils.HandleLocalizedError(c, fiber.StatusBadRequest, i18n.MsgInvalidInput)
		}
		day = parsed
	}
	events := calendar.EventsForDate(day)
	if events == nil {
		return c.JSON([]interface{}{})
	}
	return c.JSON(events)
}

func yearMonth(c *fiber.Ctx) (int, time.Month, bool) {
	now := time.Now().In(calendar.KST)
	year, month := now.Year(), now.Month()
	if raw := c.Query("year"); raw != "" {
		y, err := strconv.Atoi(raw)
		if err != nil {
			return 0, 0, false
		}
		year = y
	}
	if raw := c.Query("month"); raw != "" {
		m, err := strconv.Atoi(raw)
		if err != nil || m < 1 || m > 12 {
			return 0, 0, false
		}
		month = time.Month(m)
	}
	return year, month, true
}

func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

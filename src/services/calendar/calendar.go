// Package calendar serves the static performance schedule.
package calendar

import (
	"fmt"
	"sort"
	"time"

	"Backend-Yeoun-Survey/src/models"
)

// KST all schedule dates are local to Seoul.
var KST = time.FixedZone("KST", 9*60*60)

var events = []models.CalendarEvent{
	{ID: "1", Title: "여운 공연 연습", Date: day(2024, time.December, 15), Type: models.EventPractice},
	{ID: "2", Title: "여운 공연 본 공연", Date: day(2024, time.December, 20), Type: models.EventPerformance},
	{ID: "3", Title: "설문 마감", Date: day(2024, time.December, 10), Type: models.EventOther},
	{ID: "4", Title: "팀 회의", Date: day(2024, time.December, 8), Type: models.EventMeeting},
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, KST)
}

// Events returns every event ordered by date.
func Events() []models.CalendarEvent {
	out := make([]models.CalendarEvent, len(events))
	copy(out, events)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

func EventsForMonth(year int, month time.Month) []models.CalendarEvent {
	var out []models.CalendarEvent
	for _, e := range Events() {
		d := e.Date.In(KST)
		if d.Year() == year && d.Month() == month {
			out = append(out, e)
		}
	}
	return out
}

// EventsForDate matches on the calendar day in KST.
func EventsForDate(t time.Time) []models.CalendarEvent {
	y, m, d := t.In(KST).Date()
	var out []models.CalendarEvent
	for _, e := range Events() {
		ey, em, ed := e.Date.In(KST).Date()
		if ey == y && em == m && ed == d {
			out = append(out, e)
		}
	}
	return out
}

// MonthGrid lays out a month for display; weekday 0 is Sunday.
func MonthGrid(year int, month time.Month) (models.CalendarMonth, error) {
	if month < time.January || month > time.December {
		return models.CalendarMonth{}, fmt.Errorf("calendar: invalid month %d", month)
	}
	first := time.Date(year, month, 1, 0, 0, 0, 0, KST)
	last := first.AddDate(0, 1, -1)

	grid := models.CalendarMonth{
		Year:            year,
		Month:           int(month),
		FirstDayWeekday: int(first.Weekday()),
		DaysInMonth:     last.Day(),
		EventsByDay:     map[int][]models.CalendarEvent{},
	}
	for _, e := range EventsForMonth(year, month) {
		d := e.Date.In(KST).Day()
		grid.EventsByDay[d] = append(grid.EventsByDay[d], e)
	}
	return grid, nil
}

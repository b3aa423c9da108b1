package models

import "time"

type CalendarEventType string

const (
	EventPerformance CalendarEventType = "performance"
	EventPractice    CalendarEventType = "practice"
	EventMeeting     CalendarEventType = "meeting"
	EventOther       CalendarEventType = "other"
)

type CalendarEvent struct {
	ID    string            `json:"id"`
	Title string            `json:"title"`
	Date  time.Time         `json:"date"`
	Type  CalendarEventType `json:"type"`
}

// CalendarMonth month grid for the calendar view.
type CalendarMonth struct {
	Year            int                     `json:"year"`
	Month           int                     `json:"month"`
	FirstDayWeekday int                     `json:"firstDayWeekday"`
	DaysInMonth     int                     `json:"daysInMonth"`
	EventsByDay     map[int][]CalendarEvent `json:"eventsByDay"`
}

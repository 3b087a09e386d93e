package models

import "time"

const (
	Morning   = "Morning"
	Afternoon = "Afternoon"
	Evening   = "Evening"
	Night     = "Night"
)

// Moment is the derived day/time tag attached to a petal when it is written.
type Moment struct {
	DayOfWeek string `json:"dayOfWeek"`
	TimeOfDay string `json:"timeOfDay"`
}

// MomentOf derives the weekday name and time-of-day bucket for t, using t's
// own location.
func MomentOf(t time.Time) Moment {
	return Moment{
		DayOfWeek: t.Weekday().String(),
		TimeOfDay: TimeOfDay(t.Hour()),
	}
}

// TimeOfDay buckets an hour of the day: 5-11 Morning, 12-17 Afternoon,
// 18-21 Evening, anything else Night.
func TimeOfDay(hour int) string {
	switch {
	case hour >= 5 && hour < 12:
		return Morning
	case hour >= 12 && hour < 18:
		return Afternoon
	case hour >= 18 && hour < 22:
		return Evening
	default:
		return Night
	}
}

package models

import "time"

type Petal struct {
	ID             string    `db:"id" json:"id"`
	Text           string    `db:"text" json:"text"` // Encrypted in DB when a key is configured
	DayOfWeek      string    `db:"day_of_week" json:"dayOfWeek"`
	TimeOfDay      string    `db:"time_of_day" json:"timeOfDay"`
	CurrentEmotion string    `db:"current_emotion" json:"currentEmotion"` // Encrypted in DB when a key is configured
	DesiredEmotion string    `db:"desired_emotion" json:"desiredEmotion"` // Encrypted in DB when a key is configured
	CreatedAt      time.Time `db:"created_at" json:"createdAt"`
}

// NewPetal holds the caller-supplied fields of a petal. ID and CreatedAt are
// assigned by the store.
type NewPetal struct {
	DayOfWeek      string
	TimeOfDay      string
	CurrentEmotion string
	DesiredEmotion string
	Text           string
}

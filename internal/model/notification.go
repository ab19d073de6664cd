package model

import "time"

// Notification represents an alert surfaced to a single user.
type Notification struct {
	// ID is the unique identifier for this notification.
	ID int64 `json:"id" db:"id"`

	// UserID is the recipient.
	UserID int64 `json:"user_id" db:"user_id"`

	// Title is a short headline.
	Title string `json:"title" db:"title"`

	// Message is the human-readable notification text.
	Message string `json:"message" db:"message"`

	// Read indicates whether the user has seen this notification.
	// Once set it is never cleared.
	Read bool `json:"read" db:"read"`

	// CreatedAt is when this notification was generated.
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Counts summarizes a user's dashboard counters.
type Counts struct {
	Projects      int `json:"projects"`
	Activities    int `json:"activities"`
	Notifications int `json:"notifications"`
}

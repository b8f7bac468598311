package models

import "time"

// Event defines a club event. The event collection is kept sorted
// ascending by date after every mutation.
type Event struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Date        time.Time `json:"date"`
	Venue       string    `json:"venue"`
	Description string    `json:"description"`
}

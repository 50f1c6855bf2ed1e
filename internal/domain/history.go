package domain

import "time"

// InvocationRecord captures the metadata of one chart invocation for the
// opt-in history store. The horoscope payload itself is not persisted.
type InvocationRecord struct {
	ID         string    `json:"id"`
	Timestamp  time.Time `json:"timestamp"`
	Dob        string    `json:"dob"`
	Time       string    `json:"time"`
	Lat        float64   `json:"lat"`
	Lng        float64   `json:"lng"`
	Tz         float64   `json:"tz"`
	Language   string    `json:"language"`
	Status     string    `json:"status"`
	Message    string    `json:"message,omitempty"`
	DurationMS int64     `json:"duration_ms"`
}

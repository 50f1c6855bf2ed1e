package domain

import "encoding/json"

// RawInput is the untyped JSON object decoded from the input stream.
// It lives only long enough to be validated into a BirthQuery.
type RawInput map[string]any

// BirthQuery is a fully validated birth-event request. Every field is
// present and type-correct before a query reaches the engine; a partially
// valid query is never handed downstream.
type BirthQuery struct {
	Dob      string  `json:"dob"`
	Time     string  `json:"time"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	Tz       float64 `json:"tz"`
	Language any     `json:"language"`

	// Calendar components parsed from Dob. Consumed by the engine bridge,
	// never echoed back in the output record.
	Year  int `json:"-"`
	Month int `json:"-"`
	Day   int `json:"-"`
}

// HoroscopeResult is the engine's derived information. Its shape is owned by
// PyJHora and may evolve independently; it is embedded verbatim in the
// success record.
type HoroscopeResult = json.RawMessage

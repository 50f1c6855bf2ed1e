package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/doeshing/birthchart/internal/domain"
)

// Validation messages are part of the external contract; callers match on
// them verbatim.
const (
	msgMissingDobTime   = "Missing required fields: dob and time are required"
	msgMissingGeo       = "Missing required fields: lat, lng, and tz are required"
	msgBadDobFormat     = "dob must be in YYYY-MM-DD format"
	msgBadTimeType      = "time must be a string"
	msgBadNumericFields = "lat, lng, and tz must be numeric"
)

// DecodeInput reads the entire input stream to completion exactly once and
// decodes it as a JSON object. An empty (or whitespace-only) stream decodes
// to an empty object rather than failing.
func DecodeInput(r io.Reader) (domain.RawInput, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &domain.InputFormatError{Err: err}
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return domain.RawInput{}, nil
	}

	var raw domain.RawInput
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &domain.InputFormatError{Err: err}
	}
	if raw == nil {
		// literal "null" input
		return domain.RawInput{}, nil
	}
	return raw, nil
}

// BuildQuery validates RawInput into a BirthQuery. Checks run in a fixed
// order and the first failure wins; errors are never aggregated.
func BuildQuery(raw domain.RawInput, defaultLanguage string) (domain.BirthQuery, error) {
	if !truthy(raw["dob"]) || !truthy(raw["time"]) {
		return domain.BirthQuery{}, &domain.ValidationError{Message: msgMissingDobTime}
	}

	// A numeric zero is a valid coordinate; only an absent or null value
	// counts as missing.
	if !present(raw, "lat") || !present(raw, "lng") || !present(raw, "tz") {
		return domain.BirthQuery{}, &domain.ValidationError{Message: msgMissingGeo}
	}

	dob, ok := raw["dob"].(string)
	if !ok {
		return domain.BirthQuery{}, &domain.ValidationError{Message: msgBadDobFormat}
	}
	year, month, day, err := splitDob(dob)
	if err != nil {
		return domain.BirthQuery{}, &domain.ValidationError{Message: msgBadDobFormat}
	}

	birthTime, ok := raw["time"].(string)
	if !ok {
		return domain.BirthQuery{}, &domain.ValidationError{Message: msgBadTimeType}
	}

	lat, ok := toFloat(raw["lat"])
	if !ok {
		return domain.BirthQuery{}, &domain.ValidationError{Message: msgBadNumericFields}
	}
	lng, ok := toFloat(raw["lng"])
	if !ok {
		return domain.BirthQuery{}, &domain.ValidationError{Message: msgBadNumericFields}
	}
	tz, ok := toFloat(raw["tz"])
	if !ok {
		return domain.BirthQuery{}, &domain.ValidationError{Message: msgBadNumericFields}
	}

	// language is opaque configuration for the engine: any provided value,
	// including non-strings and explicit null, passes through unvalidated.
	language := any(defaultLanguage)
	if v, ok := raw["language"]; ok {
		language = v
	}

	return domain.BirthQuery{
		Dob:      dob,
		Time:     birthTime,
		Lat:      lat,
		Lng:      lng,
		Tz:       tz,
		Language: language,
		Year:     year,
		Month:    month,
		Day:      day,
	}, nil
}

// truthy mirrors the presence rule for dob and time: empty strings, false
// and numeric zero all count as missing.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return t != ""
	case bool:
		return t
	case float64:
		return t != 0
	default:
		return true
	}
}

func present(raw domain.RawInput, key string) bool {
	v, ok := raw[key]
	return ok && v != nil
}

func splitDob(dob string) (year, month, day int, err error) {
	parts := strings.Split(dob, "-")
	if len(parts) != 3 {
		return 0, 0, 0, errors.New("expected three - separated components")
	}
	nums := make([]int, 3)
	for i, part := range parts {
		n, convErr := strconv.Atoi(strings.TrimSpace(part))
		if convErr != nil {
			return 0, 0, 0, convErr
		}
		nums[i] = n
	}
	return nums[0], nums[1], nums[2], nil
}

func toFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

package domain

// Source identifies the external engine in success records.
const Source = "PyJHora"

// SuccessRecord is the single line written to stdout when the pipeline
// succeeds.
type SuccessRecord struct {
	Status    string          `json:"status"`
	Source    string          `json:"source"`
	Input     BirthQuery      `json:"input"`
	Horoscope HoroscopeResult `json:"horoscope"`
}

// ErrorRecord is the single line written to stderr on any classified
// failure.
type ErrorRecord struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// NewSuccessRecord builds the success envelope around a validated query and
// the engine's result.
func NewSuccessRecord(query BirthQuery, horoscope HoroscopeResult) SuccessRecord {
	return SuccessRecord{
		Status:    "success",
		Source:    Source,
		Input:     query,
		Horoscope: horoscope,
	}
}

// NewErrorRecord converts any classified failure into the uniform error
// envelope.
func NewErrorRecord(err error) ErrorRecord {
	return ErrorRecord{Status: "error", Message: err.Error()}
}

// Outcome is the tagged result of one invocation. Exactly one of the two
// records is set.
type Outcome struct {
	Success *SuccessRecord
	Failure *ErrorRecord
}

// Failed reports whether the invocation ended on the failure branch.
func (o Outcome) Failed() bool {
	return o.Success == nil
}

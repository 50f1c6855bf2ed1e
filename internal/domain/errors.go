package domain

// InputFormatError reports an input stream that could not be decoded as a
// JSON object.
type InputFormatError struct {
	Err error
}

func (e *InputFormatError) Error() string {
	return "Invalid JSON input: " + e.Err.Error()
}

func (e *InputFormatError) Unwrap() error {
	return e.Err
}

// ValidationError reports a missing or malformed request field. The message
// is the exact text surfaced to the caller.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ComputationError wraps a failure raised by the horoscope engine, including
// the engine's own message text. The adapter never lets an unclassified
// engine failure escape.
type ComputationError struct {
	Message string
}

func (e *ComputationError) Error() string {
	return e.Message
}

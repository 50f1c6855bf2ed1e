package services

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/doeshing/birthchart/internal/domain"
)

// Exit codes reported to the process supervisor.
const (
	ExitOK      = 0
	ExitFailure = 1
)

// Emitter serializes exactly one OutputRecord per invocation. Out receives
// output if and only if the whole pipeline succeeded, and at most one
// record; everything else goes to Diag.
type Emitter struct {
	Out  io.Writer
	Diag io.Writer
}

// Emit writes the outcome to the appropriate channel and returns the exit
// code the process must terminate with.
func (e *Emitter) Emit(outcome domain.Outcome) int {
	if outcome.Success != nil {
		// Encode into a buffer first so a marshalling failure can never
		// leave a partial line on the primary channel.
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		if err := enc.Encode(outcome.Success); err != nil {
			record := domain.NewErrorRecord(&domain.ComputationError{
				Message: "encode result: " + err.Error(),
			})
			return e.emitFailure(&record)
		}
		_, _ = e.Out.Write(buf.Bytes())
		return ExitOK
	}

	record := outcome.Failure
	if record == nil {
		fallback := domain.NewErrorRecord(&domain.ComputationError{Message: "no outcome produced"})
		record = &fallback
	}
	return e.emitFailure(record)
}

func (e *Emitter) emitFailure(record *domain.ErrorRecord) int {
	enc := json.NewEncoder(e.Diag)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(record)
	return ExitFailure
}

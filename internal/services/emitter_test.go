package services

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/doeshing/birthchart/internal/domain"
)

func TestEmitterWritesExactlyOneSuccessLine(t *testing.T) {
	query := domain.BirthQuery{
		Dob: "1990-05-15", Time: "14:30",
		Lat: 12.97, Lng: 77.59, Tz: 5.5,
		Language: "en",
	}
	record := domain.NewSuccessRecord(query, domain.HoroscopeResult(`{"nakshatra":"Chitra"}`))

	var out, diag bytes.Buffer
	emitter := &Emitter{Out: &out, Diag: &diag}

	code := emitter.Emit(domain.Outcome{Success: &record})
	if code != ExitOK {
		t.Fatalf("Emit() = %d, want %d", code, ExitOK)
	}

	want := `{"status":"success","source":"PyJHora","input":{"dob":"1990-05-15","time":"14:30","lat":12.97,"lng":77.59,"tz":5.5,"language":"en"},"horoscope":{"nakshatra":"Chitra"}}` + "\n"
	if out.String() != want {
		t.Fatalf("stdout = %q, want %q", out.String(), want)
	}
	if diag.Len() != 0 {
		t.Fatalf("stderr should be empty, got %q", diag.String())
	}
}

func TestEmitterPreservesNonASCIIOutput(t *testing.T) {
	query := domain.BirthQuery{Dob: "1990-05-15", Time: "14:30", Language: "ta"}
	record := domain.NewSuccessRecord(query, domain.HoroscopeResult(`{"nakshatra":"சித்திரை"}`))

	var out, diag bytes.Buffer
	emitter := &Emitter{Out: &out, Diag: &diag}
	if code := emitter.Emit(domain.Outcome{Success: &record}); code != ExitOK {
		t.Fatalf("Emit() = %d, want %d", code, ExitOK)
	}

	if !strings.Contains(out.String(), "சித்திரை") {
		t.Fatalf("non-ASCII text was escaped: %q", out.String())
	}
	if strings.Contains(out.String(), `\u`) {
		t.Fatalf("output contains unicode escapes: %q", out.String())
	}
}

func TestEmitterWritesFailureToDiagnosticChannelOnly(t *testing.T) {
	record := domain.NewErrorRecord(&domain.ValidationError{
		Message: "Missing required fields: lat, lng, and tz are required",
	})

	var out, diag bytes.Buffer
	emitter := &Emitter{Out: &out, Diag: &diag}

	code := emitter.Emit(domain.Outcome{Failure: &record})
	if code != ExitFailure {
		t.Fatalf("Emit() = %d, want %d", code, ExitFailure)
	}
	if out.Len() != 0 {
		t.Fatalf("primary channel must stay empty on failure, got %q", out.String())
	}

	want := `{"status":"error","message":"Missing required fields: lat, lng, and tz are required"}` + "\n"
	if diag.String() != want {
		t.Fatalf("stderr = %q, want %q", diag.String(), want)
	}
}

func TestEmitterOutputIsSingleValidJSONLine(t *testing.T) {
	record := domain.NewSuccessRecord(domain.BirthQuery{Dob: "1990-05-15", Time: "14:30", Language: "en"},
		domain.HoroscopeResult(`{"raasi":"கன்னி","notes":"line one"}`))

	var out, diag bytes.Buffer
	emitter := &Emitter{Out: &out, Diag: &diag}
	emitter.Emit(domain.Outcome{Success: &record})

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected a single line, got %d: %q", len(lines), out.String())
	}
	if !json.Valid([]byte(lines[0])) {
		t.Fatalf("primary channel line is not valid JSON: %q", lines[0])
	}
}

func TestEmitterHandlesMissingOutcome(t *testing.T) {
	var out, diag bytes.Buffer
	emitter := &Emitter{Out: &out, Diag: &diag}

	code := emitter.Emit(domain.Outcome{})
	if code != ExitFailure {
		t.Fatalf("Emit() = %d, want %d", code, ExitFailure)
	}
	if out.Len() != 0 {
		t.Fatalf("primary channel must stay empty, got %q", out.String())
	}
	if !strings.Contains(diag.String(), `"status":"error"`) {
		t.Fatalf("expected error record on stderr, got %q", diag.String())
	}
}

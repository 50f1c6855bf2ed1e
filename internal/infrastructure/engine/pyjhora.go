// Package engine adapts the external PyJHora horoscope engine behind the
// ports.Engine interface.
//
// PyJHora is a Python library that prints uncontrolled diagnostic text while
// importing and computing. The adapter quarantines that output by running
// the engine in a subprocess with private stdout/stderr pipes: the engine
// can never write to the caller's stdout, and only the final JSON document
// it produces is accepted as the result.
package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/doeshing/birthchart/assets"
	"github.com/doeshing/birthchart/internal/domain"
	"github.com/doeshing/birthchart/internal/ports"
)

// PyJHora invokes the bridge script with the configured Python interpreter.
type PyJHora struct {
	python     string
	script     string
	pythonPath string
}

// New builds the adapter from configuration. The interpreter defaults to
// python3; when no script override is configured the embedded bridge is
// staged to a temp file per call.
func New(cfg domain.Config) *PyJHora {
	return &PyJHora{
		python:     cfg.PythonBinary(),
		script:     cfg.Engine.Script,
		pythonPath: cfg.Engine.PythonPath,
	}
}

// bridgeRequest is the wire format sent to the bridge on its stdin.
type bridgeRequest struct {
	Year     int     `json:"year"`
	Month    int     `json:"month"`
	Day      int     `json:"day"`
	Time     string  `json:"time"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	Tz       float64 `json:"tz"`
	Language any     `json:"language"`
}

// Compute implements ports.Engine. Validated values pass through verbatim;
// no unit conversion or timezone arithmetic happens here.
func (p *PyJHora) Compute(ctx context.Context, query domain.BirthQuery) (domain.HoroscopeResult, error) {
	payload, err := json.Marshal(bridgeRequest{
		Year:     query.Year,
		Month:    query.Month,
		Day:      query.Day,
		Time:     query.Time,
		Lat:      query.Lat,
		Lng:      query.Lng,
		Tz:       query.Tz,
		Language: query.Language,
	})
	if err != nil {
		return nil, &domain.ComputationError{Message: "encode engine request: " + err.Error()}
	}

	stdout, stderr, err := p.run(ctx, bytes.NewReader(payload))
	if err != nil {
		return nil, &domain.ComputationError{Message: engineMessage(err, stderr)}
	}

	result, err := lastJSONLine(stdout)
	if err != nil {
		return nil, &domain.ComputationError{Message: err.Error()}
	}
	return result, nil
}

// Check implements ports.Engine; it runs the bridge in --check mode to
// verify the interpreter can import jhora.
func (p *PyJHora) Check(ctx context.Context) error {
	_, stderr, err := p.run(ctx, strings.NewReader("{}"), "--check")
	if err != nil {
		return &domain.ComputationError{Message: engineMessage(err, stderr)}
	}
	return nil
}

// run executes one bridge call. The child owns private pipes only, so
// whatever the engine prints lands in the returned buffers, never on the
// caller's stdout. A temp-staged bridge is removed on every exit path.
func (p *PyJHora) run(ctx context.Context, stdin io.Reader, args ...string) ([]byte, []byte, error) {
	script := p.script
	if script == "" {
		staged, err := stageBridge()
		if err != nil {
			return nil, nil, fmt.Errorf("stage engine bridge: %w", err)
		}
		defer os.Remove(staged)
		script = staged
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, p.python, append([]string{script}, args...)...)
	cmd.Stdin = stdin
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if p.pythonPath != "" {
		cmd.Env = append(os.Environ(), "PYTHONPATH="+p.pythonPath)
	}

	if err := cmd.Run(); err != nil {
		return stdout.Bytes(), stderr.Bytes(), err
	}
	return stdout.Bytes(), stderr.Bytes(), nil
}

func stageBridge() (string, error) {
	file, err := os.CreateTemp("", "birthchart-bridge-*.py")
	if err != nil {
		return "", err
	}
	if _, err := file.Write(assets.BridgeScript); err != nil {
		file.Close()
		os.Remove(file.Name())
		return "", err
	}
	if err := file.Close(); err != nil {
		os.Remove(file.Name())
		return "", err
	}
	return file.Name(), nil
}

func engineMessage(err error, stderr []byte) string {
	if msg := strings.TrimSpace(string(stderr)); msg != "" {
		return msg
	}
	return err.Error()
}

// lastJSONLine extracts the engine's result from captured stdout. The
// bridge emits the result as its final line; anything before it is engine
// chatter that escaped the bridge's own redirection.
func lastJSONLine(out []byte) (domain.HoroscopeResult, error) {
	var last []byte
	for _, line := range bytes.Split(out, []byte("\n")) {
		if trimmed := bytes.TrimSpace(line); len(trimmed) > 0 {
			last = trimmed
		}
	}
	if len(last) == 0 {
		return nil, fmt.Errorf("engine produced no result")
	}
	if !json.Valid(last) {
		return nil, fmt.Errorf("engine returned non-JSON output: %s", truncate(string(last), 160))
	}
	result := make(domain.HoroscopeResult, len(last))
	copy(result, last)
	return result, nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}

var _ ports.Engine = (*PyJHora)(nil)

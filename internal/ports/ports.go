// Package ports defines the interfaces (ports) for the hexagonal architecture.
//
// The application core depends on these abstractions only; concrete
// implementations live in the infrastructure layer (subprocess engine, YAML
// config loader, SQLite history store, CLI framework).
package ports

import (
	"context"

	"github.com/doeshing/birthchart/internal/domain"
)

// ConfigProvider loads the latest configuration from persistent storage.
// Implementations typically read from ~/.birthchart/config.yaml.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// Engine invokes the external horoscope engine with a validated query.
// Implementations must quarantine anything the engine writes to its output
// channels and reclassify every failure as a domain.ComputationError.
type Engine interface {
	Compute(ctx context.Context, query domain.BirthQuery) (domain.HoroscopeResult, error)
	// Check verifies the engine is reachable without computing a chart.
	Check(ctx context.Context) error
}

// InvocationStore persists invocation metadata for the opt-in history
// feature.
type InvocationStore interface {
	Save(domain.InvocationRecord) error
	Records(limit int, search string) ([]domain.InvocationRecord, error)
	Clear() error
	ExportJSON(dest string) error
	PruneOlderThan(days int) error
	Path() string
}

// Logger provides structured logging abstraction for the application layer.
// Implementations must keep stdout pristine; diagnostics belong on stderr.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}

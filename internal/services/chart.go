package services

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/doeshing/birthchart/internal/domain"
	"github.com/doeshing/birthchart/internal/ports"
)

// ChartService orchestrates one invocation end-to-end: decode, validate,
// compute, record.
type ChartService struct {
	ConfigProvider ports.ConfigProvider
	Engine         ports.Engine
	Store          ports.InvocationStore
	Logger         ports.Logger
}

// Run processes a single birth-chart request read from input. It always
// returns a terminal Outcome; no failure propagates past this boundary.
func (s *ChartService) Run(ctx context.Context, input io.Reader) domain.Outcome {
	start := time.Now()

	if s.Engine == nil || s.Logger == nil {
		return s.fail(start, domain.BirthQuery{},
			&domain.ComputationError{Message: "services.ChartService dependencies not satisfied"})
	}

	language := "en"
	if s.ConfigProvider != nil {
		if cfg, err := s.ConfigProvider.Load(ctx); err == nil {
			language = cfg.DefaultLanguage()
		} else {
			s.Logger.Warn("config load failed, using built-in defaults", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	raw, err := DecodeInput(input)
	if err != nil {
		return s.fail(start, domain.BirthQuery{}, err)
	}

	query, err := BuildQuery(raw, language)
	if err != nil {
		return s.fail(start, domain.BirthQuery{}, err)
	}

	s.Logger.Debug("invoking engine", map[string]interface{}{
		"dob":      query.Dob,
		"time":     query.Time,
		"language": languageLabel(query.Language),
	})

	horoscope, err := s.Engine.Compute(ctx, query)
	if err != nil {
		return s.fail(start, query, err)
	}

	record := domain.NewSuccessRecord(query, horoscope)
	s.remember(query, "success", "", time.Since(start))
	return domain.Outcome{Success: &record}
}

func (s *ChartService) fail(start time.Time, query domain.BirthQuery, err error) domain.Outcome {
	if s.Logger != nil {
		s.Logger.Info("request failed", map[string]interface{}{"error": err.Error()})
	}
	s.remember(query, "error", err.Error(), time.Since(start))
	record := domain.NewErrorRecord(err)
	return domain.Outcome{Failure: &record}
}

// remember persists invocation metadata best-effort; history is never
// allowed to fail a request.
func (s *ChartService) remember(query domain.BirthQuery, status, message string, elapsed time.Duration) {
	if s.Store == nil {
		return
	}
	rec := domain.InvocationRecord{
		ID:         uuid.NewString(),
		Timestamp:  time.Now().UTC(),
		Dob:        query.Dob,
		Time:       query.Time,
		Lat:        query.Lat,
		Lng:        query.Lng,
		Tz:         query.Tz,
		Language:   languageLabel(query.Language),
		Status:     status,
		Message:    message,
		DurationMS: elapsed.Milliseconds(),
	}
	if err := s.Store.Save(rec); err != nil && s.Logger != nil {
		s.Logger.Warn("history save failed", map[string]interface{}{"error": err.Error()})
	}
}

func languageLabel(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

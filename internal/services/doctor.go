package services

import (
	"context"
	"fmt"

	"github.com/doeshing/birthchart/internal/domain"
	"github.com/doeshing/birthchart/internal/ports"
)

// DoctorService runs environment diagnostics.
type DoctorService struct {
	ConfigProvider ports.ConfigProvider
	Engine         ports.Engine
	Store          ports.InvocationStore
}

// Run executes checks and returns a report.
func (s *DoctorService) Run(ctx context.Context) (domain.HealthReport, error) {
	var checks []domain.HealthCheck

	cfg, err := s.ConfigProvider.Load(ctx)
	if err != nil {
		checks = append(checks, fail("Config file", fmt.Sprintf("load failed: %v", err)))
		return domain.HealthReport{Checks: checks}, err
	}
	checks = append(checks, ok("Config file", fmt.Sprintf("loaded, format %s", cfg.ConfigFormatVersion)))

	if s.Engine != nil {
		if err := s.Engine.Check(ctx); err != nil {
			checks = append(checks, fail("PyJHora engine", err.Error()))
		} else {
			checks = append(checks, ok("PyJHora engine", fmt.Sprintf("%s can import jhora", cfg.PythonBinary())))
		}
	} else {
		checks = append(checks, fail("PyJHora engine", "engine not initialized"))
	}

	if s.Store != nil {
		if _, err := s.Store.Records(1, ""); err != nil {
			checks = append(checks, warn("History store", err.Error()))
		} else {
			checks = append(checks, ok("History store", s.Store.Path()))
		}
	} else {
		checks = append(checks, ok("History store", "disabled"))
	}

	return domain.HealthReport{Checks: checks}, nil
}

func ok(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthOK, Details: details}
}

func warn(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthWarn, Details: details}
}

func fail(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthError, Details: details}
}

package services

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/doeshing/birthchart/internal/domain"
	"github.com/doeshing/birthchart/internal/pkg/logger"
)

func TestChartServiceRunProducesSuccessRecord(t *testing.T) {
	engine := &stubEngine{result: domain.HoroscopeResult(`{"nakshatra":"Chitra"}`)}
	store := &stubStore{}

	svc := &ChartService{
		ConfigProvider: stubConfigProvider{cfg: domain.Config{}},
		Engine:         engine,
		Store:          store,
		Logger:         logger.NewStd(false),
	}

	input := `{"dob":"1990-05-15","time":"14:30","lat":12.97,"lng":77.59,"tz":5.5,"language":"en"}`
	outcome := svc.Run(context.Background(), strings.NewReader(input))

	if outcome.Failed() {
		t.Fatalf("Run() failed: %+v", outcome.Failure)
	}
	if outcome.Success.Status != "success" || outcome.Success.Source != "PyJHora" {
		t.Fatalf("unexpected envelope: %+v", outcome.Success)
	}
	if string(outcome.Success.Horoscope) != `{"nakshatra":"Chitra"}` {
		t.Fatalf("horoscope = %s, want stubbed payload verbatim", outcome.Success.Horoscope)
	}

	wantQuery := domain.BirthQuery{
		Dob: "1990-05-15", Time: "14:30",
		Lat: 12.97, Lng: 77.59, Tz: 5.5,
		Language: "en",
		Year:     1990, Month: 5, Day: 15,
	}
	if diff := cmp.Diff(wantQuery, engine.got); diff != "" {
		t.Fatalf("engine received query mismatch (-want +got):\n%s", diff)
	}

	if len(store.saved) != 1 || store.saved[0].Status != "success" {
		t.Fatalf("expected one success history record, got %+v", store.saved)
	}
	if store.saved[0].ID == "" {
		t.Fatal("history record is missing an ID")
	}
}

func TestChartServiceRunDoesNotCallEngineOnInvalidInput(t *testing.T) {
	engine := &stubEngine{}
	store := &stubStore{}

	svc := &ChartService{
		ConfigProvider: stubConfigProvider{cfg: domain.Config{}},
		Engine:         engine,
		Store:          store,
		Logger:         logger.NewStd(false),
	}

	outcome := svc.Run(context.Background(), strings.NewReader(`{"dob":"1990-05-15","time":"14:30"}`))

	if !outcome.Failed() {
		t.Fatal("expected failure outcome")
	}
	if outcome.Failure.Message != "Missing required fields: lat, lng, and tz are required" {
		t.Fatalf("message = %q", outcome.Failure.Message)
	}
	if engine.called {
		t.Fatal("engine must not be called for an invalid request")
	}
	if len(store.saved) != 1 || store.saved[0].Status != "error" {
		t.Fatalf("expected one error history record, got %+v", store.saved)
	}
}

func TestChartServiceRunWrapsEngineFailure(t *testing.T) {
	engine := &stubEngine{err: &domain.ComputationError{Message: "PyJHora import failed: no module named jhora"}}

	svc := &ChartService{
		ConfigProvider: stubConfigProvider{cfg: domain.Config{}},
		Engine:         engine,
		Logger:         logger.NewStd(false),
	}

	input := `{"dob":"1990-05-15","time":"14:30","lat":12.97,"lng":77.59,"tz":5.5}`
	outcome := svc.Run(context.Background(), strings.NewReader(input))

	if !outcome.Failed() {
		t.Fatal("expected failure outcome")
	}
	if outcome.Failure.Message != "PyJHora import failed: no module named jhora" {
		t.Fatalf("message = %q, want engine message preserved", outcome.Failure.Message)
	}
}

func TestChartServiceRunUsesConfiguredDefaultLanguage(t *testing.T) {
	engine := &stubEngine{result: domain.HoroscopeResult(`{}`)}
	cfg := domain.Config{Preferences: domain.Preferences{DefaultLanguage: "ta"}}

	svc := &ChartService{
		ConfigProvider: stubConfigProvider{cfg: cfg},
		Engine:         engine,
		Logger:         logger.NewStd(false),
	}

	input := `{"dob":"1990-05-15","time":"14:30","lat":12.97,"lng":77.59,"tz":5.5}`
	outcome := svc.Run(context.Background(), strings.NewReader(input))

	if outcome.Failed() {
		t.Fatalf("Run() failed: %+v", outcome.Failure)
	}
	if engine.got.Language != "ta" {
		t.Fatalf("Language = %v, want configured default ta", engine.got.Language)
	}
}

type stubConfigProvider struct {
	cfg domain.Config
	err error
}

func (s stubConfigProvider) Load(context.Context) (domain.Config, error) {
	return s.cfg, s.err
}

type stubEngine struct {
	result domain.HoroscopeResult
	err    error
	got    domain.BirthQuery
	called bool
}

func (s *stubEngine) Compute(_ context.Context, query domain.BirthQuery) (domain.HoroscopeResult, error) {
	s.called = true
	s.got = query
	return s.result, s.err
}

func (s *stubEngine) Check(context.Context) error {
	return s.err
}

type stubStore struct {
	saved []domain.InvocationRecord
}

func (s *stubStore) Save(record domain.InvocationRecord) error {
	s.saved = append(s.saved, record)
	return nil
}

func (s *stubStore) Records(int, string) ([]domain.InvocationRecord, error) { return s.saved, nil }
func (s *stubStore) Clear() error                                           { return nil }
func (s *stubStore) ExportJSON(string) error                                { return nil }
func (s *stubStore) PruneOlderThan(int) error                               { return nil }
func (s *stubStore) Path() string                                           { return "stub" }

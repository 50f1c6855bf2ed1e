package app

import (
	"context"
	"path/filepath"

	"github.com/doeshing/birthchart/internal/infrastructure/config"
	"github.com/doeshing/birthchart/internal/infrastructure/engine"
	"github.com/doeshing/birthchart/internal/infrastructure/history"
	"github.com/doeshing/birthchart/internal/pkg/filesystem"
	"github.com/doeshing/birthchart/internal/pkg/logger"
	"github.com/doeshing/birthchart/internal/ports"
	"github.com/doeshing/birthchart/internal/services"
)

// Container wires up application services with infrastructure adapters.
type Container struct {
	ChartService   *services.ChartService
	DoctorService  *services.DoctorService
	ConfigProvider ports.ConfigProvider
	ConfigLoader   *config.FileLoader
	HistoryStore   ports.InvocationStore
	Logger         ports.Logger
}

// BuildContainer constructs the dependency graph.
func BuildContainer(ctx context.Context, verbose bool) (*Container, error) {
	cfgLoader := config.NewFileLoader("")
	cfg, err := cfgLoader.Load(ctx)
	if err != nil {
		return nil, err
	}

	log := logger.NewStd(verbose)
	pyjhora := engine.New(cfg)

	var store ports.InvocationStore
	if cfg.IsHistoryEnabled() {
		dbPath := filepath.Join(filesystem.UserHomeDir(), ".birthchart", "history", "history.db")
		sqliteStore := history.NewSQLiteStore(dbPath)
		if err := sqliteStore.PruneOlderThan(cfg.HistoryRetentionDays()); err != nil {
			log.Warn("history prune failed", map[string]interface{}{"error": err.Error()})
		}
		store = sqliteStore
	}

	chartService := &services.ChartService{
		ConfigProvider: cfgLoader,
		Engine:         pyjhora,
		Store:          store,
		Logger:         log,
	}

	doctorService := &services.DoctorService{
		ConfigProvider: cfgLoader,
		Engine:         pyjhora,
		Store:          store,
	}

	return &Container{
		ChartService:   chartService,
		DoctorService:  doctorService,
		ConfigProvider: cfgLoader,
		ConfigLoader:   cfgLoader,
		HistoryStore:   store,
		Logger:         log,
	}, nil
}

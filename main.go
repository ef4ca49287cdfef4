package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	dbsqlite "github.com/gxcuit/vibe-translate/internal/adapters/db/sqlite"
	expcsv "github.com/gxcuit/vibe-translate/internal/adapters/exporter/csv"
	exportreg "github.com/gxcuit/vibe-translate/internal/adapters/exporter/registry"
	llmfactory "github.com/gxcuit/vibe-translate/internal/adapters/llm/factory"
	llmreg "github.com/gxcuit/vibe-translate/internal/adapters/llm/registry"
	promptrenderer "github.com/gxcuit/vibe-translate/internal/adapters/prompt"
	"github.com/gxcuit/vibe-translate/internal/api"
	"github.com/gxcuit/vibe-translate/internal/config"
	exporterusecase "github.com/gxcuit/vibe-translate/internal/usecase/exporter"
	translatorusecase "github.com/gxcuit/vibe-translate/internal/usecase/translator"
)

func main() {
	configPath := flag.String("config", "config.toml", "path to the TOML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(cfg.LogLevel),
	})))

	db, err := dbsqlite.Init(cfg.DBPath)
	if err != nil {
		slog.Error("init database", "error", err, "path", cfg.DBPath)
		os.Exit(1)
	}
	defer db.Close()

	settingsRepo := dbsqlite.NewSettingsRepo(db)
	providerRepo := dbsqlite.NewProviderRepo(db)
	cacheRepo := dbsqlite.NewCacheRepo(db)
	historyRepo := dbsqlite.NewHistoryRepo(db)

	renderer := promptrenderer.New(settingsRepo)
	buildProvider := llmfactory.Builder(time.Duration(cfg.TimeoutSeconds) * time.Second)

	transSvc := translatorusecase.New(translatorusecase.Deps{
		Providers:     providerRepo,
		Settings:      settingsRepo,
		Cache:         cacheRepo,
		History:       historyRepo,
		Prompt:        renderer,
		BuildProvider: buildProvider,
	})

	expReg := exportreg.New()
	expReg.Register(expcsv.New())
	expSvc := exporterusecase.New(historyRepo, expReg)

	reg := llmreg.New()
	if records, err := providerRepo.List(context.Background()); err == nil {
		for _, p := range records {
			client, err := buildProvider(p)
			if err != nil {
				slog.Warn("skipping provider", "name", p.Name, "error", err)
				continue
			}
			reg.Register(p.Name, client)
		}
	}

	srv := api.NewServer(cfg.Port, api.Deps{
		Translator:    transSvc,
		Exporter:      expSvc,
		Providers:     providerRepo,
		Settings:      settingsRepo,
		History:       historyRepo,
		Registry:      reg,
		BuildProvider: buildProvider,
	})

	if err := srv.Start(); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func logLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

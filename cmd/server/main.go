package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"workforce/internal/admingate"
	"workforce/internal/app/server"
	"workforce/internal/platform/config"
	"workforce/internal/platform/db"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", "err", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		slog.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	defer pool.Close()

	if cfg.RunMigrations {
		if err := db.Migrate(ctx, pool, cfg.MigrationsDir); err != nil {
			slog.Error("migrations failed", "err", err)
			os.Exit(1)
		}
	}
	if cfg.RunSeed {
		if err := db.Seed(ctx, pool); err != nil {
			slog.Error("seed failed", "err", err)
			os.Exit(1)
		}
	}

	gate, err := buildGate(cfg)
	if err != nil {
		slog.Error("admin gate setup failed", "err", err)
		os.Exit(1)
	}

	app := server.New(cfg, pool, gate)

	slog.Info("workforce server listening", "addr", cfg.Addr, "env", cfg.Environment)
	if err := http.ListenAndServe(cfg.Addr, app.Router); err != nil {
		slog.Error("server failed", "err", err)
		os.Exit(1)
	}
}

func buildGate(cfg config.Config) (admingate.Gate, error) {
	if cfg.AdminTokenDigest != "" {
		return admingate.NewSecretGateFromDigest(cfg.AdminTokenDigest), nil
	}
	return admingate.NewSecretGate(cfg.AdminToken)
}

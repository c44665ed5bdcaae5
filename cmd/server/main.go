package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/tripfolio/backend/internal/api"
	"github.com/tripfolio/backend/internal/config"
	"github.com/tripfolio/backend/internal/storage/sqlite"
	"github.com/tripfolio/backend/pkg/logging"
)

func main() {
	logging.Setup()

	cfg := config.Load()

	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to open store", "db_path", cfg.DBPath, "error", err)
		os.Exit(1)
	}
	defer store.Close()

	router := api.NewRouter(cfg, store)

	addr := ":" + cfg.Port
	slog.Info("Server listening", "addr", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		slog.Error("Server stopped", "error", err)
		os.Exit(1)
	}
}

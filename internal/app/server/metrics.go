package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

func (a *App) handleMetrics(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(a.Collector.Snapshot()); err != nil {
		slog.Warn("metrics encode failed", "err", err)
	}
}

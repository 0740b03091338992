package main

import (
	"skillfit-backend/internal/shared/config"
	"skillfit-backend/internal/shared/server"
	"skillfit-backend/internal/shared/telemetry"
)

func main() {
	defer telemetry.Sync()

	cfg := config.Load()
	r := server.NewRouter(cfg)

	addr := server.Addr(cfg.Port)
	telemetry.Info("server.start", map[string]any{"addr": addr, "env": cfg.Env})

	if err := r.Run(addr); err != nil {
		telemetry.Error("server.exit", map[string]any{"error": err.Error()})
	}
}

package main

import (
	"fmt"
	"log"
	"net/http"

	"hapbadge/internal/api"
	"hapbadge/internal/api/handlers"
	"hapbadge/internal/engine/badge"
	"hapbadge/internal/pkg/logger"
	"hapbadge/internal/platform/config"
	"hapbadge/internal/platform/display"
)

func main() {
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.Logging)

	// Setup display state; normally fed by the pairing runtime over the
	// API, optionally seeded from config for standalone runs.
	disp := display.New()
	if cfg.Setup.Payload != "" {
		disp.SetPayload(cfg.Setup.Payload)
	}
	if cfg.Setup.Code != "" {
		disp.SetCode(cfg.Setup.Code)
	}

	renderer := badge.NewRenderer(badge.QRProvider{})

	// Handlers
	metrics := handlers.NewMetrics()
	badgeHandler := handlers.NewBadgeHandler(disp, renderer, metrics)
	displayHandler := handlers.NewDisplayHandler(disp)
	healthHandler := handlers.NewHealthHandler(disp)
	metricsHandler := handlers.NewMetricsHandler(metrics)

	// Router
	deps := &api.Dependencies{
		BadgeHandler:   badgeHandler,
		DisplayHandler: displayHandler,
		HealthHandler:  healthHandler,
		MetricsHandler: metricsHandler,
	}
	router := api.NewRouter(deps)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	log.Printf("Server starting on %s", addr)
	if err := srv.ListenAndServe(); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

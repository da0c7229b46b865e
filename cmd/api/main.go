package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"banquetpro/config"
	_ "banquetpro/docs" // Swagger docs
	analyticsUC "banquetpro/internal/analytics/usecase"
	"banquetpro/internal/httpserver"
	"banquetpro/internal/store"
	"banquetpro/pkg/gcalendar"
	"banquetpro/pkg/log"
)

// @title       BanquetPro API
// @description Banquet and event management: events, clients, staff, inventory, and analytics backed by an external data store.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting BanquetPro...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Store URL: %s", cfg.Store.URL)

	// 3. Data store client
	storeClient := store.NewClient(cfg.Store.URL, cfg.Store.AccessToken)

	// 4. Google Calendar client (optional)
	var calendarClient *gcalendar.Client
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, err = gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if err != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", err)
			logger.Warn(ctx, "→ Run `go run scripts/gcal-auth/main.go` to generate token.json")
			calendarClient = nil
		} else {
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Store:           storeClient,
		Calendar:        calendarClient,
		CalendarID:      cfg.GoogleCalendar.CalendarID,
		Timezone:        cfg.GoogleCalendar.Timezone,
		CacheTTL:        cfg.Cache.TTL,
		MutationsPerMin: cfg.RateLimit.MutationsPerMin,
		Analytics: analyticsUC.Config{
			MonthsBack:          cfg.Analytics.MonthsBack,
			UpcomingHorizonDays: cfg.Analytics.UpcomingHorizonDays,
			LeaderboardSize:     cfg.Analytics.LeaderboardSize,
		},
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

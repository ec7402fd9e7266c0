package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/suarezvoley/checkin/internal/attendance"
	"github.com/suarezvoley/checkin/internal/clock"
	"github.com/suarezvoley/checkin/internal/club"
	"github.com/suarezvoley/checkin/internal/codes"
	"github.com/suarezvoley/checkin/internal/config"
	"github.com/suarezvoley/checkin/internal/database"
	server "github.com/suarezvoley/checkin/internal/http"
	"github.com/suarezvoley/checkin/internal/metrics"
	"github.com/suarezvoley/checkin/internal/notifier"
	"github.com/suarezvoley/checkin/internal/notifier/slack"
	"github.com/suarezvoley/checkin/internal/random"
	"github.com/suarezvoley/checkin/internal/report"
)

func main() {
	// Start profiling timer
	startTime := time.Now()
	log.SetFormatter(log.JSONFormatter)
	cfg := config.Load()

	allocator := codes.NewWithMaxAttempts(random.New(), cfg.CodeMaxAttempts)
	db, dbTeardown, err := database.InitDB(cfg.DBName, cfg.Turso.PrimaryURL, cfg.Turso.AuthToken, allocator)
	dbInitDuration := time.Since(startTime)
	log.Info("Database initialization time recorded", "duration_ms", dbInitDuration.Milliseconds())
	if err != nil {
		log.Fatalf("Failed to initialize database: %s", err)
	}
	defer func() {
		log.Info("Closing database connection")
		dbTeardown()
	}()

	playerStore := club.New(db, allocator)
	recorder := attendance.New(db, clock.New())
	metricsSvc := metrics.NewService()
	metricsHandler := metrics.NewMetricsHandler()

	var notif notifier.Notifier
	if cfg.Slack.Token != "" {
		notif = slack.NewNotifier(cfg.Slack.Token, cfg.Slack.ChannelID, metricsSvc)
	} else {
		log.Info("No Slack token configured, check-in notifications disabled")
		notif = notifier.NewNoop()
	}

	rep := report.NewSafe(report.NewXLSX(db, cfg.ReportPath), metricsSvc)
	// Bring the spreadsheet in line with whatever the schema pass found.
	rep.Refresh()

	s := server.NewServer(
		playerStore,
		recorder,
		metricsSvc,
		metricsHandler,
		cfg,
		notif,
		rep,
	)

	// --- Record startup time ---
	startupDuration := time.Since(startTime)
	metricsSvc.SetStartupTime(startupDuration.Seconds())
	log.Info("Startup time recorded", "duration_ms", startupDuration.Milliseconds())

	// --- Graceful shutdown setup ---
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: s,
	}

	// Channel to listen for errors coming from the server
	serverErrors := make(chan error, 1)

	// Start the server in a goroutine
	go func() {
		log.Info("Server started", "port", cfg.Port)
		serverErrors <- srv.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-shutdown:
		log.Info("Shutdown signal received", "signal", sig)

		// Create a context with a timeout for the shutdown.
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		// Attempt to gracefully shut down the server.
		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Server shutdown failed", "error", err)
		} else {
			log.Info("Server gracefully stopped")
		}
	}

	log.Info("Server process shutting down")
}

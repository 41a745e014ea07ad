package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"lucas-asistente/config"
	_ "lucas-asistente/docs" // Swagger docs
	assistantHTTP "lucas-asistente/internal/assistant/delivery/http"
	"lucas-asistente/internal/assistant/tools"
	"lucas-asistente/internal/assistant/usecase"
	"lucas-asistente/internal/httpserver"
	"lucas-asistente/internal/middleware"
	"lucas-asistente/internal/notifier"
	"lucas-asistente/internal/store/sqlite"
	syncpkg "lucas-asistente/internal/sync"
	"lucas-asistente/pkg/dateparse"
	"lucas-asistente/pkg/gcalendar"
	"lucas-asistente/pkg/log"
	"lucas-asistente/pkg/openai"
	"lucas-asistente/pkg/supabase"
)

// @title       Lucas Asistente API
// @description Asistente personal en español: chat con Lucas, tareas y recordatorios.
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

	logger.Info(ctx, "Starting Lucas Asistente...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Local store
	db, err := sqlite.Open(cfg.Store.Path)
	if err != nil {
		logger.Error(ctx, "Failed to open store: ", err)
		return
	}
	defer db.Close()
	logger.Infof(ctx, "Store ready at %s", cfg.Store.Path)

	// 4. Date parser
	timezone := cfg.Environment.Timezone
	parser, pErr := dateparse.NewParser(timezone)
	if pErr != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", timezone, pErr)
		timezone = "UTC"
		parser, _ = dateparse.NewParser(timezone)
	}

	// 5. Sync worker: Supabase mirror + Google Calendar export (both optional)
	var remote syncpkg.Remote
	if cfg.Supabase.URL != "" && cfg.Supabase.APIKey != "" {
		remote = supabase.NewClient(cfg.Supabase.URL, cfg.Supabase.APIKey)
		logger.Info(ctx, "Supabase mirror enabled")
	}

	var calendar syncpkg.CalendarExporter
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, gcErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if gcErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", gcErr)
			logger.Warn(ctx, "→ Run `go run scripts/gcal-auth/main.go` to generate token.json")
		} else {
			calendar = calendarClient
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	outbox := syncpkg.NewWorker(logger, db, remote, calendar, timezone, cfg.Sync.QueueSize)
	if outbox.Enabled() {
		go outbox.Run(ctx)
		logger.Info(ctx, "Sync worker started")
	} else {
		logger.Warn(ctx, "Sync disabled: no Supabase or Google Calendar configured")
	}

	// 6. Notifier
	notifyWorker := notifier.NewWorker(logger, db, outbox, cfg.Notifier.Interval)
	go notifyWorker.Run(ctx)

	// 7. Assistant domain
	oracle := openai.NewClient(cfg.OpenAI.APIKey)
	if cfg.OpenAI.Model != "" {
		oracle = oracle.WithModel(cfg.OpenAI.Model)
	}
	if cfg.OpenAI.BaseURL != "" {
		oracle = oracle.WithBaseURL(cfg.OpenAI.BaseURL)
	}

	registry := tools.NewRegistry(logger)
	registry.Register(tools.NewCreateTaskTool(db, parser, outbox, logger))
	registry.Register(tools.NewCreateReminderTool(db, parser, outbox, logger))
	registry.Register(tools.NewListTasksTool(db, logger))
	registry.Register(tools.NewCompleteTaskTool(db, outbox, logger))
	registry.Register(tools.NewListRemindersTool(db, logger))

	assistantUC := usecase.New(logger, oracle, registry, db)
	assistantHandler := assistantHTTP.New(logger, assistantUC, db)

	// 8. HTTP server
	mw := middleware.New(logger, cfg)
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:           logger,
		Port:             cfg.HTTPServer.Port,
		Mode:             cfg.HTTPServer.Mode,
		Environment:      cfg.Environment.Name,
		AssistantHandler: assistantHandler,
		Middleware:       mw,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

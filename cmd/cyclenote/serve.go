package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/terraincognita07/cyclenote/internal/api"
	"github.com/terraincognita07/cyclenote/internal/config"
	"github.com/terraincognita07/cyclenote/internal/db"
	"github.com/terraincognita07/cyclenote/internal/logger"
	"github.com/terraincognita07/cyclenote/internal/reminders"
	"github.com/terraincognita07/cyclenote/internal/services"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the reminder scheduler",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	logger.Init(cfg.LogLevel, cfg.Environment)

	location, err := cfg.Location()
	if err != nil {
		logger.Log.WithError(err).Warn("falling back to UTC")
	}
	time.Local = location

	database, err := db.OpenSQLite(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		return fmt.Errorf("database handle: %w", err)
	}
	defer sqlDB.Close()

	handler, err := api.NewHandler(database, cfg.SecretKey, location, cfg.CookieSecure)
	if err != nil {
		return fmt.Errorf("handler init failed: %w", err)
	}
	app := newApp(handler)

	lifecycleCtx, cancelLifecycle := context.WithCancel(cmd.Context())
	defer cancelLifecycle()

	scheduler, err := startReminders(lifecycleCtx, cfg, database, location)
	if err != nil {
		return err
	}

	sigCtx, stopSignals := signal.NotifyContext(lifecycleCtx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		cancelLifecycle()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if scheduler != nil {
			scheduler.Stop(shutdownCtx)
		}
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			logger.Log.WithError(err).Error("server shutdown failed")
		}
	}()

	logger.Log.WithFields(logrus.Fields{
		"port":     cfg.Port,
		"db":       cfg.DBPath,
		"timezone": location.String(),
	}).Info("cyclenote listening")
	if err := app.Listen(":" + cfg.Port); err != nil {
		return fmt.Errorf("server exited: %w", err)
	}
	return nil
}

func newApp(handler *api.Handler) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "cyclenote " + version,
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Output: logger.Log.Writer(),
		Format: "${status} ${method} ${path} ${latency}\n",
	}))
	app.Use(compress.New())

	api.RegisterRoutes(app, handler)
	app.Use(handler.NotFound)
	return app
}

// startReminders returns a nil scheduler when Telegram is not configured.
func startReminders(ctx context.Context, cfg *config.Config, database *gorm.DB, location *time.Location) (*reminders.Scheduler, error) {
	if !cfg.RemindersEnabled() {
		logger.Log.Info("reminders disabled: TELEGRAM_BOT_TOKEN or TELEGRAM_CHAT_ID not set")
		return nil, nil
	}

	sender, err := reminders.NewTelegramSender(cfg.TelegramBotToken, cfg.TelegramChatID)
	if err != nil {
		return nil, fmt.Errorf("reminders: %w", err)
	}

	repositories := db.NewRepositories(database)
	service := reminders.NewService(
		repositories.Users,
		services.NewLogService(repositories.SymptomLogs),
		sender,
		cfg.ReminderDaysAhead,
		location,
		logger.Log,
	)
	scheduler := reminders.NewScheduler(service, cfg.ReminderCron, location, logger.Log)
	if err := scheduler.Start(ctx); err != nil {
		return nil, err
	}
	return scheduler, nil
}

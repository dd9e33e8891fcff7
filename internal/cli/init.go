// Package cli provides common initialization shared by the entry point:
// logging, .env loading, configuration, store and event wiring.
package cli

import (
	"os"

	"github.com/joho/godotenv"

	"finwise/internal/config"
	"finwise/internal/events"
	applog "finwise/internal/log"
	"finwise/internal/store"
)

// SetupLogger initializes structured logging and sets it as the default.
func SetupLogger() *applog.Logger {
	logger := applog.New(applog.DefaultConfig())
	applog.SetDefault(logger)
	return logger
}

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as the file is optional in production.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadAndValidateConfig loads configuration and validates it.
// Returns the config or exits the process on validation failure.
func LoadAndValidateConfig(logger *applog.Logger) *config.Config {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}
	return cfg
}

// InitStore builds the Record Store selected by the configuration.
// Returns the store and a cleanup func, or exits the process on failure.
func InitStore(logger *applog.Logger, cfg *config.Config) (store.Store, func() error) {
	storeLogger := logger.WithComponent("store")
	switch cfg.DataBackend {
	case "sqlite":
		s, err := store.NewSQLite(cfg.SQLiteDBPath)
		if err != nil {
			storeLogger.Error("Failed to initialize SQLite store", "error", err, "path", cfg.SQLiteDBPath)
			os.Exit(1)
		}
		storeLogger.Info("Initialized sqlite record store", "path", cfg.SQLiteDBPath)
		return s, s.Close
	default:
		storeLogger.Info("Initialized memory record store")
		return store.NewMemory(), func() error { return nil }
	}
}

// InitEvents builds the optional AMQP publisher. A missing AMQP_URL or a
// connection failure disables publishing instead of stopping startup.
func InitEvents(logger *applog.Logger, cfg *config.Config) *events.Client {
	if cfg.AMQPURL == "" {
		return nil
	}
	eventsLogger := logger.WithComponent("events")
	client, err := events.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
	if err != nil {
		eventsLogger.Warn("Failed to initialize AMQP client, continuing without events", "error", err)
		return nil
	}
	eventsLogger.Info("Initialized AMQP client",
		"exchange", cfg.AMQPExchange,
		"queue", cfg.AMQPQueue)
	return client
}

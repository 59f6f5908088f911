// Package app provides the application initialization and lifecycle management
package app

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/tildaslashalef/blockmap/internal/audit"
	"github.com/tildaslashalef/blockmap/internal/config"
	"github.com/tildaslashalef/blockmap/internal/gitrev"
	"github.com/tildaslashalef/blockmap/internal/llm"
	"github.com/tildaslashalef/blockmap/internal/loggy"
	"github.com/tildaslashalef/blockmap/internal/report"
	"github.com/tildaslashalef/blockmap/internal/scanner"
)

// App represents the application instance with its dependencies
type App struct {
	Config  *config.Config
	Scanner *scanner.Service
	Report  *report.Service
	Audit   *audit.Service
}

// New initializes a new application instance with all its dependencies
func New() (*App, error) {
	cfg, err := initConfig()
	if err != nil {
		return nil, err
	}

	if err := initLogger(cfg); err != nil {
		return nil, err
	}

	loggy.Info("Application initializing",
		"input_path", cfg.Scan.InputPath,
		"log_level", cfg.Logging.Level,
	)

	return initServices(cfg)
}

// initConfig loads and sets up the application configuration
func initConfig() (*config.Config, error) {
	cfg, err := config.LoadFromEnv("", "")
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	config.Set(cfg)
	return cfg, nil
}

// initLogger initializes the logging system
func initLogger(cfg *config.Config) error {
	err := loggy.Init(loggy.Config{
		Level:      config.ParseLogLevel(cfg.Logging.Level),
		Format:     cfg.Logging.Format,
		Output:     cfg.Logging.Output,
		AddSource:  cfg.Logging.AddSource,
		TimeFormat: cfg.Logging.TimeFormat,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return nil
}

// initServices initializes all application services
func initServices(cfg *config.Config) (*App, error) {
	logger := loggy.GetGlobalLogger()

	scannerService := scanner.NewService(cfg.Scan, logger)
	gitrevService := gitrev.NewService(logger)
	reportService := report.NewService(scannerService, gitrevService, logger)

	// The audit service is optional; without LLM credentials the report
	// commands still work
	var auditService *audit.Service
	llmClient, llmType, err := llm.NewFactory(cfg, logger).GetDefaultClient()
	if err != nil {
		loggy.Warn("LLM client unavailable, audit command is disabled", "error", err)
	} else {
		loggy.Info("Initialized LLM client", "type", llmType)
		auditService = audit.NewService(cfg, llmClient, logger)
	}

	return &App{
		Config:  cfg,
		Scanner: scannerService,
		Report:  reportService,
		Audit:   auditService,
	}, nil
}

// Shutdown gracefully shuts down the application
func (app *App) Shutdown() error {
	loggy.Info("Shutting down application")
	return nil
}

// FromContext retrieves the App instance from the CLI context
func FromContext(c *cli.Context) (*App, error) {
	if c.App.Metadata == nil {
		return nil, fmt.Errorf("app metadata not found in context")
	}

	app, ok := c.App.Metadata["app"].(*App)
	if !ok {
		return nil, fmt.Errorf("app instance not found in context")
	}

	return app, nil
}

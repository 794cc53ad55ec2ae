package app

import (
	"fmt"
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/RoriSense/internal/client"
	"github.com/Rorical/RoriSense/internal/config"
	"github.com/Rorical/RoriSense/internal/controller"
	"github.com/Rorical/RoriSense/internal/logging"
)

// Version is reported in the User-Agent header.
var Version = "dev"

// Application manages the complete application lifecycle
type Application struct {
	config     *config.Config
	logger     *slog.Logger
	logCloser  io.Closer
	controller *controller.Controller
	model      *AppModel
}

func NewApplication(cfg *config.Config) (*Application, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger, closer, err := logging.InitFileLogger(cfg.GetLogFile(), cfg.GetLogLevel())
	if err != nil {
		return nil, err
	}

	analyzer, target := NewAnalyzer(cfg, logger)

	model := NewAppModel(target)
	ctrl := controller.New(analyzer, model, controller.WithLogger(logger))
	model.Bind(ctrl)

	logger.Info("[Application] Initialized",
		slog.String("profile", cfg.ActiveProfile),
		slog.String("backend", cfg.GetBackend()),
		slog.String("target", target))

	return &Application{
		config:     cfg,
		logger:     logger,
		logCloser:  closer,
		controller: ctrl,
		model:      model,
	}, nil
}

func (app *Application) Start() error {
	p := tea.NewProgram(app.model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

func (app *Application) Stop() {
	app.controller.Close()
	app.logger.Info("[Application] Stopped")
	if err := app.logCloser.Close(); err != nil {
		slog.Warn("[Application] Failed to close log file", slog.String("error", err.Error()))
	}
}

// NewAnalyzer builds the analyzer for the active profile and a short
// description of where it sends requests.
func NewAnalyzer(cfg *config.Config, logger *slog.Logger) (client.Analyzer, string) {
	if cfg.GetBackend() == config.BackendOpenAI {
		target := "openai:" + cfg.GetModel()
		return client.NewOpenAIAnalyzer(cfg.GetAPIKey(), cfg.GetBaseURL(), cfg.GetModel(), logger), target
	}
	return client.NewHTTPClient(cfg.GetEndpoint(),
		client.WithLogger(logger),
		client.WithUserAgent("rorisense/"+Version),
	), cfg.GetEndpoint()
}

// Package server wires the dashboard together: it parses the dataset, builds
// the session gate and data service, and runs the HTTP server until a
// termination signal arrives.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/studentboard/internal/logging"
	"github.com/dmitrijs2005/studentboard/internal/server/auth"
	"github.com/dmitrijs2005/studentboard/internal/server/config"
	"github.com/dmitrijs2005/studentboard/internal/server/dataset"
	"github.com/dmitrijs2005/studentboard/internal/server/httpserver"
	"github.com/dmitrijs2005/studentboard/internal/server/services"
)

type App struct {
	config    *config.Config
	logger    logging.Logger
	gate      *auth.Gate
	dashboard *services.DashboardService
}

func NewApp(c *config.Config) (*App, error) {
	return newApp(c, logging.NewJSON(os.Stdout, slog.LevelInfo))
}

func newApp(c *config.Config, logger logging.Logger) (*App, error) {
	data, err := dataset.Parse(c.StudentData)
	if err != nil {
		return nil, fmt.Errorf("STUDENT_DATA: %w", err)
	}

	gate, err := auth.NewGate(auth.GateConfig{
		Credentials:  auth.Credentials{Username: c.LoginUser, Password: c.LoginPass},
		SecretKey:    c.SecretKey,
		TTL:          c.SessionTTL,
		CookieSecure: c.CookieSecure,
	})
	if err != nil {
		return nil, fmt.Errorf("session gate init error: %w", err)
	}

	dashboard := services.NewDashboardService(data, summaryRules(c))

	logger.Info(context.Background(), "Dataset loaded",
		"records", data.Len(),
		"pages", dashboard.TotalPages(),
	)

	return &App{config: c, logger: logger, gate: gate, dashboard: dashboard}, nil
}

// summaryRules starts from the built-in names; configured values replace
// them only when set.
func summaryRules(c *config.Config) services.SummaryRules {
	rules := services.DefaultSummaryRules()
	if c.DifficultyField != "" {
		rules.DifficultyField = c.DifficultyField
	}
	if c.PsychField != "" {
		rules.PsychField = c.PsychField
	}
	if c.PsychMarker != "" {
		rules.PsychMarker = c.PsychMarker
	}
	return rules
}

func (app *App) initSignalHandler(ctx context.Context, cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		defer signal.Stop(sigs)
		select {
		case s := <-sigs:
			app.logger.Info(ctx, "Signal received", "signal", s.String())
			cancelFunc()
		case <-ctx.Done():
		}
	}()
}

// Run serves until ctx is cancelled or a termination signal arrives.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(ctx, cancelFunc)

	s, err := httpserver.NewHTTPServer(app.config.ListenAddr, app.logger, app.gate, app.dashboard)
	if err != nil {
		return fmt.Errorf("http server init error: %w", err)
	}

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		return err
	}

	app.logger.Info(ctx, "App stopped")
	return nil
}

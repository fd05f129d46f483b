package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/MKhiriev/go-uaa/internal/adapter"
	"github.com/MKhiriev/go-uaa/internal/config"
	"github.com/MKhiriev/go-uaa/internal/logger"
	"github.com/MKhiriev/go-uaa/models"
)

// App is the dialog client. The dialog result is written to out as JSON,
// "null" when the dialog was cancelled.
type App struct {
	adapter adapter.ServerAdapter
	dialog  Dialog
	cfg     *config.ClientConfig
	out     io.Writer
	logger  *logger.Logger
}

func NewApp(serverAdapter adapter.ServerAdapter, dialog Dialog, cfg *config.ClientConfig, out io.Writer, logger *logger.Logger) *App {
	return &App{
		adapter: serverAdapter,
		dialog:  dialog,
		cfg:     cfg,
		out:     out,
		logger:  logger,
	}
}

func (a *App) Run(ctx context.Context) error {
	if err := a.authenticate(ctx); err != nil {
		return err
	}

	solution, err := a.adapter.GetSolutionByUUID(ctx, a.cfg.SolutionUUID)
	if err != nil {
		return fmt.Errorf("load solution %s: %w", a.cfg.SolutionUUID, err)
	}

	result, err := a.dialog.CompositeDialog(ctx, solution)
	if err != nil {
		return fmt.Errorf("run composite dialog: %w", err)
	}

	if result != nil {
		a.logger.Info().
			Str("uuid", result.UUID).
			Str("version", result.Version).
			Msg("composite solution updated")
	}

	return a.printResult(result)
}

// authenticate uses the configured token when present, otherwise signs in
// with login and password.
func (a *App) authenticate(ctx context.Context) error {
	if a.cfg.Auth.Token != "" {
		a.adapter.SetToken(a.cfg.Auth.Token)
		return nil
	}

	_, err := a.adapter.Authenticate(ctx, models.LoginVM{
		Username: a.cfg.Auth.Login,
		Password: a.cfg.Auth.Password,
	})
	if err != nil {
		return fmt.Errorf("authenticate %s: %w", a.cfg.Auth.Login, err)
	}
	return nil
}

func (a *App) printResult(result *models.CompositeSolutionUpdate) error {
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("encode dialog result: %w", err)
	}

	_, err = fmt.Fprintln(a.out, string(data))
	return err
}

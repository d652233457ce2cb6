package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/afterquery/assessment-broker/config"
	"github.com/afterquery/assessment-broker/middlewares"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const shutdownTimeout = 10 * time.Second

// NewServer builds the echo instance and binds it to the fx lifecycle.
func NewServer(lc fx.Lifecycle, cfg config.Config) *echo.Echo {
	e := middlewares.Server(cfg)

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			addr := fmt.Sprintf(":%d", cfg.Port)
			go func() {
				slog.Info("starting server", "addr", addr)
				if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
					slog.Error("server stopped", "err", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, shutdownTimeout)
			defer cancel()
			return e.Shutdown(ctx)
		},
	})

	return e
}

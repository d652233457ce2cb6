// Copyright (C) 2026 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/afterquery/assessment-broker/cmd/broker/api"
	"github.com/afterquery/assessment-broker/config"
	"github.com/afterquery/assessment-broker/controllers"
	"github.com/afterquery/assessment-broker/daemons"
	"github.com/afterquery/assessment-broker/database"
	"github.com/afterquery/assessment-broker/database/repositories"
	"github.com/afterquery/assessment-broker/integrations"
	"github.com/afterquery/assessment-broker/monitoring"
	"github.com/afterquery/assessment-broker/router"
	"github.com/afterquery/assessment-broker/services"
	"github.com/afterquery/assessment-broker/shared"
	"github.com/getsentry/sentry-go"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

func main() {
	shared.LoadConfig() // nolint: errcheck
	shared.InitLogger()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "err", err)
		os.Exit(1)
	}

	if cfg.SentryDSN != "" {
		initSentry(cfg)

		defer func() {
			if err := recover(); err != nil {
				sentry.CurrentHub().Recover(err)
				sentry.Flush(time.Second * 5)
				panic(err)
			}
		}()
	}

	shutdownTracing, err := monitoring.SetupTracing(context.Background(), "assessment-broker", cfg.Environment)
	if err != nil {
		slog.Warn("could not set up tracing", "err", err)
	}
	defer shutdownTracing(context.Background()) // nolint: errcheck

	poolConfig, err := database.GetPoolConfigFromEnv()
	if err != nil {
		slog.Error("invalid database configuration", "err", err)
		os.Exit(1)
	}

	db, pool, err := database.NewConnection(poolConfig)
	if err != nil {
		slog.Error("failed to setup database connection", "err", err)
		os.Exit(1)
	}

	if !cfg.DisableAutomigrate {
		slog.Info("running database migrations...")
		if err := database.RunMigrationsWithDB(db); err != nil {
			slog.Error("failed to run database migrations", "err", err)
			os.Exit(1)
		}
	} else {
		slog.Info("automatic migrations disabled via DISABLE_AUTOMIGRATE=true")
	}

	fx.New(
		fx.Supply(cfg, db, pool),
		fx.Provide(newBroker),
		fx.Provide(func(broker *database.PostgreSQLBroker) shared.PubSubBroker { return broker }),
		fx.Provide(api.NewServer),
		repositories.Module,
		integrations.Module,
		services.Module,
		controllers.ControllerModule,
		router.RouterModule,
		daemons.Module,

		// routers register their routes on construction
		fx.Invoke(func(router.CandidateRouter) {}),
		fx.Invoke(func(router.AdminRouter) {}),
		fx.Invoke(func(*echo.Echo) {}),
	).Run()
}

func newBroker(lc fx.Lifecycle, pool *pgxpool.Pool) *database.PostgreSQLBroker {
	broker := database.NewPostgreSQLBroker(pool)
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			broker.Close()
			return nil
		},
	})
	return broker
}

func initSentry(cfg config.Config) {
	err := sentry.Init(sentry.ClientOptions{
		Dsn:              cfg.SentryDSN,
		Environment:      cfg.Environment,
		Release:          config.Version,
		Debug:            cfg.Environment == "dev",
		AttachStacktrace: true,
		// tokens travel in headers and query strings
		SendDefaultPII: false,
	})
	if err != nil {
		slog.Error("failed to init sentry", "err", err)
	}
}

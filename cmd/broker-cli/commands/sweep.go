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

package commands

import (
	"io"
	"time"

	"github.com/afterquery/assessment-broker/config"
	"github.com/afterquery/assessment-broker/daemons"
	"github.com/afterquery/assessment-broker/database"
	"github.com/afterquery/assessment-broker/database/repositories"
	"github.com/afterquery/assessment-broker/integrations"
	"github.com/afterquery/assessment-broker/services"
	"github.com/afterquery/assessment-broker/shared"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

func openDatabase() (shared.DB, *pgxpool.Pool, error) {
	shared.LoadConfig() // nolint: errcheck
	poolConfig, err := database.GetPoolConfigFromEnv()
	if err != nil {
		return nil, nil, err
	}
	return database.NewConnection(poolConfig)
}

func NewSweepCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sweep",
		Short: "Run one deadline enforcement pass",
		Long: `Expires invitations whose deadline passed, revokes their access and archives
stale pending invitations. Safe to run next to running broker instances.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, pool, err := openDatabase()
			if err != nil {
				return err
			}
			defer pool.Close()

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			var enforcer shared.DeadlineEnforcer
			app := fx.New(
				fx.NopLogger,
				fx.Supply(cfg, db, pool),
				fx.Provide(func(pool *pgxpool.Pool) shared.PubSubBroker { return database.NewPostgreSQLBroker(pool) }),
				repositories.Module,
				integrations.Module,
				services.Module,
				fx.Provide(fx.Annotate(daemons.NewDeadlineEnforcer, fx.As(new(shared.DeadlineEnforcer)))),
				fx.Populate(&enforcer),
			)
			if err := app.Err(); err != nil {
				return err
			}

			start := time.Now()
			result, err := enforcer.Sweep(cmd.Context())
			if err != nil {
				return err
			}
			printSweepResult(cmd.OutOrStdout(), result, time.Since(start))
			return nil
		},
	}
}

func printSweepResult(w io.Writer, result shared.SweepResult, duration time.Duration) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.AppendHeader(table.Row{"Due", "Expired", "Archived", "Repaired tokens", "Duration"})
	tw.AppendRow(table.Row{result.Due, result.Expired, result.Archived, result.Repaired, duration.Round(time.Millisecond)})
	tw.Render()
}

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

package daemons

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/afterquery/assessment-broker/config"
	"github.com/afterquery/assessment-broker/monitoring"
	"github.com/afterquery/assessment-broker/shared"
)

// DaemonRunner drives the background work of one instance
type DaemonRunner struct {
	enforcer shared.DeadlineEnforcer
	listener *LifecycleListener
	interval time.Duration

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewDaemonRunner(enforcer shared.DeadlineEnforcer, listener *LifecycleListener, cfg config.Config) *DaemonRunner {
	return &DaemonRunner{
		enforcer: enforcer,
		listener: listener,
		interval: cfg.SweepInterval,
	}
}

// Start runs a sweep right away and then once per interval.
func (runner *DaemonRunner) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	runner.cancel = cancel

	runner.wg.Go(func() {
		runner.tick(ctx)
		ticker := time.NewTicker(runner.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				runner.tick(ctx)
			}
		}
	})

	runner.wg.Go(func() {
		if err := runner.listener.Listen(ctx); err != nil {
			monitoring.DaemonErrorsTotal.WithLabelValues("lifecycle-listener").Inc()
			slog.Error("lifecycle listener stopped", "err", err)
		}
	})
}

func (runner *DaemonRunner) Stop() {
	if runner.cancel != nil {
		runner.cancel()
	}
	runner.wg.Wait()
}

func (runner *DaemonRunner) tick(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			monitoring.DaemonErrorsTotal.WithLabelValues("deadline-enforcer").Inc()
			monitoring.RecoverAndAlert("deadline enforcer panicked", fmt.Errorf("%v", r))
		}
	}()

	if _, err := runner.enforcer.Sweep(ctx); err != nil {
		if ctx.Err() != nil {
			return
		}
		monitoring.DaemonErrorsTotal.WithLabelValues("deadline-enforcer").Inc()
		monitoring.Alert("deadline enforcer sweep failed", err)
	}
}

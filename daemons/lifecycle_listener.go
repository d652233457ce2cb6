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

	"github.com/afterquery/assessment-broker/monitoring"
	"github.com/afterquery/assessment-broker/shared"
)

type LifecycleListener struct {
	broker shared.PubSubBroker
}

func NewLifecycleListener(broker shared.PubSubBroker) *LifecycleListener {
	return &LifecycleListener{broker: broker}
}

// Listen consumes lifecycle events until ctx is done or the channel closes.
func (l *LifecycleListener) Listen(ctx context.Context) error {
	events, err := l.broker.Subscribe(shared.InvitationLifecycleChannel)
	if err != nil {
		return fmt.Errorf("could not subscribe to lifecycle events: %w", err)
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case payload, ok := <-events:
			if !ok {
				return nil
			}
			handleLifecycleEvent(payload)
		}
	}
}

func handleLifecycleEvent(payload map[string]any) {
	to, _ := payload["to"].(string)
	if to == "" {
		slog.Warn("received lifecycle event without target status", "payload", payload)
		return
	}
	monitoring.LifecycleEventsTotal.WithLabelValues(to).Inc()
	slog.Info("invitation lifecycle", "invitationID", payload["invitationId"], "from", payload["from"], "to", to, "actor", payload["actor"])
}

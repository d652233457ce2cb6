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

package services

import (
	"context"
	"time"

	"github.com/afterquery/assessment-broker/config"
	"github.com/afterquery/assessment-broker/database/models"
	"github.com/afterquery/assessment-broker/monitoring"
	"github.com/afterquery/assessment-broker/shared"
	"github.com/afterquery/assessment-broker/utils"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// RetryPolicy bounds every retried call to the hosting provider.
type RetryPolicy struct {
	InitialInterval time.Duration
	MaxAttempts     uint
}

func NewRetryPolicy(cfg config.Config) RetryPolicy {
	return RetryPolicy{
		InitialInterval: 500 * time.Millisecond,
		MaxAttempts:     cfg.UpstreamMaxAttempts,
	}
}

func isTransient(err error) bool {
	return errors.Is(err, shared.ErrUpstreamUnavailable)
}

// retryUpstream retries transient provider errors of op. Every retry and a
// final exhaustion end up in the audit log.
func retryUpstream[T any](ctx context.Context, audit shared.AuditService, policy RetryPolicy, op string, invitationID *uuid.UUID, fn func(ctx context.Context) (T, error)) (T, error) {
	res, err := utils.Retry(ctx, utils.RetryConfig{
		InitialInterval: policy.InitialInterval,
		MaxAttempts:     policy.MaxAttempts,
		Retryable:       isTransient,
		OnRetry: func(attempt uint, err error, next time.Duration) {
			monitoring.UpstreamRetriesTotal.WithLabelValues(op).Inc()
			audit.Record(ctx, models.AuditUpstreamRetry, models.ActorSystem, invitationID, map[string]any{
				"operation": op,
				"attempt":   attempt,
				"err":       err.Error(),
				"nextInMs":  next.Milliseconds(),
			})
		},
	}, fn)
	if err != nil && isTransient(err) {
		audit.Record(ctx, models.AuditUpstreamExhausted, models.ActorSystem, invitationID, map[string]any{
			"operation": op,
			"err":       err.Error(),
		})
	}
	return res, err
}

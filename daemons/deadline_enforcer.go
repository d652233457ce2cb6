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
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/afterquery/assessment-broker/config"
	"github.com/afterquery/assessment-broker/monitoring"
	"github.com/afterquery/assessment-broker/shared"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// DeadlineEnforcer expires invitations past their relevant deadline. Every
// expiry goes through the same conditional update as the request path, so
// several instances can sweep at the same time.
type DeadlineEnforcer struct {
	invitationRepository  shared.InvitationRepository
	accessTokenRepository shared.AccessTokenRepository
	invitationService     shared.InvitationService
	clock                 shared.Clock

	batchSize   int
	concurrency int
}

var _ shared.DeadlineEnforcer = &DeadlineEnforcer{}

func NewDeadlineEnforcer(invitationRepository shared.InvitationRepository, accessTokenRepository shared.AccessTokenRepository, invitationService shared.InvitationService, clock shared.Clock, cfg config.Config) *DeadlineEnforcer {
	return &DeadlineEnforcer{
		invitationRepository:  invitationRepository,
		accessTokenRepository: accessTokenRepository,
		invitationService:     invitationService,
		clock:                 clock,
		batchSize:             cfg.SweepBatchSize,
		concurrency:           cfg.SweepConcurrency,
	}
}

func (e *DeadlineEnforcer) Sweep(ctx context.Context) (shared.SweepResult, error) {
	start := time.Now()
	defer func() {
		monitoring.SweepDuration.Observe(time.Since(start).Seconds())
	}()

	var result shared.SweepResult
	now := e.clock.Now()

	due, err := e.invitationRepository.FindDue(now, e.batchSize)
	if err != nil {
		return result, errors.Wrap(err, "could not find due invitations")
	}
	result.Due = len(due)
	monitoring.SweepDueTotal.Add(float64(len(due)))

	var expired atomic.Int64
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(e.concurrency)
	for _, inv := range due {
		group.Go(func() error {
			ok, err := e.invitationService.Expire(groupCtx, inv)
			if err != nil {
				// one broken row must not stop the pass
				slog.Error("could not expire invitation", "invitationID", inv.ID, "err", err)
				return nil
			}
			if ok {
				expired.Add(1)
			}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return result, err
	}
	result.Expired = int(expired.Load())
	monitoring.SweepExpiredTotal.Add(float64(result.Expired))

	// tokens can only outlive their invitation through a bug or a manual
	// database change
	repaired, err := e.accessTokenRepository.RevokeLiveOfTerminalInvitations(nil, e.clock.Now())
	if err != nil {
		return result, errors.Wrap(err, "could not revoke tokens of terminal invitations")
	}
	result.Repaired = repaired
	if repaired > 0 {
		monitoring.SweepRepairedTokensTotal.Add(float64(repaired))
		slog.Warn("revoked live tokens of terminal invitations", "count", repaired)
	}

	archived, err := e.invitationService.ArchivePending(ctx, e.batchSize)
	if err != nil {
		return result, errors.Wrap(err, "could not archive submitted repositories")
	}
	result.Archived = archived

	if result.Due > 0 || result.Repaired > 0 || result.Archived > 0 {
		slog.Info("sweep finished", "due", result.Due, "expired", result.Expired, "repaired", result.Repaired, "archived", result.Archived, "duration", time.Since(start))
	}
	return result, nil
}

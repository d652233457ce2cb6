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

package statemachine

import (
	"slices"

	"github.com/afterquery/assessment-broker/database/models"
	"github.com/afterquery/assessment-broker/shared"
	"github.com/pkg/errors"
)

type Trigger string

const (
	TriggerAccept  Trigger = "accept"
	TriggerStart   Trigger = "start"
	TriggerReissue Trigger = "reissue"
	TriggerSubmit  Trigger = "submit"
	TriggerExpire  Trigger = "expire"
	TriggerRevoke  Trigger = "revoke"
)

type SideEffect string

const (
	SideEffectProvisionRepo    SideEffect = "provision_repo"
	SideEffectIssueToken       SideEffect = "issue_token"
	SideEffectCreateSubmission SideEffect = "create_submission"
	SideEffectRevokeTokens     SideEffect = "revoke_tokens"
	SideEffectDeactivateRepo   SideEffect = "deactivate_repo"
	SideEffectArchiveRepo      SideEffect = "archive_repo"
)

// Transactional reports whether the effect has to commit together with the
// status update. All other effects talk to the hosting provider and run
// after the commit.
func (e SideEffect) Transactional() bool {
	switch e {
	case SideEffectCreateSubmission, SideEffectRevokeTokens, SideEffectDeactivateRepo:
		return true
	}
	return false
}

type transition struct {
	from        []models.InvitationStatus
	to          models.InvitationStatus
	sideEffects []SideEffect
}

// the complete lifecycle. anything not listed here is rejected.
var transitions = map[Trigger]transition{
	TriggerAccept: {
		from: []models.InvitationStatus{models.InvitationStatusSent},
		to:   models.InvitationStatusAccepted,
	},
	TriggerStart: {
		from:        []models.InvitationStatus{models.InvitationStatusSent, models.InvitationStatusAccepted},
		to:          models.InvitationStatusStarted,
		sideEffects: []SideEffect{SideEffectProvisionRepo, SideEffectIssueToken},
	},
	// a lost token is replaced without leaving started
	TriggerReissue: {
		from:        []models.InvitationStatus{models.InvitationStatusStarted},
		to:          models.InvitationStatusStarted,
		sideEffects: []SideEffect{SideEffectIssueToken},
	},
	TriggerSubmit: {
		from:        []models.InvitationStatus{models.InvitationStatusStarted},
		to:          models.InvitationStatusSubmitted,
		sideEffects: []SideEffect{SideEffectCreateSubmission, SideEffectRevokeTokens, SideEffectDeactivateRepo, SideEffectArchiveRepo},
	},
	TriggerExpire: {
		from:        []models.InvitationStatus{models.InvitationStatusSent, models.InvitationStatusAccepted, models.InvitationStatusStarted},
		to:          models.InvitationStatusExpired,
		sideEffects: []SideEffect{SideEffectRevokeTokens, SideEffectDeactivateRepo},
	},
	TriggerRevoke: {
		from:        []models.InvitationStatus{models.InvitationStatusSent, models.InvitationStatusAccepted, models.InvitationStatusStarted},
		to:          models.InvitationStatusRevoked,
		sideEffects: []SideEffect{SideEffectRevokeTokens, SideEffectDeactivateRepo},
	},
}

// Transition returns the status reached by applying trigger to current and
// the side effects the caller has to run. The pair is rejected with
// shared.ErrInvalidTransition if the lifecycle does not allow it.
func Transition(current models.InvitationStatus, trigger Trigger) (models.InvitationStatus, []SideEffect, error) {
	t, ok := transitions[trigger]
	if !ok {
		return current, nil, errors.Wrapf(shared.ErrInvalidTransition, "unknown trigger %s", trigger)
	}
	if !slices.Contains(t.from, current) {
		return current, nil, errors.Wrapf(shared.ErrInvalidTransition, "cannot %s an invitation in status %s", trigger, current)
	}
	return t.to, slices.Clone(t.sideEffects), nil
}

// Allows reports whether trigger can be applied to status.
func Allows(status models.InvitationStatus, trigger Trigger) bool {
	t, ok := transitions[trigger]
	return ok && slices.Contains(t.from, status)
}

// AllowedFrom lists the statuses trigger can be applied to.
func AllowedFrom(trigger Trigger) []models.InvitationStatus {
	return slices.Clone(transitions[trigger].from)
}

func Target(trigger Trigger) models.InvitationStatus {
	return transitions[trigger].to
}

func IsTerminal(status models.InvitationStatus) bool {
	switch status {
	case models.InvitationStatusSubmitted, models.InvitationStatusExpired, models.InvitationStatusRevoked:
		return true
	}
	return false
}

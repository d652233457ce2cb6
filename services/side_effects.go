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

	"github.com/afterquery/assessment-broker/shared"
	"github.com/afterquery/assessment-broker/statemachine"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// effectHandlers binds the side effects of one transition to the calls
// performing them.
type effectHandlers map[statemachine.SideEffect]func() error

// run executes the transactional or the post commit effects in the order
// the lifecycle table lists them. It stops at the first error.
func (h effectHandlers) run(effects []statemachine.SideEffect, transactional bool) error {
	for _, effect := range effects {
		if effect.Transactional() != transactional {
			continue
		}
		handler, ok := h[effect]
		if !ok {
			return errors.Wrapf(shared.ErrInvariantViolation, "no handler for side effect %s", effect)
		}
		if err := handler(); err != nil {
			return err
		}
	}
	return nil
}

// closingEffects handles what every terminal transition does inside its
// transaction.
func (s *InvitationService) closingEffects(ctx context.Context, tx shared.DB, id uuid.UUID) effectHandlers {
	return effectHandlers{
		statemachine.SideEffectRevokeTokens: func() error {
			_, err := s.broker.Revoke(ctx, tx, id)
			return err
		},
		statemachine.SideEffectDeactivateRepo: func() error {
			return s.candidateRepoRepository.Deactivate(tx, id)
		},
	}
}

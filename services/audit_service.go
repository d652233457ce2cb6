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
	"log/slog"

	"github.com/afterquery/assessment-broker/database/models"
	"github.com/afterquery/assessment-broker/shared"
	"github.com/google/uuid"
)

type AuditService struct {
	repository shared.AuditEventRepository
}

var _ shared.AuditService = &AuditService{}

func NewAuditService(repository shared.AuditEventRepository) *AuditService {
	return &AuditService{repository: repository}
}

// Record writes an audit event outside of any transaction. Failures are
// logged and never reach the caller.
func (s *AuditService) Record(ctx context.Context, kind models.AuditEventKind, actor string, invitationID *uuid.UUID, meta map[string]any) {
	if err := s.RecordTx(nil, kind, actor, invitationID, meta); err != nil {
		slog.ErrorContext(ctx, "could not record audit event", "kind", kind, "invitationID", invitationID, "err", err)
	}
}

func (s *AuditService) RecordTx(tx shared.DB, kind models.AuditEventKind, actor string, invitationID *uuid.UUID, meta map[string]any) error {
	if meta == nil {
		meta = map[string]any{}
	}
	return s.repository.Create(tx, &models.AuditEvent{
		Kind:         kind,
		Actor:        actor,
		InvitationID: invitationID,
		Meta:         meta,
	})
}

func (s *AuditService) List(invitationID uuid.UUID) ([]models.AuditEvent, error) {
	return s.repository.ListByInvitationID(invitationID)
}

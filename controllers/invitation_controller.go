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

package controllers

import (
	"log/slog"

	"github.com/afterquery/assessment-broker/dtos"
	"github.com/afterquery/assessment-broker/shared"
	"github.com/afterquery/assessment-broker/transformer"
	"github.com/afterquery/assessment-broker/utils"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type InvitationController struct {
	invitationService    shared.InvitationService
	invitationRepository shared.InvitationRepository
	auditService         shared.AuditService
}

func NewInvitationController(
	invitationService shared.InvitationService,
	invitationRepository shared.InvitationRepository,
	auditService shared.AuditService,
) *InvitationController {
	return &InvitationController{
		invitationService:    invitationService,
		invitationRepository: invitationRepository,
		auditService:         auditService,
	}
}

// CreateBatch invites all candidates or none. The response is the only place
// the raw start link tokens ever appear.
func (controller *InvitationController) CreateBatch(ctx shared.Context) error {
	assessmentID, err := shared.GetUUIDParam(ctx, "assessmentID")
	if err != nil {
		return echo.NewHTTPError(400, err.Error())
	}

	var req dtos.InvitationBatchRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	created, err := controller.invitationService.CreateBatch(ctx.Request().Context(), assessmentID, transformer.InvitationCandidatesFromRequest(req))
	if err != nil {
		return adminError(err, "could not create invitations")
	}

	return ctx.JSON(201, utils.Map(created, transformer.CreatedInvitationDTOFromResult))
}

func (controller *InvitationController) ListByAssessment(ctx shared.Context) error {
	assessmentID, err := shared.GetUUIDParam(ctx, "assessmentID")
	if err != nil {
		return echo.NewHTTPError(400, err.Error())
	}

	invitations, err := controller.invitationRepository.ListByAssessment(assessmentID)
	if err != nil {
		return adminError(err, "could not list invitations")
	}
	return ctx.JSON(200, utils.Map(invitations, transformer.InvitationDTOFromModel))
}

func (controller *InvitationController) Read(ctx shared.Context) error {
	invitationID, err := shared.GetUUIDParam(ctx, "invitationID")
	if err != nil {
		return echo.NewHTTPError(400, err.Error())
	}

	inv, err := controller.invitationRepository.Read(invitationID)
	if err != nil {
		return adminError(err, "could not read invitation")
	}
	return ctx.JSON(200, transformer.InvitationDTOFromModel(inv))
}

// Revoke ends the invitation and every credential derived from it. Revoking
// twice returns the already revoked invitation.
func (controller *InvitationController) Revoke(ctx shared.Context) error {
	invitationID, err := shared.GetUUIDParam(ctx, "invitationID")
	if err != nil {
		return echo.NewHTTPError(400, err.Error())
	}

	inv, err := controller.invitationService.Revoke(ctx.Request().Context(), invitationID)
	if err != nil {
		if errors.Is(err, shared.ErrAlreadyTransitioned) {
			return ctx.JSON(200, transformer.InvitationDTOFromModel(inv))
		}
		return adminError(err, "could not revoke invitation")
	}

	slog.Info("invitation revoked", "invitationID", invitationID)
	return ctx.JSON(200, transformer.InvitationDTOFromModel(inv))
}

func (controller *InvitationController) Audit(ctx shared.Context) error {
	invitationID, err := shared.GetUUIDParam(ctx, "invitationID")
	if err != nil {
		return echo.NewHTTPError(400, err.Error())
	}

	if _, err := controller.invitationRepository.Read(invitationID); err != nil {
		return adminError(err, "could not read invitation")
	}

	events, err := controller.auditService.List(invitationID)
	if err != nil {
		return adminError(err, "could not list audit events")
	}
	return ctx.JSON(200, utils.Map(events, transformer.AuditEventDTOFromModel))
}

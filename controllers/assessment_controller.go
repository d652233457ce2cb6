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
	"github.com/afterquery/assessment-broker/dtos"
	"github.com/afterquery/assessment-broker/shared"
	"github.com/afterquery/assessment-broker/transformer"
	"github.com/labstack/echo/v4"
)

type AssessmentController struct {
	assessmentService    shared.AssessmentService
	assessmentRepository shared.AssessmentRepository
}

func NewAssessmentController(assessmentService shared.AssessmentService, assessmentRepository shared.AssessmentRepository) *AssessmentController {
	return &AssessmentController{
		assessmentService:    assessmentService,
		assessmentRepository: assessmentRepository,
	}
}

func (controller *AssessmentController) Create(ctx shared.Context) error {
	org := shared.GetOrg(ctx)

	var req dtos.AssessmentCreateRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	assessment := transformer.AssessmentCreateRequestToModel(org.ID, req)
	if err := controller.assessmentService.Create(ctx.Request().Context(), &assessment); err != nil {
		return adminError(err, "could not create assessment")
	}

	return ctx.JSON(201, transformer.AssessmentDTOFromModel(assessment))
}

func (controller *AssessmentController) Read(ctx shared.Context) error {
	assessmentID, err := shared.GetUUIDParam(ctx, "assessmentID")
	if err != nil {
		return echo.NewHTTPError(400, err.Error())
	}

	assessment, err := controller.assessmentRepository.Read(assessmentID)
	if err != nil {
		return adminError(err, "could not read assessment")
	}
	return ctx.JSON(200, transformer.AssessmentDTOFromModel(assessment))
}

// Update applies a partial update. Durations are frozen once the assessment
// has invitations.
func (controller *AssessmentController) Update(ctx shared.Context) error {
	assessmentID, err := shared.GetUUIDParam(ctx, "assessmentID")
	if err != nil {
		return echo.NewHTTPError(400, err.Error())
	}

	var req dtos.AssessmentPatchRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	assessment, err := controller.assessmentService.Update(ctx.Request().Context(), assessmentID, transformer.AssessmentPatchRequestToPatch(req))
	if err != nil {
		return adminError(err, "could not update assessment")
	}
	return ctx.JSON(200, transformer.AssessmentDTOFromModel(assessment))
}

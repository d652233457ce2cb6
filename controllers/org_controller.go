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
	"github.com/afterquery/assessment-broker/utils"
	"github.com/labstack/echo/v4"
)

type OrgController struct {
	orgRepository                   shared.OrgRepository
	githubAppInstallationRepository shared.GithubAppInstallationRepository
	seedRepository                  shared.SeedRepository
	assessmentRepository            shared.AssessmentRepository
}

func NewOrgController(
	orgRepository shared.OrgRepository,
	githubAppInstallationRepository shared.GithubAppInstallationRepository,
	seedRepository shared.SeedRepository,
	assessmentRepository shared.AssessmentRepository,
) *OrgController {
	return &OrgController{
		orgRepository:                   orgRepository,
		githubAppInstallationRepository: githubAppInstallationRepository,
		seedRepository:                  seedRepository,
		assessmentRepository:            assessmentRepository,
	}
}

func (controller *OrgController) Create(ctx shared.Context) error {
	var req dtos.OrgCreateRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	org := transformer.OrgCreateRequestToModel(req)
	if org.Slug == "" {
		return echo.NewHTTPError(400, "slug is required")
	}

	if err := controller.orgRepository.Create(nil, &org); err != nil {
		return adminError(err, "could not create organization")
	}

	return ctx.JSON(201, transformer.OrgDTOFromModel(org))
}

func (controller *OrgController) Read(ctx shared.Context) error {
	return ctx.JSON(200, transformer.OrgDTOFromModel(shared.GetOrg(ctx)))
}

// AddGithubInstallation links a GitHub App installation to the organization.
// The first linked installation is used to create repositories.
func (controller *OrgController) AddGithubInstallation(ctx shared.Context) error {
	org := shared.GetOrg(ctx)

	var req dtos.GithubAppInstallationRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	installation := transformer.GithubAppInstallationRequestToModel(org.ID, req)
	if existing, err := controller.githubAppInstallationRepository.Read(installation.InstallationID); err == nil && existing.OrgID != org.ID {
		return echo.NewHTTPError(409, "installation belongs to another organization")
	}

	if err := controller.githubAppInstallationRepository.Save(nil, &installation); err != nil {
		return adminError(err, "could not save github app installation")
	}

	org, err := controller.orgRepository.ReadWithInstallations(org.ID)
	if err != nil {
		return adminError(err, "could not read organization")
	}
	return ctx.JSON(200, transformer.OrgDTOFromModel(org))
}

func (controller *OrgController) ListSeeds(ctx shared.Context) error {
	seeds, err := controller.seedRepository.FindByOrgID(shared.GetOrg(ctx).ID)
	if err != nil {
		return adminError(err, "could not list seeds")
	}
	return ctx.JSON(200, utils.Map(seeds, transformer.SeedDTOFromModel))
}

func (controller *OrgController) ListAssessments(ctx shared.Context) error {
	assessments, err := controller.assessmentRepository.FindByOrgID(shared.GetOrg(ctx).ID)
	if err != nil {
		return adminError(err, "could not list assessments")
	}
	return ctx.JSON(200, utils.Map(assessments, transformer.AssessmentDTOFromModel))
}

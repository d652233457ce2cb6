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

type SeedController struct {
	seedService shared.SeedService
}

func NewSeedController(seedService shared.SeedService) *SeedController {
	return &SeedController{seedService: seedService}
}

// Create mirrors the source repository into the organization and pins the
// current head of its default branch.
func (controller *SeedController) Create(ctx shared.Context) error {
	org := shared.GetOrg(ctx)

	var req dtos.SeedCreateRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	seed, err := controller.seedService.Register(ctx.Request().Context(), org, req.SourceRepoURL, req.DefaultBranch)
	if err != nil {
		return adminError(err, "could not register seed")
	}

	return ctx.JSON(201, transformer.SeedDTOFromModel(seed))
}

func (controller *SeedController) Resync(ctx shared.Context) error {
	seedID, err := shared.GetUUIDParam(ctx, "seedID")
	if err != nil {
		return echo.NewHTTPError(400, err.Error())
	}

	sha, err := controller.seedService.Resync(ctx.Request().Context(), seedID)
	if err != nil {
		return adminError(err, "could not resync seed")
	}

	return ctx.JSON(200, dtos.SeedResyncResponse{SeedID: seedID, LatestPinnedCommit: sha})
}

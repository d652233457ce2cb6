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

package transformer

import (
	"github.com/afterquery/assessment-broker/database/models"
	"github.com/afterquery/assessment-broker/dtos"
	"github.com/afterquery/assessment-broker/utils"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

func OrgCreateRequestToModel(c dtos.OrgCreateRequest) models.Org {
	return models.Org{
		Name:           c.Name,
		Slug:           slug.Make(c.Name),
		GithubOrgLogin: c.GithubOrgLogin,
	}
}

func GithubAppInstallationRequestToModel(orgID uuid.UUID, r dtos.GithubAppInstallationRequest) models.GithubAppInstallation {
	targetType := r.TargetType
	if targetType == "" {
		targetType = "Organization"
	}
	return models.GithubAppInstallation{
		InstallationID: r.InstallationID,
		OrgID:          orgID,
		SettingsURL:    r.SettingsURL,
		TargetType:     targetType,
		TargetLogin:    r.TargetLogin,
	}
}

func GithubAppInstallationDTOFromModel(i models.GithubAppInstallation) dtos.GithubAppInstallationDTO {
	return dtos.GithubAppInstallationDTO{
		InstallationID: i.InstallationID,
		OrgID:          i.OrgID,
		SettingsURL:    i.SettingsURL,
		TargetType:     i.TargetType,
		TargetLogin:    i.TargetLogin,
		CreatedAt:      i.CreatedAt,
	}
}

func OrgDTOFromModel(org models.Org) dtos.OrgDTO {
	return dtos.OrgDTO{
		ID:                     org.ID,
		CreatedAt:              org.CreatedAt,
		Name:                   org.Name,
		Slug:                   org.Slug,
		GithubOrgLogin:         org.GithubOrgLogin,
		GithubAppInstallations: utils.Map(org.GithubAppInstallations, GithubAppInstallationDTOFromModel),
	}
}

func SeedDTOFromModel(seed models.Seed) dtos.SeedDTO {
	return dtos.SeedDTO{
		ID:                 seed.ID,
		OrgID:              seed.OrgID,
		SourceRepoURL:      seed.SourceRepoURL,
		MirrorRepoFullName: seed.MirrorRepoFullName,
		DefaultBranch:      seed.DefaultBranch,
		LatestPinnedCommit: seed.LatestPinnedCommit,
		LastSyncedAt:       seed.LastSyncedAt,
	}
}

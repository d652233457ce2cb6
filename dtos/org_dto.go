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
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package dtos

import (
	"time"

	"github.com/google/uuid"
)

type OrgCreateRequest struct {
	Name           string `json:"name" validate:"required"`
	GithubOrgLogin string `json:"githubOrgLogin" validate:"required"`
}

type GithubAppInstallationRequest struct {
	InstallationID int64  `json:"installationId" validate:"required,gt=0"`
	TargetType     string `json:"targetType" validate:"omitempty,oneof=Organization User"`
	TargetLogin    string `json:"targetLogin" validate:"required"`
	SettingsURL    string `json:"settingsUrl" validate:"omitempty,url"`
}

type GithubAppInstallationDTO struct {
	InstallationID int64     `json:"installationId"`
	OrgID          uuid.UUID `json:"orgId"`
	SettingsURL    string    `json:"settingsUrl"`
	TargetType     string    `json:"targetType"`
	TargetLogin    string    `json:"targetLogin"`
	CreatedAt      time.Time `json:"createdAt"`
}

type OrgDTO struct {
	ID             uuid.UUID `json:"id"`
	CreatedAt      time.Time `json:"createdAt"`
	Name           string    `json:"name"`
	Slug           string    `json:"slug"`
	GithubOrgLogin string    `json:"githubOrgLogin"`

	GithubAppInstallations []GithubAppInstallationDTO `json:"githubAppInstallations"`
}

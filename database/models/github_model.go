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

package models

import (
	"time"

	"github.com/google/uuid"
)

type GithubAppInstallation struct {
	InstallationID int64 `json:"installationId" gorm:"primaryKey;autoIncrement:false"`

	OrgID uuid.UUID `json:"orgId" gorm:"column:org_id;type:uuid;not null"`

	SettingsURL string `json:"settingsUrl"`
	TargetType  string `json:"targetType"`
	TargetLogin string `json:"targetLogin"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (GithubAppInstallation) TableName() string {
	return "github_app_installations"
}

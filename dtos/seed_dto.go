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

type SeedCreateRequest struct {
	SourceRepoURL string `json:"sourceRepoUrl" validate:"required,url"`
	DefaultBranch string `json:"defaultBranch"`
}

type SeedDTO struct {
	ID                 uuid.UUID  `json:"id"`
	OrgID              uuid.UUID  `json:"orgId"`
	SourceRepoURL      string     `json:"sourceRepoUrl"`
	MirrorRepoFullName string     `json:"mirrorRepoFullName"`
	DefaultBranch      string     `json:"defaultBranch"`
	LatestPinnedCommit string     `json:"latestPinnedCommit"`
	LastSyncedAt       *time.Time `json:"lastSyncedAt"`
}

type SeedResyncResponse struct {
	SeedID             uuid.UUID `json:"seedId"`
	LatestPinnedCommit string    `json:"latestPinnedCommit"`
}

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

type AssessmentCreateRequest struct {
	SeedID                uuid.UUID `json:"seedId" validate:"required"`
	Title                 string    `json:"title" validate:"required"`
	Description           string    `json:"description"`
	Instructions          string    `json:"instructions"`
	TimeToStartSeconds    int64     `json:"timeToStartSeconds" validate:"required,gt=0"`
	TimeToCompleteSeconds int64     `json:"timeToCompleteSeconds" validate:"required,gt=0"`
}

type AssessmentPatchRequest struct {
	Title                 *string `json:"title" validate:"omitempty,min=1"`
	Description           *string `json:"description"`
	Instructions          *string `json:"instructions"`
	TimeToStartSeconds    *int64  `json:"timeToStartSeconds" validate:"omitempty,gt=0"`
	TimeToCompleteSeconds *int64  `json:"timeToCompleteSeconds" validate:"omitempty,gt=0"`
	Archived              *bool   `json:"archived"`
}

type AssessmentDTO struct {
	ID                    uuid.UUID `json:"id"`
	CreatedAt             time.Time `json:"createdAt"`
	OrgID                 uuid.UUID `json:"orgId"`
	SeedID                uuid.UUID `json:"seedId"`
	Title                 string    `json:"title"`
	Description           string    `json:"description"`
	Instructions          string    `json:"instructions"`
	TimeToStartSeconds    int64     `json:"timeToStartSeconds"`
	TimeToCompleteSeconds int64     `json:"timeToCompleteSeconds"`
	SeedSHAPinned         string    `json:"seedShaPinned"`
	Archived              bool      `json:"archived"`
}

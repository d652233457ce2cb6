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
	"github.com/afterquery/assessment-broker/shared"
	"github.com/google/uuid"
)

func AssessmentCreateRequestToModel(orgID uuid.UUID, c dtos.AssessmentCreateRequest) models.Assessment {
	return models.Assessment{
		OrgID:                 orgID,
		SeedID:                c.SeedID,
		Title:                 c.Title,
		Description:           c.Description,
		Instructions:          c.Instructions,
		TimeToStartSeconds:    c.TimeToStartSeconds,
		TimeToCompleteSeconds: c.TimeToCompleteSeconds,
	}
}

func AssessmentPatchRequestToPatch(p dtos.AssessmentPatchRequest) shared.AssessmentPatch {
	return shared.AssessmentPatch{
		Title:                 p.Title,
		Description:           p.Description,
		Instructions:          p.Instructions,
		TimeToStartSeconds:    p.TimeToStartSeconds,
		TimeToCompleteSeconds: p.TimeToCompleteSeconds,
		Archived:              p.Archived,
	}
}

func AssessmentDTOFromModel(a models.Assessment) dtos.AssessmentDTO {
	return dtos.AssessmentDTO{
		ID:                    a.ID,
		CreatedAt:             a.CreatedAt,
		OrgID:                 a.OrgID,
		SeedID:                a.SeedID,
		Title:                 a.Title,
		Description:           a.Description,
		Instructions:          a.Instructions,
		TimeToStartSeconds:    a.TimeToStartSeconds,
		TimeToCompleteSeconds: a.TimeToCompleteSeconds,
		SeedSHAPinned:         a.SeedSHAPinned,
		Archived:              a.Archived,
	}
}

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

package services

import (
	"context"
	"log/slog"

	"github.com/afterquery/assessment-broker/database/models"
	"github.com/afterquery/assessment-broker/shared"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type AssessmentService struct {
	assessmentRepository shared.AssessmentRepository
	seedRepository       shared.SeedRepository
}

var _ shared.AssessmentService = &AssessmentService{}

func NewAssessmentService(assessmentRepository shared.AssessmentRepository, seedRepository shared.SeedRepository) *AssessmentService {
	return &AssessmentService{
		assessmentRepository: assessmentRepository,
		seedRepository:       seedRepository,
	}
}

// Create pins the current seed commit into the assessment.
func (s *AssessmentService) Create(ctx context.Context, assessment *models.Assessment) error {
	if assessment.TimeToStartSeconds <= 0 || assessment.TimeToCompleteSeconds <= 0 {
		return errors.Wrap(shared.ErrInvalidTransition, "time to start and time to complete must be positive")
	}
	seed, err := s.seedRepository.Read(assessment.SeedID)
	if err != nil {
		return err
	}
	if seed.OrgID != assessment.OrgID {
		return errors.Wrapf(shared.ErrNotFound, "seed %s does not belong to org %s", seed.ID, assessment.OrgID)
	}
	assessment.SeedSHAPinned = seed.LatestPinnedCommit

	if err := s.assessmentRepository.Create(nil, assessment); err != nil {
		return errors.Wrap(err, "could not create assessment")
	}
	slog.InfoContext(ctx, "assessment created", "assessmentID", assessment.ID, "seedSha", assessment.SeedSHAPinned)
	return nil
}

// Update applies patch. Durations are frozen once the first invitation
// exists, deadlines of sent invitations were computed from them. The row
// lock keeps a concurrent invitation batch from reading the old durations.
func (s *AssessmentService) Update(ctx context.Context, assessmentID uuid.UUID, patch shared.AssessmentPatch) (models.Assessment, error) {
	var assessment models.Assessment
	err := s.assessmentRepository.Transaction(func(tx shared.DB) error {
		var err error
		assessment, err = s.assessmentRepository.ReadForUpdate(tx, assessmentID)
		if err != nil {
			return err
		}

		if patch.ChangesDurations() {
			hasInvitations, err := s.assessmentRepository.HasInvitations(tx, assessmentID)
			if err != nil {
				return err
			}
			if hasInvitations {
				return errors.Wrapf(shared.ErrInvalidTransition, "assessment %s already has invitations", assessmentID)
			}
		}

		applyPatch(&assessment, patch)
		if assessment.TimeToStartSeconds <= 0 || assessment.TimeToCompleteSeconds <= 0 {
			return errors.Wrap(shared.ErrInvalidTransition, "time to start and time to complete must be positive")
		}

		if err := s.assessmentRepository.Save(tx, &assessment); err != nil {
			return errors.Wrap(err, "could not update assessment")
		}
		return nil
	})
	if err != nil {
		return models.Assessment{}, err
	}
	return assessment, nil
}

func applyPatch(assessment *models.Assessment, patch shared.AssessmentPatch) {
	if patch.Title != nil {
		assessment.Title = *patch.Title
	}
	if patch.Description != nil {
		assessment.Description = *patch.Description
	}
	if patch.Instructions != nil {
		assessment.Instructions = *patch.Instructions
	}
	if patch.TimeToStartSeconds != nil {
		assessment.TimeToStartSeconds = *patch.TimeToStartSeconds
	}
	if patch.TimeToCompleteSeconds != nil {
		assessment.TimeToCompleteSeconds = *patch.TimeToCompleteSeconds
	}
	if patch.Archived != nil {
		assessment.Archived = *patch.Archived
	}
}

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

package repositories

import (
	"github.com/afterquery/assessment-broker/database/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SubmissionRepository struct {
	db *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) *SubmissionRepository {
	return &SubmissionRepository{db: db}
}

func (r *SubmissionRepository) getDB(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

// CreateIfAbsent keeps the first submission of an invitation.
func (r *SubmissionRepository) CreateIfAbsent(tx *gorm.DB, submission *models.Submission) (models.Submission, error) {
	db := r.getDB(tx)
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "invitation_id"}},
		DoNothing: true,
	}).Create(submission).Error; err != nil {
		return models.Submission{}, err
	}

	var persisted models.Submission
	err := db.Where("invitation_id = ?", submission.InvitationID).First(&persisted).Error
	return persisted, notFound(err)
}

func (r *SubmissionRepository) ReadByInvitationID(invitationID uuid.UUID) (models.Submission, error) {
	var submission models.Submission
	err := r.db.Where("invitation_id = ?", invitationID).First(&submission).Error
	return submission, notFound(err)
}

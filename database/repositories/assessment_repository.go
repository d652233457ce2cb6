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
	"github.com/afterquery/assessment-broker/common"
	"github.com/afterquery/assessment-broker/database/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AssessmentRepository struct {
	db *gorm.DB
	common.Repository[uuid.UUID, models.Assessment, *gorm.DB]
}

func NewAssessmentRepository(db *gorm.DB) *AssessmentRepository {
	return &AssessmentRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.Assessment](db),
	}
}

func (r *AssessmentRepository) FindByOrgID(orgID uuid.UUID) ([]models.Assessment, error) {
	var assessments []models.Assessment
	err := r.db.Where("org_id = ? AND NOT archived", orgID).Order("created_at DESC").Find(&assessments).Error
	return assessments, err
}

func (r *AssessmentRepository) HasInvitations(tx *gorm.DB, assessmentID uuid.UUID) (bool, error) {
	var exists bool
	err := r.GetDB(tx).Raw("SELECT EXISTS (SELECT 1 FROM invitations WHERE assessment_id = ?)", assessmentID).Scan(&exists).Error
	return exists, err
}

// ReadForUpdate locks the assessment until tx ends. Invitation batches read
// it with ReadForShare, so a duration change and a batch never interleave.
func (r *AssessmentRepository) ReadForUpdate(tx *gorm.DB, id uuid.UUID) (models.Assessment, error) {
	return r.readLocked(tx, id, clause.LockingStrengthUpdate)
}

func (r *AssessmentRepository) ReadForShare(tx *gorm.DB, id uuid.UUID) (models.Assessment, error) {
	return r.readLocked(tx, id, clause.LockingStrengthShare)
}

func (r *AssessmentRepository) readLocked(tx *gorm.DB, id uuid.UUID, strength string) (models.Assessment, error) {
	var a models.Assessment
	err := r.GetDB(tx).Clauses(clause.Locking{Strength: strength}).First(&a, "id = ?", id).Error
	return a, notFound(err)
}

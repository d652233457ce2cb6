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
	"time"

	"github.com/afterquery/assessment-broker/database/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CandidateRepoRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.CandidateRepo]
}

func NewCandidateRepoRepository(db *gorm.DB) *CandidateRepoRepository {
	return &CandidateRepoRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.CandidateRepo](db),
	}
}

func (r *CandidateRepoRepository) ReadByInvitationID(invitationID uuid.UUID) (models.CandidateRepo, error) {
	var repo models.CandidateRepo
	err := r.db.Where("invitation_id = ?", invitationID).First(&repo).Error
	return repo, notFound(err)
}

func (r *CandidateRepoRepository) CreateIfAbsent(tx *gorm.DB, repo *models.CandidateRepo) (models.CandidateRepo, bool, error) {
	db := r.GetDB(tx)
	res := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "invitation_id"}},
		DoNothing: true,
	}).Create(repo)
	if res.Error != nil {
		return models.CandidateRepo{}, false, res.Error
	}

	var persisted models.CandidateRepo
	if err := db.Where("invitation_id = ?", repo.InvitationID).First(&persisted).Error; err != nil {
		return models.CandidateRepo{}, false, notFound(err)
	}
	return persisted, res.RowsAffected == 1, nil
}

func (r *CandidateRepoRepository) MarkArchived(tx *gorm.DB, id uuid.UUID, now time.Time) error {
	return r.GetDB(tx).Model(&models.CandidateRepo{}).
		Where("id = ? AND NOT archived", id).
		Updates(map[string]any{
			"archived":    true,
			"archived_at": now,
			"active":      false,
		}).Error
}

func (r *CandidateRepoRepository) Deactivate(tx *gorm.DB, invitationID uuid.UUID) error {
	return r.GetDB(tx).Model(&models.CandidateRepo{}).
		Where("invitation_id = ? AND active", invitationID).
		Update("active", false).Error
}

// FindUnarchivedSubmitted lists repositories of submitted invitations whose
// archiving on the hosting provider has not succeeded yet.
func (r *CandidateRepoRepository) FindUnarchivedSubmitted(limit int) ([]models.CandidateRepo, error) {
	var repos []models.CandidateRepo
	err := r.db.
		Joins("JOIN invitations ON invitations.id = candidate_repos.invitation_id").
		Where("invitations.status = ? AND NOT candidate_repos.archived", models.InvitationStatusSubmitted).
		Order("candidate_repos.created_at ASC").
		Limit(limit).
		Find(&repos).Error
	return repos, err
}

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

	"github.com/afterquery/assessment-broker/common"
	"github.com/afterquery/assessment-broker/database/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SeedRepository struct {
	db *gorm.DB
	common.Repository[uuid.UUID, models.Seed, *gorm.DB]
}

func NewSeedRepository(db *gorm.DB) *SeedRepository {
	return &SeedRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.Seed](db),
	}
}

func (r *SeedRepository) FindByOrgID(orgID uuid.UUID) ([]models.Seed, error) {
	var seeds []models.Seed
	err := r.db.Where("org_id = ?", orgID).Order("created_at ASC").Find(&seeds).Error
	return seeds, err
}

func (r *SeedRepository) UpdatePinnedCommit(tx *gorm.DB, seedID uuid.UUID, sha string, syncedAt time.Time) error {
	res := r.GetDB(tx).Model(&models.Seed{}).Where("id = ?", seedID).Updates(map[string]any{
		"latest_pinned_commit": sha,
		"last_synced_at":       syncedAt,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return notFound(gorm.ErrRecordNotFound)
	}
	return nil
}

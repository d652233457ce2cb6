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
)

type GithubAppInstallationRepository struct {
	db *gorm.DB
}

func NewGithubAppInstallationRepository(db *gorm.DB) *GithubAppInstallationRepository {
	return &GithubAppInstallationRepository{
		db: db,
	}
}

func (r *GithubAppInstallationRepository) Save(tx *gorm.DB, model *models.GithubAppInstallation) error {
	if tx == nil {
		tx = r.db
	}
	return tx.Save(model).Error
}

func (r *GithubAppInstallationRepository) Read(installationID int64) (models.GithubAppInstallation, error) {
	var model models.GithubAppInstallation
	err := r.db.Where("installation_id = ?", installationID).First(&model).Error
	return model, notFound(err)
}

func (r *GithubAppInstallationRepository) FindByOrgID(orgID uuid.UUID) ([]models.GithubAppInstallation, error) {
	var installations []models.GithubAppInstallation
	err := r.db.Where("org_id = ?", orgID).Order("created_at ASC").Find(&installations).Error
	return installations, err
}

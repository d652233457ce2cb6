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
)

type OrgRepository struct {
	db *gorm.DB
	common.Repository[uuid.UUID, models.Org, *gorm.DB]
}

func NewOrgRepository(db *gorm.DB) *OrgRepository {
	return &OrgRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.Org](db),
	}
}

func (g *OrgRepository) ReadBySlug(slug string) (models.Org, error) {
	var t models.Org
	err := g.db.Model(models.Org{}).Preload("GithubAppInstallations").Where("slug = ?", slug).First(&t).Error
	return t, notFound(err)
}

func (g *OrgRepository) ReadWithInstallations(id uuid.UUID) (models.Org, error) {
	var t models.Org
	err := g.db.Model(models.Org{}).Preload("GithubAppInstallations", func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at ASC")
	}).Where("id = ?", id).First(&t).Error
	return t, notFound(err)
}

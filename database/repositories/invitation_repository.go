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
	"github.com/afterquery/assessment-broker/statemachine"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InvitationRepository struct {
	db *gorm.DB
	common.Repository[uuid.UUID, models.Invitation, *gorm.DB]
}

func NewInvitationRepository(db *gorm.DB) *InvitationRepository {
	return &InvitationRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.Invitation](db),
	}
}

func (g *InvitationRepository) ReadByLinkTokenHash(hash string) (models.Invitation, error) {
	var t models.Invitation
	err := g.db.Where("start_link_token_hash = ?", hash).First(&t).Error
	return t, notFound(err)
}

func (g *InvitationRepository) ListByAssessment(assessmentID uuid.UUID) ([]models.Invitation, error) {
	var invitations []models.Invitation
	err := g.db.Where("assessment_id = ?", assessmentID).Order("created_at ASC").Find(&invitations).Error
	return invitations, err
}

// FindDue returns open invitations whose relevant deadline lies before now.
func (g *InvitationRepository) FindDue(now time.Time, limit int) ([]models.Invitation, error) {
	var invitations []models.Invitation
	err := g.db.Where(
		"(status IN ? AND start_deadline < ?) OR (status = ? AND complete_deadline < ?)",
		[]models.InvitationStatus{models.InvitationStatusSent, models.InvitationStatusAccepted}, now,
		models.InvitationStatusStarted, now,
	).Order("created_at ASC").Limit(limit).Find(&invitations).Error
	return invitations, err
}

func (g *InvitationRepository) TransitionToAccepted(tx *gorm.DB, id uuid.UUID, now time.Time) (bool, error) {
	res := g.GetDB(tx).Model(&models.Invitation{}).
		Where("id = ? AND status IN ? AND start_deadline > ?", id, statemachine.AllowedFrom(statemachine.TriggerAccept), now).
		Updates(map[string]any{
			"status":      statemachine.Target(statemachine.TriggerAccept),
			"accepted_at": now,
			"updated_at":  now,
		})
	return res.RowsAffected == 1, res.Error
}

// StartIfPending moves the invitation from prior to started. The complete
// deadline is only ever written by this update.
func (g *InvitationRepository) StartIfPending(tx *gorm.DB, id uuid.UUID, prior models.InvitationStatus, now, completeDeadline time.Time) (bool, error) {
	if !statemachine.Allows(prior, statemachine.TriggerStart) {
		return false, nil
	}
	res := g.GetDB(tx).Model(&models.Invitation{}).
		Where("id = ? AND status = ? AND start_deadline > ? AND complete_deadline IS NULL", id, prior, now).
		Updates(map[string]any{
			"status":            statemachine.Target(statemachine.TriggerStart),
			"started_at":        now,
			"complete_deadline": completeDeadline,
			"updated_at":        now,
		})
	return res.RowsAffected == 1, res.Error
}

// RevertStart undoes StartIfPending after a failed start.
func (g *InvitationRepository) RevertStart(tx *gorm.DB, id uuid.UUID, prior models.InvitationStatus) (bool, error) {
	res := g.GetDB(tx).Model(&models.Invitation{}).
		Where("id = ? AND status = ?", id, models.InvitationStatusStarted).
		Updates(map[string]any{
			"status":            prior,
			"started_at":        gorm.Expr("NULL"),
			"complete_deadline": gorm.Expr("NULL"),
		})
	return res.RowsAffected == 1, res.Error
}

// MarkSubmitted requires a started invitation within its complete deadline
// that still holds an unrevoked access token.
func (g *InvitationRepository) MarkSubmitted(tx *gorm.DB, id uuid.UUID, now time.Time) (bool, error) {
	res := g.GetDB(tx).Model(&models.Invitation{}).
		Where("id = ? AND status IN ? AND complete_deadline > ?", id, statemachine.AllowedFrom(statemachine.TriggerSubmit), now).
		Where("EXISTS (SELECT 1 FROM access_tokens t WHERE t.invitation_id = invitations.id AND NOT t.revoked)").
		Updates(map[string]any{
			"status":       statemachine.Target(statemachine.TriggerSubmit),
			"submitted_at": now,
			"updated_at":   now,
		})
	return res.RowsAffected == 1, res.Error
}

func (g *InvitationRepository) Expire(tx *gorm.DB, id uuid.UUID, prior models.InvitationStatus, now time.Time) (bool, error) {
	if !statemachine.Allows(prior, statemachine.TriggerExpire) {
		return false, nil
	}
	q := g.GetDB(tx).Model(&models.Invitation{}).Where("id = ? AND status = ?", id, prior)
	if prior == models.InvitationStatusStarted {
		q = q.Where("complete_deadline < ?", now)
	} else {
		q = q.Where("start_deadline < ?", now)
	}
	res := q.Updates(map[string]any{
		"status":     statemachine.Target(statemachine.TriggerExpire),
		"expired_at": now,
		"updated_at": now,
	})
	return res.RowsAffected == 1, res.Error
}

func (g *InvitationRepository) Revoke(tx *gorm.DB, id uuid.UUID, prior models.InvitationStatus, now time.Time) (bool, error) {
	if !statemachine.Allows(prior, statemachine.TriggerRevoke) {
		return false, nil
	}
	res := g.GetDB(tx).Model(&models.Invitation{}).
		Where("id = ? AND status = ?", id, prior).
		Updates(map[string]any{
			"status":     statemachine.Target(statemachine.TriggerRevoke),
			"revoked_at": now,
			"updated_at": now,
		})
	return res.RowsAffected == 1, res.Error
}

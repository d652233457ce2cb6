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
	"github.com/afterquery/assessment-broker/shared"
	"github.com/afterquery/assessment-broker/statemachine"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AccessTokenRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.AccessToken]
}

func NewAccessTokenRepository(db *gorm.DB) *AccessTokenRepository {
	return &AccessTokenRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.AccessToken](db),
	}
}

func (r *AccessTokenRepository) ReadByHash(hash string) (models.AccessToken, error) {
	var t models.AccessToken
	err := r.db.Where("opaque_token_hash = ?", hash).First(&t).Error
	return t, notFound(err)
}

func (r *AccessTokenRepository) FindLiveByInvitationID(invitationID uuid.UUID, now time.Time) (models.AccessToken, error) {
	var t models.AccessToken
	err := r.db.Where("invitation_id = ? AND NOT revoked AND expires_at > ?", invitationID, now).First(&t).Error
	return t, notFound(err)
}

// ReplaceLive revokes the live tokens of the invitation and stores token in
// their place. The invitation row is share locked first, so a concurrent
// revoke or expiry either commits before and fails the replace, or waits
// for it and then revokes the new token as well.
func (r *AccessTokenRepository) ReplaceLive(tx *gorm.DB, token *models.AccessToken, now time.Time) error {
	replace := func(tx *gorm.DB) error {
		var inv models.Invitation
		err := tx.Clauses(clause.Locking{Strength: clause.LockingStrengthShare}).
			Select("id", "status", "complete_deadline").
			First(&inv, "id = ?", token.InvitationID).Error
		if err != nil {
			return notFound(err)
		}
		if err := issuable(inv, now); err != nil {
			return err
		}
		if _, err := r.RevokeAllForInvitation(tx, token.InvitationID, now); err != nil {
			return err
		}
		return tx.Create(token).Error
	}
	if tx != nil {
		return replace(tx)
	}
	return r.db.Transaction(replace)
}

func issuable(inv models.Invitation, now time.Time) error {
	switch inv.Status {
	case models.InvitationStatusStarted:
	case models.InvitationStatusRevoked, models.InvitationStatusSubmitted:
		return errors.Wrapf(shared.ErrRevoked, "invitation %s is %s", inv.ID, inv.Status)
	case models.InvitationStatusExpired:
		return errors.Wrapf(shared.ErrExpired, "invitation %s is expired", inv.ID)
	default:
		return errors.Wrapf(shared.ErrInvalidTransition, "invitation %s is not started", inv.ID)
	}
	if inv.CompleteDeadline == nil || !now.Before(*inv.CompleteDeadline) {
		return errors.Wrapf(shared.ErrExpired, "invitation %s is past its complete deadline", inv.ID)
	}
	return nil
}

func (r *AccessTokenRepository) RevokeAllForInvitation(tx *gorm.DB, invitationID uuid.UUID, now time.Time) (int64, error) {
	res := r.GetDB(tx).Model(&models.AccessToken{}).
		Where("invitation_id = ? AND NOT revoked", invitationID).
		Updates(map[string]any{
			"revoked":    true,
			"revoked_at": now,
		})
	return res.RowsAffected, res.Error
}

// MarkUsedIfLive is the linearization point of an exchange. A revoke that
// committed before it always makes it report false.
func (r *AccessTokenRepository) MarkUsedIfLive(tx *gorm.DB, id uuid.UUID, now time.Time) (bool, error) {
	res := r.GetDB(tx).Model(&models.AccessToken{}).
		Where("id = ? AND NOT revoked AND expires_at > ?", id, now).
		Where("EXISTS (SELECT 1 FROM invitations i WHERE i.id = access_tokens.invitation_id AND i.status = ?)", models.InvitationStatusStarted).
		Update("last_used_at", now)
	return res.RowsAffected == 1, res.Error
}

func (r *AccessTokenRepository) RevokeLiveOfTerminalInvitations(tx *gorm.DB, now time.Time) (int64, error) {
	terminal := []models.InvitationStatus{}
	for _, trigger := range []statemachine.Trigger{statemachine.TriggerSubmit, statemachine.TriggerExpire, statemachine.TriggerRevoke} {
		terminal = append(terminal, statemachine.Target(trigger))
	}
	res := r.GetDB(tx).Model(&models.AccessToken{}).
		Where("NOT revoked").
		Where("invitation_id IN (SELECT id FROM invitations WHERE status IN ?)", terminal).
		Updates(map[string]any{
			"revoked":    true,
			"revoked_at": now,
		})
	return res.RowsAffected, res.Error
}

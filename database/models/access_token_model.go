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

package models

import (
	"time"

	"github.com/google/uuid"
)

type AccessScope string

const (
	AccessScopeClone     AccessScope = "clone"
	AccessScopePush      AccessScope = "push"
	AccessScopeClonePush AccessScope = "clone+push"
)

func (s AccessScope) AllowsPush() bool {
	return s == AccessScopePush || s == AccessScopeClonePush
}

// AccessToken is the persisted half of an opaque token. The raw token is
// handed to the candidate once and never stored.
type AccessToken struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	CreatedAt time.Time `json:"createdAt"`

	InvitationID   uuid.UUID `json:"invitationId" gorm:"type:uuid;not null;index"`
	InstallationID int64     `json:"installationId" gorm:"not null"`
	RepoID         int64     `json:"repoId" gorm:"not null"`
	RepoFullName   string    `json:"repoFullName" gorm:"type:text;not null"`

	OpaqueTokenHash string      `json:"-" gorm:"type:text;uniqueIndex;not null"`
	Scope           AccessScope `json:"scope" gorm:"type:text;not null"`

	ExpiresAt  time.Time  `json:"expiresAt" gorm:"not null"`
	Revoked    bool       `json:"revoked" gorm:"not null;default:false"`
	RevokedAt  *time.Time `json:"revokedAt"`
	LastUsedAt *time.Time `json:"lastUsedAt" gorm:"default:null"`
}

func (AccessToken) TableName() string {
	return "access_tokens"
}

func (t AccessToken) IsLive(now time.Time) bool {
	return !t.Revoked && now.Before(t.ExpiresAt)
}

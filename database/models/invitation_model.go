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

type InvitationStatus string

const (
	InvitationStatusSent      InvitationStatus = "sent"
	InvitationStatusAccepted  InvitationStatus = "accepted"
	InvitationStatusStarted   InvitationStatus = "started"
	InvitationStatusSubmitted InvitationStatus = "submitted"
	InvitationStatusExpired   InvitationStatus = "expired"
	InvitationStatusRevoked   InvitationStatus = "revoked"
)

type Invitation struct {
	Model
	AssessmentID uuid.UUID `json:"assessmentId" gorm:"type:uuid;not null;index"`

	CandidateEmail string `json:"candidateEmail" gorm:"type:text;not null"`
	CandidateName  string `json:"candidateName" gorm:"type:text"`

	Status InvitationStatus `json:"status" gorm:"type:text;not null;default:sent"`

	// only the hash of the start link token is stored
	StartLinkTokenHash string `json:"-" gorm:"type:text;uniqueIndex;not null"`

	StartDeadline time.Time `json:"startDeadline" gorm:"not null"`
	// CompleteDeadline stays nil until the invitation is started and is
	// never changed afterwards.
	CompleteDeadline *time.Time `json:"completeDeadline"`

	SentAt      time.Time  `json:"sentAt"`
	AcceptedAt  *time.Time `json:"acceptedAt"`
	StartedAt   *time.Time `json:"startedAt"`
	SubmittedAt *time.Time `json:"submittedAt"`
	ExpiredAt   *time.Time `json:"expiredAt"`
	RevokedAt   *time.Time `json:"revokedAt"`
}

func (Invitation) TableName() string {
	return "invitations"
}

// RelevantDeadline is the deadline the sweep compares against for the
// current status. The second return value is false for statuses without one.
func (i Invitation) RelevantDeadline() (time.Time, bool) {
	switch i.Status {
	case InvitationStatusSent, InvitationStatusAccepted:
		return i.StartDeadline, true
	case InvitationStatusStarted:
		if i.CompleteDeadline == nil {
			return time.Time{}, false
		}
		return *i.CompleteDeadline, true
	}
	return time.Time{}, false
}

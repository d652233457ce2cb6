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
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package dtos

import (
	"time"

	"github.com/afterquery/assessment-broker/database/models"
	"github.com/google/uuid"
)

type InvitationCandidateRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name"`
}

type InvitationBatchRequest struct {
	Candidates []InvitationCandidateRequest `json:"candidates" validate:"required,min=1,max=500,dive"`
}

type InvitationDTO struct {
	ID               uuid.UUID               `json:"id"`
	AssessmentID     uuid.UUID               `json:"assessmentId"`
	CandidateEmail   string                  `json:"candidateEmail"`
	CandidateName    string                  `json:"candidateName"`
	Status           models.InvitationStatus `json:"status"`
	StartDeadline    time.Time               `json:"startDeadline"`
	CompleteDeadline *time.Time              `json:"completeDeadline"`
	SentAt           time.Time               `json:"sentAt"`
	AcceptedAt       *time.Time              `json:"acceptedAt"`
	StartedAt        *time.Time              `json:"startedAt"`
	SubmittedAt      *time.Time              `json:"submittedAt"`
	ExpiredAt        *time.Time              `json:"expiredAt"`
	RevokedAt        *time.Time              `json:"revokedAt"`
}

// CreatedInvitationDTO carries the raw start link token. It is only returned
// once, right after creation.
type CreatedInvitationDTO struct {
	InvitationDTO
	StartLinkToken string `json:"startLinkToken"`
}

// CandidateInvitationDTO is what a candidate sees behind the start link.
type CandidateInvitationDTO struct {
	Status           models.InvitationStatus `json:"status"`
	CandidateName    string                  `json:"candidateName"`
	AssessmentTitle  string                  `json:"assessmentTitle"`
	Description      string                  `json:"description"`
	Instructions     string                  `json:"instructions"`
	TimeToComplete   string                  `json:"timeToComplete"`
	StartDeadline    time.Time               `json:"startDeadline"`
	CompleteDeadline *time.Time              `json:"completeDeadline"`
}

type StartResponse struct {
	// Token is empty when the invitation was already started.
	Token            string             `json:"token,omitempty"`
	TokenExpiresAt   time.Time          `json:"tokenExpiresAt"`
	Scope            models.AccessScope `json:"scope"`
	RepoFullName     string             `json:"repoFullName"`
	RepoHTMLURL      string             `json:"repoHtmlUrl"`
	CloneURL         string             `json:"cloneUrl"`
	CompleteDeadline *time.Time         `json:"completeDeadline"`
}

type SubmitRequest struct {
	FinalSHA string  `json:"finalSha" validate:"omitempty,hexadecimal,len=40"`
	VideoURL *string `json:"videoUrl" validate:"omitempty,url"`
	Notes    string  `json:"notes" validate:"max=10000"`
}

type SubmitResponse struct {
	FinalSHA     string    `json:"finalSha"`
	RepoFullName string    `json:"repoFullName"`
	RepoHTMLURL  string    `json:"repoHtmlUrl"`
	SubmittedAt  time.Time `json:"submittedAt"`
}

type AuditEventDTO struct {
	ID        int64                 `json:"id"`
	CreatedAt time.Time             `json:"createdAt"`
	Kind      models.AuditEventKind `json:"kind"`
	Actor     string                `json:"actor"`
	Meta      map[string]any        `json:"meta"`
}

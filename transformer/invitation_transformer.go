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

package transformer

import (
	"github.com/afterquery/assessment-broker/database/models"
	"github.com/afterquery/assessment-broker/dtos"
	"github.com/afterquery/assessment-broker/shared"
)

func InvitationCandidatesFromRequest(r dtos.InvitationBatchRequest) []shared.InvitationCandidate {
	candidates := make([]shared.InvitationCandidate, 0, len(r.Candidates))
	for _, c := range r.Candidates {
		candidates = append(candidates, shared.InvitationCandidate{Email: c.Email, Name: c.Name})
	}
	return candidates
}

func InvitationDTOFromModel(inv models.Invitation) dtos.InvitationDTO {
	return dtos.InvitationDTO{
		ID:               inv.ID,
		AssessmentID:     inv.AssessmentID,
		CandidateEmail:   inv.CandidateEmail,
		CandidateName:    inv.CandidateName,
		Status:           inv.Status,
		StartDeadline:    inv.StartDeadline,
		CompleteDeadline: inv.CompleteDeadline,
		SentAt:           inv.SentAt,
		AcceptedAt:       inv.AcceptedAt,
		StartedAt:        inv.StartedAt,
		SubmittedAt:      inv.SubmittedAt,
		ExpiredAt:        inv.ExpiredAt,
		RevokedAt:        inv.RevokedAt,
	}
}

func CreatedInvitationDTOFromResult(c shared.CreatedInvitation) dtos.CreatedInvitationDTO {
	return dtos.CreatedInvitationDTO{
		InvitationDTO:  InvitationDTOFromModel(c.Invitation),
		StartLinkToken: c.LinkToken,
	}
}

func CandidateInvitationDTO(inv models.Invitation, assessment models.Assessment) dtos.CandidateInvitationDTO {
	return dtos.CandidateInvitationDTO{
		Status:           inv.Status,
		CandidateName:    inv.CandidateName,
		AssessmentTitle:  assessment.Title,
		Description:      assessment.Description,
		Instructions:     assessment.Instructions,
		TimeToComplete:   assessment.TimeToComplete().String(),
		StartDeadline:    inv.StartDeadline,
		CompleteDeadline: inv.CompleteDeadline,
	}
}

func StartResponseFromResult(r shared.StartResult) dtos.StartResponse {
	return dtos.StartResponse{
		Token:            r.Token.Token,
		TokenExpiresAt:   r.Token.ExpiresAt,
		Scope:            r.Token.Scope,
		RepoFullName:     r.CandidateRepo.RepoFullName,
		RepoHTMLURL:      r.CandidateRepo.RepoHTMLURL,
		CloneURL:         r.CandidateRepo.CloneURL,
		CompleteDeadline: r.Invitation.CompleteDeadline,
	}
}

func SubmitInputFromRequest(r dtos.SubmitRequest) shared.SubmitInput {
	return shared.SubmitInput{
		FinalSHA: r.FinalSHA,
		VideoURL: r.VideoURL,
		Notes:    r.Notes,
	}
}

func SubmitResponseFromModel(s models.Submission, repo models.CandidateRepo) dtos.SubmitResponse {
	return dtos.SubmitResponse{
		FinalSHA:     s.FinalSHA,
		RepoFullName: repo.RepoFullName,
		RepoHTMLURL:  s.RepoHTMLURL,
		SubmittedAt:  s.CreatedAt,
	}
}

func AuditEventDTOFromModel(e models.AuditEvent) dtos.AuditEventDTO {
	return dtos.AuditEventDTO{
		ID:        e.ID,
		CreatedAt: e.CreatedAt,
		Kind:      e.Kind,
		Actor:     e.Actor,
		Meta:      e.Meta,
	}
}

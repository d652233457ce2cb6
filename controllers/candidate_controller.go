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

package controllers

import (
	"log/slog"

	"github.com/afterquery/assessment-broker/dtos"
	"github.com/afterquery/assessment-broker/shared"
	"github.com/afterquery/assessment-broker/transformer"
	"github.com/pkg/errors"
)

// CandidateController serves the start link. The invitation is resolved from
// the link token by the invitation middleware before any handler runs.
type CandidateController struct {
	invitationService       shared.InvitationService
	assessmentRepository    shared.AssessmentRepository
	candidateRepoRepository shared.CandidateRepoRepository
}

func NewCandidateController(
	invitationService shared.InvitationService,
	assessmentRepository shared.AssessmentRepository,
	candidateRepoRepository shared.CandidateRepoRepository,
) *CandidateController {
	return &CandidateController{
		invitationService:       invitationService,
		assessmentRepository:    assessmentRepository,
		candidateRepoRepository: candidateRepoRepository,
	}
}

// Accept marks the invitation as opened and returns what the candidate needs
// to decide when to start.
func (c *CandidateController) Accept(ctx shared.Context) error {
	inv := shared.GetInvitation(ctx)

	current, err := c.invitationService.Accept(ctx.Request().Context(), inv)
	if err != nil && !errors.Is(err, shared.ErrAlreadyTransitioned) {
		return candidateError(err, "could not accept invitation")
	}

	assessment, err := c.assessmentRepository.Read(current.AssessmentID)
	if err != nil {
		return candidateError(err, "could not read assessment")
	}

	return ctx.JSON(200, transformer.CandidateInvitationDTO(current, assessment))
}

func (c *CandidateController) Start(ctx shared.Context) error {
	inv := shared.GetInvitation(ctx)

	result, err := c.invitationService.Start(ctx.Request().Context(), inv)
	if err != nil {
		if errors.Is(err, shared.ErrAlreadyTransitioned) {
			result.Token.Token = ""
			return ctx.JSON(200, transformer.StartResponseFromResult(result))
		}
		return candidateError(err, "could not start assessment")
	}

	slog.Info("assessment started", "invitationID", inv.ID, "repo", result.CandidateRepo.RepoFullName)
	return ctx.JSON(201, transformer.StartResponseFromResult(result))
}

// Reissue hands out a fresh access token and revokes the previous one.
func (c *CandidateController) Reissue(ctx shared.Context) error {
	inv := shared.GetInvitation(ctx)

	result, err := c.invitationService.Reissue(ctx.Request().Context(), inv)
	if err != nil {
		return candidateError(err, "could not reissue access token")
	}

	return ctx.JSON(201, transformer.StartResponseFromResult(result))
}

func (c *CandidateController) Submit(ctx shared.Context) error {
	inv := shared.GetInvitation(ctx)

	var req dtos.SubmitRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	submission, err := c.invitationService.Submit(ctx.Request().Context(), inv, transformer.SubmitInputFromRequest(req))
	if err != nil && !errors.Is(err, shared.ErrAlreadyTransitioned) {
		return candidateError(err, "could not submit assessment")
	}

	repo, err := c.candidateRepoRepository.ReadByInvitationID(inv.ID)
	if err != nil {
		return candidateError(err, "could not read candidate repository")
	}

	return ctx.JSON(200, transformer.SubmitResponseFromModel(submission, repo))
}

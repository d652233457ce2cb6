package transformer

import (
	"testing"
	"time"

	"github.com/afterquery/assessment-broker/database/models"
	"github.com/afterquery/assessment-broker/dtos"
	"github.com/afterquery/assessment-broker/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestStartResponseFromResult(t *testing.T) {
	deadline := time.Date(2026, 3, 4, 9, 0, 0, 0, time.UTC)
	result := shared.StartResult{
		Invitation: models.Invitation{CompleteDeadline: &deadline},
		CandidateRepo: models.CandidateRepo{
			RepoFullName: "acme/afterquery-candidate-jane-1a2b3c4d",
			RepoHTMLURL:  "https://github.com/acme/afterquery-candidate-jane-1a2b3c4d",
			CloneURL:     "https://github.com/acme/afterquery-candidate-jane-1a2b3c4d.git",
		},
		Token: shared.IssuedToken{
			Token:     "aqt_secret",
			ExpiresAt: deadline.Add(-time.Hour),
			Scope:     models.AccessScopeClonePush,
		},
	}

	t.Run("should expose the raw token right after issuing", func(t *testing.T) {
		resp := StartResponseFromResult(result)
		assert.Equal(t, "aqt_secret", resp.Token)
		assert.Equal(t, &deadline, resp.CompleteDeadline)
		assert.Equal(t, "acme/afterquery-candidate-jane-1a2b3c4d", resp.RepoFullName)
		assert.Equal(t, models.AccessScopeClonePush, resp.Scope)
	})

	t.Run("should leave the token empty for an idempotent re-request", func(t *testing.T) {
		again := result
		again.Token.Token = ""
		resp := StartResponseFromResult(again)
		assert.Empty(t, resp.Token)
		assert.Equal(t, deadline.Add(-time.Hour), resp.TokenExpiresAt)
	})
}

func TestInvitationCandidatesFromRequest(t *testing.T) {
	t.Run("should keep the order of the request", func(t *testing.T) {
		candidates := InvitationCandidatesFromRequest(dtos.InvitationBatchRequest{
			Candidates: []dtos.InvitationCandidateRequest{
				{Email: "a@example.com", Name: "A"},
				{Email: "b@example.com"},
			},
		})
		assert.Equal(t, []shared.InvitationCandidate{
			{Email: "a@example.com", Name: "A"},
			{Email: "b@example.com"},
		}, candidates)
	})
}

func TestCandidateInvitationDTO(t *testing.T) {
	t.Run("should render the time to complete as a duration", func(t *testing.T) {
		dto := CandidateInvitationDTO(
			models.Invitation{Model: models.Model{ID: uuid.New()}, Status: models.InvitationStatusAccepted},
			models.Assessment{Title: "Todo API", TimeToCompleteSeconds: 2 * 24 * 3600},
		)
		assert.Equal(t, "48h0m0s", dto.TimeToComplete)
		assert.Equal(t, "Todo API", dto.AssessmentTitle)
	})
}

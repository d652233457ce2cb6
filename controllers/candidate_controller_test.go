package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/afterquery/assessment-broker/database/models"
	"github.com/afterquery/assessment-broker/dtos"
	"github.com/afterquery/assessment-broker/mocks"
	"github.com/afterquery/assessment-broker/shared"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func candidateContext(method, body string, inv models.Invitation) (shared.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, "/", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, "/", nil)
	}
	rec := httptest.NewRecorder()
	ctx := echo.New().NewContext(req, rec)
	shared.SetInvitation(ctx, inv)
	return ctx, rec
}

func requireHTTPError(t *testing.T, err error, code int) *echo.HTTPError {
	t.Helper()
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, code, he.Code)
	return he
}

func startResult(inv models.Invitation, token string) shared.StartResult {
	deadline := time.Date(2026, 3, 4, 9, 0, 0, 0, time.UTC)
	inv.Status = models.InvitationStatusStarted
	inv.CompleteDeadline = &deadline
	return shared.StartResult{
		Invitation: inv,
		CandidateRepo: models.CandidateRepo{
			InvitationID: inv.ID,
			RepoFullName: "acme/afterquery-candidate-jane-1a2b3c4d",
			CloneURL:     "https://github.com/acme/afterquery-candidate-jane-1a2b3c4d.git",
		},
		Token: shared.IssuedToken{Token: token, TokenID: uuid.New(), ExpiresAt: deadline, Scope: models.AccessScopeClonePush},
	}
}

func TestCandidateStart(t *testing.T) {
	inv := models.Invitation{Model: models.Model{ID: uuid.New()}, Status: models.InvitationStatusAccepted}

	t.Run("should return 201 together with the raw token", func(t *testing.T) {
		invitationService := mocks.NewInvitationService(t)
		invitationService.On("Start", mock.Anything, inv).Return(startResult(inv, "aqt_first"), nil)

		ctx, rec := candidateContext("POST", "", inv)
		err := NewCandidateController(invitationService, nil, nil).Start(ctx)
		require.NoError(t, err)
		assert.Equal(t, 201, rec.Code)

		var resp dtos.StartResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "aqt_first", resp.Token)
		assert.Equal(t, "acme/afterquery-candidate-jane-1a2b3c4d", resp.RepoFullName)
	})

	t.Run("should return 200 without a token when the invitation was already started", func(t *testing.T) {
		invitationService := mocks.NewInvitationService(t)
		invitationService.On("Start", mock.Anything, inv).Return(startResult(inv, "must-not-leak"), shared.ErrAlreadyTransitioned)

		ctx, rec := candidateContext("POST", "", inv)
		err := NewCandidateController(invitationService, nil, nil).Start(ctx)
		require.NoError(t, err)
		assert.Equal(t, 200, rec.Code)
		assert.NotContains(t, rec.Body.String(), "must-not-leak")
	})

	t.Run("should hide whether the invitation expired or was revoked", func(t *testing.T) {
		for _, cause := range []error{shared.ErrExpired, shared.ErrRevoked} {
			invitationService := mocks.NewInvitationService(t)
			invitationService.On("Start", mock.Anything, inv).Return(shared.StartResult{}, errors.Wrap(cause, "closed"))

			ctx, _ := candidateContext("POST", "", inv)
			err := NewCandidateController(invitationService, nil, nil).Start(ctx)
			he := requireHTTPError(t, err, 410)
			assert.Equal(t, accessWindowClosed, he.Message.(echo.Map)["message"])
		}
	})

	t.Run("should return 503 when the hosting provider is unavailable", func(t *testing.T) {
		invitationService := mocks.NewInvitationService(t)
		invitationService.On("Start", mock.Anything, inv).Return(shared.StartResult{}, shared.ErrUpstreamUnavailable)

		ctx, _ := candidateContext("POST", "", inv)
		err := NewCandidateController(invitationService, nil, nil).Start(ctx)
		requireHTTPError(t, err, 503)
	})
}

func TestCandidateAccept(t *testing.T) {
	inv := models.Invitation{Model: models.Model{ID: uuid.New()}, AssessmentID: uuid.New(), Status: models.InvitationStatusSent}

	t.Run("should show the assessment even when the invitation was accepted before", func(t *testing.T) {
		accepted := inv
		accepted.Status = models.InvitationStatusAccepted

		invitationService := mocks.NewInvitationService(t)
		invitationService.On("Accept", mock.Anything, inv).Return(accepted, shared.ErrAlreadyTransitioned)
		assessmentRepository := mocks.NewAssessmentRepository(t)
		assessmentRepository.On("Read", inv.AssessmentID).Return(models.Assessment{Title: "Todo API", TimeToCompleteSeconds: 3600}, nil)

		ctx, rec := candidateContext("GET", "", inv)
		err := NewCandidateController(invitationService, assessmentRepository, nil).Accept(ctx)
		require.NoError(t, err)
		assert.Equal(t, 200, rec.Code)

		var resp dtos.CandidateInvitationDTO
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Todo API", resp.AssessmentTitle)
		assert.Equal(t, models.InvitationStatusAccepted, resp.Status)
	})
}

func TestCandidateSubmit(t *testing.T) {
	inv := models.Invitation{Model: models.Model{ID: uuid.New()}, Status: models.InvitationStatusStarted}
	sha := strings.Repeat("a", 40)

	t.Run("should reject a malformed commit sha", func(t *testing.T) {
		ctx, _ := candidateContext("POST", `{"finalSha":"not-a-sha"}`, inv)
		err := NewCandidateController(nil, nil, nil).Submit(ctx)
		requireHTTPError(t, err, 400)
	})

	t.Run("should return the final sha and the repository", func(t *testing.T) {
		invitationService := mocks.NewInvitationService(t)
		invitationService.On("Submit", mock.Anything, inv, shared.SubmitInput{FinalSHA: sha, Notes: "done"}).
			Return(models.Submission{InvitationID: inv.ID, FinalSHA: sha}, nil)
		candidateRepoRepository := mocks.NewCandidateRepoRepository(t)
		candidateRepoRepository.On("ReadByInvitationID", inv.ID).Return(models.CandidateRepo{RepoFullName: "acme/repo"}, nil)

		ctx, rec := candidateContext("POST", `{"finalSha":"`+sha+`","notes":"done"}`, inv)
		err := NewCandidateController(invitationService, nil, candidateRepoRepository).Submit(ctx)
		require.NoError(t, err)

		var resp dtos.SubmitResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, sha, resp.FinalSHA)
		assert.Equal(t, "acme/repo", resp.RepoFullName)
	})

	t.Run("should return the first submission on a repeated submit", func(t *testing.T) {
		invitationService := mocks.NewInvitationService(t)
		invitationService.On("Submit", mock.Anything, inv, shared.SubmitInput{}).
			Return(models.Submission{InvitationID: inv.ID, FinalSHA: sha}, shared.ErrAlreadyTransitioned)
		candidateRepoRepository := mocks.NewCandidateRepoRepository(t)
		candidateRepoRepository.On("ReadByInvitationID", inv.ID).Return(models.CandidateRepo{RepoFullName: "acme/repo"}, nil)

		ctx, rec := candidateContext("POST", `{}`, inv)
		err := NewCandidateController(invitationService, nil, candidateRepoRepository).Submit(ctx)
		require.NoError(t, err)
		assert.Equal(t, 200, rec.Code)
		assert.Contains(t, rec.Body.String(), sha)
	})

	t.Run("should return 409 when the invitation was never started", func(t *testing.T) {
		invitationService := mocks.NewInvitationService(t)
		invitationService.On("Submit", mock.Anything, inv, shared.SubmitInput{}).
			Return(models.Submission{}, shared.ErrInvalidTransition)

		ctx, _ := candidateContext("POST", `{}`, inv)
		err := NewCandidateController(invitationService, nil, nil).Submit(ctx)
		requireHTTPError(t, err, 409)
	})
}

package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/afterquery/assessment-broker/config"
	"github.com/afterquery/assessment-broker/database/models"
	"github.com/afterquery/assessment-broker/mocks"
	"github.com/afterquery/assessment-broker/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type invitationServiceMocks struct {
	invitations    *mocks.InvitationRepository
	assessments    *mocks.AssessmentRepository
	candidateRepos *mocks.CandidateRepoRepository
	submissions    *mocks.SubmissionRepository
	tokens         *mocks.AccessTokenRepository
	seeds          *mocks.SeedService
	provisioner    *mocks.Provisioner
	broker         *mocks.CredentialBroker
	provider       *mocks.HostingProvider
	audit          *mocks.AuditService
	pubsub         *mocks.PubSubBroker
}

func newInvitationServiceForTest(t *testing.T, audit *mocks.AuditService) (*InvitationService, invitationServiceMocks) {
	m := invitationServiceMocks{
		invitations:    mocks.NewInvitationRepository(t),
		assessments:    mocks.NewAssessmentRepository(t),
		candidateRepos: mocks.NewCandidateRepoRepository(t),
		submissions:    mocks.NewSubmissionRepository(t),
		tokens:         mocks.NewAccessTokenRepository(t),
		seeds:          mocks.NewSeedService(t),
		provisioner:    mocks.NewProvisioner(t),
		broker:         mocks.NewCredentialBroker(t),
		provider:       mocks.NewHostingProvider(t),
		audit:          audit,
		pubsub:         mocks.NewPubSubBroker(t),
	}
	m.pubsub.On("Publish", mock.Anything, mock.Anything).Return(nil).Maybe()

	s := NewInvitationService(m.invitations, m.assessments, m.candidateRepos, m.submissions, m.tokens,
		m.seeds, m.provisioner, m.broker, m.provider, m.audit, m.pubsub,
		testHasher(t), fixedClock{testNow}, fastRetry(), config.Config{DefaultTokenTTL: 8 * time.Hour})
	s.startWait = 50 * time.Millisecond
	s.startWaitPoll = 5 * time.Millisecond
	return s, m
}

func runTransactions(m *mocks.InvitationRepository) {
	m.On("Transaction", mock.Anything).Return(func(fn func(shared.DB) error) error {
		return fn(&gormDBStub)
	})
}

func testAssessment() models.Assessment {
	return models.Assessment{
		Model:                 models.Model{ID: uuid.New()},
		SeedID:                uuid.New(),
		TimeToStartSeconds:    int64((24 * time.Hour).Seconds()),
		TimeToCompleteSeconds: int64((48 * time.Hour).Seconds()),
		SeedSHAPinned:         "0a1b2c3d",
	}
}

func pendingInvitation(a models.Assessment, status models.InvitationStatus, startDeadline time.Time) models.Invitation {
	return models.Invitation{
		Model:         models.Model{ID: uuid.New()},
		AssessmentID:  a.ID,
		Status:        status,
		StartDeadline: startDeadline,
	}
}

func TestStart(t *testing.T) {
	t.Run("should start, provision from the assessment pin and issue a token", func(t *testing.T) {
		s, m := newInvitationServiceForTest(t, permissiveAudit(t))
		a := testAssessment()
		inv := pendingInvitation(a, models.InvitationStatusAccepted, testNow.Add(time.Hour))
		repo := models.CandidateRepo{Model: models.Model{ID: uuid.New()}, InvitationID: inv.ID, RepoID: 42}

		m.invitations.On("Read", inv.ID).Return(inv, nil)
		m.assessments.On("Read", a.ID).Return(a, nil)
		m.invitations.On("StartIfPending", mock.Anything, inv.ID, models.InvitationStatusAccepted, testNow, testNow.Add(48*time.Hour)).Return(true, nil)
		m.seeds.On("Snapshot", a.SeedID).Return(models.SeedSnapshot{SeedID: a.SeedID, PinnedCommit: "ffffffff"}, nil)
		m.provisioner.On("Provision", mock.Anything, mock.MatchedBy(func(snapshot models.SeedSnapshot) bool {
			return snapshot.PinnedCommit == a.SeedSHAPinned
		}), mock.Anything).Return(repo, nil)
		m.broker.On("Issue", mock.Anything, mock.Anything, repo, 8*time.Hour).Return(shared.IssuedToken{Token: "aqt_raw", TokenID: uuid.New()}, nil)

		result, err := s.Start(context.Background(), inv)
		require.NoError(t, err)
		assert.Equal(t, models.InvitationStatusStarted, result.Invitation.Status)
		require.NotNil(t, result.Invitation.CompleteDeadline)
		assert.Equal(t, testNow.Add(48*time.Hour), *result.Invitation.CompleteDeadline)
		assert.Equal(t, "aqt_raw", result.Token.Token)
		assert.Equal(t, repo, result.CandidateRepo)
	})

	t.Run("should return the existing result without a raw token when already started", func(t *testing.T) {
		s, m := newInvitationServiceForTest(t, permissiveAudit(t))
		a := testAssessment()
		inv := pendingInvitation(a, models.InvitationStatusAccepted, testNow.Add(time.Hour))
		started := inv
		started.Status = models.InvitationStatusStarted
		repo := models.CandidateRepo{InvitationID: inv.ID, RepoID: 42}
		token := models.AccessToken{ID: uuid.New(), ExpiresAt: testNow.Add(time.Hour), Scope: models.AccessScopeClonePush}

		// the first read still sees accepted, the conditional update loses
		m.invitations.On("Read", inv.ID).Return(inv, nil).Once()
		m.invitations.On("Read", inv.ID).Return(started, nil)
		m.assessments.On("Read", a.ID).Return(a, nil)
		m.invitations.On("StartIfPending", mock.Anything, inv.ID, models.InvitationStatusAccepted, mock.Anything, mock.Anything).Return(false, nil)
		m.candidateRepos.On("ReadByInvitationID", inv.ID).Return(models.CandidateRepo{}, shared.ErrNotFound).Once()
		m.candidateRepos.On("ReadByInvitationID", inv.ID).Return(repo, nil).Once()
		m.tokens.On("FindLiveByInvitationID", inv.ID, testNow).Return(token, nil)

		result, err := s.Start(context.Background(), inv)
		assert.ErrorIs(t, err, shared.ErrAlreadyTransitioned)
		assert.Empty(t, result.Token.Token)
		assert.Equal(t, token.ID, result.Token.TokenID)
		assert.Equal(t, int64(42), result.CandidateRepo.RepoID)
		m.provisioner.AssertNotCalled(t, "Provision", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should roll back the start when the token can not be issued", func(t *testing.T) {
		audit := mocks.NewAuditService(t)
		audit.On("Record", mock.Anything, models.AuditStartRolledBack, models.ActorSystem, mock.Anything, mock.Anything).Return().Once()
		s, m := newInvitationServiceForTest(t, audit)
		a := testAssessment()
		inv := pendingInvitation(a, models.InvitationStatusSent, testNow.Add(time.Hour))
		repo := models.CandidateRepo{InvitationID: inv.ID}

		m.invitations.On("Read", inv.ID).Return(inv, nil)
		m.assessments.On("Read", a.ID).Return(a, nil)
		m.invitations.On("StartIfPending", mock.Anything, inv.ID, models.InvitationStatusSent, mock.Anything, mock.Anything).Return(true, nil)
		m.seeds.On("Snapshot", a.SeedID).Return(models.SeedSnapshot{PinnedCommit: "ffffffff"}, nil)
		m.provisioner.On("Provision", mock.Anything, mock.Anything, mock.Anything).Return(repo, nil)
		m.broker.On("Issue", mock.Anything, mock.Anything, repo, mock.Anything).Return(shared.IssuedToken{}, errors.New("connection reset"))
		m.invitations.On("RevertStart", mock.Anything, inv.ID, models.InvitationStatusSent).Return(true, nil)

		_, err := s.Start(context.Background(), inv)
		assert.Error(t, err)
		m.broker.AssertNumberOfCalls(t, "Issue", 3)
		m.invitations.AssertCalled(t, "RevertStart", mock.Anything, inv.ID, models.InvitationStatusSent)
	})

	t.Run("should take over the start when the winner rolled back", func(t *testing.T) {
		s, m := newInvitationServiceForTest(t, permissiveAudit(t))
		a := testAssessment()
		inv := pendingInvitation(a, models.InvitationStatusAccepted, testNow.Add(time.Hour))
		started := inv
		started.Status = models.InvitationStatusStarted
		repo := models.CandidateRepo{Model: models.Model{ID: uuid.New()}, InvitationID: inv.ID, RepoID: 42}

		// the winner's repository survives its rollback
		m.invitations.On("Read", inv.ID).Return(started, nil).Once()
		m.candidateRepos.On("ReadByInvitationID", inv.ID).Return(repo, nil).Once()
		m.invitations.On("Read", inv.ID).Return(inv, nil)
		m.assessments.On("Read", a.ID).Return(a, nil)
		m.invitations.On("StartIfPending", mock.Anything, inv.ID, models.InvitationStatusAccepted, testNow, testNow.Add(48*time.Hour)).Return(true, nil)
		m.seeds.On("Snapshot", a.SeedID).Return(models.SeedSnapshot{SeedID: a.SeedID}, nil)
		m.provisioner.On("Provision", mock.Anything, mock.Anything, mock.Anything).Return(repo, nil)
		m.broker.On("Issue", mock.Anything, mock.Anything, repo, 8*time.Hour).Return(shared.IssuedToken{Token: "aqt_raw", TokenID: uuid.New()}, nil)

		result, err := s.Start(context.Background(), inv)
		require.NoError(t, err)
		assert.Equal(t, "aqt_raw", result.Token.Token)
		assert.Equal(t, models.InvitationStatusStarted, result.Invitation.Status)
		m.tokens.AssertNotCalled(t, "FindLiveByInvitationID", mock.Anything, mock.Anything)
	})

	t.Run("should report a revoke that landed while waiting for the winner", func(t *testing.T) {
		s, m := newInvitationServiceForTest(t, permissiveAudit(t))
		inv := pendingInvitation(testAssessment(), models.InvitationStatusStarted, testNow.Add(time.Hour))
		revoked := inv
		revoked.Status = models.InvitationStatusRevoked

		m.invitations.On("Read", inv.ID).Return(inv, nil).Once()
		m.candidateRepos.On("ReadByInvitationID", inv.ID).Return(models.CandidateRepo{InvitationID: inv.ID}, nil)
		m.invitations.On("Read", inv.ID).Return(revoked, nil).Once()

		_, err := s.Start(context.Background(), inv)
		assert.ErrorIs(t, err, shared.ErrRevoked)
		m.tokens.AssertNotCalled(t, "FindLiveByInvitationID", mock.Anything, mock.Anything)
	})

	t.Run("should not hand out a token when a revoke landed during provisioning", func(t *testing.T) {
		audit := mocks.NewAuditService(t)
		s, m := newInvitationServiceForTest(t, audit)
		a := testAssessment()
		inv := pendingInvitation(a, models.InvitationStatusSent, testNow.Add(time.Hour))
		repo := models.CandidateRepo{InvitationID: inv.ID, RepoID: 42}

		m.invitations.On("Read", inv.ID).Return(inv, nil)
		m.assessments.On("Read", a.ID).Return(a, nil)
		m.invitations.On("StartIfPending", mock.Anything, inv.ID, models.InvitationStatusSent, mock.Anything, mock.Anything).Return(true, nil)
		m.seeds.On("Snapshot", a.SeedID).Return(models.SeedSnapshot{PinnedCommit: "ffffffff"}, nil)
		m.provisioner.On("Provision", mock.Anything, mock.Anything, mock.Anything).Return(repo, nil)
		m.broker.On("Issue", mock.Anything, mock.Anything, repo, mock.Anything).
			Return(shared.IssuedToken{}, fmt.Errorf("could not store access token: %w", shared.ErrRevoked))
		// the revoke already moved the invitation on, nothing to revert
		m.invitations.On("RevertStart", mock.Anything, inv.ID, models.InvitationStatusSent).Return(false, nil)

		result, err := s.Start(context.Background(), inv)
		assert.ErrorIs(t, err, shared.ErrRevoked)
		assert.Empty(t, result.Token.Token)
		m.broker.AssertNumberOfCalls(t, "Issue", 1)
		audit.AssertNotCalled(t, "Record", mock.Anything, models.AuditInvitationStarted, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should roll back when provisioning is exhausted", func(t *testing.T) {
		s, m := newInvitationServiceForTest(t, permissiveAudit(t))
		a := testAssessment()
		inv := pendingInvitation(a, models.InvitationStatusSent, testNow.Add(time.Hour))

		m.invitations.On("Read", inv.ID).Return(inv, nil)
		m.assessments.On("Read", a.ID).Return(a, nil)
		m.invitations.On("StartIfPending", mock.Anything, inv.ID, models.InvitationStatusSent, mock.Anything, mock.Anything).Return(true, nil)
		m.seeds.On("Snapshot", a.SeedID).Return(models.SeedSnapshot{PinnedCommit: "ffffffff"}, nil)
		m.provisioner.On("Provision", mock.Anything, mock.Anything, mock.Anything).Return(models.CandidateRepo{}, shared.ErrUpstreamUnavailable)
		m.invitations.On("RevertStart", mock.Anything, inv.ID, models.InvitationStatusSent).Return(true, nil)

		_, err := s.Start(context.Background(), inv)
		assert.ErrorIs(t, err, shared.ErrUpstreamUnavailable)
		m.broker.AssertNotCalled(t, "Issue", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should refuse to start after the start deadline", func(t *testing.T) {
		s, m := newInvitationServiceForTest(t, permissiveAudit(t))
		inv := pendingInvitation(testAssessment(), models.InvitationStatusSent, testNow.Add(-time.Second))
		m.invitations.On("Read", inv.ID).Return(inv, nil)

		_, err := s.Start(context.Background(), inv)
		assert.ErrorIs(t, err, shared.ErrExpired)
	})

	t.Run("should refuse to start a revoked invitation", func(t *testing.T) {
		s, m := newInvitationServiceForTest(t, permissiveAudit(t))
		inv := pendingInvitation(testAssessment(), models.InvitationStatusRevoked, testNow.Add(time.Hour))
		m.invitations.On("Read", inv.ID).Return(inv, nil)

		_, err := s.Start(context.Background(), inv)
		assert.ErrorIs(t, err, shared.ErrRevoked)
	})

	t.Run("should report a provisioning in progress as upstream unavailable", func(t *testing.T) {
		s, m := newInvitationServiceForTest(t, permissiveAudit(t))
		inv := pendingInvitation(testAssessment(), models.InvitationStatusStarted, testNow.Add(time.Hour))
		m.invitations.On("Read", inv.ID).Return(inv, nil)
		m.candidateRepos.On("ReadByInvitationID", inv.ID).Return(models.CandidateRepo{}, shared.ErrNotFound)

		_, err := s.Start(context.Background(), inv)
		assert.ErrorIs(t, err, shared.ErrUpstreamUnavailable)
	})
}

func TestAccept(t *testing.T) {
	t.Run("should accept a sent invitation", func(t *testing.T) {
		s, m := newInvitationServiceForTest(t, permissiveAudit(t))
		inv := pendingInvitation(testAssessment(), models.InvitationStatusSent, testNow.Add(time.Hour))
		accepted := inv
		accepted.Status = models.InvitationStatusAccepted

		m.invitations.On("TransitionToAccepted", mock.Anything, inv.ID, testNow).Return(true, nil)
		m.invitations.On("Read", inv.ID).Return(accepted, nil)

		got, err := s.Accept(context.Background(), inv)
		require.NoError(t, err)
		assert.Equal(t, models.InvitationStatusAccepted, got.Status)
	})

	t.Run("should treat a repeated accept as already transitioned", func(t *testing.T) {
		s, m := newInvitationServiceForTest(t, permissiveAudit(t))
		inv := pendingInvitation(testAssessment(), models.InvitationStatusAccepted, testNow.Add(time.Hour))

		m.invitations.On("TransitionToAccepted", mock.Anything, inv.ID, testNow).Return(false, nil)
		m.invitations.On("Read", inv.ID).Return(inv, nil)

		_, err := s.Accept(context.Background(), inv)
		assert.ErrorIs(t, err, shared.ErrAlreadyTransitioned)
	})

	t.Run("should report a missed start deadline as expired", func(t *testing.T) {
		s, m := newInvitationServiceForTest(t, permissiveAudit(t))
		inv := pendingInvitation(testAssessment(), models.InvitationStatusSent, testNow.Add(-time.Hour))

		m.invitations.On("TransitionToAccepted", mock.Anything, inv.ID, testNow).Return(false, nil)
		m.invitations.On("Read", inv.ID).Return(inv, nil)

		_, err := s.Accept(context.Background(), inv)
		assert.ErrorIs(t, err, shared.ErrExpired)
	})
}

func TestReissue(t *testing.T) {
	t.Run("should replace the token of a started invitation", func(t *testing.T) {
		s, m := newInvitationServiceForTest(t, permissiveAudit(t))
		inv := startedInvitation(testNow.Add(time.Hour))
		repo := models.CandidateRepo{InvitationID: inv.ID, RepoID: 42}
		m.invitations.On("Read", inv.ID).Return(inv, nil)
		m.candidateRepos.On("ReadByInvitationID", inv.ID).Return(repo, nil)
		m.broker.On("Issue", mock.Anything, inv, repo, 8*time.Hour).Return(shared.IssuedToken{Token: "aqt_fresh"}, nil)

		result, err := s.Reissue(context.Background(), inv)
		require.NoError(t, err)
		assert.Equal(t, "aqt_fresh", result.Token.Token)
	})

	t.Run("should surface a revoke which committed before the token was stored", func(t *testing.T) {
		s, m := newInvitationServiceForTest(t, permissiveAudit(t))
		inv := startedInvitation(testNow.Add(time.Hour))
		repo := models.CandidateRepo{InvitationID: inv.ID, RepoID: 42}
		m.invitations.On("Read", inv.ID).Return(inv, nil)
		m.candidateRepos.On("ReadByInvitationID", inv.ID).Return(repo, nil)
		m.broker.On("Issue", mock.Anything, inv, repo, mock.Anything).
			Return(shared.IssuedToken{}, fmt.Errorf("could not store access token: %w", shared.ErrRevoked))

		result, err := s.Reissue(context.Background(), inv)
		assert.ErrorIs(t, err, shared.ErrRevoked)
		assert.Empty(t, result.Token.Token)
		m.broker.AssertNumberOfCalls(t, "Issue", 1)
	})

	t.Run("should refuse to reissue for a submitted invitation", func(t *testing.T) {
		s, m := newInvitationServiceForTest(t, permissiveAudit(t))
		inv := startedInvitation(testNow.Add(time.Hour))
		inv.Status = models.InvitationStatusSubmitted
		m.invitations.On("Read", inv.ID).Return(inv, nil)

		_, err := s.Reissue(context.Background(), inv)
		assert.ErrorIs(t, err, shared.ErrInvalidTransition)
		m.broker.AssertNotCalled(t, "Issue", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestSubmit(t *testing.T) {
	setupStarted := func(t *testing.T) (*InvitationService, invitationServiceMocks, models.Invitation, models.CandidateRepo) {
		s, m := newInvitationServiceForTest(t, permissiveAudit(t))
		inv := startedInvitation(testNow.Add(time.Hour))
		repo := models.CandidateRepo{
			Model:          models.Model{ID: uuid.New()},
			InvitationID:   inv.ID,
			InstallationID: 7,
			RepoFullName:   "acme/afterquery-candidate-jane-1234abcd",
			DefaultBranch:  "main",
		}
		m.invitations.On("Read", inv.ID).Return(inv, nil).Once()
		m.candidateRepos.On("ReadByInvitationID", inv.ID).Return(repo, nil)
		return s, m, inv, repo
	}

	t.Run("should submit, revoke tokens and archive the repository", func(t *testing.T) {
		s, m, inv, repo := setupStarted(t)
		runTransactions(m.invitations)

		m.provider.On("GetBranchHead", mock.Anything, int64(7), "acme", "afterquery-candidate-jane-1234abcd", "main").Return("cafebabe", nil)
		m.invitations.On("MarkSubmitted", mock.Anything, inv.ID, testNow).Return(true, nil)
		m.submissions.On("CreateIfAbsent", mock.Anything, mock.MatchedBy(func(sub *models.Submission) bool {
			return sub.FinalSHA == "cafebabe"
		})).Return(models.Submission{InvitationID: inv.ID, FinalSHA: "cafebabe"}, nil)
		m.broker.On("Revoke", mock.Anything, mock.Anything, inv.ID).Return(int64(1), nil)
		m.candidateRepos.On("Deactivate", mock.Anything, inv.ID).Return(nil)
		m.provider.On("ArchiveRepository", mock.Anything, int64(7), "acme", "afterquery-candidate-jane-1234abcd").Return(nil)
		m.candidateRepos.On("MarkArchived", mock.Anything, repo.ID, testNow).Return(nil)

		submission, err := s.Submit(context.Background(), inv, shared.SubmitInput{})
		require.NoError(t, err)
		assert.Equal(t, "cafebabe", submission.FinalSHA)
	})

	t.Run("should keep the submission when archiving fails", func(t *testing.T) {
		s, m, inv, _ := setupStarted(t)
		runTransactions(m.invitations)

		m.invitations.On("MarkSubmitted", mock.Anything, inv.ID, testNow).Return(true, nil)
		m.submissions.On("CreateIfAbsent", mock.Anything, mock.Anything).Return(models.Submission{FinalSHA: "0123abcd"}, nil)
		m.broker.On("Revoke", mock.Anything, mock.Anything, inv.ID).Return(int64(1), nil)
		m.candidateRepos.On("Deactivate", mock.Anything, inv.ID).Return(nil)
		m.provider.On("ArchiveRepository", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(shared.ErrUpstreamUnavailable)

		submission, err := s.Submit(context.Background(), inv, shared.SubmitInput{FinalSHA: "0123abcd"})
		require.NoError(t, err)
		assert.Equal(t, "0123abcd", submission.FinalSHA)
		m.provider.AssertNumberOfCalls(t, "ArchiveRepository", 3)
	})

	t.Run("should report a revoked token when the conditional update is rejected", func(t *testing.T) {
		s, m, inv, _ := setupStarted(t)
		runTransactions(m.invitations)

		m.invitations.On("MarkSubmitted", mock.Anything, inv.ID, testNow).Return(false, nil)
		m.invitations.On("Read", inv.ID).Return(inv, nil).Once()

		_, err := s.Submit(context.Background(), inv, shared.SubmitInput{FinalSHA: "0123abcd"})
		assert.ErrorIs(t, err, shared.ErrRevoked)
		m.submissions.AssertNotCalled(t, "CreateIfAbsent", mock.Anything, mock.Anything)
	})

	t.Run("should return the existing submission on a repeated submit", func(t *testing.T) {
		s, m := newInvitationServiceForTest(t, permissiveAudit(t))
		inv := startedInvitation(testNow.Add(time.Hour))
		inv.Status = models.InvitationStatusSubmitted
		m.invitations.On("Read", inv.ID).Return(inv, nil)
		m.submissions.On("ReadByInvitationID", inv.ID).Return(models.Submission{FinalSHA: "0123abcd"}, nil)

		submission, err := s.Submit(context.Background(), inv, shared.SubmitInput{})
		assert.ErrorIs(t, err, shared.ErrAlreadyTransitioned)
		assert.Equal(t, "0123abcd", submission.FinalSHA)
	})

	t.Run("should refuse to submit an expired invitation", func(t *testing.T) {
		s, m := newInvitationServiceForTest(t, permissiveAudit(t))
		inv := startedInvitation(testNow.Add(-time.Hour))
		inv.Status = models.InvitationStatusExpired
		m.invitations.On("Read", inv.ID).Return(inv, nil)

		_, err := s.Submit(context.Background(), inv, shared.SubmitInput{})
		assert.ErrorIs(t, err, shared.ErrExpired)
	})
}

func TestRevoke(t *testing.T) {
	t.Run("should revoke a started invitation together with its tokens", func(t *testing.T) {
		s, m := newInvitationServiceForTest(t, permissiveAudit(t))
		inv := startedInvitation(testNow.Add(time.Hour))
		revoked := inv
		revoked.Status = models.InvitationStatusRevoked
		runTransactions(m.invitations)

		m.invitations.On("Read", inv.ID).Return(inv, nil).Once()
		m.invitations.On("Revoke", mock.Anything, inv.ID, models.InvitationStatusStarted, testNow).Return(true, nil)
		m.broker.On("Revoke", mock.Anything, mock.Anything, inv.ID).Return(int64(1), nil)
		m.candidateRepos.On("Deactivate", mock.Anything, inv.ID).Return(nil)
		m.invitations.On("Read", inv.ID).Return(revoked, nil).Once()

		got, err := s.Revoke(context.Background(), inv.ID)
		require.NoError(t, err)
		assert.Equal(t, models.InvitationStatusRevoked, got.Status)
		m.provider.AssertNotCalled(t, "ArchiveRepository", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should be idempotent", func(t *testing.T) {
		s, m := newInvitationServiceForTest(t, permissiveAudit(t))
		inv := startedInvitation(testNow.Add(time.Hour))
		inv.Status = models.InvitationStatusRevoked
		m.invitations.On("Read", inv.ID).Return(inv, nil)

		_, err := s.Revoke(context.Background(), inv.ID)
		assert.ErrorIs(t, err, shared.ErrAlreadyTransitioned)
	})

	t.Run("should not revoke a submitted invitation", func(t *testing.T) {
		s, m := newInvitationServiceForTest(t, permissiveAudit(t))
		inv := startedInvitation(testNow.Add(time.Hour))
		inv.Status = models.InvitationStatusSubmitted
		m.invitations.On("Read", inv.ID).Return(inv, nil)

		_, err := s.Revoke(context.Background(), inv.ID)
		assert.ErrorIs(t, err, shared.ErrInvalidTransition)
	})
}

func TestExpire(t *testing.T) {
	t.Run("should leave tokens alone when another transition won", func(t *testing.T) {
		s, m := newInvitationServiceForTest(t, permissiveAudit(t))
		inv := startedInvitation(testNow.Add(-time.Minute))
		runTransactions(m.invitations)
		m.invitations.On("Expire", mock.Anything, inv.ID, models.InvitationStatusStarted, testNow).Return(false, nil)

		expired, err := s.Expire(context.Background(), inv)
		require.NoError(t, err)
		assert.False(t, expired)
		m.broker.AssertNotCalled(t, "Revoke", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should revoke tokens of an expired invitation", func(t *testing.T) {
		s, m := newInvitationServiceForTest(t, permissiveAudit(t))
		inv := startedInvitation(testNow.Add(-time.Minute))
		runTransactions(m.invitations)
		m.invitations.On("Expire", mock.Anything, inv.ID, models.InvitationStatusStarted, testNow).Return(true, nil)
		m.broker.On("Revoke", mock.Anything, mock.Anything, inv.ID).Return(int64(1), nil)
		m.candidateRepos.On("Deactivate", mock.Anything, inv.ID).Return(nil)

		expired, err := s.Expire(context.Background(), inv)
		require.NoError(t, err)
		assert.True(t, expired)
	})
}

func TestCreateBatch(t *testing.T) {
	t.Run("should reject an invalid email before writing anything", func(t *testing.T) {
		s, m := newInvitationServiceForTest(t, permissiveAudit(t))
		a := testAssessment()
		m.assessments.On("Read", a.ID).Return(a, nil)

		_, err := s.CreateBatch(context.Background(), a.ID, []shared.InvitationCandidate{{Email: "jane@example.com"}, {Email: "not-an-email"}})
		assert.Error(t, err)
		m.invitations.AssertNotCalled(t, "Transaction", mock.Anything)
	})

	t.Run("should store only the hash of the link token", func(t *testing.T) {
		s, m := newInvitationServiceForTest(t, permissiveAudit(t))
		a := testAssessment()
		m.assessments.On("Read", a.ID).Return(a, nil)
		runTransactions(m.invitations)
		m.assessments.On("ReadForShare", &gormDBStub, a.ID).Return(a, nil)
		m.invitations.On("Create", mock.Anything, mock.Anything).Return(nil)

		created, err := s.CreateBatch(context.Background(), a.ID, []shared.InvitationCandidate{{Email: "jane@example.com", Name: "Jane"}})
		require.NoError(t, err)
		require.Len(t, created, 1)

		inv := created[0].Invitation
		assert.Equal(t, models.InvitationStatusSent, inv.Status)
		assert.Equal(t, testNow.Add(24*time.Hour), inv.StartDeadline)
		assert.Nil(t, inv.CompleteDeadline)
		assert.Contains(t, created[0].LinkToken, "aqi_")
		assert.Equal(t, testHasher(t).Hash(created[0].LinkToken), inv.StartLinkTokenHash)
	})
}

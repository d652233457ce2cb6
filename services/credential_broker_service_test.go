package services

import (
	"context"
	"testing"
	"time"

	"github.com/afterquery/assessment-broker/database/models"
	"github.com/afterquery/assessment-broker/mocks"
	"github.com/afterquery/assessment-broker/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func startedInvitation(completeDeadline time.Time) models.Invitation {
	startedAt := completeDeadline.Add(-48 * time.Hour)
	return models.Invitation{
		Model:            models.Model{ID: uuid.New()},
		Status:           models.InvitationStatusStarted,
		StartDeadline:    startedAt.Add(time.Hour),
		StartedAt:        &startedAt,
		CompleteDeadline: &completeDeadline,
	}
}

func TestIssue(t *testing.T) {
	repo := models.CandidateRepo{InstallationID: 7, RepoID: 42, RepoFullName: "acme/afterquery-candidate-jane-1234abcd"}

	t.Run("should cap the expiry at the complete deadline", func(t *testing.T) {
		inv := startedInvitation(testNow.Add(2 * time.Hour))
		tokens := mocks.NewAccessTokenRepository(t)
		var stored *models.AccessToken
		tokens.On("ReplaceLive", mock.Anything, mock.Anything, testNow).Run(func(args mock.Arguments) {
			stored = args.Get(1).(*models.AccessToken)
		}).Return(nil)

		s := NewCredentialBrokerService(tokens, nil, nil, permissiveAudit(t), testHasher(t), fixedClock{testNow}, fastRetry())
		issued, err := s.Issue(context.Background(), inv, repo, 8*time.Hour)
		require.NoError(t, err)

		assert.Equal(t, testNow.Add(2*time.Hour), issued.ExpiresAt)
		assert.Equal(t, models.AccessScopeClonePush, issued.Scope)
		assert.Contains(t, issued.Token, "aqt_")
		require.NotNil(t, stored)
		assert.Equal(t, int64(42), stored.RepoID)
		assert.NotContains(t, stored.OpaqueTokenHash, issued.Token)
		assert.True(t, testHasher(t).Matches(issued.Token, stored.OpaqueTokenHash))
	})

	t.Run("should use the ttl when it ends before the complete deadline", func(t *testing.T) {
		inv := startedInvitation(testNow.Add(48 * time.Hour))
		tokens := mocks.NewAccessTokenRepository(t)
		tokens.On("ReplaceLive", mock.Anything, mock.Anything, testNow).Return(nil)

		s := NewCredentialBrokerService(tokens, nil, nil, permissiveAudit(t), testHasher(t), fixedClock{testNow}, fastRetry())
		issued, err := s.Issue(context.Background(), inv, repo, 8*time.Hour)
		require.NoError(t, err)
		assert.Equal(t, testNow.Add(8*time.Hour), issued.ExpiresAt)
	})

	t.Run("should refuse to issue after the complete deadline", func(t *testing.T) {
		inv := startedInvitation(testNow.Add(-time.Minute))
		tokens := mocks.NewAccessTokenRepository(t)

		s := NewCredentialBrokerService(tokens, nil, nil, permissiveAudit(t), testHasher(t), fixedClock{testNow}, fastRetry())
		_, err := s.Issue(context.Background(), inv, repo, 8*time.Hour)
		assert.ErrorIs(t, err, shared.ErrExpired)
	})

	t.Run("should refuse to issue for an invitation that was never started", func(t *testing.T) {
		s := NewCredentialBrokerService(mocks.NewAccessTokenRepository(t), nil, nil, permissiveAudit(t), testHasher(t), fixedClock{testNow}, fastRetry())
		_, err := s.Issue(context.Background(), models.Invitation{Status: models.InvitationStatusSent}, repo, time.Hour)
		assert.ErrorIs(t, err, shared.ErrInvalidTransition)
	})
}

func TestExchange(t *testing.T) {
	const raw = "aqt_c2VjcmV0LXRva2VuLXZhbHVlLWZvci10ZXN0cy0xMjM0NTY"
	hasher := func(t *testing.T) string { return testHasher(t).Hash(raw) }

	setup := func(t *testing.T, token models.AccessToken, inv models.Invitation) (*mocks.AccessTokenRepository, *mocks.InvitationRepository, *mocks.HostingProvider, *CredentialBrokerService) {
		tokens := mocks.NewAccessTokenRepository(t)
		invitations := mocks.NewInvitationRepository(t)
		provider := mocks.NewHostingProvider(t)
		tokens.On("ReadByHash", hasher(t)).Return(token, nil)
		invitations.On("Read", inv.ID).Return(inv, nil).Maybe()
		return tokens, invitations, provider, NewCredentialBrokerService(tokens, invitations, provider, permissiveAudit(t), testHasher(t), fixedClock{testNow}, fastRetry())
	}

	liveToken := func(t *testing.T, inv models.Invitation) models.AccessToken {
		return models.AccessToken{
			ID:              uuid.New(),
			InvitationID:    inv.ID,
			InstallationID:  7,
			RepoID:          42,
			OpaqueTokenHash: hasher(t),
			Scope:           models.AccessScopeClonePush,
			ExpiresAt:       testNow.Add(time.Hour),
		}
	}

	t.Run("should return not found for an unknown token", func(t *testing.T) {
		tokens := mocks.NewAccessTokenRepository(t)
		tokens.On("ReadByHash", mock.Anything).Return(models.AccessToken{}, shared.ErrNotFound)

		s := NewCredentialBrokerService(tokens, nil, nil, permissiveAudit(t), testHasher(t), fixedClock{testNow}, fastRetry())
		_, err := s.Exchange(context.Background(), "aqt_unknown")
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("should mint a credential for exactly the bound repository", func(t *testing.T) {
		inv := startedInvitation(testNow.Add(24 * time.Hour))
		token := liveToken(t, inv)
		tokens, _, provider, s := setup(t, token, inv)

		provider.On("MintRepositoryCredential", mock.Anything, int64(7), int64(42), models.AccessScopeClonePush).
			Return(shared.DelegatedCredential{Username: "x-access-token", Token: "ghs_minted", RepositoryID: 42, ExpiresAt: testNow.Add(time.Hour)}, nil)
		tokens.On("MarkUsedIfLive", mock.Anything, token.ID, testNow).Return(true, nil)

		credential, err := s.Exchange(context.Background(), raw)
		require.NoError(t, err)
		assert.Equal(t, "ghs_minted", credential.Token)
		assert.Equal(t, "x-access-token", credential.Username)
	})

	t.Run("should deny a revoked token without contacting the provider", func(t *testing.T) {
		inv := startedInvitation(testNow.Add(24 * time.Hour))
		token := liveToken(t, inv)
		token.Revoked = true
		_, _, provider, s := setup(t, token, inv)

		_, err := s.Exchange(context.Background(), raw)
		assert.ErrorIs(t, err, shared.ErrRevoked)
		provider.AssertNotCalled(t, "MintRepositoryCredential", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should deny a token of a revoked invitation", func(t *testing.T) {
		inv := startedInvitation(testNow.Add(24 * time.Hour))
		inv.Status = models.InvitationStatusRevoked
		_, _, _, s := setup(t, liveToken(t, inv), inv)

		_, err := s.Exchange(context.Background(), raw)
		assert.ErrorIs(t, err, shared.ErrRevoked)
	})

	t.Run("should report an expired token as expired", func(t *testing.T) {
		inv := startedInvitation(testNow.Add(24 * time.Hour))
		token := liveToken(t, inv)
		token.ExpiresAt = testNow
		_, _, _, s := setup(t, token, inv)

		_, err := s.Exchange(context.Background(), raw)
		assert.ErrorIs(t, err, shared.ErrExpired)
	})

	t.Run("should report tokens of a submitted invitation as revoked", func(t *testing.T) {
		inv := startedInvitation(testNow.Add(24 * time.Hour))
		inv.Status = models.InvitationStatusSubmitted
		token := liveToken(t, inv)
		token.Revoked = true
		_, _, _, s := setup(t, token, inv)

		_, err := s.Exchange(context.Background(), raw)
		assert.ErrorIs(t, err, shared.ErrRevoked)
	})

	t.Run("should report tokens of a swept invitation as expired", func(t *testing.T) {
		inv := startedInvitation(testNow.Add(-time.Minute))
		inv.Status = models.InvitationStatusExpired
		token := liveToken(t, inv)
		token.Revoked = true
		_, _, _, s := setup(t, token, inv)

		_, err := s.Exchange(context.Background(), raw)
		assert.ErrorIs(t, err, shared.ErrExpired)
	})

	t.Run("should revoke the minted credential when a revoke won the race", func(t *testing.T) {
		inv := startedInvitation(testNow.Add(24 * time.Hour))
		token := liveToken(t, inv)
		tokens, _, provider, s := setup(t, token, inv)

		provider.On("MintRepositoryCredential", mock.Anything, int64(7), int64(42), models.AccessScopeClonePush).
			Return(shared.DelegatedCredential{Token: "ghs_minted", RepositoryID: 42}, nil)
		tokens.On("MarkUsedIfLive", mock.Anything, token.ID, testNow).Return(false, nil)
		revoked := token
		revoked.Revoked = true
		tokens.On("Read", token.ID).Return(revoked, nil)
		provider.On("RevokeCredential", mock.Anything, "ghs_minted").Return(nil)

		credential, err := s.Exchange(context.Background(), raw)
		assert.ErrorIs(t, err, shared.ErrRevoked)
		assert.Empty(t, credential.Token)
	})

	t.Run("should treat a credential for another repository as an invariant violation", func(t *testing.T) {
		inv := startedInvitation(testNow.Add(24 * time.Hour))
		token := liveToken(t, inv)
		_, _, provider, s := setup(t, token, inv)

		provider.On("MintRepositoryCredential", mock.Anything, int64(7), int64(42), models.AccessScopeClonePush).
			Return(shared.DelegatedCredential{Token: "ghs_wrong", RepositoryID: 99}, nil)
		provider.On("RevokeCredential", mock.Anything, "ghs_wrong").Return(nil)

		_, err := s.Exchange(context.Background(), raw)
		assert.ErrorIs(t, err, shared.ErrInvariantViolation)
	})

	t.Run("should alert when the provider minted a credential for another repository", func(t *testing.T) {
		inv := startedInvitation(testNow.Add(24 * time.Hour))
		_, _, provider, s := setup(t, liveToken(t, inv), inv)

		provider.On("MintRepositoryCredential", mock.Anything, int64(7), int64(42), models.AccessScopeClonePush).
			Return(shared.DelegatedCredential{}, shared.ErrInvariantViolation).Once()

		_, err := s.Exchange(context.Background(), raw)
		assert.ErrorIs(t, err, shared.ErrInvariantViolation)
		provider.AssertNumberOfCalls(t, "MintRepositoryCredential", 1)
	})

	t.Run("should retry a transient provider failure and audit the retry", func(t *testing.T) {
		inv := startedInvitation(testNow.Add(24 * time.Hour))
		token := liveToken(t, inv)
		tokens := mocks.NewAccessTokenRepository(t)
		invitations := mocks.NewInvitationRepository(t)
		provider := mocks.NewHostingProvider(t)
		tokens.On("ReadByHash", hasher(t)).Return(token, nil)
		invitations.On("Read", inv.ID).Return(inv, nil)

		provider.On("MintRepositoryCredential", mock.Anything, int64(7), int64(42), models.AccessScopeClonePush).
			Return(shared.DelegatedCredential{}, shared.ErrUpstreamUnavailable).Once()
		provider.On("MintRepositoryCredential", mock.Anything, int64(7), int64(42), models.AccessScopeClonePush).
			Return(shared.DelegatedCredential{Token: "ghs_minted", RepositoryID: 42}, nil).Once()
		tokens.On("MarkUsedIfLive", mock.Anything, token.ID, testNow).Return(true, nil)

		audit := mocks.NewAuditService(t)
		audit.On("Record", mock.Anything, models.AuditUpstreamRetry, models.ActorSystem, &inv.ID, mock.MatchedBy(func(meta map[string]any) bool {
			return meta["operation"] == "mint_credential"
		})).Return().Once()
		audit.On("Record", mock.Anything, models.AuditTokenExchanged, models.ActorCandidate, &inv.ID, mock.Anything).Return().Once()

		s := NewCredentialBrokerService(tokens, invitations, provider, audit, testHasher(t), fixedClock{testNow}, fastRetry())
		credential, err := s.Exchange(context.Background(), raw)
		require.NoError(t, err)
		assert.Equal(t, "ghs_minted", credential.Token)
		provider.AssertNumberOfCalls(t, "MintRepositoryCredential", 2)
	})

	t.Run("should audit the exhaustion when the provider stays unavailable", func(t *testing.T) {
		inv := startedInvitation(testNow.Add(24 * time.Hour))
		tokens := mocks.NewAccessTokenRepository(t)
		invitations := mocks.NewInvitationRepository(t)
		provider := mocks.NewHostingProvider(t)
		tokens.On("ReadByHash", hasher(t)).Return(liveToken(t, inv), nil)
		invitations.On("Read", inv.ID).Return(inv, nil)

		provider.On("MintRepositoryCredential", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(shared.DelegatedCredential{}, shared.ErrUpstreamUnavailable)

		audit := mocks.NewAuditService(t)
		audit.On("Record", mock.Anything, models.AuditUpstreamRetry, models.ActorSystem, &inv.ID, mock.Anything).Return().Times(2)
		audit.On("Record", mock.Anything, models.AuditUpstreamExhausted, models.ActorSystem, &inv.ID, mock.Anything).Return().Once()
		audit.On("Record", mock.Anything, models.AuditTokenExchangeDenied, models.ActorCandidate, &inv.ID, mock.Anything).Return().Once()

		s := NewCredentialBrokerService(tokens, invitations, provider, audit, testHasher(t), fixedClock{testNow}, fastRetry())
		_, err := s.Exchange(context.Background(), raw)
		assert.ErrorIs(t, err, shared.ErrUpstreamUnavailable)
		provider.AssertNumberOfCalls(t, "MintRepositoryCredential", 3)
	})
}

func TestBrokerRevoke(t *testing.T) {
	t.Run("should record the revocation inside the transaction", func(t *testing.T) {
		id := uuid.New()
		tokens := mocks.NewAccessTokenRepository(t)
		tokens.On("RevokeAllForInvitation", mock.Anything, id, testNow).Return(int64(2), nil)
		audit := mocks.NewAuditService(t)
		audit.On("RecordTx", mock.Anything, models.AuditTokenRevoked, models.ActorSystem, &id, map[string]any{"count": int64(2)}).Return(nil)

		s := NewCredentialBrokerService(tokens, nil, nil, audit, testHasher(t), fixedClock{testNow}, fastRetry())
		n, err := s.Revoke(context.Background(), &gormDBStub, id)
		require.NoError(t, err)
		assert.Equal(t, int64(2), n)
	})

	t.Run("should not audit when nothing was live", func(t *testing.T) {
		id := uuid.New()
		tokens := mocks.NewAccessTokenRepository(t)
		tokens.On("RevokeAllForInvitation", mock.Anything, id, testNow).Return(int64(0), nil)

		s := NewCredentialBrokerService(tokens, nil, nil, mocks.NewAuditService(t), testHasher(t), fixedClock{testNow}, fastRetry())
		n, err := s.Revoke(context.Background(), nil, id)
		require.NoError(t, err)
		assert.Zero(t, n)
	})
}

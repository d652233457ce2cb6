package repositories

import (
	"sync"
	"testing"
	"time"

	"github.com/afterquery/assessment-broker/database/models"
	"github.com/afterquery/assessment-broker/integrationtestutil"
	"github.com/afterquery/assessment-broker/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvitationRepositoryTransitions(t *testing.T) {
	db, _, terminate := integrationtestutil.InitDatabaseContainer()
	defer terminate()

	repo := NewInvitationRepository(db)
	fixtures := integrationtestutil.CreateFixtures(t, db, 24*time.Hour, 48*time.Hour)
	sentAt := time.Now().UTC().Truncate(time.Microsecond)

	t.Run("should accept a sent invitation before its start deadline", func(t *testing.T) {
		inv := integrationtestutil.CreateInvitation(t, db, fixtures.Assessment, sentAt)

		ok, err := repo.TransitionToAccepted(nil, inv.ID, sentAt.Add(time.Hour))
		require.NoError(t, err)
		assert.True(t, ok)

		// second accept is a no-op
		ok, err = repo.TransitionToAccepted(nil, inv.ID, sentAt.Add(2*time.Hour))
		require.NoError(t, err)
		assert.False(t, ok)

		stored, err := repo.Read(inv.ID)
		require.NoError(t, err)
		assert.Equal(t, models.InvitationStatusAccepted, stored.Status)
		assert.NotNil(t, stored.AcceptedAt)
	})

	t.Run("should not start after the start deadline", func(t *testing.T) {
		inv := integrationtestutil.CreateInvitation(t, db, fixtures.Assessment, sentAt)
		now := sentAt.Add(25 * time.Hour)

		ok, err := repo.StartIfPending(nil, inv.ID, models.InvitationStatusSent, now, now.Add(48*time.Hour))
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("should set the complete deadline exactly once under concurrent starts", func(t *testing.T) {
		inv := integrationtestutil.CreateInvitation(t, db, fixtures.Assessment, sentAt)
		now := sentAt.Add(time.Hour)

		var wg sync.WaitGroup
		results := make([]bool, 8)
		for i := range results {
			wg.Go(func() {
				started := now.Add(time.Duration(i) * time.Millisecond)
				ok, err := repo.StartIfPending(nil, inv.ID, models.InvitationStatusSent, started, started.Add(48*time.Hour))
				assert.NoError(t, err)
				results[i] = ok
			})
		}
		wg.Wait()

		winners := 0
		for _, ok := range results {
			if ok {
				winners++
			}
		}
		assert.Equal(t, 1, winners)

		stored, err := repo.Read(inv.ID)
		require.NoError(t, err)
		assert.Equal(t, models.InvitationStatusStarted, stored.Status)
		require.NotNil(t, stored.CompleteDeadline)
		require.NotNil(t, stored.StartedAt)
		assert.True(t, stored.CompleteDeadline.Equal(stored.StartedAt.Add(48*time.Hour)))
	})

	t.Run("should refuse to change the complete deadline of a started invitation", func(t *testing.T) {
		inv := integrationtestutil.CreateInvitation(t, db, fixtures.Assessment, sentAt)
		now := sentAt.Add(time.Hour)
		ok, err := repo.StartIfPending(nil, inv.ID, models.InvitationStatusSent, now, now.Add(48*time.Hour))
		require.NoError(t, err)
		require.True(t, ok)

		err = db.Model(&models.Invitation{}).Where("id = ?", inv.ID).Update("complete_deadline", now.Add(96*time.Hour)).Error
		assert.Error(t, err)
	})

	t.Run("should revert a start to the exact prior status", func(t *testing.T) {
		inv := integrationtestutil.CreateInvitation(t, db, fixtures.Assessment, sentAt)
		now := sentAt.Add(time.Hour)
		ok, err := repo.TransitionToAccepted(nil, inv.ID, now)
		require.NoError(t, err)
		require.True(t, ok)
		ok, err = repo.StartIfPending(nil, inv.ID, models.InvitationStatusAccepted, now, now.Add(48*time.Hour))
		require.NoError(t, err)
		require.True(t, ok)

		ok, err = repo.RevertStart(nil, inv.ID, models.InvitationStatusAccepted)
		require.NoError(t, err)
		assert.True(t, ok)

		stored, err := repo.Read(inv.ID)
		require.NoError(t, err)
		assert.Equal(t, models.InvitationStatusAccepted, stored.Status)
		assert.Nil(t, stored.CompleteDeadline)
		assert.Nil(t, stored.StartedAt)
	})

	t.Run("should only submit while a token is unrevoked", func(t *testing.T) {
		inv := integrationtestutil.CreateInvitation(t, db, fixtures.Assessment, sentAt)
		now := sentAt.Add(time.Hour)
		ok, err := repo.StartIfPending(nil, inv.ID, models.InvitationStatusSent, now, now.Add(48*time.Hour))
		require.NoError(t, err)
		require.True(t, ok)

		ok, err = repo.MarkSubmitted(nil, inv.ID, now.Add(time.Hour))
		require.NoError(t, err)
		assert.False(t, ok)

		tokens := NewAccessTokenRepository(db)
		require.NoError(t, tokens.ReplaceLive(nil, &models.AccessToken{
			InvitationID:    inv.ID,
			InstallationID:  integrationtestutil.FixtureInstallationID,
			RepoID:          1,
			RepoFullName:    "acme/repo",
			OpaqueTokenHash: uuid.NewString(),
			Scope:           models.AccessScopeClonePush,
			ExpiresAt:       now.Add(8 * time.Hour),
		}, now))

		ok, err = repo.MarkSubmitted(nil, inv.ID, now.Add(time.Hour))
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("should expire and find due invitations by their relevant deadline", func(t *testing.T) {
		pending := integrationtestutil.CreateInvitation(t, db, fixtures.Assessment, sentAt)
		started := integrationtestutil.CreateInvitation(t, db, fixtures.Assessment, sentAt)
		startedAt := sentAt.Add(time.Hour)
		ok, err := repo.StartIfPending(nil, started.ID, models.InvitationStatusSent, startedAt, startedAt.Add(48*time.Hour))
		require.NoError(t, err)
		require.True(t, ok)

		// after the start deadline but before the complete deadline
		now := sentAt.Add(30 * time.Hour)
		due, err := repo.FindDue(now, 1000)
		require.NoError(t, err)
		ids := make([]uuid.UUID, 0, len(due))
		for _, inv := range due {
			ids = append(ids, inv.ID)
		}
		assert.Contains(t, ids, pending.ID)
		assert.NotContains(t, ids, started.ID)

		ok, err = repo.Expire(nil, started.ID, models.InvitationStatusStarted, now)
		require.NoError(t, err)
		assert.False(t, ok)

		ok, err = repo.Expire(nil, pending.ID, models.InvitationStatusSent, now)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = repo.Expire(nil, started.ID, models.InvitationStatusStarted, startedAt.Add(49*time.Hour))
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("should not revoke a terminal invitation", func(t *testing.T) {
		inv := integrationtestutil.CreateInvitation(t, db, fixtures.Assessment, sentAt)
		now := sentAt.Add(time.Hour)

		ok, err := repo.Revoke(nil, inv.ID, models.InvitationStatusSent, now)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = repo.Revoke(nil, inv.ID, models.InvitationStatusRevoked, now)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("should map a missing link token to not found", func(t *testing.T) {
		_, err := repo.ReadByLinkTokenHash("does-not-exist")
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

package database

import (
	"context"
	"strings"
	"testing"

	"github.com/afterquery/assessment-broker/database/models"
	"github.com/afterquery/assessment-broker/shared"
	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublish(t *testing.T) {
	t.Run("should notify on the channel of the message", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec(`SELECT pg_notify\(\$1, \$2\)`).
			WithArgs("invitation_lifecycle", pgxmock.AnyArg()).
			WillReturnResult(pgxmock.NewResult("SELECT", 1))

		broker := newPublishOnlyBroker(mock)
		msg := shared.NewLifecycleMessage(uuid.New(), models.InvitationStatusAccepted, models.InvitationStatusStarted, models.ActorCandidate)

		err = broker.Publish(context.Background(), msg)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("should refuse payloads postgres would reject", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		broker := newPublishOnlyBroker(mock)
		msg := shared.NewSimplePubSubMessage(shared.InvitationLifecycleChannel, map[string]any{
			"blob": strings.Repeat("a", 9000),
		})

		err = broker.Publish(context.Background(), msg)
		assert.Error(t, err)
		// nothing was sent
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("should return the error of the database", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec(`SELECT pg_notify`).
			WithArgs("invitation_lifecycle", pgxmock.AnyArg()).
			WillReturnError(assert.AnError)

		broker := newPublishOnlyBroker(mock)
		err = broker.Publish(context.Background(), shared.NewSimplePubSubMessage(shared.InvitationLifecycleChannel, map[string]any{}))
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestSubscribeOnPublishOnlyBroker(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	_, err = newPublishOnlyBroker(mock).Subscribe(shared.InvitationLifecycleChannel)
	assert.Error(t, err)
}

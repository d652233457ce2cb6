package services

import (
	"context"
	"errors"
	"testing"

	"github.com/afterquery/assessment-broker/database/models"
	"github.com/afterquery/assessment-broker/shared"
	"github.com/afterquery/assessment-broker/statemachine"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestEffectHandlers(t *testing.T) {
	record := func(calls *[]statemachine.SideEffect, effect statemachine.SideEffect) func() error {
		return func() error {
			*calls = append(*calls, effect)
			return nil
		}
	}

	t.Run("should run the transactional effects of a submit in table order", func(t *testing.T) {
		_, effects, err := statemachine.Transition(models.InvitationStatusStarted, statemachine.TriggerSubmit)
		require.NoError(t, err)

		var calls []statemachine.SideEffect
		handlers := effectHandlers{}
		for _, effect := range effects {
			handlers[effect] = record(&calls, effect)
		}

		require.NoError(t, handlers.run(effects, true))
		assert.Equal(t, []statemachine.SideEffect{
			statemachine.SideEffectCreateSubmission,
			statemachine.SideEffectRevokeTokens,
			statemachine.SideEffectDeactivateRepo,
		}, calls)

		calls = nil
		require.NoError(t, handlers.run(effects, false))
		assert.Equal(t, []statemachine.SideEffect{statemachine.SideEffectArchiveRepo}, calls)
	})

	t.Run("should treat an effect without a handler as an invariant violation", func(t *testing.T) {
		_, effects, err := statemachine.Transition(models.InvitationStatusStarted, statemachine.TriggerRevoke)
		require.NoError(t, err)

		err = effectHandlers{}.run(effects, true)
		assert.ErrorIs(t, err, shared.ErrInvariantViolation)
	})

	t.Run("should stop at the first failing effect", func(t *testing.T) {
		var calls []statemachine.SideEffect
		boom := errors.New("boom")
		err := effectHandlers{
			statemachine.SideEffectRevokeTokens:   func() error { return boom },
			statemachine.SideEffectDeactivateRepo: record(&calls, statemachine.SideEffectDeactivateRepo),
		}.run([]statemachine.SideEffect{statemachine.SideEffectRevokeTokens, statemachine.SideEffectDeactivateRepo}, true)
		assert.ErrorIs(t, err, boom)
		assert.Empty(t, calls)
	})

	t.Run("should revoke tokens and deactivate the repository on every closing transition", func(t *testing.T) {
		for _, trigger := range []statemachine.Trigger{statemachine.TriggerExpire, statemachine.TriggerRevoke} {
			s, m := newInvitationServiceForTest(t, permissiveAudit(t))
			id := uuid.New()
			m.broker.On("Revoke", mock.Anything, &gormDBStub, id).Return(int64(1), nil).Once()
			m.candidateRepos.On("Deactivate", &gormDBStub, id).Return(nil).Once()

			_, effects, err := statemachine.Transition(models.InvitationStatusStarted, trigger)
			require.NoError(t, err)
			require.NoError(t, s.closingEffects(context.Background(), &gormDBStub, id).run(effects, true), trigger)
		}
	})
}

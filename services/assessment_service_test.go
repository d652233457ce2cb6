package services

import (
	"context"
	"testing"

	"github.com/afterquery/assessment-broker/database/models"
	"github.com/afterquery/assessment-broker/mocks"
	"github.com/afterquery/assessment-broker/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAssessmentCreate(t *testing.T) {
	orgID := uuid.New()
	seed := models.Seed{Model: models.Model{ID: uuid.New()}, OrgID: orgID, LatestPinnedCommit: "0a1b2c3d"}

	t.Run("should pin the current seed commit", func(t *testing.T) {
		assessments := mocks.NewAssessmentRepository(t)
		seeds := mocks.NewSeedRepository(t)
		seeds.On("Read", seed.ID).Return(seed, nil)
		assessments.On("Create", mock.Anything, mock.Anything).Return(nil)

		a := &models.Assessment{OrgID: orgID, SeedID: seed.ID, TimeToStartSeconds: 86400, TimeToCompleteSeconds: 172800}
		require.NoError(t, NewAssessmentService(assessments, seeds).Create(context.Background(), a))
		assert.Equal(t, "0a1b2c3d", a.SeedSHAPinned)
	})

	t.Run("should not accept a seed of another org", func(t *testing.T) {
		seeds := mocks.NewSeedRepository(t)
		seeds.On("Read", seed.ID).Return(seed, nil)

		a := &models.Assessment{OrgID: uuid.New(), SeedID: seed.ID, TimeToStartSeconds: 1, TimeToCompleteSeconds: 1}
		err := NewAssessmentService(mocks.NewAssessmentRepository(t), seeds).Create(context.Background(), a)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("should reject non positive durations", func(t *testing.T) {
		a := &models.Assessment{OrgID: orgID, SeedID: seed.ID, TimeToStartSeconds: 0, TimeToCompleteSeconds: 1}
		err := NewAssessmentService(mocks.NewAssessmentRepository(t), mocks.NewSeedRepository(t)).Create(context.Background(), a)
		assert.ErrorIs(t, err, shared.ErrInvalidTransition)
	})
}

func runAssessmentTransactions(m *mocks.AssessmentRepository) {
	m.On("Transaction", mock.Anything).Return(func(fn func(shared.DB) error) error {
		return fn(&gormDBStub)
	})
}

func TestAssessmentUpdate(t *testing.T) {
	existing := models.Assessment{Model: models.Model{ID: uuid.New()}, Title: "old", TimeToStartSeconds: 86400, TimeToCompleteSeconds: 172800}

	t.Run("should freeze durations once invitations exist", func(t *testing.T) {
		assessments := mocks.NewAssessmentRepository(t)
		runAssessmentTransactions(assessments)
		assessments.On("ReadForUpdate", mock.Anything, existing.ID).Return(existing, nil)
		assessments.On("HasInvitations", mock.Anything, existing.ID).Return(true, nil)

		_, err := NewAssessmentService(assessments, nil).Update(context.Background(), existing.ID, shared.AssessmentPatch{TimeToCompleteSeconds: shared.Ptr(int64(3600))})
		assert.ErrorIs(t, err, shared.ErrInvalidTransition)
		assessments.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("should check for invitations inside the locking transaction", func(t *testing.T) {
		assessments := mocks.NewAssessmentRepository(t)
		runAssessmentTransactions(assessments)
		assessments.On("ReadForUpdate", &gormDBStub, existing.ID).Return(existing, nil)
		assessments.On("HasInvitations", &gormDBStub, existing.ID).Return(false, nil)
		assessments.On("Save", &gormDBStub, mock.MatchedBy(func(a *models.Assessment) bool {
			return a.TimeToCompleteSeconds == 3600
		})).Return(nil)

		updated, err := NewAssessmentService(assessments, nil).Update(context.Background(), existing.ID, shared.AssessmentPatch{TimeToCompleteSeconds: shared.Ptr(int64(3600))})
		require.NoError(t, err)
		assert.Equal(t, int64(3600), updated.TimeToCompleteSeconds)
		assessments.AssertNotCalled(t, "Read", mock.Anything)
	})

	t.Run("should allow changing the text at any time", func(t *testing.T) {
		assessments := mocks.NewAssessmentRepository(t)
		runAssessmentTransactions(assessments)
		assessments.On("ReadForUpdate", mock.Anything, existing.ID).Return(existing, nil)
		assessments.On("Save", mock.Anything, mock.Anything).Return(nil)

		updated, err := NewAssessmentService(assessments, nil).Update(context.Background(), existing.ID, shared.AssessmentPatch{Title: shared.Ptr("new")})
		require.NoError(t, err)
		assert.Equal(t, "new", updated.Title)
		assessments.AssertNotCalled(t, "HasInvitations", mock.Anything, mock.Anything)
	})
}

package services

import (
	"testing"
	"time"

	"github.com/afterquery/assessment-broker/mocks"
	"github.com/afterquery/assessment-broker/utils"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// gormDBStub stands in for an open transaction in calls against mocks.
var gormDBStub gorm.DB

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

var testNow = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

func testHasher(t *testing.T) utils.TokenHasher {
	h, err := utils.NewTokenHasher("test-pepper-0123456789")
	require.NoError(t, err)
	return h
}

func fastRetry() RetryPolicy {
	return RetryPolicy{InitialInterval: time.Millisecond, MaxAttempts: 3}
}

// permissiveAudit accepts any audit event.
func permissiveAudit(t *testing.T) *mocks.AuditService {
	audit := mocks.NewAuditService(t)
	audit.On("Record", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return().Maybe()
	audit.On("RecordTx", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	return audit
}

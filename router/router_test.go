package router

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/afterquery/assessment-broker/config"
	"github.com/afterquery/assessment-broker/controllers"
	"github.com/afterquery/assessment-broker/database/models"
	"github.com/afterquery/assessment-broker/middlewares"
	"github.com/afterquery/assessment-broker/mocks"
	"github.com/afterquery/assessment-broker/shared"
	"github.com/afterquery/assessment-broker/utils"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testAdminKey = "0123456789abcdef0123456789abcdef"

type testRouter struct {
	e                    *echo.Echo
	broker               *mocks.CredentialBroker
	invitationService    *mocks.InvitationService
	invitationRepository *mocks.InvitationRepository
	hasher               utils.TokenHasher
}

func newTestRouter(t *testing.T, exchangeRate float64) testRouter {
	cfg := config.Config{AdminAPIKey: testAdminKey, ExchangeRateLimit: exchangeRate, FrontendURL: "http://localhost:3000"}
	hasher, err := utils.NewTokenHasher("pepper-for-tests")
	require.NoError(t, err)

	tr := testRouter{
		e:                    middlewares.Server(cfg),
		broker:               mocks.NewCredentialBroker(t),
		invitationService:    mocks.NewInvitationService(t),
		invitationRepository: mocks.NewInvitationRepository(t),
		hasher:               hasher,
	}

	apiV1 := NewAPIV1Router(tr.e, nil, nil, nil)
	NewCandidateRouter(apiV1, cfg,
		controllers.NewCandidateController(tr.invitationService, nil, nil),
		controllers.NewCredentialController(tr.broker),
		tr.invitationRepository, hasher)
	NewAdminRouter(apiV1, cfg,
		controllers.NewOrgController(nil, nil, nil, nil),
		controllers.NewSeedController(nil),
		controllers.NewAssessmentController(nil, nil),
		controllers.NewInvitationController(tr.invitationService, tr.invitationRepository, nil),
		nil)
	return tr
}

func (tr testRouter) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	tr.e.ServeHTTP(rec, req)
	return rec
}

func TestAdminRoutes(t *testing.T) {
	t.Run("should require the admin key", func(t *testing.T) {
		tr := newTestRouter(t, 10)
		rec := tr.do(httptest.NewRequest(http.MethodPatch, "/api/v1/invitations/"+uuid.NewString()+"/revoke/", nil))
		assert.Equal(t, 401, rec.Code)
	})

	t.Run("should revoke with a valid admin key", func(t *testing.T) {
		tr := newTestRouter(t, 10)
		id := uuid.New()
		tr.invitationService.On("Revoke", mock.Anything, id).
			Return(models.Invitation{Model: models.Model{ID: id}, Status: models.InvitationStatusRevoked}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/api/v1/invitations/"+id.String()+"/revoke", nil)
		req.Header.Set(middlewares.AdminKeyHeader, testAdminKey)
		rec := tr.do(req)
		assert.Equal(t, 200, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"revoked"`)
	})
}

func TestCandidateRoutes(t *testing.T) {
	t.Run("should serve the git credential endpoint without a trailing slash", func(t *testing.T) {
		tr := newTestRouter(t, 10)
		tr.broker.On("Exchange", mock.Anything, "aqt_token").Return(shared.DelegatedCredential{
			Username: "x-access-token", Token: "ghs_minted", ExpiresAt: time.Unix(1772442000, 0),
		}, nil)

		rec := tr.do(httptest.NewRequest(http.MethodGet, "/api/v1/git/credential?token=aqt_token", nil))
		assert.Equal(t, 200, rec.Code)
		assert.Contains(t, rec.Body.String(), "password=ghs_minted\n")
	})

	t.Run("should resolve the invitation from the start link", func(t *testing.T) {
		tr := newTestRouter(t, 10)
		inv := models.Invitation{Model: models.Model{ID: uuid.New()}, Status: models.InvitationStatusSent}
		tr.invitationRepository.On("ReadByLinkTokenHash", tr.hasher.Hash("aqi_link")).Return(inv, nil)
		tr.invitationService.On("Start", mock.Anything, inv).Return(shared.StartResult{}, shared.ErrExpired)

		rec := tr.do(httptest.NewRequest(http.MethodPost, "/api/v1/start/aqi_link/", nil))
		assert.Equal(t, 410, rec.Code)
		assert.Contains(t, rec.Body.String(), "access window closed")
	})

	t.Run("should rate limit candidate endpoints", func(t *testing.T) {
		tr := newTestRouter(t, 0.001)
		tr.broker.On("Exchange", mock.Anything, "aqt_token").Return(shared.DelegatedCredential{}, shared.ErrRevoked).Once()

		first := tr.do(httptest.NewRequest(http.MethodGet, "/api/v1/git/credential/?token=aqt_token", nil))
		assert.Equal(t, 410, first.Code)

		second := tr.do(httptest.NewRequest(http.MethodGet, "/api/v1/git/credential/?token=aqt_token", nil))
		assert.Equal(t, 429, second.Code)
	})
}

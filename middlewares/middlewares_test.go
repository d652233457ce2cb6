package middlewares

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/afterquery/assessment-broker/config"
	"github.com/afterquery/assessment-broker/database/models"
	"github.com/afterquery/assessment-broker/mocks"
	"github.com/afterquery/assessment-broker/shared"
	"github.com/afterquery/assessment-broker/utils"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	return he.Code
}

func TestAdminKeyMiddleware(t *testing.T) {
	const key = "0123456789abcdef0123456789abcdef"

	t.Run("should reject a request without the admin key", func(t *testing.T) {
		c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

		var called bool
		err := AdminKeyMiddleware(key)(func(ctx echo.Context) error {
			called = true
			return nil
		})(c)

		assert.Equal(t, 401, statusOf(t, err))
		assert.False(t, called)
	})

	t.Run("should reject a wrong admin key", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(AdminKeyHeader, key[:len(key)-1]+"0")
		c := echo.New().NewContext(req, httptest.NewRecorder())

		err := AdminKeyMiddleware(key)(func(ctx echo.Context) error { return nil })(c)
		assert.Equal(t, 401, statusOf(t, err))
	})

	t.Run("should reject everything when no key is configured", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(AdminKeyHeader, "")
		c := echo.New().NewContext(req, httptest.NewRecorder())

		err := AdminKeyMiddleware("")(func(ctx echo.Context) error { return nil })(c)
		assert.Equal(t, 401, statusOf(t, err))
	})

	t.Run("should mark the request as admin with the correct key", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(AdminKeyHeader, key)
		c := echo.New().NewContext(req, httptest.NewRecorder())

		var called bool
		err := AdminKeyMiddleware(key)(func(ctx echo.Context) error {
			called = true
			assert.True(t, shared.IsAdmin(ctx))
			return nil
		})(c)

		assert.NoError(t, err)
		assert.True(t, called)
	})
}

func TestRateLimitMiddleware(t *testing.T) {
	t.Run("should limit each client ip on its own", func(t *testing.T) {
		limiter := NewIPRateLimiter(0.001)
		mw := RateLimitMiddleware(limiter)
		next := func(ctx echo.Context) error { return nil }

		requestFrom := func(ip string) (*httptest.ResponseRecorder, error) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = ip + ":1234"
			rec := httptest.NewRecorder()
			return rec, mw(next)(echo.New().NewContext(req, rec))
		}

		_, err := requestFrom("10.0.0.1")
		assert.NoError(t, err)

		rec, err := requestFrom("10.0.0.1")
		assert.Equal(t, 429, statusOf(t, err))
		assert.NotEmpty(t, rec.Header().Get(echo.HeaderRetryAfter))

		_, err = requestFrom("10.0.0.2")
		assert.NoError(t, err)
	})

	t.Run("should allow a burst of twice the rate", func(t *testing.T) {
		limiter := NewIPRateLimiter(2)
		for range 4 {
			allowed, _ := limiter.Allow("10.0.0.3")
			assert.True(t, allowed)
		}
		allowed, retryAfter := limiter.Allow("10.0.0.3")
		assert.False(t, allowed)
		assert.Positive(t, retryAfter)
	})
}

func TestInvitationMiddleware(t *testing.T) {
	hasher, err := utils.NewTokenHasher("pepper-for-tests")
	require.NoError(t, err)

	newCtx := func(token string) echo.Context {
		c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
		c.SetParamNames("inviteToken")
		c.SetParamValues(token)
		return c
	}

	t.Run("should look the invitation up by the hash of the token", func(t *testing.T) {
		inv := models.Invitation{Model: models.Model{ID: uuid.New()}}
		repository := mocks.NewInvitationRepository(t)
		repository.On("ReadByLinkTokenHash", hasher.Hash("aqi_link")).Return(inv, nil)

		var called bool
		err := InvitationMiddleware(repository, hasher)(func(ctx echo.Context) error {
			called = true
			assert.Equal(t, inv.ID, shared.GetInvitation(ctx).ID)
			return nil
		})(newCtx("aqi_link"))

		assert.NoError(t, err)
		assert.True(t, called)
	})

	t.Run("should return 404 for an unknown token", func(t *testing.T) {
		repository := mocks.NewInvitationRepository(t)
		repository.On("ReadByLinkTokenHash", hasher.Hash("aqi_unknown")).Return(models.Invitation{}, shared.ErrNotFound)

		err := InvitationMiddleware(repository, hasher)(func(ctx echo.Context) error { return nil })(newCtx("aqi_unknown"))
		assert.Equal(t, 404, statusOf(t, err))
	})

	t.Run("should return 500 if the database fails", func(t *testing.T) {
		repository := mocks.NewInvitationRepository(t)
		repository.On("ReadByLinkTokenHash", hasher.Hash("aqi_link")).Return(models.Invitation{}, errors.New("connection reset"))

		err := InvitationMiddleware(repository, hasher)(func(ctx echo.Context) error { return nil })(newCtx("aqi_link"))
		assert.Equal(t, 500, statusOf(t, err))
	})
}

func TestServer(t *testing.T) {
	t.Run("should recover from a panic and answer with 500", func(t *testing.T) {
		e := Server(config.Config{FrontendURL: "http://localhost:3000", Environment: "test"})
		e.GET("/panic/", func(ctx echo.Context) error {
			panic("boom")
		})

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic", nil))
		assert.Equal(t, 500, rec.Code)
	})

	t.Run("should render string errors as json", func(t *testing.T) {
		e := Server(config.Config{FrontendURL: "http://localhost:3000"})
		e.GET("/gone/", func(ctx echo.Context) error {
			return echo.NewHTTPError(410, "access window closed")
		})

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/gone", nil))
		assert.Equal(t, 410, rec.Code)
		assert.JSONEq(t, `{"message":"access window closed"}`, rec.Body.String())
	})
}

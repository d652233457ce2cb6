package shared_test

import (
	"net/http/httptest"
	"testing"

	"github.com/afterquery/assessment-broker/database/models"
	"github.com/afterquery/assessment-broker/shared"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newContext() shared.Context {
	e := echo.New()
	return e.NewContext(httptest.NewRequest("GET", "/", nil), httptest.NewRecorder())
}

func TestGetUUIDParam(t *testing.T) {
	t.Run("should parse a uuid with surrounding slashes", func(t *testing.T) {
		id := uuid.New()
		ctx := newContext()
		ctx.SetParamNames("invitationID")
		ctx.SetParamValues("/" + id.String() + "/")

		parsed, err := shared.GetUUIDParam(ctx, "invitationID")
		assert.NoError(t, err)
		assert.Equal(t, id, parsed)
	})

	t.Run("should name the parameter in the error", func(t *testing.T) {
		ctx := newContext()
		ctx.SetParamNames("seedID")
		ctx.SetParamValues("not-a-uuid")

		_, err := shared.GetUUIDParam(ctx, "seedID")
		assert.ErrorContains(t, err, "invalid seedID")
	})
}

func TestIsAdmin(t *testing.T) {
	t.Run("should be false unless the admin middleware marked the request", func(t *testing.T) {
		ctx := newContext()
		assert.False(t, shared.IsAdmin(ctx))

		shared.SetIsAdmin(ctx)
		assert.True(t, shared.IsAdmin(ctx))
	})
}

func TestInvitationContext(t *testing.T) {
	t.Run("should round trip the invitation", func(t *testing.T) {
		ctx := newContext()
		inv := models.Invitation{Model: models.Model{ID: uuid.New()}, Status: models.InvitationStatusSent}
		shared.SetInvitation(ctx, inv)
		assert.Equal(t, inv, shared.GetInvitation(ctx))
	})
}

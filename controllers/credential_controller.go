// Copyright (C) 2026 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package controllers

import (
	"fmt"
	"strings"

	"github.com/afterquery/assessment-broker/shared"
	"github.com/labstack/echo/v4"
)

type CredentialController struct {
	broker shared.CredentialBroker
}

func NewCredentialController(broker shared.CredentialBroker) *CredentialController {
	return &CredentialController{broker: broker}
}

func opaqueTokenFromRequest(ctx shared.Context) string {
	if token := ctx.QueryParam("token"); token != "" {
		return token
	}
	if auth := ctx.Request().Header.Get(echo.HeaderAuthorization); strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
	}
	return ""
}

// FormatGitCredential renders a delegated credential in the git credential
// helper format.
func FormatGitCredential(cred shared.DelegatedCredential) string {
	host := cred.Host
	if host == "" {
		host = "github.com"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "protocol=https\n")
	fmt.Fprintf(&b, "host=%s\n", host)
	fmt.Fprintf(&b, "username=%s\n", cred.Username)
	fmt.Fprintf(&b, "password=%s\n", cred.Token)
	fmt.Fprintf(&b, "password_expiry_utc=%d\n", cred.ExpiresAt.Unix())
	return b.String()
}

// Exchange trades an opaque access token for a short lived credential scoped
// to the candidate repository.
func (c *CredentialController) Exchange(ctx shared.Context) error {
	token := opaqueTokenFromRequest(ctx)
	if token == "" {
		return echo.NewHTTPError(400, "missing token")
	}

	cred, err := c.broker.Exchange(ctx.Request().Context(), token)
	if err != nil {
		return candidateError(err, "could not exchange token")
	}

	if cred.Username == "" {
		cred.Username = "x-access-token"
	}

	ctx.Response().Header().Set(echo.HeaderCacheControl, "no-store")
	return ctx.String(200, FormatGitCredential(cred))
}

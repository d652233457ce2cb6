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

package middlewares

import (
	"github.com/afterquery/assessment-broker/shared"
	"github.com/afterquery/assessment-broker/utils"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// all middlewares which modify the current request context and fetch some data from the database

// InvitationMiddleware resolves the invitation behind a start link token.
// Only the hash of the token is ever compared against the database.
func InvitationMiddleware(repository shared.InvitationRepository, hasher utils.TokenHasher) shared.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx shared.Context) error {
			token := shared.GetParam(ctx, "inviteToken")
			if token == "" {
				return echo.NewHTTPError(400, "invite token is required")
			}

			invitation, err := repository.ReadByLinkTokenHash(hasher.Hash(token))
			if err != nil {
				if errors.Is(err, shared.ErrNotFound) {
					return echo.NewHTTPError(404, "could not find invitation")
				}
				return echo.NewHTTPError(500, "could not read invitation").WithInternal(err)
			}

			shared.SetInvitation(ctx, invitation)
			return next(ctx)
		}
	}
}

func OrgMiddleware(repository shared.OrgRepository) shared.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx shared.Context) error {
			orgID, err := shared.GetUUIDParam(ctx, "orgID")
			if err != nil {
				return echo.NewHTTPError(400, err.Error())
			}

			org, err := repository.ReadWithInstallations(orgID)
			if err != nil {
				if errors.Is(err, shared.ErrNotFound) {
					return echo.NewHTTPError(404, "could not find organization")
				}
				return echo.NewHTTPError(500, "could not read organization").WithInternal(err)
			}

			shared.SetOrg(ctx, org)
			return next(ctx)
		}
	}
}

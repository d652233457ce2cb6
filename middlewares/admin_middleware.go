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
	"crypto/subtle"
	"log/slog"

	"github.com/afterquery/assessment-broker/shared"
	"github.com/labstack/echo/v4"
)

const AdminKeyHeader = "X-Admin-Key"

// AdminKeyMiddleware only lets requests through which carry the configured
// admin api key.
func AdminKeyMiddleware(adminAPIKey string) shared.MiddlewareFunc {
	expected := []byte(adminAPIKey)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx shared.Context) error {
			provided := []byte(ctx.Request().Header.Get(AdminKeyHeader))
			if len(expected) == 0 || subtle.ConstantTimeCompare(provided, expected) != 1 {
				slog.Warn("rejected admin request", "path", ctx.Request().URL.Path, "ip", ctx.RealIP())
				return echo.NewHTTPError(401, "invalid admin key")
			}
			shared.SetIsAdmin(ctx)
			return next(ctx)
		}
	}
}

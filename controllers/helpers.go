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
	"net/http"

	"github.com/afterquery/assessment-broker/database"
	"github.com/afterquery/assessment-broker/monitoring"
	"github.com/afterquery/assessment-broker/shared"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const accessWindowClosed = "access window closed"

func errorBody(code, message string) echo.Map {
	return echo.Map{"code": code, "message": message}
}

// candidateError maps a service error for candidate facing endpoints.
// Expired and revoked are indistinguishable for candidates.
func candidateError(err error, message string) error {
	if errors.Is(err, shared.ErrExpired) || errors.Is(err, shared.ErrRevoked) {
		return echo.NewHTTPError(http.StatusGone, errorBody("access_window_closed", accessWindowClosed)).WithInternal(err)
	}
	return httpError(err, message)
}

// adminError maps a service error for admin endpoints.
func adminError(err error, message string) error {
	switch {
	case errors.Is(err, shared.ErrExpired):
		return echo.NewHTTPError(http.StatusGone, errorBody("expired", message)).WithInternal(err)
	case errors.Is(err, shared.ErrRevoked):
		return echo.NewHTTPError(http.StatusGone, errorBody("revoked", message)).WithInternal(err)
	}
	return httpError(err, message)
}

func httpError(err error, message string) error {
	switch {
	case errors.Is(err, shared.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, errorBody("not_found", message)).WithInternal(err)
	case errors.Is(err, shared.ErrInvalidTransition):
		return echo.NewHTTPError(http.StatusConflict, errorBody("invalid_transition", message)).WithInternal(err)
	case errors.Is(err, shared.ErrAlreadyTransitioned):
		return echo.NewHTTPError(http.StatusConflict, errorBody("already_transitioned", message)).WithInternal(err)
	case errors.Is(err, shared.ErrUpstreamUnavailable):
		return echo.NewHTTPError(http.StatusServiceUnavailable, errorBody("upstream_unavailable", "the hosting provider is currently unavailable, please retry")).WithInternal(err)
	case errors.Is(err, shared.ErrInvariantViolation):
		monitoring.Alert(message, err)
		return echo.NewHTTPError(http.StatusInternalServerError, errorBody("internal", message)).WithInternal(err)
	case database.IsDuplicateKeyError(err):
		return echo.NewHTTPError(http.StatusConflict, errorBody("conflict", message)).WithInternal(err)
	}
	return echo.NewHTTPError(http.StatusInternalServerError, errorBody("internal", message)).WithInternal(err)
}

func bindAndValidate(ctx shared.Context, req any) error {
	if err := ctx.Bind(req); err != nil {
		return echo.NewHTTPError(400, "could not bind request").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}
	return nil
}

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

package shared

import "github.com/pkg/errors"

// The error taxonomy of the broker. Callers match with errors.Is, wrapped
// errors keep the sentinel as their cause.
var (
	ErrNotFound = errors.New("not found")
	ErrExpired  = errors.New("expired")
	ErrRevoked  = errors.New("revoked")
	// ErrAlreadyTransitioned signals an idempotent re-request. The accompanying
	// result holds the state produced by the first request.
	ErrAlreadyTransitioned = errors.New("already transitioned")
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
	ErrInvariantViolation  = errors.New("invariant violation")
	ErrInvalidTransition   = errors.New("invalid transition")

	// ErrRepositoryNameTaken is returned by a hosting provider when the requested
	// repository name already exists in the target organization.
	ErrRepositoryNameTaken = errors.New("repository name already taken")
)

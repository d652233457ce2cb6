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

package githubint

import (
	"context"
	"net"
	"net/http"
	"strings"

	"github.com/afterquery/assessment-broker/shared"
	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/google/go-github/v62/github"
	"github.com/pkg/errors"
)

// classify maps provider errors onto the broker's error taxonomy. Errors
// which are neither transient nor known pass through unchanged.
func classify(err error, op string) error {
	if err == nil {
		return nil
	}

	var rateLimitErr *github.RateLimitError
	var abuseErr *github.AbuseRateLimitError
	if errors.As(err, &rateLimitErr) || errors.As(err, &abuseErr) {
		return errors.Wrapf(shared.ErrUpstreamUnavailable, "%s: rate limited: %s", op, err)
	}

	var errResp *github.ErrorResponse
	if errors.As(err, &errResp) && errResp.Response != nil {
		switch status := errResp.Response.StatusCode; {
		case status == http.StatusNotFound:
			return errors.Wrapf(shared.ErrNotFound, "%s: %s", op, err)
		case status == http.StatusUnprocessableEntity && nameTaken(errResp):
			return errors.Wrapf(shared.ErrRepositoryNameTaken, "%s: %s", op, err)
		case status == http.StatusTooManyRequests || status >= 500:
			return errors.Wrapf(shared.ErrUpstreamUnavailable, "%s: %s", op, err)
		}
		return errors.Wrap(err, op)
	}

	var tokenErr *ghinstallation.HTTPError
	if errors.As(err, &tokenErr) && tokenErr.Response != nil {
		if tokenErr.Response.StatusCode >= 500 || tokenErr.Response.StatusCode == http.StatusTooManyRequests {
			return errors.Wrapf(shared.ErrUpstreamUnavailable, "%s: %s", op, err)
		}
		return errors.Wrap(err, op)
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return errors.Wrapf(shared.ErrUpstreamUnavailable, "%s: timeout: %s", op, err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return errors.Wrapf(shared.ErrUpstreamUnavailable, "%s: %s", op, err)
	}

	return errors.Wrap(err, op)
}

func nameTaken(errResp *github.ErrorResponse) bool {
	if strings.Contains(strings.ToLower(errResp.Message), "already exists") {
		return true
	}
	for _, e := range errResp.Errors {
		if strings.Contains(strings.ToLower(e.Message), "already exists") {
			return true
		}
	}
	return false
}

// IsTimeout reports whether err was caused by a timeout. The outcome of the
// request is unknown in that case.
func IsTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

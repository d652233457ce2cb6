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
	"strconv"
	"sync"
	"time"

	"github.com/afterquery/assessment-broker/shared"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

const (
	maxTrackedClients = 10_000
	limiterIdleTTL    = 10 * time.Minute
)

// IPRateLimiter hands out one token bucket per client ip. Buckets of idle
// clients are evicted.
type IPRateLimiter struct {
	mu       sync.Mutex
	limiters *expirable.LRU[string, *rate.Limiter]
	limit    rate.Limit
	burst    int
}

func NewIPRateLimiter(perSecond float64) *IPRateLimiter {
	burst := max(int(perSecond*2), 1)
	return &IPRateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](maxTrackedClients, nil, limiterIdleTTL),
		limit:    rate.Limit(perSecond),
		burst:    burst,
	}
}

func (l *IPRateLimiter) limiter(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()
	if limiter, ok := l.limiters.Get(ip); ok {
		return limiter
	}
	limiter := rate.NewLimiter(l.limit, l.burst)
	l.limiters.Add(ip, limiter)
	return limiter
}

func (l *IPRateLimiter) Allow(ip string) (bool, time.Duration) {
	reservation := l.limiter(ip).Reserve()
	if delay := reservation.Delay(); delay > 0 {
		reservation.Cancel()
		return false, delay
	}
	return true, 0
}

func RateLimitMiddleware(limiter *IPRateLimiter) shared.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx shared.Context) error {
			allowed, retryAfter := limiter.Allow(ctx.RealIP())
			if !allowed {
				seconds := int(retryAfter.Seconds()) + 1
				ctx.Response().Header().Set(echo.HeaderRetryAfter, strconv.Itoa(seconds))
				return echo.NewHTTPError(429, "too many requests")
			}
			return next(ctx)
		}
	}
}

// Copyright 2026 l3montree UG (haftungsbeschraenkt).
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var TokenExchangeTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "broker_token_exchange_total",
	Help: "Total number of credential exchanges by outcome",
}, []string{"outcome"})

var TokenIssuedTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "broker_token_issued_total",
	Help: "Total number of issued opaque tokens",
})

var InvitationTransitionTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "broker_invitation_transition_total",
	Help: "Total number of applied invitation status transitions",
}, []string{"from", "to"})

var ProvisioningDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "broker_provisioning_duration_seconds",
	Help:    "Duration of candidate repository provisioning in seconds",
	Buckets: []float64{0.5, 1, 2.5, 5, 10, 20, 40, 80},
})

var UpstreamRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "broker_upstream_requests_total",
	Help: "Total number of requests to the hosting provider by status class",
}, []string{"host", "status"})

var UpstreamRetriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "broker_upstream_retries_total",
	Help: "Total number of retried hosting provider operations",
}, []string{"operation"})

var SweepDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "broker_daemon_sweep_duration_seconds",
	Help:    "Duration of a deadline enforcer pass in seconds",
	Buckets: prometheus.DefBuckets,
})

var SweepDueTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "broker_daemon_sweep_due_total",
	Help: "Total number of invitations found past their deadline",
})

var SweepExpiredTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "broker_daemon_sweep_expired_total",
	Help: "Total number of invitations expired by the deadline enforcer",
})

var SweepRepairedTokensTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "broker_daemon_sweep_repaired_tokens_total",
	Help: "Total number of live tokens of terminal invitations revoked by the repair pass",
})

var DaemonErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "broker_daemon_errors_total",
	Help: "Total number of failed daemon passes",
}, []string{"daemon"})

var LifecycleEventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "broker_lifecycle_events_total",
	Help: "Total number of received invitation lifecycle events",
}, []string{"to"})

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

package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/afterquery/assessment-broker/database/models"
	"github.com/afterquery/assessment-broker/monitoring"
	"github.com/afterquery/assessment-broker/shared"
	"github.com/afterquery/assessment-broker/utils"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const accessTokenPrefix = "aqt_"

type CredentialBrokerService struct {
	accessTokenRepository shared.AccessTokenRepository
	invitationRepository  shared.InvitationRepository
	provider              shared.HostingProvider
	audit                 shared.AuditService
	hasher                utils.TokenHasher
	clock                 shared.Clock
	retry                 RetryPolicy
}

var _ shared.CredentialBroker = &CredentialBrokerService{}

func NewCredentialBrokerService(accessTokenRepository shared.AccessTokenRepository, invitationRepository shared.InvitationRepository, provider shared.HostingProvider, audit shared.AuditService, hasher utils.TokenHasher, clock shared.Clock, retry RetryPolicy) *CredentialBrokerService {
	return &CredentialBrokerService{
		accessTokenRepository: accessTokenRepository,
		invitationRepository:  invitationRepository,
		provider:              provider,
		audit:                 audit,
		hasher:                hasher,
		clock:                 clock,
		retry:                 exchangeRetryPolicy(retry),
	}
}

// exchangeRetryPolicy shortens policy so a git credential helper waiting on
// an exchange does not hang for the full provisioning backoff.
func exchangeRetryPolicy(policy RetryPolicy) RetryPolicy {
	attempts := policy.MaxAttempts
	if attempts == 0 || attempts > 3 {
		attempts = 3
	}
	return RetryPolicy{
		InitialInterval: min(policy.InitialInterval, 100*time.Millisecond),
		MaxAttempts:     attempts,
	}
}

// Issue replaces every live token of the invitation with a fresh one. The raw
// token is only part of the returned value.
func (s *CredentialBrokerService) Issue(ctx context.Context, inv models.Invitation, repo models.CandidateRepo, ttl time.Duration) (shared.IssuedToken, error) {
	if inv.CompleteDeadline == nil {
		return shared.IssuedToken{}, errors.Wrapf(shared.ErrInvalidTransition, "invitation %s is not started", inv.ID)
	}
	now := s.clock.Now()
	expiresAt := now.Add(ttl)
	if inv.CompleteDeadline.Before(expiresAt) {
		expiresAt = *inv.CompleteDeadline
	}
	if !expiresAt.After(now) {
		return shared.IssuedToken{}, errors.Wrapf(shared.ErrExpired, "invitation %s is past its complete deadline", inv.ID)
	}

	raw, err := utils.GenerateOpaqueToken(accessTokenPrefix)
	if err != nil {
		return shared.IssuedToken{}, errors.Wrap(err, "could not generate access token")
	}

	token := models.AccessToken{
		InvitationID:    inv.ID,
		InstallationID:  repo.InstallationID,
		RepoID:          repo.RepoID,
		RepoFullName:    repo.RepoFullName,
		OpaqueTokenHash: s.hasher.Hash(raw),
		Scope:           models.AccessScopeClonePush,
		ExpiresAt:       expiresAt,
	}
	if err := s.accessTokenRepository.ReplaceLive(nil, &token, now); err != nil {
		return shared.IssuedToken{}, errors.Wrap(err, "could not store access token")
	}

	monitoring.TokenIssuedTotal.Inc()
	s.audit.Record(ctx, models.AuditTokenIssued, models.ActorSystem, &inv.ID, map[string]any{
		"tokenId":   token.ID.String(),
		"repo":      token.RepoFullName,
		"expiresAt": expiresAt,
	})

	return shared.IssuedToken{
		Token:     raw,
		TokenID:   token.ID,
		ExpiresAt: expiresAt,
		Scope:     token.Scope,
	}, nil
}

// classify reports why token can not be exchanged right now. A nil result
// means the token and its invitation are both usable.
func classify(token models.AccessToken, inv models.Invitation, now time.Time) error {
	switch {
	// submit revokes the tokens explicitly, the sweep only because a
	// deadline passed
	case inv.Status == models.InvitationStatusRevoked,
		inv.Status == models.InvitationStatusSubmitted:
		return shared.ErrRevoked
	case inv.Status == models.InvitationStatusExpired:
		return shared.ErrExpired
	case token.Revoked:
		return shared.ErrRevoked
	case !now.Before(token.ExpiresAt):
		return shared.ErrExpired
	case inv.Status != models.InvitationStatusStarted:
		// tokens of a rolled back start are revoked by the next issue
		return shared.ErrRevoked
	case inv.CompleteDeadline != nil && !now.Before(*inv.CompleteDeadline):
		return shared.ErrExpired
	}
	return nil
}

func exchangeOutcome(err error) string {
	switch {
	case err == nil:
		return "granted"
	case errors.Is(err, shared.ErrNotFound):
		return "not_found"
	case errors.Is(err, shared.ErrRevoked):
		return "revoked"
	case errors.Is(err, shared.ErrExpired):
		return "expired"
	case errors.Is(err, shared.ErrUpstreamUnavailable):
		return "upstream_unavailable"
	}
	return "error"
}

// Exchange trades a raw opaque token for a credential scoped to the single
// repository the token is bound to. The credential is only returned if the
// token was still live after minting.
func (s *CredentialBrokerService) Exchange(ctx context.Context, rawToken string) (shared.DelegatedCredential, error) {
	token, credential, err := s.exchange(ctx, rawToken)

	monitoring.TokenExchangeTotal.WithLabelValues(exchangeOutcome(err)).Inc()
	if token.ID != uuid.Nil {
		kind := models.AuditTokenExchanged
		meta := map[string]any{"tokenId": token.ID.String()}
		if err != nil {
			kind = models.AuditTokenExchangeDenied
			meta["reason"] = exchangeOutcome(err)
		}
		s.audit.Record(ctx, kind, models.ActorCandidate, &token.InvitationID, meta)
	}
	return credential, err
}

func (s *CredentialBrokerService) exchange(ctx context.Context, rawToken string) (models.AccessToken, shared.DelegatedCredential, error) {
	hash := s.hasher.Hash(rawToken)
	token, err := s.accessTokenRepository.ReadByHash(hash)
	if err != nil {
		return models.AccessToken{}, shared.DelegatedCredential{}, err
	}
	if !s.hasher.Matches(rawToken, token.OpaqueTokenHash) {
		return models.AccessToken{}, shared.DelegatedCredential{}, errors.Wrap(shared.ErrNotFound, "access token not found")
	}

	inv, err := s.invitationRepository.Read(token.InvitationID)
	if err != nil {
		return token, shared.DelegatedCredential{}, err
	}
	if err := classify(token, inv, s.clock.Now()); err != nil {
		return token, shared.DelegatedCredential{}, errors.Wrapf(err, "access token %s", token.ID)
	}

	scope := token.Scope
	credential, err := retryUpstream(ctx, s.audit, s.retry, "mint_credential", &token.InvitationID, func(ctx context.Context) (shared.DelegatedCredential, error) {
		return s.provider.MintRepositoryCredential(ctx, token.InstallationID, token.RepoID, scope)
	})
	if err != nil {
		if errors.Is(err, shared.ErrInvariantViolation) {
			monitoring.Alert("credential scoped to the wrong repository", err)
		}
		return token, shared.DelegatedCredential{}, err
	}
	if credential.RepositoryID != 0 && credential.RepositoryID != token.RepoID {
		s.revokeMinted(ctx, credential)
		err := errors.Wrapf(shared.ErrInvariantViolation, "minted credential for repository %d, token is bound to %d", credential.RepositoryID, token.RepoID)
		monitoring.Alert("credential scoped to the wrong repository", err)
		return token, shared.DelegatedCredential{}, err
	}

	// a revoke or expiry committed before this update wins
	live, err := s.accessTokenRepository.MarkUsedIfLive(nil, token.ID, s.clock.Now())
	if err != nil {
		s.revokeMinted(ctx, credential)
		return token, shared.DelegatedCredential{}, err
	}
	if !live {
		s.revokeMinted(ctx, credential)
		return token, shared.DelegatedCredential{}, s.reclassify(token)
	}

	return token, credential, nil
}

func (s *CredentialBrokerService) reclassify(token models.AccessToken) error {
	now := s.clock.Now()
	if fresh, err := s.accessTokenRepository.Read(token.ID); err == nil {
		token = fresh
	}
	inv, err := s.invitationRepository.Read(token.InvitationID)
	if err != nil {
		return errors.Wrapf(shared.ErrRevoked, "access token %s", token.ID)
	}
	if err := classify(token, inv, now); err != nil {
		return errors.Wrapf(err, "access token %s", token.ID)
	}
	return errors.Wrapf(shared.ErrRevoked, "access token %s", token.ID)
}

func (s *CredentialBrokerService) revokeMinted(ctx context.Context, credential shared.DelegatedCredential) {
	if err := s.provider.RevokeCredential(context.WithoutCancel(ctx), credential.Token); err != nil {
		slog.Warn("could not revoke minted credential", "repositoryID", credential.RepositoryID, "err", err)
	}
}

// Revoke revokes every live token of the invitation. Revocation is
// permanent, a revoked token never becomes live again.
func (s *CredentialBrokerService) Revoke(ctx context.Context, tx shared.DB, invitationID uuid.UUID) (int64, error) {
	n, err := s.accessTokenRepository.RevokeAllForInvitation(tx, invitationID, s.clock.Now())
	if err != nil {
		return 0, errors.Wrap(err, "could not revoke access tokens")
	}
	if n == 0 {
		return 0, nil
	}
	meta := map[string]any{"count": n}
	if tx != nil {
		return n, s.audit.RecordTx(tx, models.AuditTokenRevoked, models.ActorSystem, &invitationID, meta)
	}
	s.audit.Record(ctx, models.AuditTokenRevoked, models.ActorSystem, &invitationID, meta)
	return n, nil
}

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
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/afterquery/assessment-broker/database/models"
	"github.com/afterquery/assessment-broker/monitoring"
	"github.com/afterquery/assessment-broker/shared"
	"github.com/gosimple/slug"
	"github.com/pkg/errors"
)

const (
	candidateRepoPrefix   = "afterquery-candidate-"
	maxCandidateSlugLen   = 40
	maxRepoNameCandidates = 5
)

type ProvisionerService struct {
	candidateRepoRepository shared.CandidateRepoRepository
	provider                shared.HostingProvider
	audit                   shared.AuditService
	retry                   RetryPolicy
}

var _ shared.Provisioner = &ProvisionerService{}

func NewProvisionerService(candidateRepoRepository shared.CandidateRepoRepository, provider shared.HostingProvider, audit shared.AuditService, retry RetryPolicy) *ProvisionerService {
	return &ProvisionerService{
		candidateRepoRepository: candidateRepoRepository,
		provider:                provider,
		audit:                   audit,
		retry:                   retry,
	}
}

func candidateRepoName(inv models.Invitation) string {
	who := inv.CandidateName
	if who == "" {
		who, _, _ = strings.Cut(inv.CandidateEmail, "@")
	}
	s := slug.Make(who)
	if len(s) > maxCandidateSlugLen {
		s = strings.TrimRight(s[:maxCandidateSlugLen], "-")
	}
	if s == "" {
		s = "candidate"
	}
	return fmt.Sprintf("%s%s-%s", candidateRepoPrefix, s, inv.ID.String()[:8])
}

// the description marks a repository as ours so a retried create can tell
// its own repository apart from a foreign one with the same name
func candidateRepoDescription(inv models.Invitation) string {
	return "Assessment workspace for invitation " + inv.ID.String()
}

func randomSuffix() string {
	b := make([]byte, 3)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand does not fail on supported platforms
		panic(err)
	}
	return hex.EncodeToString(b)
}

// Provision creates the private repository of the invitation and pushes the
// pinned seed commit into it. Calling it again for the same invitation
// returns the repository created by the first call.
func (s *ProvisionerService) Provision(ctx context.Context, snapshot models.SeedSnapshot, inv models.Invitation) (models.CandidateRepo, error) {
	existing, err := s.candidateRepoRepository.ReadByInvitationID(inv.ID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return models.CandidateRepo{}, err
	}
	if snapshot.PinnedCommit == "" {
		return models.CandidateRepo{}, errors.Wrap(shared.ErrInvalidTransition, "seed snapshot has no pinned commit")
	}

	started := time.Now()
	defer func() {
		monitoring.ProvisioningDuration.Observe(time.Since(started).Seconds())
	}()

	owner, _, _ := strings.Cut(snapshot.MirrorRepoFullName, "/")
	hosted, err := s.createRepository(ctx, snapshot.InstallationID, owner, inv)
	if err != nil {
		return models.CandidateRepo{}, err
	}
	_, name, _ := strings.Cut(hosted.FullName, "/")

	branch := snapshot.DefaultBranch
	if _, err := retryUpstream(ctx, s.audit, s.retry, "push seed commit", &inv.ID, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, s.provider.PushCommit(ctx, snapshot.InstallationID, snapshot.MirrorCloneURL, snapshot.PinnedCommit, hosted.CloneURL, branch)
	}); err != nil {
		return models.CandidateRepo{}, err
	}
	if _, err := retryUpstream(ctx, s.audit, s.retry, "set default branch", &inv.ID, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, s.provider.SetDefaultBranch(ctx, snapshot.InstallationID, owner, name, branch)
	}); err != nil {
		return models.CandidateRepo{}, err
	}

	persisted, inserted, err := s.candidateRepoRepository.CreateIfAbsent(nil, &models.CandidateRepo{
		InvitationID:   inv.ID,
		InstallationID: snapshot.InstallationID,
		RepoID:         hosted.ID,
		RepoFullName:   hosted.FullName,
		RepoHTMLURL:    hosted.HTMLURL,
		CloneURL:       hosted.CloneURL,
		DefaultBranch:  branch,
		SeedSHAPinned:  snapshot.PinnedCommit,
		Active:         true,
	})
	if err != nil {
		return models.CandidateRepo{}, errors.Wrap(err, "could not save candidate repository")
	}
	if !inserted && persisted.RepoID != hosted.ID {
		// a concurrent provisioning won, the repository created here is unused
		if err := s.provider.DeleteRepository(context.WithoutCancel(ctx), snapshot.InstallationID, owner, name); err != nil {
			slog.Warn("could not delete orphaned candidate repository", "repo", hosted.FullName, "err", err)
		}
		return persisted, nil
	}

	if inserted {
		s.audit.Record(ctx, models.AuditRepoProvisioned, models.ActorSystem, &inv.ID, map[string]any{
			"repo":      persisted.RepoFullName,
			"repoId":    persisted.RepoID,
			"seedSha":   persisted.SeedSHAPinned,
			"seedId":    snapshot.SeedID.String(),
			"durationS": time.Since(started).Seconds(),
		})
	}
	return persisted, nil
}

// createRepository tries a handful of names. A name that is taken by a
// repository of this invitation is reused, every other collision moves on
// to a suffixed name.
func (s *ProvisionerService) createRepository(ctx context.Context, installationID int64, owner string, inv models.Invitation) (shared.HostedRepository, error) {
	base := candidateRepoName(inv)
	description := candidateRepoDescription(inv)
	name := base

	for i := 0; i < maxRepoNameCandidates; i++ {
		// set after an upstream failure: the create may have gone through
		// even though we never saw the response
		uncertain := false
		repo, err := retryUpstream(ctx, s.audit, s.retry, "create candidate repository", &inv.ID, func(ctx context.Context) (shared.HostedRepository, error) {
			repo, err := s.provider.CreatePrivateRepository(ctx, installationID, owner, name, description)
			if errors.Is(err, shared.ErrUpstreamUnavailable) {
				uncertain = true
			}
			if uncertain && errors.Is(err, shared.ErrRepositoryNameTaken) {
				// our earlier attempt may have created it
				return s.provider.GetRepository(ctx, installationID, owner, name)
			}
			return repo, err
		})
		switch {
		case err == nil && (repo.Description == "" || repo.Description == description):
			return repo, nil
		case err == nil:
			// looked up after a collision but belongs to someone else
			name = base + "-" + randomSuffix()
		case errors.Is(err, shared.ErrRepositoryNameTaken):
			existing, getErr := s.provider.GetRepository(ctx, installationID, owner, name)
			if getErr == nil && existing.Description == description {
				return existing, nil
			}
			name = base + "-" + randomSuffix()
		default:
			return shared.HostedRepository{}, err
		}
	}
	return shared.HostedRepository{}, errors.Wrapf(shared.ErrRepositoryNameTaken, "no free repository name for invitation %s", inv.ID)
}

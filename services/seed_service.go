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
	"net/url"
	"path"
	"strings"

	"github.com/afterquery/assessment-broker/database/models"
	"github.com/afterquery/assessment-broker/shared"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/pkg/errors"
)

const seedRepoPrefix = "afterquery-seed-"

type SeedService struct {
	seedRepository shared.SeedRepository
	provider       shared.HostingProvider
	audit          shared.AuditService
	clock          shared.Clock
	retry          RetryPolicy
}

var _ shared.SeedService = &SeedService{}

func NewSeedService(seedRepository shared.SeedRepository, provider shared.HostingProvider, audit shared.AuditService, clock shared.Clock, retry RetryPolicy) *SeedService {
	return &SeedService{
		seedRepository: seedRepository,
		provider:       provider,
		audit:          audit,
		clock:          clock,
		retry:          retry,
	}
}

func seedRepoName(sourceURL string) string {
	name := strings.TrimSuffix(path.Base(sourceURL), ".git")
	if u, err := url.Parse(sourceURL); err == nil && u.Path != "" {
		name = strings.TrimSuffix(path.Base(u.Path), ".git")
	}
	return seedRepoPrefix + slug.Make(name)
}

// Register mirrors sourceURL into a new repository of the org and pins the
// head of defaultBranch. Registering the same source twice reuses the mirror.
func (s *SeedService) Register(ctx context.Context, org models.Org, sourceURL, defaultBranch string) (models.Seed, error) {
	installation, ok := org.PrimaryInstallation()
	if !ok {
		return models.Seed{}, errors.Wrapf(shared.ErrNotFound, "org %s has no github app installation", org.Slug)
	}
	if defaultBranch == "" {
		defaultBranch = "main"
	}
	owner := org.GithubOrgLogin
	if owner == "" {
		owner = installation.TargetLogin
	}
	name := seedRepoName(sourceURL)

	mirror, err := retryUpstream(ctx, s.audit, s.retry, "create seed mirror", nil, func(ctx context.Context) (shared.HostedRepository, error) {
		repo, err := s.provider.CreatePrivateRepository(ctx, installation.InstallationID, owner, name, "Seed mirror of "+sourceURL)
		if errors.Is(err, shared.ErrRepositoryNameTaken) {
			return s.provider.GetRepository(ctx, installation.InstallationID, owner, name)
		}
		return repo, err
	})
	if err != nil {
		return models.Seed{}, err
	}

	if _, err := retryUpstream(ctx, s.audit, s.retry, "mirror seed", nil, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, s.provider.MirrorRepository(ctx, installation.InstallationID, sourceURL, mirror.CloneURL)
	}); err != nil {
		return models.Seed{}, err
	}

	if _, err := retryUpstream(ctx, s.audit, s.retry, "set seed default branch", nil, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, s.provider.SetDefaultBranch(ctx, installation.InstallationID, owner, name, defaultBranch)
	}); err != nil {
		return models.Seed{}, err
	}

	sha, err := s.branchHead(ctx, installation.InstallationID, mirror.FullName, defaultBranch)
	if err != nil {
		return models.Seed{}, err
	}

	now := s.clock.Now()
	seed := models.Seed{
		OrgID:              org.ID,
		InstallationID:     installation.InstallationID,
		SourceRepoURL:      sourceURL,
		MirrorRepoFullName: mirror.FullName,
		MirrorRepoID:       mirror.ID,
		MirrorCloneURL:     mirror.CloneURL,
		DefaultBranch:      defaultBranch,
		LatestPinnedCommit: sha,
		LastSyncedAt:       &now,
	}
	if err := s.seedRepository.Create(nil, &seed); err != nil {
		return models.Seed{}, errors.Wrap(err, "could not save seed")
	}

	slog.Info("seed registered", "seedID", seed.ID, "mirror", seed.MirrorRepoFullName, "sha", sha)
	return seed, nil
}

func (s *SeedService) branchHead(ctx context.Context, installationID int64, fullName, branch string) (string, error) {
	owner, name, _ := strings.Cut(fullName, "/")
	return retryUpstream(ctx, s.audit, s.retry, "read seed head", nil, func(ctx context.Context) (string, error) {
		return s.provider.GetBranchHead(ctx, installationID, owner, name, branch)
	})
}

// Resync moves the pinned commit of the seed to the current head of its
// mirror branch. Candidate repositories keep their own pin.
func (s *SeedService) Resync(ctx context.Context, seedID uuid.UUID) (string, error) {
	seed, err := s.seedRepository.Read(seedID)
	if err != nil {
		return "", err
	}

	sha, err := s.branchHead(ctx, seed.InstallationID, seed.MirrorRepoFullName, seed.DefaultBranch)
	if err != nil {
		return "", err
	}

	if err := s.seedRepository.UpdatePinnedCommit(nil, seed.ID, sha, s.clock.Now()); err != nil {
		return "", err
	}

	s.audit.Record(ctx, models.AuditSeedResynced, models.ActorAdmin, nil, map[string]any{
		"seedId":   seed.ID.String(),
		"previous": seed.LatestPinnedCommit,
		"current":  sha,
	})
	return sha, nil
}

// Snapshot returns one consistent view of the seed for provisioning.
func (s *SeedService) Snapshot(seedID uuid.UUID) (models.SeedSnapshot, error) {
	seed, err := s.seedRepository.Read(seedID)
	if err != nil {
		return models.SeedSnapshot{}, err
	}
	if seed.LatestPinnedCommit == "" {
		return models.SeedSnapshot{}, errors.Wrapf(shared.ErrInvalidTransition, "seed %s has no pinned commit yet", seed.ID)
	}
	return seed.Snapshot(), nil
}

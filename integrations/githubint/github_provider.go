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
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/afterquery/assessment-broker/config"
	"github.com/afterquery/assessment-broker/database/models"
	"github.com/afterquery/assessment-broker/shared"
	"github.com/google/go-github/v62/github"
	"github.com/pkg/errors"
)

// GithubProvider implements shared.HostingProvider with a GitHub App.
type GithubProvider struct {
	clients *clientFactory
	host    string
	timeout time.Duration
}

var _ shared.HostingProvider = &GithubProvider{}

func NewGithubProvider(cfg config.Config) (*GithubProvider, error) {
	privateKey, err := os.ReadFile(cfg.GithubAppPrivateKeyPath)
	if err != nil {
		return nil, fmt.Errorf("could not read github app private key: %w", err)
	}
	return newGithubProvider(cfg.GithubAppID, privateKey, cfg.GithubAPIURL, cfg.GithubHost, cfg.UpstreamTimeout)
}

func newGithubProvider(appID int64, privateKey []byte, apiURL, host string, timeout time.Duration) (*GithubProvider, error) {
	clients, err := newClientFactory(appID, privateKey, apiURL)
	if err != nil {
		return nil, err
	}
	if host == "" {
		host = "github.com"
	}
	return &GithubProvider{
		clients: clients,
		host:    host,
		timeout: timeout,
	}, nil
}

func (p *GithubProvider) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if p.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, p.timeout)
}

func toHostedRepository(repo *github.Repository) shared.HostedRepository {
	return shared.HostedRepository{
		ID:            repo.GetID(),
		FullName:      repo.GetFullName(),
		HTMLURL:       repo.GetHTMLURL(),
		CloneURL:      repo.GetCloneURL(),
		DefaultBranch: repo.GetDefaultBranch(),
		Description:   repo.GetDescription(),
	}
}

func (p *GithubProvider) CreatePrivateRepository(ctx context.Context, installationID int64, owner, name, description string) (shared.HostedRepository, error) {
	client, err := p.clients.forInstallation(installationID)
	if err != nil {
		return shared.HostedRepository{}, err
	}
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	repo, _, err := client.Repositories.Create(ctx, owner, &github.Repository{
		Name:        github.String(name),
		Description: github.String(description),
		Private:     github.Bool(true),
		AutoInit:    github.Bool(false),
		HasWiki:     github.Bool(false),
		HasProjects: github.Bool(false),
	})
	if err != nil {
		return shared.HostedRepository{}, classify(err, "create repository")
	}
	return toHostedRepository(repo), nil
}

func (p *GithubProvider) GetRepository(ctx context.Context, installationID int64, owner, name string) (shared.HostedRepository, error) {
	client, err := p.clients.forInstallation(installationID)
	if err != nil {
		return shared.HostedRepository{}, err
	}
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	repo, _, err := client.Repositories.Get(ctx, owner, name)
	if err != nil {
		return shared.HostedRepository{}, classify(err, "get repository")
	}
	return toHostedRepository(repo), nil
}

func (p *GithubProvider) SetDefaultBranch(ctx context.Context, installationID int64, owner, name, branch string) error {
	return p.editRepository(ctx, installationID, owner, name, &github.Repository{DefaultBranch: github.String(branch)}, "set default branch")
}

func (p *GithubProvider) ArchiveRepository(ctx context.Context, installationID int64, owner, name string) error {
	return p.editRepository(ctx, installationID, owner, name, &github.Repository{Archived: github.Bool(true)}, "archive repository")
}

func (p *GithubProvider) editRepository(ctx context.Context, installationID int64, owner, name string, patch *github.Repository, op string) error {
	client, err := p.clients.forInstallation(installationID)
	if err != nil {
		return err
	}
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	_, _, err = client.Repositories.Edit(ctx, owner, name, patch)
	return classify(err, op)
}

func (p *GithubProvider) DeleteRepository(ctx context.Context, installationID int64, owner, name string) error {
	client, err := p.clients.forInstallation(installationID)
	if err != nil {
		return err
	}
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	_, err = client.Repositories.Delete(ctx, owner, name)
	return classify(err, "delete repository")
}

// GetBranchHead reads the git ref first and falls back to the branch API,
// which follows renamed branches.
func (p *GithubProvider) GetBranchHead(ctx context.Context, installationID int64, owner, name, branch string) (string, error) {
	client, err := p.clients.forInstallation(installationID)
	if err != nil {
		return "", err
	}
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	ref, _, err := client.Git.GetRef(ctx, owner, name, "heads/"+branch)
	if err == nil && ref.GetObject().GetSHA() != "" {
		return ref.GetObject().GetSHA(), nil
	}
	slog.Debug("could not read branch ref, falling back to branch api", "repo", owner+"/"+name, "branch", branch, "err", err)

	b, _, err := client.Repositories.GetBranch(ctx, owner, name, branch, 1)
	if err != nil {
		return "", classify(err, "get branch")
	}
	return b.GetCommit().GetSHA(), nil
}

func (p *GithubProvider) PushCommit(ctx context.Context, installationID int64, sourceCloneURL, sha, targetCloneURL, branch string) error {
	token, err := p.clients.installationToken(ctx, installationID)
	if err != nil {
		return classify(err, "installation token")
	}
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	return classify(pushPinnedCommit(ctx, tokenAuth(token), sourceCloneURL, sha, targetCloneURL, branch), "push commit")
}

func (p *GithubProvider) MirrorRepository(ctx context.Context, installationID int64, sourceURL, targetCloneURL string) error {
	token, err := p.clients.installationToken(ctx, installationID)
	if err != nil {
		return classify(err, "installation token")
	}
	// mirroring copies every branch and may take longer than a single call
	ctx, cancel := context.WithTimeout(ctx, 4*p.timeout)
	defer cancel()

	return classify(mirror(ctx, p.sourceAuth(sourceURL, token), sourceURL, tokenAuth(token), targetCloneURL), "mirror repository")
}

// MintRepositoryCredential creates an installation token restricted to
// exactly one repository.
func (p *GithubProvider) MintRepositoryCredential(ctx context.Context, installationID int64, repoID int64, scope models.AccessScope) (shared.DelegatedCredential, error) {
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	contents := "read"
	if scope.AllowsPush() {
		contents = "write"
	}

	token, _, err := p.clients.appClient.Apps.CreateInstallationToken(ctx, installationID, &github.InstallationTokenOptions{
		RepositoryIDs: []int64{repoID},
		Permissions: &github.InstallationPermissions{
			Contents: github.String(contents),
			Metadata: github.String("read"),
		},
	})
	if err != nil {
		return shared.DelegatedCredential{}, classify(err, "mint installation token")
	}

	scopedID, err := scopedRepositoryID(token, repoID)
	if err != nil {
		return shared.DelegatedCredential{}, err
	}

	return shared.DelegatedCredential{
		Username:     gitUsername,
		Token:        token.GetToken(),
		ExpiresAt:    token.GetExpiresAt().Time,
		RepositoryID: scopedID,
		Host:         p.host,
	}, nil
}

// scopedRepositoryID reads the repository a minted token is actually
// restricted to. GitHub echoes the selection back; anything but the single
// requested repository means the token reaches further than it should.
func scopedRepositoryID(token *github.InstallationToken, requested int64) (int64, error) {
	if len(token.Repositories) != 1 {
		return 0, errors.Wrapf(shared.ErrInvariantViolation, "minted token is scoped to %d repositories, expected exactly 1", len(token.Repositories))
	}
	got := token.Repositories[0].GetID()
	if got != requested {
		return got, errors.Wrapf(shared.ErrInvariantViolation, "minted token is scoped to repository %d, requested %d", got, requested)
	}
	return got, nil
}

func (p *GithubProvider) RevokeCredential(ctx context.Context, token string) error {
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	client, err := p.clients.tokenClient(ctx, token)
	if err != nil {
		return err
	}
	_, err = client.Apps.RevokeInstallationToken(ctx)
	return classify(err, "revoke installation token")
}

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
	"net/url"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/transport"
	"github.com/go-git/go-git/v5/plumbing/transport/http"
	"github.com/go-git/go-git/v5/storage/memory"
	"github.com/pkg/errors"
)

const gitUsername = "x-access-token"

const pinnedRef = plumbing.ReferenceName("refs/heads/pinned")

func tokenAuth(token string) transport.AuthMethod {
	return &http.BasicAuth{
		Username: gitUsername,
		Password: token,
	}
}

// sourceAuth only hands the installation token to sources on the provider
// host. Foreign sources are fetched anonymously.
func (p *GithubProvider) sourceAuth(sourceURL, token string) transport.AuthMethod {
	u, err := url.Parse(sourceURL)
	if err != nil || u.Hostname() != p.host {
		return nil
	}
	return tokenAuth(token)
}

// pushPinnedCommit fetches the source into memory, points a local branch at
// sha and pushes that branch to the target. Nothing touches the disk.
func pushPinnedCommit(ctx context.Context, auth transport.AuthMethod, sourceURL, sha, targetURL, branch string) error {
	hash := plumbing.NewHash(sha)
	if hash.IsZero() {
		return fmt.Errorf("invalid commit sha %q", sha)
	}

	repo, err := git.Init(memory.NewStorage(), nil)
	if err != nil {
		return err
	}
	if _, err := repo.CreateRemote(&config.RemoteConfig{Name: "seed", URLs: []string{sourceURL}}); err != nil {
		return err
	}
	if _, err := repo.CreateRemote(&config.RemoteConfig{Name: "candidate", URLs: []string{targetURL}}); err != nil {
		return err
	}

	err = repo.FetchContext(ctx, &git.FetchOptions{
		RemoteName: "seed",
		RefSpecs:   []config.RefSpec{"+refs/heads/*:refs/remotes/seed/*"},
		Auth:       auth,
		Tags:       git.NoTags,
	})
	if err != nil && !errors.Is(err, git.NoErrAlreadyUpToDate) {
		return errors.Wrap(err, "could not fetch seed")
	}

	if _, err := repo.CommitObject(hash); err != nil {
		return errors.Wrapf(err, "pinned commit %s is not reachable in the seed", sha)
	}
	if err := repo.Storer.SetReference(plumbing.NewHashReference(pinnedRef, hash)); err != nil {
		return err
	}

	err = repo.PushContext(ctx, &git.PushOptions{
		RemoteName: "candidate",
		RefSpecs:   []config.RefSpec{config.RefSpec(fmt.Sprintf("%s:refs/heads/%s", pinnedRef, branch))},
		Auth:       auth,
	})
	if err != nil && !errors.Is(err, git.NoErrAlreadyUpToDate) {
		return errors.Wrap(err, "could not push pinned commit")
	}
	return nil
}

// mirror copies all branches and tags of the source into the target.
func mirror(ctx context.Context, sourceAuth transport.AuthMethod, sourceURL string, targetAuth transport.AuthMethod, targetURL string) error {
	repo, err := git.Init(memory.NewStorage(), nil)
	if err != nil {
		return err
	}
	if _, err := repo.CreateRemote(&config.RemoteConfig{Name: "source", URLs: []string{sourceURL}}); err != nil {
		return err
	}
	if _, err := repo.CreateRemote(&config.RemoteConfig{Name: "target", URLs: []string{targetURL}}); err != nil {
		return err
	}

	err = repo.FetchContext(ctx, &git.FetchOptions{
		RemoteName: "source",
		RefSpecs:   []config.RefSpec{"+refs/heads/*:refs/heads/*", "+refs/tags/*:refs/tags/*"},
		Auth:       sourceAuth,
	})
	if err != nil && !errors.Is(err, git.NoErrAlreadyUpToDate) {
		return errors.Wrap(err, "could not fetch source")
	}

	err = repo.PushContext(ctx, &git.PushOptions{
		RemoteName: "target",
		RefSpecs:   []config.RefSpec{"+refs/heads/*:refs/heads/*", "+refs/tags/*:refs/tags/*"},
		Auth:       targetAuth,
	})
	if err != nil && !errors.Is(err, git.NoErrAlreadyUpToDate) {
		return errors.Wrap(err, "could not push mirror")
	}
	return nil
}

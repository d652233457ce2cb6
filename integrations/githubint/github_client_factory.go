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
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/afterquery/assessment-broker/common"
	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/google/go-github/v62/github"
	lru "github.com/hashicorp/golang-lru/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/oauth2"
	"golang.org/x/sync/singleflight"
)

const defaultAPIURL = "https://api.github.com/"

// installationClient talks to the API as one app installation. Its transport
// also hands out the installation token used for git over https.
type installationClient struct {
	*github.Client
	transport *ghinstallation.Transport
}

type clientFactory struct {
	appID      int64
	privateKey []byte
	apiURL     string
	transport  http.RoundTripper

	appClient *github.Client

	clients *lru.Cache[int64, installationClient]
	group   singleflight.Group
}

func newClientFactory(appID int64, privateKey []byte, apiURL string) (*clientFactory, error) {
	if apiURL == "" {
		apiURL = defaultAPIURL
	}
	if !strings.HasSuffix(apiURL, "/") {
		apiURL += "/"
	}

	transport := common.WrapTransport(otelhttp.NewTransport(http.DefaultTransport), common.UpstreamMetrics)

	atr, err := ghinstallation.NewAppsTransport(transport, appID, privateKey)
	if err != nil {
		return nil, fmt.Errorf("could not create github app transport: %w", err)
	}
	atr.BaseURL = strings.TrimSuffix(apiURL, "/")

	appClient, err := newGithubClient(&http.Client{Transport: atr}, apiURL)
	if err != nil {
		return nil, err
	}

	clients, err := lru.New[int64, installationClient](256)
	if err != nil {
		return nil, err
	}

	return &clientFactory{
		appID:      appID,
		privateKey: privateKey,
		apiURL:     apiURL,
		transport:  transport,
		appClient:  appClient,
		clients:    clients,
	}, nil
}

func newGithubClient(httpClient *http.Client, apiURL string) (*github.Client, error) {
	client := github.NewClient(httpClient)
	if apiURL == defaultAPIURL {
		return client, nil
	}
	baseURL, err := url.Parse(apiURL)
	if err != nil {
		return nil, fmt.Errorf("invalid github api url: %w", err)
	}
	client.BaseURL = baseURL
	return client, nil
}

// forInstallation returns a cached client. Concurrent callers for the same
// installation share one construction.
func (f *clientFactory) forInstallation(installationID int64) (installationClient, error) {
	if client, ok := f.clients.Get(installationID); ok {
		return client, nil
	}

	v, err, _ := f.group.Do(strconv.FormatInt(installationID, 10), func() (any, error) {
		itr, err := ghinstallation.New(f.transport, f.appID, installationID, f.privateKey)
		if err != nil {
			return installationClient{}, err
		}
		itr.BaseURL = strings.TrimSuffix(f.apiURL, "/")

		gh, err := newGithubClient(&http.Client{Transport: itr}, f.apiURL)
		if err != nil {
			return installationClient{}, err
		}
		client := installationClient{Client: gh, transport: itr}
		f.clients.Add(installationID, client)
		return client, nil
	})
	if err != nil {
		return installationClient{}, err
	}
	return v.(installationClient), nil
}

func (f *clientFactory) installationToken(ctx context.Context, installationID int64) (string, error) {
	client, err := f.forInstallation(installationID)
	if err != nil {
		return "", err
	}
	return client.transport.Token(ctx)
}

// tokenClient authenticates with a bare token, e.g. to revoke it.
func (f *clientFactory) tokenClient(ctx context.Context, token string) (*github.Client, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, &http.Client{Transport: f.transport})
	httpClient := oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}))
	return newGithubClient(httpClient, f.apiURL)
}

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

package commands

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/zalando/go-keyring"
)

var errAccessWindowClosed = errors.New("access window closed")

func NewCredentialCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "credential <get|store|erase>",
		Short: "Git credential helper",
		Long: `Implements the git credential helper protocol.

"get" exchanges the stored access token for a short lived git credential.
"store" and "erase" are accepted and ignored: the broker hands out fresh
credentials on every request.`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"get", "store", "erase"},
		RunE: func(cmd *cobra.Command, args []string) error {
			attributes, err := parseCredentialAttributes(cmd.InOrStdin())
			if err != nil {
				return err
			}

			if args[0] != "get" {
				return nil
			}

			host, _ := cmd.Flags().GetString("host")
			apiURL, _ := cmd.Flags().GetString("apiUrl")
			return credentialGet(cmd.Context(), &http.Client{Timeout: 30 * time.Second}, apiURL, host, attributes, cmd.OutOrStdout())
		},
	}

	return cmd
}

// parseCredentialAttributes reads key=value lines until an empty line or EOF.
func parseCredentialAttributes(r io.Reader) (map[string]string, error) {
	attributes := make(map[string]string)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			break
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return nil, fmt.Errorf("malformed credential attribute %q", line)
		}
		attributes[key] = value
	}
	return attributes, scanner.Err()
}

// credentialGet writes nothing when the request is not meant for this helper,
// so git falls through to the next configured helper.
func credentialGet(ctx context.Context, client *http.Client, apiURL, host string, attributes map[string]string, out io.Writer) error {
	if attributes["protocol"] != "https" || attributes["host"] != host {
		slog.Debug("ignoring credential request", "protocol", attributes["protocol"], "host", attributes["host"])
		return nil
	}

	token, err := keyring.Get(keyringService(host), keyringUser)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			slog.Debug("no token stored", "host", host)
			return nil
		}
		return errors.Wrap(err, "could not read token from keyring")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, strings.TrimSuffix(apiURL, "/")+"/api/v1/git/credential/", nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := client.Do(req)
	if err != nil {
		return errors.Wrap(err, "could not reach the broker")
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		_, err = io.Copy(out, resp.Body)
		return err
	case http.StatusGone:
		return errAccessWindowClosed
	default:
		return fmt.Errorf("broker answered with status %d", resp.StatusCode)
	}
}

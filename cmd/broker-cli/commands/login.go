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
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/zalando/go-keyring"
)

const keyringUser = "candidate"

func keyringService(host string) string {
	return "assessment-broker/" + host
}

func NewLoginCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store the access token from the start page",
		Long: `Store the access token shown on the start page in the system keyring.

The credential helper reads it from there whenever git needs to authenticate
against --host.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			token, _ := cmd.Flags().GetString("token")
			host, _ := cmd.Flags().GetString("host")

			if err := keyring.Set(keyringService(host), keyringUser, token); err != nil {
				return err
			}
			slog.Info("token stored", "host", host)
			return nil
		},
	}

	cmd.Flags().String("token", "", "The access token (required)")
	cmd.MarkFlagRequired("token") // nolint:errcheck
	return cmd
}

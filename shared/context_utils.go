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
// along with this program.  If not, see <http://www.gnu.org/licenses/>.
package shared

import (
	"fmt"

	"github.com/afterquery/assessment-broker/database/models"
	"github.com/google/uuid"
)

func GetInvitation(ctx Context) models.Invitation {
	return ctx.Get("invitation").(models.Invitation)
}

func SetInvitation(ctx Context, invitation models.Invitation) {
	ctx.Set("invitation", invitation)
}

func GetParam(ctx Context, param string) string {
	return SanitizeParam(ctx.Param(param))
}

func GetUUIDParam(ctx Context, param string) (uuid.UUID, error) {
	id, err := uuid.Parse(GetParam(ctx, param))
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid %s: %w", param, err)
	}
	return id, nil
}

func SetIsAdmin(ctx Context) {
	ctx.Set("isAdmin", true)
}

func IsAdmin(ctx Context) bool {
	isAdmin, ok := ctx.Get("isAdmin").(bool)
	return ok && isAdmin
}

func GetOrg(ctx Context) models.Org {
	return ctx.Get("organization").(models.Org)
}

func SetOrg(ctx Context, org models.Org) {
	ctx.Set("organization", org)
}

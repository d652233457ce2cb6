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

package router

import (
	"github.com/afterquery/assessment-broker/config"
	"github.com/afterquery/assessment-broker/controllers"
	"github.com/afterquery/assessment-broker/middlewares"
	"github.com/afterquery/assessment-broker/shared"
	"github.com/afterquery/assessment-broker/utils"
	"github.com/labstack/echo/v4"
)

type CandidateRouter struct {
	*echo.Group
}

func NewCandidateRouter(
	apiV1Router APIV1Router,
	cfg config.Config,
	candidateController *controllers.CandidateController,
	credentialController *controllers.CredentialController,
	invitationRepository shared.InvitationRepository,
	hasher utils.TokenHasher,
) CandidateRouter {
	/**
	Candidate router
	All routes below are reachable without an admin key and are rate limited per client ip.
	*/
	limiter := middlewares.NewIPRateLimiter(cfg.ExchangeRateLimit)
	candidateRouter := apiV1Router.Group.Group("", middlewares.RateLimitMiddleware(limiter))

	startRouter := candidateRouter.Group("/start/:inviteToken", middlewares.InvitationMiddleware(invitationRepository, hasher))
	startRouter.GET("/", candidateController.Accept)
	startRouter.POST("/", candidateController.Start)
	startRouter.POST("/token/", candidateController.Reissue)

	candidateRouter.POST("/submit/:inviteToken/", candidateController.Submit, middlewares.InvitationMiddleware(invitationRepository, hasher))

	candidateRouter.GET("/git/credential/", credentialController.Exchange)

	return CandidateRouter{Group: candidateRouter}
}

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
	"github.com/labstack/echo/v4"
)

type AdminRouter struct {
	*echo.Group
}

func NewAdminRouter(
	apiV1Router APIV1Router,
	cfg config.Config,
	orgController *controllers.OrgController,
	seedController *controllers.SeedController,
	assessmentController *controllers.AssessmentController,
	invitationController *controllers.InvitationController,
	orgRepository shared.OrgRepository,
) AdminRouter {
	adminRouter := apiV1Router.Group.Group("", middlewares.AdminKeyMiddleware(cfg.AdminAPIKey))

	adminRouter.POST("/orgs/", orgController.Create)

	/**
	Organization scoped router
	*/
	orgRouter := adminRouter.Group("/orgs/:orgID", middlewares.OrgMiddleware(orgRepository))
	orgRouter.GET("/", orgController.Read)
	orgRouter.POST("/github-installation/", orgController.AddGithubInstallation)
	orgRouter.GET("/seeds/", orgController.ListSeeds)
	orgRouter.POST("/seeds/", seedController.Create)
	orgRouter.GET("/assessments/", orgController.ListAssessments)
	orgRouter.POST("/assessments/", assessmentController.Create)

	adminRouter.POST("/seeds/:seedID/resync/", seedController.Resync)

	adminRouter.GET("/assessments/:assessmentID/", assessmentController.Read)
	adminRouter.PATCH("/assessments/:assessmentID/", assessmentController.Update)
	adminRouter.POST("/assessments/:assessmentID/invitations/", invitationController.CreateBatch)
	adminRouter.GET("/assessments/:assessmentID/invitations/", invitationController.ListByAssessment)

	adminRouter.GET("/invitations/:invitationID/", invitationController.Read)
	adminRouter.PATCH("/invitations/:invitationID/revoke/", invitationController.Revoke)
	adminRouter.GET("/invitations/:invitationID/audit/", invitationController.Audit)

	return AdminRouter{Group: adminRouter}
}

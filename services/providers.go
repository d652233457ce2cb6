package services

import (
	"github.com/afterquery/assessment-broker/config"
	"github.com/afterquery/assessment-broker/shared"
	"github.com/afterquery/assessment-broker/utils"
	"go.uber.org/fx"
)

// Module provides all service-layer constructors
var Module = fx.Options(
	fx.Provide(NewRetryPolicy),
	fx.Provide(shared.NewSystemClock),
	fx.Provide(func(cfg config.Config) (utils.TokenHasher, error) {
		return utils.NewTokenHasher(cfg.TokenPepper)
	}),
	fx.Provide(fx.Annotate(NewAuditService, fx.As(new(shared.AuditService)))),
	fx.Provide(fx.Annotate(NewSeedService, fx.As(new(shared.SeedService)))),
	fx.Provide(fx.Annotate(NewProvisionerService, fx.As(new(shared.Provisioner)))),
	fx.Provide(fx.Annotate(NewCredentialBrokerService, fx.As(new(shared.CredentialBroker)))),
	fx.Provide(fx.Annotate(NewAssessmentService, fx.As(new(shared.AssessmentService)))),
	fx.Provide(fx.Annotate(NewInvitationService, fx.As(new(shared.InvitationService)))),
)

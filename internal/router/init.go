package router

import (
	"github.com/wastewise/wastewise-api/internal/application"
	"github.com/wastewise/wastewise-api/internal/container"
	pginfra "github.com/wastewise/wastewise-api/internal/infrastructure/postgres"
	handlers "github.com/wastewise/wastewise-api/internal/interface/http"
	"github.com/wastewise/wastewise-api/internal/oauth"
	"github.com/wastewise/wastewise-api/internal/router/modules"
	"github.com/wastewise/wastewise-api/pkg/helpers"
)

// InitModules builds every feature module from the container singletons and
// registers them with the router registry. Call once during startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	pool := container.GetPGPool()
	rdb := container.GetRedis()

	authSvc := application.NewAuthService(
		pginfra.NewAccountRepository(pool),
		container.GetJWT(),
		helpers.NewRedisDenylist(rdb),
		logger,
	)
	google := oauth.NewGoogleProvider(oauth.GoogleConfig{
		ClientID:     cfg.GoogleClientID,
		ClientSecret: cfg.GoogleClientSecret,
		RedirectURL:  cfg.GoogleRedirectURI,
	})

	scheduleSvc := application.NewScheduleService(pginfra.NewScheduleRepository(pool))
	paymentSvc := application.NewPaymentService(pginfra.NewPaymentRepository(pool))
	checkoutSvc := application.NewCheckoutService(
		pginfra.NewCheckoutRepository(pool),
		cfg.StripeSecretKey,
		cfg.CheckoutSuccessURL,
		cfg.CheckoutCancelURL,
		logger,
	)
	feedbackSvc := application.NewFeedbackService(
		pginfra.NewFeedbackRepository(pool),
		container.GetES(),
		cfg.ESFeedbackIndex,
		container.GetRabbitPub(),
		logger,
	)
	collectionSvc := application.NewCollectionService(pginfra.NewCollectionRepository(pool))
	wasteTypeSvc := application.NewWasteTypeService(pginfra.NewWasteTypeRepository(pool))

	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc, google, rdb, cfg, logger), authSvc))
	r.Add(modules.NewScheduleModule(handlers.NewScheduleHandler(scheduleSvc, logger), authSvc))
	r.Add(modules.NewPaymentModule(handlers.NewPaymentHandler(paymentSvc, logger), authSvc))
	r.Add(modules.NewCheckoutModule(handlers.NewCheckoutHandler(checkoutSvc, logger), authSvc))
	r.Add(modules.NewFeedbackModule(handlers.NewFeedbackHandler(feedbackSvc, logger), authSvc))
	r.Add(modules.NewCollectionModule(handlers.NewCollectionHandler(collectionSvc, logger), authSvc))
	r.Add(modules.NewWasteTypeModule(handlers.NewWasteTypeHandler(wasteTypeSvc, logger), authSvc))
	r.Add(modules.NewReportModule(handlers.NewReportHandler(paymentSvc, scheduleSvc, collectionSvc, logger), authSvc))
}

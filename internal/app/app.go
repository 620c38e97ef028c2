package app

import (
	"context"
	"fmt"

	"github.com/DIMO-Network/line-shop-bot/internal/api"
	"github.com/DIMO-Network/line-shop-bot/internal/auth"
	"github.com/DIMO-Network/line-shop-bot/internal/clients/line"
	"github.com/DIMO-Network/line-shop-bot/internal/config"
	"github.com/DIMO-Network/line-shop-bot/internal/controllers/webhook"
	"github.com/DIMO-Network/line-shop-bot/internal/metrics"
	"github.com/DIMO-Network/line-shop-bot/internal/replies"
	"github.com/DIMO-Network/line-shop-bot/internal/services/eventrouter"
	"github.com/DIMO-Network/server-garage/pkg/fibercommon"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

// CreateServers builds the webhook fiber app from settings, warning about missing LINE credentials.
func CreateServers(_ context.Context, settings *config.Settings, logger zerolog.Logger) (*fiber.App, error) {
	if settings.ChannelSecret == "" {
		logger.Warn().Msg("LINE_CHANNEL_SECRET is not set; every webhook call will be rejected")
	}
	if settings.ChannelAccessToken == "" {
		logger.Warn().Msg("LINE_CHANNEL_ACCESS_TOKEN is not set; replies cannot be sent")
	}
	if settings.OperatorUserID == "" {
		logger.Info().Msg("OPERATOR_USER_ID is not set; chat requests will not be forwarded")
	}

	app, err := CreateFiberApp(logger, settings, prometheus.DefaultRegisterer)
	if err != nil {
		return nil, fmt.Errorf("failed to create fiber app: %w", err)
	}
	return app, nil
}

// CreateFiberApp wires the LINE client, reply catalog and event router behind the webhook routes.
// Metrics are registered on reg.
func CreateFiberApp(logger zerolog.Logger, settings *config.Settings, reg prometheus.Registerer) (*fiber.App, error) {
	logger.Info().Msg("Starting LINE shop bot...")

	lineClient, err := line.NewClient(settings.LineAPIBaseURL, settings.ChannelAccessToken, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create LINE client: %w", err)
	}
	profiles := line.NewProfileCache(settings.ProfileCacheTTL, 2*settings.ProfileCacheTTL, lineClient)
	botMetrics := metrics.New(reg)

	router := eventrouter.New(eventrouter.Config{
		OperatorUserID: settings.OperatorUserID,
		PushTimeout:    settings.PushTimeout,
	}, replies.NewCatalog(settings.Shop), lineClient, profiles, botMetrics)

	webhookController := webhook.NewWebhookController(router, botMetrics)
	verifier := auth.NewSignatureVerifier(settings.ChannelSecret)

	app := fiber.New(fiber.Config{
		ErrorHandler:          api.ErrorHandler,
		DisableStartupMessage: true,
	})
	app.Use(fibercommon.ContextLoggerMiddleware)
	app.Use(recover.New())

	logger.Info().Msg("Registering routes...")

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"data": "Server is up and running",
		})
	})

	// Add instead of Get: Get also registers HEAD, which must get a 405.
	app.Add(fiber.MethodGet, "/webhook", webhookController.HealthCheck)
	app.Post("/webhook", auth.SignatureMiddleware(verifier), webhookController.HandleWebhook)
	app.All("/webhook", webhookController.MethodNotAllowed)

	return app, nil
}

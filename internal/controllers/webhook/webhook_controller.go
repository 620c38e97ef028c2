//go:generate go tool mockgen -source=webhook_controller.go -destination=webhook_controller_mock_test.go -package=webhook
package webhook

import (
	"context"
	"time"

	"github.com/DIMO-Network/line-shop-bot/internal/events"
	"github.com/DIMO-Network/server-garage/pkg/richerrors"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

const (
	// AllowedMethods is sent in the Allow header of 405 responses.
	AllowedMethods = "POST, GET"

	healthMessage  = "LINE Bot Webhook is working!"
	successMessage = "Success"
)

// EventRouter handles the events of one webhook call.
type EventRouter interface {
	Route(ctx context.Context, evts []events.Event)
}

// LatencyRecorder records how long webhook calls take.
type LatencyRecorder interface {
	ObserveWebhookLatency(d time.Duration)
}

// WebhookController is the controller for the LINE webhook endpoint.
type WebhookController struct {
	router  EventRouter
	metrics LatencyRecorder
	now     func() time.Time
}

// NewWebhookController creates a new WebhookController.
func NewWebhookController(router EventRouter, recorder LatencyRecorder) *WebhookController {
	return &WebhookController{
		router:  router,
		metrics: recorder,
		now:     time.Now,
	}
}

// HandleWebhook accepts a signed webhook call and routes its events.
// The signature has already been checked by auth.SignatureMiddleware.
// Push failures never change the response; only a body that cannot be
// decoded fails the request.
func (w *WebhookController) HandleWebhook(c *fiber.Ctx) error {
	start := w.now()
	defer func() {
		if w.metrics != nil {
			w.metrics.ObserveWebhookLatency(w.now().Sub(start))
		}
	}()

	evts, err := events.Parse(c.Body())
	if err != nil {
		return richerrors.Error{
			ExternalMsg: "Internal Server Error",
			Err:         err,
			Code:        fiber.StatusInternalServerError,
		}
	}

	logger := zerolog.Ctx(c.UserContext())
	if len(evts) == 0 {
		// LINE sends an empty batch when the webhook URL is verified from the console.
		logger.Info().Msg("Webhook call without events")
		return c.JSON(WebhookResponse{Message: successMessage})
	}

	logger.Debug().Int("event_count", len(evts)).Msg("Routing webhook events")
	w.router.Route(c.UserContext(), evts)

	return c.JSON(WebhookResponse{Message: successMessage})
}

// HealthCheck answers GET /webhook so the endpoint can be probed from a browser.
func (w *WebhookController) HealthCheck(c *fiber.Ctx) error {
	return c.JSON(HealthResponse{
		Message:   healthMessage,
		Timestamp: w.now().UTC().Format(time.RFC3339Nano),
	})
}

// MethodNotAllowed rejects every method other than GET and POST.
func (w *WebhookController) MethodNotAllowed(c *fiber.Ctx) error {
	c.Set(fiber.HeaderAllow, AllowedMethods)
	return c.Status(fiber.StatusMethodNotAllowed).SendString("Method " + c.Method() + " Not Allowed")
}

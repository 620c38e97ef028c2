//go:generate go tool mockgen -source=router.go -destination=router_mock_test.go -package=eventrouter
package eventrouter

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/DIMO-Network/line-shop-bot/internal/events"
	"github.com/DIMO-Network/line-shop-bot/internal/messages"
	"github.com/DIMO-Network/line-shop-bot/internal/metrics"
	"github.com/DIMO-Network/line-shop-bot/internal/replies"
	"github.com/rs/zerolog"
)

const defaultPushTimeout = 5 * time.Second

// Pusher sends messages to a user through the push API.
type Pusher interface {
	Push(ctx context.Context, to string, msgs ...messages.Message) error
}

// ProfileGetter resolves a user id to a display name.
type ProfileGetter interface {
	DisplayName(ctx context.Context, userID string) (string, error)
}

// MetricsRecorder counts routed events and push calls.
type MetricsRecorder interface {
	ObserveEvent(eventType, status string)
	ObservePush(status string)
}

// Config holds the process wide values the router needs.
type Config struct {
	// OperatorUserID receives a notification when a user asks for a chat. Empty disables it.
	OperatorUserID string
	// PushTimeout bounds every push API call.
	PushTimeout time.Duration
}

// Router dispatches webhook events to their handler and pushes the reply.
type Router struct {
	cfg      Config
	catalog  *replies.Catalog
	pusher   Pusher
	profiles ProfileGetter
	metrics  MetricsRecorder
}

// New creates a Router. profiles may be nil, in which case operator notifications carry only the user id.
func New(cfg Config, catalog *replies.Catalog, pusher Pusher, profiles ProfileGetter, recorder MetricsRecorder) *Router {
	if cfg.PushTimeout <= 0 {
		cfg.PushTimeout = defaultPushTimeout
	}
	return &Router{
		cfg:      cfg,
		catalog:  catalog,
		pusher:   pusher,
		profiles: profiles,
		metrics:  recorder,
	}
}

// Route handles evts one after the other. A failing event is logged and does not stop the rest.
func (r *Router) Route(ctx context.Context, evts []events.Event) {
	for _, evt := range evts {
		meta := evt.EventMeta()
		logger := zerolog.Ctx(ctx).With().
			Str("event_type", meta.Type).
			Str("webhook_event_id", meta.WebhookEventID).
			Str("user_id", meta.UserID).
			Logger()
		if meta.IsRedelivery {
			logger.Info().Msg("Handling redelivered event")
		}

		replied, err := r.safeHandle(logger.WithContext(ctx), evt)
		switch {
		case err != nil:
			logger.Error().Err(err).Msg("failed to handle webhook event")
			r.observeEvent(meta.Type, metrics.StatusError)
		case !replied:
			logger.Debug().Msg("No reply for event")
			r.observeEvent(meta.Type, metrics.StatusIgnored)
		default:
			r.observeEvent(meta.Type, metrics.StatusOK)
		}
	}
}

func (r *Router) safeHandle(ctx context.Context, evt events.Event) (replied bool, err error) {
	defer func() {
		if p := recover(); p != nil {
			replied = false
			err = fmt.Errorf("panic while handling %s event: %v", evt.EventMeta().Type, p)
		}
	}()
	return r.HandleEvent(ctx, evt)
}

// HandleEvent handles a single event. replied is false when the event warrants no reply.
func (r *Router) HandleEvent(ctx context.Context, evt events.Event) (replied bool, err error) {
	switch e := evt.(type) {
	case events.FollowEvent:
		return true, r.send(ctx, e.UserID, r.catalog.Welcome())
	case events.MessageEvent:
		return true, r.send(ctx, e.UserID, r.catalog.ForIntent(replies.ClassifyText(e.Text)))
	case events.PostbackEvent:
		return r.handlePostback(ctx, e)
	case events.UnsupportedEvent:
		return false, nil
	default:
		return false, fmt.Errorf("unexpected event variant %T", evt)
	}
}

func (r *Router) handlePostback(ctx context.Context, e events.PostbackEvent) (bool, error) {
	action, ok := replies.ParseAction(e.Data)
	if !ok {
		zerolog.Ctx(ctx).Debug().Str("postback_data", e.Data).Msg("Unknown postback code")
		return false, nil
	}
	msg, ok := r.catalog.ForAction(action)
	if !ok {
		return false, nil
	}
	if err := r.send(ctx, e.UserID, msg); err != nil {
		return true, err
	}
	if action == replies.ActionChatRequest {
		return true, r.notifyOperator(ctx, e.UserID)
	}
	return true, nil
}

// notifyOperator forwards a single chat request notice to the operator account.
func (r *Router) notifyOperator(ctx context.Context, userID string) error {
	logger := zerolog.Ctx(ctx)
	if r.cfg.OperatorUserID == "" {
		logger.Warn().Msg("OPERATOR_USER_ID is not set; chat request not forwarded")
		return nil
	}

	var displayName string
	if r.profiles != nil {
		name, err := r.profiles.DisplayName(ctx, userID)
		if err != nil {
			logger.Warn().Err(err).Msg("failed to look up requester profile")
		} else {
			displayName = name
		}
	}

	if err := r.send(ctx, r.cfg.OperatorUserID, r.catalog.OperatorNotice(userID, displayName)); err != nil {
		return fmt.Errorf("failed to notify operator: %w", err)
	}
	logger.Info().Msg("Chat request forwarded to operator")
	return nil
}

func (r *Router) send(ctx context.Context, to string, msg messages.Message) error {
	if to == "" {
		return errors.New("event has no source user id")
	}
	pushCtx, cancel := context.WithTimeout(ctx, r.cfg.PushTimeout)
	defer cancel()

	if err := r.pusher.Push(pushCtx, to, msg); err != nil {
		r.observePush(metrics.StatusError)
		return fmt.Errorf("failed to push reply: %w", err)
	}
	r.observePush(metrics.StatusOK)
	return nil
}

func (r *Router) observeEvent(eventType, status string) {
	if r.metrics != nil {
		r.metrics.ObserveEvent(eventType, status)
	}
}

func (r *Router) observePush(status string) {
	if r.metrics != nil {
		r.metrics.ObservePush(status)
	}
}

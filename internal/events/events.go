// Package events decodes LINE webhook request bodies into a closed set of event variants.
package events

import (
	"encoding/json"
	"fmt"
)

// Type names as sent by the LINE platform.
const (
	TypeFollow   = "follow"
	TypeMessage  = "message"
	TypePostback = "postback"

	messageTypeText = "text"
)

// Event is one inbound webhook event. The set of implementations is closed:
// FollowEvent, MessageEvent, PostbackEvent and UnsupportedEvent.
type Event interface {
	// EventMeta returns the fields shared by every event.
	EventMeta() Meta
	isEvent()
}

// Meta carries the fields common to every event variant.
type Meta struct {
	Type           string
	UserID         string
	ReplyToken     string
	WebhookEventID string
	Timestamp      int64
	IsRedelivery   bool
}

// FollowEvent is sent when a user adds the bot as a friend or unblocks it.
type FollowEvent struct {
	Meta
}

// MessageEvent is a text message sent by a user.
type MessageEvent struct {
	Meta
	MessageID string
	Text      string
}

// PostbackEvent is sent when a user taps a button carrying postback data.
type PostbackEvent struct {
	Meta
	Data string
}

// UnsupportedEvent is any event the bot does not react to, such as unfollow
// or a non-text message. Detail holds the message subtype when there is one.
type UnsupportedEvent struct {
	Meta
	Detail string
}

// EventMeta implements Event for every variant that embeds Meta.
func (m Meta) EventMeta() Meta { return m }

func (FollowEvent) isEvent()      {}
func (MessageEvent) isEvent()     {}
func (PostbackEvent) isEvent()    {}
func (UnsupportedEvent) isEvent() {}

// Payload is the webhook request body.
type Payload struct {
	Destination string     `json:"destination"`
	Events      []rawEvent `json:"events"`
}

type rawEvent struct {
	Type            string `json:"type"`
	Mode            string `json:"mode"`
	Timestamp       int64  `json:"timestamp"`
	WebhookEventID  string `json:"webhookEventId"`
	ReplyToken      string `json:"replyToken"`
	DeliveryContext struct {
		IsRedelivery bool `json:"isRedelivery"`
	} `json:"deliveryContext"`
	Source struct {
		Type    string `json:"type"`
		UserID  string `json:"userId"`
		GroupID string `json:"groupId"`
		RoomID  string `json:"roomId"`
	} `json:"source"`
	Message *struct {
		ID   string `json:"id"`
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"message"`
	Postback *struct {
		Data string `json:"data"`
	} `json:"postback"`
}

// Parse decodes a webhook body into events, in the order they were sent.
// A body without an events array yields an empty slice.
func Parse(body []byte) ([]Event, error) {
	var payload Payload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("failed to parse webhook body: %w", err)
	}
	evts := make([]Event, 0, len(payload.Events))
	for i := range payload.Events {
		evts = append(evts, payload.Events[i].toEvent())
	}
	return evts, nil
}

func (r *rawEvent) toEvent() Event {
	meta := Meta{
		Type:           r.Type,
		UserID:         r.Source.UserID,
		ReplyToken:     r.ReplyToken,
		WebhookEventID: r.WebhookEventID,
		Timestamp:      r.Timestamp,
		IsRedelivery:   r.DeliveryContext.IsRedelivery,
	}
	switch r.Type {
	case TypeFollow:
		return FollowEvent{Meta: meta}
	case TypeMessage:
		if r.Message == nil {
			return UnsupportedEvent{Meta: meta}
		}
		if r.Message.Type != messageTypeText {
			return UnsupportedEvent{Meta: meta, Detail: r.Message.Type}
		}
		return MessageEvent{Meta: meta, MessageID: r.Message.ID, Text: r.Message.Text}
	case TypePostback:
		if r.Postback == nil {
			return UnsupportedEvent{Meta: meta}
		}
		return PostbackEvent{Meta: meta, Data: r.Postback.Data}
	default:
		return UnsupportedEvent{Meta: meta}
	}
}

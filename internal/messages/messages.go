// Package messages defines the outbound LINE message payloads sent through the push API.
// Every type marshals its own "type" discriminator, so values can be built as plain literals.
package messages

import "encoding/json"

// Message is an outbound message. Implementations are TextMessage and FlexMessage.
type Message interface {
	json.Marshaler
	isMessage()
}

// TextMessage is a plain text message.
type TextMessage struct {
	Text string `json:"text"`
}

// FlexMessage is a rich card layout. AltText is shown in notifications and chat lists.
type FlexMessage struct {
	AltText  string        `json:"altText"`
	Contents FlexContainer `json:"contents"`
}

func (TextMessage) isMessage() {}
func (FlexMessage) isMessage() {}

// MarshalJSON implements json.Marshaler.
func (m TextMessage) MarshalJSON() ([]byte, error) {
	type alias TextMessage
	return marshalTyped("text", alias(m))
}

// MarshalJSON implements json.Marshaler.
func (m FlexMessage) MarshalJSON() ([]byte, error) {
	type alias FlexMessage
	return marshalTyped("flex", alias(m))
}

// NewText returns a text message.
func NewText(text string) TextMessage {
	return TextMessage{Text: text}
}

// NewFlex returns a flex message wrapping contents.
func NewFlex(altText string, contents FlexContainer) FlexMessage {
	return FlexMessage{AltText: altText, Contents: contents}
}

// marshalTyped encodes v as a JSON object with a leading "type" member.
func marshalTyped(typ string, v any) ([]byte, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	head := []byte(`{"type":` + quote(typ))
	if len(body) <= 2 {
		return append(head, '}'), nil
	}
	head = append(head, ',')
	return append(head, body[1:]...), nil
}

func quote(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

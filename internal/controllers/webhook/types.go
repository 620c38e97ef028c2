package webhook

// WebhookResponse is returned once the events of a webhook call have been accepted.
type WebhookResponse struct {
	// Message is always "Success".
	Message string `json:"message"`
}

// HealthResponse is returned by GET /webhook.
type HealthResponse struct {
	// Message is a fixed liveness message.
	Message string `json:"message"`
	// Timestamp is the server time in RFC 3339 (ISO 8601) format.
	Timestamp string `json:"timestamp"`
}

package dto

import "time"

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// PanicResponse is returned when a handler panics.
type PanicResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// ConfigResponse exposes public processor settings to the browser.
type ConfigResponse struct {
	ClientID string `json:"clientId"`
	Mode     string `json:"mode"`
}

// HealthResponse describes service liveness.
type HealthResponse struct {
	Status     string    `json:"status"`
	Message    string    `json:"message"`
	Timestamp  time.Time `json:"timestamp"`
	PayPalMode string    `json:"paypal_mode"`
}

// WebhookEvent is the recorded subset of a processor notification.
type WebhookEvent struct {
	ID           string `json:"id"`
	EventType    string `json:"event_type"`
	ResourceType string `json:"resource_type"`
}

// WebhookAck acknowledges a notification.
type WebhookAck struct {
	Received bool `json:"received"`
}

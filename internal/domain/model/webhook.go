package model

// WebhookEvent is the subset of a processor notification that gets recorded.
type WebhookEvent struct {
	ID           string
	EventType    string
	ResourceType string
}

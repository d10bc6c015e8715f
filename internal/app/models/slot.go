package models

import "time"

// SlotSnapshot is the document written to object storage by the snapshot worker.
type SlotSnapshot struct {
	TutorID            string      `json:"tutorId"`
	From               time.Time   `json:"from"`
	To                 time.Time   `json:"to"`
	GranularityMinutes int         `json:"granularityMinutes"`
	DurationMinutes    int         `json:"durationMinutes"`
	Timezone           string      `json:"timezone"`
	Slots              []time.Time `json:"slots"`
	GeneratedAt        time.Time   `json:"generatedAt"`
}

// Event is published to the event sink whenever availability or slots change.
type Event struct {
	ID         string         `json:"id"`
	Type       string         `json:"type"`
	TutorID    string         `json:"tutorId,omitempty"`
	RequestID  string         `json:"requestId,omitempty"`
	OccurredAt time.Time      `json:"occurredAt"`
	Attributes map[string]any `json:"attributes,omitempty"`
}

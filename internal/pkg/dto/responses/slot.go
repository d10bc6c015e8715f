package responses

import "time"

type SessionSlots struct {
	TutorID            string   `json:"tutor_id,omitempty"`
	GranularityMinutes int      `json:"granularity_minutes"`
	DurationMinutes    int      `json:"duration_minutes"`
	Timezone           string   `json:"timezone"`
	Slots              []string `json:"slots"`
	Cached             bool     `json:"cached"`
}

type SlotSnapshotURL struct {
	TutorID   string    `json:"tutor_id"`
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}

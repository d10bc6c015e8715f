package responses

type AvailabilityBlock struct {
	ID        string `json:"id"`
	TutorID   string `json:"tutor_id"`
	Start     string `json:"start"`
	End       string `json:"end"`
	Source    string `json:"source,omitempty"`
	CreatedAt string `json:"created_at"`
}

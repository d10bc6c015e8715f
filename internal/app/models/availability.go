package models

import "time"

// AvailabilityBlock is one contiguous window a tutor marked as open.
type AvailabilityBlock struct {
	ID        string    `json:"id" bson:"_id"`
	TutorID   string    `json:"tutorId" bson:"tutorId"`
	Start     time.Time `json:"start" bson:"start"`
	End       time.Time `json:"end" bson:"end"`
	Source    string    `json:"source,omitempty" bson:"source,omitempty"`
	TimeModel `bson:",inline"`
}

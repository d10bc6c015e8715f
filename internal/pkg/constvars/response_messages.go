package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"

	// Slot messages
	ExtractSlotsSuccessMessage    = "session slots extracted successfully"
	GetTutorSlotsSuccessMessage   = "get tutor session slots successfully"
	GetSlotSnapshotSuccessMessage = "get slot snapshot url successfully"

	// Availability messages
	CreateAvailabilitySuccessMessage = "availability blocks created successfully"
	GetAvailabilitySuccessMessage    = "get availability blocks successfully"
	DeleteAvailabilitySuccessMessage = "availability block deleted successfully"

	HealthCheckSuccessMessage = "service is healthy"
)

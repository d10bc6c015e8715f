package requests

type Interval struct {
	Start string `json:"start" validate:"required"`
	End   string `json:"end" validate:"required"`
}

// ExtractSlots leaves Granularity and Duration nil when the caller wants the
// configured defaults. An explicit zero is passed through and rejected.
type ExtractSlots struct {
	Intervals   []Interval `json:"intervals" validate:"max=1000,dive"`
	Granularity *int       `json:"granularity" validate:"omitempty,max=10080"`
	Duration    *int       `json:"duration" validate:"omitempty,max=10080"`
}

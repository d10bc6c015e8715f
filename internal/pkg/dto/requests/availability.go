package requests

type CreateAvailability struct {
	Intervals []Interval `json:"intervals" validate:"required,min=1,max=500,dive"`
	Source    string     `json:"source" validate:"omitempty,max=64"`
}

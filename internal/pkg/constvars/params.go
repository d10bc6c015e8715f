package constvars

const (
	URLParamTutorID = "tutor_id"
	URLParamBlockID = "block_id"
)

const (
	URLQueryParamFrom        = "from"
	URLQueryParamTo          = "to"
	URLQueryParamGranularity = "granularity"
	URLQueryParamDuration    = "duration"
)

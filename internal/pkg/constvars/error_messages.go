package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"numeric":  "must be a number",
	"min":      "must contain at least %s item(s)",
	"max":      "must contain at most %s item(s)",
	"gt":       "must be greater than %s",
	"gte":      "must be greater than or equal to %s",
	"lt":       "must be less than %s",
	"lte":      "must be less than or equal to %s",
	"oneof":    "must be one of [%s]",
	"uuid":     "must be a valid UUID",
	"dive":     "contains an invalid item",
	"tutor_id": "must be 1-64 letters, digits, dashes or underscores",
}

// Numeric overrides for tags whose default wording counts items
var NumericValidationErrorMessages = map[string]string{
	"min": "must be at least %s",
	"max": "must be at most %s",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"gt":    true,
	"gte":   true,
	"lt":    true,
	"lte":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientTooManyRequests               = "too many requests, please try again later"
	ErrClientResourceNotFound              = "the requested resource was not found"
	ErrClientInvalidAvailability           = "one of the availability blocks is invalid: %s"
	ErrClientInvalidSlotConfiguration      = "slot granularity and duration must be between 1 and 10080 minutes"
	ErrClientTooManySlots                  = "too many slots requested, narrow the range or use a larger granularity"
	ErrClientInvalidTimeRange              = "'from' must be before 'to'"
	ErrClientSnapshotNotReady              = "slot snapshot is not generated yet"
)

// Error messages for developers
const (
	ErrDevInvalidInput               = "invalid input"
	ErrDevValidationFailed           = "validation failed"
	ErrDevURLParamIDValidationFailed = "failed to validate url param %s"
	ErrDevInvalidFormat              = "invalid format on %s"
	ErrDevCannotParseJSON            = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON          = "cannot convert struct or other data types to JSON"
	ErrDevCannotParseTime            = "cannot parse time value"
	ErrDevServerProcess              = "server failed to process the request"
	ErrDevServerDeadlineExceeded     = "deadline exceeded"
	ErrDevServerPanicRecovered       = "panic recovered while serving request"
	ErrDevRateLimitExceeded          = "rate limit exceeded"

	// Slot messages
	ErrDevSlotInvalidInterval      = "availability interval rejected by normalizer"
	ErrDevSlotInvalidConfiguration = "slot generator configuration rejected"
	ErrDevSlotInvalidTimeRange     = "slot query range is empty or reversed"
	ErrDevSlotSnapshotNotFound     = "slot snapshot object does not exist for tutor %s"
	ErrDevSlotTooManySlots         = "slot generation exceeds the per-request limit"

	// Database messages
	ErrDevDBFailedToInsertDocument   = "failed to insert document into database"
	ErrDevDBFailedToFindDocument     = "failed when do find document on database"
	ErrDevDBFailedToDeleteDocument   = "failed when do delete document on database"
	ErrDevDBFailedToIterateDocuments = "failed when iterating documents from database"
	ErrDevDBFailedToCreateIndex      = "failed to create index on database"
	ErrDevDBDocumentNotFound         = "document not found"

	// Minio messages
	ErrDevMinioFailedToCreateObject          = "failed to create object into minio storage with bucket name '%s'"
	ErrDevMinioFailedToGetObjectPresignedURL = "failed to get object URL from minio storage with bucket name '%s'"
	ErrDevMinioFailedToStatObject            = "failed to stat object from minio storage with bucket name '%s'"

	// Redis messages
	ErrDevRedisSetData        = "failed to SET data into redis"
	ErrDevRedisGetNoData      = "failed to GET data from redis with key '%s'"
	ErrDevRedisDeleteData     = "failed to DEL data from redis"
	ErrDevRedisIncrementValue = "failed to INCR value in redis"
	ErrDevRedisExpire         = "failed to EXPIRE key in redis"
	ErrDevRedisUnlock         = "failed to release redis lock"

	// RabbitMQ messages
	ErrDevRabbitMQOpenChannel    = "failed to open rabbitmq channel"
	ErrDevRabbitMQDeclareQueue   = "failed to declare rabbitmq queue '%s'"
	ErrDevRabbitMQPublishMessage = "failed to publish message into rabbitmq queue '%s'"
)

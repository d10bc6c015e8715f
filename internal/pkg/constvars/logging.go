package constvars

const (
	LoggingRequestIDKey = "request_id"

	LoggingMethodKey     = "method"
	LoggingEndpointKey   = "endpoint"
	LoggingRemoteAddrKey = "remote_addr"
	LoggingUserAgentKey  = "user_agent"
	LoggingQueryKey      = "query"
	LoggingStatusCodeKey = "status_code"
	LoggingLatencyKey    = "latency"
	LoggingSuccessKey    = "success"

	LoggingRedisKey              = "redis_key"
	LoggingLockValueKey          = "lock_value"
	LoggingLockExpirationTimeKey = "lock_expiration"

	LoggingTutorIDKey       = "tutor_id"
	LoggingBlockIDKey       = "block_id"
	LoggingIntervalCountKey = "interval_count"
	LoggingSlotCountKey     = "slot_count"
	LoggingGranularityKey   = "granularity_minutes"
	LoggingDurationKey      = "duration_minutes"
	LoggingCacheHitKey      = "cache_hit"
	LoggingEventTypeKey     = "event_type"
	LoggingBucketNameKey    = "bucket_name"
	LoggingObjectNameKey    = "object_name"
)

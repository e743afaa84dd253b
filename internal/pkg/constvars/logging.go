package constvars

const (
	LoggingRequestIDKey  = "request_id"
	LoggingMethodKey     = "method"
	LoggingEndpointKey   = "endpoint"
	LoggingRemoteAddrKey = "remote_addr"
	LoggingUserAgentKey  = "user_agent"
	LoggingStatusCodeKey = "status_code"
	LoggingDurationKey   = "duration"
	LoggingSuccessKey    = "success"
	LoggingUserIDKey     = "user_id"
	LoggingEmailKey      = "email"
	LoggingRoleKey       = "role"
	LoggingLocationKey   = "location"
	LoggingObjectKey     = "object_key"
	LoggingQueueKey      = "queue"
)

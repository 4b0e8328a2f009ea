package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingStatusCodeKey     = "status_code"
	LoggingDurationKey       = "duration"
	LoggingSuccessKey        = "success"
	LoggingActionKey         = "action"
	LoggingMrnCountKey       = "mrn_count"
	LoggingMrnKey            = "mrn"
	LoggingScopeKey          = "scope"
	LoggingEndpointURLKey    = "endpoint_url"
	LoggingResultCountKey    = "result_count"
	LoggingValidCountKey     = "valid_count"
	LoggingResponseLengthKey = "response_length"
	LoggingSecretLengthKey   = "secret_length"
	LoggingExpectedLengthKey = "expected_secret_length"
)

package constvars

// Error messages for clients. The lookup endpoint answers errors with an empty
// body, these are only surfaced through logs and the health/metrics surfaces.
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientSecretRequired                = "shared secret is required"
	ErrClientRequestTooLarge               = "request body is too large"
)

// Error messages for developers
const (
	ErrDevCannotParseJSON           = "cannot parse JSON"
	ErrDevCannotMarshalJSON         = "cannot marshal JSON"
	ErrDevReadBody                  = "failed to read request body"
	ErrDevRequestTooLarge           = "request body exceeds configured limit"
	ErrDevCreateHTTPRequest         = "failed to create HTTP request"
	ErrDevSendHTTPRequest           = "failed to send HTTP request"
	ErrDevSecretMissing             = "the shared secret is empty"
	ErrDevSecretMismatch            = "the shared secret does not match"
	ErrDevUnsupportedAction         = "action %q is not one of [validate, demographics]"
	ErrDevEmptyMrnList              = "mrn list is empty after parsing"
	ErrDevTokenUnavailable          = "no usable token for scope %s"
	ErrDevTokenExpired              = "token for scope %s is expired"
	ErrDevDemographicsBadStatus     = "demographics endpoint returned HTTP %d"
	ErrDevDemographicsMalformed     = "demographics response is malformed"
	ErrDevDemographicsMissingResult = "demographics response has no result array"
	ErrDevDownstreamLimiter         = "downstream rate limiter wait failed"
	ErrDevRedisGet                  = "failed to get key %s from redis"
	ErrDevRedisSet                  = "failed to set key in redis"
	ErrDevRedisDelete               = "failed to delete key from redis"
	ErrDevPanicRecovered            = "panic recovered"
)

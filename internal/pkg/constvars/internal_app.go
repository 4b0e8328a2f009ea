package constvars

type ContextKey string

const (
	ResourceMrnLookup = "mrn-lookup"
	ResourceMetrics   = "metrics"
	ResourceHealthz   = "healthz"
)

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "MRNV_SVC_"
)

const (
	TokenProviderDriverRedis  = "redis"
	TokenProviderDriverStatic = "static"
)

const (
	DefaultTokenScope     = "id"
	DefaultTokenKeyPrefix = "token_manager"
)

const (
	CONTEXT_RAW_BODY ContextKey = "raw_body"
)

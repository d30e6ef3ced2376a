package cnst

// gin context keys shared by middleware and handlers
const (
	CtxKeyClaims    = "claims"
	CtxKeyUser      = "user"
	CtxKeyRequestID = "request_id"
)

const (
	HeaderRequestID = "X-Request-ID"
	HeaderAuth      = "Authorization"
	BearerPrefix    = "Bearer "
)

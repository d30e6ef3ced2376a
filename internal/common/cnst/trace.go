package cnst

// TraceAPIServer names the tracer used by handlers and startup
const TraceAPIServer = "farmchainx/apiserver"

// Span names
const (
	SpanUserRegister  = "user.register"
	SpanUserLogin     = "user.login"
	SpanOrderCreate   = "order.create"
	SpanStartupRepair = "startup.repair_users"
)

// Attribute keys
const (
	AttrUserID      = "user.id"
	AttrUserRole    = "user.role"
	AttrOrderNumber = "order.number"
	AttrOrderItems  = "order.items"
	AttrErrorReason = "error.reason"
)

package i18n

// Response tags understood by the web client
const (
	TagEmailExists        = "EMAIL_EXISTS"
	TagInvalidCredentials = "INVALID_CREDENTIALS"
	TagAccountPending     = "ACCOUNT_PENDING"
	TagCannotDeleteAdmin  = "CANNOT_DELETE_ADMIN"
)

func newError(id, text string, code ErrorCode) *ErrorWithCode {
	e := NewErrorWithCode(define(id, text), code)
	e.DefaultMessage = text
	return e
}

// Common errors
var (
	ErrNotFound       = newError("ErrorResourceNotFound", "Resource not found", ErrorNotFound)
	ErrUnauthorized   = newError("ErrorUnauthorized", "Authentication required", ErrorUnauthorized)
	ErrForbidden      = newError("ErrorForbidden", "Access denied", ErrorForbidden)
	ErrBadRequest     = newError("ErrorBadRequest", "Invalid request body", ErrorBadRequest)
	ErrInternalServer = newError("ErrorInternalServer", "Internal server error", ErrorInternalServer)
	ErrEndpoint       = newError("ErrorEndpointNotFound", "Endpoint not found or internal server error", ErrorNotFound)
)

// Registration and login errors
var (
	ErrorEmailRequired      = newError("ErrorEmailRequired", "Email is required", ErrorBadRequest)
	ErrorPasswordRequired   = newError("ErrorPasswordRequired", "Password is required", ErrorBadRequest)
	ErrorFullNameRequired   = newError("ErrorFullNameRequired", "Full name is required", ErrorBadRequest)
	ErrorRoleRequired       = newError("ErrorRoleRequired", "Role is required", ErrorBadRequest)
	ErrorInvalidEmail       = newError("ErrorInvalidEmail", "Please enter a valid email address", ErrorBadRequest)
	ErrorPasswordTooShort   = newError("ErrorPasswordTooShort", "Password must be at least 6 characters", ErrorBadRequest)
	ErrorPasswordTooLong    = newError("ErrorPasswordTooLong", "Password must be at most 72 bytes", ErrorBadRequest)
	ErrorEmailExists        = newError("ErrorEmailExists", "Email already exists", ErrorBadRequest).WithTag(TagEmailExists)
	ErrorInvalidRole        = newError("ErrorInvalidRole", "Invalid role specified. Must be FARMER, DISTRIBUTOR, or CONSUMER", ErrorBadRequest)
	ErrorInvalidCredentials = newError("ErrorInvalidCredentials", "Invalid email or password", ErrorBadRequest).WithTag(TagInvalidCredentials)
	ErrorAccountPending     = newError("ErrorAccountPending", "Your account is pending approval. Please contact administrator.", ErrorBadRequest).WithTag(TagAccountPending)
	ErrorInvalidOldPassword = newError("ErrorInvalidOldPassword", "Current password is incorrect", ErrorBadRequest)
)

// Token errors
var (
	ErrorMissingToken     = newError("ErrorMissingToken", "Authorization header is missing", ErrorUnauthorized)
	ErrorInvalidTokenType = newError("ErrorInvalidTokenType", "Authorization header must use the Bearer scheme", ErrorUnauthorized)
	ErrorInvalidToken     = newError("ErrorInvalidToken", "Invalid token", ErrorUnauthorized)
	ErrorTokenExpired     = newError("ErrorTokenExpired", "Token has expired", ErrorUnauthorized)
	ErrorInsufficientRole = newError("ErrorInsufficientRole", "Access denied for role {{.Role}}", ErrorForbidden)
)

// User errors
var (
	ErrorUserNotFound      = newError("ErrorUserNotFound", "User not found", ErrorNotFound)
	ErrorCannotDeleteAdmin = newError("ErrorCannotDeleteAdmin", "Cannot delete admin users", ErrorBadRequest).WithTag(TagCannotDeleteAdmin)
)

// Crop errors
var (
	ErrorCropNotFound         = newError("ErrorCropNotFound", "Crop not found", ErrorNotFound)
	ErrorCropRequiredFields   = newError("ErrorCropRequiredFields", "Crop name, type, soil and place are required", ErrorBadRequest)
	ErrorInvalidSowedDate     = newError("ErrorInvalidSowedDate", "Sowed date must use the YYYY-MM-DD format", ErrorBadRequest)
	ErrorInvalidHarvestPeriod = newError("ErrorInvalidHarvestPeriod", "Harvest period must be between 0 and 3650 days", ErrorBadRequest)
)

// Order errors
var (
	ErrorOrderNotFound       = newError("ErrorOrderNotFound", "Order not found", ErrorNotFound)
	ErrorOrderRequiredFields = newError("ErrorOrderRequiredFields", "Customer name, phone, shipping address and payment method are required", ErrorBadRequest)
	ErrorOrderItemsRequired  = newError("ErrorOrderItemsRequired", "An order needs at least one item", ErrorBadRequest)
	ErrorInvalidOrderItem    = newError("ErrorInvalidOrderItem", "Order item {{.Index}} needs a product name, a positive quantity and a non-negative unit price", ErrorBadRequest)
	ErrorDistributorNotFound = newError("ErrorDistributorNotFound", "Distributor not found", ErrorBadRequest)
	ErrorInvalidOrderStatus  = newError("ErrorInvalidOrderStatus", "Invalid order status {{.Status}}", ErrorBadRequest)
)

// Service errors
var (
	ErrorDatabaseUnavailable = newError("ErrorDatabaseUnavailable", "Database connection failed", ErrorServiceUnavailable)
)

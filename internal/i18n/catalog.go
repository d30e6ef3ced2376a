package i18n

import "github.com/nicksnyder/go-i18n/v2/i18n"

// catalog holds the built-in English text for every message ID
var catalog []*i18n.Message

func define(id, other string) string {
	catalog = append(catalog, &i18n.Message{ID: id, Other: other})
	return id
}

// Success messages
var (
	SuccessRegistered         = define("SuccessRegistered", "Registration successful! You can now login.")
	SuccessLogin              = define("SuccessLogin", "Login successful")
	SuccessUserApproved       = define("SuccessUserApproved", "User approved successfully")
	SuccessUserRejected       = define("SuccessUserRejected", "User rejected and removed successfully")
	SuccessProfileUpdated     = define("SuccessProfileUpdated", "Profile updated successfully")
	SuccessPasswordChanged    = define("SuccessPasswordChanged", "Password changed successfully")
	SuccessCropCreated        = define("SuccessCropCreated", "Crop added successfully")
	SuccessCropUpdated        = define("SuccessCropUpdated", "Crop updated successfully")
	SuccessCropDeleted        = define("SuccessCropDeleted", "Crop deleted successfully")
	SuccessOrderCreated       = define("SuccessOrderCreated", "Order placed successfully")
	SuccessOrderStatusUpdated = define("SuccessOrderStatusUpdated", "Order status updated to {{.orderStatus}}")
	SuccessOrderDeleted       = define("SuccessOrderDeleted", "Order deleted successfully")
	SuccessServiceRunning     = define("SuccessServiceRunning", "FarmChainX backend is running")
	SuccessEndpointWorking    = define("SuccessEndpointWorking", "Test endpoint is working")
	SuccessPublicEndpoint     = define("SuccessPublicEndpoint", "This is a public endpoint")
	SuccessEcho               = define("SuccessEcho", "Echo response")
	SuccessDatabaseConnected  = define("SuccessDatabaseConnected", "Database connection successful")
)

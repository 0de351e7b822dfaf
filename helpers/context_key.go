package helpers

// ContextKey is a type for creating context keys
type ContextKey string

// ContextKeyOrderResource is a specific key for identifying "order_resource" contexts added to the http request
var ContextKeyOrderResource = ContextKey("order_resource")

// ContextKeySessionID is a specific key for identifying "session_id" contexts added to the http request
var ContextKeySessionID = ContextKey("session_id")

// ContextKeyCallbackData is a specific key for identifying verified "callback_data" contexts added to the http request
var ContextKeyCallbackData = ContextKey("callback_data")

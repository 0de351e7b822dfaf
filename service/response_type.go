package service

// ResponseType enumerates the outcomes a service call can report alongside
// its error. TransportError and ProtocolError are deliberately distinct:
// callers treat the former as recoverable-try-again and the latter as
// terminal-show-user-message.
type ResponseType int

const (
	// InvalidData response
	InvalidData ResponseType = iota

	// Error response
	Error

	// Forbidden response
	Forbidden

	// NotFound response
	NotFound

	// Success response
	Success

	// TransportError - network or HTTP-layer failure talking to the proxy
	TransportError

	// ProtocolError - well-formed proxy response signalling failure
	ProtocolError

	// InvalidSignature - hash mismatch on an inbound signed request
	InvalidSignature

	// NoShippingOptions - no shipping method serves the destination address
	NoShippingOptions

	// Conflict - the operation is not valid for the order's current state
	Conflict
)

var vals = [...]string{
	"invalid-data",
	"error",
	"forbidden",
	"not-found",
	"success",
	"transport-error",
	"protocol-error",
	"invalid-signature",
	"no-shipping-options",
	"conflict",
}

// String representation of `ResponseType`
func (a ResponseType) String() string {
	return vals[a]
}

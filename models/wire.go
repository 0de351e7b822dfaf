package models

import "encoding/json"

// Signature is the authentication envelope attached to every proxy call.
// Hash is HMAC-SHA256(timestamp || fields... || api_key, api_secret) in hex.
// The per-operation field order is part of the wire contract and must match
// the proxy byte for byte.
type Signature struct {
	Timestamp int64  `json:"timestamp"`
	Hash      string `json:"hash"`
}

// ProxyRequest is the signed request body sent to the proxy's express
// endpoints. Bulk payloads travel base64(JSON)-encoded in OrderData or
// RequestData alongside the envelope.
type ProxyRequest struct {
	APIKey      string `json:"api_key"`
	Timestamp   int64  `json:"timestamp"`
	Hash        string `json:"hash"`
	OrderData   string `json:"order_data,omitempty"`
	RequestData string `json:"request_data,omitempty"`
}

// ProxyResponse is the normalized JSON envelope returned by the proxy
type ProxyResponse struct {
	Success          bool            `json:"success"`
	Message          string          `json:"message,omitempty"`
	PayPalOrderID    string          `json:"paypal_order_id,omitempty"`
	TransactionID    string          `json:"transaction_id,omitempty"`
	SellerProtection string          `json:"seller_protection,omitempty"`
	Status           string          `json:"status,omitempty"`
	PayPalOrder      json.RawMessage `json:"paypal_order,omitempty"`
}

// OrderPayload is the bulk order payload registered with the proxy when an
// order is created. CallbackURL is always included: the proxy retains the
// capability to invoke the shipping callback even when shipping is not
// needed.
type OrderPayload struct {
	OrderID         int64           `json:"order_id"`
	OrderKey        string          `json:"order_key"`
	OrderTotal      string          `json:"order_total"`
	Currency        string          `json:"currency"`
	CustomerEmail   string          `json:"customer_email,omitempty"`
	CustomerName    string          `json:"customer_name,omitempty"`
	Items           []OrderItemRest `json:"items"`
	BillingAddress  AddressRest     `json:"billing_address"`
	ShippingAddress AddressRest     `json:"shipping_address"`
	SiteURL         string          `json:"site_url"`
	ReturnURL       string          `json:"return_url"`
	CancelURL       string          `json:"cancel_url"`
	CallbackURL     string          `json:"callback_url"`
	NeedsShipping   bool            `json:"needs_shipping"`
	ExpressCheckout bool            `json:"express_checkout"`
	ServerID        int             `json:"server_id"`
}

// ShippingUpdatePayload is the bulk payload pushed to the proxy when the
// selected shipping method for an order changes
type ShippingUpdatePayload struct {
	OrderID        int64            `json:"order_id"`
	PayPalOrderID  string           `json:"paypal_order_id"`
	ShippingMethod string           `json:"shipping_method"`
	Options        []ShippingOption `json:"shipping_options,omitempty"`
	OrderTotal     string           `json:"order_total"`
	ShippingTotal  string           `json:"shipping_total"`
	ShippingTax    string           `json:"shipping_tax"`
	TaxTotal       string           `json:"tax_total"`
	Currency       string           `json:"currency"`
	ServerID       int              `json:"server_id"`
}

// CapturePayload is the bulk payload sent to the proxy to capture an
// approved payment
type CapturePayload struct {
	OrderID       int64  `json:"order_id"`
	PayPalOrderID string `json:"paypal_order_id"`
	OrderTotal    string `json:"order_total"`
	Currency      string `json:"currency"`
	ServerID      int    `json:"server_id"`
}

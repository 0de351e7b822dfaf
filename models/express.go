package models

// UpdateShippingRequest is the body of the browser's shipping-update call,
// fired on every address or method change inside the PayPal UI
type UpdateShippingRequest struct {
	ShippingAddress AddressRest `json:"shipping_address" validate:"required"`
	ShippingMethod  string      `json:"shipping_method,omitempty"`
}

// CompleteExpressOrderRequest is the body of the browser's completion call
// after the payment has been approved in the PayPal UI
type CompleteExpressOrderRequest struct {
	PayPalOrderID string                  `json:"paypal_order_id" validate:"required"`
	Approval      *ApprovedPaymentPayload `json:"approval,omitempty"`
}

// ExpressOrderResponse is returned to the browser after a pending order has
// been created and registered with the proxy; it holds everything the iframe
// needs to render the PayPal approval UI
type ExpressOrderResponse struct {
	OrderID       int64        `json:"order_id"`
	OrderKey      string       `json:"order_key"`
	OrderTotal    string       `json:"order_total"`
	Currency      string       `json:"currency"`
	PayPalOrderID string       `json:"paypal_order_id"`
	Server        *ProxyServer `json:"server"`
	Security      Signature    `json:"security"`
}

// UpdateShippingResponse is the recomputed option set and price breakdown
// returned to whichever caller requested the shipping update
type UpdateShippingResponse struct {
	OrderID         int64            `json:"order_id"`
	OrderTotal      string           `json:"order_total"`
	Subtotal        string           `json:"subtotal"`
	ShippingTotal   string           `json:"shipping_total"`
	ShippingTax     string           `json:"shipping_tax"`
	TaxTotal        string           `json:"tax_total"`
	ShippingMethods []ShippingOption `json:"shipping_methods"`
	SelectedMethod  string           `json:"selected_method"`
	Items           []OrderItemRest  `json:"items"`
}

// CompleteExpressOrderResponse carries the post-payment redirect URL
type CompleteExpressOrderResponse struct {
	Redirect      string `json:"redirect"`
	TransactionID string `json:"transaction_id,omitempty"`
}

// ExpressConfigResponse is the bootstrap data served to the browser-side
// bridge before the iframe is rendered
type ExpressConfigResponse struct {
	IframeURL   string `json:"iframe_url"`
	Nonce       string `json:"nonce"`
	Currency    string `json:"currency"`
	CartTotal   string `json:"cart_total"`
	CheckoutURL string `json:"checkout_url"`
}

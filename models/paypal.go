package models

import "github.com/plutov/paypal/v4"

// ApprovedPaymentPayload carries the PayPal-native payer and shipping data
// the browser forwards from the SDK's approval event
type ApprovedPaymentPayload struct {
	Payer    *paypal.PayerWithNameAndPhone `json:"payer,omitempty"`
	Shipping *paypal.ShippingDetail        `json:"shipping_address,omitempty"`
}

// ShippingCallbackData is the PayPal-native address blob the proxy POSTs to
// the out-of-band shipping callback
type ShippingCallbackData struct {
	ShippingAddress *paypal.ShippingDetailAddressPortable `json:"shipping_address,omitempty"`
	Payer           *paypal.PayerWithNameAndPhone         `json:"payer,omitempty"`
	SelectedMethod  string                                `json:"selected_method,omitempty"`
}

package models

import "time"

// AddressRest holds a billing or shipping address on an order
type AddressRest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Company   string `json:"company,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Address1  string `json:"address_1"`
	Address2  string `json:"address_2,omitempty"`
	City      string `json:"city"`
	State     string `json:"state"`
	Postcode  string `json:"postcode"`
	Country   string `json:"country"`
}

// IsEmpty reports whether no part of the address has been filled in
func (a AddressRest) IsEmpty() bool {
	return a.Address1 == "" && a.City == "" && a.Postcode == "" && a.Country == ""
}

// OrderItemRest is a product line item on an order. Tax amounts are carried
// verbatim from the cart snapshot and never recomputed here.
type OrderItemRest struct {
	ProductID    int64  `json:"product_id"`
	Name         string `json:"name"`
	SKU          string `json:"sku,omitempty"`
	Quantity     int    `json:"quantity"`
	Price        string `json:"price"`
	LineSubtotal string `json:"line_subtotal"`
	LineTotal    string `json:"line_total"`
	LineTax      string `json:"line_tax"`
}

// FeeLineRest is an additional fee attached to an order
type FeeLineRest struct {
	Name     string `json:"name"`
	Total    string `json:"total"`
	TotalTax string `json:"total_tax"`
}

// CouponLineRest is a coupon applied to an order
type CouponLineRest struct {
	Code        string `json:"code"`
	Discount    string `json:"discount"`
	DiscountTax string `json:"discount_tax"`
}

// ShippingLineRest is a shipping charge attached to an order. At most one
// shipping line may be present on an order at any time.
type ShippingLineRest struct {
	MethodTitle string   `json:"method_title"`
	MethodID    string   `json:"method_id"`
	InstanceID  int      `json:"instance_id"`
	Total       string   `json:"total"`
	TotalTax    string   `json:"total_tax"`
	Taxes       []string `json:"taxes,omitempty"`
}

// OrderResourceRest is the full order resource handled by this service
type OrderResourceRest struct {
	ID               int64              `json:"order_id"`
	OrderKey         string             `json:"order_key"`
	SessionID        string             `json:"session_id,omitempty"`
	Status           string             `json:"status"`
	Currency         string             `json:"currency"`
	Billing          AddressRest        `json:"billing_address"`
	Shipping         AddressRest        `json:"shipping_address"`
	Items            []OrderItemRest    `json:"items"`
	Fees             []FeeLineRest      `json:"fees,omitempty"`
	Coupons          []CouponLineRest   `json:"coupons,omitempty"`
	ShippingLines    []ShippingLineRest `json:"shipping_lines,omitempty"`
	PaymentMethod    string             `json:"payment_method"`
	ExpressCheckout  bool               `json:"express_checkout"`
	NeedsShipping    bool               `json:"needs_shipping"`
	ServerID         int                `json:"server_id"`
	PayPalOrderID    string             `json:"paypal_order_id,omitempty"`
	TransactionID    string             `json:"transaction_id,omitempty"`
	SellerProtection string             `json:"seller_protection,omitempty"`
	Subtotal         string             `json:"subtotal"`
	ShippingTotal    string             `json:"shipping_total"`
	ShippingTax      string             `json:"shipping_tax"`
	TaxTotal         string             `json:"tax_total"`
	DiscountTotal    string             `json:"discount_total"`
	Total            string             `json:"total"`
	CreatedAt        time.Time          `json:"created_at,omitempty"`
	PaidAt           *time.Time         `json:"paid_at,omitempty"`
}

package models

import "time"

// AddressDB holds an address as stored in the DB
type AddressDB struct {
	FirstName string `bson:"first_name"`
	LastName  string `bson:"last_name"`
	Company   string `bson:"company,omitempty"`
	Email     string `bson:"email,omitempty"`
	Phone     string `bson:"phone,omitempty"`
	Address1  string `bson:"address_1"`
	Address2  string `bson:"address_2,omitempty"`
	City      string `bson:"city"`
	State     string `bson:"state"`
	Postcode  string `bson:"postcode"`
	Country   string `bson:"country"`
}

// OrderItemDB is a product line item as stored in the DB
type OrderItemDB struct {
	ProductID    int64  `bson:"product_id"`
	Name         string `bson:"name"`
	SKU          string `bson:"sku,omitempty"`
	Quantity     int    `bson:"quantity"`
	Price        string `bson:"price"`
	LineSubtotal string `bson:"line_subtotal"`
	LineTotal    string `bson:"line_total"`
	LineTax      string `bson:"line_tax"`
}

// FeeLineDB is a fee line as stored in the DB
type FeeLineDB struct {
	Name     string `bson:"name"`
	Total    string `bson:"total"`
	TotalTax string `bson:"total_tax"`
}

// CouponLineDB is a coupon line as stored in the DB
type CouponLineDB struct {
	Code        string `bson:"code"`
	Discount    string `bson:"discount"`
	DiscountTax string `bson:"discount_tax"`
}

// ShippingLineDB is a shipping line as stored in the DB
type ShippingLineDB struct {
	MethodTitle string   `bson:"method_title"`
	MethodID    string   `bson:"method_id"`
	InstanceID  int      `bson:"instance_id"`
	Total       string   `bson:"total"`
	TotalTax    string   `bson:"total_tax"`
	Taxes       []string `bson:"taxes,omitempty"`
}

// OrderResourceDB is the order resource as stored in the DB
type OrderResourceDB struct {
	ID               int64            `bson:"_id"`
	OrderKey         string           `bson:"order_key"`
	SessionID        string           `bson:"session_id,omitempty"`
	Status           string           `bson:"status"`
	Currency         string           `bson:"currency"`
	Billing          AddressDB        `bson:"billing_address"`
	Shipping         AddressDB        `bson:"shipping_address"`
	Items            []OrderItemDB    `bson:"items"`
	Fees             []FeeLineDB      `bson:"fees,omitempty"`
	Coupons          []CouponLineDB   `bson:"coupons,omitempty"`
	ShippingLines    []ShippingLineDB `bson:"shipping_lines,omitempty"`
	PaymentMethod    string           `bson:"payment_method"`
	ExpressCheckout  bool             `bson:"express_checkout"`
	NeedsShipping    bool             `bson:"needs_shipping"`
	ServerID         int              `bson:"server_id"`
	PayPalOrderID    string           `bson:"paypal_order_id,omitempty"`
	TransactionID    string           `bson:"transaction_id,omitempty"`
	SellerProtection string           `bson:"seller_protection,omitempty"`
	Subtotal         string           `bson:"subtotal"`
	ShippingTotal    string           `bson:"shipping_total"`
	ShippingTax      string           `bson:"shipping_tax"`
	TaxTotal         string           `bson:"tax_total"`
	DiscountTotal    string           `bson:"discount_total"`
	Total            string           `bson:"total"`
	CreatedAt        time.Time        `bson:"created_at,omitempty"`
	PaidAt           *time.Time       `bson:"paid_at,omitempty"`
}

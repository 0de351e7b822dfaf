package models

// CartItemDB is a single cart line as stored in the DB. Tax fields hold the
// cart's precomputed tax snapshot.
type CartItemDB struct {
	ProductID    int64  `bson:"product_id"`
	Name         string `bson:"name"`
	SKU          string `bson:"sku,omitempty"`
	Quantity     int    `bson:"quantity"`
	Price        string `bson:"price"`
	LineSubtotal string `bson:"line_subtotal"`
	LineTotal    string `bson:"line_total"`
	LineTax      string `bson:"line_tax"`
}

// CartFeeDB is a fee attached to a cart
type CartFeeDB struct {
	Name     string `bson:"name"`
	Total    string `bson:"total"`
	TotalTax string `bson:"total_tax"`
}

// CartCouponDB is a coupon applied to a cart
type CartCouponDB struct {
	Code        string `bson:"code"`
	Discount    string `bson:"discount"`
	DiscountTax string `bson:"discount_tax"`
}

// CartResourceDB is a session cart as stored in the DB. The cart is treated
// as an opaque upstream store: this service reads it when assembling a
// pending order and empties it after a successful capture.
type CartResourceDB struct {
	SessionID     string         `bson:"_id"`
	Currency      string         `bson:"currency"`
	Items         []CartItemDB   `bson:"items"`
	Fees          []CartFeeDB    `bson:"fees,omitempty"`
	Coupons       []CartCouponDB `bson:"coupons,omitempty"`
	NeedsShipping bool           `bson:"needs_shipping"`
	Customer      *CustomerDB    `bson:"customer,omitempty"`
}

// IsEmpty reports whether the cart has no line items
func (c *CartResourceDB) IsEmpty() bool {
	return c == nil || len(c.Items) == 0
}

// CustomerDB holds the saved addresses of an authenticated customer
type CustomerDB struct {
	Billing  AddressDB `bson:"billing_address"`
	Shipping AddressDB `bson:"shipping_address"`
}

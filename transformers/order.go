package transformers

import (
	"strings"

	"github.com/plutov/paypal/v4"
	"github.com/wpppc/checkout-client-api/models"
)

// OrderTransformer transforms order resource data between rest and database models
type OrderTransformer struct{}

// TransformToDB transforms an order resource rest model into an order resource database model
func (ot OrderTransformer) TransformToDB(rest models.OrderResourceRest) models.OrderResourceDB {
	order := models.OrderResourceDB{
		ID:               rest.ID,
		OrderKey:         rest.OrderKey,
		SessionID:        rest.SessionID,
		Status:           rest.Status,
		Currency:         rest.Currency,
		Billing:          models.AddressDB(rest.Billing),
		Shipping:         models.AddressDB(rest.Shipping),
		PaymentMethod:    rest.PaymentMethod,
		ExpressCheckout:  rest.ExpressCheckout,
		NeedsShipping:    rest.NeedsShipping,
		ServerID:         rest.ServerID,
		PayPalOrderID:    rest.PayPalOrderID,
		TransactionID:    rest.TransactionID,
		SellerProtection: rest.SellerProtection,
		Subtotal:         rest.Subtotal,
		ShippingTotal:    rest.ShippingTotal,
		ShippingTax:      rest.ShippingTax,
		TaxTotal:         rest.TaxTotal,
		DiscountTotal:    rest.DiscountTotal,
		Total:            rest.Total,
		CreatedAt:        rest.CreatedAt,
		PaidAt:           rest.PaidAt,
	}

	for _, item := range rest.Items {
		order.Items = append(order.Items, models.OrderItemDB(item))
	}
	for _, fee := range rest.Fees {
		order.Fees = append(order.Fees, models.FeeLineDB(fee))
	}
	for _, coupon := range rest.Coupons {
		order.Coupons = append(order.Coupons, models.CouponLineDB(coupon))
	}
	for _, line := range rest.ShippingLines {
		order.ShippingLines = append(order.ShippingLines, models.ShippingLineDB(line))
	}

	return order
}

// TransformToRest transforms an order resource database model into an order resource rest model
func (ot OrderTransformer) TransformToRest(dbResource models.OrderResourceDB) models.OrderResourceRest {
	order := models.OrderResourceRest{
		ID:               dbResource.ID,
		OrderKey:         dbResource.OrderKey,
		SessionID:        dbResource.SessionID,
		Status:           dbResource.Status,
		Currency:         dbResource.Currency,
		Billing:          models.AddressRest(dbResource.Billing),
		Shipping:         models.AddressRest(dbResource.Shipping),
		PaymentMethod:    dbResource.PaymentMethod,
		ExpressCheckout:  dbResource.ExpressCheckout,
		NeedsShipping:    dbResource.NeedsShipping,
		ServerID:         dbResource.ServerID,
		PayPalOrderID:    dbResource.PayPalOrderID,
		TransactionID:    dbResource.TransactionID,
		SellerProtection: dbResource.SellerProtection,
		Subtotal:         dbResource.Subtotal,
		ShippingTotal:    dbResource.ShippingTotal,
		ShippingTax:      dbResource.ShippingTax,
		TaxTotal:         dbResource.TaxTotal,
		DiscountTotal:    dbResource.DiscountTotal,
		Total:            dbResource.Total,
		CreatedAt:        dbResource.CreatedAt,
		PaidAt:           dbResource.PaidAt,
	}

	for _, item := range dbResource.Items {
		order.Items = append(order.Items, models.OrderItemRest(item))
	}
	for _, fee := range dbResource.Fees {
		order.Fees = append(order.Fees, models.FeeLineRest(fee))
	}
	for _, coupon := range dbResource.Coupons {
		order.Coupons = append(order.Coupons, models.CouponLineRest(coupon))
	}
	for _, line := range dbResource.ShippingLines {
		order.ShippingLines = append(order.ShippingLines, models.ShippingLineRest(line))
	}

	return order
}

// TransformPayPalAddress maps a PayPal portable address onto the local
// address model. PayPal admin areas map to state and city respectively.
func TransformPayPalAddress(address *paypal.ShippingDetailAddressPortable) models.AddressRest {
	if address == nil {
		return models.AddressRest{}
	}
	return models.AddressRest{
		Address1: address.AddressLine1,
		Address2: address.AddressLine2,
		City:     address.AdminArea2,
		State:    address.AdminArea1,
		Postcode: address.PostalCode,
		Country:  address.CountryCode,
	}
}

// TransformPayPalShipping maps a PayPal shipping detail (name + portable
// address) onto the local address model, splitting the full name into first
// and last names on the first space.
func TransformPayPalShipping(shipping *paypal.ShippingDetail) models.AddressRest {
	if shipping == nil {
		return models.AddressRest{}
	}

	address := TransformPayPalAddress(shipping.Address)

	if shipping.Name != nil && shipping.Name.FullName != "" {
		parts := strings.SplitN(shipping.Name.FullName, " ", 2)
		address.FirstName = parts[0]
		if len(parts) > 1 {
			address.LastName = parts[1]
		}
	}

	return address
}

// ApplyPayerDetails copies payer identity data from an approved payment onto
// the order's billing details. The billing address itself is only replaced
// when the order does not already hold one.
func ApplyPayerDetails(order *models.OrderResourceRest, payer *paypal.PayerWithNameAndPhone) {
	if payer == nil {
		return
	}

	if payer.EmailAddress != "" {
		order.Billing.Email = payer.EmailAddress
	}
	if payer.Name != nil {
		if payer.Name.GivenName != "" {
			order.Billing.FirstName = payer.Name.GivenName
		}
		if payer.Name.Surname != "" {
			order.Billing.LastName = payer.Name.Surname
		}
	}
	if payer.Phone != nil && payer.Phone.PhoneNumber != nil {
		order.Billing.Phone = payer.Phone.PhoneNumber.NationalNumber
	}
}

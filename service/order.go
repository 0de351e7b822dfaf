package service

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/url"
	"strconv"
	"time"

	"github.com/companieshouse/chs.go/log"
	"github.com/shopspring/decimal"
	"github.com/wpppc/checkout-client-api/config"
	"github.com/wpppc/checkout-client-api/dao"
	"github.com/wpppc/checkout-client-api/models"
	"github.com/wpppc/checkout-client-api/transformers"
)

// PendingStatus and friends enumerate the order lifecycle handled here.
// Deletion and cancellation policy belong to the upstream store.
const (
	PendingStatus    = "pending"
	ProcessingStatus = "processing"
	FailedStatus     = "failed"
)

// PaymentMethodTag marks orders taken through the proxy gateway
const PaymentMethodTag = "paypal_proxy"

// OrderService assembles pending orders from session carts and handles the
// standard (non-express) checkout calls to the proxy
type OrderService struct {
	DAO     dao.DAO
	Config  config.Config
	Manager ServerManager
	Proxy   ProxyTransport
}

var orderTransformer = transformers.OrderTransformer{}

// BuildPendingOrder creates a pending order from the session cart: every
// line item, fee and coupon is copied with the cart's precomputed tax
// snapshot, totals are computed exactly once, and the order is persisted.
// This is deliberately a side-effecting create: downstream steps key off the
// stable order id it allocates.
func (service *OrderService) BuildPendingOrder(sessionID string) (*models.OrderResourceRest, ResponseType, error) {
	cart, err := service.DAO.GetCartResource(sessionID)
	if err != nil {
		return nil, Error, fmt.Errorf("error getting cart for session: [%s]", err)
	}
	if cart.IsEmpty() {
		return nil, InvalidData, fmt.Errorf("cart is empty for session")
	}

	id, err := service.DAO.NextOrderID()
	if err != nil {
		return nil, Error, fmt.Errorf("error allocating order id: [%s]", err)
	}

	order := &models.OrderResourceRest{
		ID:              id,
		OrderKey:        generateOrderKey(),
		SessionID:       sessionID,
		Status:          PendingStatus,
		Currency:        cart.Currency,
		PaymentMethod:   PaymentMethodTag,
		ExpressCheckout: true,
		NeedsShipping:   cart.NeedsShipping,
		CreatedAt:       time.Now().Truncate(time.Millisecond),
	}

	if cart.Customer != nil {
		order.Billing = models.AddressRest(cart.Customer.Billing)
		order.Shipping = models.AddressRest(cart.Customer.Shipping)
	}
	// A minimal default address gives shipping-zone resolution a country to
	// work with before PayPal supplies the real one.
	if order.Shipping.Country == "" {
		order.Shipping.Country = service.Config.BaseCountry
	}
	if order.Billing.Country == "" {
		order.Billing.Country = service.Config.BaseCountry
	}

	for _, item := range cart.Items {
		order.Items = append(order.Items, models.OrderItemRest(item))
	}
	for _, fee := range cart.Fees {
		order.Fees = append(order.Fees, models.FeeLineRest(fee))
	}
	for _, coupon := range cart.Coupons {
		order.Coupons = append(order.Coupons, models.CouponLineRest(coupon))
	}

	if err = service.CalculateTotals(order); err != nil {
		return nil, Error, fmt.Errorf("error calculating order totals: [%s]", err)
	}

	orderDB := orderTransformer.TransformToDB(*order)
	if err = service.DAO.CreateOrderResource(&orderDB); err != nil {
		return nil, Error, fmt.Errorf("error storing order resource: [%s]", err)
	}

	log.Info("created pending order from cart", log.Data{"order_id": order.ID, "order_total": order.Total})

	return order, Success, nil
}

// GetOrder fetches an order resource by id
func (service *OrderService) GetOrder(id int64) (*models.OrderResourceRest, ResponseType, error) {
	orderDB, err := service.DAO.GetOrderResource(id)
	if err != nil {
		return nil, Error, fmt.Errorf("error getting order resource: [%s]", err)
	}
	if orderDB == nil {
		return nil, NotFound, fmt.Errorf("order %d not found", id)
	}

	order := orderTransformer.TransformToRest(*orderDB)
	return &order, Success, nil
}

// SaveOrder persists the current state of the order resource
func (service *OrderService) SaveOrder(order *models.OrderResourceRest) error {
	orderDB := orderTransformer.TransformToDB(*order)
	return service.DAO.SaveOrderResource(&orderDB)
}

// CalculateTotals recomputes the order's totals from its lines. Tax amounts
// are summed from the per-line snapshots, never recomputed, so the order
// cannot drift from the cart's tax calculation.
func (service *OrderService) CalculateTotals(order *models.OrderResourceRest) error {
	subtotal := decimal.Zero
	itemsTotal := decimal.Zero
	taxTotal := decimal.Zero
	discountTotal := decimal.Zero

	for _, item := range order.Items {
		lineSubtotal, err := decimal.NewFromString(zeroIfEmpty(item.LineSubtotal))
		if err != nil {
			return fmt.Errorf("invalid line subtotal on item %s: [%s]", item.Name, err)
		}
		lineTotal, err := decimal.NewFromString(zeroIfEmpty(item.LineTotal))
		if err != nil {
			return fmt.Errorf("invalid line total on item %s: [%s]", item.Name, err)
		}
		lineTax, err := decimal.NewFromString(zeroIfEmpty(item.LineTax))
		if err != nil {
			return fmt.Errorf("invalid line tax on item %s: [%s]", item.Name, err)
		}
		subtotal = subtotal.Add(lineSubtotal)
		itemsTotal = itemsTotal.Add(lineTotal)
		taxTotal = taxTotal.Add(lineTax)
	}

	feesTotal := decimal.Zero
	for _, fee := range order.Fees {
		total, err := decimal.NewFromString(zeroIfEmpty(fee.Total))
		if err != nil {
			return fmt.Errorf("invalid fee total on %s: [%s]", fee.Name, err)
		}
		tax, err := decimal.NewFromString(zeroIfEmpty(fee.TotalTax))
		if err != nil {
			return fmt.Errorf("invalid fee tax on %s: [%s]", fee.Name, err)
		}
		feesTotal = feesTotal.Add(total)
		taxTotal = taxTotal.Add(tax)
	}

	for _, coupon := range order.Coupons {
		discount, err := decimal.NewFromString(zeroIfEmpty(coupon.Discount))
		if err != nil {
			return fmt.Errorf("invalid coupon discount on %s: [%s]", coupon.Code, err)
		}
		discountTotal = discountTotal.Add(discount)
	}

	shippingTotal := decimal.Zero
	shippingTax := decimal.Zero
	for _, line := range order.ShippingLines {
		total, err := decimal.NewFromString(zeroIfEmpty(line.Total))
		if err != nil {
			return fmt.Errorf("invalid shipping total on %s: [%s]", line.MethodID, err)
		}
		tax, err := decimal.NewFromString(zeroIfEmpty(line.TotalTax))
		if err != nil {
			return fmt.Errorf("invalid shipping tax on %s: [%s]", line.MethodID, err)
		}
		shippingTotal = shippingTotal.Add(total)
		shippingTax = shippingTax.Add(tax)
	}
	taxTotal = taxTotal.Add(shippingTax)

	order.Subtotal = subtotal.StringFixed(2)
	order.ShippingTotal = shippingTotal.StringFixed(2)
	order.ShippingTax = shippingTax.StringFixed(2)
	order.TaxTotal = taxTotal.StringFixed(2)
	order.DiscountTotal = discountTotal.StringFixed(2)
	order.Total = itemsTotal.Add(feesTotal).Add(shippingTotal).Add(taxTotal).StringFixed(2)

	return nil
}

// MarkOrderPaid records a successful capture on the order and persists it
func (service *OrderService) MarkOrderPaid(order *models.OrderResourceRest, transactionID, sellerProtection string) error {
	now := time.Now().Truncate(time.Millisecond)
	order.Status = ProcessingStatus
	order.TransactionID = transactionID
	order.SellerProtection = sellerProtection
	order.PaidAt = &now
	return service.SaveOrder(order)
}

// IsPaid reports whether the order has already been captured
func IsPaid(order *models.OrderResourceRest) bool {
	return order.PaidAt != nil || order.TransactionID != ""
}

// ResolveServerForOrder returns the proxy server a call about this order
// must address. An order remembers its server; selection only happens for
// orders that have none yet, or whose server has since been removed.
func (service *OrderService) ResolveServerForOrder(order *models.OrderResourceRest) (*models.ProxyServer, error) {
	if order.ServerID != 0 {
		server, err := service.Manager.GetServer(order.ServerID)
		if err != nil {
			return nil, err
		}
		if server != nil {
			return server, nil
		}
		log.Info("proxy server for order no longer available, reselecting", log.Data{"order_id": order.ID, "server_id": order.ServerID})
	}

	server, err := service.Manager.GetSelectedServer()
	if err != nil {
		return nil, err
	}
	if server == nil {
		if server, err = service.Manager.GetNextAvailableServer(); err != nil {
			return nil, err
		}
	}
	return server, nil
}

// BuildOrderPayload builds the bulk payload registered with the proxy. The
// callback URL is always present: the proxy retains the capability to invoke
// it even when the order needs no shipping.
func (service *OrderService) BuildOrderPayload(order *models.OrderResourceRest, server *models.ProxyServer) models.OrderPayload {
	return models.OrderPayload{
		OrderID:         order.ID,
		OrderKey:        order.OrderKey,
		OrderTotal:      order.Total,
		Currency:        order.Currency,
		CustomerEmail:   order.Billing.Email,
		CustomerName:    order.Billing.FirstName + " " + order.Billing.LastName,
		Items:           order.Items,
		BillingAddress:  order.Billing,
		ShippingAddress: order.Shipping,
		SiteURL:         service.Config.SiteURL,
		ReturnURL:       service.Config.CheckoutWebURL + "/order-received/" + strconv.FormatInt(order.ID, 10) + "/?key=" + order.OrderKey,
		CancelURL:       service.Config.CheckoutWebURL + "/cart/",
		CallbackURL:     service.Config.SiteURL + "/callback/shipping",
		NeedsShipping:   order.NeedsShipping,
		ExpressCheckout: order.ExpressCheckout,
		ServerID:        server.ID,
	}
}

// RegisterOrder registers a standard-checkout order with the proxy
func (service *OrderService) RegisterOrder(orderID int64) (*models.ProxyResponse, ResponseType, error) {
	order, responseType, err := service.GetOrder(orderID)
	if err != nil {
		return nil, responseType, err
	}

	server, err := service.ResolveServerForOrder(order)
	if err != nil {
		return nil, Error, fmt.Errorf("error resolving proxy server: [%s]", err)
	}
	if server == nil {
		return nil, Error, fmt.Errorf("no proxy server available")
	}

	if order.ServerID != server.ID {
		order.ServerID = server.ID
		if err = service.SaveOrder(order); err != nil {
			return nil, Error, fmt.Errorf("error storing server id on order: [%s]", err)
		}
	}

	encodedData, err := EncodeOrderData(service.BuildOrderPayload(order, server))
	if err != nil {
		return nil, Error, err
	}

	signer := Signer{Server: server}
	sig := signer.Sign(strconv.FormatInt(order.ID, 10), order.Total)

	params := url.Values{}
	params.Set("api_key", server.APIKey)
	params.Set("timestamp", strconv.FormatInt(sig.Timestamp, 10))
	params.Set("hash", sig.Hash)
	params.Set("order_data", encodedData)

	return service.Proxy.Get(server, "/wppps/v1/register-order", params)
}

// VerifyPayment verifies a standard-checkout payment with the proxy and, on
// a completed status, marks the local order paid
func (service *OrderService) VerifyPayment(orderID int64, paypalOrderID string) (*models.ProxyResponse, ResponseType, error) {
	order, responseType, err := service.GetOrder(orderID)
	if err != nil {
		return nil, responseType, err
	}

	server, err := service.ResolveServerForOrder(order)
	if err != nil {
		return nil, Error, fmt.Errorf("error resolving proxy server: [%s]", err)
	}
	if server == nil {
		return nil, Error, fmt.Errorf("no proxy server available")
	}

	signer := Signer{Server: server}
	sig := signer.Sign(paypalOrderID, strconv.FormatInt(order.ID, 10))

	params := url.Values{}
	params.Set("api_key", server.APIKey)
	params.Set("timestamp", strconv.FormatInt(sig.Timestamp, 10))
	params.Set("hash", sig.Hash)
	params.Set("paypal_order_id", paypalOrderID)
	params.Set("order_id", strconv.FormatInt(order.ID, 10))
	params.Set("order_total", order.Total)
	params.Set("currency", order.Currency)
	params.Set("server_id", strconv.Itoa(server.ID))

	response, responseType, err := service.Proxy.Get(server, "/wppps/v1/verify-payment", params)
	if err != nil {
		return response, responseType, err
	}

	if response.Status == "COMPLETED" && !IsPaid(order) {
		order.PayPalOrderID = paypalOrderID
		if err = service.MarkOrderPaid(order, response.TransactionID, response.SellerProtection); err != nil {
			return response, Error, fmt.Errorf("error marking order paid: [%s]", err)
		}
	}

	return response, Success, nil
}

// EncodeOrderData encodes a bulk payload to its base64(JSON) wire form
func EncodeOrderData(payload interface{}) (string, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("error encoding payload: [%s]", err)
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

// DecodeOrderData decodes the base64(JSON) wire form back into an order payload
func DecodeOrderData(encoded string) (*models.OrderPayload, error) {
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("error decoding payload: [%s]", err)
	}
	payload := &models.OrderPayload{}
	if err = json.Unmarshal(data, payload); err != nil {
		return nil, fmt.Errorf("error decoding payload: [%s]", err)
	}
	return payload, nil
}

const orderKeyChars = "abcdefghijklmnopqrstuvwxyz0123456789"

func generateOrderKey() string {
	key := make([]byte, 13)
	for i := range key {
		key[i] = orderKeyChars[rand.Intn(len(orderKeyChars))]
	}
	return "wc_order_" + string(key)
}

func zeroIfEmpty(amount string) string {
	if amount == "" {
		return "0"
	}
	return amount
}

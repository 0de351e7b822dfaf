package service

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/companieshouse/chs.go/log"
	"github.com/shopspring/decimal"
	"github.com/wpppc/checkout-client-api/config"
	"github.com/wpppc/checkout-client-api/models"
	"github.com/wpppc/checkout-client-api/transformers"
	"golang.org/x/sync/singleflight"
)

// ExpressCheckoutService drives the express checkout flow: order creation,
// shipping renegotiation while the PayPal UI is open, and final capture.
// Concurrent calls about the same order are collapsed through singleflight
// so that duplicate browser or callback traffic cannot interleave.
type ExpressCheckoutService struct {
	Orders   *OrderService
	Config   config.Config
	Manager  ServerManager
	Proxy    ProxyTransport
	Shipping ShippingCalculator
	group    singleflight.Group
}

type expressResult struct {
	response     interface{}
	responseType ResponseType
}

// CreateExpressOrder builds a pending order from the session cart, registers
// it with the proxy and returns the data the iframe needs to start approval
func (service *ExpressCheckoutService) CreateExpressOrder(sessionID string) (*models.ExpressOrderResponse, ResponseType, error) {
	order, responseType, err := service.Orders.BuildPendingOrder(sessionID)
	if err != nil {
		return nil, responseType, err
	}

	server, err := service.Orders.ResolveServerForOrder(order)
	if err != nil {
		return nil, Error, fmt.Errorf("error resolving proxy server: [%s]", err)
	}
	if server == nil {
		return nil, Error, fmt.Errorf("no proxy server available")
	}

	order.ServerID = server.ID
	if err = service.Orders.SaveOrder(order); err != nil {
		return nil, Error, fmt.Errorf("error storing server id on order: [%s]", err)
	}

	encodedData, err := EncodeOrderData(service.Orders.BuildOrderPayload(order, server))
	if err != nil {
		return nil, Error, err
	}

	signer := Signer{Server: server}
	sig := signer.Sign(strconv.FormatInt(order.ID, 10), order.Total)

	response, responseType, err := service.Proxy.Post(server, "/wppps/v1/create-express-checkout", &models.ProxyRequest{
		APIKey:    server.APIKey,
		Timestamp: sig.Timestamp,
		Hash:      sig.Hash,
		OrderData: encodedData,
	})
	if err != nil {
		return nil, responseType, err
	}

	if response.PayPalOrderID == "" {
		return nil, ProtocolError, fmt.Errorf("create response for order %d carried no paypal order id", order.ID)
	}

	order.PayPalOrderID = response.PayPalOrderID
	if err = service.Orders.SaveOrder(order); err != nil {
		return nil, Error, fmt.Errorf("error storing paypal order id: [%s]", err)
	}

	log.Info("express order created", log.Data{"order_id": order.ID, "paypal_order_id": order.PayPalOrderID, "server_id": server.ID})

	return &models.ExpressOrderResponse{
		OrderID:       order.ID,
		OrderKey:      order.OrderKey,
		OrderTotal:    order.Total,
		Currency:      order.Currency,
		PayPalOrderID: order.PayPalOrderID,
		Server:        server,
		Security:      sig,
	}, Success, nil
}

// UpdateShipping applies a destination address to the order, rebuilds the
// available option set and reprices the order. Concurrent updates for the
// same order share a single execution.
func (service *ExpressCheckoutService) UpdateShipping(orderID int64, request *models.UpdateShippingRequest) (*models.UpdateShippingResponse, ResponseType, error) {
	v, err, _ := service.group.Do("shipping:"+strconv.FormatInt(orderID, 10), func() (interface{}, error) {
		response, responseType, err := service.updateShipping(orderID, request)
		return expressResult{response, responseType}, err
	})
	result := v.(expressResult)
	if result.response == nil {
		return nil, result.responseType, err
	}
	return result.response.(*models.UpdateShippingResponse), result.responseType, err
}

func (service *ExpressCheckoutService) updateShipping(orderID int64, request *models.UpdateShippingRequest) (*models.UpdateShippingResponse, ResponseType, error) {
	order, responseType, err := service.Orders.GetOrder(orderID)
	if err != nil {
		return nil, responseType, err
	}
	if IsPaid(order) {
		return nil, Conflict, fmt.Errorf("order %d has already been paid", orderID)
	}

	order.Shipping = request.ShippingAddress
	if order.Billing.IsEmpty() {
		email, phone := order.Billing.Email, order.Billing.Phone
		order.Billing = request.ShippingAddress
		if email != "" {
			order.Billing.Email = email
		}
		if phone != "" {
			order.Billing.Phone = phone
		}
	}

	// Removing every existing line before adding the selection keeps the
	// operation idempotent however many times the PayPal UI fires it.
	order.ShippingLines = nil

	options, err := service.Shipping.CalculateShipping(order.Shipping)
	if err != nil {
		return nil, Error, fmt.Errorf("error calculating shipping: [%s]", err)
	}

	if order.NeedsShipping && len(options) == 0 {
		if err = service.Orders.CalculateTotals(order); err != nil {
			return nil, Error, err
		}
		if err = service.Orders.SaveOrder(order); err != nil {
			return nil, Error, fmt.Errorf("error storing order resource: [%s]", err)
		}
		return nil, NoShippingOptions, fmt.Errorf("no shipping options available for address")
	}

	selectedMethod := ""
	if order.NeedsShipping {
		selected := options[0]
		if request.ShippingMethod != "" {
			for _, option := range options {
				if option.ID == request.ShippingMethod {
					selected = option
					break
				}
			}
		}
		selectedMethod = selected.ID
		order.ShippingLines = []models.ShippingLineRest{{
			MethodTitle: selected.Label,
			MethodID:    selected.MethodID,
			InstanceID:  selected.InstanceID,
			Total:       selected.Cost,
			TotalTax:    selected.Tax,
			Taxes:       selected.Taxes,
		}}
	}

	if err = service.Orders.CalculateTotals(order); err != nil {
		return nil, Error, err
	}
	if err = service.Orders.SaveOrder(order); err != nil {
		return nil, Error, fmt.Errorf("error storing order resource: [%s]", err)
	}

	if order.PayPalOrderID != "" {
		if responseType, err = service.pushShippingUpdate(order, selectedMethod, options); err != nil {
			return nil, responseType, err
		}
	}

	return &models.UpdateShippingResponse{
		OrderID:         order.ID,
		OrderTotal:      order.Total,
		Subtotal:        order.Subtotal,
		ShippingTotal:   order.ShippingTotal,
		ShippingTax:     order.ShippingTax,
		TaxTotal:        order.TaxTotal,
		ShippingMethods: options,
		SelectedMethod:  selectedMethod,
		Items:           order.Items,
	}, Success, nil
}

// pushShippingUpdate tells the proxy to reprice the in-flight PayPal order
func (service *ExpressCheckoutService) pushShippingUpdate(order *models.OrderResourceRest, selectedMethod string, options []models.ShippingOption) (ResponseType, error) {
	server, err := service.Orders.ResolveServerForOrder(order)
	if err != nil {
		return Error, fmt.Errorf("error resolving proxy server: [%s]", err)
	}
	if server == nil {
		return Error, fmt.Errorf("no proxy server available")
	}

	encodedData, err := EncodeOrderData(models.ShippingUpdatePayload{
		OrderID:        order.ID,
		PayPalOrderID:  order.PayPalOrderID,
		ShippingMethod: selectedMethod,
		Options:        options,
		OrderTotal:     order.Total,
		ShippingTotal:  order.ShippingTotal,
		ShippingTax:    order.ShippingTax,
		TaxTotal:       order.TaxTotal,
		Currency:       order.Currency,
		ServerID:       server.ID,
	})
	if err != nil {
		return Error, err
	}

	signer := Signer{Server: server}
	sig := signer.Sign(strconv.FormatInt(order.ID, 10), order.PayPalOrderID)

	_, responseType, err := service.Proxy.Post(server, "/wppps/v1/update-express-shipping", &models.ProxyRequest{
		APIKey:      server.APIKey,
		Timestamp:   sig.Timestamp,
		Hash:        sig.Hash,
		RequestData: encodedData,
	})
	if err != nil {
		return responseType, fmt.Errorf("error pushing shipping update to proxy: [%s]", err)
	}
	return Success, nil
}

// CompleteExpressOrder captures the approved payment and finalizes the local
// order. Completion of an already-paid order is idempotent and returns the
// same redirect without touching the proxy: capture is never retried.
func (service *ExpressCheckoutService) CompleteExpressOrder(orderID int64, request *models.CompleteExpressOrderRequest) (*models.CompleteExpressOrderResponse, ResponseType, error) {
	v, err, _ := service.group.Do("complete:"+strconv.FormatInt(orderID, 10), func() (interface{}, error) {
		response, responseType, err := service.completeExpressOrder(orderID, request)
		return expressResult{response, responseType}, err
	})
	result := v.(expressResult)
	if result.response == nil {
		return nil, result.responseType, err
	}
	return result.response.(*models.CompleteExpressOrderResponse), result.responseType, err
}

func (service *ExpressCheckoutService) completeExpressOrder(orderID int64, request *models.CompleteExpressOrderRequest) (*models.CompleteExpressOrderResponse, ResponseType, error) {
	order, responseType, err := service.Orders.GetOrder(orderID)
	if err != nil {
		return nil, responseType, err
	}

	if IsPaid(order) {
		log.Info("completion requested for already-paid order", log.Data{"order_id": order.ID})
		return &models.CompleteExpressOrderResponse{
			Redirect:      service.redirectURL(order),
			TransactionID: order.TransactionID,
		}, Success, nil
	}

	if order.PayPalOrderID != "" && order.PayPalOrderID != request.PayPalOrderID {
		return nil, InvalidData, fmt.Errorf("paypal order id mismatch for order %d", orderID)
	}

	if request.Approval != nil {
		transformers.ApplyPayerDetails(order, request.Approval.Payer)
		if request.Approval.Shipping != nil {
			if address := transformers.TransformPayPalShipping(request.Approval.Shipping); !address.IsEmpty() {
				order.Shipping = address
			}
		}
	}

	server, err := service.Orders.ResolveServerForOrder(order)
	if err != nil {
		return nil, Error, fmt.Errorf("error resolving proxy server: [%s]", err)
	}
	if server == nil {
		return nil, Error, fmt.Errorf("no proxy server available")
	}

	encodedData, err := EncodeOrderData(models.CapturePayload{
		OrderID:       order.ID,
		PayPalOrderID: request.PayPalOrderID,
		OrderTotal:    order.Total,
		Currency:      order.Currency,
		ServerID:      server.ID,
	})
	if err != nil {
		return nil, Error, err
	}

	signer := Signer{Server: server}
	sig := signer.Sign(strconv.FormatInt(order.ID, 10), request.PayPalOrderID)

	response, responseType, err := service.Proxy.Post(server, "/wppps/v1/capture-express-payment", &models.ProxyRequest{
		APIKey:      server.APIKey,
		Timestamp:   sig.Timestamp,
		Hash:        sig.Hash,
		RequestData: encodedData,
	})
	if err != nil {
		return nil, responseType, err
	}
	if response.TransactionID == "" {
		return nil, ProtocolError, fmt.Errorf("capture response for order %d carried no transaction id", orderID)
	}

	order.PayPalOrderID = request.PayPalOrderID
	if err = service.Orders.MarkOrderPaid(order, response.TransactionID, response.SellerProtection); err != nil {
		return nil, Error, fmt.Errorf("error marking order paid: [%s]", err)
	}

	if err = service.Manager.AddServerUsage(server.ID, order.Total); err != nil {
		log.ErrorR(nil, fmt.Errorf("error recording server usage: [%s]", err), log.Data{"server_id": server.ID})
	}
	if order.SessionID != "" {
		if err = service.Orders.DAO.EmptyCartResource(order.SessionID); err != nil {
			log.ErrorR(nil, fmt.Errorf("error emptying cart: [%s]", err), log.Data{"order_id": order.ID})
		}
	}

	log.Info("express payment captured", log.Data{"order_id": order.ID, "transaction_id": response.TransactionID})

	return &models.CompleteExpressOrderResponse{
		Redirect:      service.redirectURL(order),
		TransactionID: response.TransactionID,
	}, Success, nil
}

// FetchPayPalOrderDetails pulls the live PayPal order state through the proxy
func (service *ExpressCheckoutService) FetchPayPalOrderDetails(orderID int64) (*models.ProxyResponse, ResponseType, error) {
	order, responseType, err := service.Orders.GetOrder(orderID)
	if err != nil {
		return nil, responseType, err
	}
	if order.PayPalOrderID == "" {
		return nil, InvalidData, fmt.Errorf("order %d has no paypal order id", orderID)
	}

	server, err := service.Orders.ResolveServerForOrder(order)
	if err != nil {
		return nil, Error, fmt.Errorf("error resolving proxy server: [%s]", err)
	}
	if server == nil {
		return nil, Error, fmt.Errorf("no proxy server available")
	}

	signer := Signer{Server: server}
	sig := signer.Sign(order.PayPalOrderID)

	params := url.Values{}
	params.Set("api_key", server.APIKey)
	params.Set("timestamp", strconv.FormatInt(sig.Timestamp, 10))
	params.Set("hash", sig.Hash)
	params.Set("paypal_order_id", order.PayPalOrderID)

	return service.Proxy.Get(server, "/wppps/v1/get-paypal-order", params)
}

// GetExpressConfig assembles the bootstrap data for the browser-side bridge.
// The nonce is minted by the caller so transport-level auth stays out of the
// service layer.
func (service *ExpressCheckoutService) GetExpressConfig(sessionID, nonce string) (*models.ExpressConfigResponse, ResponseType, error) {
	cart, err := service.Orders.DAO.GetCartResource(sessionID)
	if err != nil {
		return nil, Error, fmt.Errorf("error getting cart for session: [%s]", err)
	}
	if cart.IsEmpty() {
		return nil, InvalidData, fmt.Errorf("cart is empty for session")
	}

	cartTotal, err := cartTotal(cart)
	if err != nil {
		return nil, Error, err
	}

	server, err := service.Manager.GetSelectedServer()
	if err != nil {
		return nil, Error, fmt.Errorf("error resolving proxy server: [%s]", err)
	}
	if server == nil {
		if server, err = service.Manager.GetNextAvailableServer(); err != nil {
			return nil, Error, fmt.Errorf("error resolving proxy server: [%s]", err)
		}
	}
	if server == nil {
		return nil, Error, fmt.Errorf("no proxy server available")
	}

	iframeURL := GenerateExpressIframeURL(server, service.Config.SiteURL+"/callback/shipping", service.Config.SiteURL, cart.Currency, cartTotal, cart.NeedsShipping)

	return &models.ExpressConfigResponse{
		IframeURL:   iframeURL,
		Nonce:       nonce,
		Currency:    cart.Currency,
		CartTotal:   cartTotal,
		CheckoutURL: service.Config.CheckoutWebURL,
	}, Success, nil
}

func (service *ExpressCheckoutService) redirectURL(order *models.OrderResourceRest) string {
	return service.Config.CheckoutWebURL + "/order-received/" + strconv.FormatInt(order.ID, 10) + "/?key=" + order.OrderKey
}

// cartTotal prices a cart before any shipping has been chosen
func cartTotal(cart *models.CartResourceDB) (string, error) {
	total := decimal.Zero
	for _, item := range cart.Items {
		lineTotal, err := decimal.NewFromString(zeroIfEmpty(item.LineTotal))
		if err != nil {
			return "", fmt.Errorf("invalid line total on item %s: [%s]", item.Name, err)
		}
		lineTax, err := decimal.NewFromString(zeroIfEmpty(item.LineTax))
		if err != nil {
			return "", fmt.Errorf("invalid line tax on item %s: [%s]", item.Name, err)
		}
		total = total.Add(lineTotal).Add(lineTax)
	}
	for _, fee := range cart.Fees {
		feeTotal, err := decimal.NewFromString(zeroIfEmpty(fee.Total))
		if err != nil {
			return "", fmt.Errorf("invalid fee total on %s: [%s]", fee.Name, err)
		}
		feeTax, err := decimal.NewFromString(zeroIfEmpty(fee.TotalTax))
		if err != nil {
			return "", fmt.Errorf("invalid fee tax on %s: [%s]", fee.Name, err)
		}
		total = total.Add(feeTotal).Add(feeTax)
	}
	return total.StringFixed(2), nil
}

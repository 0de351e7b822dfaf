package interceptors

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/companieshouse/chs.go/log"
	"github.com/wpppc/checkout-client-api/config"
	"github.com/wpppc/checkout-client-api/helpers"
	"github.com/wpppc/checkout-client-api/service"
	"github.com/wpppc/checkout-client-api/utils"
)

// CallbackInterceptor authenticates proxy-to-client callbacks. Callbacks are
// machine traffic from the proxy, so failures are reported in the proxy's own
// envelope: HTTP 200 with success false. A tampered or stale callback never
// reaches the handler, so the order is never touched.
type CallbackInterceptor struct {
	Orders *service.OrderService
	Config config.Config
}

// CallbackSignatureIntercept verifies the HMAC envelope on the callback query
// and stores the addressed order in the request context
func (interceptor *CallbackInterceptor) CallbackSignatureIntercept(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		orderIDValue := query.Get("order_id")
		paypalOrderID := query.Get("paypal_order_id")
		timestampValue := query.Get("timestamp")
		hash := query.Get("hash")
		if orderIDValue == "" || paypalOrderID == "" || timestampValue == "" || hash == "" {
			log.InfoR(r, "callback missing authentication parameters")
			utils.WriteAjaxError(w, r, "invalid callback request", "invalid_request")
			return
		}

		orderID, err := strconv.ParseInt(orderIDValue, 10, 64)
		if err != nil {
			log.ErrorR(r, fmt.Errorf("invalid order id on callback: [%s]", err))
			utils.WriteAjaxError(w, r, "invalid callback request", "invalid_request")
			return
		}
		timestamp, err := strconv.ParseInt(timestampValue, 10, 64)
		if err != nil {
			log.ErrorR(r, fmt.Errorf("invalid timestamp on callback: [%s]", err))
			utils.WriteAjaxError(w, r, "invalid callback request", "invalid_request")
			return
		}

		age := time.Now().Unix() - timestamp
		if age > interceptor.Config.CallbackMaxAge || age < -interceptor.Config.CallbackMaxAge {
			log.InfoR(r, "callback timestamp outside accepted window", log.Data{"order_id": orderID, "age": age})
			utils.WriteAjaxError(w, r, "stale callback", "stale_callback")
			return
		}

		order, responseType, err := interceptor.Orders.GetOrder(orderID)
		if err != nil {
			log.ErrorR(r, fmt.Errorf("error loading order for callback: [%s]", err), log.Data{"order_id": orderID})
			if responseType == service.NotFound {
				utils.WriteAjaxError(w, r, "order not found", "not_found")
			} else {
				utils.WriteAjaxError(w, r, "error loading order", "error")
			}
			return
		}

		if order.PayPalOrderID != "" && order.PayPalOrderID != paypalOrderID {
			log.InfoR(r, "callback paypal order id does not match order", log.Data{"order_id": orderID})
			utils.WriteAjaxError(w, r, "invalid callback request", "invalid_request")
			return
		}

		server, err := interceptor.Orders.ResolveServerForOrder(order)
		if err != nil || server == nil {
			log.ErrorR(r, fmt.Errorf("error resolving proxy server for callback: [%s]", err), log.Data{"order_id": orderID})
			utils.WriteAjaxError(w, r, "error resolving server", "error")
			return
		}

		signer := service.Signer{Server: server}
		if !signer.Verify(hash, timestamp, orderIDValue, paypalOrderID) {
			log.InfoR(r, "callback signature verification failed", log.Data{"order_id": orderID})
			utils.WriteAjaxError(w, r, "invalid signature", "invalid_signature")
			return
		}

		ctx := context.WithValue(r.Context(), helpers.ContextKeyOrderResource, order)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

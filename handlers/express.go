package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/companieshouse/chs.go/log"
	"github.com/gorilla/mux"
	"github.com/wpppc/checkout-client-api/helpers"
	"github.com/wpppc/checkout-client-api/interceptors"
	"github.com/wpppc/checkout-client-api/models"
	"github.com/wpppc/checkout-client-api/service"
	"github.com/wpppc/checkout-client-api/utils"
)

// ajaxCode maps a service outcome to the machine-readable condition the
// browser-side bridge dispatches on
func ajaxCode(responseType service.ResponseType) string {
	switch responseType {
	case service.InvalidData:
		return "invalid_data"
	case service.NotFound:
		return "not_found"
	case service.Conflict:
		return "order_paid"
	case service.NoShippingOptions:
		return "no_shipping_options"
	case service.InvalidSignature:
		return "invalid_signature"
	case service.TransportError, service.ProtocolError:
		return "proxy_error"
	default:
		return "error"
	}
}

func orderIDFromVars(r *http.Request) (int64, error) {
	vars := mux.Vars(r)
	return strconv.ParseInt(vars["order_id"], 10, 64)
}

func sessionIDFromContext(r *http.Request) string {
	sessionID, _ := r.Context().Value(helpers.ContextKeySessionID).(string)
	return sessionID
}

// HandleCreateExpressOrder builds a pending order from the session cart and
// registers it with the proxy
func HandleCreateExpressOrder(w http.ResponseWriter, r *http.Request) {
	sessionID := sessionIDFromContext(r)

	response, responseType, err := expressService.CreateExpressOrder(sessionID)
	if err != nil {
		log.ErrorR(r, fmt.Errorf("error creating express order: [%s]", err))
		message := "Unable to start express checkout"
		if responseType == service.InvalidData {
			message = "Your cart is empty"
		}
		utils.WriteAjaxError(w, r, message, ajaxCode(responseType))
		return
	}

	log.InfoR(r, "express order created", log.Data{"order_id": response.OrderID})
	utils.WriteAjaxSuccess(w, r, response)
}

// HandleUpdateShipping applies a destination address change fired from the
// PayPal UI and returns the repriced option set
func HandleUpdateShipping(w http.ResponseWriter, r *http.Request) {
	orderID, err := orderIDFromVars(r)
	if err != nil {
		utils.WriteAjaxError(w, r, "invalid order id", "invalid_data")
		return
	}

	var request models.UpdateShippingRequest
	if err = json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.ErrorR(r, fmt.Errorf("error decoding shipping update body: [%s]", err))
		utils.WriteAjaxError(w, r, "invalid request body", "invalid_data")
		return
	}
	if err = validate.Struct(request); err != nil {
		utils.WriteAjaxError(w, r, "invalid request body", "invalid_data")
		return
	}

	response, responseType, err := expressService.UpdateShipping(orderID, &request)
	if err != nil {
		log.ErrorR(r, fmt.Errorf("error updating shipping for order %d: [%s]", orderID, err))
		message := "Unable to update shipping"
		if responseType == service.NoShippingOptions {
			message = "No shipping options are available for this address"
		}
		utils.WriteAjaxError(w, r, message, ajaxCode(responseType))
		return
	}

	utils.WriteAjaxSuccess(w, r, response)
}

// HandleCompleteExpressOrder captures the approved payment and returns the
// post-payment redirect
func HandleCompleteExpressOrder(w http.ResponseWriter, r *http.Request) {
	orderID, err := orderIDFromVars(r)
	if err != nil {
		utils.WriteAjaxError(w, r, "invalid order id", "invalid_data")
		return
	}

	var request models.CompleteExpressOrderRequest
	if err = json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.ErrorR(r, fmt.Errorf("error decoding completion body: [%s]", err))
		utils.WriteAjaxError(w, r, "invalid request body", "invalid_data")
		return
	}
	if err = validate.Struct(request); err != nil {
		utils.WriteAjaxError(w, r, "invalid request body", "invalid_data")
		return
	}

	response, responseType, err := expressService.CompleteExpressOrder(orderID, &request)
	if err != nil {
		log.ErrorR(r, fmt.Errorf("error completing order %d: [%s]", orderID, err))
		utils.WriteAjaxError(w, r, "Unable to complete the payment", ajaxCode(responseType))
		return
	}

	log.InfoR(r, "express order completed", log.Data{"order_id": orderID, "transaction_id": response.TransactionID})
	utils.WriteAjaxSuccess(w, r, response)
}

// HandleGetPayPalOrder returns the live PayPal order state for an order
func HandleGetPayPalOrder(w http.ResponseWriter, r *http.Request) {
	orderID, err := orderIDFromVars(r)
	if err != nil {
		utils.WriteAjaxError(w, r, "invalid order id", "invalid_data")
		return
	}

	response, responseType, err := expressService.FetchPayPalOrderDetails(orderID)
	if err != nil {
		log.ErrorR(r, fmt.Errorf("error fetching paypal order for order %d: [%s]", orderID, err))
		utils.WriteAjaxError(w, r, "Unable to fetch the PayPal order", ajaxCode(responseType))
		return
	}

	utils.WriteAjaxSuccess(w, r, response)
}

// HandleGetExpressConfig serves the bootstrap data the browser-side bridge
// needs before rendering the iframe. It sits outside the nonce interceptor
// because it is the endpoint that mints the nonce.
func HandleGetExpressConfig(w http.ResponseWriter, r *http.Request) {
	sessionID := r.Header.Get(interceptors.SessionHeader)
	if sessionID == "" {
		utils.WriteAjaxError(w, r, "missing session", "invalid_data")
		return
	}

	nonce := interceptors.CreateSessionNonce(sessionID, serviceConfig.NonceSecret)

	response, responseType, err := expressService.GetExpressConfig(sessionID, nonce)
	if err != nil {
		log.ErrorR(r, fmt.Errorf("error building express config: [%s]", err))
		message := "Express checkout is unavailable"
		if responseType == service.InvalidData {
			message = "Your cart is empty"
		}
		utils.WriteAjaxError(w, r, message, ajaxCode(responseType))
		return
	}

	utils.WriteAjaxSuccess(w, r, response)
}

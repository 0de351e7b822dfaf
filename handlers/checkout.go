package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/wpppc/checkout-client-api/models"
	"github.com/wpppc/checkout-client-api/utils"
)

// VerifyPaymentRequest is the body of the standard-checkout verification call
type VerifyPaymentRequest struct {
	PayPalOrderID string `json:"paypal_order_id" validate:"required"`
}

// HandleRegisterOrder registers a standard-checkout order with the proxy so
// the hosted PayPal page can take over
func HandleRegisterOrder(w http.ResponseWriter, r *http.Request) {
	orderID, err := orderIDFromVars(r)
	if err != nil {
		utils.WriteAjaxError(w, r, "invalid order id", "invalid_data")
		return
	}

	response, responseType, err := orderService.RegisterOrder(orderID)
	if err != nil {
		log.ErrorR(r, fmt.Errorf("error registering order %d: [%s]", orderID, err))
		utils.WriteAjaxError(w, r, "Unable to register the order", ajaxCode(responseType))
		return
	}

	log.InfoR(r, "order registered with proxy", log.Data{"order_id": orderID})
	utils.WriteAjaxSuccess(w, r, response)
}

// HandleVerifyPayment verifies a returned standard-checkout payment and, on a
// completed capture, marks the order paid
func HandleVerifyPayment(w http.ResponseWriter, r *http.Request) {
	orderID, err := orderIDFromVars(r)
	if err != nil {
		utils.WriteAjaxError(w, r, "invalid order id", "invalid_data")
		return
	}

	var request VerifyPaymentRequest
	if err = json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.ErrorR(r, fmt.Errorf("error decoding verification body: [%s]", err))
		utils.WriteAjaxError(w, r, "invalid request body", "invalid_data")
		return
	}
	if err = validate.Struct(request); err != nil {
		utils.WriteAjaxError(w, r, "invalid request body", "invalid_data")
		return
	}

	response, responseType, err := orderService.VerifyPayment(orderID, request.PayPalOrderID)
	if err != nil {
		log.ErrorR(r, fmt.Errorf("error verifying payment for order %d: [%s]", orderID, err))
		utils.WriteAjaxError(w, r, "Unable to verify the payment", ajaxCode(responseType))
		return
	}

	log.InfoR(r, "payment verified", log.Data{"order_id": orderID, "status": response.Status})
	utils.WriteAjaxSuccess(w, r, models.ProxyResponse{
		Success:          true,
		Status:           response.Status,
		TransactionID:    response.TransactionID,
		SellerProtection: response.SellerProtection,
	})
}

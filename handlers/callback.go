package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/wpppc/checkout-client-api/helpers"
	"github.com/wpppc/checkout-client-api/models"
	"github.com/wpppc/checkout-client-api/service"
	"github.com/wpppc/checkout-client-api/transformers"
	"github.com/wpppc/checkout-client-api/utils"
)

// HandleShippingCallback handles the proxy's out-of-band shipping update for
// an in-flight PayPal order. The interceptor has already authenticated the
// envelope and loaded the order into the request context.
func HandleShippingCallback(w http.ResponseWriter, r *http.Request) {
	order, ok := r.Context().Value(helpers.ContextKeyOrderResource).(*models.OrderResourceRest)
	if !ok {
		log.ErrorR(r, fmt.Errorf("no order resource in callback context"))
		utils.WriteAjaxError(w, r, "error loading order", "error")
		return
	}

	var data models.ShippingCallbackData
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		log.ErrorR(r, fmt.Errorf("error decoding callback body: [%s]", err))
		utils.WriteAjaxError(w, r, "invalid request body", "invalid_data")
		return
	}
	if data.ShippingAddress == nil {
		utils.WriteAjaxError(w, r, "no shipping address supplied", "invalid_data")
		return
	}

	request := models.UpdateShippingRequest{
		ShippingAddress: transformers.TransformPayPalAddress(data.ShippingAddress),
		ShippingMethod:  data.SelectedMethod,
	}

	response, responseType, err := expressService.UpdateShipping(order.ID, &request)
	if err != nil {
		log.ErrorR(r, fmt.Errorf("error applying callback shipping update for order %d: [%s]", order.ID, err))
		message := "unable to update shipping"
		if responseType == service.NoShippingOptions {
			message = "no shipping options available for this address"
		}
		utils.WriteAjaxError(w, r, message, ajaxCode(responseType))
		return
	}

	log.InfoR(r, "callback shipping update applied", log.Data{"order_id": order.ID, "selected_method": response.SelectedMethod})
	utils.WriteAjaxSuccess(w, r, response)
}

package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/plutov/paypal/v4"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/wpppc/checkout-client-api/dao"
	"github.com/wpppc/checkout-client-api/helpers"
	"github.com/wpppc/checkout-client-api/models"
	"github.com/wpppc/checkout-client-api/service"
)

func callbackRequest(t *testing.T, body interface{}) *http.Request {
	encoded, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest("POST", "/callback/shipping", bytes.NewBuffer(encoded))
	order := models.OrderResourceRest{ID: 55, OrderKey: "wc_order_abc123def456g", Status: "pending", Currency: "USD", NeedsShipping: true, ServerID: 7, PayPalOrderID: "PP-123"}
	ctx := context.WithValue(req.Context(), helpers.ContextKeyOrderResource, &order)
	return req.WithContext(ctx)
}

func TestUnitHandleShippingCallback(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	Convey("A callback without an address is refused", t, func() {
		wireServices(nil, nil, nil, nil)
		w := httptest.NewRecorder()

		HandleShippingCallback(w, callbackRequest(t, models.ShippingCallbackData{}))
		So(w.Code, ShouldEqual, http.StatusOK)
		envelope := ajaxEnvelope(w)
		So(envelope.Success, ShouldBeFalse)
		So(envelope.Code, ShouldEqual, "invalid_data")
	})

	Convey("A missing order context is an error envelope", t, func() {
		wireServices(nil, nil, nil, nil)
		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/callback/shipping", bytes.NewBufferString("{}"))

		HandleShippingCallback(w, req)
		So(w.Code, ShouldEqual, http.StatusOK)
		envelope := ajaxEnvelope(w)
		So(envelope.Success, ShouldBeFalse)
	})

	Convey("The PayPal address is applied and the repriced set returned", t, func() {
		orderDB := testOrderDB()
		mockDAO := dao.NewMockDAO(mockCtrl)
		mockDAO.EXPECT().GetOrderResource(int64(55)).Return(&orderDB, nil)

		var savedOrder *models.OrderResourceDB
		mockDAO.EXPECT().SaveOrderResource(gomock.Any()).DoAndReturn(func(o *models.OrderResourceDB) error {
			savedOrder = o
			return nil
		})

		mockManager := service.NewMockServerManager(mockCtrl)
		mockManager.EXPECT().GetServer(7).Return(testServer(), nil)
		mockShipping := service.NewMockShippingCalculator(mockCtrl)
		mockShipping.EXPECT().CalculateShipping(gomock.Any()).DoAndReturn(func(destination models.AddressRest) ([]models.ShippingOption, error) {
			So(destination.City, ShouldEqual, "Boston")
			So(destination.State, ShouldEqual, "MA")
			So(destination.Country, ShouldEqual, "US")
			return []models.ShippingOption{
				{ID: "flat_rate:1", MethodID: "flat_rate", InstanceID: 1, Label: "Flat rate", Cost: "4.00", Tax: "0.40"},
			}, nil
		})
		mockProxy := service.NewMockProxyTransport(mockCtrl)
		mockProxy.EXPECT().Post(gomock.Any(), "/wppps/v1/update-express-shipping", gomock.Any()).Return(
			&models.ProxyResponse{Success: true}, service.Success, nil)
		wireServices(mockDAO, mockManager, mockProxy, mockShipping)

		w := httptest.NewRecorder()
		req := callbackRequest(t, models.ShippingCallbackData{
			ShippingAddress: &paypal.ShippingDetailAddressPortable{
				AddressLine1: "1 Main St",
				AdminArea2:   "Boston",
				AdminArea1:   "MA",
				PostalCode:   "02101",
				CountryCode:  "US",
			},
		})

		HandleShippingCallback(w, req)
		So(w.Code, ShouldEqual, http.StatusOK)
		envelope := ajaxEnvelope(w)
		So(envelope.Success, ShouldBeTrue)

		So(savedOrder, ShouldNotBeNil)
		So(savedOrder.Shipping.City, ShouldEqual, "Boston")
		So(len(savedOrder.ShippingLines), ShouldEqual, 1)
	})
}

package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/gorilla/mux"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/wpppc/checkout-client-api/config"
	"github.com/wpppc/checkout-client-api/dao"
	"github.com/wpppc/checkout-client-api/models"
	"github.com/wpppc/checkout-client-api/service"
	"github.com/wpppc/checkout-client-api/utils"
)

var testConfig = config.Config{
	SiteURL:        "https://shop.example.com",
	CheckoutWebURL: "https://shop.example.com/checkout",
	NonceSecret:    "nonce-secret",
	BaseCountry:    "US",
	CallbackMaxAge: 300,
}

// wireServices points the package-level services at mocked dependencies
func wireServices(mockDAO *dao.MockDAO, mockManager *service.MockServerManager, mockProxy *service.MockProxyTransport, mockShipping *service.MockShippingCalculator) {
	serviceConfig = testConfig
	orderService = &service.OrderService{
		DAO:     mockDAO,
		Config:  testConfig,
		Manager: mockManager,
		Proxy:   mockProxy,
	}
	expressService = &service.ExpressCheckoutService{
		Orders:   orderService,
		Config:   testConfig,
		Manager:  mockManager,
		Proxy:    mockProxy,
		Shipping: mockShipping,
	}
}

func testCart() *models.CartResourceDB {
	return &models.CartResourceDB{
		SessionID:     "sess-1",
		Currency:      "USD",
		NeedsShipping: true,
		Items: []models.CartItemDB{
			{ProductID: 11, Name: "Widget", Quantity: 2, Price: "10.00", LineSubtotal: "20.00", LineTotal: "18.00", LineTax: "1.80"},
		},
	}
}

func testServer() *models.ProxyServer {
	return &models.ProxyServer{ID: 7, URL: "https://proxy.example.com/", APIKey: "K", APISecret: "S"}
}

func testOrderDB() models.OrderResourceDB {
	return models.OrderResourceDB{
		ID:            55,
		OrderKey:      "wc_order_abc123def456g",
		Status:        "pending",
		Currency:      "USD",
		NeedsShipping: true,
		ServerID:      7,
		PayPalOrderID: "PP-123",
		Items: []models.OrderItemDB{
			{ProductID: 11, Name: "Widget", Quantity: 2, Price: "10.00", LineSubtotal: "20.00", LineTotal: "18.00", LineTax: "1.80"},
		},
		Total: "19.80",
	}
}

func ajaxEnvelope(w *httptest.ResponseRecorder) utils.AjaxResponse {
	var envelope utils.AjaxResponse
	So(json.Unmarshal(w.Body.Bytes(), &envelope), ShouldBeNil)
	return envelope
}

func TestUnitHandleCreateExpressOrder(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	Convey("An empty cart is reported in the envelope", t, func() {
		mockDAO := dao.NewMockDAO(mockCtrl)
		mockDAO.EXPECT().GetCartResource(gomock.Any()).Return(nil, nil)
		wireServices(mockDAO, nil, nil, nil)

		w := httptest.NewRecorder()
		HandleCreateExpressOrder(w, httptest.NewRequest("POST", "/express/orders", nil))

		So(w.Code, ShouldEqual, http.StatusOK)
		envelope := ajaxEnvelope(w)
		So(envelope.Success, ShouldBeFalse)
		So(envelope.Message, ShouldEqual, "Your cart is empty")
		So(envelope.Code, ShouldEqual, "invalid_data")
	})

	Convey("A created order is returned in the envelope", t, func() {
		mockDAO := dao.NewMockDAO(mockCtrl)
		mockDAO.EXPECT().GetCartResource(gomock.Any()).Return(testCart(), nil)
		mockDAO.EXPECT().NextOrderID().Return(int64(55), nil)
		mockDAO.EXPECT().CreateOrderResource(gomock.Any()).Return(nil)
		mockDAO.EXPECT().SaveOrderResource(gomock.Any()).Return(nil).Times(2)
		mockManager := service.NewMockServerManager(mockCtrl)
		mockManager.EXPECT().GetSelectedServer().Return(testServer(), nil)
		mockProxy := service.NewMockProxyTransport(mockCtrl)
		mockProxy.EXPECT().Post(gomock.Any(), "/wppps/v1/create-express-checkout", gomock.Any()).Return(
			&models.ProxyResponse{Success: true, PayPalOrderID: "PP-123"}, service.Success, nil)
		wireServices(mockDAO, mockManager, mockProxy, nil)

		w := httptest.NewRecorder()
		HandleCreateExpressOrder(w, httptest.NewRequest("POST", "/express/orders", nil))

		So(w.Code, ShouldEqual, http.StatusOK)
		envelope := ajaxEnvelope(w)
		So(envelope.Success, ShouldBeTrue)

		data, err := json.Marshal(envelope.Data)
		So(err, ShouldBeNil)
		var response models.ExpressOrderResponse
		So(json.Unmarshal(data, &response), ShouldBeNil)
		So(response.OrderID, ShouldEqual, 55)
		So(response.PayPalOrderID, ShouldEqual, "PP-123")
	})
}

func TestUnitHandleUpdateShipping(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	shippingBody := func() *bytes.Buffer {
		body, _ := json.Marshal(models.UpdateShippingRequest{
			ShippingAddress: models.AddressRest{Address1: "1 Main St", City: "Boston", State: "MA", Postcode: "02101", Country: "US"},
		})
		return bytes.NewBuffer(body)
	}

	Convey("A malformed order id is rejected", t, func() {
		wireServices(nil, nil, nil, nil)
		w := httptest.NewRecorder()
		req := mux.SetURLVars(httptest.NewRequest("POST", "/express/orders/bad/shipping", shippingBody()), map[string]string{"order_id": "bad"})

		HandleUpdateShipping(w, req)
		envelope := ajaxEnvelope(w)
		So(envelope.Success, ShouldBeFalse)
		So(envelope.Code, ShouldEqual, "invalid_data")
	})

	Convey("An address with no options reports the distinguished condition", t, func() {
		orderDB := testOrderDB()
		orderDB.PayPalOrderID = ""
		mockDAO := dao.NewMockDAO(mockCtrl)
		mockDAO.EXPECT().GetOrderResource(int64(55)).Return(&orderDB, nil)
		mockDAO.EXPECT().SaveOrderResource(gomock.Any()).Return(nil)
		mockShipping := service.NewMockShippingCalculator(mockCtrl)
		mockShipping.EXPECT().CalculateShipping(gomock.Any()).Return(nil, nil)
		wireServices(mockDAO, nil, nil, mockShipping)

		w := httptest.NewRecorder()
		req := mux.SetURLVars(httptest.NewRequest("POST", "/express/orders/55/shipping", shippingBody()), map[string]string{"order_id": "55"})

		HandleUpdateShipping(w, req)
		So(w.Code, ShouldEqual, http.StatusOK)
		envelope := ajaxEnvelope(w)
		So(envelope.Success, ShouldBeFalse)
		So(envelope.Code, ShouldEqual, "no_shipping_options")
	})

	Convey("A repriced option set is returned", t, func() {
		orderDB := testOrderDB()
		orderDB.PayPalOrderID = ""
		mockDAO := dao.NewMockDAO(mockCtrl)
		mockDAO.EXPECT().GetOrderResource(int64(55)).Return(&orderDB, nil)
		mockDAO.EXPECT().SaveOrderResource(gomock.Any()).Return(nil)
		mockShipping := service.NewMockShippingCalculator(mockCtrl)
		mockShipping.EXPECT().CalculateShipping(gomock.Any()).Return([]models.ShippingOption{
			{ID: "flat_rate:1", MethodID: "flat_rate", InstanceID: 1, Label: "Flat rate", Cost: "4.00", Tax: "0.40"},
		}, nil)
		wireServices(mockDAO, nil, nil, mockShipping)

		w := httptest.NewRecorder()
		req := mux.SetURLVars(httptest.NewRequest("POST", "/express/orders/55/shipping", shippingBody()), map[string]string{"order_id": "55"})

		HandleUpdateShipping(w, req)
		envelope := ajaxEnvelope(w)
		So(envelope.Success, ShouldBeTrue)

		data, err := json.Marshal(envelope.Data)
		So(err, ShouldBeNil)
		var response models.UpdateShippingResponse
		So(json.Unmarshal(data, &response), ShouldBeNil)
		So(response.SelectedMethod, ShouldEqual, "flat_rate:1")
		So(response.OrderTotal, ShouldEqual, "24.20")
	})
}

func TestUnitHandleCompleteExpressOrder(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	completionBody := func() *bytes.Buffer {
		body, _ := json.Marshal(models.CompleteExpressOrderRequest{PayPalOrderID: "PP-123"})
		return bytes.NewBuffer(body)
	}

	Convey("A missing paypal order id fails validation", t, func() {
		wireServices(nil, nil, nil, nil)
		w := httptest.NewRecorder()
		req := mux.SetURLVars(httptest.NewRequest("POST", "/express/orders/55/complete", bytes.NewBufferString("{}")), map[string]string{"order_id": "55"})

		HandleCompleteExpressOrder(w, req)
		envelope := ajaxEnvelope(w)
		So(envelope.Success, ShouldBeFalse)
		So(envelope.Code, ShouldEqual, "invalid_data")
	})

	Convey("A captured payment returns the redirect", t, func() {
		orderDB := testOrderDB()
		mockDAO := dao.NewMockDAO(mockCtrl)
		mockDAO.EXPECT().GetOrderResource(int64(55)).Return(&orderDB, nil)
		mockDAO.EXPECT().SaveOrderResource(gomock.Any()).Return(nil)
		mockManager := service.NewMockServerManager(mockCtrl)
		mockManager.EXPECT().GetServer(7).Return(testServer(), nil)
		mockManager.EXPECT().AddServerUsage(7, "19.80").Return(nil)
		mockProxy := service.NewMockProxyTransport(mockCtrl)
		mockProxy.EXPECT().Post(gomock.Any(), "/wppps/v1/capture-express-payment", gomock.Any()).Return(
			&models.ProxyResponse{Success: true, TransactionID: "TX-9"}, service.Success, nil)
		wireServices(mockDAO, mockManager, mockProxy, nil)

		w := httptest.NewRecorder()
		req := mux.SetURLVars(httptest.NewRequest("POST", "/express/orders/55/complete", completionBody()), map[string]string{"order_id": "55"})

		HandleCompleteExpressOrder(w, req)
		So(w.Code, ShouldEqual, http.StatusOK)
		envelope := ajaxEnvelope(w)
		So(envelope.Success, ShouldBeTrue)

		data, err := json.Marshal(envelope.Data)
		So(err, ShouldBeNil)
		var response models.CompleteExpressOrderResponse
		So(json.Unmarshal(data, &response), ShouldBeNil)
		So(response.TransactionID, ShouldEqual, "TX-9")
		So(response.Redirect, ShouldEqual, "https://shop.example.com/checkout/order-received/55/?key=wc_order_abc123def456g")
	})
}

func TestUnitHandleGetExpressConfig(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	Convey("A request without a session header is refused", t, func() {
		wireServices(nil, nil, nil, nil)
		w := httptest.NewRecorder()

		HandleGetExpressConfig(w, httptest.NewRequest("GET", "/express/config", nil))
		envelope := ajaxEnvelope(w)
		So(envelope.Success, ShouldBeFalse)
		So(envelope.Code, ShouldEqual, "invalid_data")
	})

	Convey("Bootstrap data is returned with a minted nonce", t, func() {
		mockDAO := dao.NewMockDAO(mockCtrl)
		mockDAO.EXPECT().GetCartResource("sess-1").Return(testCart(), nil)
		mockManager := service.NewMockServerManager(mockCtrl)
		mockManager.EXPECT().GetSelectedServer().Return(testServer(), nil)
		wireServices(mockDAO, mockManager, nil, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/express/config", nil)
		req.Header.Set("X-Session-ID", "sess-1")

		HandleGetExpressConfig(w, req)
		envelope := ajaxEnvelope(w)
		So(envelope.Success, ShouldBeTrue)

		data, err := json.Marshal(envelope.Data)
		So(err, ShouldBeNil)
		var response models.ExpressConfigResponse
		So(json.Unmarshal(data, &response), ShouldBeNil)
		So(response.Nonce, ShouldEqual, "385bf90fce83")
		So(response.CartTotal, ShouldEqual, "19.80")
		So(response.IframeURL, ShouldStartWith, "https://proxy.example.com/")
	})
}

package handlers

import (
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/wpppc/checkout-client-api/config"
	"github.com/wpppc/checkout-client-api/dao"
	"github.com/wpppc/checkout-client-api/interceptors"
	"github.com/wpppc/checkout-client-api/service"
)

var orderService *service.OrderService
var expressService *service.ExpressCheckoutService
var serviceConfig config.Config
var validate = validator.New()

// Register defines the route mappings for the main router and its subrouters
func Register(mainRouter *mux.Router, cfg config.Config) {
	m := dao.NewMongoService(&cfg)
	manager := &service.MongoServerManager{DAO: m}

	orderService = &service.OrderService{
		DAO:     m,
		Config:  cfg,
		Manager: manager,
		Proxy:   service.NewProxyClient(),
	}

	expressService = &service.ExpressCheckoutService{
		Orders:   orderService,
		Config:   cfg,
		Manager:  manager,
		Proxy:    orderService.Proxy,
		Shipping: &service.ZoneShippingCalculator{DAO: m},
	}

	serviceConfig = cfg

	nonceInterceptor := &interceptors.NonceInterceptor{Config: cfg}
	callbackInterceptor := &interceptors.CallbackInterceptor{
		Orders: orderService,
		Config: cfg,
	}

	mainRouter.HandleFunc("/healthcheck", healthCheck).Methods("GET").Name("get-healthcheck")

	// The config endpoint hands out the nonce, so it cannot sit behind the
	// nonce interceptor. It must be registered before the /express subrouter
	// claims the prefix.
	mainRouter.HandleFunc("/express/config", HandleGetExpressConfig).Methods("GET").Name("get-express-config")

	expressRouter := mainRouter.PathPrefix("/express").Subrouter()
	expressRouter.HandleFunc("/orders", HandleCreateExpressOrder).Methods("POST").Name("create-express-order")
	expressRouter.HandleFunc("/orders/{order_id}/shipping", HandleUpdateShipping).Methods("POST").Name("update-express-shipping")
	expressRouter.HandleFunc("/orders/{order_id}/complete", HandleCompleteExpressOrder).Methods("POST").Name("complete-express-order")
	expressRouter.HandleFunc("/orders/{order_id}/paypal", HandleGetPayPalOrder).Methods("GET").Name("get-paypal-order")

	checkoutRouter := mainRouter.PathPrefix("/checkout").Subrouter()
	checkoutRouter.HandleFunc("/orders/{order_id}/register", HandleRegisterOrder).Methods("POST").Name("register-order")
	checkoutRouter.HandleFunc("/orders/{order_id}/verify", HandleVerifyPayment).Methods("POST").Name("verify-payment")

	// callback endpoints carry their own HMAC envelope, so they bypass the
	// nonce interceptor entirely
	callbackRouter := mainRouter.PathPrefix("/callback").Subrouter()
	callbackRouter.HandleFunc("/shipping", HandleShippingCallback).Methods("POST").Name("shipping-callback")

	expressRouter.Use(log.Handler, nonceInterceptor.NonceAuthenticationIntercept)
	checkoutRouter.Use(log.Handler, nonceInterceptor.NonceAuthenticationIntercept)
	callbackRouter.Use(log.Handler, callbackInterceptor.CallbackSignatureIntercept)
}

func healthCheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

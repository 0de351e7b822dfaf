package main

import (
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/gorilla/mux"
	"github.com/wpppc/checkout-client-api/config"
	"github.com/wpppc/checkout-client-api/handlers"
)

func main() {
	log.Namespace = "checkout-client-api"

	cfg, err := config.Get()
	if err != nil {
		log.Error(err)
		return
	}

	mainRouter := mux.NewRouter()
	handlers.Register(mainRouter, *cfg)

	log.Info("Starting checkout-client-api service")
	err = http.ListenAndServe(cfg.BindAddr, mainRouter)
	if err != nil {
		log.Error(err)
	}
	log.Trace("Exiting checkout-client-api service")
}

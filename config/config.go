// Package config defines the environment variable and command-line flags
// supported by this service and includes default values for particular
// fields.
package config

import (
	"sync"

	"github.com/companieshouse/gofigure"
)

var cfg *Config
var mtx sync.Mutex

// Config defines the configuration options for this service.
type Config struct {
	BindAddr          string `env:"BIND_ADDR"                  flag:"bind-addr"                  flagDesc:"Bind address"`
	Collection        string `env:"MONGODB_COLLECTION"         flag:"mongodb-collection"         flagDesc:"MongoDB collection for order data"`
	CartsCollection   string `env:"MONGODB_CARTS_COLLECTION"   flag:"mongodb-carts-collection"   flagDesc:"MongoDB collection for session carts"`
	ServersCollection string `env:"MONGODB_SERVERS_COLLECTION" flag:"mongodb-servers-collection" flagDesc:"MongoDB collection for proxy server descriptors"`
	ZonesCollection   string `env:"MONGODB_ZONES_COLLECTION"   flag:"mongodb-zones-collection"   flagDesc:"MongoDB collection for shipping zones"`
	Database          string `env:"MONGODB_DATABASE"           flag:"mongodb-database"           flagDesc:"MongoDB database for data"`
	MongoDBURL        string `env:"MONGODB_URL"                flag:"mongodb-url"                flagDesc:"MongoDB server URL"`
	SiteURL           string `env:"SITE_URL"                   flag:"site-url"                   flagDesc:"Public base URL of the storefront"`
	CheckoutWebURL    string `env:"CHECKOUT_WEB_URL"           flag:"checkout-web-url"           flagDesc:"Base URL for the storefront checkout pages"`
	NonceSecret       string `env:"NONCE_SECRET"               flag:"nonce-secret"               flagDesc:"Secret used to mint and verify session nonces"`
	BaseCountry       string `env:"BASE_COUNTRY"               flag:"base-country"               flagDesc:"Store base country used as the default shipping destination"`
	CallbackMaxAge    int64  `env:"CALLBACK_MAX_AGE"           flag:"callback-max-age"           flagDesc:"Maximum age in seconds of a signed proxy callback before rejection"`
}

// DefaultConfig returns a pointer to a Config instance that has been populated
// with default values.
func DefaultConfig() *Config {
	return &Config{
		Database:          "checkout",
		Collection:        "orders",
		CartsCollection:   "carts",
		ServersCollection: "proxy_servers",
		ZonesCollection:   "shipping_zones",
		BaseCountry:       "US",
		CallbackMaxAge:    300,
	}
}

// Get returns a pointer to a Config instance that has been populated with
// values provided by the environment or command-line flags, or with default
// values if none are provided.
func Get() (*Config, error) {
	mtx.Lock()
	defer mtx.Unlock()

	if cfg != nil {
		return cfg, nil
	}

	cfg = DefaultConfig()

	err := gofigure.Gofigure(cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

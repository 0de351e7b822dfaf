package dao

import "github.com/wpppc/checkout-client-api/models"

// DAO is an interface for accessing data from a backend store
type DAO interface {
	CreateOrderResource(order *models.OrderResourceDB) error
	GetOrderResource(id int64) (*models.OrderResourceDB, error)
	SaveOrderResource(order *models.OrderResourceDB) error
	NextOrderID() (int64, error)
	GetCartResource(sessionID string) (*models.CartResourceDB, error)
	EmptyCartResource(sessionID string) error
	GetProxyServer(id int) (*models.ProxyServerDB, error)
	ListProxyServers() ([]models.ProxyServerDB, error)
	UpdateServerUsage(id int, usage string) error
	GetShippingZones() ([]models.ShippingZoneDB, error)
}

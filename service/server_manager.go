package service

import (
	"fmt"

	"github.com/companieshouse/chs.go/log"
	"github.com/shopspring/decimal"
	"github.com/wpppc/checkout-client-api/dao"
	"github.com/wpppc/checkout-client-api/models"
)

// ServerManager selects a proxy server for a request and tracks the monetary
// usage recorded against each one. Injected so tests can substitute doubles.
type ServerManager interface {
	GetServer(id int) (*models.ProxyServer, error)
	GetSelectedServer() (*models.ProxyServer, error)
	GetNextAvailableServer() (*models.ProxyServer, error)
	AddServerUsage(id int, amount string) error
}

// MongoServerManager is the DAO-backed ServerManager implementation
type MongoServerManager struct {
	DAO dao.DAO
}

// GetServer returns the descriptor for a specific proxy server, or nil when
// it no longer exists
func (sm *MongoServerManager) GetServer(id int) (*models.ProxyServer, error) {
	server, err := sm.DAO.GetProxyServer(id)
	if err != nil {
		return nil, fmt.Errorf("error getting proxy server %d: [%s]", id, err)
	}
	if server == nil || !server.Enabled {
		return nil, nil
	}
	return toProxyServer(server), nil
}

// GetSelectedServer returns the operator-selected proxy server, or nil when
// none is selected
func (sm *MongoServerManager) GetSelectedServer() (*models.ProxyServer, error) {
	servers, err := sm.DAO.ListProxyServers()
	if err != nil {
		return nil, fmt.Errorf("error listing proxy servers: [%s]", err)
	}
	for i := range servers {
		if servers[i].Selected && servers[i].Enabled {
			return toProxyServer(&servers[i]), nil
		}
	}
	return nil, nil
}

// GetNextAvailableServer returns the first enabled server with remaining
// capacity, in id order. Servers with no capacity configured are treated as
// unlimited.
func (sm *MongoServerManager) GetNextAvailableServer() (*models.ProxyServer, error) {
	servers, err := sm.DAO.ListProxyServers()
	if err != nil {
		return nil, fmt.Errorf("error listing proxy servers: [%s]", err)
	}

	for i := range servers {
		server := &servers[i]
		if !server.Enabled {
			continue
		}
		if server.Capacity == "" {
			return toProxyServer(server), nil
		}

		capacity, err := decimal.NewFromString(server.Capacity)
		if err != nil {
			log.Error(fmt.Errorf("invalid capacity on proxy server %d: [%s]", server.ID, err))
			continue
		}
		usage := decimal.Zero
		if server.Usage != "" {
			if usage, err = decimal.NewFromString(server.Usage); err != nil {
				log.Error(fmt.Errorf("invalid usage on proxy server %d: [%s]", server.ID, err))
				continue
			}
		}

		if usage.LessThan(capacity) {
			return toProxyServer(server), nil
		}
	}

	return nil, nil
}

// AddServerUsage records a captured amount against the server's usage total
func (sm *MongoServerManager) AddServerUsage(id int, amount string) error {
	server, err := sm.DAO.GetProxyServer(id)
	if err != nil {
		return fmt.Errorf("error getting proxy server %d: [%s]", id, err)
	}
	if server == nil {
		return fmt.Errorf("proxy server %d not found", id)
	}

	amountToAdd, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid usage amount for proxy server %d: [%s]", id, err)
	}

	usage := decimal.Zero
	if server.Usage != "" {
		if usage, err = decimal.NewFromString(server.Usage); err != nil {
			return fmt.Errorf("invalid stored usage on proxy server %d: [%s]", id, err)
		}
	}

	return sm.DAO.UpdateServerUsage(id, usage.Add(amountToAdd).StringFixed(2))
}

func toProxyServer(server *models.ProxyServerDB) *models.ProxyServer {
	return &models.ProxyServer{
		ID:        server.ID,
		URL:       server.URL,
		APIKey:    server.APIKey,
		APISecret: server.APISecret,
	}
}

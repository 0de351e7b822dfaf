package models

// ProxyServerDB is a proxy server descriptor as stored in the DB. Usage and
// capacity are monetary amounts kept as strings; arithmetic on them is done
// with decimals in the service layer.
type ProxyServerDB struct {
	ID        int    `bson:"_id"`
	Name      string `bson:"name"`
	URL       string `bson:"url"`
	APIKey    string `bson:"api_key"`
	APISecret string `bson:"api_secret"`
	Selected  bool   `bson:"selected"`
	Enabled   bool   `bson:"enabled"`
	Usage     string `bson:"usage"`
	Capacity  string `bson:"capacity"`
}

// ProxyServer is a proxy server descriptor selected for a request. Immutable
// once chosen for a given order.
type ProxyServer struct {
	ID        int    `json:"id"`
	URL       string `json:"url"`
	APIKey    string `json:"api_key"`
	APISecret string `json:"-"`
}

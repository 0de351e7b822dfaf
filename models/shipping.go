package models

// ShippingOption is a shipping service available for a destination address.
// ID is the composite rate id ("method:instance") used for selection.
type ShippingOption struct {
	ID         string   `json:"id"`
	MethodID   string   `json:"method_id"`
	InstanceID int      `json:"instance_id"`
	Label      string   `json:"label"`
	Cost       string   `json:"cost"`
	Tax        string   `json:"tax"`
	Taxes      []string `json:"taxes,omitempty"`
}

// ShippingRateDB is a single rate configured within a shipping zone
type ShippingRateDB struct {
	MethodID   string   `bson:"method_id"`
	InstanceID int      `bson:"instance_id"`
	Label      string   `bson:"label"`
	Cost       string   `bson:"cost"`
	Tax        string   `bson:"tax"`
	Taxes      []string `bson:"taxes,omitempty"`
}

// ShippingZoneDB is a shipping zone as stored in the DB. A destination
// matches a zone when its country is listed and, where set, the state and
// postcode prefix filters also match. Zones are evaluated in Order sequence
// and the first match wins.
type ShippingZoneDB struct {
	ID              int              `bson:"_id"`
	Name            string           `bson:"name"`
	Order           int              `bson:"order"`
	Countries       []string         `bson:"countries"`
	States          []string         `bson:"states,omitempty"`
	PostcodePrefix  string           `bson:"postcode_prefix,omitempty"`
	Rates           []ShippingRateDB `bson:"rates"`
}

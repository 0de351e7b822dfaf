package service

import (
	"fmt"
	"strings"

	"github.com/wpppc/checkout-client-api/dao"
	"github.com/wpppc/checkout-client-api/models"
)

// ShippingCalculator resolves the shipping options serving a destination
// address. An empty result is not an error: the express checkout service
// reports it as the distinguished NoShippingOptions condition so the PayPal
// UI can ask the buyer for a different address.
type ShippingCalculator interface {
	CalculateShipping(destination models.AddressRest) ([]models.ShippingOption, error)
}

// ZoneShippingCalculator resolves options from the configured shipping
// zones. Zones are evaluated in order and the first matching zone's rates
// become the option set.
type ZoneShippingCalculator struct {
	DAO dao.DAO
}

// CalculateShipping returns the option set for the destination, preserving
// the zone's rate order so that first-by-list-order selection is stable
func (zc *ZoneShippingCalculator) CalculateShipping(destination models.AddressRest) ([]models.ShippingOption, error) {
	if destination.Country == "" {
		return nil, nil
	}

	zones, err := zc.DAO.GetShippingZones()
	if err != nil {
		return nil, fmt.Errorf("error getting shipping zones: [%s]", err)
	}

	for _, zone := range zones {
		if !zoneMatches(zone, destination) {
			continue
		}

		options := make([]models.ShippingOption, 0, len(zone.Rates))
		for _, rate := range zone.Rates {
			options = append(options, models.ShippingOption{
				ID:         fmt.Sprintf("%s:%d", rate.MethodID, rate.InstanceID),
				MethodID:   rate.MethodID,
				InstanceID: rate.InstanceID,
				Label:      rate.Label,
				Cost:       rate.Cost,
				Tax:        rate.Tax,
				Taxes:      rate.Taxes,
			})
		}
		return options, nil
	}

	return nil, nil
}

func zoneMatches(zone models.ShippingZoneDB, destination models.AddressRest) bool {
	countryMatched := false
	for _, country := range zone.Countries {
		if strings.EqualFold(country, destination.Country) {
			countryMatched = true
			break
		}
	}
	if !countryMatched {
		return false
	}

	if len(zone.States) > 0 {
		stateMatched := false
		for _, state := range zone.States {
			if strings.EqualFold(state, destination.State) {
				stateMatched = true
				break
			}
		}
		if !stateMatched {
			return false
		}
	}

	if zone.PostcodePrefix != "" && !strings.HasPrefix(destination.Postcode, zone.PostcodePrefix) {
		return false
	}

	return true
}

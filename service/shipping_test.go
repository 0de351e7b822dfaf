package service

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/wpppc/checkout-client-api/dao"
	"github.com/wpppc/checkout-client-api/models"
)

func zoneFixtures() []models.ShippingZoneDB {
	return []models.ShippingZoneDB{
		{
			ID: 1, Name: "New England", Order: 1, Countries: []string{"US"}, States: []string{"MA", "NH"},
			Rates: []models.ShippingRateDB{
				{MethodID: "flat_rate", InstanceID: 1, Label: "Flat rate", Cost: "4.00", Tax: "0.40", Taxes: []string{"0.25", "0.15"}},
				{MethodID: "express", InstanceID: 2, Label: "Express", Cost: "9.00", Tax: "0.90"},
			},
		},
		{
			ID: 2, Name: "Domestic", Order: 2, Countries: []string{"US"},
			Rates: []models.ShippingRateDB{
				{MethodID: "flat_rate", InstanceID: 3, Label: "Standard", Cost: "6.00", Tax: "0.60"},
			},
		},
		{
			ID: 3, Name: "London", Order: 3, Countries: []string{"GB"}, PostcodePrefix: "EC",
			Rates: []models.ShippingRateDB{
				{MethodID: "local_pickup", InstanceID: 4, Label: "Pickup", Cost: "0.00", Tax: "0.00"},
			},
		},
	}
}

func TestUnitCalculateShipping(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	Convey("No country means no options and no zone lookup", t, func() {
		calculator := ZoneShippingCalculator{DAO: dao.NewMockDAO(mockCtrl)}

		options, err := calculator.CalculateShipping(models.AddressRest{City: "Boston"})
		So(err, ShouldBeNil)
		So(options, ShouldBeNil)
	})

	Convey("DAO failure is wrapped", t, func() {
		mockDAO := dao.NewMockDAO(mockCtrl)
		mockDAO.EXPECT().GetShippingZones().Return(nil, errors.New("db down"))
		calculator := ZoneShippingCalculator{DAO: mockDAO}

		_, err := calculator.CalculateShipping(models.AddressRest{Country: "US"})
		So(err, ShouldNotBeNil)
	})

	Convey("The first matching zone wins and rate order is preserved", t, func() {
		mockDAO := dao.NewMockDAO(mockCtrl)
		mockDAO.EXPECT().GetShippingZones().Return(zoneFixtures(), nil)
		calculator := ZoneShippingCalculator{DAO: mockDAO}

		options, err := calculator.CalculateShipping(models.AddressRest{Country: "US", State: "MA", Postcode: "02101"})
		So(err, ShouldBeNil)
		So(len(options), ShouldEqual, 2)
		So(options[0].ID, ShouldEqual, "flat_rate:1")
		So(options[0].Taxes, ShouldResemble, []string{"0.25", "0.15"})
		So(options[1].ID, ShouldEqual, "express:2")
		So(options[1].Taxes, ShouldBeNil)
	})

	Convey("A state outside the zone filter falls through to the next zone", t, func() {
		mockDAO := dao.NewMockDAO(mockCtrl)
		mockDAO.EXPECT().GetShippingZones().Return(zoneFixtures(), nil)
		calculator := ZoneShippingCalculator{DAO: mockDAO}

		options, err := calculator.CalculateShipping(models.AddressRest{Country: "US", State: "CA", Postcode: "90001"})
		So(err, ShouldBeNil)
		So(len(options), ShouldEqual, 1)
		So(options[0].ID, ShouldEqual, "flat_rate:3")
	})

	Convey("Country matching is case insensitive", t, func() {
		mockDAO := dao.NewMockDAO(mockCtrl)
		mockDAO.EXPECT().GetShippingZones().Return(zoneFixtures(), nil)
		calculator := ZoneShippingCalculator{DAO: mockDAO}

		options, err := calculator.CalculateShipping(models.AddressRest{Country: "us", State: "ma"})
		So(err, ShouldBeNil)
		So(len(options), ShouldEqual, 2)
	})

	Convey("Postcode prefix filters the zone", t, func() {
		mockDAO := dao.NewMockDAO(mockCtrl)
		mockDAO.EXPECT().GetShippingZones().Return(zoneFixtures(), nil).Times(2)
		calculator := ZoneShippingCalculator{DAO: mockDAO}

		options, err := calculator.CalculateShipping(models.AddressRest{Country: "GB", Postcode: "EC1A 1BB"})
		So(err, ShouldBeNil)
		So(len(options), ShouldEqual, 1)
		So(options[0].MethodID, ShouldEqual, "local_pickup")

		options, err = calculator.CalculateShipping(models.AddressRest{Country: "GB", Postcode: "SW1A 1AA"})
		So(err, ShouldBeNil)
		So(options, ShouldBeNil)
	})
}

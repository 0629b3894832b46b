package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func testMarket() MarketConfig {
	return MarketConfig{
		Code:         "uk",
		Name:         "United Kingdom",
		Currency:     "GBP",
		TaxRate:      0.19,
		Depreciation: 2000,
		Channels:     []string{"b2c", "nhs"},
		Economics: map[string]UnitEconomics{
			"b2c": {Revenue: 100, ClinicalCost: 40, TechAdminCost: 10, AcquisitionCost: 20},
			"nhs": {Revenue: 200, ClinicalCost: 40, TechAdminCost: 10, AcquisitionCost: 0},
		},
	}
}

func TestRevenueSumsChannels(t *testing.T) {
	calc := NewCalculator(testMarket())

	rev := calc.Revenue(ServiceVolumes{"b2c": 10, "nhs": 5}, 2030, "january")

	require.Equal(t, 1000.0, rev.Channels["b2c"])
	require.Equal(t, 1000.0, rev.Channels["nhs"])
	require.Equal(t, 2000.0, rev.Assessment)
	require.Equal(t, 0.0, rev.Subscription)
	require.Equal(t, 2000.0, rev.Total)
}

func TestRevenueMissingChannelsCountAsZero(t *testing.T) {
	calc := NewCalculator(testMarket())

	rev := calc.Revenue(ServiceVolumes{"b2c": 3}, 2030, "january")
	require.Equal(t, 300.0, rev.Total)

	rev = calc.Revenue(nil, 2030, "january")
	require.Equal(t, 0.0, rev.Total)
}

func TestRevenueIgnoresUnknownChannels(t *testing.T) {
	calc := NewCalculator(testMarket())

	rev := calc.Revenue(ServiceVolumes{"b2c": 3, "telehealth": 99}, 2030, "january")

	require.Equal(t, 300.0, rev.Total)
	require.Equal(t, 3, calc.Patients(ServiceVolumes{"b2c": 3, "telehealth": 99}))
}

func TestSubscriptionCountRoundsUptake(t *testing.T) {
	market := testMarket()
	market.Subscription = &SubscriptionPlan{
		Price:      750,
		UnitCost:   230,
		UptakeRate: 0.5,
		Pipeline: map[int]RenewalPipeline{
			2030: {"january": 40, "february": 45},
		},
	}
	calc := NewCalculator(market)

	require.Equal(t, 20, calc.SubscriptionCount(2030, "january"))
	// 45 * 0.5 = 22.5 rounds half away from zero.
	require.Equal(t, 23, calc.SubscriptionCount(2030, "february"))
	require.Equal(t, 0, calc.SubscriptionCount(2030, "march"))
	require.Equal(t, 0, calc.SubscriptionCount(2029, "january"))
}

func TestSubscriptionRevenueAndCOGS(t *testing.T) {
	market := testMarket()
	market.Subscription = &SubscriptionPlan{
		Price:      750,
		UnitCost:   230,
		UptakeRate: 0.5,
		Pipeline:   map[int]RenewalPipeline{2030: {"january": 40}},
	}
	calc := NewCalculator(market)

	rev := calc.Revenue(nil, 2030, "january")
	require.Equal(t, 20, rev.SubscriptionCount)
	require.Equal(t, 15000.0, rev.Subscription)
	require.Equal(t, 15000.0, rev.Total)

	costs := calc.Costs(nil, rev.SubscriptionCount)
	require.Equal(t, 4600.0, costs.Subscription)
	require.Equal(t, 4600.0, costs.Total)
}

func TestCostsByCategory(t *testing.T) {
	calc := NewCalculator(testMarket())

	costs := calc.Costs(ServiceVolumes{"b2c": 10, "nhs": 5}, 0)

	require.Equal(t, 600.0, costs.Clinical)
	require.Equal(t, 150.0, costs.TechAdmin)
	require.Equal(t, 200.0, costs.Acquisition)
	require.Equal(t, 0.0, costs.Subscription)
	require.Equal(t, 950.0, costs.Total)
}

func TestUnitEconomicsDerivedFields(t *testing.T) {
	ue := UnitEconomics{Revenue: 1200, ClinicalCost: 450, TechAdminCost: 60, AcquisitionCost: 200}

	require.Equal(t, 710.0, ue.TotalCost())
	require.Equal(t, 490.0, ue.GrossProfit())
	require.Equal(t, 490.0/1200.0, ue.Margin())

	var zero UnitEconomics
	require.Equal(t, 0.0, zero.Margin())
}

package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/meridian-health/meridian/internal/model/fx"
)

// testDataset is a two-market fixture small enough to verify by hand:
// home UK market in GBP plus a USD market converting at 0.80.
func testDataset() *Dataset {
	return &Dataset{
		ReportingCurrency: "GBP",
		Currencies:        fx.Table{"USD": 0.80},
		Markets: []MarketConfig{
			{
				Code: "uk", Currency: "GBP", TaxRate: 0.19, Depreciation: 2000,
				Channels: []string{"a"},
				Economics: map[string]UnitEconomics{
					"a": {Revenue: 1000, ClinicalCost: 400, TechAdminCost: 50, AcquisitionCost: 150},
				},
			},
			{
				Code: "us", Currency: "USD", TaxRate: 0.21, Depreciation: 1500,
				Channels: []string{"p"},
				Economics: map[string]UnitEconomics{
					"p": {Revenue: 2000, ClinicalCost: 500, TechAdminCost: 100, AcquisitionCost: 400},
				},
			},
		},
		Opex: map[string]OpexSchedule{
			"uk": {2030: {"january": 1000}},
		},
		HomeOpexDefault: 500,
		Scenarios: map[string]*Scenario{
			"base": {
				Name: "Base",
				Volumes: map[int]map[string]map[string]ServiceVolumes{
					2030: {
						"uk": {"january": {"a": 10}},
						"us": {"january": {"p": 5}},
					},
				},
			},
			"double": {
				Name: "Double",
				Volumes: map[int]map[string]map[string]ServiceVolumes{
					2030: {
						"uk": {"january": {"a": 20}},
					},
				},
			},
		},
		DefaultScenario: "base",
		HomeYear:        2029,
	}
}

func TestMultiMarketPnLJanuary(t *testing.T) {
	engine := New(testDataset())

	result := engine.MultiMarketPnL(2030, "")
	require.False(t, result.Empty())
	require.Equal(t, "base", result.Scenario)
	require.Len(t, result.Monthly, 12)

	jan := result.Monthly[0]
	require.Equal(t, "January 2030", jan.Month)
	require.Equal(t, 15, jan.Patients)

	uk := jan.Markets["uk"]
	require.Equal(t, 10000.0, uk.Reporting.Revenue)
	require.Equal(t, 6000.0, uk.Reporting.COGS)
	require.Equal(t, 1000.0, uk.Reporting.Opex)
	require.Equal(t, 3000.0, uk.Reporting.EBITDA)
	require.Equal(t, 190.0, uk.Reporting.Tax)
	require.Equal(t, 810.0, uk.Reporting.NetIncome)

	us := jan.Markets["us"]
	require.Equal(t, 10000.0, us.Local.Revenue)
	require.Equal(t, 735.0, us.Local.Tax)
	require.Equal(t, 8000.0, us.Reporting.Revenue)
	require.Equal(t, 4000.0, us.Reporting.COGS)
	require.Equal(t, 1200.0, us.Reporting.Depreciation)
	require.Equal(t, 588.0, us.Reporting.Tax)
	require.Equal(t, 2212.0, us.Reporting.NetIncome)

	require.Equal(t, 18000.0, jan.Revenue)
	require.Equal(t, 10000.0, jan.COGS)
	require.Equal(t, 8000.0, jan.GrossProfit)
	require.Equal(t, 8000.0/18000.0, jan.GrossMargin)
	require.Equal(t, 1000.0, jan.Opex)
	require.Equal(t, 7000.0, jan.EBITDA)
	require.Equal(t, 3200.0, jan.Depreciation)
	require.Equal(t, 778.0, jan.Tax)
	require.Equal(t, 3022.0, jan.NetIncome)
}

func TestMultiMarketStatementIdentities(t *testing.T) {
	engine := New(testDataset())

	result := engine.MultiMarketPnL(2030, "")
	for _, m := range result.Monthly {
		require.Equal(t, m.Revenue-m.COGS, m.GrossProfit, m.Month)
		require.Equal(t, m.GrossProfit-m.Opex, m.EBITDA, m.Month)
		require.Equal(t, m.EBITDA-m.Depreciation-m.Tax, m.NetIncome, m.Month)
		require.GreaterOrEqual(t, m.Tax, 0.0, m.Month)
	}
}

func TestNoTaxOnLosses(t *testing.T) {
	engine := New(testDataset())

	result := engine.MultiMarketPnL(2030, "")
	// February has no volumes: pre-tax is negative from depreciation.
	feb := result.Monthly[1]
	require.Equal(t, 0.0, feb.Revenue)
	require.Equal(t, 0.0, feb.Tax)
	require.Equal(t, -3200.0, feb.NetIncome)
}

func TestZeroRevenueMeansZeroMargins(t *testing.T) {
	engine := New(testDataset())

	feb := engine.MultiMarketPnL(2030, "").Monthly[1]
	require.Equal(t, 0.0, feb.GrossMargin)
	require.Equal(t, 0.0, feb.EBITDAMargin)
}

func TestAnnualEqualsSumOfMonthly(t *testing.T) {
	engine := New(testDataset())

	result := engine.MultiMarketPnL(2030, "")
	var want AnnualPnL
	for _, m := range result.Monthly {
		want.Patients += m.Patients
		want.Revenue += m.Revenue
		want.COGS += m.COGS
		want.GrossProfit += m.GrossProfit
		want.Opex += m.Opex
		want.EBITDA += m.EBITDA
		want.Depreciation += m.Depreciation
		want.Tax += m.Tax
		want.NetIncome += m.NetIncome
	}

	annual := result.Annual
	require.Equal(t, "2030 ANNUAL TOTAL", annual.Label)
	require.Equal(t, want.Patients, annual.Patients)
	require.Equal(t, want.Revenue, annual.Revenue)
	require.Equal(t, want.COGS, annual.COGS)
	require.Equal(t, want.GrossProfit, annual.GrossProfit)
	require.Equal(t, want.Opex, annual.Opex)
	require.Equal(t, want.EBITDA, annual.EBITDA)
	require.Equal(t, want.Depreciation, annual.Depreciation)
	require.Equal(t, want.Tax, annual.Tax)
	require.Equal(t, want.NetIncome, annual.NetIncome)
	require.Equal(t, safeMargin(annual.GrossProfit, annual.Revenue), annual.GrossMargin)
}

func TestByMarketRollUp(t *testing.T) {
	engine := New(testDataset())

	result := engine.MultiMarketPnL(2030, "")
	us := result.ByMarket["us"]
	require.Equal(t, "USD", us.Currency)
	require.Equal(t, 5, us.Patients)
	require.Equal(t, 10000.0, us.Local.Revenue)
	require.Equal(t, 8000.0, us.Reporting.Revenue)

	uk := result.ByMarket["uk"]
	require.Equal(t, uk.Local, uk.Reporting)
}

func TestEmptyResultForMissingData(t *testing.T) {
	engine := New(testDataset())

	require.True(t, engine.MultiMarketPnL(2031, "").Empty())
	require.True(t, engine.MultiMarketPnL(2030, "nonsense").Empty())
}

func TestExplicitScenarioOverridesActive(t *testing.T) {
	engine := New(testDataset())

	doubled := engine.MultiMarketPnL(2030, "double")
	require.Equal(t, "double", doubled.Scenario)
	require.Equal(t, 20000.0, doubled.Monthly[0].Markets["uk"].Reporting.Revenue)

	// The active pointer did not move.
	require.Equal(t, "base", engine.CurrentScenario().Key)
	require.Equal(t, 10000.0, engine.MultiMarketPnL(2030, "").Monthly[0].Markets["uk"].Reporting.Revenue)
}

func TestHomeActualsOverrideRevenue(t *testing.T) {
	data := testDataset()
	data.Actuals = map[int]map[string]ActualsRecord{
		2030: {"january": {Patients: 7, Revenue: 9999}},
	}
	engine := New(data)

	jan := engine.MultiMarketPnL(2030, "").Monthly[0]
	uk := jan.Markets["uk"]
	require.Equal(t, 7, uk.Patients)
	require.Equal(t, 9999.0, uk.Revenue.Assessment)
	require.Equal(t, 9999.0, uk.Revenue.Channels["a"])
	// No verified costs on the record: COGS stays volume-derived.
	require.Equal(t, 6000.0, uk.Costs.Total)

	// The other market is untouched by home actuals.
	require.Equal(t, 8000.0, jan.Markets["us"].Reporting.Revenue)
}

func TestPartialActualsFallThroughToPlan(t *testing.T) {
	data := testDataset()
	data.Actuals = map[int]map[string]ActualsRecord{
		2030: {"january": {Patients: 3, Revenue: 2500, Partial: true}},
	}
	engine := New(data)

	uk := engine.MultiMarketPnL(2030, "").Monthly[0].Markets["uk"]
	require.Equal(t, 10, uk.Patients)
	require.Equal(t, 10000.0, uk.Revenue.Assessment)
}

func TestSubscriptionRevenueNotOverriddenByActuals(t *testing.T) {
	data := testDataset()
	data.Markets[0].Subscription = &SubscriptionPlan{
		Price:      750,
		UnitCost:   230,
		UptakeRate: 0.5,
		Pipeline:   map[int]RenewalPipeline{2030: {"january": 40}},
	}
	data.Actuals = map[int]map[string]ActualsRecord{
		2030: {"january": {Patients: 7, Revenue: 9999}},
	}
	engine := New(data)

	uk := engine.MultiMarketPnL(2030, "").Monthly[0].Markets["uk"]
	require.Equal(t, 15000.0, uk.Revenue.Subscription)
	require.Equal(t, 24999.0, uk.Revenue.Total)
	require.Equal(t, 4600.0, uk.Costs.Subscription)
}

func TestVerifiedCostsUsedVerbatim(t *testing.T) {
	data := testDataset()
	data.Actuals = map[int]map[string]ActualsRecord{
		2030: {"january": {
			Patients: 7,
			Revenue:  9999,
			Costs:    &ActualCosts{Clinical: 3100, TechAdmin: 410, MarketingCAC: 950, SubscriptionCOGS: 120},
		}},
	}
	engine := New(data)

	uk := engine.MultiMarketPnL(2030, "").Monthly[0].Markets["uk"]
	require.Equal(t, 3100.0, uk.Costs.Clinical)
	require.Equal(t, 410.0, uk.Costs.TechAdmin)
	require.Equal(t, 950.0, uk.Costs.Acquisition)
	require.Equal(t, 120.0, uk.Costs.Subscription)
	require.Equal(t, 4580.0, uk.Costs.Total)
}

func TestDefaultDatasetMultiMarket(t *testing.T) {
	engine := New(DefaultDataset())

	for _, year := range []int{2027, 2028} {
		result := engine.MultiMarketPnL(year, "")
		require.False(t, result.Empty(), year)
		require.Len(t, result.ByMarket, 3)
		require.Positive(t, result.Annual.Patients)
		require.Positive(t, result.Annual.Revenue)

		for _, m := range result.Monthly {
			require.Equal(t, m.Revenue-m.COGS, m.GrossProfit, m.Month)
			require.Equal(t, m.EBITDA-m.Depreciation-m.Tax, m.NetIncome, m.Month)
			for code, detail := range m.Markets {
				require.Equal(t, math.Round(detail.Reporting.Revenue), detail.Reporting.Revenue, code)
			}
		}
	}
}

package model

import (
	"fmt"
	"math"
)

// MultiMarketPnL produces the consolidated monthly and annual P&L for a
// year across every configured market, in the reporting currency, with
// full per-market local-currency drill-down.
//
// An explicit scenario overrides the active pointer. A year/scenario
// combination with no configured data returns an empty Result; callers
// render "no data" instead of handling an error.
func (e *Engine) MultiMarketPnL(year int, scenario string) Result {
	key, sc := e.resolveScenario(scenario)
	result := Result{
		Year:     year,
		Scenario: key,
		ByMarket: make(map[string]MarketAnnual, len(e.data.Markets)),
	}
	if !sc.hasYear(year) {
		result.ByMarket = map[string]MarketAnnual{}
		return result
	}

	home := e.data.HomeMarket().Code
	result.Monthly = make([]MonthlyPnL, 0, len(MonthKeys))

	for _, month := range MonthKeys {
		row := MonthlyPnL{
			Month:    fmt.Sprintf("%s %d", MonthNames[month], year),
			MonthKey: month,
			Markets:  make(map[string]MarketDetail, len(e.data.Markets)),
		}

		var depreciation float64
		for _, market := range e.data.Markets {
			volumes := sc.marketVolumes(year, market.Code)[month]
			var record *ActualsRecord
			if market.Code == home {
				record = e.data.actualsFor(year, month)
			}
			detail := e.marketMonth(market, year, month, ResolveBasis(volumes, record))
			row.Markets[market.Code] = detail

			row.Patients += detail.Patients
			row.Revenue += detail.Reporting.Revenue
			row.COGS += detail.Reporting.COGS
			row.Opex += detail.Reporting.Opex
			depreciation += detail.Reporting.Depreciation
			row.Tax += detail.Reporting.Tax
		}

		// Consolidated derived lines come from consolidated components,
		// not from summing per-market derived lines, so the statement
		// identities hold exactly after conversion rounding.
		row.GrossProfit = row.Revenue - row.COGS
		row.GrossMargin = safeMargin(row.GrossProfit, row.Revenue)
		row.EBITDA = row.GrossProfit - row.Opex
		row.EBITDAMargin = safeMargin(row.EBITDA, row.Revenue)
		row.Depreciation = depreciation
		row.NetIncome = row.EBITDA - row.Depreciation - row.Tax

		result.Monthly = append(result.Monthly, row)
	}

	result.Annual = rollUpAnnual(year, result.Monthly)
	for _, market := range e.data.Markets {
		result.ByMarket[market.Code] = rollUpMarket(market, result.Monthly)
	}
	return result
}

// marketMonth runs one market through the monthly pipeline: resolve the
// basis, compute local revenue/COGS, apply the opex schedule and the
// market tax and depreciation constants, then convert into the
// reporting currency.
func (e *Engine) marketMonth(market MarketConfig, year int, month string, basis MonthBasis) MarketDetail {
	calc := NewCalculator(market)

	revenue := calc.Revenue(basis.Volumes, year, month)
	patients := calc.Patients(basis.Volumes)

	if basis.Kind == BasisActual {
		// Assessment revenue and patient count come from the closed
		// books; the channel split is back-allocated from the planned
		// mix for reporting. Subscription revenue stays pipeline-driven
		// in actual months because subscriptions live in a separate
		// ledger.
		revenue.Channels = AllocateActual(basis.Actual.Revenue, basis.Volumes, market.Channels)
		revenue.Assessment = basis.Actual.Revenue
		revenue.Total = revenue.Assessment + revenue.Subscription
		patients = basis.Actual.Patients
	}

	var costs CostBreakdown
	if basis.Kind == BasisActual && basis.Actual.Costs != nil {
		verified := basis.Actual.Costs
		costs = CostBreakdown{
			Clinical:     verified.Clinical,
			TechAdmin:    verified.TechAdmin,
			Acquisition:  verified.MarketingCAC,
			Subscription: verified.SubscriptionCOGS,
			Total:        verified.Total(),
		}
	} else {
		costs = calc.Costs(basis.Volumes, revenue.SubscriptionCount)
	}

	opex := e.opexFor(market, year, month)
	local := PnLFigures{
		Revenue:      revenue.Total,
		COGS:         costs.Total,
		GrossProfit:  revenue.Total - costs.Total,
		Opex:         opex,
		Depreciation: market.Depreciation,
	}
	local.EBITDA = local.GrossProfit - local.Opex
	pretax := local.EBITDA - local.Depreciation
	local.Tax = math.Max(0, pretax*market.TaxRate)
	local.NetIncome = pretax - local.Tax

	return MarketDetail{
		Code:      market.Code,
		Currency:  market.Currency,
		Patients:  patients,
		Volumes:   basis.Volumes,
		Revenue:   revenue,
		Costs:     costs,
		Local:     local,
		Reporting: e.convertFigures(local, market.Currency),
	}
}

// opexFor looks up a market's scheduled monthly opex. Absent entries
// default to zero; expansion markets carry no opex before launch.
func (e *Engine) opexFor(market MarketConfig, year int, month string) float64 {
	schedule, ok := e.data.Opex[market.Code]
	if !ok {
		return 0
	}
	return schedule.Lookup(year, month, 0)
}

// convertFigures converts every statement line into the reporting
// currency. Each line rounds independently at conversion time so a
// stored figure is the figure a consumer displays.
func (e *Engine) convertFigures(local PnLFigures, currency string) PnLFigures {
	if currency == e.data.ReportingCurrency {
		return local
	}
	conv := func(v float64) float64 { return e.converter.Convert(v, currency) }
	return PnLFigures{
		Revenue:      conv(local.Revenue),
		COGS:         conv(local.COGS),
		GrossProfit:  conv(local.GrossProfit),
		Opex:         conv(local.Opex),
		EBITDA:       conv(local.EBITDA),
		Depreciation: conv(local.Depreciation),
		Tax:          conv(local.Tax),
		NetIncome:    conv(local.NetIncome),
	}
}

// rollUpAnnual sums every additive field across the twelve monthly
// records and recomputes margins from the annual totals.
func rollUpAnnual(year int, monthly []MonthlyPnL) AnnualPnL {
	annual := AnnualPnL{Label: fmt.Sprintf("%d ANNUAL TOTAL", year)}
	for _, m := range monthly {
		annual.Patients += m.Patients
		annual.Revenue += m.Revenue
		annual.COGS += m.COGS
		annual.GrossProfit += m.GrossProfit
		annual.Opex += m.Opex
		annual.EBITDA += m.EBITDA
		annual.Depreciation += m.Depreciation
		annual.Tax += m.Tax
		annual.NetIncome += m.NetIncome
	}
	annual.GrossMargin = safeMargin(annual.GrossProfit, annual.Revenue)
	annual.EBITDAMargin = safeMargin(annual.EBITDA, annual.Revenue)
	return annual
}

// rollUpMarket sums one market's twelve detail records in both
// currencies for market-comparison reporting.
func rollUpMarket(market MarketConfig, monthly []MonthlyPnL) MarketAnnual {
	annual := MarketAnnual{Code: market.Code, Currency: market.Currency}
	for _, m := range monthly {
		detail, ok := m.Markets[market.Code]
		if !ok {
			continue
		}
		annual.Patients += detail.Patients
		annual.Local.add(detail.Local)
		annual.Reporting.add(detail.Reporting)
	}
	return annual
}

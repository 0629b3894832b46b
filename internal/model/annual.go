package model

import (
	"fmt"
	"math"
	"sort"
)

// HomeMonthPnL is one month of the home-market-only year: full channel
// and cost-category breakdowns down to net income, in the reporting
// currency.
type HomeMonthPnL struct {
	Month    string
	MonthKey string
	IsActual bool
	Patients int

	ChannelRevenue      map[string]float64
	AssessmentRevenue   float64
	SubscriptionRevenue float64
	TotalRevenue        float64

	Clinical         float64
	TechAdmin        float64
	Acquisition      float64
	SubscriptionCOGS float64
	TotalCOGS        float64

	GrossProfit  float64
	GrossMargin  float64
	Opex         float64
	EBITDA       float64
	EBITDAMargin float64
	Depreciation float64
	Tax          float64
	NetIncome    float64
}

// HomeYearPnL is the home-market annual projection: twelve monthly
// statements plus the annual roll-up.
type HomeYearPnL struct {
	Year     int
	Scenario string
	Monthly  []HomeMonthPnL
	Annual   AnnualPnL
}

// Empty reports whether the year/scenario had no home-market data.
func (p HomeYearPnL) Empty() bool {
	return len(p.Monthly) == 0
}

// HomeYearStatement builds the single-market P&L for the home-market
// year. Months with final actuals take revenue, patient count and any
// verified costs from the closed books; partial months fall through to
// the planned computation.
func (e *Engine) HomeYearStatement(year int, scenario string) HomeYearPnL {
	key, sc := e.resolveScenario(scenario)
	out := HomeYearPnL{Year: year, Scenario: key}

	market := e.data.HomeMarket()
	volumes := sc.marketVolumes(year, market.Code)
	if len(volumes) == 0 {
		return out
	}
	calc := NewCalculator(market)
	schedule := e.data.Opex[market.Code]

	out.Monthly = make([]HomeMonthPnL, 0, len(MonthKeys))
	for _, month := range MonthKeys {
		basis := ResolveBasis(volumes[month], e.data.actualsFor(year, month))
		revenue := calc.Revenue(basis.Volumes, year, month)
		patients := calc.Patients(basis.Volumes)

		if basis.Kind == BasisActual {
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

		row := HomeMonthPnL{
			Month:               fmt.Sprintf("%s %d", MonthNames[month], year),
			MonthKey:            month,
			IsActual:            basis.Kind == BasisActual,
			Patients:            patients,
			ChannelRevenue:      revenue.Channels,
			AssessmentRevenue:   revenue.Assessment,
			SubscriptionRevenue: revenue.Subscription,
			TotalRevenue:        revenue.Total,
			Clinical:            costs.Clinical,
			TechAdmin:           costs.TechAdmin,
			Acquisition:         costs.Acquisition,
			SubscriptionCOGS:    costs.Subscription,
			TotalCOGS:           costs.Total,
			Opex:                schedule.Lookup(year, month, e.data.HomeOpexDefault),
			Depreciation:        market.Depreciation,
		}
		row.GrossProfit = row.TotalRevenue - row.TotalCOGS
		row.GrossMargin = safeMargin(row.GrossProfit, row.TotalRevenue)
		row.EBITDA = row.GrossProfit - row.Opex
		row.EBITDAMargin = safeMargin(row.EBITDA, row.TotalRevenue)
		pretax := row.EBITDA - row.Depreciation
		row.Tax = math.Max(0, pretax*market.TaxRate)
		row.NetIncome = pretax - row.Tax

		out.Monthly = append(out.Monthly, row)
	}

	annual := AnnualPnL{Label: fmt.Sprintf("%d ANNUAL TOTAL", year)}
	for _, m := range out.Monthly {
		annual.Patients += m.Patients
		annual.Revenue += m.TotalRevenue
		annual.COGS += m.TotalCOGS
		annual.GrossProfit += m.GrossProfit
		annual.Opex += m.Opex
		annual.EBITDA += m.EBITDA
		annual.Depreciation += m.Depreciation
		annual.Tax += m.Tax
		annual.NetIncome += m.NetIncome
	}
	annual.GrossMargin = safeMargin(annual.GrossProfit, annual.Revenue)
	annual.EBITDAMargin = safeMargin(annual.EBITDA, annual.Revenue)
	out.Annual = annual
	return out
}

// ProjectionRow is the legacy projection view: volumes and top-line
// revenue down to gross margin only, for consumers that predate the
// full statement.
type ProjectionRow struct {
	Month        string
	MonthKey     string
	Volumes      ServiceVolumes
	Patients     int
	Assessment   float64
	Subscription float64
	Total        float64
	GrossProfit  float64
	GrossMargin  float64
	IsActual     bool
	IsTotal      bool
}

// Projections builds the backward-compatible home-market projection
// table for a year, ending with a total row. Gross profit stops at
// COGS; no opex, EBITDA or tax.
func (e *Engine) Projections(year int, scenario string) []ProjectionRow {
	statement := e.HomeYearStatement(year, scenario)
	if statement.Empty() {
		return nil
	}
	rows := make([]ProjectionRow, 0, len(statement.Monthly)+1)
	total := ProjectionRow{
		Month:   fmt.Sprintf("TOTAL YEAR (%d)", year),
		IsTotal: true,
		Volumes: ServiceVolumes{},
	}
	_, sc := e.resolveScenario(scenario)
	volumes := sc.marketVolumes(year, e.data.HomeMarket().Code)

	for _, m := range statement.Monthly {
		row := ProjectionRow{
			Month:        m.Month,
			MonthKey:     m.MonthKey,
			Volumes:      volumes[m.MonthKey],
			Patients:     m.Patients,
			Assessment:   m.AssessmentRevenue,
			Subscription: m.SubscriptionRevenue,
			Total:        m.TotalRevenue,
			GrossProfit:  m.GrossProfit,
			GrossMargin:  m.GrossMargin,
			IsActual:     m.IsActual,
		}
		rows = append(rows, row)

		total.Patients += row.Patients
		total.Assessment += row.Assessment
		total.Subscription += row.Subscription
		total.Total += row.Total
		total.GrossProfit += row.GrossProfit
		for ch, n := range row.Volumes {
			total.Volumes[ch] += n
		}
	}
	total.GrossMargin = safeMargin(total.GrossProfit, total.Total)
	return append(rows, total)
}

// PerformanceRow is one line of the foundation-year table: closed
// months alongside projected ones, with month-over-month growth.
type PerformanceRow struct {
	Month     string
	Status    string
	Patients  int
	Revenue   float64
	MoMGrowth float64
	HasGrowth bool
	Notes     string
	IsTotal   bool
}

// Performance row statuses.
const (
	StatusActual    = "ACTUAL"
	StatusProjected = "PROJECTED"
	StatusCombined  = "COMBINED"
)

// FoundationYear holds the launch-year trading data: actuals for the
// months already closed and volume projections for the remainder.
type FoundationYear struct {
	Year        int
	Actuals     map[string]ActualsRecord
	Projections map[string]ServiceVolumes
	Notes       map[string]string
}

// FoundationPerformance renders the launch-year month-by-month view:
// actual months first, then projected months priced through the home
// calculator, then a combined total row.
func (e *Engine) FoundationPerformance() []PerformanceRow {
	foundation := e.data.Foundation
	calc := NewCalculator(e.data.HomeMarket())

	rows := make([]PerformanceRow, 0, len(MonthKeys)+1)
	var prevRevenue float64
	appendRow := func(month, status string, patients int, revenue float64) {
		row := PerformanceRow{
			Month:    fmt.Sprintf("%s %d", MonthNames[month], foundation.Year),
			Status:   status,
			Patients: patients,
			Revenue:  revenue,
			Notes:    foundation.Notes[month],
		}
		if len(rows) > 0 && prevRevenue != 0 {
			row.MoMGrowth = (revenue - prevRevenue) / prevRevenue
			row.HasGrowth = true
		}
		prevRevenue = revenue
		rows = append(rows, row)
	}

	for _, month := range MonthKeys {
		if rec, ok := foundation.Actuals[month]; ok {
			appendRow(month, StatusActual, rec.Patients, rec.Revenue)
			continue
		}
		if volumes, ok := foundation.Projections[month]; ok {
			revenue := calc.Revenue(volumes, foundation.Year, month)
			appendRow(month, StatusProjected, volumes.Total(), revenue.Assessment)
		}
	}

	total := PerformanceRow{
		Month:   fmt.Sprintf("%d TOTAL", foundation.Year),
		Status:  StatusCombined,
		IsTotal: true,
	}
	for _, row := range rows {
		total.Patients += row.Patients
		total.Revenue += row.Revenue
	}
	return append(rows, total)
}

// KPIMetrics summarises the home-market year for the headline cards.
type KPIMetrics struct {
	YearOneRevenue       float64
	BlendedGrossMargin   float64
	TotalPatients        int
	AvgRevenuePerPatient float64
}

// KPIMetrics computes headline metrics from the home-year projections
// under the given (or active) scenario.
func (e *Engine) KPIMetrics(scenario string) KPIMetrics {
	rows := e.Projections(e.data.HomeYear, scenario)
	if len(rows) == 0 {
		return KPIMetrics{}
	}
	total := rows[len(rows)-1]
	metrics := KPIMetrics{
		YearOneRevenue:     total.Total,
		BlendedGrossMargin: total.GrossMargin,
		TotalPatients:      total.Patients,
	}
	if total.Patients > 0 {
		metrics.AvgRevenuePerPatient = math.Round(total.Total / float64(total.Patients))
	}
	return metrics
}

// AnnualSummaryRow compares one planning year in the reporting
// currency.
type AnnualSummaryRow struct {
	Label       string
	Year        int
	Patients    int
	Revenue     float64
	GrossProfit float64
	Opex        float64
	EBITDA      float64
	NetIncome   float64
}

// AnnualSummary lines up every planning year: the home-market year from
// the single-market builder, later years from the multi-market
// aggregator. Years without data under the scenario are skipped.
func (e *Engine) AnnualSummary(scenario string) []AnnualSummaryRow {
	_, sc := e.resolveScenario(scenario)
	if sc == nil {
		return nil
	}
	years := make([]int, 0, len(sc.Volumes))
	for year := range sc.Volumes {
		years = append(years, year)
	}
	sort.Ints(years)

	rows := make([]AnnualSummaryRow, 0, len(years))
	for i, year := range years {
		label := fmt.Sprintf("Year %d (%d)", i+1, year)
		if year == e.data.HomeYear {
			statement := e.HomeYearStatement(year, scenario)
			if statement.Empty() {
				continue
			}
			rows = append(rows, AnnualSummaryRow{
				Label:       label,
				Year:        year,
				Patients:    statement.Annual.Patients,
				Revenue:     statement.Annual.Revenue,
				GrossProfit: statement.Annual.GrossProfit,
				Opex:        statement.Annual.Opex,
				EBITDA:      statement.Annual.EBITDA,
				NetIncome:   statement.Annual.NetIncome,
			})
			continue
		}
		result := e.MultiMarketPnL(year, scenario)
		if result.Empty() {
			continue
		}
		rows = append(rows, AnnualSummaryRow{
			Label:       label,
			Year:        year,
			Patients:    result.Annual.Patients,
			Revenue:     result.Annual.Revenue,
			GrossProfit: result.Annual.GrossProfit,
			Opex:        result.Annual.Opex,
			EBITDA:      result.Annual.EBITDA,
			NetIncome:   result.Annual.NetIncome,
		})
	}
	return rows
}

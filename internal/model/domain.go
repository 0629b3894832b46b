package model

import (
	"github.com/meridian-health/meridian/internal/model/fx"
)

// MonthKeys lists the twelve calendar months in statement order. Every
// monthly table in the dataset is keyed by these strings.
var MonthKeys = []string{
	"january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december",
}

// MonthNames maps each month key to its display form.
var MonthNames = map[string]string{
	"january": "January", "february": "February", "march": "March",
	"april": "April", "may": "May", "june": "June",
	"july": "July", "august": "August", "september": "September",
	"october": "October", "november": "November", "december": "December",
}

// ServiceVolumes holds one month's patient counts per channel for a
// single market. A missing channel counts as zero.
type ServiceVolumes map[string]int

// Get returns the volume for a channel, zero when absent.
func (v ServiceVolumes) Get(channel string) int {
	if v == nil {
		return 0
	}
	return v[channel]
}

// Total sums patient counts across all channels.
func (v ServiceVolumes) Total() int {
	total := 0
	for _, n := range v {
		total += n
	}
	return total
}

// UnitEconomics carries the per-patient revenue and cost components for
// one channel in the market's local currency. Total cost and gross
// profit are derived, never stored, so the components stay the single
// source of truth.
type UnitEconomics struct {
	Revenue         float64
	ClinicalCost    float64
	TechAdminCost   float64
	AcquisitionCost float64
}

// TotalCost is the sum of the three cost components.
func (u UnitEconomics) TotalCost() float64 {
	return u.ClinicalCost + u.TechAdminCost + u.AcquisitionCost
}

// GrossProfit is revenue less total cost.
func (u UnitEconomics) GrossProfit() float64 {
	return u.Revenue - u.TotalCost()
}

// Margin is gross profit over revenue, zero when revenue is zero.
func (u UnitEconomics) Margin() float64 {
	if u.Revenue == 0 {
		return 0
	}
	return u.GrossProfit() / u.Revenue
}

// RenewalPipeline maps a month key to the count of patients eligible to
// convert to the subscription product that month.
type RenewalPipeline map[string]int

// SubscriptionPlan describes a market's recurring product. UptakeRate
// is applied to the eligible pipeline and the result rounded to a whole
// subscriber count; a pipeline that already tracks active subscribers
// uses an uptake of 1.
type SubscriptionPlan struct {
	Price      float64
	UnitCost   float64
	UptakeRate float64
	Pipeline   map[int]RenewalPipeline
}

// MarketConfig parameterises the generic market calculator. One value
// exists per market; the calculation code is shared.
type MarketConfig struct {
	Code         string
	Name         string
	Currency     string
	TaxRate      float64
	Depreciation float64
	Channels     []string
	Economics    map[string]UnitEconomics
	Subscription *SubscriptionPlan
	LaunchYear   int
}

// OpexSchedule maps year then month key to a fixed operating-expense
// amount in the market's local currency. Months before a market's
// launch are simply absent and default to zero.
type OpexSchedule map[int]map[string]float64

// Lookup returns the scheduled opex for a month, or fallback when the
// year or month is absent.
func (s OpexSchedule) Lookup(year int, month string, fallback float64) float64 {
	months, ok := s[year]
	if !ok {
		return fallback
	}
	amount, ok := months[month]
	if !ok {
		return fallback
	}
	return amount
}

// ActualCosts holds bank-statement-verified COGS categories for a
// closed month.
type ActualCosts struct {
	Clinical         float64
	TechAdmin        float64
	MarketingCAC     float64
	SubscriptionCOGS float64
}

// Total sums the verified cost categories.
func (c ActualCosts) Total() float64 {
	return c.Clinical + c.TechAdmin + c.MarketingCAC + c.SubscriptionCOGS
}

// ActualsRecord captures closed-books figures for one historical month.
// A partial record is a mid-month pull and must not override the
// volume-derived projection.
type ActualsRecord struct {
	Patients int
	Revenue  float64
	Partial  bool
	Costs    *ActualCosts
	Note     string
}

// Scenario is a named growth path holding per-year, per-market monthly
// volume assignments.
type Scenario struct {
	Name        string
	Description string
	Volumes     map[int]map[string]map[string]ServiceVolumes
}

// marketVolumes returns the scenario's volume table for one market in
// one year; nil when the combination has no data.
func (s *Scenario) marketVolumes(year int, market string) map[string]ServiceVolumes {
	if s == nil {
		return nil
	}
	markets, ok := s.Volumes[year]
	if !ok {
		return nil
	}
	return markets[market]
}

// hasYear reports whether the scenario carries any data for the year.
func (s *Scenario) hasYear(year int) bool {
	if s == nil {
		return false
	}
	markets, ok := s.Volumes[year]
	return ok && len(markets) > 0
}

// PnLFigures groups the monetary lines of a P&L statement in a single
// currency.
type PnLFigures struct {
	Revenue      float64
	COGS         float64
	GrossProfit  float64
	Opex         float64
	EBITDA       float64
	Depreciation float64
	Tax          float64
	NetIncome    float64
}

// add accumulates another set of figures line by line.
func (f *PnLFigures) add(other PnLFigures) {
	f.Revenue += other.Revenue
	f.COGS += other.COGS
	f.GrossProfit += other.GrossProfit
	f.Opex += other.Opex
	f.EBITDA += other.EBITDA
	f.Depreciation += other.Depreciation
	f.Tax += other.Tax
	f.NetIncome += other.NetIncome
}

// MarketDetail retains the full per-market drill-down for one month:
// the raw breakdowns in local currency plus the same statement in both
// local and reporting currency.
type MarketDetail struct {
	Code      string
	Currency  string
	Patients  int
	Volumes   ServiceVolumes
	Revenue   RevenueBreakdown
	Costs     CostBreakdown
	Local     PnLFigures
	Reporting PnLFigures
}

// MonthlyPnL is the consolidated statement for one month in the
// reporting currency, with per-market detail attached.
type MonthlyPnL struct {
	Month        string
	MonthKey     string
	Patients     int
	Revenue      float64
	COGS         float64
	GrossProfit  float64
	GrossMargin  float64
	Opex         float64
	EBITDA       float64
	EBITDAMargin float64
	Depreciation float64
	Tax          float64
	NetIncome    float64
	Markets      map[string]MarketDetail
}

// AnnualPnL is the element-wise sum of twelve monthly records with
// margins recomputed from the annual numerator and denominator.
type AnnualPnL struct {
	Label        string
	Patients     int
	Revenue      float64
	COGS         float64
	GrossProfit  float64
	GrossMargin  float64
	Opex         float64
	EBITDA       float64
	EBITDAMargin float64
	Depreciation float64
	Tax          float64
	NetIncome    float64
}

// MarketAnnual is one market's annual roll-up in both currencies.
type MarketAnnual struct {
	Code      string
	Currency  string
	Patients  int
	Local     PnLFigures
	Reporting PnLFigures
}

// Result is the multi-market aggregator output for one year and
// scenario. A year/scenario combination with no configured data yields
// an empty Result rather than an error; callers must check Empty.
type Result struct {
	Year     int
	Scenario string
	Monthly  []MonthlyPnL
	Annual   AnnualPnL
	ByMarket map[string]MarketAnnual
}

// Empty reports whether the requested year/scenario had no data.
func (r Result) Empty() bool {
	return len(r.Monthly) == 0
}

// safeMargin divides numerator by revenue, returning zero instead of
// NaN or Inf when revenue is zero.
func safeMargin(numerator, revenue float64) float64 {
	if revenue == 0 {
		return 0
	}
	return numerator / revenue
}

// Dataset is the single read-only planning object loaded wholesale at
// process start. The engine never mutates it.
type Dataset struct {
	ReportingCurrency string
	Currencies        fx.Table

	// Markets in consolidation order; the home market comes first and
	// reports in the reporting currency.
	Markets []MarketConfig

	Opex            map[string]OpexSchedule
	HomeOpexDefault float64

	Scenarios       map[string]*Scenario
	DefaultScenario string

	// Actuals holds closed-books records for the home market keyed by
	// year then month.
	Actuals map[int]map[string]ActualsRecord

	// HomeYear is the last home-market-only planning year; later years
	// run through the multi-market aggregator.
	HomeYear int

	Foundation FoundationYear
}

// Market returns the config for a market code, false when unknown.
func (d *Dataset) Market(code string) (MarketConfig, bool) {
	for _, m := range d.Markets {
		if m.Code == code {
			return m, true
		}
	}
	return MarketConfig{}, false
}

// HomeMarket returns the first configured market.
func (d *Dataset) HomeMarket() MarketConfig {
	if len(d.Markets) == 0 {
		return MarketConfig{}
	}
	return d.Markets[0]
}

// actualsFor returns the home-market actuals record for a month, nil
// when none exists.
func (d *Dataset) actualsFor(year int, month string) *ActualsRecord {
	months, ok := d.Actuals[year]
	if !ok {
		return nil
	}
	rec, ok := months[month]
	if !ok {
		return nil
	}
	return &rec
}

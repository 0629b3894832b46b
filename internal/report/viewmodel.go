package report

import (
	"sort"
	"strings"

	"github.com/meridian-health/meridian/internal/model"
)

// ScenarioOption describes a growth scenario for the selector partial.
type ScenarioOption struct {
	Key         string
	Name        string
	Description string
	Active      bool
}

// PnLRow is one rendered line of the consolidated P&L table.
type PnLRow struct {
	Month        string
	Patients     string
	Revenue      string
	COGS         string
	GrossProfit  string
	GrossMargin  string
	Opex         string
	EBITDA       string
	EBITDAMargin string
	Depreciation string
	Tax          string
	NetIncome    string
	Loss         bool
	IsTotal      bool
}

// MarketSummary is one market's annual roll-up card in both currencies.
type MarketSummary struct {
	Code           string
	Name           string
	Currency       string
	Patients       string
	LocalRevenue   string
	LocalNetIncome string
	Revenue        string
	NetIncome      string
}

// PnLViewModel backs the consolidated multi-market P&L page.
type PnLViewModel struct {
	Year     int
	Years    []int
	Scenario ScenarioOption
	Rows     []PnLRow
	ByMarket []MarketSummary
	Empty    bool
}

// ProjectionRow is one rendered line of the home-market projection
// table, with per-channel volume cells aligned to ChannelHeaders.
type ProjectionRow struct {
	Month        string
	Channels     []string
	Patients     string
	Assessment   string
	Subscription string
	Total        string
	GrossProfit  string
	GrossMargin  string
	IsActual     bool
	IsTotal      bool
}

// ProjectionsViewModel backs the home-market projections page.
type ProjectionsViewModel struct {
	Year           int
	Scenario       ScenarioOption
	ChannelHeaders []string
	Rows           []ProjectionRow
	Empty          bool
}

// PerformanceRow is one rendered line of the foundation-year table.
type PerformanceRow struct {
	Month     string
	Status    string
	Patients  string
	Revenue   string
	Growth    string
	HasGrowth bool
	Notes     string
	IsTotal   bool
}

// PerformanceViewModel backs the foundation-year performance page.
type PerformanceViewModel struct {
	Year int
	Rows []PerformanceRow
}

// EconomicsRow is one channel's unit economics in local currency.
type EconomicsRow struct {
	Channel     string
	Revenue     string
	Clinical    string
	TechAdmin   string
	Acquisition string
	TotalCost   string
	GrossProfit string
	Margin      string
}

// SubscriptionSummary describes a market's recurring product.
type SubscriptionSummary struct {
	Price    string
	UnitCost string
	Uptake   string
}

// MarketEconomics groups one market's unit economics table.
type MarketEconomics struct {
	Code         string
	Name         string
	Currency     string
	Rows         []EconomicsRow
	Subscription *SubscriptionSummary
}

// EconomicsViewModel backs the unit economics page.
type EconomicsViewModel struct {
	Markets []MarketEconomics
}

// SummaryRow is one planning year on the annual comparison table.
type SummaryRow struct {
	Label       string
	Patients    string
	Revenue     string
	GrossProfit string
	Opex        string
	EBITDA      string
	NetIncome   string
	Loss        bool
}

// DashboardViewModel backs the landing page.
type DashboardViewModel struct {
	Scenario      ScenarioOption
	Scenarios     []ScenarioOption
	Revenue       string
	GrossMargin   string
	Patients      string
	AvgPerPatient string
	Summary       []SummaryRow
	HomeYear      int
}

// Builder turns engine output into rendered view models. Everything it
// produces is plain strings so the models cache as JSON verbatim.
type Builder struct {
	engine *model.Engine
	format *Formatter
}

// NewBuilder constructs a Builder over the engine.
func NewBuilder(engine *model.Engine) *Builder {
	return &Builder{engine: engine, format: NewFormatter()}
}

func (b *Builder) scenarioOption(key string) ScenarioOption {
	for _, info := range b.engine.Scenarios() {
		if info.Key == key {
			return ScenarioOption{Key: info.Key, Name: info.Name, Description: info.Description, Active: info.Active}
		}
	}
	return ScenarioOption{Key: key}
}

func (b *Builder) scenarioOptions() []ScenarioOption {
	infos := b.engine.Scenarios()
	out := make([]ScenarioOption, 0, len(infos))
	for _, info := range infos {
		out = append(out, ScenarioOption{Key: info.Key, Name: info.Name, Description: info.Description, Active: info.Active})
	}
	return out
}

// planningYears lists the years the scenario covers, sorted.
func (b *Builder) planningYears() []int {
	seen := make(map[int]struct{})
	for _, sc := range b.engine.Dataset().Scenarios {
		for year := range sc.Volumes {
			seen[year] = struct{}{}
		}
	}
	years := make([]int, 0, len(seen))
	for year := range seen {
		years = append(years, year)
	}
	sort.Ints(years)
	return years
}

// BuildPnL renders the consolidated multi-market P&L for one year.
func (b *Builder) BuildPnL(year int, scenario string) PnLViewModel {
	reporting := b.engine.Dataset().ReportingCurrency
	result := b.engine.MultiMarketPnL(year, scenario)
	vm := PnLViewModel{
		Year:     year,
		Years:    b.planningYears(),
		Scenario: b.scenarioOption(result.Scenario),
		Empty:    result.Empty(),
	}
	if vm.Empty {
		return vm
	}

	vm.Rows = make([]PnLRow, 0, len(result.Monthly)+1)
	for _, m := range result.Monthly {
		vm.Rows = append(vm.Rows, PnLRow{
			Month:        m.Month,
			Patients:     b.format.Count(m.Patients),
			Revenue:      b.format.Money(m.Revenue, reporting),
			COGS:         b.format.Money(m.COGS, reporting),
			GrossProfit:  b.format.Money(m.GrossProfit, reporting),
			GrossMargin:  b.format.Percent(m.GrossMargin),
			Opex:         b.format.Money(m.Opex, reporting),
			EBITDA:       b.format.Money(m.EBITDA, reporting),
			EBITDAMargin: b.format.Percent(m.EBITDAMargin),
			Depreciation: b.format.Money(m.Depreciation, reporting),
			Tax:          b.format.Money(m.Tax, reporting),
			NetIncome:    b.format.Money(m.NetIncome, reporting),
			Loss:         m.NetIncome < 0,
		})
	}
	annual := result.Annual
	vm.Rows = append(vm.Rows, PnLRow{
		Month:        annual.Label,
		Patients:     b.format.Count(annual.Patients),
		Revenue:      b.format.Money(annual.Revenue, reporting),
		COGS:         b.format.Money(annual.COGS, reporting),
		GrossProfit:  b.format.Money(annual.GrossProfit, reporting),
		GrossMargin:  b.format.Percent(annual.GrossMargin),
		Opex:         b.format.Money(annual.Opex, reporting),
		EBITDA:       b.format.Money(annual.EBITDA, reporting),
		EBITDAMargin: b.format.Percent(annual.EBITDAMargin),
		Depreciation: b.format.Money(annual.Depreciation, reporting),
		Tax:          b.format.Money(annual.Tax, reporting),
		NetIncome:    b.format.Money(annual.NetIncome, reporting),
		Loss:         annual.NetIncome < 0,
		IsTotal:      true,
	})

	for _, market := range b.engine.Dataset().Markets {
		annual, ok := result.ByMarket[market.Code]
		if !ok {
			continue
		}
		vm.ByMarket = append(vm.ByMarket, MarketSummary{
			Code:           market.Code,
			Name:           market.Name,
			Currency:       market.Currency,
			Patients:       b.format.Count(annual.Patients),
			LocalRevenue:   b.format.Money(annual.Local.Revenue, market.Currency),
			LocalNetIncome: b.format.Money(annual.Local.NetIncome, market.Currency),
			Revenue:        b.format.Money(annual.Reporting.Revenue, reporting),
			NetIncome:      b.format.Money(annual.Reporting.NetIncome, reporting),
		})
	}
	return vm
}

// BuildProjections renders the home-market projection table.
func (b *Builder) BuildProjections(year int, scenario string) ProjectionsViewModel {
	data := b.engine.Dataset()
	home := data.HomeMarket()
	rows := b.engine.Projections(year, scenario)

	key := scenario
	if key == "" {
		key = b.engine.CurrentScenario().Key
	}
	vm := ProjectionsViewModel{
		Year:     year,
		Scenario: b.scenarioOption(key),
		Empty:    len(rows) == 0,
	}
	if vm.Empty {
		return vm
	}

	vm.ChannelHeaders = make([]string, 0, len(home.Channels))
	for _, ch := range home.Channels {
		vm.ChannelHeaders = append(vm.ChannelHeaders, channelLabel(ch))
	}

	vm.Rows = make([]ProjectionRow, 0, len(rows))
	for _, row := range rows {
		cells := make([]string, 0, len(home.Channels))
		for _, ch := range home.Channels {
			cells = append(cells, b.format.Count(row.Volumes.Get(ch)))
		}
		vm.Rows = append(vm.Rows, ProjectionRow{
			Month:        row.Month,
			Channels:     cells,
			Patients:     b.format.Count(row.Patients),
			Assessment:   b.format.Money(row.Assessment, home.Currency),
			Subscription: b.format.Money(row.Subscription, home.Currency),
			Total:        b.format.Money(row.Total, home.Currency),
			GrossProfit:  b.format.Money(row.GrossProfit, home.Currency),
			GrossMargin:  b.format.Percent(row.GrossMargin),
			IsActual:     row.IsActual,
			IsTotal:      row.IsTotal,
		})
	}
	return vm
}

// BuildPerformance renders the foundation-year table.
func (b *Builder) BuildPerformance() PerformanceViewModel {
	data := b.engine.Dataset()
	currency := data.HomeMarket().Currency
	rows := b.engine.FoundationPerformance()

	vm := PerformanceViewModel{Year: data.Foundation.Year}
	vm.Rows = make([]PerformanceRow, 0, len(rows))
	for _, row := range rows {
		rendered := PerformanceRow{
			Month:     row.Month,
			Status:    row.Status,
			Patients:  b.format.Count(row.Patients),
			Revenue:   b.format.Money(row.Revenue, currency),
			HasGrowth: row.HasGrowth,
			Notes:     row.Notes,
			IsTotal:   row.IsTotal,
		}
		if row.HasGrowth {
			rendered.Growth = b.format.Growth(row.MoMGrowth)
		}
		vm.Rows = append(vm.Rows, rendered)
	}
	return vm
}

// BuildEconomics renders the per-market unit economics tables.
func (b *Builder) BuildEconomics() EconomicsViewModel {
	var vm EconomicsViewModel
	for _, market := range b.engine.Dataset().Markets {
		econ := MarketEconomics{Code: market.Code, Name: market.Name, Currency: market.Currency}
		for _, ch := range market.Channels {
			ue := market.Economics[ch]
			econ.Rows = append(econ.Rows, EconomicsRow{
				Channel:     channelLabel(ch),
				Revenue:     b.format.Money(ue.Revenue, market.Currency),
				Clinical:    b.format.Money(ue.ClinicalCost, market.Currency),
				TechAdmin:   b.format.Money(ue.TechAdminCost, market.Currency),
				Acquisition: b.format.Money(ue.AcquisitionCost, market.Currency),
				TotalCost:   b.format.Money(ue.TotalCost(), market.Currency),
				GrossProfit: b.format.Money(ue.GrossProfit(), market.Currency),
				Margin:      b.format.Percent(ue.Margin()),
			})
		}
		if plan := market.Subscription; plan != nil {
			econ.Subscription = &SubscriptionSummary{
				Price:    b.format.Money(plan.Price, market.Currency),
				UnitCost: b.format.Money(plan.UnitCost, market.Currency),
				Uptake:   b.format.Percent(plan.UptakeRate),
			}
		}
		vm.Markets = append(vm.Markets, econ)
	}
	return vm
}

// BuildSummary renders the annual comparison rows for a scenario.
func (b *Builder) BuildSummary(scenario string) []SummaryRow {
	reporting := b.engine.Dataset().ReportingCurrency
	rows := b.engine.AnnualSummary(scenario)
	out := make([]SummaryRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, SummaryRow{
			Label:       row.Label,
			Patients:    b.format.Count(row.Patients),
			Revenue:     b.format.Money(row.Revenue, reporting),
			GrossProfit: b.format.Money(row.GrossProfit, reporting),
			Opex:        b.format.Money(row.Opex, reporting),
			EBITDA:      b.format.Money(row.EBITDA, reporting),
			NetIncome:   b.format.Money(row.NetIncome, reporting),
			Loss:        row.NetIncome < 0,
		})
	}
	return out
}

// BuildDashboard renders the landing page headline view.
func (b *Builder) BuildDashboard(scenario string) DashboardViewModel {
	key := scenario
	if key == "" {
		key = b.engine.CurrentScenario().Key
	}
	metrics := b.engine.KPIMetrics(key)
	home := b.engine.Dataset().HomeMarket()
	return DashboardViewModel{
		Scenario:      b.scenarioOption(key),
		Scenarios:     b.scenarioOptions(),
		Revenue:       b.format.Money(metrics.YearOneRevenue, home.Currency),
		GrossMargin:   b.format.Percent(metrics.BlendedGrossMargin),
		Patients:      b.format.Count(metrics.TotalPatients),
		AvgPerPatient: b.format.Money(metrics.AvgRevenuePerPatient, home.Currency),
		Summary:       b.BuildSummary(key),
		HomeYear:      b.engine.Dataset().HomeYear,
	}
}

var channelWords = map[string]string{
	"b2c":       "B2C",
	"nhs":       "NHS",
	"adhd":      "ADHD",
	"asd":       "ASD",
	"selfpay":   "Self-pay",
	"innetwork": "In-network",
	"oon":       "Out-of-network",
}

// channelLabel turns a channel code into its display form.
func channelLabel(code string) string {
	parts := strings.Split(code, "_")
	for i, part := range parts {
		if part == "" {
			continue
		}
		if word, ok := channelWords[part]; ok {
			parts[i] = word
			continue
		}
		parts[i] = strings.ToUpper(part[:1]) + part[1:]
	}
	return strings.Join(parts, " ")
}

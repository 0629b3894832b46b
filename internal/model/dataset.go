package model

import "github.com/meridian-health/meridian/internal/model/fx"

// Market codes.
const (
	MarketUK = "uk"
	MarketUS = "us"
	MarketIE = "ie"
)

// Scenario keys.
const (
	ScenarioPessimistic = "pessimistic"
	ScenarioRealistic   = "realistic"
	ScenarioOptimistic  = "optimistic"
)

// DefaultDataset returns the full planning dataset. This is the one
// read-only configuration object the engine runs over; edit here to
// move every projection in the data room.
func DefaultDataset() *Dataset {
	return &Dataset{
		ReportingCurrency: "GBP",
		Currencies: fx.Table{
			"USD": 0.80,
			"EUR": 0.85,
		},
		Markets: []MarketConfig{ukMarket(), usMarket(), ieMarket()},
		Opex: map[string]OpexSchedule{
			MarketUK: {
				2026: {
					"january": 82000, "february": 84500, "march": 86000,
					"april": 87500, "may": 88000, "june": 90000,
					"july": 91500, "august": 92000, "september": 93500,
					"october": 94000, "november": 95500, "december": 96000,
				},
				2027: {
					"january": 150000, "february": 154000, "march": 158000,
					"april": 162000, "may": 166000, "june": 170000,
					"july": 176000, "august": 182000, "september": 188000,
					"october": 192000, "november": 196000, "december": 200000,
				},
				2028: {
					"january": 230000, "february": 234000, "march": 238000,
					"april": 242000, "may": 246000, "june": 250000,
					"july": 254000, "august": 258000, "september": 262000,
					"october": 266000, "november": 270000, "december": 274000,
				},
			},
			MarketUS: {
				2027: {
					"january": 40000, "february": 46000, "march": 52000,
					"april": 58000, "may": 64000, "june": 72000,
					"july": 80000, "august": 88000, "september": 96000,
					"october": 104000, "november": 112000, "december": 120000,
				},
				2028: {
					"january": 150000, "february": 155000, "march": 160000,
					"april": 165000, "may": 170000, "june": 175000,
					"july": 180000, "august": 185000, "september": 190000,
					"october": 195000, "november": 200000, "december": 205000,
				},
			},
			MarketIE: {
				2027: {
					"january": 15000, "february": 16000, "march": 17000,
					"april": 18000, "may": 19500, "june": 21000,
					"july": 22500, "august": 24000, "september": 25500,
					"october": 27000, "november": 28500, "december": 30000,
				},
				2028: {
					"january": 35000, "february": 36000, "march": 37000,
					"april": 38000, "may": 39000, "june": 40000,
					"july": 41000, "august": 42000, "september": 43000,
					"october": 44000, "november": 45000, "december": 46000,
				},
			},
		},
		HomeOpexDefault: 90000,
		Scenarios: map[string]*Scenario{
			ScenarioPessimistic: pessimisticScenario(),
			ScenarioRealistic:   realisticScenario(),
			ScenarioOptimistic:  optimisticScenario(),
		},
		DefaultScenario: ScenarioRealistic,
		Actuals: map[int]map[string]ActualsRecord{
			2026: {
				"january": {
					Patients: 310,
					Revenue:  380000,
					Costs: &ActualCosts{
						Clinical:     139500,
						TechAdmin:    19800,
						MarketingCAC: 58000,
					},
				},
				// Mid-month pull; excluded from the statement until the
				// books close.
				"february": {
					Patients: 150,
					Revenue:  180000,
					Partial:  true,
					Note:     "partial month, data pulled 14 Feb",
				},
			},
		},
		HomeYear:   2026,
		Foundation: foundationYear(),
	}
}

func ukMarket() MarketConfig {
	return MarketConfig{
		Code:         MarketUK,
		Name:         "United Kingdom",
		Currency:     "GBP",
		TaxRate:      0.19,
		Depreciation: 2000,
		LaunchYear:   2025,
		Channels:     []string{"b2c_adhd", "b2c_asd", "nhs_adhd", "nhs_asd"},
		Economics: map[string]UnitEconomics{
			"b2c_adhd": {Revenue: 1200, ClinicalCost: 450, TechAdminCost: 60, AcquisitionCost: 200},
			"b2c_asd":  {Revenue: 1750, ClinicalCost: 450, TechAdminCost: 85, AcquisitionCost: 200},
			"nhs_adhd": {Revenue: 1350, ClinicalCost: 450, TechAdminCost: 60, AcquisitionCost: 0},
			"nhs_asd":  {Revenue: 2000, ClinicalCost: 450, TechAdminCost: 85, AcquisitionCost: 0},
		},
		Subscription: &SubscriptionPlan{
			Price:      750,
			UnitCost:   230,
			UptakeRate: 0.5,
			Pipeline: map[int]RenewalPipeline{
				2026: {
					"january": 0, "february": 0, "march": 20, "april": 40,
					"may": 80, "june": 130, "july": 190, "august": 260,
					"september": 340, "october": 420, "november": 500, "december": 580,
				},
				2027: {
					"january": 600, "february": 620, "march": 650, "april": 680,
					"may": 710, "june": 740, "july": 770, "august": 800,
					"september": 830, "october": 855, "november": 880, "december": 900,
				},
				2028: {
					"january": 950, "february": 990, "march": 1030, "april": 1070,
					"may": 1110, "june": 1150, "july": 1190, "august": 1230,
					"september": 1270, "october": 1310, "november": 1360, "december": 1400,
				},
			},
		},
	}
}

func usMarket() MarketConfig {
	return MarketConfig{
		Code:         MarketUS,
		Name:         "United States",
		Currency:     "USD",
		TaxRate:      0.21,
		Depreciation: 1500,
		LaunchYear:   2027,
		Channels: []string{
			"selfpay_adhd", "selfpay_asd",
			"innetwork_adhd", "innetwork_asd",
			"oon_adhd", "oon_asd",
		},
		Economics: map[string]UnitEconomics{
			"selfpay_adhd":   {Revenue: 1500, ClinicalCost: 520, TechAdminCost: 90, AcquisitionCost: 250},
			"selfpay_asd":    {Revenue: 2100, ClinicalCost: 520, TechAdminCost: 110, AcquisitionCost: 250},
			"innetwork_adhd": {Revenue: 950, ClinicalCost: 520, TechAdminCost: 90, AcquisitionCost: 60},
			"innetwork_asd":  {Revenue: 1400, ClinicalCost: 520, TechAdminCost: 110, AcquisitionCost: 60},
			"oon_adhd":       {Revenue: 1250, ClinicalCost: 520, TechAdminCost: 90, AcquisitionCost: 120},
			"oon_asd":        {Revenue: 1800, ClinicalCost: 520, TechAdminCost: 110, AcquisitionCost: 120},
		},
		// The US pipeline tracks active subscribers directly, so uptake
		// is 1 and the unit cost is the monthly service cost.
		Subscription: &SubscriptionPlan{
			Price:      99,
			UnitCost:   39,
			UptakeRate: 1,
			Pipeline: map[int]RenewalPipeline{
				2027: {
					"january": 0, "february": 50, "march": 120, "april": 200,
					"may": 290, "june": 390, "july": 500, "august": 620,
					"september": 750, "october": 890, "november": 1040, "december": 1200,
				},
				2028: {
					"january": 1300, "february": 1410, "march": 1520, "april": 1630,
					"may": 1740, "june": 1850, "july": 1970, "august": 2090,
					"september": 2210, "october": 2340, "november": 2470, "december": 2600,
				},
			},
		},
	}
}

func ieMarket() MarketConfig {
	return MarketConfig{
		Code:         MarketIE,
		Name:         "Ireland",
		Currency:     "EUR",
		TaxRate:      0.125,
		Depreciation: 500,
		LaunchYear:   2027,
		Channels:     []string{"b2c_adhd", "b2c_asd"},
		Economics: map[string]UnitEconomics{
			"b2c_adhd": {Revenue: 1100, ClinicalCost: 420, TechAdminCost: 60, AcquisitionCost: 180},
			"b2c_asd":  {Revenue: 1600, ClinicalCost: 420, TechAdminCost: 80, AcquisitionCost: 180},
		},
	}
}

func foundationYear() FoundationYear {
	return FoundationYear{
		Year: 2025,
		Actuals: map[string]ActualsRecord{
			"may":    {Patients: 4, Revenue: 3565},
			"june":   {Patients: 10, Revenue: 11040},
			"july":   {Patients: 28, Revenue: 28965},
			"august": {Patients: 50, Revenue: 80000},
		},
		Projections: map[string]ServiceVolumes{
			"september": {"b2c_adhd": 125, "b2c_asd": 3, "nhs_adhd": 2, "nhs_asd": 0},
			"october":   {"b2c_adhd": 165, "b2c_asd": 4, "nhs_adhd": 5, "nhs_asd": 1},
			"november":  {"b2c_adhd": 215, "b2c_asd": 6, "nhs_adhd": 8, "nhs_asd": 1},
			"december":  {"b2c_adhd": 280, "b2c_asd": 8, "nhs_adhd": 10, "nhs_asd": 2},
		},
		Notes: map[string]string{
			"may":       "Strong foundation month",
			"june":      "Rapid scaling begins",
			"july":      "Momentum building",
			"august":    "Conservative growth",
			"september": "Steady expansion",
			"october":   "Market maturation",
			"november":  "Pre-NHS preparation",
			"december":  "NHS launch (10 patients @ £1,350)",
		},
	}
}

func realisticScenario() *Scenario {
	return &Scenario{
		Name:        "Realistic",
		Description: "Growing from 300 to 1,500 patients/month by mid-2026, US and Ireland launches in 2027",
		Volumes: map[int]map[string]map[string]ServiceVolumes{
			2026: {
				MarketUK: {
					"january":   {"b2c_adhd": 290, "b2c_asd": 10, "nhs_adhd": 25, "nhs_asd": 5},
					"february":  {"b2c_adhd": 380, "b2c_asd": 25, "nhs_adhd": 80, "nhs_asd": 20},
					"march":     {"b2c_adhd": 360, "b2c_asd": 35, "nhs_adhd": 140, "nhs_asd": 35},
					"april":     {"b2c_adhd": 350, "b2c_asd": 50, "nhs_adhd": 250, "nhs_asd": 63},
					"may":       {"b2c_adhd": 340, "b2c_asd": 60, "nhs_adhd": 400, "nhs_asd": 100},
					"june":      {"b2c_adhd": 330, "b2c_asd": 70, "nhs_adhd": 560, "nhs_asd": 140},
					"july":      {"b2c_adhd": 320, "b2c_asd": 80, "nhs_adhd": 700, "nhs_asd": 175},
					"august":    {"b2c_adhd": 340, "b2c_asd": 85, "nhs_adhd": 770, "nhs_asd": 193},
					"september": {"b2c_adhd": 360, "b2c_asd": 90, "nhs_adhd": 840, "nhs_asd": 210},
					"october":   {"b2c_adhd": 360, "b2c_asd": 90, "nhs_adhd": 840, "nhs_asd": 210},
					"november":  {"b2c_adhd": 360, "b2c_asd": 90, "nhs_adhd": 840, "nhs_asd": 210},
					"december":  {"b2c_adhd": 360, "b2c_asd": 90, "nhs_adhd": 840, "nhs_asd": 210},
				},
			},
			2027: {
				MarketUK: {
					"january":   {"b2c_adhd": 400, "b2c_asd": 200, "nhs_adhd": 900, "nhs_asd": 450},
					"february":  {"b2c_adhd": 450, "b2c_asd": 210, "nhs_adhd": 1000, "nhs_asd": 475},
					"march":     {"b2c_adhd": 500, "b2c_asd": 220, "nhs_adhd": 1000, "nhs_asd": 500},
					"april":     {"b2c_adhd": 500, "b2c_asd": 230, "nhs_adhd": 1000, "nhs_asd": 525},
					"may":       {"b2c_adhd": 500, "b2c_asd": 240, "nhs_adhd": 1000, "nhs_asd": 550},
					"june":      {"b2c_adhd": 500, "b2c_asd": 250, "nhs_adhd": 1000, "nhs_asd": 575},
					"july":      {"b2c_adhd": 500, "b2c_asd": 260, "nhs_adhd": 1000, "nhs_asd": 600},
					"august":    {"b2c_adhd": 500, "b2c_asd": 270, "nhs_adhd": 1000, "nhs_asd": 625},
					"september": {"b2c_adhd": 500, "b2c_asd": 280, "nhs_adhd": 1000, "nhs_asd": 650},
					"october":   {"b2c_adhd": 500, "b2c_asd": 290, "nhs_adhd": 1000, "nhs_asd": 675},
					"november":  {"b2c_adhd": 500, "b2c_asd": 300, "nhs_adhd": 1000, "nhs_asd": 700},
					"december":  {"b2c_adhd": 500, "b2c_asd": 310, "nhs_adhd": 1000, "nhs_asd": 725},
				},
				MarketUS: {
					"january":   {"selfpay_adhd": 40, "selfpay_asd": 10, "innetwork_adhd": 0, "innetwork_asd": 0, "oon_adhd": 10, "oon_asd": 5},
					"february":  {"selfpay_adhd": 60, "selfpay_asd": 15, "innetwork_adhd": 20, "innetwork_asd": 5, "oon_adhd": 15, "oon_asd": 5},
					"march":     {"selfpay_adhd": 85, "selfpay_asd": 20, "innetwork_adhd": 40, "innetwork_asd": 10, "oon_adhd": 20, "oon_asd": 10},
					"april":     {"selfpay_adhd": 110, "selfpay_asd": 25, "innetwork_adhd": 70, "innetwork_asd": 18, "oon_adhd": 25, "oon_asd": 10},
					"may":       {"selfpay_adhd": 135, "selfpay_asd": 30, "innetwork_adhd": 110, "innetwork_asd": 28, "oon_adhd": 30, "oon_asd": 15},
					"june":      {"selfpay_adhd": 160, "selfpay_asd": 40, "innetwork_adhd": 160, "innetwork_asd": 40, "oon_adhd": 35, "oon_asd": 15},
					"july":      {"selfpay_adhd": 185, "selfpay_asd": 45, "innetwork_adhd": 220, "innetwork_asd": 55, "oon_adhd": 40, "oon_asd": 20},
					"august":    {"selfpay_adhd": 210, "selfpay_asd": 55, "innetwork_adhd": 290, "innetwork_asd": 73, "oon_adhd": 45, "oon_asd": 20},
					"september": {"selfpay_adhd": 235, "selfpay_asd": 60, "innetwork_adhd": 370, "innetwork_asd": 93, "oon_adhd": 50, "oon_asd": 25},
					"october":   {"selfpay_adhd": 255, "selfpay_asd": 65, "innetwork_adhd": 450, "innetwork_asd": 113, "oon_adhd": 55, "oon_asd": 25},
					"november":  {"selfpay_adhd": 275, "selfpay_asd": 70, "innetwork_adhd": 530, "innetwork_asd": 133, "oon_adhd": 60, "oon_asd": 30},
					"december":  {"selfpay_adhd": 290, "selfpay_asd": 75, "innetwork_adhd": 600, "innetwork_asd": 150, "oon_adhd": 65, "oon_asd": 30},
				},
				MarketIE: {
					"january":   {"b2c_adhd": 20, "b2c_asd": 5},
					"february":  {"b2c_adhd": 30, "b2c_asd": 8},
					"march":     {"b2c_adhd": 40, "b2c_asd": 10},
					"april":     {"b2c_adhd": 55, "b2c_asd": 14},
					"may":       {"b2c_adhd": 70, "b2c_asd": 18},
					"june":      {"b2c_adhd": 85, "b2c_asd": 21},
					"july":      {"b2c_adhd": 100, "b2c_asd": 25},
					"august":    {"b2c_adhd": 115, "b2c_asd": 29},
					"september": {"b2c_adhd": 130, "b2c_asd": 33},
					"october":   {"b2c_adhd": 145, "b2c_asd": 36},
					"november":  {"b2c_adhd": 160, "b2c_asd": 40},
					"december":  {"b2c_adhd": 175, "b2c_asd": 44},
				},
			},
			2028: {
				MarketUK: {
					"january":   {"b2c_adhd": 600, "b2c_asd": 350, "nhs_adhd": 1200, "nhs_asd": 800},
					"february":  {"b2c_adhd": 650, "b2c_asd": 375, "nhs_adhd": 1300, "nhs_asd": 850},
					"march":     {"b2c_adhd": 700, "b2c_asd": 400, "nhs_adhd": 1400, "nhs_asd": 900},
					"april":     {"b2c_adhd": 750, "b2c_asd": 425, "nhs_adhd": 1500, "nhs_asd": 950},
					"may":       {"b2c_adhd": 800, "b2c_asd": 450, "nhs_adhd": 1600, "nhs_asd": 1000},
					"june":      {"b2c_adhd": 800, "b2c_asd": 475, "nhs_adhd": 1600, "nhs_asd": 1050},
					"july":      {"b2c_adhd": 800, "b2c_asd": 500, "nhs_adhd": 1600, "nhs_asd": 1100},
					"august":    {"b2c_adhd": 800, "b2c_asd": 525, "nhs_adhd": 1600, "nhs_asd": 1150},
					"september": {"b2c_adhd": 800, "b2c_asd": 550, "nhs_adhd": 1600, "nhs_asd": 1200},
					"october":   {"b2c_adhd": 800, "b2c_asd": 575, "nhs_adhd": 1600, "nhs_asd": 1250},
					"november":  {"b2c_adhd": 800, "b2c_asd": 600, "nhs_adhd": 1600, "nhs_asd": 1300},
					"december":  {"b2c_adhd": 800, "b2c_asd": 625, "nhs_adhd": 1600, "nhs_asd": 1350},
				},
				MarketUS: {
					"january":   {"selfpay_adhd": 310, "selfpay_asd": 80, "innetwork_adhd": 650, "innetwork_asd": 165, "oon_adhd": 70, "oon_asd": 32},
					"february":  {"selfpay_adhd": 330, "selfpay_asd": 85, "innetwork_adhd": 700, "innetwork_asd": 178, "oon_adhd": 74, "oon_asd": 34},
					"march":     {"selfpay_adhd": 350, "selfpay_asd": 90, "innetwork_adhd": 750, "innetwork_asd": 190, "oon_adhd": 78, "oon_asd": 36},
					"april":     {"selfpay_adhd": 370, "selfpay_asd": 95, "innetwork_adhd": 800, "innetwork_asd": 203, "oon_adhd": 82, "oon_asd": 38},
					"may":       {"selfpay_adhd": 390, "selfpay_asd": 100, "innetwork_adhd": 850, "innetwork_asd": 215, "oon_adhd": 86, "oon_asd": 40},
					"june":      {"selfpay_adhd": 410, "selfpay_asd": 105, "innetwork_adhd": 900, "innetwork_asd": 228, "oon_adhd": 90, "oon_asd": 42},
					"july":      {"selfpay_adhd": 430, "selfpay_asd": 110, "innetwork_adhd": 950, "innetwork_asd": 240, "oon_adhd": 94, "oon_asd": 44},
					"august":    {"selfpay_adhd": 450, "selfpay_asd": 115, "innetwork_adhd": 1000, "innetwork_asd": 253, "oon_adhd": 98, "oon_asd": 46},
					"september": {"selfpay_adhd": 470, "selfpay_asd": 120, "innetwork_adhd": 1050, "innetwork_asd": 265, "oon_adhd": 102, "oon_asd": 48},
					"october":   {"selfpay_adhd": 490, "selfpay_asd": 125, "innetwork_adhd": 1100, "innetwork_asd": 278, "oon_adhd": 106, "oon_asd": 50},
					"november":  {"selfpay_adhd": 510, "selfpay_asd": 130, "innetwork_adhd": 1150, "innetwork_asd": 290, "oon_adhd": 110, "oon_asd": 52},
					"december":  {"selfpay_adhd": 530, "selfpay_asd": 135, "innetwork_adhd": 1200, "innetwork_asd": 303, "oon_adhd": 114, "oon_asd": 54},
				},
				MarketIE: {
					"january":   {"b2c_adhd": 190, "b2c_asd": 48},
					"february":  {"b2c_adhd": 205, "b2c_asd": 51},
					"march":     {"b2c_adhd": 220, "b2c_asd": 55},
					"april":     {"b2c_adhd": 235, "b2c_asd": 59},
					"may":       {"b2c_adhd": 250, "b2c_asd": 63},
					"june":      {"b2c_adhd": 265, "b2c_asd": 66},
					"july":      {"b2c_adhd": 280, "b2c_asd": 70},
					"august":    {"b2c_adhd": 295, "b2c_asd": 74},
					"september": {"b2c_adhd": 310, "b2c_asd": 78},
					"october":   {"b2c_adhd": 325, "b2c_asd": 81},
					"november":  {"b2c_adhd": 340, "b2c_asd": 85},
					"december":  {"b2c_adhd": 355, "b2c_asd": 89},
				},
			},
		},
	}
}

func pessimisticScenario() *Scenario {
	return &Scenario{
		Name:        "Pessimistic",
		Description: "Conservative growth to 750 patients/month in 2026, delayed expansion ramps",
		Volumes: map[int]map[string]map[string]ServiceVolumes{
			2026: {
				MarketUK: {
					"january":   {"b2c_adhd": 280, "b2c_asd": 8, "nhs_adhd": 15, "nhs_asd": 2},
					"february":  {"b2c_adhd": 390, "b2c_asd": 15, "nhs_adhd": 40, "nhs_asd": 10},
					"march":     {"b2c_adhd": 380, "b2c_asd": 20, "nhs_adhd": 70, "nhs_asd": 18},
					"april":     {"b2c_adhd": 350, "b2c_asd": 25, "nhs_adhd": 120, "nhs_asd": 30},
					"may":       {"b2c_adhd": 320, "b2c_asd": 30, "nhs_adhd": 200, "nhs_asd": 50},
					"june":      {"b2c_adhd": 300, "b2c_asd": 35, "nhs_adhd": 280, "nhs_asd": 70},
					"july":      {"b2c_adhd": 280, "b2c_asd": 40, "nhs_adhd": 350, "nhs_asd": 88},
					"august":    {"b2c_adhd": 260, "b2c_asd": 43, "nhs_adhd": 385, "nhs_asd": 96},
					"september": {"b2c_adhd": 180, "b2c_asd": 45, "nhs_adhd": 420, "nhs_asd": 105},
					"october":   {"b2c_adhd": 180, "b2c_asd": 45, "nhs_adhd": 420, "nhs_asd": 105},
					"november":  {"b2c_adhd": 180, "b2c_asd": 45, "nhs_adhd": 420, "nhs_asd": 105},
					"december":  {"b2c_adhd": 180, "b2c_asd": 45, "nhs_adhd": 420, "nhs_asd": 105},
				},
			},
			2027: {
				MarketUK: {
					"january":   {"b2c_adhd": 280, "b2c_asd": 140, "nhs_adhd": 630, "nhs_asd": 315},
					"february":  {"b2c_adhd": 315, "b2c_asd": 147, "nhs_adhd": 700, "nhs_asd": 333},
					"march":     {"b2c_adhd": 350, "b2c_asd": 154, "nhs_adhd": 700, "nhs_asd": 350},
					"april":     {"b2c_adhd": 350, "b2c_asd": 161, "nhs_adhd": 700, "nhs_asd": 368},
					"may":       {"b2c_adhd": 350, "b2c_asd": 168, "nhs_adhd": 700, "nhs_asd": 385},
					"june":      {"b2c_adhd": 350, "b2c_asd": 175, "nhs_adhd": 700, "nhs_asd": 403},
					"july":      {"b2c_adhd": 350, "b2c_asd": 182, "nhs_adhd": 700, "nhs_asd": 420},
					"august":    {"b2c_adhd": 350, "b2c_asd": 189, "nhs_adhd": 700, "nhs_asd": 438},
					"september": {"b2c_adhd": 350, "b2c_asd": 196, "nhs_adhd": 700, "nhs_asd": 455},
					"october":   {"b2c_adhd": 350, "b2c_asd": 203, "nhs_adhd": 700, "nhs_asd": 473},
					"november":  {"b2c_adhd": 350, "b2c_asd": 210, "nhs_adhd": 700, "nhs_asd": 490},
					"december":  {"b2c_adhd": 350, "b2c_asd": 217, "nhs_adhd": 700, "nhs_asd": 508},
				},
				MarketUS: {
					"january":   {"selfpay_adhd": 20, "selfpay_asd": 5, "oon_adhd": 5, "oon_asd": 2},
					"february":  {"selfpay_adhd": 30, "selfpay_asd": 8, "innetwork_adhd": 10, "innetwork_asd": 3, "oon_adhd": 8, "oon_asd": 3},
					"march":     {"selfpay_adhd": 45, "selfpay_asd": 10, "innetwork_adhd": 20, "innetwork_asd": 5, "oon_adhd": 10, "oon_asd": 5},
					"april":     {"selfpay_adhd": 55, "selfpay_asd": 13, "innetwork_adhd": 35, "innetwork_asd": 9, "oon_adhd": 13, "oon_asd": 5},
					"may":       {"selfpay_adhd": 70, "selfpay_asd": 15, "innetwork_adhd": 55, "innetwork_asd": 14, "oon_adhd": 15, "oon_asd": 8},
					"june":      {"selfpay_adhd": 80, "selfpay_asd": 20, "innetwork_adhd": 80, "innetwork_asd": 20, "oon_adhd": 18, "oon_asd": 8},
					"july":      {"selfpay_adhd": 95, "selfpay_asd": 23, "innetwork_adhd": 110, "innetwork_asd": 28, "oon_adhd": 20, "oon_asd": 10},
					"august":    {"selfpay_adhd": 105, "selfpay_asd": 28, "innetwork_adhd": 145, "innetwork_asd": 37, "oon_adhd": 23, "oon_asd": 10},
					"september": {"selfpay_adhd": 120, "selfpay_asd": 30, "innetwork_adhd": 185, "innetwork_asd": 47, "oon_adhd": 25, "oon_asd": 13},
					"october":   {"selfpay_adhd": 130, "selfpay_asd": 33, "innetwork_adhd": 225, "innetwork_asd": 57, "oon_adhd": 28, "oon_asd": 13},
					"november":  {"selfpay_adhd": 140, "selfpay_asd": 35, "innetwork_adhd": 265, "innetwork_asd": 67, "oon_adhd": 30, "oon_asd": 15},
					"december":  {"selfpay_adhd": 145, "selfpay_asd": 38, "innetwork_adhd": 300, "innetwork_asd": 75, "oon_adhd": 33, "oon_asd": 15},
				},
				MarketIE: {
					"january":   {"b2c_adhd": 10, "b2c_asd": 3},
					"february":  {"b2c_adhd": 15, "b2c_asd": 4},
					"march":     {"b2c_adhd": 20, "b2c_asd": 5},
					"april":     {"b2c_adhd": 28, "b2c_asd": 7},
					"may":       {"b2c_adhd": 35, "b2c_asd": 9},
					"june":      {"b2c_adhd": 43, "b2c_asd": 11},
					"july":      {"b2c_adhd": 50, "b2c_asd": 13},
					"august":    {"b2c_adhd": 58, "b2c_asd": 15},
					"september": {"b2c_adhd": 65, "b2c_asd": 17},
					"october":   {"b2c_adhd": 73, "b2c_asd": 18},
					"november":  {"b2c_adhd": 80, "b2c_asd": 20},
					"december":  {"b2c_adhd": 88, "b2c_asd": 22},
				},
			},
			2028: {
				MarketUK: {
					"january":   {"b2c_adhd": 420, "b2c_asd": 245, "nhs_adhd": 840, "nhs_asd": 560},
					"february":  {"b2c_adhd": 455, "b2c_asd": 263, "nhs_adhd": 910, "nhs_asd": 595},
					"march":     {"b2c_adhd": 490, "b2c_asd": 280, "nhs_adhd": 980, "nhs_asd": 630},
					"april":     {"b2c_adhd": 525, "b2c_asd": 298, "nhs_adhd": 1050, "nhs_asd": 665},
					"may":       {"b2c_adhd": 560, "b2c_asd": 315, "nhs_adhd": 1120, "nhs_asd": 700},
					"june":      {"b2c_adhd": 560, "b2c_asd": 333, "nhs_adhd": 1120, "nhs_asd": 735},
					"july":      {"b2c_adhd": 560, "b2c_asd": 350, "nhs_adhd": 1120, "nhs_asd": 770},
					"august":    {"b2c_adhd": 560, "b2c_asd": 368, "nhs_adhd": 1120, "nhs_asd": 805},
					"september": {"b2c_adhd": 560, "b2c_asd": 385, "nhs_adhd": 1120, "nhs_asd": 840},
					"october":   {"b2c_adhd": 560, "b2c_asd": 403, "nhs_adhd": 1120, "nhs_asd": 875},
					"november":  {"b2c_adhd": 560, "b2c_asd": 420, "nhs_adhd": 1120, "nhs_asd": 910},
					"december":  {"b2c_adhd": 560, "b2c_asd": 438, "nhs_adhd": 1120, "nhs_asd": 945},
				},
				MarketUS: {
					"january":   {"selfpay_adhd": 155, "selfpay_asd": 40, "innetwork_adhd": 325, "innetwork_asd": 83, "oon_adhd": 35, "oon_asd": 16},
					"february":  {"selfpay_adhd": 165, "selfpay_asd": 43, "innetwork_adhd": 350, "innetwork_asd": 89, "oon_adhd": 37, "oon_asd": 17},
					"march":     {"selfpay_adhd": 175, "selfpay_asd": 45, "innetwork_adhd": 375, "innetwork_asd": 95, "oon_adhd": 39, "oon_asd": 18},
					"april":     {"selfpay_adhd": 185, "selfpay_asd": 48, "innetwork_adhd": 400, "innetwork_asd": 102, "oon_adhd": 41, "oon_asd": 19},
					"may":       {"selfpay_adhd": 195, "selfpay_asd": 50, "innetwork_adhd": 425, "innetwork_asd": 108, "oon_adhd": 43, "oon_asd": 20},
					"june":      {"selfpay_adhd": 205, "selfpay_asd": 53, "innetwork_adhd": 450, "innetwork_asd": 114, "oon_adhd": 45, "oon_asd": 21},
					"july":      {"selfpay_adhd": 215, "selfpay_asd": 55, "innetwork_adhd": 475, "innetwork_asd": 120, "oon_adhd": 47, "oon_asd": 22},
					"august":    {"selfpay_adhd": 225, "selfpay_asd": 58, "innetwork_adhd": 500, "innetwork_asd": 127, "oon_adhd": 49, "oon_asd": 23},
					"september": {"selfpay_adhd": 235, "selfpay_asd": 60, "innetwork_adhd": 525, "innetwork_asd": 133, "oon_adhd": 51, "oon_asd": 24},
					"october":   {"selfpay_adhd": 245, "selfpay_asd": 63, "innetwork_adhd": 550, "innetwork_asd": 139, "oon_adhd": 53, "oon_asd": 25},
					"november":  {"selfpay_adhd": 255, "selfpay_asd": 65, "innetwork_adhd": 575, "innetwork_asd": 145, "oon_adhd": 55, "oon_asd": 26},
					"december":  {"selfpay_adhd": 265, "selfpay_asd": 68, "innetwork_adhd": 600, "innetwork_asd": 152, "oon_adhd": 57, "oon_asd": 27},
				},
				MarketIE: {
					"january":   {"b2c_adhd": 95, "b2c_asd": 24},
					"february":  {"b2c_adhd": 103, "b2c_asd": 26},
					"march":     {"b2c_adhd": 110, "b2c_asd": 28},
					"april":     {"b2c_adhd": 118, "b2c_asd": 30},
					"may":       {"b2c_adhd": 125, "b2c_asd": 32},
					"june":      {"b2c_adhd": 133, "b2c_asd": 33},
					"july":      {"b2c_adhd": 140, "b2c_asd": 35},
					"august":    {"b2c_adhd": 148, "b2c_asd": 37},
					"september": {"b2c_adhd": 155, "b2c_asd": 39},
					"october":   {"b2c_adhd": 163, "b2c_asd": 41},
					"november":  {"b2c_adhd": 170, "b2c_asd": 43},
					"december":  {"b2c_adhd": 178, "b2c_asd": 45},
				},
			},
		},
	}
}

func optimisticScenario() *Scenario {
	return &Scenario{
		Name:        "Optimistic",
		Description: "Aggressive scaling to 3,000 patients/month in 2026 with fast US ramp",
		Volumes: map[int]map[string]map[string]ServiceVolumes{
			2026: {
				MarketUK: {
					"january":   {"b2c_adhd": 300, "b2c_asd": 15, "nhs_adhd": 50, "nhs_asd": 10},
					"february":  {"b2c_adhd": 380, "b2c_asd": 40, "nhs_adhd": 160, "nhs_asd": 40},
					"march":     {"b2c_adhd": 360, "b2c_asd": 60, "nhs_adhd": 280, "nhs_asd": 70},
					"april":     {"b2c_adhd": 350, "b2c_asd": 80, "nhs_adhd": 500, "nhs_asd": 125},
					"may":       {"b2c_adhd": 340, "b2c_asd": 100, "nhs_adhd": 800, "nhs_asd": 200},
					"june":      {"b2c_adhd": 400, "b2c_asd": 120, "nhs_adhd": 1120, "nhs_asd": 280},
					"july":      {"b2c_adhd": 500, "b2c_asd": 140, "nhs_adhd": 1400, "nhs_asd": 350},
					"august":    {"b2c_adhd": 600, "b2c_asd": 160, "nhs_adhd": 1540, "nhs_asd": 385},
					"september": {"b2c_adhd": 720, "b2c_asd": 180, "nhs_adhd": 1680, "nhs_asd": 420},
					"october":   {"b2c_adhd": 720, "b2c_asd": 180, "nhs_adhd": 1680, "nhs_asd": 420},
					"november":  {"b2c_adhd": 720, "b2c_asd": 180, "nhs_adhd": 1680, "nhs_asd": 420},
					"december":  {"b2c_adhd": 720, "b2c_asd": 180, "nhs_adhd": 1680, "nhs_asd": 420},
				},
			},
			2027: {
				MarketUK: {
					"january":   {"b2c_adhd": 560, "b2c_asd": 280, "nhs_adhd": 1260, "nhs_asd": 630},
					"february":  {"b2c_adhd": 630, "b2c_asd": 294, "nhs_adhd": 1400, "nhs_asd": 665},
					"march":     {"b2c_adhd": 700, "b2c_asd": 308, "nhs_adhd": 1400, "nhs_asd": 700},
					"april":     {"b2c_adhd": 700, "b2c_asd": 322, "nhs_adhd": 1400, "nhs_asd": 735},
					"may":       {"b2c_adhd": 700, "b2c_asd": 336, "nhs_adhd": 1400, "nhs_asd": 770},
					"june":      {"b2c_adhd": 700, "b2c_asd": 350, "nhs_adhd": 1400, "nhs_asd": 805},
					"july":      {"b2c_adhd": 700, "b2c_asd": 364, "nhs_adhd": 1400, "nhs_asd": 840},
					"august":    {"b2c_adhd": 700, "b2c_asd": 378, "nhs_adhd": 1400, "nhs_asd": 875},
					"september": {"b2c_adhd": 700, "b2c_asd": 392, "nhs_adhd": 1400, "nhs_asd": 910},
					"october":   {"b2c_adhd": 700, "b2c_asd": 406, "nhs_adhd": 1400, "nhs_asd": 945},
					"november":  {"b2c_adhd": 700, "b2c_asd": 420, "nhs_adhd": 1400, "nhs_asd": 980},
					"december":  {"b2c_adhd": 700, "b2c_asd": 434, "nhs_adhd": 1400, "nhs_asd": 1015},
				},
				MarketUS: {
					"january":   {"selfpay_adhd": 60, "selfpay_asd": 15, "innetwork_adhd": 10, "innetwork_asd": 3, "oon_adhd": 15, "oon_asd": 8},
					"february":  {"selfpay_adhd": 90, "selfpay_asd": 23, "innetwork_adhd": 30, "innetwork_asd": 8, "oon_adhd": 23, "oon_asd": 8},
					"march":     {"selfpay_adhd": 128, "selfpay_asd": 30, "innetwork_adhd": 60, "innetwork_asd": 15, "oon_adhd": 30, "oon_asd": 15},
					"april":     {"selfpay_adhd": 165, "selfpay_asd": 38, "innetwork_adhd": 105, "innetwork_asd": 27, "oon_adhd": 38, "oon_asd": 15},
					"may":       {"selfpay_adhd": 203, "selfpay_asd": 45, "innetwork_adhd": 165, "innetwork_asd": 42, "oon_adhd": 45, "oon_asd": 23},
					"june":      {"selfpay_adhd": 240, "selfpay_asd": 60, "innetwork_adhd": 240, "innetwork_asd": 60, "oon_adhd": 53, "oon_asd": 23},
					"july":      {"selfpay_adhd": 278, "selfpay_asd": 68, "innetwork_adhd": 330, "innetwork_asd": 83, "oon_adhd": 60, "oon_asd": 30},
					"august":    {"selfpay_adhd": 315, "selfpay_asd": 83, "innetwork_adhd": 435, "innetwork_asd": 110, "oon_adhd": 68, "oon_asd": 30},
					"september": {"selfpay_adhd": 353, "selfpay_asd": 90, "innetwork_adhd": 555, "innetwork_asd": 140, "oon_adhd": 75, "oon_asd": 38},
					"october":   {"selfpay_adhd": 383, "selfpay_asd": 98, "innetwork_adhd": 675, "innetwork_asd": 170, "oon_adhd": 83, "oon_asd": 38},
					"november":  {"selfpay_adhd": 413, "selfpay_asd": 105, "innetwork_adhd": 795, "innetwork_asd": 200, "oon_adhd": 90, "oon_asd": 45},
					"december":  {"selfpay_adhd": 435, "selfpay_asd": 113, "innetwork_adhd": 900, "innetwork_asd": 225, "oon_adhd": 98, "oon_asd": 45},
				},
				MarketIE: {
					"january":   {"b2c_adhd": 30, "b2c_asd": 8},
					"february":  {"b2c_adhd": 45, "b2c_asd": 12},
					"march":     {"b2c_adhd": 60, "b2c_asd": 15},
					"april":     {"b2c_adhd": 83, "b2c_asd": 21},
					"may":       {"b2c_adhd": 105, "b2c_asd": 27},
					"june":      {"b2c_adhd": 128, "b2c_asd": 32},
					"july":      {"b2c_adhd": 150, "b2c_asd": 38},
					"august":    {"b2c_adhd": 173, "b2c_asd": 44},
					"september": {"b2c_adhd": 195, "b2c_asd": 50},
					"october":   {"b2c_adhd": 218, "b2c_asd": 54},
					"november":  {"b2c_adhd": 240, "b2c_asd": 60},
					"december":  {"b2c_adhd": 263, "b2c_asd": 66},
				},
			},
			2028: {
				MarketUK: {
					"january":   {"b2c_adhd": 840, "b2c_asd": 490, "nhs_adhd": 1680, "nhs_asd": 1120},
					"february":  {"b2c_adhd": 910, "b2c_asd": 525, "nhs_adhd": 1820, "nhs_asd": 1190},
					"march":     {"b2c_adhd": 980, "b2c_asd": 560, "nhs_adhd": 1960, "nhs_asd": 1260},
					"april":     {"b2c_adhd": 1050, "b2c_asd": 595, "nhs_adhd": 2100, "nhs_asd": 1330},
					"may":       {"b2c_adhd": 1120, "b2c_asd": 630, "nhs_adhd": 2240, "nhs_asd": 1400},
					"june":      {"b2c_adhd": 1120, "b2c_asd": 665, "nhs_adhd": 2240, "nhs_asd": 1470},
					"july":      {"b2c_adhd": 1120, "b2c_asd": 700, "nhs_adhd": 2240, "nhs_asd": 1540},
					"august":    {"b2c_adhd": 1120, "b2c_asd": 735, "nhs_adhd": 2240, "nhs_asd": 1610},
					"september": {"b2c_adhd": 1120, "b2c_asd": 770, "nhs_adhd": 2240, "nhs_asd": 1680},
					"october":   {"b2c_adhd": 1120, "b2c_asd": 805, "nhs_adhd": 2240, "nhs_asd": 1750},
					"november":  {"b2c_adhd": 1120, "b2c_asd": 840, "nhs_adhd": 2240, "nhs_asd": 1820},
					"december":  {"b2c_adhd": 1120, "b2c_asd": 875, "nhs_adhd": 2240, "nhs_asd": 1890},
				},
				MarketUS: {
					"january":   {"selfpay_adhd": 465, "selfpay_asd": 120, "innetwork_adhd": 975, "innetwork_asd": 248, "oon_adhd": 105, "oon_asd": 48},
					"february":  {"selfpay_adhd": 495, "selfpay_asd": 128, "innetwork_adhd": 1050, "innetwork_asd": 267, "oon_adhd": 111, "oon_asd": 51},
					"march":     {"selfpay_adhd": 525, "selfpay_asd": 135, "innetwork_adhd": 1125, "innetwork_asd": 285, "oon_adhd": 117, "oon_asd": 54},
					"april":     {"selfpay_adhd": 555, "selfpay_asd": 143, "innetwork_adhd": 1200, "innetwork_asd": 305, "oon_adhd": 123, "oon_asd": 57},
					"may":       {"selfpay_adhd": 585, "selfpay_asd": 150, "innetwork_adhd": 1275, "innetwork_asd": 323, "oon_adhd": 129, "oon_asd": 60},
					"june":      {"selfpay_adhd": 615, "selfpay_asd": 158, "innetwork_adhd": 1350, "innetwork_asd": 342, "oon_adhd": 135, "oon_asd": 63},
					"july":      {"selfpay_adhd": 645, "selfpay_asd": 165, "innetwork_adhd": 1425, "innetwork_asd": 360, "oon_adhd": 141, "oon_asd": 66},
					"august":    {"selfpay_adhd": 675, "selfpay_asd": 173, "innetwork_adhd": 1500, "innetwork_asd": 381, "oon_adhd": 147, "oon_asd": 69},
					"september": {"selfpay_adhd": 705, "selfpay_asd": 180, "innetwork_adhd": 1575, "innetwork_asd": 399, "oon_adhd": 153, "oon_asd": 72},
					"october":   {"selfpay_adhd": 735, "selfpay_asd": 188, "innetwork_adhd": 1650, "innetwork_asd": 417, "oon_adhd": 159, "oon_asd": 75},
					"november":  {"selfpay_adhd": 765, "selfpay_asd": 195, "innetwork_adhd": 1725, "innetwork_asd": 435, "oon_adhd": 165, "oon_asd": 78},
					"december":  {"selfpay_adhd": 795, "selfpay_asd": 203, "innetwork_adhd": 1800, "innetwork_asd": 455, "oon_adhd": 171, "oon_asd": 81},
				},
				MarketIE: {
					"january":   {"b2c_adhd": 285, "b2c_asd": 72},
					"february":  {"b2c_adhd": 308, "b2c_asd": 77},
					"march":     {"b2c_adhd": 330, "b2c_asd": 83},
					"april":     {"b2c_adhd": 353, "b2c_asd": 89},
					"may":       {"b2c_adhd": 375, "b2c_asd": 95},
					"june":      {"b2c_adhd": 398, "b2c_asd": 99},
					"july":      {"b2c_adhd": 420, "b2c_asd": 105},
					"august":    {"b2c_adhd": 443, "b2c_asd": 111},
					"september": {"b2c_adhd": 465, "b2c_asd": 117},
					"october":   {"b2c_adhd": 488, "b2c_asd": 122},
					"november":  {"b2c_adhd": 510, "b2c_asd": 128},
					"december":  {"b2c_adhd": 533, "b2c_asd": 134},
				},
			},
		},
	}
}

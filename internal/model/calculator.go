package model

import "math"

// RevenueBreakdown is one market's monthly revenue with per-channel
// subtotals. The aggregator and the renderer both consume the
// breakdown, so calculators never return a bare scalar.
type RevenueBreakdown struct {
	Channels          map[string]float64
	Assessment        float64
	Subscription      float64
	SubscriptionCount int
	Total             float64
}

// CostBreakdown is one market's monthly cost of goods by category.
type CostBreakdown struct {
	Clinical     float64
	TechAdmin    float64
	Acquisition  float64
	Subscription float64
	Total        float64
}

// Calculator computes revenue and COGS for a single market from its
// MarketConfig. One implementation serves every market; the per-market
// differences live entirely in the config.
type Calculator struct {
	market MarketConfig
}

// NewCalculator binds a calculator to a market configuration.
func NewCalculator(market MarketConfig) Calculator {
	return Calculator{market: market}
}

// Market exposes the bound configuration.
func (c Calculator) Market() MarketConfig {
	return c.market
}

// SubscriptionCount resolves the month's subscriber count from the
// renewal pipeline: round(eligible × uptake). Zero when the market has
// no subscription product or the pipeline has no entry.
func (c Calculator) SubscriptionCount(year int, month string) int {
	plan := c.market.Subscription
	if plan == nil {
		return 0
	}
	pipeline, ok := plan.Pipeline[year]
	if !ok {
		return 0
	}
	eligible := pipeline[month]
	return int(math.Round(float64(eligible) * plan.UptakeRate))
}

// Revenue computes the month's revenue breakdown from channel volumes
// plus the subscription pipeline. Missing channels count as zero; a
// partially populated volume record never fails.
func (c Calculator) Revenue(volumes ServiceVolumes, year int, month string) RevenueBreakdown {
	out := RevenueBreakdown{Channels: make(map[string]float64, len(c.market.Channels))}
	for _, channel := range c.market.Channels {
		rev := float64(volumes.Get(channel)) * c.market.Economics[channel].Revenue
		out.Channels[channel] = rev
		out.Assessment += rev
	}
	if plan := c.market.Subscription; plan != nil {
		out.SubscriptionCount = c.SubscriptionCount(year, month)
		out.Subscription = float64(out.SubscriptionCount) * plan.Price
	}
	out.Total = out.Assessment + out.Subscription
	return out
}

// Costs computes the month's COGS by category from channel volumes and
// the resolved subscriber count.
func (c Calculator) Costs(volumes ServiceVolumes, subscriptionCount int) CostBreakdown {
	var out CostBreakdown
	for _, channel := range c.market.Channels {
		n := float64(volumes.Get(channel))
		ue := c.market.Economics[channel]
		out.Clinical += n * ue.ClinicalCost
		out.TechAdmin += n * ue.TechAdminCost
		out.Acquisition += n * ue.AcquisitionCost
	}
	if plan := c.market.Subscription; plan != nil {
		out.Subscription = float64(subscriptionCount) * plan.UnitCost
	}
	out.Total = out.Clinical + out.TechAdmin + out.Acquisition + out.Subscription
	return out
}

// Patients counts the month's assessment patients across the market's
// configured channels. Subscribers are not patients for volume
// purposes; they renew out of prior cohorts.
func (c Calculator) Patients(volumes ServiceVolumes) int {
	total := 0
	for _, channel := range c.market.Channels {
		total += volumes.Get(channel)
	}
	return total
}

package model

import (
	"math"
	"sort"
)

// BasisKind distinguishes a planned month from a closed-books month.
type BasisKind int

const (
	// BasisPlanned derives the month from scenario volumes.
	BasisPlanned BasisKind = iota
	// BasisActual takes revenue and patient count from the closed
	// record; costs come from the record when verified categories are
	// present, otherwise from the planned volumes.
	BasisActual
)

// MonthBasis is resolved once per month before the revenue/cost
// pipeline runs, so the pipeline itself has a single code path.
type MonthBasis struct {
	Kind    BasisKind
	Volumes ServiceVolumes
	Actual  *ActualsRecord
}

// ResolveBasis decides whether a month is computed from plan or taken
// from actuals. Partial records are mid-month pulls and fall through to
// the planned computation so an unclosed month is never understated.
func ResolveBasis(planned ServiceVolumes, record *ActualsRecord) MonthBasis {
	if record != nil && !record.Partial {
		return MonthBasis{Kind: BasisActual, Volumes: planned, Actual: record}
	}
	return MonthBasis{Kind: BasisPlanned, Volumes: planned}
}

// AllocateActual back-allocates an actual revenue total across channels
// in proportion to the planned volume mix, for display and charting.
// Largest-remainder rounding: each share is floored, then the leftover
// units go to the largest fractional parts first (channel order breaks
// ties), so the parts always sum exactly to the total. With no planned
// volume at all the whole total lands on the first channel.
func AllocateActual(total float64, mix ServiceVolumes, channels []string) map[string]float64 {
	out := make(map[string]float64, len(channels))
	if len(channels) == 0 {
		return out
	}
	mixTotal := 0
	for _, ch := range channels {
		out[ch] = 0
		mixTotal += mix.Get(ch)
	}
	if mixTotal == 0 {
		out[channels[0]] = total
		return out
	}

	type share struct {
		channel  string
		order    int
		fraction float64
	}
	floored := 0.0
	shares := make([]share, 0, len(channels))
	for i, ch := range channels {
		exact := total * float64(mix.Get(ch)) / float64(mixTotal)
		base := math.Floor(exact)
		out[ch] = base
		floored += base
		shares = append(shares, share{channel: ch, order: i, fraction: exact - base})
	}
	sort.SliceStable(shares, func(i, j int) bool {
		if shares[i].fraction != shares[j].fraction {
			return shares[i].fraction > shares[j].fraction
		}
		return shares[i].order < shares[j].order
	})
	remainder := int(math.Round(total - floored))
	for i := 0; i < remainder && len(shares) > 0; i++ {
		out[shares[i%len(shares)].channel]++
	}
	return out
}

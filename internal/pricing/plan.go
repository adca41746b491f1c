package pricing

import (
	"fmt"
	"sort"
	"time"

	"fxdesk/types"

	"github.com/shopspring/decimal"
)

const (
	planMaturityDay = 10
	maxPlanMonths   = 24
)

// PlanRequest describes a rolling monthly hedge programme. RelativePoints are
// forward points as a fraction of spot keyed by month number (0.01 means the
// forward sits 1% above spot), not rate offsets.
type PlanRequest struct {
	Spot           decimal.Decimal
	Months         int
	MonthlyVolume  decimal.Decimal
	RelativePoints map[int]decimal.Decimal
	Today          time.Time
}

type MonthlyBucket struct {
	Month        string
	Volume       decimal.Decimal
	WeightedRate decimal.Decimal
}

type PlanOverview struct {
	WeightedAverage decimal.Decimal
	Target          decimal.Decimal
	VsTarget        decimal.Decimal
	TotalVolume     decimal.Decimal
	HorizonDays     int
}

// DefaultRelativePoints is the progressive 1%-per-month curve used when a
// month has no quote.
func DefaultRelativePoints(month int) decimal.Decimal {
	return decimal.NewFromInt(int64(month)).Div(hundred)
}

// BuildHedgePlan proposes one hedge per month maturing on the 10th.
func BuildHedgePlan(req PlanRequest) ([]types.PlanEntry, error) {
	if req.Months < 1 || req.Months > maxPlanMonths {
		return nil, fmt.Errorf("plan horizon of %d months: %w", req.Months, ErrInvalidMarketInput)
	}
	if !req.Spot.IsPositive() {
		return nil, fmt.Errorf("spot %s: %w", req.Spot, ErrInvalidMarketInput)
	}
	if req.MonthlyVolume.IsNegative() {
		return nil, fmt.Errorf("monthly volume %s: %w", req.MonthlyVolume, ErrInvalidMarketInput)
	}

	entries := make([]types.PlanEntry, 0, req.Months)
	for m := 1; m <= req.Months; m++ {
		rel, ok := req.RelativePoints[m]
		if !ok {
			rel = DefaultRelativePoints(m)
		}
		maturity := time.Date(req.Today.Year(), req.Today.Month()+time.Month(m), planMaturityDay, 0, 0, 0, 0, req.Today.Location())
		entries = append(entries, types.PlanEntry{
			MaturityDate: maturity,
			Volume:       req.MonthlyVolume,
			Rate:         req.Spot.Mul(one.Add(rel)),
			Source:       types.PlanNew,
		})
	}
	return entries, nil
}

// CombinePlan merges booked and proposed hedges ordered by maturity.
func CombinePlan(existing, proposed []types.PlanEntry) []types.PlanEntry {
	out := make([]types.PlanEntry, 0, len(existing)+len(proposed))
	for _, e := range existing {
		e.Source = types.PlanExisting
		out = append(out, e)
	}
	out = append(out, proposed...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].MaturityDate.Before(out[j].MaturityDate) })
	return out
}

// PlanWeightedAverage is the volume-weighted rate of the plan, zero when the
// plan carries no volume.
func PlanWeightedAverage(entries []types.PlanEntry) (decimal.Decimal, decimal.Decimal) {
	volume := decimal.Zero
	weighted := decimal.Zero
	for _, e := range entries {
		volume = volume.Add(e.Volume)
		weighted = weighted.Add(e.Volume.Mul(e.Rate))
	}
	if volume.IsZero() {
		return decimal.Zero, volume
	}
	return weighted.Div(volume), volume
}

func SummarizePlan(entries []types.PlanEntry, target decimal.Decimal, today time.Time) PlanOverview {
	avg, volume := PlanWeightedAverage(entries)
	overview := PlanOverview{
		WeightedAverage: avg,
		Target:          target,
		VsTarget:        avg.Sub(target),
		TotalVolume:     volume,
	}
	for _, e := range entries {
		if d := calendarDays(today, e.MaturityDate); d > overview.HorizonDays {
			overview.HorizonDays = d
		}
	}
	return overview
}

// MonthlyAnalysis groups the plan by maturity month. Months without volume
// report the plain mean rate.
func MonthlyAnalysis(entries []types.PlanEntry) []MonthlyBucket {
	type acc struct {
		volume, weighted, rateSum decimal.Decimal
		count                     int64
	}
	byMonth := make(map[string]*acc)
	for _, e := range entries {
		key := e.MaturityDate.Format("2006-01")
		a, ok := byMonth[key]
		if !ok {
			a = &acc{volume: decimal.Zero, weighted: decimal.Zero, rateSum: decimal.Zero}
			byMonth[key] = a
		}
		a.volume = a.volume.Add(e.Volume)
		a.weighted = a.weighted.Add(e.Volume.Mul(e.Rate))
		a.rateSum = a.rateSum.Add(e.Rate)
		a.count++
	}

	keys := make([]string, 0, len(byMonth))
	for k := range byMonth {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]MonthlyBucket, 0, len(keys))
	for _, k := range keys {
		a := byMonth[k]
		rate := a.rateSum.Div(decimal.NewFromInt(a.count))
		if !a.volume.IsZero() {
			rate = a.weighted.Div(a.volume)
		}
		out = append(out, MonthlyBucket{Month: k, Volume: a.volume, WeightedRate: rate})
	}
	return out
}

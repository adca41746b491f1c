package coverage

import (
	"sort"
	"time"

	"fxdesk/types"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Row is the exposure and hedge position of one client in one calendar month.
// AvgStrike is only meaningful when HasStrike is set.
type Row struct {
	ClientName   string
	Month        time.Time
	FxNeed       decimal.Decimal
	HedgedVolume decimal.Decimal
	AvgStrike    decimal.Decimal
	HasStrike    bool
	CoveragePct  decimal.Decimal
	ToHedge      decimal.Decimal
}

type ClientSummary struct {
	ClientName   string
	FxNeed       decimal.Decimal
	HedgedVolume decimal.Decimal
	ToHedge      decimal.Decimal
	CoveragePct  decimal.Decimal
}

type rowKey struct {
	client string
	month  time.Time
}

type bucket struct {
	need, hedged, strikeSum decimal.Decimal
	strikes                 int64
}

func monthOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

func coveragePct(hedged, need decimal.Decimal) decimal.Decimal {
	if need.IsZero() {
		return decimal.Zero
	}
	return hedged.Div(need).Mul(hundred)
}

// MonthlyCoverage matches unpaid payments against hedges by client and month.
// Payments are grouped by payment date, hedges by maturity.
func MonthlyCoverage(payments []types.Payment, hedges []types.Hedge) []Row {
	buckets := make(map[rowKey]*bucket)
	get := func(k rowKey) *bucket {
		b, ok := buckets[k]
		if !ok {
			b = &bucket{need: decimal.Zero, hedged: decimal.Zero, strikeSum: decimal.Zero}
			buckets[k] = b
		}
		return b
	}

	for _, p := range payments {
		if p.Status != types.PaymentUnpaid {
			continue
		}
		b := get(rowKey{client: p.ClientName, month: monthOf(p.PaymentDate)})
		b.need = b.need.Add(p.Signed())
	}
	for _, h := range hedges {
		b := get(rowKey{client: h.ClientName, month: monthOf(h.Maturity)})
		b.hedged = b.hedged.Add(h.Notional)
		b.strikeSum = b.strikeSum.Add(h.Strike)
		b.strikes++
	}

	keys := make([]rowKey, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].client != keys[j].client {
			return keys[i].client < keys[j].client
		}
		return keys[i].month.Before(keys[j].month)
	})

	rows := make([]Row, 0, len(keys))
	for _, k := range keys {
		b := buckets[k]
		row := Row{
			ClientName:   k.client,
			Month:        k.month,
			FxNeed:       b.need,
			HedgedVolume: b.hedged,
			CoveragePct:  coveragePct(b.hedged, b.need),
			ToHedge:      b.need.Sub(b.hedged),
		}
		if b.strikes > 0 {
			row.HasStrike = true
			row.AvgStrike = b.strikeSum.Div(decimal.NewFromInt(b.strikes))
		}
		rows = append(rows, row)
	}
	return rows
}

// ClientCoverage totals monthly rows per client, ordered by client name.
func ClientCoverage(rows []Row) []ClientSummary {
	idx := make(map[string]int)
	var out []ClientSummary
	for _, r := range rows {
		i, ok := idx[r.ClientName]
		if !ok {
			i = len(out)
			idx[r.ClientName] = i
			out = append(out, ClientSummary{
				ClientName:   r.ClientName,
				FxNeed:       decimal.Zero,
				HedgedVolume: decimal.Zero,
				ToHedge:      decimal.Zero,
			})
		}
		s := &out[i]
		s.FxNeed = s.FxNeed.Add(r.FxNeed)
		s.HedgedVolume = s.HedgedVolume.Add(r.HedgedVolume)
		s.ToHedge = s.ToHedge.Add(r.ToHedge)
	}
	for i := range out {
		out[i].CoveragePct = coveragePct(out[i].HedgedVolume, out[i].FxNeed)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ClientName < out[j].ClientName })
	return out
}

// ValuationGap is the mark of an open position at currentRate against the budget rate.
func ValuationGap(openPosition, budgetRate, currentRate decimal.Decimal) decimal.Decimal {
	return currentRate.Sub(budgetRate).Mul(openPosition)
}

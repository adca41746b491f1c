package coverage

import (
	"testing"
	"time"

	"fxdesk/types"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var decimalComparer = cmp.Comparer(func(a, b decimal.Decimal) bool {
	return a.Equal(b)
})

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func day(y int, m time.Month, dd int) time.Time {
	return time.Date(y, m, dd, 0, 0, 0, 0, time.UTC)
}

func TestMonthlyCoverage(t *testing.T) {
	payments := []types.Payment{
		{ClientName: "Acme", Amount: d("100000"), Direction: types.DirectionIncoming, PaymentDate: day(2025, time.March, 5), Status: types.PaymentUnpaid},
		{ClientName: "Acme", Amount: d("20000"), Direction: types.DirectionOutgoing, PaymentDate: day(2025, time.March, 20), Status: types.PaymentUnpaid},
		{ClientName: "Acme", Amount: d("999999"), Direction: types.DirectionIncoming, PaymentDate: day(2025, time.March, 21), Status: types.PaymentPaid},
		{ClientName: "Beta", Amount: d("50000"), Direction: types.DirectionIncoming, PaymentDate: day(2025, time.April, 1), Status: types.PaymentUnpaid},
	}
	hedges := []types.Hedge{
		{ClientName: "Acme", Notional: d("40000"), Strike: d("4.30"), Maturity: day(2025, time.March, 10)},
		{ClientName: "Acme", Notional: d("20000"), Strike: d("4.40"), Maturity: day(2025, time.March, 28)},
		{ClientName: "Beta", Notional: d("10000"), Strike: d("4.20"), Maturity: day(2025, time.May, 10)},
	}

	got := MonthlyCoverage(payments, hedges)
	want := []Row{
		{ClientName: "Acme", Month: day(2025, time.March, 1), FxNeed: d("80000"), HedgedVolume: d("60000"),
			AvgStrike: d("4.35"), HasStrike: true, CoveragePct: d("75"), ToHedge: d("20000")},
		{ClientName: "Beta", Month: day(2025, time.April, 1), FxNeed: d("50000"), HedgedVolume: d("0"),
			CoveragePct: d("0"), ToHedge: d("50000")},
		{ClientName: "Beta", Month: day(2025, time.May, 1), FxNeed: d("0"), HedgedVolume: d("10000"),
			AvgStrike: d("4.20"), HasStrike: true, CoveragePct: d("0"), ToHedge: d("-10000")},
	}
	if diff := cmp.Diff(want, got, decimalComparer); diff != "" {
		t.Errorf("MonthlyCoverage mismatch (-want +got):\n%s", diff)
	}
}

func TestClientCoverage(t *testing.T) {
	rows := []Row{
		{ClientName: "Beta", FxNeed: d("50000"), HedgedVolume: d("0"), ToHedge: d("50000")},
		{ClientName: "Acme", FxNeed: d("80000"), HedgedVolume: d("60000"), ToHedge: d("20000")},
		{ClientName: "Beta", FxNeed: d("0"), HedgedVolume: d("10000"), ToHedge: d("-10000")},
		{ClientName: "Gamma", FxNeed: d("0"), HedgedVolume: d("0"), ToHedge: d("0")},
	}
	got := ClientCoverage(rows)
	want := []ClientSummary{
		{ClientName: "Acme", FxNeed: d("80000"), HedgedVolume: d("60000"), ToHedge: d("20000"), CoveragePct: d("75")},
		{ClientName: "Beta", FxNeed: d("50000"), HedgedVolume: d("10000"), ToHedge: d("40000"), CoveragePct: d("20")},
		{ClientName: "Gamma", FxNeed: d("0"), HedgedVolume: d("0"), ToHedge: d("0"), CoveragePct: d("0")},
	}
	require.Equal(t, "", cmp.Diff(want, got, decimalComparer))
}

func TestValuationGap(t *testing.T) {
	tests := []struct {
		name     string
		position string
		budget   string
		current  string
		want     string
	}{
		{"favourable move", "1000000", "4.30", "4.35", "50000"},
		{"adverse move", "1000000", "4.30", "4.25", "-50000"},
		{"at budget", "1000000", "4.30", "4.30", "0"},
		{"short position", "-200000", "4.30", "4.40", "-20000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValuationGap(d(tt.position), d(tt.budget), d(tt.current))
			if !got.Equal(d(tt.want)) {
				t.Errorf("ValuationGap() = %s, want %s", got, tt.want)
			}
		})
	}
}

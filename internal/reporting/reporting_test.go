package reporting

import (
	"bytes"
	"encoding/csv"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"fxdesk/internal/coverage"
	"fxdesk/internal/pricing"
	"fxdesk/types"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func day(y int, m time.Month, dd int) time.Time {
	return time.Date(y, m, dd, 0, 0, 0, 0, time.UTC)
}

func ticket(notional, rate string) types.HedgeTicket {
	return types.HedgeTicket{
		ID:             uuid.MustParse("7d444840-9dc0-11d1-b245-5ffdce74fad2"),
		Pair:           "EUR/PLN",
		OpenDate:       day(2024, time.March, 8),
		SettlementDate: day(2024, time.May, 31),
		WindowDays:     60,
		Notional:       d(notional),
		ClientRate:     d(rate),
		NetPoints:      d(rate).Sub(d("4.25")),
		DaysToMaturity: 84,
	}
}

func readAll(t *testing.T, buf *bytes.Buffer) [][]string {
	t.Helper()
	records, err := csv.NewReader(buf).ReadAll()
	require.NoError(t, err)
	return records
}

func TestWriteTicketsCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTicketsCSV(&buf, []types.HedgeTicket{ticket("1000000", "4.27")}))

	records := readAll(t, &buf)
	require.Len(t, records, 2)
	require.Equal(t, "ticket_id", records[0][0])
	require.Equal(t, []string{
		"7d444840-9dc0-11d1-b245-5ffdce74fad2", "EUR/PLN", "2024-03-08", "2024-05-31",
		"60", "84", "1000000", "4.2700", "0.0200",
	}, records[1])
}

func TestWritePlanCSV(t *testing.T) {
	var buf bytes.Buffer
	entries := []types.PlanEntry{
		{MaturityDate: day(2025, time.February, 10), Volume: d("100000"), Rate: d("4.3086"), Source: types.PlanNew},
		{MaturityDate: day(2025, time.February, 15), Volume: d("50000"), Rate: d("4.32"), Source: types.PlanExisting},
	}
	require.NoError(t, WritePlanCSV(&buf, entries))

	records := readAll(t, &buf)
	require.Len(t, records, 3)
	require.Equal(t, []string{"2025-02-15", "50000", "4.3200", "EXISTING"}, records[2])
}

func TestWriteCoverageCSV(t *testing.T) {
	var buf bytes.Buffer
	rows := []coverage.Row{
		{ClientName: "Acme", Month: day(2025, time.March, 1), FxNeed: d("80000"), HedgedVolume: d("60000"),
			AvgStrike: d("4.35"), HasStrike: true, CoveragePct: d("75"), ToHedge: d("20000")},
		{ClientName: "Beta", Month: day(2025, time.April, 1), FxNeed: d("50000"), HedgedVolume: d("0"),
			CoveragePct: d("0"), ToHedge: d("50000")},
	}
	require.NoError(t, WriteCoverageCSV(&buf, rows))

	records := readAll(t, &buf)
	require.Equal(t, []string{"Acme", "2025-03", "80000", "60000", "4.3500", "75.00", "20000"}, records[1])
	require.Equal(t, "", records[2][4])
}

func TestReadExistingHedges(t *testing.T) {
	sheet := "Maturity Date,Volume (EUR),Rate\n" +
		"2025-03-10,\"250,000\",4.3120\n" +
		"15.04.2025,100000,4.33\n"
	entries, err := ReadExistingHedges(strings.NewReader(sheet))
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, day(2025, time.March, 10), entries[0].MaturityDate)
	require.True(t, entries[0].Volume.Equal(d("250000")))
	require.Equal(t, types.PlanExisting, entries[0].Source)
	require.Equal(t, day(2025, time.April, 15), entries[1].MaturityDate)
}

func TestReadExistingHedges_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		sheet string
	}{
		{"bad date", "Maturity Date,Volume (EUR),Rate\nsoon,1000,4.3\n"},
		{"negative volume", "Maturity Date,Volume (EUR),Rate\n2025-03-10,-1000,4.3\n"},
		{"zero rate", "Maturity Date,Volume (EUR),Rate\n2025-03-10,1000,0\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadExistingHedges(strings.NewReader(tt.sheet))
			require.ErrorIs(t, err, ErrInvalidHedgeRow)
			require.ErrorContains(t, err, "line 2")
		})
	}
}

func TestNewReport(t *testing.T) {
	tickets := []types.HedgeTicket{ticket("1000000", "4.26"), ticket("1000000", "4.28")}
	engine, err := pricing.NewEngine(nil)
	require.NoError(t, err)
	summary, err := engine.Summary(tickets, d("4.25"))
	require.NoError(t, err)

	report, err := NewReport("EUR/PLN", d("4.25"), summary, tickets)
	require.NoError(t, err)
	require.True(t, report.MinRate.Equal(d("4.26")))
	require.True(t, report.MaxRate.Equal(d("4.28")))
	// sample stdev of {4.26, 4.28} is 0.02/sqrt(2)
	require.InDelta(t, 0.0141421356, report.RateStdev.InexactFloat64(), 1e-8)

	var buf bytes.Buffer
	PrintReport(&buf, report)
	out := buf.String()
	require.Contains(t, out, "Weighted Avg Rate:     4.2700")
	require.Contains(t, out, "Transactions:          2")
}

func TestNewReport_SingleTicket(t *testing.T) {
	report, err := NewReport("EUR/PLN", d("4.25"), types.PortfolioSummary{}, []types.HedgeTicket{ticket("1", "4.26")})
	require.NoError(t, err)
	require.True(t, report.RateStdev.IsZero())
}

func TestPrintPlanOverview(t *testing.T) {
	var buf bytes.Buffer
	PrintPlanOverview(&buf, pricing.PlanOverview{
		WeightedAverage: d("4.35"),
		Target:          d("4.40"),
		VsTarget:        d("-0.05"),
		TotalVolume:     d("300000"),
		HorizonDays:     69,
	}, []pricing.MonthlyBucket{{Month: "2025-02", Volume: d("100000"), WeightedRate: d("4.3086")}})
	require.Contains(t, buf.String(), "Horizon:               69 days")
	require.Contains(t, buf.String(), "2025-02")
}

func TestTrackImport(t *testing.T) {
	var seen []int
	err := TrackImport(io.Discard, 3, "importing", func(i int) error {
		seen = append(seen, i)
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2}, seen)

	boom := errors.New("client missing")
	err = TrackImport(io.Discard, 3, "importing", func(i int) error {
		if i == 1 {
			return boom
		}
		return nil
	})
	require.ErrorIs(t, err, boom)
	require.ErrorContains(t, err, "item 2")
}

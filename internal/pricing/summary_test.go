package pricing

import (
	"testing"

	"fxdesk/types"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var decimalComparer = cmp.Comparer(func(a, b decimal.Decimal) bool {
	return a.Equal(b)
})

func ticket(notional, rate, points string) types.HedgeTicket {
	return types.HedgeTicket{
		Notional:   d(notional),
		ClientRate: d(rate),
		NetPoints:  d(points),
	}
}

func TestCalculateWeightedSummary(t *testing.T) {
	tests := []struct {
		name    string
		tickets []types.HedgeTicket
		spot    decimal.Decimal
		want    types.PortfolioSummary
	}{
		{
			name:    "empty portfolio",
			tickets: nil,
			spot:    d("4.25"),
			want: types.PortfolioSummary{
				TotalVolume:               decimal.Zero,
				WeightedAverageRate:       decimal.Zero,
				WeightedAveragePoints:     decimal.Zero,
				TotalValueInQuoteCurrency: decimal.Zero,
				TotalBenefitVsSpot:        decimal.Zero,
			},
		},
		{
			name: "equal volumes average the rates",
			tickets: []types.HedgeTicket{
				ticket("500000", "4.30", "0.05"),
				ticket("500000", "4.20", "-0.05"),
			},
			spot: d("4.25"),
			want: types.PortfolioSummary{
				TotalVolume:               d("1000000"),
				WeightedAverageRate:       d("4.25"),
				WeightedAveragePoints:     decimal.Zero,
				TransactionCount:          2,
				TotalValueInQuoteCurrency: d("4250000"),
				TotalBenefitVsSpot:        decimal.Zero,
			},
		},
		{
			name: "volume weighted",
			tickets: []types.HedgeTicket{
				ticket("1000000", "4.30", "0.03"),
				ticket("3000000", "4.26", "0.01"),
			},
			spot: d("4.25"),
			want: types.PortfolioSummary{
				TotalVolume:               d("4000000"),
				WeightedAverageRate:       d("4.27"),
				WeightedAveragePoints:     d("0.015"),
				TransactionCount:          2,
				TotalValueInQuoteCurrency: d("17080000"),
				TotalBenefitVsSpot:        d("80000"),
			},
		},
		{
			name: "indicative quotes without volume fall back to plain mean",
			tickets: []types.HedgeTicket{
				ticket("0", "4.30", "0.04"),
				ticket("0", "4.28", "0.02"),
				ticket("0", "4.26", "0"),
			},
			spot: d("4.25"),
			want: types.PortfolioSummary{
				TotalVolume:               decimal.Zero,
				WeightedAverageRate:       d("4.28"),
				WeightedAveragePoints:     d("0.02"),
				TransactionCount:          3,
				TotalValueInQuoteCurrency: decimal.Zero,
				TotalBenefitVsSpot:        decimal.Zero,
			},
		},
		{
			name: "client rate below spot gives negative benefit",
			tickets: []types.HedgeTicket{
				ticket("200000", "4.20", "-0.05"),
			},
			spot: d("4.25"),
			want: types.PortfolioSummary{
				TotalVolume:               d("200000"),
				WeightedAverageRate:       d("4.2"),
				WeightedAveragePoints:     d("-0.05"),
				TransactionCount:          1,
				TotalValueInQuoteCurrency: d("840000"),
				TotalBenefitVsSpot:        d("-10000"),
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CalculateWeightedSummary(tt.tickets, tt.spot)
			require.NoError(t, err)
			require.Equal(t, "", cmp.Diff(tt.want, got, decimalComparer))
		})
	}
}

func TestCalculateWeightedSummary_RejectsBadTickets(t *testing.T) {
	_, err := CalculateWeightedSummary([]types.HedgeTicket{ticket("-1", "4.3", "0")}, d("4.25"))
	require.ErrorIs(t, err, ErrInvalidMarketInput)

	_, err = CalculateWeightedSummary([]types.HedgeTicket{ticket("100", "0", "0")}, d("4.25"))
	require.ErrorIs(t, err, ErrInvalidMarketInput)
}

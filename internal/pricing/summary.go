package pricing

import (
	"fmt"

	"fxdesk/types"

	"github.com/shopspring/decimal"
)

// CalculateWeightedSummary aggregates hedge tickets into volume-weighted
// portfolio statistics against the given spot. When no ticket carries volume
// the averages fall back to plain means and the value fields stay zero.
func CalculateWeightedSummary(tickets []types.HedgeTicket, spot decimal.Decimal) (types.PortfolioSummary, error) {
	summary := types.PortfolioSummary{
		TotalVolume:               decimal.Zero,
		WeightedAverageRate:       decimal.Zero,
		WeightedAveragePoints:     decimal.Zero,
		TotalValueInQuoteCurrency: decimal.Zero,
		TotalBenefitVsSpot:        decimal.Zero,
	}
	if len(tickets) == 0 {
		return summary, nil
	}

	rateSum := decimal.Zero
	pointsSum := decimal.Zero
	weightedRate := decimal.Zero
	weightedPoints := decimal.Zero
	benefit := decimal.Zero

	for i, tk := range tickets {
		if tk.Notional.IsNegative() {
			return types.PortfolioSummary{}, fmt.Errorf("ticket %d notional %s: %w", i, tk.Notional, ErrInvalidMarketInput)
		}
		if !tk.ClientRate.IsPositive() {
			return types.PortfolioSummary{}, fmt.Errorf("ticket %d client rate %s: %w", i, tk.ClientRate, ErrInvalidMarketInput)
		}
		summary.TotalVolume = summary.TotalVolume.Add(tk.Notional)
		rateSum = rateSum.Add(tk.ClientRate)
		pointsSum = pointsSum.Add(tk.NetPoints)
		weightedRate = weightedRate.Add(tk.ClientRate.Mul(tk.Notional))
		weightedPoints = weightedPoints.Add(tk.NetPoints.Mul(tk.Notional))
		benefit = benefit.Add(tk.Notional.Mul(tk.ClientRate.Sub(spot)))
	}
	summary.TransactionCount = len(tickets)

	if summary.TotalVolume.IsZero() {
		count := decimal.NewFromInt(int64(len(tickets)))
		summary.WeightedAverageRate = rateSum.Div(count)
		summary.WeightedAveragePoints = pointsSum.Div(count)
		return summary, nil
	}

	summary.WeightedAverageRate = weightedRate.Div(summary.TotalVolume)
	summary.WeightedAveragePoints = weightedPoints.Div(summary.TotalVolume)
	summary.TotalValueInQuoteCurrency = weightedRate
	summary.TotalBenefitVsSpot = benefit
	return summary, nil
}

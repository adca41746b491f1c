package pricing

import (
	"fmt"
	"math"

	"fxdesk/types"

	"github.com/shopspring/decimal"
)

var (
	hundred      = decimal.NewFromInt(100)
	monthsInYear = decimal.NewFromInt(12)
)

// GenerateForwardPointsFromSpreads builds a theoretical forward-points curve
// from a yield differential. Yields are given in percent (5.42 for 5.42%) and
// bidAskSpread is a half-spread in rate units applied either side of mid.
func GenerateForwardPointsFromSpreads(spot, domesticYieldPct, foreignYieldPct, bidAskSpread decimal.Decimal) (map[types.Tenor]types.TenorPoint, error) {
	if bidAskSpread.IsNegative() {
		return nil, fmt.Errorf("bid/ask spread %s: %w", bidAskSpread, ErrInvalidMarketInput)
	}
	domestic := domesticYieldPct.Div(hundred)
	foreign := foreignYieldPct.Div(hundred)

	out := make(map[types.Tenor]types.TenorPoint, len(types.Tenors))
	for _, tenor := range types.Tenors {
		fwd, err := CalculateForwardRate(spot, domestic, foreign, tenor.Days())
		if err != nil {
			return nil, fmt.Errorf("tenor %s: %w", tenor, err)
		}
		mid := fwd.Sub(spot)
		out[tenor] = types.TenorPoint{
			Tenor: tenor,
			Bid:   mid.Sub(bidAskSpread),
			Ask:   mid.Add(bidAskSpread),
			Mid:   mid,
		}
	}
	return out, nil
}

// CalculateClosingCost estimates the cost of unwinding a hedge early as a
// tenor-weighted share of the ask points. The sign follows the points and the
// magnitude never shrinks as the tenor grows.
func CalculateClosingCost(askPoints decimal.Decimal, tenorMonths int, closingCostFactor decimal.Decimal) (decimal.Decimal, error) {
	if tenorMonths < 0 {
		return decimal.Zero, fmt.Errorf("tenor of %d months: %w", tenorMonths, ErrInvalidMarketInput)
	}
	return askPoints.
		Mul(closingCostFactor).
		Mul(decimal.NewFromInt(int64(tenorMonths))).
		Div(monthsInYear), nil
}

// CalculateSwapRisk combines unwind cost and accrued points into one exposure
// magnitude, scaled by sqrt(windowDays/horizonDays) and never below floor.
func CalculateSwapRisk(closingCost, pointsToWindow decimal.Decimal, windowDays int, cfg *Config) (decimal.Decimal, error) {
	if cfg == nil || cfg.SwapRiskHorizonDays <= 0 {
		return decimal.Zero, fmt.Errorf("swap risk horizon not configured: %w", ErrInvalidMarketInput)
	}
	if windowDays < 0 {
		return decimal.Zero, fmt.Errorf("window of %d days: %w", windowDays, ErrInvalidMarketInput)
	}
	timeScale := math.Sqrt(float64(windowDays) / float64(cfg.SwapRiskHorizonDays))
	risk := closingCost.Abs().
		Add(pointsToWindow.Abs()).
		Mul(cfg.SwapRiskScale).
		Mul(decimal.NewFromFloat(timeScale))
	if risk.LessThan(cfg.SwapRiskFloor) {
		return cfg.SwapRiskFloor, nil
	}
	return risk, nil
}

package pricing

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

const daysPerYear = 365.0

var (
	one      = decimal.NewFromInt(1)
	minusOne = decimal.NewFromInt(-1)
)

// CalculateForwardRate prices an outright forward by covered interest parity,
// compounding annually over an ACT/365 year fraction:
//
//	spot * ((1+domestic)/(1+foreign))^(days/365)
//
// Non-positive day counts return spot unchanged.
func CalculateForwardRate(spot, domesticRate, foreignRate decimal.Decimal, days int) (decimal.Decimal, error) {
	if days <= 0 {
		return spot, nil
	}
	if !foreignRate.GreaterThan(minusOne) {
		return decimal.Zero, fmt.Errorf("foreign rate %s: %w", foreignRate, ErrInvalidMarketInput)
	}
	if !domesticRate.GreaterThan(minusOne) {
		return decimal.Zero, fmt.Errorf("domestic rate %s: %w", domesticRate, ErrInvalidMarketInput)
	}
	if domesticRate.Equal(foreignRate) {
		return spot, nil
	}

	ratio := one.Add(domesticRate).Div(one.Add(foreignRate))
	factor := math.Pow(ratio.InexactFloat64(), float64(days)/daysPerYear)
	if math.IsNaN(factor) || math.IsInf(factor, 0) {
		return decimal.Zero, fmt.Errorf("forward factor for %d days: %w", days, ErrInvalidMarketInput)
	}
	return spot.Mul(decimal.NewFromFloat(factor)), nil
}

// CalculateForwardToWindow is the fair internal rate at the window boundary,
// before any margin is taken.
func CalculateForwardToWindow(spot, pointsToWindow decimal.Decimal) decimal.Decimal {
	return spot.Add(pointsToWindow)
}

// CalculateForwardClient is the rate shown to the client:
// spot + points*windowFactor - swapRisk*riskFactor.
func CalculateForwardClient(spot, pointsToWindow, swapRisk, windowFactor, riskFactor decimal.Decimal) (decimal.Decimal, error) {
	if err := checkUnitFactor("window factor", windowFactor); err != nil {
		return decimal.Zero, err
	}
	if err := checkUnitFactor("risk factor", riskFactor); err != nil {
		return decimal.Zero, err
	}
	return spot.
		Add(pointsToWindow.Mul(windowFactor)).
		Sub(swapRisk.Mul(riskFactor)), nil
}

// CalculateProfitToWindow returns the margin as a fraction of the fair rate.
func CalculateProfitToWindow(fwdToWindow, fwdClient decimal.Decimal) (decimal.Decimal, error) {
	if fwdToWindow.IsZero() {
		return decimal.Zero, fmt.Errorf("forward to window is zero: %w", ErrUndefinedRatio)
	}
	return fwdToWindow.Sub(fwdClient).Div(fwdToWindow), nil
}

func CalculateNetWorst(profitToWindow, netWorstFactor decimal.Decimal) decimal.Decimal {
	return profitToWindow.Mul(netWorstFactor)
}

func CalculateNetWorstNominal(netWorst, notional decimal.Decimal) (decimal.Decimal, error) {
	if notional.IsNegative() {
		return decimal.Zero, fmt.Errorf("notional %s: %w", notional, ErrInvalidMarketInput)
	}
	return netWorst.Mul(notional), nil
}

func CalculatePotentialProfit(netWorstNominal, potentialProfitFactor decimal.Decimal) decimal.Decimal {
	return netWorstNominal.Mul(potentialProfitFactor)
}

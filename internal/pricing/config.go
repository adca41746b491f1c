package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Config holds the bank-margin calibration applied by Engine.
type Config struct {
	WindowFactor          decimal.Decimal
	RiskFactor            decimal.Decimal
	SwapRiskScale         decimal.Decimal
	SwapRiskHorizonDays   int
	SwapRiskFloor         decimal.Decimal
	ClosingCostFactor     decimal.Decimal
	NetWorstFactor        decimal.Decimal
	PotentialProfitFactor decimal.Decimal
}

func DefaultConfig() *Config {
	return &Config{
		WindowFactor:          decimal.RequireFromString("0.75"),
		RiskFactor:            decimal.RequireFromString("0.40"),
		SwapRiskScale:         decimal.RequireFromString("0.25"),
		SwapRiskHorizonDays:   90,
		SwapRiskFloor:         decimal.RequireFromString("0.0001"),
		ClosingCostFactor:     decimal.RequireFromString("0.5"),
		NetWorstFactor:        decimal.RequireFromString("0.5"),
		PotentialProfitFactor: decimal.NewFromInt(1),
	}
}

func (c *Config) Validate() error {
	if err := checkUnitFactor("window factor", c.WindowFactor); err != nil {
		return err
	}
	if err := checkUnitFactor("risk factor", c.RiskFactor); err != nil {
		return err
	}
	if c.SwapRiskHorizonDays <= 0 {
		return fmt.Errorf("swap risk horizon %d days: %w", c.SwapRiskHorizonDays, ErrInvalidMarketInput)
	}
	if !c.SwapRiskFloor.IsPositive() {
		return fmt.Errorf("swap risk floor %s must be positive: %w", c.SwapRiskFloor, ErrInvalidMarketInput)
	}
	if c.SwapRiskScale.IsNegative() || c.ClosingCostFactor.IsNegative() ||
		c.NetWorstFactor.IsNegative() || c.PotentialProfitFactor.IsNegative() {
		return fmt.Errorf("scaling factors must be non-negative: %w", ErrInvalidMarketInput)
	}
	return nil
}

func checkUnitFactor(name string, f decimal.Decimal) error {
	if f.IsNegative() || f.GreaterThan(one) {
		return fmt.Errorf("%s %s outside [0,1]: %w", name, f, ErrInvalidMarketInput)
	}
	return nil
}

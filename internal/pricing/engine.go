package pricing

import (
	"fxdesk/types"

	"github.com/shopspring/decimal"
)

// Engine applies a fixed calibration to the pricing formulas. It holds no
// mutable state and is safe for concurrent use.
type Engine struct {
	cfg *Config
}

func NewEngine(cfg *Config) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Engine{cfg: cfg}, nil
}

func (e *Engine) Config() Config {
	return *e.cfg
}

func (e *Engine) ForwardRate(q types.MarketQuote, days int) (decimal.Decimal, error) {
	return CalculateForwardRate(q.Spot, q.DomesticYield, q.ForeignYield, days)
}

func (e *Engine) ClosingCost(askPoints decimal.Decimal, tenorMonths int) (decimal.Decimal, error) {
	return CalculateClosingCost(askPoints, tenorMonths, e.cfg.ClosingCostFactor)
}

func (e *Engine) SwapRisk(closingCost, pointsToWindow decimal.Decimal, windowDays int) (decimal.Decimal, error) {
	return CalculateSwapRisk(closingCost, pointsToWindow, windowDays, e.cfg)
}

// ForwardClient prices the client rate with the configured window and risk factors.
func (e *Engine) ForwardClient(spot, pointsToWindow, swapRisk decimal.Decimal) (decimal.Decimal, error) {
	return CalculateForwardClient(spot, pointsToWindow, swapRisk, e.cfg.WindowFactor, e.cfg.RiskFactor)
}

func (e *Engine) NetWorst(profitToWindow decimal.Decimal) decimal.Decimal {
	return CalculateNetWorst(profitToWindow, e.cfg.NetWorstFactor)
}

func (e *Engine) PotentialProfit(netWorstNominal decimal.Decimal) decimal.Decimal {
	return CalculatePotentialProfit(netWorstNominal, e.cfg.PotentialProfitFactor)
}

func (e *Engine) Summary(tickets []types.HedgeTicket, spot decimal.Decimal) (types.PortfolioSummary, error) {
	return CalculateWeightedSummary(tickets, spot)
}

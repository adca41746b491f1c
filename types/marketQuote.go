package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// MarketQuote is the market snapshot a single pricing call works from.
// Yields are annualized fractions (0.0542 for 5.42%).
type MarketQuote struct {
	Pair          string          `json:"pair"`
	Spot          decimal.Decimal `json:"spot"`
	DomesticYield decimal.Decimal `json:"domesticYield"`
	ForeignYield  decimal.Decimal `json:"foreignYield"`
	AsOf          time.Time       `json:"asOf"`
}

// TenorPoint holds forward points for one maturity bucket, in rate units
// (already divided by 10,000 when the source quotes pips).
type TenorPoint struct {
	Tenor Tenor           `json:"tenor"`
	Bid   decimal.Decimal `json:"bid"`
	Ask   decimal.Decimal `json:"ask"`
	Mid   decimal.Decimal `json:"mid"`
}

type PointSide string

const (
	SideBid PointSide = "BID"
	SideMid PointSide = "MID"
	SideAsk PointSide = "ASK"
)

func (p TenorPoint) Side(side PointSide) decimal.Decimal {
	switch side {
	case SideBid:
		return p.Bid
	case SideAsk:
		return p.Ask
	default:
		return p.Mid
	}
}

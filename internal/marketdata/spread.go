package marketdata

import (
	"context"
	"fmt"

	"fxdesk/internal/pricing"
	"fxdesk/types"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// SpreadSource derives a synthetic curve from spot and yields when no
// quoted forward points are available.
type SpreadSource struct {
	Quotes map[string]types.MarketQuote
	Spread decimal.Decimal
}

func (s SpreadSource) ForwardPoints(ctx context.Context, pair string) ([]types.TenorPoint, error) {
	q, ok := s.Quotes[pair]
	if !ok {
		return nil, fmt.Errorf("%s: %w", pair, ErrUnknownPair)
	}
	curve, err := pricing.GenerateForwardPointsFromSpreads(q.Spot, q.DomesticYield.Mul(hundred), q.ForeignYield.Mul(hundred), s.Spread)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", pair, err)
	}
	return pricing.SortedCurve(curve), nil
}

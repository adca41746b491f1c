package marketdata

import (
	"context"
	"errors"

	"fxdesk/types"

	"github.com/shopspring/decimal"
)

var (
	ErrNoPoints    = errors.New("no forward points found")
	ErrUnknownPair = errors.New("pair not quoted by source")
)

// ForwardPointSource is the single boundary through which forward points enter
// the system. Implementations return points in rate units, ordered by tenor.
type ForwardPointSource interface {
	ForwardPoints(ctx context.Context, pair string) ([]types.TenorPoint, error)
}

var pipsPerUnit = decimal.NewFromInt(10000)

// PipsToRate converts a pip quote (12.5) into a rate offset (0.00125).
func PipsToRate(pips decimal.Decimal) decimal.Decimal {
	return pips.Div(pipsPerUnit)
}

func RateToPips(rate decimal.Decimal) decimal.Decimal {
	return rate.Mul(pipsPerUnit)
}

func tenorIndex(t types.Tenor) int {
	for i, known := range types.Tenors {
		if known == t {
			return i
		}
	}
	return len(types.Tenors)
}

package pricing

import "errors"

var (
	// ErrInvalidMarketInput marks an out-of-domain input such as a rate at or
	// below -100%, a negative notional or a factor outside [0,1].
	ErrInvalidMarketInput = errors.New("invalid market input")
	// ErrUndefinedRatio marks a ratio whose denominator is zero.
	ErrUndefinedRatio = errors.New("undefined ratio")
)

package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestNewEngine(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr error
	}{
		{"defaults", func(c *Config) {}, nil},
		{"window factor above one", func(c *Config) { c.WindowFactor = d("1.5") }, ErrInvalidMarketInput},
		{"negative risk factor", func(c *Config) { c.RiskFactor = d("-0.1") }, ErrInvalidMarketInput},
		{"zero horizon", func(c *Config) { c.SwapRiskHorizonDays = 0 }, ErrInvalidMarketInput},
		{"zero floor", func(c *Config) { c.SwapRiskFloor = decimal.Zero }, ErrInvalidMarketInput},
		{"negative closing factor", func(c *Config) { c.ClosingCostFactor = d("-1") }, ErrInvalidMarketInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			_, err := NewEngine(cfg)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestEngine_UsesConfiguredFactors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.WindowFactor = d("0.5")
	cfg.RiskFactor = d("0")
	cfg.NetWorstFactor = d("0.25")
	cfg.PotentialProfitFactor = d("0.8")
	engine, err := NewEngine(cfg)
	require.NoError(t, err)

	client, err := engine.ForwardClient(d("4.00"), d("0.04"), d("0.01"))
	require.NoError(t, err)
	require.True(t, client.Equal(d("4.02")), client.String())

	require.True(t, engine.NetWorst(d("0.01")).Equal(d("0.0025")))
	require.True(t, engine.PotentialProfit(d("1000")).Equal(d("800")))
}

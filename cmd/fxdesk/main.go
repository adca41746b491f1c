package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"fxdesk/internal/config"
	"fxdesk/internal/logger"
	"fxdesk/internal/marketdata"
	"fxdesk/internal/pricing"
	"fxdesk/internal/repository"
	"fxdesk/types"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cfg    *config.Config
	engine *pricing.Engine
	log    *zap.SugaredLogger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "fxdesk",
	Short:         "FX forward pricing and hedge-book toolkit",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		configFile, _ := cmd.Flags().GetString("config")
		cfg, err = config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		pricingCfg, err := cfg.Pricing.Engine()
		if err != nil {
			return fmt.Errorf("invalid pricing config: %w", err)
		}
		engine, err = pricing.NewEngine(pricingCfg)
		if err != nil {
			return err
		}
		log = logger.New()
		cmd.SetContext(logger.WithContext(cmd.Context(), log))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if log != nil {
			_ = log.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file path (default: ./config/fxdesk.yaml)")
	addMarketFlags(rootCmd)
}

func addMarketFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.String("pair", "", "currency pair (default from desk.pair)")
	flags.String("spot", "", "spot rate (default from desk.spot)")
	flags.String("domestic-yield", "", "annualized domestic yield as a fraction (default from desk.domestic_yield)")
	flags.String("foreign-yield", "", "annualized foreign yield as a fraction (default from desk.foreign_yield)")
	flags.String("as-of", "", "valuation date YYYY-MM-DD (default today)")
}

// flagOr returns the flag value when set and fallback otherwise.
func flagOr(cmd *cobra.Command, name, fallback string) string {
	if v, _ := cmd.Flags().GetString(name); strings.TrimSpace(v) != "" {
		return v
	}
	return fallback
}

func decimalFlag(cmd *cobra.Command, name, fallback string) (decimal.Decimal, error) {
	return config.Decimal(name, flagOr(cmd, name, fallback))
}

func marketQuote(cmd *cobra.Command) (types.MarketQuote, error) {
	spot, err := decimalFlag(cmd, "spot", cfg.Desk.Spot)
	if err != nil {
		return types.MarketQuote{}, err
	}
	domestic, err := decimalFlag(cmd, "domestic-yield", cfg.Desk.DomesticYield)
	if err != nil {
		return types.MarketQuote{}, err
	}
	foreign, err := decimalFlag(cmd, "foreign-yield", cfg.Desk.ForeignYield)
	if err != nil {
		return types.MarketQuote{}, err
	}
	asOf, err := asOfDate(cmd)
	if err != nil {
		return types.MarketQuote{}, err
	}
	return types.MarketQuote{
		Pair:          flagOr(cmd, "pair", cfg.Desk.Pair),
		Spot:          spot,
		DomesticYield: domestic,
		ForeignYield:  foreign,
		AsOf:          asOf,
	}, nil
}

func asOfDate(cmd *cobra.Command) (time.Time, error) {
	raw := flagOr(cmd, "as-of", "")
	if raw == "" {
		now := time.Now().UTC()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("as-of %q: %w", raw, err)
	}
	return t, nil
}

// pointSource prefers the configured forward-rates page and falls back to a
// curve derived from the desk yields.
func pointSource(quote types.MarketQuote) (marketdata.ForwardPointSource, error) {
	if cfg.MarketData.URLTemplate != "" {
		return marketdata.NewHTMLTableSource(cfg.MarketData.URLTemplate), nil
	}
	spread, err := config.Decimal("marketdata.spread", cfg.MarketData.Spread)
	if err != nil {
		return nil, err
	}
	return marketdata.SpreadSource{
		Quotes: map[string]types.MarketQuote{quote.Pair: quote},
		Spread: spread,
	}, nil
}

func openDatabase(ctx context.Context) (*repository.Database, error) {
	db, err := repository.NewDatabase(ctx, cfg.Database.URL)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	return db, nil
}

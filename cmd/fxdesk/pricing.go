package main

import (
	"fmt"
	"strings"

	"fxdesk/internal/config"
	"fxdesk/internal/marketdata"
	"fxdesk/internal/pricing"
	"fxdesk/internal/quotes"
	"fxdesk/types"

	"github.com/spf13/cobra"
)

// --- Forward Command ---

var forwardCmd = &cobra.Command{
	Use:   "forward",
	Short: "Price the covered-interest-parity forward for a number of days",
	RunE: func(cmd *cobra.Command, args []string) error {
		days, _ := cmd.Flags().GetInt("days")
		quote, err := marketQuote(cmd)
		if err != nil {
			return err
		}
		fwd, err := engine.ForwardRate(quote, days)
		if err != nil {
			return err
		}
		fmt.Printf("%s forward %dd: %s (points %s)\n", quote.Pair, days, fwd.StringFixed(6), fwd.Sub(quote.Spot).StringFixed(6))
		return nil
	},
}

// --- Points Command ---

var pointsCmd = &cobra.Command{
	Use:   "points",
	Short: "Show the forward-point curve for the desk pair",
	RunE: func(cmd *cobra.Command, args []string) error {
		quote, err := marketQuote(cmd)
		if err != nil {
			return err
		}
		src, err := pointSource(quote)
		if err != nil {
			return err
		}
		curve, err := src.ForwardPoints(cmd.Context(), quote.Pair)
		if err != nil {
			return err
		}
		printCurve(quote.Pair, curve)
		return nil
	},
}

func printCurve(pair string, curve []types.TenorPoint) {
	fmt.Printf("%s forward points (pips)\n", pair)
	fmt.Printf("%-5s %10s %10s %10s\n", "Tenor", "Bid", "Mid", "Ask")
	for _, p := range curve {
		fmt.Printf("%-5s %10s %10s %10s\n", p.Tenor,
			marketdata.RateToPips(p.Bid).StringFixed(2),
			marketdata.RateToPips(p.Mid).StringFixed(2),
			marketdata.RateToPips(p.Ask).StringFixed(2))
	}
}

// --- Quote Command ---

var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Quote a window forward for a client",
	RunE: func(cmd *cobra.Command, args []string) error {
		window, _ := cmd.Flags().GetInt("window")
		save, _ := cmd.Flags().GetBool("save")
		sideFlag, _ := cmd.Flags().GetString("side")
		notionalFlag, _ := cmd.Flags().GetString("notional")

		notional, err := config.Decimal("notional", notionalFlag)
		if err != nil {
			return err
		}
		side := types.PointSide(strings.ToUpper(sideFlag))
		switch side {
		case types.SideBid, types.SideMid, types.SideAsk:
		default:
			return fmt.Errorf("side %q: %w", sideFlag, pricing.ErrInvalidMarketInput)
		}

		quote, err := marketQuote(cmd)
		if err != nil {
			return err
		}
		src, err := pointSource(quote)
		if err != nil {
			return err
		}
		curve, err := src.ForwardPoints(cmd.Context(), quote.Pair)
		if err != nil {
			return err
		}

		wq, err := engine.QuoteWindow(pricing.QuoteRequest{
			Market:     quote,
			Curve:      curve,
			WindowDays: window,
			Notional:   notional,
			Side:       side,
		})
		if err != nil {
			return err
		}
		printWindowQuote(wq)

		if !save {
			return nil
		}
		ticket, err := wq.Ticket()
		if err != nil {
			return err
		}
		db, err := openDatabase(cmd.Context())
		if err != nil {
			return err
		}
		defer db.Close()
		list, err := quotes.LoadQuoteList(cmd.Context(), engine, db)
		if err != nil {
			return err
		}
		if err := list.Add(cmd.Context(), ticket); err != nil {
			return err
		}
		log.Infow("ticket saved", "id", ticket.ID, "pair", ticket.Pair, "tickets", list.Len())
		fmt.Printf("Saved ticket %s\n", ticket.ID)
		return nil
	},
}

func printWindowQuote(q pricing.WindowQuote) {
	fmt.Println("===== Window Forward Quote =====")
	fmt.Printf("Pair:                  %s\n", q.Pair)
	fmt.Printf("Spot:                  %s\n", q.Spot.StringFixed(4))
	fmt.Printf("Open / Settlement:     %s / %s\n", q.OpenDate.Format("2006-01-02"), q.SettlementDate.Format("2006-01-02"))
	fmt.Printf("Window:                %d business days (%d calendar)\n", q.WindowDays, q.DaysToMaturity)
	fmt.Printf("Notional:              %s\n", q.Notional.StringFixed(2))

	fmt.Println("\n-- Points --")
	fmt.Printf("Points to Window:      %s\n", q.PointsToWindow.StringFixed(6))
	fmt.Printf("Closing Cost:          %s\n", q.ClosingCost.StringFixed(6))
	fmt.Printf("Swap Risk:             %s\n", q.SwapRisk.StringFixed(6))

	fmt.Println("\n-- Rates --")
	fmt.Printf("Forward to Window:     %s\n", q.ForwardToWindow.StringFixed(6))
	fmt.Printf("Forward Client:        %s\n", q.ForwardClient.StringFixed(6))

	fmt.Println("\n-- Margin --")
	fmt.Printf("Profit to Window:      %s\n", q.ProfitToWindow.StringFixed(6))
	fmt.Printf("Net Worst:             %s\n", q.NetWorst.StringFixed(6))
	fmt.Printf("Net Worst Nominal:     %s\n", q.NetWorstNominal.StringFixed(2))
	fmt.Printf("Potential Profit:      %s\n", q.PotentialProfit.StringFixed(2))
	fmt.Println("================================")
}

func init() {
	forwardCmd.Flags().Int("days", 90, "days to maturity")

	quoteCmd.Flags().Int("window", 30, "window length in business days")
	quoteCmd.Flags().String("notional", "1000000", "notional in base currency")
	quoteCmd.Flags().String("side", "ask", "curve side: bid, mid or ask")
	quoteCmd.Flags().Bool("save", false, "add the ticket to the stored quote list")

	rootCmd.AddCommand(forwardCmd)
	rootCmd.AddCommand(pointsCmd)
	rootCmd.AddCommand(quoteCmd)
}

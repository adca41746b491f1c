package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"fxdesk/internal/config"
	"fxdesk/internal/coverage"
	"fxdesk/internal/marketdata"
	"fxdesk/internal/pricing"
	"fxdesk/internal/reporting"
	"fxdesk/types"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// --- Plan Command ---

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Propose a rolling monthly hedge plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		months, _ := cmd.Flags().GetInt("months")
		volumeFlag, _ := cmd.Flags().GetString("volume")
		existingPath, _ := cmd.Flags().GetString("existing")
		csvPath, _ := cmd.Flags().GetString("csv")

		volume, err := config.Decimal("volume", volumeFlag)
		if err != nil {
			return err
		}
		target, err := config.Decimal("target", flagOr(cmd, "target", cfg.Desk.BudgetRate))
		if err != nil {
			return err
		}
		quote, err := marketQuote(cmd)
		if err != nil {
			return err
		}

		proposed, err := pricing.BuildHedgePlan(pricing.PlanRequest{
			Spot:          quote.Spot,
			Months:        months,
			MonthlyVolume: volume,
			Today:         quote.AsOf,
		})
		if err != nil {
			return err
		}

		var existing []types.PlanEntry
		if existingPath != "" {
			f, err := os.Open(existingPath)
			if err != nil {
				return err
			}
			defer f.Close()
			existing, err = reporting.ReadExistingHedges(f)
			if err != nil {
				return err
			}
		}

		plan := pricing.CombinePlan(existing, proposed)
		reporting.PrintPlanOverview(os.Stdout,
			pricing.SummarizePlan(plan, target, quote.AsOf),
			pricing.MonthlyAnalysis(plan))
		if csvPath == "" {
			return nil
		}
		return reporting.WriteCSVFile(csvPath, func(w io.Writer) error {
			return reporting.WritePlanCSV(w, plan)
		})
	},
}

// --- Coverage Command ---

var coverageCmd = &cobra.Command{
	Use:   "coverage",
	Short: "Match unpaid payments against booked hedges",
	RunE: func(cmd *cobra.Command, args []string) error {
		csvPath, _ := cmd.Flags().GetString("csv")
		quote, err := marketQuote(cmd)
		if err != nil {
			return err
		}

		db, err := openDatabase(cmd.Context())
		if err != nil {
			return err
		}
		defer db.Close()

		payments, err := db.ListUnpaidPayments(cmd.Context())
		if err != nil {
			return err
		}
		hedges, err := db.ListHedges(cmd.Context())
		if err != nil {
			return err
		}
		clients, err := db.ListClients(cmd.Context())
		if err != nil {
			return err
		}
		budgets := make(map[string]decimal.Decimal, len(clients))
		for _, c := range clients {
			budgets[c.Name] = c.BudgetRate
		}

		rows := coverage.MonthlyCoverage(payments, hedges)
		fmt.Printf("%-20s %14s %14s %14s %9s %14s\n", "Client", "FX Need", "Hedged", "To Hedge", "Cover %", "Gap vs Budget")
		for _, s := range coverage.ClientCoverage(rows) {
			gap := "-"
			if budget, ok := budgets[s.ClientName]; ok && budget.IsPositive() {
				gap = coverage.ValuationGap(s.ToHedge, budget, quote.Spot).StringFixed(2)
			}
			fmt.Printf("%-20s %14s %14s %14s %8s%% %14s\n", s.ClientName,
				s.FxNeed.StringFixed(0), s.HedgedVolume.StringFixed(0), s.ToHedge.StringFixed(0),
				s.CoveragePct.StringFixed(2), gap)
		}

		if csvPath == "" {
			return nil
		}
		return reporting.WriteCSVFile(csvPath, func(w io.Writer) error {
			return reporting.WriteCoverageCSV(w, rows)
		})
	},
}

// --- Import Command ---

var importHedgesCmd = &cobra.Command{
	Use:   "import-hedges [file.csv]",
	Short: "Book hedges from a Maturity Date / Volume (EUR) / Rate sheet",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _ := cmd.Flags().GetString("client")
		currency, _ := cmd.Flags().GetString("currency")
		if strings.TrimSpace(client) == "" {
			return fmt.Errorf("--client is required")
		}

		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		entries, err := reporting.ReadExistingHedges(f)
		if err != nil {
			return err
		}

		db, err := openDatabase(cmd.Context())
		if err != nil {
			return err
		}
		defer db.Close()

		err = reporting.TrackImport(os.Stderr, len(entries), "Importing hedges...", func(i int) error {
			e := entries[i]
			_, err := db.CreateHedge(cmd.Context(), types.Hedge{
				ClientName: client,
				HedgeType:  types.HedgeForward,
				Notional:   e.Volume,
				Currency:   currency,
				Strike:     e.Rate,
				Maturity:   e.MaturityDate,
				Premium:    decimal.Zero,
			})
			return err
		})
		if err != nil {
			return err
		}
		log.Infow("hedges imported", "client", client, "count", len(entries))
		return nil
	},
}

// --- Clients & Payments Commands ---

var clientsCmd = &cobra.Command{
	Use:   "clients",
	Short: "Manage clients",
}

var clientsAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Register a client",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		currency, _ := cmd.Flags().GetString("currency")
		budgetFlag, _ := cmd.Flags().GetString("budget-rate")
		profile, _ := cmd.Flags().GetString("risk-profile")
		budget, err := config.Decimal("budget-rate", budgetFlag)
		if err != nil {
			return err
		}

		db, err := openDatabase(cmd.Context())
		if err != nil {
			return err
		}
		defer db.Close()
		c, err := db.CreateClient(cmd.Context(), types.Client{
			Name:         args[0],
			BaseCurrency: currency,
			BudgetRate:   budget,
			RiskProfile:  types.RiskProfile(strings.ToUpper(profile)),
		})
		if err != nil {
			return err
		}
		fmt.Printf("Client %d: %s\n", c.Id, c.Name)
		return nil
	},
}

var clientsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List clients",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDatabase(cmd.Context())
		if err != nil {
			return err
		}
		defer db.Close()
		clients, err := db.ListClients(cmd.Context())
		if err != nil {
			return err
		}
		for _, c := range clients {
			fmt.Printf("%-4d %-24s %-4s %-9s %s\n", c.Id, c.Name, c.BaseCurrency, c.RiskProfile, c.BudgetRate.StringFixed(4))
		}
		return nil
	},
}

var paymentsCmd = &cobra.Command{
	Use:   "payments",
	Short: "Manage expected client payments",
}

var paymentsAddCmd = &cobra.Command{
	Use:   "add [client] [amount] [YYYY-MM-DD]",
	Short: "Record an expected payment",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		currency, _ := cmd.Flags().GetString("currency")
		outgoing, _ := cmd.Flags().GetBool("outgoing")
		amount, err := config.Decimal("amount", args[1])
		if err != nil {
			return err
		}
		date, err := time.Parse("2006-01-02", args[2])
		if err != nil {
			return fmt.Errorf("payment date %q: %w", args[2], err)
		}
		direction := types.DirectionIncoming
		if outgoing {
			direction = types.DirectionOutgoing
		}

		db, err := openDatabase(cmd.Context())
		if err != nil {
			return err
		}
		defer db.Close()
		id, err := db.CreatePayment(cmd.Context(), types.Payment{
			ClientName:  args[0],
			Amount:      amount,
			Currency:    currency,
			Direction:   direction,
			PaymentDate: date,
		})
		if err != nil {
			return err
		}
		fmt.Printf("Payment %d recorded\n", id)
		return nil
	},
}

var paymentsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List payments",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDatabase(cmd.Context())
		if err != nil {
			return err
		}
		defer db.Close()
		payments, err := db.ListPayments(cmd.Context())
		if err != nil {
			return err
		}
		for _, p := range payments {
			fmt.Printf("%-4d %-24s %s %14s %-3s %-8s %s\n", p.Id, p.ClientName,
				p.PaymentDate.Format("2006-01-02"), p.Signed().StringFixed(2), p.Currency, p.Direction, p.Status)
		}
		return nil
	},
}

// --- Scrape Command ---

var scrapeCmd = &cobra.Command{
	Use:   "scrape [pair...]",
	Short: "Fetch forward points for several pairs concurrently",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.MarketData.URLTemplate == "" {
			return fmt.Errorf("marketdata.url_template is not configured")
		}
		src := marketdata.NewHTMLTableSource(cfg.MarketData.URLTemplate)
		curves, err := marketdata.FetchAll(cmd.Context(), src, args)
		if err != nil {
			return err
		}
		for _, pair := range args {
			printCurve(pair, curves[pair])
			fmt.Println()
		}
		return nil
	},
}

func init() {
	planCmd.Flags().Int("months", 12, "number of monthly maturities (1-24)")
	planCmd.Flags().String("volume", "100000", "volume per month")
	planCmd.Flags().String("target", "", "target rate (default from desk.budget_rate)")
	planCmd.Flags().String("existing", "", "CSV of already booked hedges")
	planCmd.Flags().String("csv", "", "write the combined plan to this CSV file")

	coverageCmd.Flags().String("csv", "", "write the monthly coverage to this CSV file")

	importHedgesCmd.Flags().String("client", "", "client the hedges belong to")
	importHedgesCmd.Flags().String("currency", "EUR", "hedge currency")

	clientsAddCmd.Flags().String("currency", "EUR", "base currency")
	clientsAddCmd.Flags().String("budget-rate", "0", "budget rate")
	clientsAddCmd.Flags().String("risk-profile", string(types.RiskProfileModerate), "LOW, MODERATE or HIGH")
	clientsCmd.AddCommand(clientsAddCmd)
	clientsCmd.AddCommand(clientsListCmd)

	paymentsAddCmd.Flags().String("currency", "EUR", "payment currency")
	paymentsAddCmd.Flags().Bool("outgoing", false, "payment leaves the client")
	paymentsCmd.AddCommand(paymentsAddCmd)
	paymentsCmd.AddCommand(paymentsListCmd)

	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(coverageCmd)
	rootCmd.AddCommand(importHedgesCmd)
	rootCmd.AddCommand(clientsCmd)
	rootCmd.AddCommand(paymentsCmd)
	rootCmd.AddCommand(scrapeCmd)
}

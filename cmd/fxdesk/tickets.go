package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"fxdesk/internal/quotes"
	"fxdesk/internal/reporting"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// withQuoteList opens the database backed quote list for the duration of fn.
func withQuoteList(ctx context.Context, fn func(list *quotes.QuoteList) error) error {
	db, err := openDatabase(ctx)
	if err != nil {
		return err
	}
	defer db.Close()
	list, err := quotes.LoadQuoteList(ctx, engine, db)
	if err != nil {
		return err
	}
	return fn(list)
}

var ticketsCmd = &cobra.Command{
	Use:   "tickets",
	Short: "Manage the stored quote list",
}

var ticketsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored tickets",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withQuoteList(cmd.Context(), func(list *quotes.QuoteList) error {
			return reporting.WriteTicketsCSV(os.Stdout, list.Tickets())
		})
	},
}

var ticketsRemoveCmd = &cobra.Command{
	Use:   "remove [ticket-id]",
	Short: "Remove one ticket",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("ticket id %q: %w", args[0], err)
		}
		return withQuoteList(cmd.Context(), func(list *quotes.QuoteList) error {
			if err := list.Remove(cmd.Context(), id); err != nil {
				return err
			}
			log.Infow("ticket removed", "id", id, "tickets", list.Len())
			return nil
		})
	},
}

var ticketsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every ticket",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withQuoteList(cmd.Context(), func(list *quotes.QuoteList) error {
			return list.Clear(cmd.Context())
		})
	},
}

// --- Summary Command ---

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Weighted summary of the stored quote list",
	RunE: func(cmd *cobra.Command, args []string) error {
		csvPath, _ := cmd.Flags().GetString("csv")
		quote, err := marketQuote(cmd)
		if err != nil {
			return err
		}
		return withQuoteList(cmd.Context(), func(list *quotes.QuoteList) error {
			summary, err := list.Summary(quote.Spot)
			if err != nil {
				return err
			}
			tickets := list.Tickets()
			report, err := reporting.NewReport(quote.Pair, quote.Spot, summary, tickets)
			if err != nil {
				return err
			}
			reporting.PrintReport(os.Stdout, report)
			if csvPath == "" {
				return nil
			}
			return reporting.WriteCSVFile(csvPath, func(w io.Writer) error {
				return reporting.WriteTicketsCSV(w, tickets)
			})
		})
	},
}

// --- Migrate Command ---

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the hedge-book tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDatabase(cmd.Context())
		if err != nil {
			return err
		}
		defer db.Close()
		if err := db.Migrate(cmd.Context()); err != nil {
			return err
		}
		log.Info("schema up to date")
		return nil
	},
}

func init() {
	summaryCmd.Flags().String("csv", "", "also write the tickets to this CSV file")

	ticketsCmd.AddCommand(ticketsListCmd)
	ticketsCmd.AddCommand(ticketsRemoveCmd)
	ticketsCmd.AddCommand(ticketsClearCmd)

	rootCmd.AddCommand(ticketsCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(migrateCmd)
}

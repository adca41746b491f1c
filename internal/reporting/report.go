package reporting

import (
	"fmt"
	"io"

	"fxdesk/internal/pricing"
	"fxdesk/types"

	"github.com/montanaflynn/stats"
	"github.com/shopspring/decimal"
)

type Report struct {
	Pair      string
	Spot      decimal.Decimal
	Summary   types.PortfolioSummary
	MinRate   decimal.Decimal
	MaxRate   decimal.Decimal
	RateStdev decimal.Decimal
}

func NewReport(pair string, spot decimal.Decimal, summary types.PortfolioSummary, tickets []types.HedgeTicket) (*Report, error) {
	report := &Report{Pair: pair, Spot: spot, Summary: summary}
	if len(tickets) == 0 {
		return report, nil
	}

	rates := make(stats.Float64Data, 0, len(tickets))
	report.MinRate, report.MaxRate = tickets[0].ClientRate, tickets[0].ClientRate
	for _, t := range tickets {
		rates = append(rates, t.ClientRate.InexactFloat64())
		report.MinRate = decimal.Min(report.MinRate, t.ClientRate)
		report.MaxRate = decimal.Max(report.MaxRate, t.ClientRate)
	}
	if len(rates) > 1 {
		stdev, err := stats.StandardDeviationSample(rates)
		if err != nil {
			return nil, fmt.Errorf("rate dispersion: %w", err)
		}
		report.RateStdev = decimal.NewFromFloat(stdev)
	}
	return report, nil
}

func PrintReport(w io.Writer, report *Report) {
	s := report.Summary
	fmt.Fprintln(w, "===== Hedge Portfolio Report =====")
	fmt.Fprintf(w, "Pair:                  %s\n", report.Pair)
	fmt.Fprintf(w, "Spot:                  %s\n", report.Spot.StringFixed(4))
	fmt.Fprintf(w, "Transactions:          %d\n", s.TransactionCount)

	fmt.Fprintln(w, "\n-- Volume --")
	fmt.Fprintf(w, "Total Volume:          %s\n", s.TotalVolume.StringFixed(2))
	fmt.Fprintf(w, "Value (quote ccy):     %s\n", s.TotalValueInQuoteCurrency.StringFixed(2))

	fmt.Fprintln(w, "\n-- Rates --")
	fmt.Fprintf(w, "Weighted Avg Rate:     %s\n", s.WeightedAverageRate.StringFixed(4))
	fmt.Fprintf(w, "Weighted Avg Points:   %s\n", s.WeightedAveragePoints.StringFixed(4))
	fmt.Fprintf(w, "Min / Max Rate:        %s / %s\n", report.MinRate.StringFixed(4), report.MaxRate.StringFixed(4))
	fmt.Fprintf(w, "Rate Std Dev:          %s\n", report.RateStdev.StringFixed(6))

	fmt.Fprintln(w, "\n-- Benefit --")
	fmt.Fprintf(w, "Benefit vs Spot:       %s\n", s.TotalBenefitVsSpot.StringFixed(2))
	fmt.Fprintln(w, "==================================")
}

func PrintPlanOverview(w io.Writer, overview pricing.PlanOverview, buckets []pricing.MonthlyBucket) {
	fmt.Fprintln(w, "===== Hedge Plan =====")
	fmt.Fprintf(w, "Total Volume:          %s\n", overview.TotalVolume.StringFixed(2))
	fmt.Fprintf(w, "Weighted Avg Rate:     %s\n", overview.WeightedAverage.StringFixed(4))
	fmt.Fprintf(w, "Target Rate:           %s\n", overview.Target.StringFixed(4))
	fmt.Fprintf(w, "Vs Target:             %s\n", overview.VsTarget.StringFixed(4))
	fmt.Fprintf(w, "Horizon:               %d days\n", overview.HorizonDays)

	fmt.Fprintln(w, "\n-- Monthly --")
	for _, b := range buckets {
		fmt.Fprintf(w, "%s  %16s  %s\n", b.Month, b.Volume.StringFixed(2), b.WeightedRate.StringFixed(4))
	}
	fmt.Fprintln(w, "======================")
}

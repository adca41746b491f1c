package reporting

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"fxdesk/internal/coverage"
	"fxdesk/types"
)

const dateLayout = "2006-01-02"

// WriteCSVFile creates path and hands it to write.
func WriteCSVFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	return write(f)
}

func writeRecords(w io.Writer, header []string, rows [][]string) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, record := range rows {
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write record: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// WriteTicketsCSV writes the quote list to any io.Writer as CSV.
func WriteTicketsCSV(w io.Writer, tickets []types.HedgeTicket) error {
	header := []string{
		"ticket_id",
		"pair",
		"open_date",
		"settlement_date",
		"window_days",
		"days_to_maturity",
		"notional",
		"client_rate",
		"net_points",
	}
	rows := make([][]string, 0, len(tickets))
	for _, t := range tickets {
		rows = append(rows, []string{
			t.ID.String(),
			t.Pair,
			t.OpenDate.Format(dateLayout),
			t.SettlementDate.Format(dateLayout),
			strconv.Itoa(t.WindowDays),
			strconv.Itoa(t.DaysToMaturity),
			t.Notional.String(),
			t.ClientRate.StringFixed(4),
			t.NetPoints.StringFixed(4),
		})
	}
	return writeRecords(w, header, rows)
}

func WritePlanCSV(w io.Writer, entries []types.PlanEntry) error {
	header := []string{"maturity_date", "volume", "rate", "source"}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			e.MaturityDate.Format(dateLayout),
			e.Volume.String(),
			e.Rate.StringFixed(4),
			string(e.Source),
		})
	}
	return writeRecords(w, header, rows)
}

// WriteCoverageCSV leaves avg_strike empty for months without hedges.
func WriteCoverageCSV(w io.Writer, rows []coverage.Row) error {
	header := []string{"client", "month", "fx_need", "hedged_volume", "avg_strike", "coverage_pct", "to_hedge"}
	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		strike := ""
		if r.HasStrike {
			strike = r.AvgStrike.StringFixed(4)
		}
		records = append(records, []string{
			r.ClientName,
			r.Month.Format("2006-01"),
			r.FxNeed.String(),
			r.HedgedVolume.String(),
			strike,
			r.CoveragePct.StringFixed(2),
			r.ToHedge.String(),
		})
	}
	return writeRecords(w, header, records)
}

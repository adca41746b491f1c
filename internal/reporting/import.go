package reporting

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"fxdesk/types"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
)

var ErrInvalidHedgeRow = errors.New("invalid existing hedge row")

var importDateLayouts = []string{dateLayout, "02.01.2006", "2006/01/02", "01/02/2006"}

type existingHedgeRow struct {
	MaturityDate string `csv:"Maturity Date"`
	Volume       string `csv:"Volume (EUR)"`
	Rate         string `csv:"Rate"`
}

// ReadExistingHedges parses a booked-hedges sheet into plan entries tagged
// EXISTING. Volumes may use thousands separators.
func ReadExistingHedges(r io.Reader) ([]types.PlanEntry, error) {
	var rows []existingHedgeRow
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("read existing hedges: %w", err)
	}

	entries := make([]types.PlanEntry, 0, len(rows))
	for i, row := range rows {
		line := i + 2
		maturity, err := parseImportDate(row.MaturityDate)
		if err != nil {
			return nil, fmt.Errorf("line %d maturity %q: %w", line, row.MaturityDate, ErrInvalidHedgeRow)
		}
		volume, err := decimal.NewFromString(strings.ReplaceAll(strings.TrimSpace(row.Volume), ",", ""))
		if err != nil || volume.IsNegative() {
			return nil, fmt.Errorf("line %d volume %q: %w", line, row.Volume, ErrInvalidHedgeRow)
		}
		rate, err := decimal.NewFromString(strings.TrimSpace(row.Rate))
		if err != nil || !rate.IsPositive() {
			return nil, fmt.Errorf("line %d rate %q: %w", line, row.Rate, ErrInvalidHedgeRow)
		}
		entries = append(entries, types.PlanEntry{
			MaturityDate: maturity,
			Volume:       volume,
			Rate:         rate,
			Source:       types.PlanExisting,
		})
	}
	return entries, nil
}

func parseImportDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	var lastErr error
	for _, layout := range importDateLayouts {
		t, err := time.Parse(layout, raw)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

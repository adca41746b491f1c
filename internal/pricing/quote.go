package pricing

import (
	"fmt"
	"sort"
	"time"

	"fxdesk/types"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const daysPerTenorMonth = 30

type QuoteRequest struct {
	Market     types.MarketQuote
	Curve      []types.TenorPoint
	WindowDays int
	Notional   decimal.Decimal
	// Side selects which side of the curve feeds the window; empty means ask.
	Side types.PointSide
}

// WindowQuote is the full pricing chain for one forward window.
type WindowQuote struct {
	Pair            string
	Spot            decimal.Decimal
	OpenDate        time.Time
	SettlementDate  time.Time
	WindowDays      int
	DaysToMaturity  int
	TenorMonths     int
	Notional        decimal.Decimal
	PointsToWindow  decimal.Decimal
	ClosingCost     decimal.Decimal
	SwapRisk        decimal.Decimal
	ForwardClient   decimal.Decimal
	ForwardToWindow decimal.Decimal
	ProfitToWindow  decimal.Decimal
	NetWorst        decimal.Decimal
	NetWorstNominal decimal.Decimal
	PotentialProfit decimal.Decimal
}

// SortedCurve returns the curve points ordered by tenor.
func SortedCurve(curve map[types.Tenor]types.TenorPoint) []types.TenorPoint {
	out := make([]types.TenorPoint, 0, len(curve))
	for _, tenor := range types.Tenors {
		if p, ok := curve[tenor]; ok {
			out = append(out, p)
		}
	}
	return out
}

func validateCurve(curve []types.TenorPoint) error {
	if len(curve) == 0 {
		return fmt.Errorf("empty forward curve: %w", ErrInvalidMarketInput)
	}
	for _, p := range curve {
		if p.Tenor.Days() == 0 {
			return fmt.Errorf("tenor %q: %w", p.Tenor, types.ErrUnknownTenor)
		}
		if p.Bid.GreaterThan(p.Mid) || p.Mid.GreaterThan(p.Ask) {
			return fmt.Errorf("tenor %s bid %s mid %s ask %s out of order: %w", p.Tenor, p.Bid, p.Mid, p.Ask, ErrInvalidMarketInput)
		}
	}
	return nil
}

// PointsToWindow interpolates one side of the curve linearly by day count.
// Windows shorter than the first tenor scale down from zero points at day
// zero; windows past the last tenor take the last tenor's points.
func PointsToWindow(curve []types.TenorPoint, windowDays int, side types.PointSide) (decimal.Decimal, error) {
	if err := validateCurve(curve); err != nil {
		return decimal.Zero, err
	}
	if windowDays <= 0 {
		return decimal.Zero, nil
	}
	pts := append([]types.TenorPoint(nil), curve...)
	sort.Slice(pts, func(i, j int) bool { return pts[i].Tenor.Days() < pts[j].Tenor.Days() })

	days := decimal.NewFromInt(int64(windowDays))
	first := pts[0]
	if windowDays <= first.Tenor.Days() {
		return first.Side(side).Mul(days).Div(decimal.NewFromInt(int64(first.Tenor.Days()))), nil
	}
	last := pts[len(pts)-1]
	if windowDays >= last.Tenor.Days() {
		return last.Side(side), nil
	}

	idx := sort.Search(len(pts), func(i int) bool { return pts[i].Tenor.Days() >= windowDays })
	lo, hi := pts[idx-1], pts[idx]
	loDays := decimal.NewFromInt(int64(lo.Tenor.Days()))
	span := decimal.NewFromInt(int64(hi.Tenor.Days() - lo.Tenor.Days()))
	weight := days.Sub(loDays).Div(span)
	return lo.Side(side).Add(hi.Side(side).Sub(lo.Side(side)).Mul(weight)), nil
}

// tenorMonthsForWindow rounds calendar days up to whole tenor months.
func tenorMonthsForWindow(days int) int {
	return (days + daysPerTenorMonth - 1) / daysPerTenorMonth
}

// QuoteWindow runs the full pricing chain for a window opened on the quote's
// as-of date.
func (e *Engine) QuoteWindow(req QuoteRequest) (WindowQuote, error) {
	if req.WindowDays <= 0 {
		return WindowQuote{}, fmt.Errorf("window of %d days: %w", req.WindowDays, ErrInvalidMarketInput)
	}
	if !req.Market.Spot.IsPositive() {
		return WindowQuote{}, fmt.Errorf("spot %s: %w", req.Market.Spot, ErrInvalidMarketInput)
	}
	side := req.Side
	if side == "" {
		side = types.SideAsk
	}

	q := WindowQuote{
		Pair:        req.Market.Pair,
		Spot:        req.Market.Spot,
		OpenDate:    req.Market.AsOf,
		WindowDays: req.WindowDays,
		Notional:   req.Notional,
	}

	var err error
	if q.SettlementDate, err = CalculateSettlementDate(q.OpenDate, q.WindowDays); err != nil {
		return WindowQuote{}, err
	}
	// The window is counted in business days; the curve and risk horizon in
	// calendar days to settlement.
	q.DaysToMaturity = calendarDays(q.OpenDate, q.SettlementDate)
	q.TenorMonths = tenorMonthsForWindow(q.DaysToMaturity)

	if q.PointsToWindow, err = PointsToWindow(req.Curve, q.DaysToMaturity, side); err != nil {
		return WindowQuote{}, err
	}
	askPoints, err := PointsToWindow(req.Curve, q.DaysToMaturity, types.SideAsk)
	if err != nil {
		return WindowQuote{}, err
	}
	if q.ClosingCost, err = e.ClosingCost(askPoints, q.TenorMonths); err != nil {
		return WindowQuote{}, err
	}
	if q.SwapRisk, err = e.SwapRisk(q.ClosingCost, q.PointsToWindow, q.DaysToMaturity); err != nil {
		return WindowQuote{}, err
	}
	if q.ForwardClient, err = e.ForwardClient(q.Spot, q.PointsToWindow, q.SwapRisk); err != nil {
		return WindowQuote{}, err
	}
	q.ForwardToWindow = CalculateForwardToWindow(q.Spot, q.PointsToWindow)
	if q.ProfitToWindow, err = CalculateProfitToWindow(q.ForwardToWindow, q.ForwardClient); err != nil {
		return WindowQuote{}, err
	}
	q.NetWorst = e.NetWorst(q.ProfitToWindow)
	if q.NetWorstNominal, err = CalculateNetWorstNominal(q.NetWorst, q.Notional); err != nil {
		return WindowQuote{}, err
	}
	q.PotentialProfit = e.PotentialProfit(q.NetWorstNominal)
	return q, nil
}

// Ticket commits the quote to a new hedge ticket.
func (q WindowQuote) Ticket() (types.HedgeTicket, error) {
	if !q.ForwardClient.IsPositive() {
		return types.HedgeTicket{}, fmt.Errorf("client rate %s: %w", q.ForwardClient, ErrInvalidMarketInput)
	}
	if q.Notional.IsNegative() {
		return types.HedgeTicket{}, fmt.Errorf("notional %s: %w", q.Notional, ErrInvalidMarketInput)
	}
	return types.HedgeTicket{
		ID:             uuid.New(),
		Pair:           q.Pair,
		OpenDate:       q.OpenDate,
		SettlementDate: q.SettlementDate,
		WindowDays:     q.WindowDays,
		Notional:       q.Notional,
		ClientRate:     q.ForwardClient,
		NetPoints:      q.ForwardClient.Sub(q.Spot),
		DaysToMaturity: q.DaysToMaturity,
	}, nil
}

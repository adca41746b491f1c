package marketdata

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"fxdesk/internal/logger"
	"fxdesk/types"

	"github.com/PuerkitoBio/goquery"
	"github.com/shopspring/decimal"
)

const defaultRowSelector = "table tr"

var two = decimal.NewFromInt(2)

// HTMLTableSource scrapes a forward-rates page whose table rows read
// tenor, bid pips, ask pips. URLTemplate receives the pair slug ("eur-pln").
type HTMLTableSource struct {
	URLTemplate string
	RowSelector string
	Client      *http.Client
}

func NewHTMLTableSource(urlTemplate string) *HTMLTableSource {
	return &HTMLTableSource{
		URLTemplate: urlTemplate,
		RowSelector: defaultRowSelector,
		Client:      &http.Client{Timeout: 15 * time.Second},
	}
}

func pairSlug(pair string) string {
	return strings.ToLower(strings.NewReplacer("/", "-", " ", "").Replace(strings.TrimSpace(pair)))
}

func (s *HTMLTableSource) ForwardPoints(ctx context.Context, pair string) ([]types.TenorPoint, error) {
	url := s.URLTemplate
	if strings.Contains(url, "%s") {
		url = fmt.Sprintf(url, pairSlug(pair))
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")
	req.Header.Set("Accept", "text/html")

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", pair, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: unexpected status %d", pair, resp.StatusCode)
	}

	points, err := parseForwardTable(ctx, resp.Body, s.RowSelector)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", pair, err)
	}
	return points, nil
}

// ParseForwardTable reads tenor rows from an HTML document. Rows with an
// unknown tenor or unparsable numbers are skipped.
func ParseForwardTable(ctx context.Context, r io.Reader) ([]types.TenorPoint, error) {
	return parseForwardTable(ctx, r, defaultRowSelector)
}

func parseForwardTable(ctx context.Context, r io.Reader, selector string) ([]types.TenorPoint, error) {
	log := logger.FromContext(ctx)
	if selector == "" {
		selector = defaultRowSelector
	}

	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse forward table: %w", err)
	}

	seen := make(map[types.Tenor]bool)
	var points []types.TenorPoint
	doc.Find(selector).Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 3 {
			return
		}
		label := strings.TrimSpace(cells.Eq(0).Text())
		tenor, ok := tenorFromLabel(label)
		if !ok || seen[tenor] {
			return
		}
		bid, errBid := parsePips(cells.Eq(1).Text())
		ask, errAsk := parsePips(cells.Eq(2).Text())
		if errBid != nil || errAsk != nil {
			log.Debugw("skipping unparsable forward row", "tenor", label)
			return
		}
		if bid.GreaterThan(ask) {
			log.Warnw("skipping crossed forward row", "tenor", label, "bid", bid, "ask", ask)
			return
		}
		seen[tenor] = true
		points = append(points, types.TenorPoint{
			Tenor: tenor,
			Bid:   bid,
			Ask:   ask,
			Mid:   bid.Add(ask).Div(two),
		})
	})

	if len(points) == 0 {
		return nil, ErrNoPoints
	}
	sort.Slice(points, func(i, j int) bool { return tenorIndex(points[i].Tenor) < tenorIndex(points[j].Tenor) })
	return points, nil
}

// tenorFromLabel finds a tenor token in labels like "EURPLN 3M FWD".
func tenorFromLabel(label string) (types.Tenor, bool) {
	for _, field := range strings.Fields(label) {
		if t, err := types.ParseTenor(field); err == nil {
			return t, true
		}
	}
	return "", false
}

func parsePips(raw string) (decimal.Decimal, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	pips, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, err
	}
	return PipsToRate(pips), nil
}

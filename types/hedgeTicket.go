package types

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// HedgeTicket is a quoted window committed to the quote list. Tickets are
// never edited, only removed.
type HedgeTicket struct {
	ID             uuid.UUID       `json:"id"`
	Pair           string          `json:"pair"`
	OpenDate       time.Time       `json:"openDate"`
	SettlementDate time.Time       `json:"settlementDate"`
	WindowDays     int             `json:"windowDays"`
	Notional       decimal.Decimal `json:"notional"`
	ClientRate     decimal.Decimal `json:"clientRate"`
	NetPoints      decimal.Decimal `json:"netPoints"`
	DaysToMaturity int             `json:"daysToMaturity"`
}

type PortfolioSummary struct {
	TotalVolume               decimal.Decimal `json:"totalVolume"`
	WeightedAverageRate       decimal.Decimal `json:"weightedAverageRate"`
	WeightedAveragePoints     decimal.Decimal `json:"weightedAveragePoints"`
	TransactionCount          int             `json:"transactionCount"`
	TotalValueInQuoteCurrency decimal.Decimal `json:"totalValueInQuoteCurrency"`
	TotalBenefitVsSpot        decimal.Decimal `json:"totalBenefitVsSpot"`
}

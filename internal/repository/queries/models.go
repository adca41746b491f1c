package queries

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Client struct {
	ID           int32
	Name         string
	BaseCurrency string
	Industry     string
	Email        string
	Phone        string
	PaymentTerms string
	BudgetRate   decimal.Decimal
	RiskProfile  string
	Tags         string
	Notes        string
	CreatedAt    time.Time
}

type Payment struct {
	ID          int32
	ClientID    int32
	ClientName  string
	Amount      decimal.Decimal
	Currency    string
	Direction   string
	PaymentDate time.Time
	Notes       string
	Status      string
}

type Hedge struct {
	ID         int32
	ClientID   int32
	ClientName string
	HedgeType  string
	Notional   decimal.Decimal
	Currency   string
	Strike     decimal.Decimal
	Maturity   time.Time
	Premium    decimal.Decimal
}

type QuoteTicket struct {
	ID             uuid.UUID
	Pair           string
	OpenDate       time.Time
	SettlementDate time.Time
	WindowDays     int32
	Notional       decimal.Decimal
	ClientRate     decimal.Decimal
	NetPoints      decimal.Decimal
	DaysToMaturity int32
}

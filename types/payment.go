package types

import (
	"time"

	"github.com/shopspring/decimal"
)

type Direction string

type PaymentStatus string

const (
	DirectionIncoming Direction = "INCOMING"
	DirectionOutgoing Direction = "OUTGOING"

	PaymentUnpaid PaymentStatus = "UNPAID"
	PaymentPaid   PaymentStatus = "PAID"
)

type Payment struct {
	Id          int             `json:"id"`
	ClientName  string          `json:"clientName"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	Direction   Direction       `json:"direction"`
	PaymentDate time.Time       `json:"paymentDate"`
	Notes       string          `json:"notes"`
	Status      PaymentStatus   `json:"status"`
}

// Signed returns the amount with incoming flows positive and outgoing flows negative.
func (p Payment) Signed() decimal.Decimal {
	if p.Direction == DirectionOutgoing {
		return p.Amount.Neg()
	}
	return p.Amount
}

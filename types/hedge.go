package types

import (
	"time"

	"github.com/shopspring/decimal"
)

type HedgeType string

type PlanSource string

const (
	HedgeForward          HedgeType = "FORWARD"
	HedgeCallOption       HedgeType = "CALL_OPTION"
	HedgePutOption        HedgeType = "PUT_OPTION"
	HedgeSyntheticForward HedgeType = "SYNTHETIC_FORWARD"

	PlanExisting PlanSource = "EXISTING"
	PlanNew      PlanSource = "NEW"
)

type Hedge struct {
	Id         int             `json:"id"`
	ClientName string          `json:"clientName"`
	HedgeType  HedgeType       `json:"hedgeType"`
	Notional   decimal.Decimal `json:"notional"`
	Currency   string          `json:"currency"`
	Strike     decimal.Decimal `json:"strike"`
	Maturity   time.Time       `json:"maturity"`
	Premium    decimal.Decimal `json:"premium"`
}

// PlanEntry is one maturity in a hedge plan, either already booked or proposed.
type PlanEntry struct {
	MaturityDate time.Time       `json:"maturityDate"`
	Volume       decimal.Decimal `json:"volume"`
	Rate         decimal.Decimal `json:"rate"`
	Source       PlanSource      `json:"source"`
}

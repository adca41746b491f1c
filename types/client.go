package types

import (
	"time"

	"github.com/shopspring/decimal"
)

type RiskProfile string

const (
	RiskProfileLow      RiskProfile = "LOW"
	RiskProfileModerate RiskProfile = "MODERATE"
	RiskProfileHigh     RiskProfile = "HIGH"
)

type Client struct {
	Id           int             `json:"id"`
	Name         string          `json:"name"`
	BaseCurrency string          `json:"baseCurrency"`
	Industry     string          `json:"industry"`
	Email        string          `json:"email"`
	Phone        string          `json:"phone"`
	PaymentTerms string          `json:"paymentTerms"`
	BudgetRate   decimal.Decimal `json:"budgetRate"`
	RiskProfile  RiskProfile     `json:"riskProfile"`
	Tags         string          `json:"tags"`
	Notes        string          `json:"notes"`
	CreatedAt    time.Time       `json:"createdAt"`
}

package models

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

type WithdrawalStatus string

const (
	WithdrawalPending WithdrawalStatus = "pending"
	WithdrawalCleared WithdrawalStatus = "cleared"
)

type Credit struct {
	UserID    int64           `json:"-" db:"user_id"`
	Amount    decimal.Decimal `json:"amount" db:"amount"`
	CreatedAt time.Time       `json:"created_at" db:"created_at"`
}

type Withdrawal struct {
	ID          string           `json:"id" db:"id"`
	UserID      int64            `json:"-" db:"user_id"`
	Username    string           `json:"username" db:"username"`
	AmountUSD   decimal.Decimal  `json:"amount_usd" db:"amount_usd"`
	Amount      decimal.Decimal  `json:"amount" db:"amount"`
	Rate        decimal.Decimal  `json:"rate" db:"rate"`
	PhoneNumber string           `json:"phone_number" db:"phone_number"`
	Status      WithdrawalStatus `json:"status" db:"status"`
	CreatedAt   time.Time        `json:"timestamp" db:"created_at"`
	ClearedAt   *time.Time       `json:"cleared_at,omitempty" db:"cleared_at"`
}

type WithdrawalRequest struct {
	PhoneNumber string `json:"phone_number" validate:"required,phone"`
}

type CreditRequest struct {
	Amount json.Number `json:"amount"`
}

type ReviewRequest struct {
	Tutor  string `json:"tutor"`
	Rating int    `json:"rating"`
}

type TutorSummary struct {
	Username string          `json:"username"`
	Balance  decimal.Decimal `json:"balance"`
}

// ConvertedAmount is balance expressed in the payout currency, rounded to cents.
func ConvertedAmount(balance, rate decimal.Decimal) decimal.Decimal {
	return balance.Mul(rate).Round(2)
}

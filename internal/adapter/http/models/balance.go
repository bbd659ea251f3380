package models

import "github.com/shopspring/decimal"

type BalanceResponse struct {
	Agency  string          `json:"agency"`
	Number  string          `json:"number"`
	Balance decimal.Decimal `json:"balance"`
}

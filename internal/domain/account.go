package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Account struct {
	ID         int64
	Agency     string
	Number     string
	Email      string
	Document   Document
	HolderName string
	Balance    decimal.Decimal
	Version    int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewAccount is the construction path for a fresh account: the balance
// starts at exactly zero and the optimistic-lock version at zero.
func NewAccount(agency, number, email string, document Document, holderName string) Account {
	return Account{
		Agency:     agency,
		Number:     number,
		Email:      email,
		Document:   document,
		HolderName: holderName,
		Balance:    decimal.Zero,
		Version:    0,
	}
}

func (a Account) HasSufficientBalance(amount decimal.Decimal) bool {
	return a.Balance.GreaterThanOrEqual(amount)
}

// Debit returns a copy with the amount subtracted and the version bumped.
// Balances change only through Debit and Credit.
func (a Account) Debit(amount decimal.Decimal) Account {
	a.Balance = a.Balance.Sub(amount)
	a.Version++
	return a
}

// Credit returns a copy with the amount added and the version bumped.
func (a Account) Credit(amount decimal.Decimal) Account {
	a.Balance = a.Balance.Add(amount)
	a.Version++
	return a
}

package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestNewAccountStartsAtZero(t *testing.T) {
	account := NewAccount("0001", "123456", "ana@example.com", NewDocument("123.456.789-09"), "Ana Souza")

	if !account.Balance.Equal(decimal.Zero) {
		t.Fatalf("expected zero starting balance, got %s", account.Balance)
	}
	if account.Version != 0 {
		t.Fatalf("expected version 0 on a fresh account, got %d", account.Version)
	}
}

func TestDebitAndCreditBumpVersion(t *testing.T) {
	account := NewAccount("0001", "123456", "ana@example.com", NewDocument("123.456.789-09"), "Ana Souza")
	amount := decimal.RequireFromString("60.00")

	credited := account.Credit(amount)
	if !credited.Balance.Equal(amount) {
		t.Fatalf("expected balance %s after credit, got %s", amount, credited.Balance)
	}
	if credited.Version != 1 {
		t.Fatalf("expected version 1 after credit, got %d", credited.Version)
	}

	debited := credited.Debit(decimal.RequireFromString("25.50"))
	if !debited.Balance.Equal(decimal.RequireFromString("34.50")) {
		t.Fatalf("expected balance 34.50 after debit, got %s", debited.Balance)
	}
	if debited.Version != 2 {
		t.Fatalf("expected version 2 after debit, got %d", debited.Version)
	}

	// Mutations return copies; the original account is untouched.
	if !account.Balance.Equal(decimal.Zero) || account.Version != 0 {
		t.Fatal("expected the original account to be unchanged")
	}
}

func TestHasSufficientBalance(t *testing.T) {
	account := NewAccount("0001", "123456", "ana@example.com", NewDocument("123.456.789-09"), "Ana Souza")
	account = account.Credit(decimal.RequireFromString("100.00"))

	if !account.HasSufficientBalance(decimal.RequireFromString("100.00")) {
		t.Fatal("expected an amount equal to the balance to be sufficient")
	}
	if account.HasSufficientBalance(decimal.RequireFromString("100.01")) {
		t.Fatal("expected an amount above the balance to be insufficient")
	}
}

package models

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

type TransferRequest struct {
	SourceAccountID      int64           `json:"sourceAccountId"`
	DestinationAccountID int64           `json:"destinationAccountId"`
	Amount               decimal.Decimal `json:"amount"`
}

func (r TransferRequest) Validate() error {
	var errs []string

	if r.SourceAccountID <= 0 {
		errs = append(errs, "sourceAccountId must be a positive id")
	}
	if r.DestinationAccountID <= 0 {
		errs = append(errs, "destinationAccountId must be a positive id")
	}
	if r.Amount.LessThanOrEqual(decimal.Zero) {
		errs = append(errs, "amount must be greater than zero")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

type TransferResponse struct {
	ID                   int64           `json:"id"`
	SourceAccountID      int64           `json:"sourceAccountId"`
	DestinationAccountID int64           `json:"destinationAccountId"`
	Amount               decimal.Decimal `json:"amount"`
	CreatedAt            string          `json:"createdAt"`
}

type TransferDirection string

const (
	TransferSent     TransferDirection = "SENT"
	TransferReceived TransferDirection = "RECEIVED"
)

// TransferView is one listing entry, annotated relative to the account the
// listing was requested for; holder/agency/number describe the counterparty.
type TransferView struct {
	ID         int64             `json:"id"`
	Amount     decimal.Decimal   `json:"amount"`
	CreatedAt  string            `json:"createdAt"`
	Type       TransferDirection `json:"type"`
	HolderName string            `json:"holderName"`
	Agency     string            `json:"agency"`
	Number     string            `json:"number"`
}

type TransferListResponse struct {
	Content       []TransferView `json:"content"`
	Page          int            `json:"page"`
	Size          int            `json:"size"`
	TotalElements int64          `json:"totalElements"`
	TotalPages    int            `json:"totalPages"`
}

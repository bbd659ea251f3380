package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transfer is an append-only record of funds moved between two accounts. It
// holds account ids rather than account references; an account's transfer
// history is derived by querying the store, not by back-references.
type Transfer struct {
	ID                   int64
	SourceAccountID      int64
	DestinationAccountID int64
	Amount               decimal.Decimal
	CreatedAt            time.Time
}

// NewTransfer builds an uncommitted transfer. The id and timestamp are
// assigned by the store at commit time.
func NewTransfer(sourceAccountID, destinationAccountID int64, amount decimal.Decimal) Transfer {
	return Transfer{
		SourceAccountID:      sourceAccountID,
		DestinationAccountID: destinationAccountID,
		Amount:               amount,
	}
}

package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/bancoreal/transfer-service/internal/commons"
	"github.com/bancoreal/transfer-service/internal/domain"
	"github.com/bancoreal/transfer-service/internal/logger"
)

type TransferRepository struct {
	db *sql.DB
}

func NewTransferRepository(db *sql.DB) *TransferRepository {
	return &TransferRepository{db: db}
}

func (r *TransferRepository) CommitTransfer(
	ctx context.Context,
	source domain.Account,
	sourceVersion int64,
	destination domain.Account,
	destinationVersion int64,
	transfer domain.Transfer,
) (domain.Transfer, error) {
	logger.Info("transfer repository commit", logger.Fields{
		"sourceAccountId":      transfer.SourceAccountID,
		"destinationAccountId": transfer.DestinationAccountID,
		"amount":               transfer.Amount,
	})

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.Transfer{}, fmt.Errorf("begin transfer tx: %w", err)
	}

	if err := applyBalanceUpdate(ctx, tx, source, sourceVersion); err != nil {
		_ = tx.Rollback()
		return domain.Transfer{}, err
	}
	if err := applyBalanceUpdate(ctx, tx, destination, destinationVersion); err != nil {
		_ = tx.Rollback()
		return domain.Transfer{}, err
	}

	const insertTransfer = `
INSERT INTO transfers (source_account_id, destination_account_id, amount)
VALUES ($1, $2, $3)
RETURNING id, created_at`

	var (
		id        int64
		createdAt time.Time
	)
	if err := tx.QueryRowContext(
		ctx,
		insertTransfer,
		transfer.SourceAccountID,
		transfer.DestinationAccountID,
		transfer.Amount,
	).Scan(&id, &createdAt); err != nil {
		_ = tx.Rollback()
		logger.Error("transfer repository insert failed", err, logger.Fields{
			"sourceAccountId": transfer.SourceAccountID,
		})
		return domain.Transfer{}, fmt.Errorf("insert transfer: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return domain.Transfer{}, fmt.Errorf("commit transfer tx: %w", err)
	}

	transfer.ID = id
	transfer.CreatedAt = createdAt

	logger.Info("transfer repository commit success", logger.Fields{
		"transferId": transfer.ID,
	})

	return transfer, nil
}

// applyBalanceUpdate writes an account's new balance and version, guarded by
// the version observed when the account was loaded. Zero rows affected means
// another transfer touched the row in between.
func applyBalanceUpdate(ctx context.Context, tx *sql.Tx, account domain.Account, expectedVersion int64) error {
	const query = `
UPDATE accounts
SET balance = $2,
    version = $3,
    updated_at = NOW()
WHERE id = $1
  AND version = $4`

	result, err := tx.ExecContext(ctx, query, account.ID, account.Balance, account.Version, expectedVersion)
	if err != nil {
		return fmt.Errorf("update account %d balance: %w", account.ID, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update account %d rows affected: %w", account.ID, err)
	}
	if affected != 1 {
		logger.Info("transfer repository version conflict", logger.Fields{
			"accountId":       account.ID,
			"expectedVersion": expectedVersion,
		})
		return commons.ErrVersionConflict
	}

	return nil
}

func (r *TransferRepository) FindPageBySourceOrDestination(
	ctx context.Context,
	accountID int64,
	request domain.PageRequest,
) (domain.Page[domain.Transfer], error) {
	const countQuery = `
SELECT COUNT(*)
FROM transfers
WHERE source_account_id = $1
   OR destination_account_id = $1`

	var total int64
	if err := r.db.QueryRowContext(ctx, countQuery, accountID).Scan(&total); err != nil {
		return domain.Page[domain.Transfer]{}, fmt.Errorf("count transfers: %w", err)
	}

	query := fmt.Sprintf(`
SELECT id,
       source_account_id,
       destination_account_id,
       amount,
       created_at
FROM transfers
WHERE source_account_id = $1
   OR destination_account_id = $1
ORDER BY %s %s
LIMIT $2 OFFSET $3`, sortColumn(request.SortField), sortDirection(request.Direction))

	rows, err := r.db.QueryContext(ctx, query, accountID, request.Size, request.Offset())
	if err != nil {
		return domain.Page[domain.Transfer]{}, fmt.Errorf("list transfers: %w", err)
	}
	defer rows.Close()

	transfers := make([]domain.Transfer, 0, request.Size)
	for rows.Next() {
		var transfer domain.Transfer
		if err := rows.Scan(
			&transfer.ID,
			&transfer.SourceAccountID,
			&transfer.DestinationAccountID,
			&transfer.Amount,
			&transfer.CreatedAt,
		); err != nil {
			return domain.Page[domain.Transfer]{}, fmt.Errorf("scan transfer: %w", err)
		}
		transfers = append(transfers, transfer)
	}
	if err := rows.Err(); err != nil {
		return domain.Page[domain.Transfer]{}, fmt.Errorf("iterate transfers: %w", err)
	}

	return domain.NewPage(transfers, request, total), nil
}

// sortColumn and sortDirection only ever emit whitelisted SQL fragments;
// PageRequest already normalizes, this is the second line of defense.
func sortColumn(field string) string {
	switch field {
	case domain.SortByAmount:
		return "amount"
	case domain.SortByCreatedAt:
		return "created_at"
	default:
		return "id"
	}
}

func sortDirection(direction domain.SortDirection) string {
	if direction == domain.SortDescending {
		return "DESC"
	}
	return "ASC"
}

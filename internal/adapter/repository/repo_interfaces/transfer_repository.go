package repo_interfaces

import (
	"context"

	"github.com/bancoreal/transfer-service/internal/domain"
)

type TransferRepository interface {
	// CommitTransfer applies both balance mutations and records the transfer
	// as one atomic unit. Each account row is updated only if its stored
	// version still equals the version observed at load time; otherwise the
	// whole commit is rolled back and commons.ErrVersionConflict returned.
	CommitTransfer(
		ctx context.Context,
		source domain.Account,
		sourceVersion int64,
		destination domain.Account,
		destinationVersion int64,
		transfer domain.Transfer,
	) (domain.Transfer, error)

	// FindPageBySourceOrDestination returns the transfers in which the
	// account participates on either side, paged and ordered by the store.
	FindPageBySourceOrDestination(ctx context.Context, accountID int64, request domain.PageRequest) (domain.Page[domain.Transfer], error)
}

package repo_interfaces

import (
	"context"

	"github.com/bancoreal/transfer-service/internal/domain"
)

type AccountRepository interface {
	// Create persists a new account and assigns its id. It returns
	// commons.ErrDuplicateEmail or commons.ErrDuplicateDocument when the
	// storage-level uniqueness constraints reject the row.
	Create(ctx context.Context, account domain.Account) (domain.Account, error)
	GetByID(ctx context.Context, id int64) (domain.Account, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByDocumentFingerprint(ctx context.Context, fingerprint string) (bool, error)
}

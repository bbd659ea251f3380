package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bancoreal/transfer-service/internal/commons"
	"github.com/bancoreal/transfer-service/internal/domain"
	"github.com/bancoreal/transfer-service/internal/logger"
	"github.com/lib/pq"
)

type AccountRepository struct {
	db *sql.DB
}

func NewAccountRepository(db *sql.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) Create(ctx context.Context, account domain.Account) (domain.Account, error) {
	logger.Info("account repository create", logger.Fields{
		"agency": account.Agency,
		"number": account.Number,
		"email":  account.Email,
	})

	const query = `
INSERT INTO accounts (
	agency,
	number,
	email,
	document_number,
	document_fingerprint,
	holder_name,
	balance,
	version
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id, created_at, updated_at`

	var (
		id        int64
		createdAt time.Time
		updatedAt time.Time
	)

	if err := r.db.QueryRowContext(
		ctx,
		query,
		account.Agency,
		account.Number,
		account.Email,
		account.Document.DisplayNumber,
		account.Document.Fingerprint,
		account.HolderName,
		account.Balance,
		account.Version,
	).Scan(&id, &createdAt, &updatedAt); err != nil {
		if mapped := mapUniqueViolation(err); mapped != nil {
			logger.Info("account repository create unique violation", logger.Fields{
				"email": account.Email,
			})
			return domain.Account{}, mapped
		}
		logger.Error("account repository create failed", err, logger.Fields{
			"email": account.Email,
		})
		return domain.Account{}, fmt.Errorf("create account: %w", err)
	}

	account.ID = id
	account.CreatedAt = createdAt
	account.UpdatedAt = updatedAt

	logger.Info("account repository create success", logger.Fields{
		"accountId": account.ID,
	})

	return account, nil
}

func (r *AccountRepository) GetByID(ctx context.Context, id int64) (domain.Account, error) {
	const query = `
SELECT id,
       agency,
       number,
       email,
       document_number,
       document_fingerprint,
       holder_name,
       balance,
       version,
       created_at,
       updated_at
FROM accounts
WHERE id = $1`

	var account domain.Account
	if err := r.db.QueryRowContext(ctx, query, id).Scan(
		&account.ID,
		&account.Agency,
		&account.Number,
		&account.Email,
		&account.Document.DisplayNumber,
		&account.Document.Fingerprint,
		&account.HolderName,
		&account.Balance,
		&account.Version,
		&account.CreatedAt,
		&account.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Account{}, commons.ErrRecordNotFound
		}
		logger.Error("account repository get by id failed", err, logger.Fields{
			"accountId": id,
		})
		return domain.Account{}, fmt.Errorf("get account by id: %w", err)
	}

	return account, nil
}

func (r *AccountRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM accounts WHERE email = $1)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, email).Scan(&exists); err != nil {
		return false, fmt.Errorf("check account email: %w", err)
	}

	return exists, nil
}

func (r *AccountRepository) ExistsByDocumentFingerprint(ctx context.Context, fingerprint string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM accounts WHERE document_fingerprint = $1)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, fingerprint).Scan(&exists); err != nil {
		return false, fmt.Errorf("check account document fingerprint: %w", err)
	}

	return exists, nil
}

// mapUniqueViolation translates a Postgres 23505 into the matching domain
// error by constraint name, covering the race between the uniqueness
// pre-checks and the insert. Returns nil for anything else.
func mapUniqueViolation(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || string(pqErr.Code) != "23505" {
		return nil
	}

	constraint := strings.ToLower(pqErr.Constraint)
	switch {
	case strings.Contains(constraint, "email"):
		return commons.ErrDuplicateEmail
	case strings.Contains(constraint, "fingerprint"):
		return commons.ErrDuplicateDocument
	}

	return fmt.Errorf("unique violation on %q: %w", pqErr.Constraint, err)
}

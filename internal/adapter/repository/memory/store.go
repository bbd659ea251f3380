package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/bancoreal/transfer-service/internal/commons"
	"github.com/bancoreal/transfer-service/internal/domain"
)

// Store is an in-memory implementation of both the account and transfer
// repositories with the same compare-and-swap commit semantics as the
// Postgres store. It backs the service tests and local runs without a
// database.
type Store struct {
	mu             sync.Mutex
	nextAccountID  int64
	nextTransferID int64
	accounts       map[int64]domain.Account
	transfers      []domain.Transfer
}

func NewStore() *Store {
	return &Store{accounts: make(map[int64]domain.Account)}
}

func (s *Store) Create(_ context.Context, account domain.Account) (domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.accounts {
		if existing.Email == account.Email {
			return domain.Account{}, commons.ErrDuplicateEmail
		}
		if existing.Document.Fingerprint == account.Document.Fingerprint {
			return domain.Account{}, commons.ErrDuplicateDocument
		}
	}

	s.nextAccountID++
	account.ID = s.nextAccountID
	now := time.Now().UTC()
	account.CreatedAt = now
	account.UpdatedAt = now
	s.accounts[account.ID] = account

	return account, nil
}

func (s *Store) GetByID(_ context.Context, id int64) (domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, ok := s.accounts[id]
	if !ok {
		return domain.Account{}, commons.ErrRecordNotFound
	}

	return account, nil
}

func (s *Store) ExistsByEmail(_ context.Context, email string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, account := range s.accounts {
		if account.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) ExistsByDocumentFingerprint(_ context.Context, fingerprint string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, account := range s.accounts {
		if account.Document.Fingerprint == fingerprint {
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) CommitTransfer(
	_ context.Context,
	source domain.Account,
	sourceVersion int64,
	destination domain.Account,
	destinationVersion int64,
	transfer domain.Transfer,
) (domain.Transfer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	storedSource, ok := s.accounts[source.ID]
	if !ok {
		return domain.Transfer{}, commons.ErrRecordNotFound
	}
	storedDestination, ok := s.accounts[destination.ID]
	if !ok {
		return domain.Transfer{}, commons.ErrRecordNotFound
	}

	// Both rows must still carry the versions observed at load time or
	// nothing is written.
	if storedSource.Version != sourceVersion || storedDestination.Version != destinationVersion {
		return domain.Transfer{}, commons.ErrVersionConflict
	}

	now := time.Now().UTC()
	source.UpdatedAt = now
	destination.UpdatedAt = now
	s.accounts[source.ID] = source
	s.accounts[destination.ID] = destination

	s.nextTransferID++
	transfer.ID = s.nextTransferID
	transfer.CreatedAt = now
	s.transfers = append(s.transfers, transfer)

	return transfer, nil
}

func (s *Store) FindPageBySourceOrDestination(
	_ context.Context,
	accountID int64,
	request domain.PageRequest,
) (domain.Page[domain.Transfer], error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	matched := make([]domain.Transfer, 0)
	for _, transfer := range s.transfers {
		if transfer.SourceAccountID == accountID || transfer.DestinationAccountID == accountID {
			matched = append(matched, transfer)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		less := lessBy(request.SortField, matched[i], matched[j])
		if request.Direction == domain.SortDescending {
			return lessBy(request.SortField, matched[j], matched[i])
		}
		return less
	})

	total := int64(len(matched))
	start := request.Offset()
	if start > len(matched) {
		start = len(matched)
	}
	end := start + request.Size
	if end > len(matched) {
		end = len(matched)
	}

	return domain.NewPage(matched[start:end], request, total), nil
}

func lessBy(field string, a, b domain.Transfer) bool {
	switch field {
	case domain.SortByAmount:
		return a.Amount.LessThan(b.Amount)
	case domain.SortByCreatedAt:
		return a.CreatedAt.Before(b.CreatedAt)
	default:
		return a.ID < b.ID
	}
}

package memory

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/bancoreal/transfer-service/internal/commons"
	"github.com/bancoreal/transfer-service/internal/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

func seedAccount(t *testing.T, store *Store, email, cpf, balance string) domain.Account {
	t.Helper()

	account := domain.NewAccount("0001", "123456", email, domain.NewDocument(cpf), "Holder "+email)
	if balance != "" {
		account = account.Credit(decimal.RequireFromString(balance))
	}

	created, err := store.Create(context.Background(), account)
	if err != nil {
		t.Fatalf("failed to seed account %s: %v", email, err)
	}
	return created
}

func TestStoreCreateEnforcesUniqueness(t *testing.T) {
	store := NewStore()
	seedAccount(t, store, "ana@example.com", "123.456.789-09", "")

	_, err := store.Create(context.Background(), domain.NewAccount(
		"0001", "999999", "ana@example.com", domain.NewDocument("987.654.321-00"), "Other Holder",
	))
	if !errors.Is(err, commons.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}

	_, err = store.Create(context.Background(), domain.NewAccount(
		"0001", "999999", "other@example.com", domain.NewDocument("123.456.789-09"), "Other Holder",
	))
	if !errors.Is(err, commons.ErrDuplicateDocument) {
		t.Fatalf("expected ErrDuplicateDocument, got %v", err)
	}

	// The same number without separators has the same fingerprint.
	_, err = store.Create(context.Background(), domain.NewAccount(
		"0001", "999999", "third@example.com", domain.NewDocument("12345678909"), "Third Holder",
	))
	if !errors.Is(err, commons.ErrDuplicateDocument) {
		t.Fatalf("expected ErrDuplicateDocument for a reformatted number, got %v", err)
	}
}

func TestStoreCommitTransferRejectsStaleVersion(t *testing.T) {
	store := NewStore()
	source := seedAccount(t, store, "ana@example.com", "123.456.789-09", "100.00")
	destination := seedAccount(t, store, "rui@example.com", "987.654.321-00", "")

	amount := decimal.RequireFromString("10.00")
	debited := source.Debit(amount)
	credited := destination.Credit(amount)

	// Stale source version: the row was version source.Version at load time.
	_, err := store.CommitTransfer(
		context.Background(),
		debited, source.Version-1,
		credited, destination.Version,
		domain.NewTransfer(source.ID, destination.ID, amount),
	)
	if !errors.Is(err, commons.ErrVersionConflict) {
		t.Fatalf("expected ErrVersionConflict, got %v", err)
	}

	// A rejected commit leaves both rows and the transfer log untouched.
	current, err := store.GetByID(context.Background(), source.ID)
	if err != nil {
		t.Fatalf("failed to reload source: %v", err)
	}
	if !current.Balance.Equal(source.Balance) || current.Version != source.Version {
		t.Fatalf("expected the source row unchanged, got balance %s version %d", current.Balance, current.Version)
	}

	page, err := store.FindPageBySourceOrDestination(context.Background(), source.ID, domain.NewPageRequest(0, 10, "", ""))
	if err != nil {
		t.Fatalf("failed to list transfers: %v", err)
	}
	if page.TotalElements != 0 {
		t.Fatalf("expected no recorded transfers, got %d", page.TotalElements)
	}
}

func TestStoreCommitTransferApplyThenReload(t *testing.T) {
	store := NewStore()
	source := seedAccount(t, store, "ana@example.com", "123.456.789-09", "100.00")
	destination := seedAccount(t, store, "rui@example.com", "987.654.321-00", "")

	amount := decimal.RequireFromString("60.00")
	created, err := store.CommitTransfer(
		context.Background(),
		source.Debit(amount), source.Version,
		destination.Credit(amount), destination.Version,
		domain.NewTransfer(source.ID, destination.ID, amount),
	)
	if err != nil {
		t.Fatalf("expected commit to succeed, got %v", err)
	}
	if created.ID == 0 || created.CreatedAt.IsZero() {
		t.Fatalf("expected an id and timestamp on the committed transfer, got %+v", created)
	}

	reloadedSource, _ := store.GetByID(context.Background(), source.ID)
	reloadedDestination, _ := store.GetByID(context.Background(), destination.ID)
	if !reloadedSource.Balance.Equal(decimal.RequireFromString("40.00")) {
		t.Fatalf("expected source balance 40.00, got %s", reloadedSource.Balance)
	}
	if !reloadedDestination.Balance.Equal(decimal.RequireFromString("60.00")) {
		t.Fatalf("expected destination balance 60.00, got %s", reloadedDestination.Balance)
	}
	if reloadedSource.Version != source.Version+1 || reloadedDestination.Version != destination.Version+1 {
		t.Fatal("expected both versions bumped by the commit")
	}
}

func TestStoreConcurrentCommitsConserveBalance(t *testing.T) {
	store := NewStore()
	source := seedAccount(t, store, "ana@example.com", "123.456.789-09", "1000.00")
	destination := seedAccount(t, store, "rui@example.com", "987.654.321-00", "")

	amount := decimal.RequireFromString("10.00")
	const workers = 20

	var mu sync.Mutex
	successes := 0
	conflicts := 0

	var g errgroup.Group
	for i := 0; i < workers; i++ {
		g.Go(func() error {
			ctx := context.Background()

			loadedSource, err := store.GetByID(ctx, source.ID)
			if err != nil {
				return err
			}
			loadedDestination, err := store.GetByID(ctx, destination.ID)
			if err != nil {
				return err
			}

			_, err = store.CommitTransfer(
				ctx,
				loadedSource.Debit(amount), loadedSource.Version,
				loadedDestination.Credit(amount), loadedDestination.Version,
				domain.NewTransfer(source.ID, destination.ID, amount),
			)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case errors.Is(err, commons.ErrVersionConflict):
				conflicts++
			default:
				return err
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("unexpected commit error: %v", err)
	}

	if successes+conflicts != workers {
		t.Fatalf("expected every commit to succeed or conflict, got %d + %d of %d", successes, conflicts, workers)
	}
	if successes == 0 {
		t.Fatal("expected at least one commit to succeed")
	}

	finalSource, _ := store.GetByID(context.Background(), source.ID)
	finalDestination, _ := store.GetByID(context.Background(), destination.ID)

	moved := amount.Mul(decimal.NewFromInt(int64(successes)))
	if !finalSource.Balance.Equal(decimal.RequireFromString("1000.00").Sub(moved)) {
		t.Fatalf("expected source balance to drop by exactly %s, got %s", moved, finalSource.Balance)
	}
	if !finalDestination.Balance.Equal(moved) {
		t.Fatalf("expected destination balance %s, got %s", moved, finalDestination.Balance)
	}
	if finalSource.Balance.IsNegative() {
		t.Fatalf("source balance went negative: %s", finalSource.Balance)
	}

	page, err := store.FindPageBySourceOrDestination(context.Background(), source.ID, domain.NewPageRequest(0, workers, "", ""))
	if err != nil {
		t.Fatalf("failed to list transfers: %v", err)
	}
	if page.TotalElements != int64(successes) {
		t.Fatalf("expected exactly one record per successful commit, got %d for %d successes", page.TotalElements, successes)
	}
}

func TestStoreFindPageOrderingAndSlicing(t *testing.T) {
	store := NewStore()
	a := seedAccount(t, store, "ana@example.com", "123.456.789-09", "100.00")
	b := seedAccount(t, store, "rui@example.com", "987.654.321-00", "100.00")

	amounts := []string{"5.00", "15.00", "10.00"}
	for _, raw := range amounts {
		amount := decimal.RequireFromString(raw)
		source, _ := store.GetByID(context.Background(), a.ID)
		destination, _ := store.GetByID(context.Background(), b.ID)
		if _, err := store.CommitTransfer(
			context.Background(),
			source.Debit(amount), source.Version,
			destination.Credit(amount), destination.Version,
			domain.NewTransfer(a.ID, b.ID, amount),
		); err != nil {
			t.Fatalf("failed to record transfer of %s: %v", raw, err)
		}
	}

	page, err := store.FindPageBySourceOrDestination(context.Background(), a.ID, domain.NewPageRequest(0, 2, "amount", "DESC"))
	if err != nil {
		t.Fatalf("failed to list transfers: %v", err)
	}
	if len(page.Content) != 2 {
		t.Fatalf("expected a page of 2, got %d", len(page.Content))
	}
	if !page.Content[0].Amount.Equal(decimal.RequireFromString("15.00")) ||
		!page.Content[1].Amount.Equal(decimal.RequireFromString("10.00")) {
		t.Fatalf("expected amounts 15.00 then 10.00, got %s then %s", page.Content[0].Amount, page.Content[1].Amount)
	}
	if page.TotalElements != 3 || page.TotalPages != 2 {
		t.Fatalf("expected totals 3/2, got %d/%d", page.TotalElements, page.TotalPages)
	}

	// Requesting past the end yields an empty page, not an error.
	empty, err := store.FindPageBySourceOrDestination(context.Background(), a.ID, domain.NewPageRequest(5, 2, "", ""))
	if err != nil {
		t.Fatalf("expected an out-of-range page to succeed, got %v", err)
	}
	if len(empty.Content) != 0 {
		t.Fatalf("expected an empty page, got %d entries", len(empty.Content))
	}
}

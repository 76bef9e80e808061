// Package ledgerservice manages business logic layer of bank balances.
package ledgerservice

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/bank-ledger/internal/domain"
	"github.com/go-petr/bank-ledger/internal/levels"
)

// Repo provides the persistence gateway interface needed by the ledger.
//
//go:generate mockgen -source service.go -destination service_mock.go -package ledgerservice
type Repo interface {
	ReadAll(ctx context.Context) ([]domain.Account, error)
	Get(ctx context.Context, id uuid.UUID) (domain.Account, error)
	Upsert(ctx context.Context, a domain.Account) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Notifier publishes best-effort balance-change hints to other nodes.
type Notifier interface {
	Publish(ctx context.Context, a domain.Account) error
}

// Enqueuer buffers balance snapshots for the coalescing flush scheduler.
type Enqueuer interface {
	Add(a domain.Account)
}

// Service is the balance ledger. It validates mutations, applies them to
// the in-memory balance and routes the write through one of two paths:
//
//   - authoritative: the upsert is awaited before the mutation returns, so
//     a persistence failure surfaces to the caller;
//   - coalesced: a snapshot is enqueued (and a notification published when
//     a broadcast channel is configured) and the call returns immediately.
//
// In-memory balances are updated optimistically before persistence is
// confirmed. Two concurrent mutations on the same account race and the
// later store wins; this is accepted, not guaranteed against.
type Service struct {
	repo          Repo
	queue         Enqueuer
	notifier      Notifier // nil when no broadcast channel is configured
	levels        *levels.Policy
	authoritative bool

	// mu guards the accounts map, not the balances inside it.
	mu       sync.Mutex
	accounts map[uuid.UUID]*domain.Account
}

// New returns the ledger service. notifier may be nil.
func New(repo Repo, queue Enqueuer, notifier Notifier, policy *levels.Policy, authoritative bool) *Service {
	return &Service{
		repo:          repo,
		queue:         queue,
		notifier:      notifier,
		levels:        policy,
		authoritative: authoritative,
		accounts:      make(map[uuid.UUID]*domain.Account),
	}
}

// AddCoins adds the amount to the account balance. The level cap is
// enforced here and only here: removals and direct sets bypass it.
func (s *Service) AddCoins(ctx context.Context, id uuid.UUID, amount decimal.Decimal) domain.Result {
	a, err := s.account(ctx, id)
	if err != nil {
		return failure(amount, decimal.Zero, "cannot load account")
	}

	if amount.LessThanOrEqual(decimal.Zero) {
		return domain.Result{
			Amount:  amount,
			Balance: a.Balance,
			Status:  domain.StatusNotNegative,
			Message: "cannot add negative or zero coins",
		}
	}

	if a.Balance.Add(amount).GreaterThan(s.maxBalance(a)) {
		return domain.Result{
			Amount:  amount,
			Balance: a.Balance,
			Status:  domain.StatusMaxBalanceExceed,
			Message: "max bank balance exceeded by level",
		}
	}

	a.Balance = a.Balance.Add(amount)

	return s.persist(ctx, a, amount)
}

// RemoveCoins subtracts the amount from the account balance. Not subject
// to the level cap.
func (s *Service) RemoveCoins(ctx context.Context, id uuid.UUID, amount decimal.Decimal) domain.Result {
	a, err := s.account(ctx, id)
	if err != nil {
		return failure(amount, decimal.Zero, "cannot load account")
	}

	if amount.LessThanOrEqual(decimal.Zero) {
		return domain.Result{
			Amount:  amount,
			Balance: a.Balance,
			Status:  domain.StatusNotNegative,
			Message: "cannot remove negative or zero coins",
		}
	}

	enough, err := s.hasEnough(ctx, a, amount)
	if err != nil {
		return failure(amount, a.Balance, "cannot check balance")
	}

	if !enough {
		return domain.Result{
			Amount:  amount,
			Balance: a.Balance,
			Status:  domain.StatusNotEnough,
			Message: "not enough coins",
		}
	}

	a.Balance = a.Balance.Sub(amount)

	return s.persist(ctx, a, amount)
}

// SetCoins unconditionally replaces the account balance. Not subject to
// the level cap.
func (s *Service) SetCoins(ctx context.Context, id uuid.UUID, amount decimal.Decimal) domain.Result {
	a, err := s.account(ctx, id)
	if err != nil {
		return failure(amount, decimal.Zero, "cannot load account")
	}

	if amount.LessThanOrEqual(decimal.Zero) {
		return domain.Result{
			Amount:  amount,
			Balance: a.Balance,
			Status:  domain.StatusNotNegative,
			Message: "cannot set negative or zero coins",
		}
	}

	a.Balance = amount

	return s.persist(ctx, a, amount)
}

// HasEnough reports whether the account holds at least the given amount.
//
// In authoritative mode the check reads the persisted balance, so it may
// observe writes from other nodes; in coalesced mode it compares against
// the in-memory cached balance only.
func (s *Service) HasEnough(ctx context.Context, id uuid.UUID, amount decimal.Decimal) (bool, error) {
	a, err := s.account(ctx, id)
	if err != nil {
		return false, err
	}

	return s.hasEnough(ctx, a, amount)
}

// Get returns a copy of the account, creating it on first access.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (domain.Account, error) {
	a, err := s.account(ctx, id)
	if err != nil {
		return domain.Account{}, err
	}

	return *a, nil
}

// List returns every persisted account.
func (s *Service) List(ctx context.Context) ([]domain.Account, error) {
	return s.repo.ReadAll(ctx)
}

// Delete removes the account from storage and drops it from memory.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.mu.Lock()
	delete(s.accounts, id)
	s.mu.Unlock()

	return nil
}

func (s *Service) hasEnough(ctx context.Context, a *domain.Account, amount decimal.Decimal) (bool, error) {
	if !s.authoritative {
		return a.Balance.GreaterThanOrEqual(amount), nil
	}

	persisted, err := s.repo.Get(ctx, a.ID)
	if err != nil {
		if err == domain.ErrAccountNotFound {
			return false, nil
		}

		return false, err
	}

	return persisted.Balance.GreaterThanOrEqual(amount), nil
}

// account returns the live in-memory account for id, loading the persisted
// row (or creating a fresh account) on first access.
func (s *Service) account(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	s.mu.Lock()
	if a, ok := s.accounts[id]; ok {
		s.mu.Unlock()
		return a, nil
	}
	s.mu.Unlock()

	loaded, err := s.repo.Get(ctx, id)
	if err != nil {
		if err != domain.ErrAccountNotFound {
			zerolog.Ctx(ctx).Error().Err(err).Send()
			return nil, err
		}

		loaded = domain.NewAccount(id)
		level := s.levels.Default()
		loaded.Level = &level
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if a, ok := s.accounts[id]; ok {
		return a, nil
	}

	s.accounts[id] = &loaded

	return &loaded, nil
}

func (s *Service) maxBalance(a *domain.Account) decimal.Decimal {
	if a.Level != nil {
		return a.Level.MaxBalance
	}

	return s.levels.Default().MaxBalance
}

// persist routes a successful mutation through the configured write path.
func (s *Service) persist(ctx context.Context, a *domain.Account, amount decimal.Decimal) domain.Result {
	l := zerolog.Ctx(ctx)

	if s.authoritative {
		if _, err := s.repo.Upsert(ctx, *a); err != nil {
			l.Error().Err(err).Str("uuid", a.ID.String()).Send()

			return failure(amount, a.Balance, "cannot persist balance")
		}

		return success(amount, a.Balance)
	}

	if s.notifier != nil {
		// Best effort: a failed publish is logged and swallowed.
		if err := s.notifier.Publish(ctx, *a); err != nil {
			l.Error().Err(err).Str("uuid", a.ID.String()).Send()
		}
	}

	s.queue.Add(*a)

	return success(amount, a.Balance)
}

func success(amount, balance decimal.Decimal) domain.Result {
	return domain.Result{Amount: amount, Balance: balance, Status: domain.StatusSuccess}
}

func failure(amount, balance decimal.Decimal, message string) domain.Result {
	return domain.Result{Amount: amount, Balance: balance, Status: domain.StatusFailure, Message: message}
}

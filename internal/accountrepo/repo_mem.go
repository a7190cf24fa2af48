// Package accountrepo manages repository layer of accounts.
package accountrepo

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/go-petr/pet-ledger/internal/domain"
)

// RepoMem is the in-memory account registry. It exclusively owns every
// account and is the only way to look one up.
type RepoMem struct {
	mu       sync.RWMutex
	accounts map[string]domain.Account
}

// NewRepoMem returns an empty account RepoMem.
func NewRepoMem() *RepoMem {
	return &RepoMem{
		accounts: make(map[string]domain.Account),
	}
}

// Save stores the account under its number. An existing account with the
// same number is replaced.
func (r *RepoMem) Save(ctx context.Context, a domain.Account) {
	l := zerolog.Ctx(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.accounts[a.Number()]; ok {
		l.Warn().Str("account_number", a.Number()).Msg("account overwritten")
	}

	r.accounts[a.Number()] = a
}

// Get returns the account with the given number.
func (r *RepoMem) Get(ctx context.Context, number string) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.accounts[number]
	if !ok {
		l.Info().Str("account_number", number).Err(domain.ErrAccountNotFound).Send()
		return nil, domain.ErrAccountNotFound
	}

	return a, nil
}

// Exists reports whether an account with the given number is stored.
func (r *RepoMem) Exists(_ context.Context, number string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.accounts[number]

	return ok
}

// List returns all stored accounts in no particular order.
func (r *RepoMem) List(_ context.Context) []domain.Account {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]domain.Account, 0, len(r.accounts))
	for _, a := range r.accounts {
		items = append(items, a)
	}

	return items
}

// Package accountservice manages business logic layer of accounts.
package accountservice

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/pkg/configpkg"
)

// Repo provides data access layer interface needed by account service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package accountservice
type Repo interface {
	Save(ctx context.Context, a domain.Account)
	Get(ctx context.Context, number string) (domain.Account, error)
	Exists(ctx context.Context, number string) bool
	List(ctx context.Context) []domain.Account
}

// Service facilitates account service layer logic.
type Service struct {
	repo                 Repo
	uniqueAccountNumbers bool
}

// New returns account service struct to manage account bussines logic.
func New(ar Repo, config configpkg.Config) *Service {
	return &Service{
		repo:                 ar,
		uniqueAccountNumbers: config.UniqueAccountNumbers,
	}
}

// Create opens a checking account for the given customer.
//
// Unless unique account numbers are configured, an existing account with the
// same number is silently replaced.
func (s *Service) Create(ctx context.Context, name, nationalID, number string) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	if s.uniqueAccountNumbers && s.repo.Exists(ctx, number) {
		l.Info().Str("account_number", number).Err(domain.ErrAccountAlreadyExists).Send()
		return nil, domain.ErrAccountAlreadyExists
	}

	account := domain.NewCheckingAccount(number, domain.NewCustomer(name, nationalID))
	s.repo.Save(ctx, account)

	l.Info().Str("account_number", number).Msg("account created")

	return account, nil
}

// Get returns account for the given account number.
func (s *Service) Get(ctx context.Context, number string) (domain.Account, error) {
	account, err := s.repo.Get(ctx, number)
	if err != nil {
		return nil, err
	}

	return account, nil
}

// List returns all registered accounts.
func (s *Service) List(ctx context.Context) ([]domain.Account, error) {
	return s.repo.List(ctx), nil
}

// Deposit credits the account with the given amount.
//
// Deposit, Withdraw and Invest look the account up before validating the
// rest of the input, so an unknown account always reports ErrAccountNotFound.
func (s *Service) Deposit(ctx context.Context, number, amount string) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	account, err := s.repo.Get(ctx, number)
	if err != nil {
		return nil, err
	}

	amountDecimal, err := domain.ParseAmount(amount)
	if err != nil {
		l.Info().Err(err).Send()
		return nil, err
	}

	account.Deposit(amountDecimal)

	l.Info().
		Str("account_number", number).
		Str("amount", amountDecimal.String()).
		Msg("deposit recorded")

	return account, nil
}

// Withdraw debits the account if its balance covers the amount.
func (s *Service) Withdraw(ctx context.Context, number, amount string) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	account, err := s.repo.Get(ctx, number)
	if err != nil {
		return nil, err
	}

	amountDecimal, err := domain.ParseAmount(amount)
	if err != nil {
		l.Info().Err(err).Send()
		return nil, err
	}

	if err := account.Withdraw(amountDecimal); err != nil {
		l.Info().Str("account_number", number).Err(err).Send()
		return nil, err
	}

	l.Info().
		Str("account_number", number).
		Str("amount", amountDecimal.String()).
		Msg("withdrawal recorded")

	return account, nil
}

// Invest applies an investment of the given kind to the account.
func (s *Service) Invest(ctx context.Context, number string, kind domain.InvestmentKind, amount string) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	account, err := s.repo.Get(ctx, number)
	if err != nil {
		return nil, err
	}

	if !kind.IsValid() {
		l.Info().Str("investment_kind", string(kind)).Err(domain.ErrInvalidInvestmentKind).Send()
		return nil, domain.ErrInvalidInvestmentKind
	}

	amountDecimal, err := domain.ParseAmount(amount)
	if err != nil {
		l.Info().Err(err).Send()
		return nil, err
	}

	if err := account.ApplyInvestment(kind, amountDecimal); err != nil {
		l.Info().Str("account_number", number).Err(err).Send()
		return nil, err
	}

	l.Info().
		Str("account_number", number).
		Str("investment_kind", string(kind)).
		Str("amount", amountDecimal.String()).
		Msg("investment recorded")

	return account, nil
}

// History returns the account entries in chronological order.
func (s *Service) History(ctx context.Context, number string) ([]domain.Transaction, error) {
	account, err := s.repo.Get(ctx, number)
	if err != nil {
		return nil, err
	}

	return account.History(), nil
}

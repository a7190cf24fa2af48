// Package transferservice manages business logic layer of transfers.
package transferservice

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/go-petr/pet-ledger/internal/domain"
)

// AccountService provides the account lookup needed by transfer service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package transferservice
type AccountService interface {
	Get(ctx context.Context, number string) (domain.Account, error)
}

// Service facilitates transfer service layer logic.
type Service struct {
	accountService AccountService
}

// New return transfer service struct to manage transfer bussines logic.
func New(as AccountService) *Service {
	return &Service{
		accountService: as,
	}
}

// Transfer moves money between two registered accounts.
//
// Both accounts are looked up before the balance is checked, so an unknown
// account is reported even when the amount could not be covered.
func (s *Service) Transfer(ctx context.Context, arg domain.CreateTransferParams) (domain.TransferResult, error) {
	l := zerolog.Ctx(ctx)

	var result domain.TransferResult

	amount, err := domain.ParseAmount(arg.Amount)
	if err != nil {
		l.Info().Err(err).Send()
		return result, err
	}

	fromAccount, err := s.accountService.Get(ctx, arg.FromAccountNumber)
	if err != nil {
		l.Info().Err(err).Send()
		return result, err
	}

	toAccount, err := s.accountService.Get(ctx, arg.ToAccountNumber)
	if err != nil {
		l.Info().Err(err).Send()
		return result, err
	}

	fromOffset := len(fromAccount.History())
	toOffset := len(toAccount.History())

	if err := fromAccount.Transfer(toAccount, amount); err != nil {
		l.Info().
			Str("from_account_number", arg.FromAccountNumber).
			Str("to_account_number", arg.ToAccountNumber).
			Err(err).
			Send()

		return result, err
	}

	result.FromAccount = fromAccount
	result.ToAccount = toAccount

	// A self transfer writes all three entries to the same log, so entries
	// are picked by kind rather than by position.
	for _, e := range fromAccount.History()[fromOffset:] {
		if e.Kind == domain.KindWithdrawal || e.Kind == domain.KindTransferOut {
			result.FromEntries = append(result.FromEntries, e)
		}
	}

	for _, e := range toAccount.History()[toOffset:] {
		if e.Kind == domain.KindDeposit {
			result.ToEntry = e
			break
		}
	}

	l.Info().
		Str("from_account_number", arg.FromAccountNumber).
		Str("to_account_number", arg.ToAccountNumber).
		Str("amount", amount.String()).
		Msg("transfer recorded")

	return result, nil
}

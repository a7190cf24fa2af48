// Package test provides fixtures shared by package tests.
package test

import (
	"github.com/shopspring/decimal"

	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/pkg/randompkg"
)

// RandomAccount returns a checking account with a random owner and number.
// A positive balance is credited through a single deposit.
func RandomAccount(balance string) *domain.CheckingAccount {
	owner := domain.NewCustomer(randompkg.Owner(), randompkg.NationalID())
	account := domain.NewCheckingAccount(randompkg.AccountNumber(), owner)

	if b := decimal.RequireFromString(balance); b.IsPositive() {
		account.Deposit(b)
	}

	return account
}

// Package domain provides defenitions of all ledger entities.
package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	// ErrAccountNotFound indicates that the account is not found.
	ErrAccountNotFound = errors.New("account not found")
	// ErrAccountAlreadyExists indicates that the account number is already taken.
	ErrAccountAlreadyExists = errors.New("account number already exists")
	// ErrInvalidAmount indicates invalid amount.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrNonPositiveAmount indicates zero or negative amount.
	ErrNonPositiveAmount = errors.New("amount must be positive")
	// ErrInsufficientBalance indicates that the account does not have sufficient balance.
	ErrInsufficientBalance = errors.New("insufficient balance")
	// ErrInsufficientBalanceForTransfer indicates a transfer larger than the source balance.
	ErrInsufficientBalanceForTransfer = fmt.Errorf("%w for transfer", ErrInsufficientBalance)
	// ErrInsufficientBalanceForInvestment indicates an investment larger than the balance.
	ErrInsufficientBalanceForInvestment = fmt.Errorf("%w for investment", ErrInsufficientBalance)
)

// AccountType names an account variant.
type AccountType string

// Account variants.
const (
	AccountTypeChecking AccountType = "CHECKING"
)

// Account is a ledger entity holding a balance and an append-only history.
//
// Variants differ in how they apply investments.
type Account interface {
	Number() string
	Owner() Customer
	Type() AccountType
	Balance() decimal.Decimal
	History() []Transaction

	Deposit(amount decimal.Decimal)
	Withdraw(amount decimal.Decimal) error
	Transfer(target Account, amount decimal.Decimal) error
	ApplyInvestment(kind InvestmentKind, amount decimal.Decimal) error
}

// ledger holds the state and operations shared by all account variants.
type ledger struct {
	number  string
	owner   Customer
	balance decimal.Decimal
	history []Transaction
}

func (l *ledger) Number() string { return l.number }

func (l *ledger) Owner() Customer { return l.owner }

func (l *ledger) Balance() decimal.Decimal { return l.balance }

// History returns a copy of the account entries in chronological order.
func (l *ledger) History() []Transaction {
	out := make([]Transaction, len(l.history))
	copy(out, l.history)

	return out
}

// Deposit credits the account. It accepts any amount.
func (l *ledger) Deposit(amount decimal.Decimal) {
	l.balance = l.balance.Add(amount)
	l.history = append(l.history, depositTransaction(amount))
}

// Withdraw debits the account if the balance covers the amount.
func (l *ledger) Withdraw(amount decimal.Decimal) error {
	if amount.GreaterThan(l.balance) {
		return ErrInsufficientBalance
	}

	l.debit(amount, withdrawalTransaction(amount))

	return nil
}

// Transfer moves the amount to the target account.
//
// The source records both a withdrawal and a transfer entry, the target
// records a single deposit.
func (l *ledger) Transfer(target Account, amount decimal.Decimal) error {
	if amount.GreaterThan(l.balance) {
		return ErrInsufficientBalanceForTransfer
	}

	if err := l.Withdraw(amount); err != nil {
		return err
	}

	target.Deposit(amount)
	l.history = append(l.history, transferOutTransaction(target.Number(), amount))

	return nil
}

func (l *ledger) debit(amount decimal.Decimal, t Transaction) {
	l.balance = l.balance.Sub(amount)
	l.history = append(l.history, t)
}

// CheckingAccount is an account whose investments are plain balance debits.
type CheckingAccount struct {
	ledger
}

// NewCheckingAccount returns an empty checking account.
func NewCheckingAccount(number string, owner Customer) *CheckingAccount {
	return &CheckingAccount{
		ledger: ledger{
			number:  number,
			owner:   owner,
			balance: decimal.Zero,
		},
	}
}

// Type implements Account.
func (a *CheckingAccount) Type() AccountType { return AccountTypeChecking }

// ApplyInvestment removes the amount from the balance. Nothing is credited
// in return.
func (a *CheckingAccount) ApplyInvestment(kind InvestmentKind, amount decimal.Decimal) error {
	if amount.GreaterThan(a.balance) {
		return ErrInsufficientBalanceForInvestment
	}

	a.debit(amount, investmentTransaction(kind, amount))

	return nil
}

package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrInvalidInvestmentKind indicates that the investment kind is not supported.
var ErrInvalidInvestmentKind = errors.New("invalid investment kind")

// TransactionKind is the category of a balance-affecting event.
type TransactionKind string

// Transaction kinds recorded in account history.
const (
	KindDeposit     TransactionKind = "DEPOSIT"
	KindWithdrawal  TransactionKind = "WITHDRAWAL"
	KindInvestment  TransactionKind = "INVESTMENT"
	KindTransferOut TransactionKind = "TRANSFER_OUT"
)

// InvestmentKind is the product an investment is applied to.
type InvestmentKind string

// Supported investment kinds.
const (
	RendaFixa     InvestmentKind = "RENDA_FIXA"
	RendaVariavel InvestmentKind = "RENDA_VARIAVEL"
)

// InvestmentKinds holds all the supported investment kinds in menu order.
var InvestmentKinds = []InvestmentKind{
	RendaFixa,
	RendaVariavel,
}

// IsValid reports whether the kind is one of the supported investment kinds.
func (k InvestmentKind) IsValid() bool {
	for _, v := range InvestmentKinds {
		if k == v {
			return true
		}
	}

	return false
}

// ParseInvestmentKind accepts either the kind name (case-insensitive) or its
// one-based menu code.
func ParseInvestmentKind(s string) (InvestmentKind, error) {
	s = strings.TrimSpace(s)

	for i, k := range InvestmentKinds {
		if strings.EqualFold(s, string(k)) || s == fmt.Sprint(i+1) {
			return k, nil
		}
	}

	return "", ErrInvalidInvestmentKind
}

// Transaction holds one immutable entry of an account history.
type Transaction struct {
	ID          uuid.UUID       `json:"id"`
	Kind        TransactionKind `json:"kind"`
	Description string          `json:"description"`
	// never negative for entries produced by the service layer
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt time.Time       `json:"created_at"`
}

func newTransaction(kind TransactionKind, description string, amount decimal.Decimal) Transaction {
	return Transaction{
		ID:          uuid.New(),
		Kind:        kind,
		Description: description,
		Amount:      amount,
		CreatedAt:   time.Now(),
	}
}

func depositTransaction(amount decimal.Decimal) Transaction {
	return newTransaction(KindDeposit, "Deposit", amount)
}

func withdrawalTransaction(amount decimal.Decimal) Transaction {
	return newTransaction(KindWithdrawal, "Withdrawal", amount)
}

func investmentTransaction(kind InvestmentKind, amount decimal.Decimal) Transaction {
	return newTransaction(KindInvestment, "Investment in "+string(kind), amount)
}

func transferOutTransaction(toAccountNumber string, amount decimal.Decimal) Transaction {
	return newTransaction(KindTransferOut, "PIX transfer to "+toAccountNumber, amount)
}

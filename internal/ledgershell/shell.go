// Package ledgershell manages the interactive menu on top of the ledger services.
package ledgershell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/internal/middleware"
	"github.com/go-petr/pet-ledger/pkg/configpkg"
	"github.com/go-petr/pet-ledger/pkg/currencypkg"
	"github.com/go-petr/pet-ledger/pkg/errorspkg"
)

// AccountService provides account operations needed by the shell.
//
//go:generate mockgen -source shell.go -destination shell_mock.go -package ledgershell
type AccountService interface {
	Create(ctx context.Context, name, nationalID, number string) (domain.Account, error)
	Get(ctx context.Context, number string) (domain.Account, error)
	List(ctx context.Context) ([]domain.Account, error)
	Deposit(ctx context.Context, number, amount string) (domain.Account, error)
	Withdraw(ctx context.Context, number, amount string) (domain.Account, error)
	Invest(ctx context.Context, number string, kind domain.InvestmentKind, amount string) (domain.Account, error)
	History(ctx context.Context, number string) ([]domain.Transaction, error)
}

// TransferService provides transfer operations needed by the shell.
type TransferService interface {
	Transfer(ctx context.Context, arg domain.CreateTransferParams) (domain.TransferResult, error)
}

// errEndOfInput is returned by commands when the input is exhausted mid-prompt.
var errEndOfInput = errors.New("end of input")

const menu = `
=== BANK MENU ===
1 - Create account
2 - Deposit
3 - Withdraw
4 - PIX transfer
5 - Invest
6 - Transaction history
7 - List accounts
0 - Exit
`

// Shell facilitates the interactive menu.
type Shell struct {
	accountService  AccountService
	transferService TransferService
	logger          zerolog.Logger
	validate        *validator.Validate
	currency        string
	prompt          string
}

// New returns the interactive shell.
func New(as AccountService, ts TransferService, logger zerolog.Logger, config configpkg.Config) (*Shell, error) {
	v, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("cannot register validators: %w", err)
	}

	return &Shell{
		accountService:  as,
		transferService: ts,
		logger:          logger,
		validate:        v,
		currency:        config.Currency,
		prompt:          config.Prompt,
	}, nil
}

type session struct {
	in  *bufio.Scanner
	out io.Writer
}

func (s *session) printf(format string, a ...any) {
	fmt.Fprintf(s.out, format, a...)
}

func (s *session) println(a ...any) {
	fmt.Fprintln(s.out, a...)
}

// ask prints the label and returns the next trimmed input line.
func (s *session) ask(label string) (string, error) {
	s.printf("%s", label)

	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", err
		}

		return "", errEndOfInput
	}

	return strings.TrimSpace(s.in.Text()), nil
}

type command struct {
	name string
	run  func(ctx context.Context, sess *session) error
}

func (s *Shell) commands() map[string]command {
	return map[string]command{
		"1": {name: "create_account", run: s.createAccount},
		"2": {name: "deposit", run: s.deposit},
		"3": {name: "withdraw", run: s.withdraw},
		"4": {name: "transfer", run: s.transfer},
		"5": {name: "invest", run: s.invest},
		"6": {name: "history", run: s.history},
		"7": {name: "list_accounts", run: s.listAccounts},
	}
}

// Run reads menu choices from in until the exit option or the end of input
// and writes every prompt and result to out.
func (s *Shell) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	sess := &session{in: bufio.NewScanner(in), out: out}
	commands := s.commands()

	for {
		sess.printf("%s", menu)

		choice, err := sess.ask(s.prompt)
		if err != nil {
			if errors.Is(err, errEndOfInput) {
				return nil
			}

			return err
		}

		if choice == "0" {
			sess.println("Shutting down...")
			return nil
		}

		c, ok := commands[choice]
		if !ok {
			sess.println("Invalid option.")
			continue
		}

		run := func(ctx context.Context) error { return c.run(ctx, sess) }

		err = middleware.CommandLogger(s.logger, c.name, run)(ctx)
		if errors.Is(err, errEndOfInput) {
			return nil
		}
	}
}

func (s *Shell) money(amount decimal.Decimal) string {
	return currencypkg.Format(s.currency, amount)
}

// check validates the request and reports the first failing field.
func (s *Shell) check(sess *session, req any) error {
	err := s.validate.Struct(req)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		field := ve[0]
		sess.println(field.Field() + errorMsg(field) + ".")

		return fmt.Errorf("%w: %s", errorspkg.ErrInvalidInput, field.Field())
	}

	return s.fail(sess, err)
}

// fail reports a service error to the user and returns it for logging.
func (s *Shell) fail(sess *session, err error) error {
	switch {
	case errors.Is(err, domain.ErrAccountNotFound):
		sess.println("Account not found.")
	case errors.Is(err, domain.ErrInsufficientBalanceForTransfer):
		sess.println("Insufficient balance for transfer.")
	case errors.Is(err, domain.ErrInsufficientBalanceForInvestment):
		sess.println("Insufficient balance for investment.")
	case errors.Is(err, domain.ErrInsufficientBalance):
		sess.println("Insufficient balance.")
	case errors.Is(err, domain.ErrAccountAlreadyExists):
		sess.println("Account number already exists.")
	case errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrNonPositiveAmount),
		errors.Is(err, domain.ErrInvalidInvestmentKind):
		sess.println("Invalid input: " + err.Error() + ".")
	default:
		sess.println("Unexpected error: " + errorspkg.ErrInternal.Error() + ".")
		return fmt.Errorf("%w: %v", errorspkg.ErrInternal, err)
	}

	return err
}

type createRequest struct {
	Name       string `validate:"required"`
	NationalID string `validate:"required"`
	Number     string `validate:"required"`
}

func (s *Shell) createAccount(ctx context.Context, sess *session) error {
	var (
		req createRequest
		err error
	)

	if req.Name, err = sess.ask("Customer name: "); err != nil {
		return err
	}

	if req.NationalID, err = sess.ask("National ID (CPF): "); err != nil {
		return err
	}

	if req.Number, err = sess.ask("Account number: "); err != nil {
		return err
	}

	if err := s.check(sess, req); err != nil {
		return err
	}

	if _, err := s.accountService.Create(ctx, req.Name, req.NationalID, req.Number); err != nil {
		return s.fail(sess, err)
	}

	sess.println("Account created successfully!")

	return nil
}

type numberRequest struct {
	Number string `validate:"required"`
}

// askAccount reads an account number and makes sure the account exists
// before any further input is requested.
func (s *Shell) askAccount(ctx context.Context, sess *session, label string) (string, error) {
	var req numberRequest

	number, err := sess.ask(label)
	if err != nil {
		return "", err
	}

	req.Number = number
	if err := s.check(sess, req); err != nil {
		return "", err
	}

	if _, err := s.accountService.Get(ctx, number); err != nil {
		return "", s.fail(sess, err)
	}

	return number, nil
}

type amountRequest struct {
	Amount string `validate:"required,amount"`
}

func (s *Shell) askAmount(sess *session, label string) (string, error) {
	amount, err := sess.ask(label)
	if err != nil {
		return "", err
	}

	if err := s.check(sess, amountRequest{Amount: amount}); err != nil {
		return "", err
	}

	return amount, nil
}

func (s *Shell) deposit(ctx context.Context, sess *session) error {
	number, err := s.askAccount(ctx, sess, "Account number: ")
	if err != nil {
		return err
	}

	amount, err := s.askAmount(sess, "Deposit amount: ")
	if err != nil {
		return err
	}

	account, err := s.accountService.Deposit(ctx, number, amount)
	if err != nil {
		return s.fail(sess, err)
	}

	sess.println("Deposit completed. Balance: " + s.money(account.Balance()))

	return nil
}

func (s *Shell) withdraw(ctx context.Context, sess *session) error {
	number, err := s.askAccount(ctx, sess, "Account number: ")
	if err != nil {
		return err
	}

	amount, err := s.askAmount(sess, "Withdrawal amount: ")
	if err != nil {
		return err
	}

	account, err := s.accountService.Withdraw(ctx, number, amount)
	if err != nil {
		return s.fail(sess, err)
	}

	sess.println("Withdrawal completed. Balance: " + s.money(account.Balance()))

	return nil
}

type transferRequest struct {
	From string `validate:"required"`
	To   string `validate:"required"`
}

func (s *Shell) transfer(ctx context.Context, sess *session) error {
	var (
		req transferRequest
		err error
	)

	if req.From, err = sess.ask("Source account: "); err != nil {
		return err
	}

	if req.To, err = sess.ask("Target account: "); err != nil {
		return err
	}

	if err := s.check(sess, req); err != nil {
		return err
	}

	// Both accounts must exist before the amount is asked for. The transfer
	// service repeats the lookup on its own.
	_, fromErr := s.accountService.Get(ctx, req.From)
	_, toErr := s.accountService.Get(ctx, req.To)

	for _, err := range []error{fromErr, toErr} {
		if err == nil {
			continue
		}

		if errors.Is(err, domain.ErrAccountNotFound) {
			sess.println("Account(s) not found.")
			return err
		}

		return s.fail(sess, err)
	}

	amount, err := s.askAmount(sess, "Transfer amount: ")
	if err != nil {
		return err
	}

	result, err := s.transferService.Transfer(ctx, domain.CreateTransferParams{
		FromAccountNumber: req.From,
		ToAccountNumber:   req.To,
		Amount:            amount,
	})
	if err != nil {
		return s.fail(sess, err)
	}

	sess.println("Transfer completed. Balance: " + s.money(result.FromAccount.Balance()))

	return nil
}

type investRequest struct {
	Kind string `validate:"required,investmentkind"`
}

func (s *Shell) invest(ctx context.Context, sess *session) error {
	number, err := s.askAccount(ctx, sess, "Account number: ")
	if err != nil {
		return err
	}

	var req investRequest

	if req.Kind, err = sess.ask("Investment kind (1 - RENDA_FIXA, 2 - RENDA_VARIAVEL): "); err != nil {
		return err
	}

	if err := s.check(sess, req); err != nil {
		return err
	}

	kind, err := domain.ParseInvestmentKind(req.Kind)
	if err != nil {
		return s.fail(sess, err)
	}

	amount, err := s.askAmount(sess, "Investment amount: ")
	if err != nil {
		return err
	}

	account, err := s.accountService.Invest(ctx, number, kind, amount)
	if err != nil {
		return s.fail(sess, err)
	}

	sess.println("Investment applied. Balance: " + s.money(account.Balance()))

	return nil
}

func (s *Shell) history(ctx context.Context, sess *session) error {
	number, err := sess.ask("Account number: ")
	if err != nil {
		return err
	}

	if err := s.check(sess, numberRequest{Number: number}); err != nil {
		return err
	}

	history, err := s.accountService.History(ctx, number)
	if err != nil {
		return s.fail(sess, err)
	}

	if len(history) == 0 {
		sess.println("No transactions.")
		return nil
	}

	sess.println("Transaction history:")

	for _, t := range history {
		sess.printf("%s of %s at %s\n", t.Description, s.money(t.Amount), t.CreatedAt.Format(time.RFC3339))
	}

	return nil
}

func (s *Shell) listAccounts(ctx context.Context, sess *session) error {
	accounts, err := s.accountService.List(ctx)
	if err != nil {
		return s.fail(sess, err)
	}

	if len(accounts) == 0 {
		sess.println("No accounts.")
		return nil
	}

	sort.Slice(accounts, func(i, j int) bool {
		return accounts[i].Number() < accounts[j].Number()
	})

	sess.println("Accounts:")

	for _, a := range accounts {
		sess.printf("%s | %s | %s\n", a.Number(), a.Owner().Name, s.money(a.Balance()))
	}

	return nil
}

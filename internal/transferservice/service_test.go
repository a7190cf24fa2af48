package transferservice

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/internal/test"
	"github.com/go-petr/pet-ledger/pkg/errorspkg"
)

func entryKinds(entries []domain.Transaction) []domain.TransactionKind {
	out := make([]domain.TransactionKind, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Kind)
	}

	return out
}

func TestTransfer(t *testing.T) {
	testCases := []struct {
		name          string
		fromBalance   string
		toBalance     string
		amount        string
		selfTransfer  bool
		buildStubs    func(accountService *MockAccountService, from, to domain.Account)
		checkResponse func(t *testing.T, res domain.TransferResult, err error, from, to domain.Account)
	}{
		{
			name:        "OK",
			fromBalance: "100.0",
			toBalance:   "0",
			amount:      "40.0",
			buildStubs: func(accountService *MockAccountService, from, to domain.Account) {
				accountService.EXPECT().Get(gomock.Any(), gomock.Eq(from.Number())).Times(1).Return(from, nil)
				accountService.EXPECT().Get(gomock.Any(), gomock.Eq(to.Number())).Times(1).Return(to, nil)
			},
			checkResponse: func(t *testing.T, res domain.TransferResult, err error, from, to domain.Account) {
				require.NoError(t, err)

				require.True(t, from.Balance().Equal(decimal.NewFromInt(60)), "from=%s", from.Balance())
				require.True(t, to.Balance().Equal(decimal.NewFromInt(40)), "to=%s", to.Balance())

				wantFrom := []domain.TransactionKind{domain.KindDeposit, domain.KindWithdrawal, domain.KindTransferOut}
				if diff := cmp.Diff(wantFrom, entryKinds(from.History())); diff != "" {
					t.Errorf("from history mismatch (-want +got):\n%s", diff)
				}

				wantTo := []domain.TransactionKind{domain.KindDeposit}
				if diff := cmp.Diff(wantTo, entryKinds(to.History())); diff != "" {
					t.Errorf("to history mismatch (-want +got):\n%s", diff)
				}

				require.Same(t, from, res.FromAccount)
				require.Same(t, to, res.ToAccount)
				require.Equal(t, []domain.TransactionKind{domain.KindWithdrawal, domain.KindTransferOut}, entryKinds(res.FromEntries))
				require.Equal(t, domain.KindDeposit, res.ToEntry.Kind)
				require.Equal(t, "PIX transfer to "+to.Number(), res.FromEntries[1].Description)
			},
		},
		{
			name:         "SelfTransfer",
			fromBalance:  "100",
			amount:       "40",
			selfTransfer: true,
			buildStubs: func(accountService *MockAccountService, from, to domain.Account) {
				accountService.EXPECT().Get(gomock.Any(), gomock.Eq(from.Number())).Times(2).Return(from, nil)
			},
			checkResponse: func(t *testing.T, res domain.TransferResult, err error, from, to domain.Account) {
				require.NoError(t, err)
				require.Same(t, from, to)
				require.True(t, from.Balance().Equal(decimal.NewFromInt(100)), "balance=%s", from.Balance())

				want := []domain.TransactionKind{
					domain.KindDeposit, domain.KindWithdrawal, domain.KindDeposit, domain.KindTransferOut,
				}
				if diff := cmp.Diff(want, entryKinds(from.History())); diff != "" {
					t.Errorf("history mismatch (-want +got):\n%s", diff)
				}

				require.Equal(t, []domain.TransactionKind{domain.KindWithdrawal, domain.KindTransferOut}, entryKinds(res.FromEntries))
				require.Equal(t, domain.KindDeposit, res.ToEntry.Kind)
				require.True(t, res.ToEntry.Amount.Equal(decimal.NewFromInt(40)))
				require.Equal(t, from.History()[2], res.ToEntry)
			},
		},
		{
			name:        "InvalidAmount",
			fromBalance: "100",
			toBalance:   "0",
			amount:      "!@#$",
			buildStubs: func(accountService *MockAccountService, from, to domain.Account) {
				accountService.EXPECT().Get(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, res domain.TransferResult, err error, from, to domain.Account) {
				require.Empty(t, res)
				require.ErrorIs(t, err, domain.ErrInvalidAmount)
			},
		},
		{
			name:        "NegativeAmount",
			fromBalance: "100",
			toBalance:   "0",
			amount:      "-100",
			buildStubs: func(accountService *MockAccountService, from, to domain.Account) {
				accountService.EXPECT().Get(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, res domain.TransferResult, err error, from, to domain.Account) {
				require.Empty(t, res)
				require.ErrorIs(t, err, domain.ErrNonPositiveAmount)
			},
		},
		{
			name:        "FromAccountNotFound",
			fromBalance: "100",
			toBalance:   "0",
			amount:      "10",
			buildStubs: func(accountService *MockAccountService, from, to domain.Account) {
				accountService.EXPECT().Get(gomock.Any(), gomock.Eq(from.Number())).
					Times(1).
					Return(nil, domain.ErrAccountNotFound)
				accountService.EXPECT().Get(gomock.Any(), gomock.Eq(to.Number())).Times(0)
			},
			checkResponse: func(t *testing.T, res domain.TransferResult, err error, from, to domain.Account) {
				require.Empty(t, res)
				require.ErrorIs(t, err, domain.ErrAccountNotFound)
				require.Len(t, to.History(), 0)
			},
		},
		{
			name:        "ToAccountNotFound",
			fromBalance: "100",
			toBalance:   "0",
			amount:      "1000",
			buildStubs: func(accountService *MockAccountService, from, to domain.Account) {
				accountService.EXPECT().Get(gomock.Any(), gomock.Eq(from.Number())).Times(1).Return(from, nil)
				accountService.EXPECT().Get(gomock.Any(), gomock.Eq(to.Number())).
					Times(1).
					Return(nil, domain.ErrAccountNotFound)
			},
			checkResponse: func(t *testing.T, res domain.TransferResult, err error, from, to domain.Account) {
				require.Empty(t, res)
				require.ErrorIs(t, err, domain.ErrAccountNotFound)
				require.True(t, from.Balance().Equal(decimal.NewFromInt(100)))
				require.Len(t, from.History(), 1)
			},
		},
		{
			name:        "AccountServiceErr",
			fromBalance: "100",
			toBalance:   "0",
			amount:      "10",
			buildStubs: func(accountService *MockAccountService, from, to domain.Account) {
				accountService.EXPECT().Get(gomock.Any(), gomock.Eq(from.Number())).
					Times(1).
					Return(nil, errorspkg.ErrInternal)
			},
			checkResponse: func(t *testing.T, res domain.TransferResult, err error, from, to domain.Account) {
				require.Empty(t, res)
				require.EqualError(t, err, errorspkg.ErrInternal.Error())
			},
		},
		{
			name:        "InsufficientBalance",
			fromBalance: "30",
			toBalance:   "5",
			amount:      "30.01",
			buildStubs: func(accountService *MockAccountService, from, to domain.Account) {
				accountService.EXPECT().Get(gomock.Any(), gomock.Eq(from.Number())).Times(1).Return(from, nil)
				accountService.EXPECT().Get(gomock.Any(), gomock.Eq(to.Number())).Times(1).Return(to, nil)
			},
			checkResponse: func(t *testing.T, res domain.TransferResult, err error, from, to domain.Account) {
				require.Empty(t, res)
				require.ErrorIs(t, err, domain.ErrInsufficientBalanceForTransfer)
				require.ErrorIs(t, err, domain.ErrInsufficientBalance)

				require.True(t, from.Balance().Equal(decimal.NewFromInt(30)))
				require.True(t, to.Balance().Equal(decimal.NewFromInt(5)))
				require.Len(t, from.History(), 1)
				require.Len(t, to.History(), 1)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			from := test.RandomAccount(tc.fromBalance)
			to := from

			if !tc.selfTransfer {
				to = test.RandomAccount(tc.toBalance)
			}

			accountService := NewMockAccountService(ctrl)
			tc.buildStubs(accountService, from, to)

			transferService := New(accountService)

			res, err := transferService.Transfer(context.Background(), domain.CreateTransferParams{
				FromAccountNumber: from.Number(),
				ToAccountNumber:   to.Number(),
				Amount:            tc.amount,
			})

			tc.checkResponse(t, res, err, from, to)
		})
	}
}

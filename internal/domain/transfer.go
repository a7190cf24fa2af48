package domain

// CreateTransferParams is the input data for a transfer between two accounts.
type CreateTransferParams struct {
	FromAccountNumber string `json:"from_account_number"`
	ToAccountNumber   string `json:"to_account_number"`
	Amount            string `json:"amount"`
}

// TransferResult is the result of a successful transfer.
//
// FromEntries holds the withdrawal and the transfer entry appended to the
// source, ToEntry the deposit appended to the target.
type TransferResult struct {
	FromAccount Account       `json:"from_account"`
	ToAccount   Account       `json:"to_account"`
	FromEntries []Transaction `json:"from_entries"`
	ToEntry     Transaction   `json:"to_entry"`
}

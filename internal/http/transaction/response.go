package transaction

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/eaglebank/eaglebank-api/internal/account"
	"github.com/eaglebank/eaglebank-api/internal/transaction"
)

type transactionResponse struct {
	ID               string           `json:"id"`
	Amount           decimal.Decimal  `json:"amount"`
	Currency         account.Currency `json:"currency"`
	Type             transaction.Type `json:"type"`
	Reference        string           `json:"reference,omitempty"`
	UserID           string           `json:"userId"`
	AccountNumber    string           `json:"accountNumber"`
	CreatedTimestamp time.Time        `json:"createdTimestamp"`
}

type listTransactionsResponse struct {
	Transactions []transactionResponse `json:"transactions"`
}

func toResponse(tx *transaction.Transaction) transactionResponse {
	return transactionResponse{
		ID:               tx.ID,
		Amount:           tx.Amount,
		Currency:         tx.Currency,
		Type:             tx.Type,
		Reference:        tx.Reference,
		UserID:           tx.UserID,
		AccountNumber:    tx.AccountNumber,
		CreatedTimestamp: tx.CreatedAt.UTC(),
	}
}

func toListResponse(txs []*transaction.Transaction) listTransactionsResponse {
	resp := listTransactionsResponse{Transactions: make([]transactionResponse, len(txs))}
	for i, tx := range txs {
		resp.Transactions[i] = toResponse(tx)
	}

	return resp
}

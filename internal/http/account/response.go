package account

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/eaglebank/eaglebank-api/internal/account"
)

type accountResponse struct {
	AccountNumber    string           `json:"accountNumber"`
	SortCode         string           `json:"sortCode"`
	Name             string           `json:"name"`
	AccountType      account.Type     `json:"accountType"`
	Balance          decimal.Decimal  `json:"balance"`
	Currency         account.Currency `json:"currency"`
	CreatedTimestamp time.Time        `json:"createdTimestamp"`
	UpdatedTimestamp time.Time        `json:"updatedTimestamp"`
}

type listAccountsResponse struct {
	Accounts []accountResponse `json:"accounts"`
}

func toResponse(acc *account.Account) accountResponse {
	return accountResponse{
		AccountNumber:    acc.AccountNumber,
		SortCode:         acc.SortCode,
		Name:             acc.Name,
		AccountType:      acc.AccountType,
		Balance:          acc.Balance,
		Currency:         acc.Currency,
		CreatedTimestamp: acc.CreatedAt.UTC(),
		UpdatedTimestamp: acc.UpdatedAt.UTC(),
	}
}

func toListResponse(accs []*account.Account) listAccountsResponse {
	resp := listAccountsResponse{Accounts: make([]accountResponse, len(accs))}
	for i, acc := range accs {
		resp.Accounts[i] = toResponse(acc)
	}

	return resp
}

package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/eaglebank/eaglebank-api/internal/account"
	"github.com/eaglebank/eaglebank-api/internal/id"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=transaction
type Repository interface {
	GetTransaction(ctx context.Context, id string) (*Transaction, error)
	ListByAccount(ctx context.Context, accountNumber string) ([]*Transaction, error)

	BeginPosting(ctx context.Context) (PostingTx, error)
}

// PostingTx is a single serializable store transaction covering the balance
// mutation and the transaction insert. The account row is locked for the
// duration so concurrent withdrawals cannot both read a stale balance.
type PostingTx interface {
	AccountForUpdate(ctx context.Context, accountNumber string) (*account.Account, error)
	UpdateBalance(ctx context.Context, accountNumber string, balance decimal.Decimal, updatedAt time.Time) error
	CreateTransaction(ctx context.Context, tx *Transaction) error
	Commit() error
	Rollback() error
}

type Service struct {
	accounts account.Repository
	repo     Repository
}

func NewService(accounts account.Repository, repo Repository) *Service {
	return &Service{accounts: accounts, repo: repo}
}

type PostParams struct {
	Amount    decimal.Decimal
	Currency  account.Currency
	Type      Type
	Reference string
}

// Post validates and applies a deposit or withdrawal against an account,
// persisting the new balance and the transaction record as one atomic unit.
// The authenticated principal is authoritative for the record's UserID.
func (s *Service) Post(ctx context.Context, principal, accountNumber string, params PostParams) (*Transaction, error) {
	ptx, err := s.repo.BeginPosting(ctx)
	if err != nil {
		return nil, fmt.Errorf("beginning posting: %w", err)
	}
	defer ptx.Rollback()

	acc, err := ptx.AccountForUpdate(ctx, accountNumber)
	if err != nil {
		return nil, err
	}

	if err := account.Authorize(principal, acc); err != nil {
		return nil, err
	}

	if err := ValidateRequest(params, acc.Currency); err != nil {
		return nil, err
	}

	var balance decimal.Decimal

	switch params.Type {
	case TypeWithdrawal:
		if err := ValidateFundsAvailable(params.Amount, acc.Balance); err != nil {
			return nil, err
		}

		balance = acc.Balance.Sub(params.Amount)
	case TypeDeposit:
		balance = acc.Balance.Add(params.Amount)
	}

	now := time.Now()

	tx := &Transaction{
		ID:            id.NewTransactionID(),
		Amount:        params.Amount,
		Currency:      params.Currency,
		Type:          params.Type,
		Reference:     params.Reference,
		UserID:        principal,
		AccountNumber: accountNumber,
		CreatedAt:     now,
	}

	if err := ptx.UpdateBalance(ctx, accountNumber, balance, now); err != nil {
		return nil, fmt.Errorf("updating balance: %w", err)
	}

	if err := ptx.CreateTransaction(ctx, tx); err != nil {
		return nil, fmt.Errorf("creating transaction: %w", err)
	}

	if err := ptx.Commit(); err != nil {
		return nil, fmt.Errorf("committing posting: %w", err)
	}

	return tx, nil
}

// Get returns a single transaction on an account the principal owns. A
// transaction recorded against a different account is reported as not found.
func (s *Service) Get(ctx context.Context, principal, accountNumber, transactionID string) (*Transaction, error) {
	if err := s.authorizeAccount(ctx, principal, accountNumber); err != nil {
		return nil, err
	}

	tx, err := s.repo.GetTransaction(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	if tx.AccountNumber != accountNumber {
		return nil, ErrNotFound
	}

	return tx, nil
}

// List returns all transactions for an account the principal owns, oldest
// first.
func (s *Service) List(ctx context.Context, principal, accountNumber string) ([]*Transaction, error) {
	if err := s.authorizeAccount(ctx, principal, accountNumber); err != nil {
		return nil, err
	}

	return s.repo.ListByAccount(ctx, accountNumber)
}

func (s *Service) authorizeAccount(ctx context.Context, principal, accountNumber string) error {
	acc, err := s.accounts.GetAccount(ctx, accountNumber)
	if err != nil {
		return err
	}

	return account.Authorize(principal, acc)
}

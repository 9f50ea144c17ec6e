package transaction

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/eaglebank/eaglebank-api/internal/account"
)

// Type represents the direction of a transaction.
type Type string

const (
	TypeDeposit    Type = "deposit"
	TypeWithdrawal Type = "withdrawal"
)

// Valid reports whether t is a known transaction type.
func (t Type) Valid() bool {
	return t == TypeDeposit || t == TypeWithdrawal
}

// Transaction is an append-only record of a single deposit or withdrawal
// against one account. Records are never mutated after creation.
type Transaction struct {
	ID            string
	Amount        decimal.Decimal
	Currency      account.Currency
	Type          Type
	Reference     string
	UserID        string
	AccountNumber string
	CreatedAt     time.Time
}

var (
	// ErrNotFound signals that no transaction exists for the given id, or
	// that the transaction does not belong to the requested account.
	ErrNotFound = errors.New("transaction not found")

	ErrInvalidAmount    = errors.New("invalid transaction amount")
	ErrInvalidCurrency  = errors.New("invalid transaction currency")
	ErrCurrencyMismatch = errors.New("transaction currency mismatch")
	ErrInvalidType      = errors.New("invalid transaction type")

	// ErrInsufficientFunds signals a withdrawal larger than the account
	// balance. Maps to 422 at the boundary, not 400.
	ErrInsufficientFunds = errors.New("insufficient funds")
)

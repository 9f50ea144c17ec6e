package account

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// Type represents the kind of bank account.
type Type string

const (
	TypePersonal Type = "personal"
	TypeSavings  Type = "savings"
	TypeCredit   Type = "credit"
)

// Valid reports whether t is a known account type.
func (t Type) Valid() bool {
	switch t {
	case TypePersonal, TypeSavings, TypeCredit:
		return true
	}

	return false
}

// Currency is the ISO currency an account is denominated in. It is fixed at
// creation and every transaction against the account must match it.
type Currency string

const (
	CurrencyGBP Currency = "GBP"
	CurrencyUSD Currency = "USD"
)

// DefaultCurrency is assigned to newly created accounts.
const DefaultCurrency = CurrencyGBP

// Valid reports whether c is a supported currency.
func (c Currency) Valid() bool {
	switch c {
	case CurrencyGBP, CurrencyUSD:
		return true
	}

	return false
}

// Account represents a bank account owned by a single user. Balance must
// never go negative; withdrawals are checked against it before posting.
type Account struct {
	AccountNumber string
	SortCode      string
	Name          string
	AccountType   Type
	Balance       decimal.Decimal
	Currency      Currency
	OwnerUsername string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

var (
	// ErrNotFound signals that no account exists for the given account number.
	ErrNotFound = errors.New("account not found")

	// ErrForbidden signals that the account exists but belongs to another user.
	ErrForbidden = errors.New("account not accessible")

	ErrInvalidName = errors.New("invalid account name")
	ErrInvalidType = errors.New("invalid account type")
)

// Authorize checks that principal may act on acc. It distinguishes a missing
// account (ErrNotFound) from one owned by somebody else (ErrForbidden) so the
// boundary can answer 404 and 403 respectively.
func Authorize(principal string, acc *Account) error {
	if acc == nil {
		return ErrNotFound
	}

	if principal == "" || acc.OwnerUsername != principal {
		return ErrForbidden
	}

	return nil
}

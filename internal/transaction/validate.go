package transaction

import (
	"github.com/shopspring/decimal"

	"github.com/eaglebank/eaglebank-api/internal/account"
)

// maxAmount is the per-transaction upper bound.
var maxAmount = decimal.NewFromInt(100_000)

// ValidateAmount checks the per-transaction bounds: 0 < amount <= 100000.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) || amount.GreaterThan(maxAmount) {
		return ErrInvalidAmount
	}

	return nil
}

// ValidateCurrency checks that the requested currency is supported and
// matches the account's currency.
func ValidateCurrency(requested, accountCurrency account.Currency) error {
	if !requested.Valid() {
		return ErrInvalidCurrency
	}

	if requested != accountCurrency {
		return ErrCurrencyMismatch
	}

	return nil
}

// ValidateType checks that the transaction type is deposit or withdrawal.
func ValidateType(t Type) error {
	if !t.Valid() {
		return ErrInvalidType
	}

	return nil
}

// ValidateFundsAvailable checks that a withdrawal of amount is covered by the
// current balance. Only invoked on the withdrawal path.
func ValidateFundsAvailable(amount, balance decimal.Decimal) error {
	if amount.GreaterThan(balance) {
		return ErrInsufficientFunds
	}

	return nil
}

// ValidateRequest runs the composite request checks: currency present and
// matching, type known, amount in bounds. The funds check is separate and
// performed only on the withdrawal branch.
func ValidateRequest(params PostParams, accountCurrency account.Currency) error {
	if err := ValidateCurrency(params.Currency, accountCurrency); err != nil {
		return err
	}

	if err := ValidateType(params.Type); err != nil {
		return err
	}

	return ValidateAmount(params.Amount)
}

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/eaglebank/eaglebank-api/internal/account"
	"github.com/eaglebank/eaglebank-api/internal/transaction"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectTransactionColumns = `
	id, amount, currency, type, reference, user_id, account_number, created_at
`

func scanTransaction(s scanner) (*transaction.Transaction, error) {
	var tx transaction.Transaction

	var currency, txType string

	var reference sql.NullString

	if err := s.Scan(
		&tx.ID, &tx.Amount, &currency, &txType, &reference,
		&tx.UserID, &tx.AccountNumber, &tx.CreatedAt,
	); err != nil {
		return nil, err
	}

	tx.Currency = account.Currency(currency)
	tx.Type = transaction.Type(txType)
	tx.Reference = reference.String

	return &tx, nil
}

func (s *Store) GetTransaction(ctx context.Context, id string) (*transaction.Transaction, error) {
	query := `SELECT ` + selectTransactionColumns + ` FROM transactions WHERE id = $1`

	tx, err := scanTransaction(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, transaction.ErrNotFound
		}

		return nil, fmt.Errorf("getting transaction: %w", err)
	}

	return tx, nil
}

func (s *Store) ListByAccount(ctx context.Context, accountNumber string) ([]*transaction.Transaction, error) {
	query := `SELECT ` + selectTransactionColumns + `
		FROM transactions
		WHERE account_number = $1
		ORDER BY created_at ASC`

	rows, err := s.db.QueryContext(ctx, query, accountNumber)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	defer rows.Close()

	var txs []*transaction.Transaction

	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning transaction: %w", err)
		}

		txs = append(txs, tx)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating transaction rows: %w", err)
	}

	return txs, nil
}

type postingTx struct {
	tx *sql.Tx
}

// BeginPosting opens a serializable database transaction for a balance
// mutation plus transaction insert. Serializable isolation prevents two
// concurrent withdrawals from both reading the same stale balance.
func (s *Store) BeginPosting(ctx context.Context) (transaction.PostingTx, error) {
	dbTx, err := s.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return nil, fmt.Errorf("beginning posting tx: %w", err)
	}

	return &postingTx{tx: dbTx}, nil
}

func (p *postingTx) Commit() error   { return p.tx.Commit() }
func (p *postingTx) Rollback() error { return p.tx.Rollback() }

// AccountForUpdate loads the account row and locks it until commit.
func (p *postingTx) AccountForUpdate(ctx context.Context, accountNumber string) (*account.Account, error) {
	query := `
		SELECT account_number, sort_code, name, account_type, balance, currency,
			owner_username, created_at, updated_at
		FROM accounts
		WHERE account_number = $1
		FOR UPDATE
	`

	var acc account.Account

	var accountType, currency string

	err := p.tx.QueryRowContext(ctx, query, accountNumber).Scan(
		&acc.AccountNumber, &acc.SortCode, &acc.Name, &accountType, &acc.Balance,
		&currency, &acc.OwnerUsername, &acc.CreatedAt, &acc.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, account.ErrNotFound
		}

		return nil, fmt.Errorf("locking account: %w", err)
	}

	acc.AccountType = account.Type(accountType)
	acc.Currency = account.Currency(currency)

	return &acc, nil
}

func (p *postingTx) UpdateBalance(ctx context.Context, accountNumber string, balance decimal.Decimal, updatedAt time.Time) error {
	query := `
		UPDATE accounts
		SET balance = $1, updated_at = $2
		WHERE account_number = $3
	`

	if _, err := p.tx.ExecContext(ctx, query, balance, updatedAt, accountNumber); err != nil {
		return fmt.Errorf("updating balance: %w", err)
	}

	return nil
}

func (p *postingTx) CreateTransaction(ctx context.Context, tx *transaction.Transaction) error {
	query := `
		INSERT INTO transactions (id, amount, currency, type, reference, user_id, account_number, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	var reference sql.NullString
	if tx.Reference != "" {
		reference = sql.NullString{String: tx.Reference, Valid: true}
	}

	if _, err := p.tx.ExecContext(ctx, query,
		tx.ID,
		tx.Amount,
		tx.Currency,
		tx.Type,
		reference,
		tx.UserID,
		tx.AccountNumber,
		tx.CreatedAt,
	); err != nil {
		return fmt.Errorf("creating transaction: %w", err)
	}

	return nil
}

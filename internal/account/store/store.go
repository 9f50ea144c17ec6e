package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/eaglebank/eaglebank-api/internal/account"
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

const selectAccountColumns = `
	account_number, sort_code, name, account_type, balance, currency,
	owner_username, created_at, updated_at
`

func scanAccount(s scanner) (*account.Account, error) {
	var acc account.Account

	var accountType, currency string

	if err := s.Scan(
		&acc.AccountNumber, &acc.SortCode, &acc.Name, &accountType, &acc.Balance,
		&currency, &acc.OwnerUsername, &acc.CreatedAt, &acc.UpdatedAt,
	); err != nil {
		return nil, err
	}

	acc.AccountType = account.Type(accountType)
	acc.Currency = account.Currency(currency)

	return &acc, nil
}

func (s *Store) CreateAccount(ctx context.Context, acc *account.Account) error {
	query := `
		INSERT INTO accounts (account_number, sort_code, name, account_type, balance, currency, owner_username, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := s.db.ExecContext(ctx, query,
		acc.AccountNumber,
		acc.SortCode,
		acc.Name,
		acc.AccountType,
		acc.Balance,
		acc.Currency,
		acc.OwnerUsername,
		acc.CreatedAt,
		acc.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("creating account: %w", err)
	}

	return nil
}

func (s *Store) GetAccount(ctx context.Context, accountNumber string) (*account.Account, error) {
	query := `SELECT ` + selectAccountColumns + ` FROM accounts WHERE account_number = $1`

	acc, err := scanAccount(s.db.QueryRowContext(ctx, query, accountNumber))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, account.ErrNotFound
		}

		return nil, fmt.Errorf("getting account: %w", err)
	}

	return acc, nil
}

func (s *Store) UpdateAccount(ctx context.Context, acc *account.Account) error {
	query := `
		UPDATE accounts
		SET name = $1, account_type = $2, updated_at = $3
		WHERE account_number = $4
	`

	_, err := s.db.ExecContext(ctx, query, acc.Name, acc.AccountType, acc.UpdatedAt, acc.AccountNumber)
	if err != nil {
		return fmt.Errorf("updating account: %w", err)
	}

	return nil
}

func (s *Store) DeleteAccount(ctx context.Context, accountNumber string) error {
	query := `DELETE FROM accounts WHERE account_number = $1`

	_, err := s.db.ExecContext(ctx, query, accountNumber)
	if err != nil {
		return fmt.Errorf("deleting account: %w", err)
	}

	return nil
}

func (s *Store) ListByOwner(ctx context.Context, ownerUsername string) ([]*account.Account, error) {
	query := `SELECT ` + selectAccountColumns + `
		FROM accounts
		WHERE owner_username = $1
		ORDER BY created_at ASC`

	rows, err := s.db.QueryContext(ctx, query, ownerUsername)
	if err != nil {
		return nil, fmt.Errorf("listing accounts: %w", err)
	}
	defer rows.Close()

	var accs []*account.Account

	for rows.Next() {
		acc, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning account: %w", err)
		}

		accs = append(accs, acc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating account rows: %w", err)
	}

	return accs, nil
}

package account

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/eaglebank/eaglebank-api/internal/id"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=account
type Repository interface {
	CreateAccount(ctx context.Context, acc *Account) error
	GetAccount(ctx context.Context, accountNumber string) (*Account, error)
	UpdateAccount(ctx context.Context, acc *Account) error
	DeleteAccount(ctx context.Context, accountNumber string) error
	ListByOwner(ctx context.Context, ownerUsername string) ([]*Account, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Name        string
	AccountType Type
}

type UpdateParams struct {
	Name        *string
	AccountType *Type
}

// Create opens a new account for principal with a zero balance in the
// default currency.
func (s *Service) Create(ctx context.Context, principal string, params CreateParams) (*Account, error) {
	if strings.TrimSpace(params.Name) == "" {
		return nil, ErrInvalidName
	}

	if !params.AccountType.Valid() {
		return nil, ErrInvalidType
	}

	now := time.Now()

	acc := &Account{
		AccountNumber: id.NewAccountNumber(),
		SortCode:      id.NewSortCode(),
		Name:          params.Name,
		AccountType:   params.AccountType,
		Balance:       decimal.Zero,
		Currency:      DefaultCurrency,
		OwnerUsername: principal,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.CreateAccount(ctx, acc); err != nil {
		return nil, fmt.Errorf("creating account: %w", err)
	}

	return acc, nil
}

// List returns all accounts owned by principal.
func (s *Service) List(ctx context.Context, principal string) ([]*Account, error) {
	return s.repo.ListByOwner(ctx, principal)
}

// Get loads an account and verifies principal owns it.
func (s *Service) Get(ctx context.Context, principal, accountNumber string) (*Account, error) {
	acc, err := s.repo.GetAccount(ctx, accountNumber)
	if err != nil {
		return nil, err
	}

	if err := Authorize(principal, acc); err != nil {
		return nil, err
	}

	return acc, nil
}

// Update changes the mutable account fields (name and type) and bumps the
// updated timestamp. Ownership is verified first.
func (s *Service) Update(ctx context.Context, principal, accountNumber string, params UpdateParams) (*Account, error) {
	acc, err := s.Get(ctx, principal, accountNumber)
	if err != nil {
		return nil, err
	}

	if params.Name != nil {
		if strings.TrimSpace(*params.Name) == "" {
			return nil, ErrInvalidName
		}

		acc.Name = *params.Name
	}

	if params.AccountType != nil {
		if !params.AccountType.Valid() {
			return nil, ErrInvalidType
		}

		acc.AccountType = *params.AccountType
	}

	acc.UpdatedAt = time.Now()

	if err := s.repo.UpdateAccount(ctx, acc); err != nil {
		return nil, fmt.Errorf("updating account: %w", err)
	}

	return acc, nil
}

// Delete removes an account once ownership is verified. Deletion is
// unconditional: existing transactions do not block it.
func (s *Service) Delete(ctx context.Context, principal, accountNumber string) error {
	if _, err := s.Get(ctx, principal, accountNumber); err != nil {
		return err
	}

	if err := s.repo.DeleteAccount(ctx, accountNumber); err != nil {
		return fmt.Errorf("deleting account: %w", err)
	}

	return nil
}

package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/eaglebank/eaglebank-api/internal/account"
	"github.com/eaglebank/eaglebank-api/internal/id"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=user
type Repository interface {
	CreateUser(ctx context.Context, u *User) error
	GetUser(ctx context.Context, id string) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	UpdateUser(ctx context.Context, u *User) error
	DeleteUser(ctx context.Context, id string) error
}

type Service struct {
	repo     Repository
	accounts account.Repository
}

func NewService(repo Repository, accounts account.Repository) *Service {
	return &Service{repo: repo, accounts: accounts}
}

type RegisterParams struct {
	Name        string
	Email       string
	PhoneNumber string
	Password    string
}

type UpdateParams struct {
	Name        *string
	PhoneNumber *string
	Password    *string
}

const minPasswordLength = 8

// Register creates a new user with a bcrypt-hashed password.
func (s *Service) Register(ctx context.Context, params RegisterParams) (*User, error) {
	if err := validateName(params.Name); err != nil {
		return nil, err
	}

	if err := validateEmail(params.Email); err != nil {
		return nil, err
	}

	if err := validatePhone(params.PhoneNumber); err != nil {
		return nil, err
	}

	if err := validatePassword(params.Password); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetUserByEmail(ctx, params.Email)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(params.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	now := time.Now()

	u := &User{
		ID:           id.NewUserID(),
		Name:         params.Name,
		Email:        params.Email,
		PhoneNumber:  params.PhoneNumber,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.CreateUser(ctx, u); err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}

	return u, nil
}

// Authenticate verifies the email/password pair and returns the user. Both
// unknown email and wrong password report ErrInvalidCredentials.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*User, error) {
	u, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}

		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return u, nil
}

// Get returns a user's own profile. Requests for another user's profile are
// forbidden.
func (s *Service) Get(ctx context.Context, principal, userID string) (*User, error) {
	u, err := s.repo.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if u.Email != principal {
		return nil, ErrForbidden
	}

	return u, nil
}

// Update changes a user's own profile fields.
func (s *Service) Update(ctx context.Context, principal, userID string, params UpdateParams) (*User, error) {
	u, err := s.Get(ctx, principal, userID)
	if err != nil {
		return nil, err
	}

	if params.Name != nil {
		if err := validateName(*params.Name); err != nil {
			return nil, err
		}

		u.Name = *params.Name
	}

	if params.PhoneNumber != nil {
		if err := validatePhone(*params.PhoneNumber); err != nil {
			return nil, err
		}

		u.PhoneNumber = *params.PhoneNumber
	}

	if params.Password != nil {
		if err := validatePassword(*params.Password); err != nil {
			return nil, err
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(*params.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hashing password: %w", err)
		}

		u.PasswordHash = string(hash)
	}

	u.UpdatedAt = time.Now()

	if err := s.repo.UpdateUser(ctx, u); err != nil {
		return nil, fmt.Errorf("updating user: %w", err)
	}

	return u, nil
}

// Delete removes a user's own profile. It refuses while the user still owns
// accounts; account deletion has no such guard the other way round.
func (s *Service) Delete(ctx context.Context, principal, userID string) error {
	u, err := s.Get(ctx, principal, userID)
	if err != nil {
		return err
	}

	accs, err := s.accounts.ListByOwner(ctx, u.Email)
	if err != nil {
		return err
	}

	if len(accs) > 0 {
		return ErrHasAccounts
	}

	if err := s.repo.DeleteUser(ctx, userID); err != nil {
		return fmt.Errorf("deleting user: %w", err)
	}

	return nil
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrInvalidName
	}

	return nil
}

func validateEmail(email string) error {
	at := strings.Index(email, "@")
	if at < 1 || at == len(email)-1 {
		return ErrInvalidEmail
	}

	return nil
}

func validatePhone(phone string) error {
	if strings.TrimSpace(phone) == "" {
		return ErrInvalidPhone
	}

	return nil
}

func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return ErrInvalidPassword
	}

	return nil
}

package account_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/eaglebank/eaglebank-api/internal/account"
)

const (
	ownerUsername = "alice@example.com"
	accountNumber = "01234567"
)

func testAccount() *account.Account {
	now := time.Now()

	return &account.Account{
		AccountNumber: accountNumber,
		SortCode:      "10-10-10",
		Name:          "Savings",
		AccountType:   account.TypeSavings,
		Balance:       decimal.Zero,
		Currency:      account.CurrencyGBP,
		OwnerUsername: ownerUsername,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func TestService_Create(t *testing.T) {
	type testCase struct {
		name      string
		params    account.CreateParams
		setupMock func(m *account.MockRepository)
		wantErr   error
	}

	tests := []testCase{
		{
			name:   "Success",
			params: account.CreateParams{Name: "Savings", AccountType: account.TypeSavings},
			setupMock: func(m *account.MockRepository) {
				m.EXPECT().
					CreateAccount(gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name:    "BlankName",
			params:  account.CreateParams{Name: "   ", AccountType: account.TypePersonal},
			wantErr: account.ErrInvalidName,
		},
		{
			name:    "MissingType",
			params:  account.CreateParams{Name: "Savings"},
			wantErr: account.ErrInvalidType,
		},
		{
			name:   "RepoError",
			params: account.CreateParams{Name: "Savings", AccountType: account.TypeSavings},
			setupMock: func(m *account.MockRepository) {
				m.EXPECT().
					CreateAccount(gomock.Any(), gomock.Any()).
					Return(errors.New("db error"))
			},
			wantErr: nil, // wrapped repo error, checked below
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := account.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := account.NewService(repo)
			got, err := svc.Create(context.Background(), ownerUsername, tt.params)

			if tt.name == "RepoError" {
				assert.Error(t, err)
				assert.Nil(t, got)

				return
			}

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Regexp(t, `^01\d{6}$`, got.AccountNumber)
			assert.Regexp(t, `^\d{2}-\d{2}-\d{2}$`, got.SortCode)
			assert.True(t, got.Balance.IsZero())
			assert.Equal(t, account.CurrencyGBP, got.Currency)
			assert.Equal(t, ownerUsername, got.OwnerUsername)
		})
	}
}

func TestService_Get(t *testing.T) {
	type testCase struct {
		name      string
		principal string
		setupMock func(m *account.MockRepository)
		wantErr   error
	}

	tests := []testCase{
		{
			name:      "Success",
			principal: ownerUsername,
			setupMock: func(m *account.MockRepository) {
				m.EXPECT().
					GetAccount(gomock.Any(), accountNumber).
					Return(testAccount(), nil)
			},
		},
		{
			name:      "NotFound",
			principal: ownerUsername,
			setupMock: func(m *account.MockRepository) {
				m.EXPECT().
					GetAccount(gomock.Any(), accountNumber).
					Return(nil, account.ErrNotFound)
			},
			wantErr: account.ErrNotFound,
		},
		{
			name:      "OwnedBySomeoneElse",
			principal: "bob@example.com",
			setupMock: func(m *account.MockRepository) {
				m.EXPECT().
					GetAccount(gomock.Any(), accountNumber).
					Return(testAccount(), nil)
			},
			wantErr: account.ErrForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := account.NewMockRepository(ctrl)
			tt.setupMock(repo)

			svc := account.NewService(repo)
			got, err := svc.Get(context.Background(), tt.principal, accountNumber)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, accountNumber, got.AccountNumber)
		})
	}
}

func TestService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := account.NewMockRepository(ctrl)
	repo.EXPECT().
		GetAccount(gomock.Any(), accountNumber).
		Return(testAccount(), nil)
	repo.EXPECT().
		UpdateAccount(gomock.Any(), gomock.Any()).
		Return(nil)

	name := "Rainy day fund"
	accountType := account.TypePersonal

	svc := account.NewService(repo)
	got, err := svc.Update(context.Background(), ownerUsername, accountNumber, account.UpdateParams{
		Name:        &name,
		AccountType: &accountType,
	})

	require.NoError(t, err)
	assert.Equal(t, name, got.Name)
	assert.Equal(t, accountType, got.AccountType)
	assert.True(t, got.UpdatedAt.After(got.CreatedAt) || got.UpdatedAt.Equal(got.CreatedAt))
}

func TestService_Update_BlankName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := account.NewMockRepository(ctrl)
	repo.EXPECT().
		GetAccount(gomock.Any(), accountNumber).
		Return(testAccount(), nil)

	name := ""

	svc := account.NewService(repo)
	got, err := svc.Update(context.Background(), ownerUsername, accountNumber, account.UpdateParams{Name: &name})

	assert.ErrorIs(t, err, account.ErrInvalidName)
	assert.Nil(t, got)
}

func TestService_Delete(t *testing.T) {
	type testCase struct {
		name      string
		principal string
		setupMock func(m *account.MockRepository)
		wantErr   error
	}

	tests := []testCase{
		{
			name:      "Success",
			principal: ownerUsername,
			setupMock: func(m *account.MockRepository) {
				m.EXPECT().
					GetAccount(gomock.Any(), accountNumber).
					Return(testAccount(), nil)
				m.EXPECT().
					DeleteAccount(gomock.Any(), accountNumber).
					Return(nil)
			},
		},
		{
			name:      "OwnedBySomeoneElse",
			principal: "bob@example.com",
			setupMock: func(m *account.MockRepository) {
				m.EXPECT().
					GetAccount(gomock.Any(), accountNumber).
					Return(testAccount(), nil)
			},
			wantErr: account.ErrForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := account.NewMockRepository(ctrl)
			tt.setupMock(repo)

			svc := account.NewService(repo)
			err := svc.Delete(context.Background(), tt.principal, accountNumber)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestAuthorize(t *testing.T) {
	tests := []struct {
		name      string
		principal string
		acc       *account.Account
		wantErr   error
	}{
		{name: "Owner", principal: ownerUsername, acc: testAccount(), wantErr: nil},
		{name: "MissingAccount", principal: ownerUsername, acc: nil, wantErr: account.ErrNotFound},
		{name: "WrongOwner", principal: "bob@example.com", acc: testAccount(), wantErr: account.ErrForbidden},
		{name: "BlankPrincipal", principal: "", acc: testAccount(), wantErr: account.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, account.Authorize(tt.principal, tt.acc), tt.wantErr)
		})
	}
}

package http_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/eaglebank/eaglebank-api/internal/account"
	"github.com/eaglebank/eaglebank-api/internal/auth"
	apihttp "github.com/eaglebank/eaglebank-api/internal/http"
	accountHandler "github.com/eaglebank/eaglebank-api/internal/http/account"
	txHandler "github.com/eaglebank/eaglebank-api/internal/http/transaction"
	userHandler "github.com/eaglebank/eaglebank-api/internal/http/user"
	"github.com/eaglebank/eaglebank-api/internal/transaction"
	"github.com/eaglebank/eaglebank-api/internal/user"
)

const (
	ownerUsername = "alice@example.com"
	accountNumber = "01234567"
)

type fixture struct {
	server   *httptest.Server
	tokens   *auth.TokenIssuer
	accounts *account.MockRepository
	txRepo   *transaction.MockRepository
	postTx   *transaction.MockPostingTx
	users    *user.MockRepository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := &fixture{
		tokens:   auth.NewTokenIssuer("test-secret", time.Hour),
		accounts: account.NewMockRepository(ctrl),
		txRepo:   transaction.NewMockRepository(ctrl),
		postTx:   transaction.NewMockPostingTx(ctrl),
		users:    user.NewMockRepository(ctrl),
	}

	accountService := account.NewService(f.accounts)
	transactionService := transaction.NewService(f.accounts, f.txRepo)
	userService := user.NewService(f.users, f.accounts)

	router := apihttp.New(f.tokens, apihttp.Handlers{
		Users:        userHandler.NewHandler(userService, f.tokens),
		Accounts:     accountHandler.NewHandler(accountService),
		Transactions: txHandler.NewHandler(transactionService),
	})

	f.server = httptest.NewServer(router)
	t.Cleanup(f.server.Close)

	return f
}

func (f *fixture) request(t *testing.T, method, path, token string, body any) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, f.server.URL+path, &buf)
	require.NoError(t, err)

	req.Header.Set("Content-Type", "application/json")

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)

	return resp
}

func (f *fixture) token(t *testing.T, username string) string {
	t.Helper()

	token, err := f.tokens.Issue(username)
	require.NoError(t, err)

	return token
}

func testAccount(balance decimal.Decimal) *account.Account {
	now := time.Now()

	return &account.Account{
		AccountNumber: accountNumber,
		SortCode:      "10-10-10",
		Name:          "Savings",
		AccountType:   account.TypeSavings,
		Balance:       balance,
		Currency:      account.CurrencyGBP,
		OwnerUsername: ownerUsername,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func TestRouter_MissingToken(t *testing.T) {
	f := newFixture(t)

	resp := f.request(t, http.MethodGet, "/v1/accounts", "", nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRouter_InvalidToken(t *testing.T) {
	f := newFixture(t)

	resp := f.request(t, http.MethodGet, "/v1/accounts", "not-a-token", nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRouter_CreateAccount(t *testing.T) {
	f := newFixture(t)

	f.accounts.EXPECT().
		CreateAccount(gomock.Any(), gomock.Any()).
		Return(nil)

	resp := f.request(t, http.MethodPost, "/v1/accounts", f.token(t, ownerUsername), map[string]any{
		"name":        "Savings",
		"accountType": "savings",
	})
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var got struct {
		AccountNumber string          `json:"accountNumber"`
		SortCode      string          `json:"sortCode"`
		Balance       decimal.Decimal `json:"balance"`
		Currency      string          `json:"currency"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))

	assert.Regexp(t, `^01\d{6}$`, got.AccountNumber)
	assert.Regexp(t, `^\d{2}-\d{2}-\d{2}$`, got.SortCode)
	assert.True(t, got.Balance.IsZero())
	assert.Equal(t, "GBP", got.Currency)
}

func TestRouter_GetAccount_NotFound(t *testing.T) {
	f := newFixture(t)

	f.accounts.EXPECT().
		GetAccount(gomock.Any(), "01999999").
		Return(nil, account.ErrNotFound)

	resp := f.request(t, http.MethodGet, "/v1/accounts/01999999", f.token(t, ownerUsername), nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRouter_GetAccount_Forbidden(t *testing.T) {
	f := newFixture(t)

	f.accounts.EXPECT().
		GetAccount(gomock.Any(), accountNumber).
		Return(testAccount(decimal.Zero), nil)

	resp := f.request(t, http.MethodGet, "/v1/accounts/"+accountNumber, f.token(t, "bob@example.com"), nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	var payload map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))

	// Only the failure message crosses the boundary, never account fields.
	assert.Len(t, payload, 1)
	assert.Contains(t, payload, "message")
}

func TestRouter_PostTransaction_InsufficientFunds(t *testing.T) {
	f := newFixture(t)

	f.txRepo.EXPECT().BeginPosting(gomock.Any()).Return(f.postTx, nil)
	f.postTx.EXPECT().Rollback().Return(nil)
	f.postTx.EXPECT().
		AccountForUpdate(gomock.Any(), accountNumber).
		Return(testAccount(decimal.Zero), nil)

	path := fmt.Sprintf("/v1/accounts/%s/transactions", accountNumber)
	resp := f.request(t, http.MethodPost, path, f.token(t, ownerUsername), map[string]any{
		"amount":   100.99,
		"currency": "GBP",
		"type":     "withdrawal",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestRouter_PostTransaction_Deposit(t *testing.T) {
	f := newFixture(t)

	f.txRepo.EXPECT().BeginPosting(gomock.Any()).Return(f.postTx, nil)
	f.postTx.EXPECT().Rollback().Return(nil).AnyTimes()
	f.postTx.EXPECT().
		AccountForUpdate(gomock.Any(), accountNumber).
		Return(testAccount(decimal.Zero), nil)
	f.postTx.EXPECT().
		UpdateBalance(gomock.Any(), accountNumber, gomock.Any(), gomock.Any()).
		Return(nil)
	f.postTx.EXPECT().
		CreateTransaction(gomock.Any(), gomock.Any()).
		Return(nil)
	f.postTx.EXPECT().Commit().Return(nil)

	path := fmt.Sprintf("/v1/accounts/%s/transactions", accountNumber)
	resp := f.request(t, http.MethodPost, path, f.token(t, ownerUsername), map[string]any{
		"amount":   100.0,
		"currency": "GBP",
		"type":     "deposit",
	})
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var got struct {
		ID     string          `json:"id"`
		Amount decimal.Decimal `json:"amount"`
		Type   string          `json:"type"`
		UserID string          `json:"userId"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))

	assert.Regexp(t, `^tan-[A-Za-z0-9]{8}$`, got.ID)
	assert.True(t, got.Amount.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, "deposit", got.Type)
	assert.Equal(t, ownerUsername, got.UserID)
}

func TestRouter_RegisterAndLogin(t *testing.T) {
	f := newFixture(t)

	f.users.EXPECT().
		GetUserByEmail(gomock.Any(), ownerUsername).
		Return(nil, user.ErrNotFound)
	f.users.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, u *user.User) error {
			f.users.EXPECT().
				GetUserByEmail(gomock.Any(), ownerUsername).
				Return(u, nil)
			return nil
		})

	resp := f.request(t, http.MethodPost, "/v1/users", "", map[string]any{
		"name":        "Alice",
		"email":       ownerUsername,
		"phoneNumber": "+441234567890",
		"password":    "correct-horse",
	})
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = f.request(t, http.MethodPost, "/v1/auth/login", "", map[string]any{
		"username": ownerUsername,
		"password": "correct-horse",
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got struct {
		JWT string `json:"jwt"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.NotEmpty(t, got.JWT)

	subject, err := f.tokens.Verify(got.JWT)
	require.NoError(t, err)
	assert.Equal(t, ownerUsername, subject)
}

func TestRouter_Login_BadPassword(t *testing.T) {
	f := newFixture(t)

	f.users.EXPECT().
		GetUserByEmail(gomock.Any(), ownerUsername).
		Return(nil, user.ErrNotFound)

	resp := f.request(t, http.MethodPost, "/v1/auth/login", "", map[string]any{
		"username": ownerUsername,
		"password": "wrong",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

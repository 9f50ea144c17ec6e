package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/eaglebank/eaglebank-api/internal/account"
	accountStore "github.com/eaglebank/eaglebank-api/internal/account/store"
	"github.com/eaglebank/eaglebank-api/internal/auth"
	"github.com/eaglebank/eaglebank-api/internal/config"
	"github.com/eaglebank/eaglebank-api/internal/database"
	apihttp "github.com/eaglebank/eaglebank-api/internal/http"
	accountHandler "github.com/eaglebank/eaglebank-api/internal/http/account"
	txHandler "github.com/eaglebank/eaglebank-api/internal/http/transaction"
	userHandler "github.com/eaglebank/eaglebank-api/internal/http/user"
	"github.com/eaglebank/eaglebank-api/internal/transaction"
	txStore "github.com/eaglebank/eaglebank-api/internal/transaction/store"
	"github.com/eaglebank/eaglebank-api/internal/user"
	userStore "github.com/eaglebank/eaglebank-api/internal/user/store"
)

func main() {
	_ = godotenv.Load()

	// Balances serialize as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(context.Background(), db); err != nil {
		slog.Error("failed to migrate database", "error", err)
		os.Exit(1)
	}

	tokens := auth.NewTokenIssuer(cfg.Auth.Secret, cfg.Auth.TokenTTL)

	var (
		accounts           = accountStore.New(db)
		accountService     = account.NewService(accounts)
		transactionService = transaction.NewService(accounts, txStore.New(db))
		userService        = user.NewService(userStore.New(db), accounts)
	)

	router := apihttp.New(tokens, apihttp.Handlers{
		Users:        userHandler.NewHandler(userService, tokens),
		Accounts:     accountHandler.NewHandler(accountService),
		Transactions: txHandler.NewHandler(transactionService),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

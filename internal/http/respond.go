package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/eaglebank/eaglebank-api/internal/account"
	"github.com/eaglebank/eaglebank-api/internal/transaction"
	"github.com/eaglebank/eaglebank-api/internal/user"
)

// genericErrorMessage is the only detail a 500 response carries. Internal
// errors are logged, never serialized to the client.
const genericErrorMessage = "An unexpected error occurred"

type errorResponse struct {
	Message string `json:"message"`
}

// WriteJSON writes v as a JSON response body with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// WriteError maps a domain error to its HTTP status and writes a {message}
// payload. Anything unrecognized becomes an opaque 500.
func WriteError(w http.ResponseWriter, err error) {
	status, message := statusFor(err)

	if status == http.StatusInternalServerError {
		slog.Error("request failed", "error", err)
	}

	WriteJSON(w, status, errorResponse{Message: message})
}

func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, account.ErrNotFound),
		errors.Is(err, transaction.ErrNotFound),
		errors.Is(err, user.ErrNotFound):
		return http.StatusNotFound, err.Error()

	case errors.Is(err, account.ErrForbidden),
		errors.Is(err, user.ErrForbidden):
		return http.StatusForbidden, err.Error()

	case errors.Is(err, user.ErrInvalidCredentials):
		return http.StatusUnauthorized, err.Error()

	case errors.Is(err, transaction.ErrInsufficientFunds):
		return http.StatusUnprocessableEntity, err.Error()

	case errors.Is(err, user.ErrHasAccounts),
		errors.Is(err, user.ErrEmailTaken):
		return http.StatusConflict, err.Error()

	case errors.Is(err, transaction.ErrInvalidAmount),
		errors.Is(err, transaction.ErrInvalidCurrency),
		errors.Is(err, transaction.ErrCurrencyMismatch),
		errors.Is(err, transaction.ErrInvalidType),
		errors.Is(err, account.ErrInvalidName),
		errors.Is(err, account.ErrInvalidType),
		errors.Is(err, user.ErrInvalidName),
		errors.Is(err, user.ErrInvalidEmail),
		errors.Is(err, user.ErrInvalidPhone),
		errors.Is(err, user.ErrInvalidPassword):
		return http.StatusBadRequest, err.Error()
	}

	return http.StatusInternalServerError, genericErrorMessage
}

package transaction

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/eaglebank/eaglebank-api/internal/account"
	apihttp "github.com/eaglebank/eaglebank-api/internal/http"
	"github.com/eaglebank/eaglebank-api/internal/transaction"
)

type Handler struct {
	svc *transaction.Service
}

func NewHandler(svc *transaction.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.post)
	r.Get("/", h.list)
	r.Get("/{transactionID}", h.get)
}

type postTransactionRequest struct {
	Amount    decimal.Decimal  `json:"amount"`
	Currency  account.Currency `json:"currency"`
	Type      transaction.Type `json:"type"`
	Reference string           `json:"reference,omitempty"`
}

func (h *Handler) post(w http.ResponseWriter, r *http.Request) {
	var req postTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	tx, err := h.svc.Post(r.Context(), apihttp.Principal(r.Context()), chi.URLParam(r, "accountNumber"), transaction.PostParams{
		Amount:    req.Amount,
		Currency:  req.Currency,
		Type:      req.Type,
		Reference: req.Reference,
	})
	if err != nil {
		apihttp.WriteError(w, err)
		return
	}

	apihttp.WriteJSON(w, http.StatusCreated, toResponse(tx))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	txs, err := h.svc.List(r.Context(), apihttp.Principal(r.Context()), chi.URLParam(r, "accountNumber"))
	if err != nil {
		apihttp.WriteError(w, err)
		return
	}

	apihttp.WriteJSON(w, http.StatusOK, toListResponse(txs))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	tx, err := h.svc.Get(r.Context(), apihttp.Principal(r.Context()),
		chi.URLParam(r, "accountNumber"), chi.URLParam(r, "transactionID"))
	if err != nil {
		apihttp.WriteError(w, err)
		return
	}

	apihttp.WriteJSON(w, http.StatusOK, toResponse(tx))
}

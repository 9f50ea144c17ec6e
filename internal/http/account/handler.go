package account

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/eaglebank/eaglebank-api/internal/account"
	apihttp "github.com/eaglebank/eaglebank-api/internal/http"
)

type Handler struct {
	svc *account.Service
}

func NewHandler(svc *account.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{accountNumber}", h.get)
	r.Patch("/{accountNumber}", h.update)
	r.Delete("/{accountNumber}", h.delete)
}

type createAccountRequest struct {
	Name        string       `json:"name"`
	AccountType account.Type `json:"accountType"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	acc, err := h.svc.Create(r.Context(), apihttp.Principal(r.Context()), account.CreateParams{
		Name:        req.Name,
		AccountType: req.AccountType,
	})
	if err != nil {
		apihttp.WriteError(w, err)
		return
	}

	apihttp.WriteJSON(w, http.StatusCreated, toResponse(acc))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	accs, err := h.svc.List(r.Context(), apihttp.Principal(r.Context()))
	if err != nil {
		apihttp.WriteError(w, err)
		return
	}

	apihttp.WriteJSON(w, http.StatusOK, toListResponse(accs))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	acc, err := h.svc.Get(r.Context(), apihttp.Principal(r.Context()), chi.URLParam(r, "accountNumber"))
	if err != nil {
		apihttp.WriteError(w, err)
		return
	}

	apihttp.WriteJSON(w, http.StatusOK, toResponse(acc))
}

type updateAccountRequest struct {
	Name        *string       `json:"name,omitempty"`
	AccountType *account.Type `json:"accountType,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	var req updateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	acc, err := h.svc.Update(r.Context(), apihttp.Principal(r.Context()), chi.URLParam(r, "accountNumber"), account.UpdateParams{
		Name:        req.Name,
		AccountType: req.AccountType,
	})
	if err != nil {
		apihttp.WriteError(w, err)
		return
	}

	apihttp.WriteJSON(w, http.StatusOK, toResponse(acc))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), apihttp.Principal(r.Context()), chi.URLParam(r, "accountNumber")); err != nil {
		apihttp.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

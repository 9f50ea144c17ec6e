package user

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/eaglebank/eaglebank-api/internal/auth"
	apihttp "github.com/eaglebank/eaglebank-api/internal/http"
	"github.com/eaglebank/eaglebank-api/internal/user"
)

type Handler struct {
	svc    *user.Service
	tokens *auth.TokenIssuer
}

func NewHandler(svc *user.Service, tokens *auth.TokenIssuer) *Handler {
	return &Handler{svc: svc, tokens: tokens}
}

// PublicRoutes mounts the endpoints that do not require authentication.
func (h *Handler) PublicRoutes(r chi.Router) {
	r.Post("/users", h.register)
	r.Post("/auth/login", h.login)
}

// Routes mounts the authenticated profile endpoints.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/{userID}", h.get)
	r.Patch("/{userID}", h.update)
	r.Delete("/{userID}", h.delete)
}

type registerRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Password    string `json:"password"`
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	u, err := h.svc.Register(r.Context(), user.RegisterParams{
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Password:    req.Password,
	})
	if err != nil {
		apihttp.WriteError(w, err)
		return
	}

	apihttp.WriteJSON(w, http.StatusCreated, toResponse(u))
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	JWT string `json:"jwt"`
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	u, err := h.svc.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		apihttp.WriteError(w, err)
		return
	}

	token, err := h.tokens.Issue(u.Email)
	if err != nil {
		apihttp.WriteError(w, err)
		return
	}

	apihttp.WriteJSON(w, http.StatusOK, loginResponse{JWT: token})
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	u, err := h.svc.Get(r.Context(), apihttp.Principal(r.Context()), chi.URLParam(r, "userID"))
	if err != nil {
		apihttp.WriteError(w, err)
		return
	}

	apihttp.WriteJSON(w, http.StatusOK, toResponse(u))
}

type updateRequest struct {
	Name        *string `json:"name,omitempty"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`
	Password    *string `json:"password,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	u, err := h.svc.Update(r.Context(), apihttp.Principal(r.Context()), chi.URLParam(r, "userID"), user.UpdateParams{
		Name:        req.Name,
		PhoneNumber: req.PhoneNumber,
		Password:    req.Password,
	})
	if err != nil {
		apihttp.WriteError(w, err)
		return
	}

	apihttp.WriteJSON(w, http.StatusOK, toResponse(u))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), apihttp.Principal(r.Context()), chi.URLParam(r, "userID")); err != nil {
		apihttp.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

package employee

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/voltara/merchant-api/internal/auth"
	"github.com/voltara/merchant-api/internal/employee"
)

type Handler struct {
	svc *employee.Service
}

func NewHandler(svc *employee.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.update)
	r.Delete("/{id}", h.deactivate)
}

type createEmployeeRequest struct {
	Name  string        `json:"name"`
	Email string        `json:"email"`
	Role  employee.Role `json:"role"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	ac, err := auth.FromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req createEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	emp, err := h.svc.Create(r.Context(), ac, employee.CreateParams{
		Name:  req.Name,
		Email: req.Email,
		Role:  req.Role,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(emp)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	ac, err := auth.FromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	emps, err := h.svc.List(r.Context(), ac)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(emps)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	ac, id, ok := sessionAndID(w, r)
	if !ok {
		return
	}

	emp, err := h.svc.Get(r.Context(), ac, id)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(emp)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateEmployeeRequest struct {
	Name  *string        `json:"name,omitempty"`
	Email *string        `json:"email,omitempty"`
	Role  *employee.Role `json:"role,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	ac, id, ok := sessionAndID(w, r)
	if !ok {
		return
	}

	var req updateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	emp, err := h.svc.Update(r.Context(), ac, id, employee.UpdateParams{
		Name:  req.Name,
		Email: req.Email,
		Role:  req.Role,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(emp)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) deactivate(w http.ResponseWriter, r *http.Request) {
	ac, id, ok := sessionAndID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Deactivate(r.Context(), ac, id); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func sessionAndID(w http.ResponseWriter, r *http.Request) (auth.Context, uuid.UUID, bool) {
	ac, err := auth.FromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return auth.Context{}, uuid.Nil, false
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return auth.Context{}, uuid.Nil, false
	}

	return ac, id, true
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, employee.ErrNotFound):
		http.Error(w, "employee not found", http.StatusNotFound)
	case errors.Is(err, employee.ErrMissingField), errors.Is(err, employee.ErrInvalidRole):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

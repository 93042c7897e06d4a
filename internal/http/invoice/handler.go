package invoice

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/voltara/merchant-api/internal/auth"
	"github.com/voltara/merchant-api/internal/gateway"
	"github.com/voltara/merchant-api/internal/invoice"
)

type Handler struct {
	svc *invoice.Service
}

func NewHandler(svc *invoice.Service) *Handler {
	return &Handler{svc: svc}
}

// Routes are the session-authenticated merchant endpoints.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/{id}", h.get)
	r.Post("/{id}/pix", h.generatePix)
	r.Post("/{id}/card-intent", h.cardIntent)
}

// WebhookRoutes are mounted behind the gateway shared-secret check, not
// the merchant session.
func (h *Handler) WebhookRoutes(r chi.Router) {
	r.Post("/payments", h.paymentConfirmed)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	ac, id, ok := h.sessionAndID(w, r)
	if !ok {
		return
	}

	view, err := h.svc.View(r.Context(), ac, id)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toViewResponse(view)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) generatePix(w http.ResponseWriter, r *http.Request) {
	ac, id, ok := h.sessionAndID(w, r)
	if !ok {
		return
	}

	charge, err := h.svc.RequestPixGeneration(r.Context(), ac, id)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toPixResponse(charge)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) cardIntent(w http.ResponseWriter, r *http.Request) {
	ac, id, ok := h.sessionAndID(w, r)
	if !ok {
		return
	}

	secret, err := h.svc.RequestCardChargeIntent(r.Context(), ac, id)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(cardIntentResponse{ClientSecret: secret}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type paymentConfirmedRequest struct {
	InvoiceID  uuid.UUID `json:"invoice_id"`
	Method     string    `json:"method"`
	GatewayRef string    `json:"gateway_ref"`
	CardBrand  string    `json:"card_brand"`
	CardLast4  string    `json:"card_last4"`
}

func (h *Handler) paymentConfirmed(w http.ResponseWriter, r *http.Request) {
	var req paymentConfirmedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	method := invoice.PaymentMethod(req.Method)
	if method != invoice.MethodPix && method != invoice.MethodCard {
		http.Error(w, "unknown payment method", http.StatusBadRequest)
		return
	}

	inv, err := h.svc.ConfirmPayment(r.Context(), req.InvoiceID, method, invoice.PaymentMeta{
		GatewayRef: req.GatewayRef,
		CardBrand:  req.CardBrand,
		CardLast4:  req.CardLast4,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toInvoiceResponse(inv)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) sessionAndID(w http.ResponseWriter, r *http.Request) (auth.Context, uuid.UUID, bool) {
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
	var gwErr *gateway.Error

	switch {
	case errors.Is(err, invoice.ErrNotFound):
		http.Error(w, "invoice not found", http.StatusNotFound)
	case errors.Is(err, invoice.ErrAlreadyPaid), errors.Is(err, invoice.ErrNotPending):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.As(err, &gwErr):
		http.Error(w, gwErr.Message, http.StatusBadGateway)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

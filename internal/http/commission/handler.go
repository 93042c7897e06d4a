package commission

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/voltara/merchant-api/internal/auth"
	"github.com/voltara/merchant-api/internal/commission"
	"github.com/voltara/merchant-api/internal/upload"
)

// maxProofMemory bounds how much of the multipart body is buffered in
// memory before spilling to disk.
const maxProofMemory = 1 << 20

type Handler struct {
	svc     *commission.Service
	uploads *upload.Store
}

func NewHandler(svc *commission.Service, uploads *upload.Store) *Handler {
	return &Handler{svc: svc, uploads: uploads}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/statement", h.statement)
	r.Post("/submissions", h.submit)
}

func (h *Handler) statement(w http.ResponseWriter, r *http.Request) {
	ac, err := auth.FromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	ids, err := parseIDs(r.URL.Query().Get("ids"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	stmt, err := h.svc.Statement(r.Context(), ac, ids)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toStatementResponse(stmt)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) submit(w http.ResponseWriter, r *http.Request) {
	ac, err := auth.FromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	if err := r.ParseMultipartForm(maxProofMemory); err != nil {
		http.Error(w, "invalid multipart form", http.StatusBadRequest)
		return
	}

	ids, err := parseIDs(r.FormValue("transaction_ids"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	amount, err := strconv.ParseInt(r.FormValue("amount"), 10, 64)
	if err != nil {
		http.Error(w, "invalid amount", http.StatusBadRequest)
		return
	}

	proofRef, err := h.saveProof(r)
	if err != nil {
		writeError(w, err)
		return
	}

	sub, err := h.svc.Submit(r.Context(), ac, commission.SubmitParams{
		TransactionIDs: ids,
		Method:         commission.Method(r.FormValue("method")),
		Amount:         amount,
		Reference:      r.FormValue("reference"),
		ProofRef:       proofRef,
		Note:           r.FormValue("note"),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toSubmissionResponse(sub)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// saveProof stores the uploaded proof-of-payment file, if any, and
// returns its reference. A missing file is not an error here; the
// service rejects the submission with ErrAttachmentRequired.
func (h *Handler) saveProof(r *http.Request) (string, error) {
	file, header, err := r.FormFile("proof")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return "", nil
		}

		return "", err
	}
	defer file.Close()

	return h.uploads.Save(header.Filename, header.Size, file)
}

func parseIDs(raw string) ([]uuid.UUID, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	ids := make([]uuid.UUID, 0, len(parts))

	for _, p := range parts {
		id, err := uuid.Parse(strings.TrimSpace(p))
		if err != nil {
			return nil, errors.New("invalid transaction id: " + p)
		}

		ids = append(ids, id)
	}

	return ids, nil
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, commission.ErrNotFound):
		http.Error(w, "transaction not found", http.StatusNotFound)
	case errors.Is(err, upload.ErrTooLarge):
		http.Error(w, err.Error(), http.StatusRequestEntityTooLarge)
	case errors.Is(err, commission.ErrMissingField),
		errors.Is(err, commission.ErrInvalidMethod),
		errors.Is(err, commission.ErrAttachmentRequired),
		errors.Is(err, commission.ErrInvalidAttachmentType),
		errors.Is(err, commission.ErrNegativeCharge),
		errors.Is(err, upload.ErrUnsupportedType):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

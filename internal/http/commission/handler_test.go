package commission_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/voltara/merchant-api/internal/auth"
	"github.com/voltara/merchant-api/internal/commission"
	commissionHandler "github.com/voltara/merchant-api/internal/http/commission"
	"github.com/voltara/merchant-api/internal/upload"
)

func newRouter(t *testing.T, ac auth.Context, repo *commission.MockRepository) http.Handler {
	t.Helper()

	uploads := upload.NewStore(t.TempDir(), 5*1024*1024)
	h := commissionHandler.NewHandler(commission.NewService(repo), uploads)

	router := chi.NewRouter()

	router.Route("/commissions", func(r chi.Router) {
		r.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				next.ServeHTTP(w, req.WithContext(auth.With(req.Context(), ac)))
			})
		})
		h.Routes(r)
	})

	return router
}

func TestHandler_Statement(t *testing.T) {
	ac := auth.Context{StoreID: uuid.New()}
	ids := []uuid.UUID{uuid.New(), uuid.New()}

	ctrl := gomock.NewController(t)
	repo := commission.NewMockRepository(ctrl)
	repo.EXPECT().
		ListPendingTransactions(gomock.Any(), ac.StoreID, ids).
		Return([]*commission.Transaction{
			{ID: ids[0], Code: "TX-001", OriginalAmount: 10000, BalanceUsed: 3000, Commission: 1000},
			{ID: ids[1], Code: "TX-002", OriginalAmount: 5000, Commission: 500},
		}, nil)

	router := newRouter(t, ac, repo)

	req := httptest.NewRequest(http.MethodGet,
		"/commissions/statement?ids="+ids[0].String()+","+ids[1].String(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Items []struct {
			Code          string `json:"code"`
			ChargedAmount int64  `json:"charged_amount"`
			Discounted    bool   `json:"discounted"`
		} `json:"items"`
		Summary struct {
			ChargedTotal    int64 `json:"charged_total"`
			CommissionTotal int64 `json:"commission_total"`
		} `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	require.Len(t, body.Items, 2)
	assert.Equal(t, int64(7000), body.Items[0].ChargedAmount)
	assert.True(t, body.Items[0].Discounted)
	assert.Equal(t, int64(12000), body.Summary.ChargedTotal)
	assert.Equal(t, int64(1500), body.Summary.CommissionTotal)
}

func TestHandler_Statement_BadRequests(t *testing.T) {
	ac := auth.Context{StoreID: uuid.New()}

	ctrl := gomock.NewController(t)
	repo := commission.NewMockRepository(ctrl)
	router := newRouter(t, ac, repo)

	t.Run("NoIDs", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/commissions/statement", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("MalformedID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/commissions/statement?ids=not-a-uuid", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func multipartSubmission(t *testing.T, fields map[string]string, proofName, proofContent string) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer

	mw := multipart.NewWriter(&buf)

	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}

	if proofName != "" {
		fw, err := mw.CreateFormFile("proof", proofName)
		require.NoError(t, err)

		_, err = fw.Write([]byte(proofContent))
		require.NoError(t, err)
	}

	require.NoError(t, mw.Close())

	return &buf, mw.FormDataContentType()
}

func TestHandler_Submit(t *testing.T) {
	ac := auth.Context{StoreID: uuid.New()}
	ids := []uuid.UUID{uuid.New()}

	t.Run("Success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := commission.NewMockRepository(ctrl)
		repo.EXPECT().
			ListPendingTransactions(gomock.Any(), ac.StoreID, ids).
			Return([]*commission.Transaction{
				{ID: ids[0], OriginalAmount: 10000, Commission: 1000},
			}, nil)
		repo.EXPECT().
			CreateSubmission(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, sub *commission.Submission) error {
				sub.ID = uuid.New()
				return nil
			})

		router := newRouter(t, ac, repo)

		body, contentType := multipartSubmission(t, map[string]string{
			"transaction_ids": ids[0].String(),
			"method":          "pix",
			"amount":          "1000",
			"reference":       "E2E-55",
		}, "comprovante.pdf", "fake pdf")

		req := httptest.NewRequest(http.MethodPost, "/commissions/submissions", body)
		req.Header.Set("Content-Type", contentType)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)

		var resp struct {
			Status   string `json:"status"`
			Amount   int64  `json:"amount"`
			ProofRef string `json:"proof_ref"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "awaiting_review", resp.Status)
		assert.Equal(t, int64(1000), resp.Amount)
		assert.True(t, strings.HasSuffix(resp.ProofRef, ".pdf"))
	})

	t.Run("MissingProof", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := commission.NewMockRepository(ctrl)
		router := newRouter(t, ac, repo)

		body, contentType := multipartSubmission(t, map[string]string{
			"transaction_ids": ids[0].String(),
			"method":          "pix",
			"amount":          "1000",
		}, "", "")

		req := httptest.NewRequest(http.MethodPost, "/commissions/submissions", body)
		req.Header.Set("Content-Type", contentType)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), "attachment required")
	})

	t.Run("UnsupportedProofType", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := commission.NewMockRepository(ctrl)
		router := newRouter(t, ac, repo)

		body, contentType := multipartSubmission(t, map[string]string{
			"transaction_ids": ids[0].String(),
			"method":          "pix",
			"amount":          "1000",
		}, "script.sh", "#!/bin/sh")

		req := httptest.NewRequest(http.MethodPost, "/commissions/submissions", body)
		req.Header.Set("Content-Type", contentType)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("UnknownMethod", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := commission.NewMockRepository(ctrl)
		router := newRouter(t, ac, repo)

		body, contentType := multipartSubmission(t, map[string]string{
			"transaction_ids": ids[0].String(),
			"method":          "cash",
			"amount":          "1000",
		}, "comprovante.png", "img")

		req := httptest.NewRequest(http.MethodPost, "/commissions/submissions", body)
		req.Header.Set("Content-Type", contentType)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})
}

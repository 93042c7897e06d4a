package commission_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/voltara/merchant-api/internal/auth"
	"github.com/voltara/merchant-api/internal/commission"
)

func TestComputeLineItem(t *testing.T) {
	date := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)

	type testCase struct {
		name           string
		tx             commission.Transaction
		wantCharged    int64
		wantDiscounted bool
		wantErr        error
	}

	tests := []testCase{
		{
			name: "BalanceApplied",
			tx: commission.Transaction{
				Code:           "TX-001",
				OriginalAmount: 10000,
				BalanceUsed:    3000,
				Commission:     1000,
				Date:           date,
			},
			wantCharged:    7000,
			wantDiscounted: true,
		},
		{
			name: "NoBalanceUsed",
			tx: commission.Transaction{
				Code:           "TX-002",
				OriginalAmount: 5000,
				BalanceUsed:    0,
				Commission:     500,
				Date:           date,
			},
			wantCharged:    5000,
			wantDiscounted: false,
		},
		{
			name: "FullBalance",
			tx: commission.Transaction{
				Code:           "TX-003",
				OriginalAmount: 2500,
				BalanceUsed:    2500,
				Commission:     250,
			},
			wantCharged:    0,
			wantDiscounted: true,
		},
		{
			name: "UsageExceedsOriginal",
			tx: commission.Transaction{
				Code:           "TX-004",
				OriginalAmount: 1000,
				BalanceUsed:    1500,
			},
			wantErr: commission.ErrNegativeCharge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, err := commission.ComputeLineItem(&tt.tx)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantCharged, item.ChargedAmount)
			assert.Equal(t, tt.wantDiscounted, item.Discounted)
			assert.Equal(t, tt.tx.Commission, item.CommissionOwed)
			assert.Equal(t, tt.tx.OriginalAmount, item.ChargedAmount+item.BalanceUsed)
		})
	}
}

func TestAggregate(t *testing.T) {
	items := []commission.LineItem{
		{OriginalAmount: 10000, BalanceUsed: 3000, ChargedAmount: 7000, CommissionOwed: 1000},
		{OriginalAmount: 5099, BalanceUsed: 0, ChargedAmount: 5099, CommissionOwed: 510},
		{OriginalAmount: 333, BalanceUsed: 133, ChargedAmount: 200, CommissionOwed: 33},
	}

	want := commission.Summary{
		Count:            3,
		OriginalTotal:    15432,
		BalanceUsedTotal: 3133,
		ChargedTotal:     12299,
		CommissionTotal:  1543,
	}

	assert.Equal(t, want, commission.Aggregate(items))

	// Totals must not depend on item order.
	permuted := []commission.LineItem{items[2], items[0], items[1]}
	assert.Equal(t, want, commission.Aggregate(permuted))

	reversed := []commission.LineItem{items[2], items[1], items[0]}
	assert.Equal(t, want, commission.Aggregate(reversed))
}

func TestAggregate_Empty(t *testing.T) {
	sum := commission.Aggregate(nil)
	assert.Zero(t, sum.Count)
	assert.Zero(t, sum.ChargedTotal)
}

func TestService_Statement(t *testing.T) {
	storeID := uuid.New()
	ac := auth.Context{StoreID: storeID, Role: auth.RoleOwner}
	ids := []uuid.UUID{uuid.New(), uuid.New()}

	type testCase struct {
		name      string
		ids       []uuid.UUID
		setupMock func(m *commission.MockRepository)
		wantErr   error // sentinel to match with errors.Is
		wantFail  bool  // any error
		check     func(t *testing.T, stmt *commission.Statement)
	}

	tests := []testCase{
		{
			name: "Success",
			ids:  ids,
			setupMock: func(m *commission.MockRepository) {
				m.EXPECT().
					ListPendingTransactions(gomock.Any(), storeID, ids).
					Return([]*commission.Transaction{
						{ID: ids[0], OriginalAmount: 10000, BalanceUsed: 3000, Commission: 1000},
						{ID: ids[1], OriginalAmount: 5000, Commission: 500},
					}, nil)
			},
			check: func(t *testing.T, stmt *commission.Statement) {
				require.Len(t, stmt.Items, 2)
				assert.Equal(t, int64(7000), stmt.Items[0].ChargedAmount)
				assert.True(t, stmt.Items[0].Discounted)
				assert.False(t, stmt.Items[1].Discounted)
				assert.Equal(t, int64(12000), stmt.Summary.ChargedTotal)
				assert.Equal(t, int64(1500), stmt.Summary.CommissionTotal)
			},
		},
		{
			name:    "EmptyIDs",
			ids:     nil,
			wantErr: commission.ErrMissingField,
		},
		{
			name: "UnknownOrForeignTransaction",
			ids:  ids,
			setupMock: func(m *commission.MockRepository) {
				m.EXPECT().
					ListPendingTransactions(gomock.Any(), storeID, ids).
					Return([]*commission.Transaction{
						{ID: ids[0], OriginalAmount: 10000},
					}, nil)
			},
			wantErr: commission.ErrNotFound,
		},
		{
			name: "CorruptBalanceUsage",
			ids:  ids[:1],
			setupMock: func(m *commission.MockRepository) {
				m.EXPECT().
					ListPendingTransactions(gomock.Any(), storeID, ids[:1]).
					Return([]*commission.Transaction{
						{ID: ids[0], OriginalAmount: 1000, BalanceUsed: 2000},
					}, nil)
			},
			wantErr: commission.ErrNegativeCharge,
		},
		{
			name: "RepositoryError",
			ids:  ids,
			setupMock: func(m *commission.MockRepository) {
				m.EXPECT().
					ListPendingTransactions(gomock.Any(), storeID, ids).
					Return(nil, errors.New("db error"))
			},
			wantFail: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := commission.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := commission.NewService(repo)
			stmt, err := svc.Statement(context.Background(), ac, tt.ids)

			if tt.wantErr != nil || tt.wantFail {
				require.Error(t, err)

				if tt.wantErr != nil {
					assert.ErrorIs(t, err, tt.wantErr)
				}

				assert.Nil(t, stmt)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, stmt)

			if tt.check != nil {
				tt.check(t, stmt)
			}
		})
	}
}

func TestValidateSubmission(t *testing.T) {
	ids := []uuid.UUID{uuid.New()}

	type testCase struct {
		name    string
		params  commission.SubmitParams
		wantErr error
	}

	tests := []testCase{
		{
			name: "Valid",
			params: commission.SubmitParams{
				TransactionIDs: ids,
				Method:         commission.MethodPix,
				Amount:         10000,
				ProofRef:       "proofs/ab12.pdf",
			},
		},
		{
			name: "EmptyTransactionIDs",
			params: commission.SubmitParams{
				Method:   commission.MethodPix,
				Amount:   10000,
				ProofRef: "proofs/ab12.pdf",
			},
			wantErr: commission.ErrMissingField,
		},
		{
			name: "ZeroAmount",
			params: commission.SubmitParams{
				TransactionIDs: ids,
				Method:         commission.MethodPix,
				ProofRef:       "proofs/ab12.pdf",
			},
			wantErr: commission.ErrMissingField,
		},
		{
			name: "UnknownMethod",
			params: commission.SubmitParams{
				TransactionIDs: ids,
				Method:         commission.Method("cash"),
				Amount:         10000,
				ProofRef:       "proofs/ab12.pdf",
			},
			wantErr: commission.ErrInvalidMethod,
		},
		{
			name: "MissingProof",
			params: commission.SubmitParams{
				TransactionIDs: ids,
				Method:         commission.MethodBankSlip,
				Amount:         10000,
			},
			wantErr: commission.ErrAttachmentRequired,
		},
		{
			name: "UnsupportedProofType",
			params: commission.SubmitParams{
				TransactionIDs: ids,
				Method:         commission.MethodBankTransfer,
				Amount:         10000,
				ProofRef:       "proofs/ab12.exe",
			},
			wantErr: commission.ErrInvalidAttachmentType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := commission.ValidateSubmission(tt.params)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestService_Submit(t *testing.T) {
	storeID := uuid.New()
	ac := auth.Context{StoreID: storeID, Role: auth.RoleOwner}
	ids := []uuid.UUID{uuid.New(), uuid.New()}

	params := commission.SubmitParams{
		TransactionIDs: ids,
		Method:         commission.MethodPix,
		Amount:         9999, // client-declared, replaced server-side
		Reference:      "E2E-1234",
		ProofRef:       "proofs/cd34.png",
	}

	t.Run("Success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := commission.NewMockRepository(ctrl)
		repo.EXPECT().
			ListPendingTransactions(gomock.Any(), storeID, ids).
			Return([]*commission.Transaction{
				{ID: ids[0], OriginalAmount: 10000, BalanceUsed: 3000, Commission: 1000},
				{ID: ids[1], OriginalAmount: 5000, Commission: 500},
			}, nil)
		repo.EXPECT().
			CreateSubmission(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, sub *commission.Submission) error {
				sub.ID = uuid.New()
				sub.CreatedAt = time.Now()
				return nil
			})

		svc := commission.NewService(repo)
		sub, err := svc.Submit(context.Background(), ac, params)

		require.NoError(t, err)
		assert.Equal(t, commission.StatusAwaitingReview, sub.Status)
		assert.Equal(t, storeID, sub.StoreID)
		assert.Equal(t, int64(1500), sub.Amount, "persisted amount is the reconciled commission total")
		assert.NotEmpty(t, sub.ID)
	})

	t.Run("ValidationFailure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := commission.NewMockRepository(ctrl)
		svc := commission.NewService(repo)

		bad := params
		bad.Method = commission.Method("cheque")

		sub, err := svc.Submit(context.Background(), ac, bad)
		assert.ErrorIs(t, err, commission.ErrInvalidMethod)
		assert.Nil(t, sub)
	})

	t.Run("RepositoryError", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := commission.NewMockRepository(ctrl)
		repo.EXPECT().
			ListPendingTransactions(gomock.Any(), storeID, ids).
			Return([]*commission.Transaction{
				{ID: ids[0], OriginalAmount: 10000, Commission: 1000},
				{ID: ids[1], OriginalAmount: 5000, Commission: 500},
			}, nil)
		repo.EXPECT().
			CreateSubmission(gomock.Any(), gomock.Any()).
			Return(errors.New("insert failed"))

		svc := commission.NewService(repo)
		sub, err := svc.Submit(context.Background(), ac, params)

		assert.Error(t, err)
		assert.Nil(t, sub)
	})
}

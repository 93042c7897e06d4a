package commission

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"

	"github.com/voltara/merchant-api/internal/auth"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=commission
type Repository interface {
	// ListPendingTransactions returns the pending transactions matching ids
	// that belong to storeID, each with its summed loyalty-balance usage.
	ListPendingTransactions(ctx context.Context, storeID uuid.UUID, ids []uuid.UUID) ([]*Transaction, error)
	CreateSubmission(ctx context.Context, sub *Submission) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ComputeLineItem reconciles one transaction: the amount actually charged
// to the customer is the original sale minus the loyalty balance they
// applied. Commission is taken from the stored field, fixed at sale time.
// Balance usage above the original amount is a data-integrity error, not
// something to clamp.
func ComputeLineItem(tx *Transaction) (LineItem, error) {
	if tx.BalanceUsed > tx.OriginalAmount {
		return LineItem{}, fmt.Errorf("transaction %s: used %d of %d: %w",
			tx.ID, tx.BalanceUsed, tx.OriginalAmount, ErrNegativeCharge)
	}

	charged := tx.OriginalAmount - tx.BalanceUsed

	return LineItem{
		Code:           tx.Code,
		Customer:       tx.Customer,
		Date:           tx.Date,
		OriginalAmount: tx.OriginalAmount,
		BalanceUsed:    tx.BalanceUsed,
		ChargedAmount:  charged,
		CommissionOwed: tx.Commission,
		Discounted:     charged < tx.OriginalAmount,
	}, nil
}

// Aggregate sums line items into statement totals. All arithmetic is on
// cents, so totals are exact regardless of item order.
func Aggregate(items []LineItem) Summary {
	sum := Summary{Count: len(items)}

	for _, it := range items {
		sum.OriginalTotal += it.OriginalAmount
		sum.BalanceUsedTotal += it.BalanceUsed
		sum.CommissionTotal += it.CommissionOwed
	}

	sum.ChargedTotal = sum.OriginalTotal - sum.BalanceUsedTotal

	return sum
}

// Statement fetches the requested pending transactions for the
// authenticated store and reconciles them into a statement. Any id that
// is absent, not pending, or owned by another store fails the whole
// request with ErrNotFound.
func (s *Service) Statement(ctx context.Context, ac auth.Context, ids []uuid.UUID) (*Statement, error) {
	if len(ids) == 0 {
		return nil, fmt.Errorf("transaction ids: %w", ErrMissingField)
	}

	txs, err := s.repo.ListPendingTransactions(ctx, ac.StoreID, ids)
	if err != nil {
		return nil, fmt.Errorf("listing pending transactions: %w", err)
	}

	if len(txs) != len(ids) {
		return nil, fmt.Errorf("%d of %d transactions: %w", len(ids)-len(txs), len(ids), ErrNotFound)
	}

	items := make([]LineItem, 0, len(txs))

	for _, tx := range txs {
		item, err := ComputeLineItem(tx)
		if err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	return &Statement{Items: items, Summary: Aggregate(items)}, nil
}

type SubmitParams struct {
	TransactionIDs []uuid.UUID
	Method         Method
	Amount         int64
	Reference      string
	ProofRef       string
	Note           string
}

var proofExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".pdf":  {},
}

// ValidateSubmission checks a submission before persistence. The proof
// file itself was already stored by the upload collaborator; only the
// reference and its extension are checked here.
func ValidateSubmission(p SubmitParams) error {
	if len(p.TransactionIDs) == 0 {
		return fmt.Errorf("transaction ids: %w", ErrMissingField)
	}

	if p.Amount <= 0 {
		return fmt.Errorf("amount: %w", ErrMissingField)
	}

	if !p.Method.Valid() {
		return fmt.Errorf("method %q: %w", p.Method, ErrInvalidMethod)
	}

	if p.ProofRef == "" {
		return ErrAttachmentRequired
	}

	ext := strings.ToLower(path.Ext(p.ProofRef))
	if _, ok := proofExtensions[ext]; !ok {
		return fmt.Errorf("extension %q: %w", ext, ErrInvalidAttachmentType)
	}

	return nil
}

// Submit validates the payment declaration, re-reconciles the named
// transactions server-side, and persists the submission as
// awaiting_review. The persisted amount is the reconciled commission
// total, not the client-declared one.
func (s *Service) Submit(ctx context.Context, ac auth.Context, p SubmitParams) (*Submission, error) {
	if err := ValidateSubmission(p); err != nil {
		return nil, err
	}

	stmt, err := s.Statement(ctx, ac, p.TransactionIDs)
	if err != nil {
		return nil, err
	}

	sub := &Submission{
		StoreID:        ac.StoreID,
		TransactionIDs: p.TransactionIDs,
		Amount:         stmt.Summary.CommissionTotal,
		Method:         p.Method,
		Reference:      p.Reference,
		ProofRef:       p.ProofRef,
		Note:           p.Note,
		Status:         StatusAwaitingReview,
	}

	if err := s.repo.CreateSubmission(ctx, sub); err != nil {
		return nil, fmt.Errorf("creating submission: %w", err)
	}

	return sub, nil
}

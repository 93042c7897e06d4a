package commission

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Method is the payment method a store uses to settle owed commission.
type Method string

const (
	MethodPix          Method = "pix"
	MethodBankTransfer Method = "bank_transfer"
	MethodWireTransfer Method = "wire_transfer"
	MethodBankSlip     Method = "bank_slip"
)

// Valid reports whether m is one of the accepted settlement methods.
func (m Method) Valid() bool {
	switch m {
	case MethodPix, MethodBankTransfer, MethodWireTransfer, MethodBankSlip:
		return true
	}

	return false
}

// Status represents the review lifecycle of a payment submission.
// Submissions are created as awaiting_review; the review process owns
// every transition after that.
type Status string

const (
	StatusAwaitingReview Status = "awaiting_review"
	StatusApproved       Status = "approved"
	StatusRejected       Status = "rejected"
)

var (
	ErrNotFound              = errors.New("transaction not found")
	ErrMissingField          = errors.New("missing required field")
	ErrInvalidMethod         = errors.New("invalid payment method")
	ErrAttachmentRequired    = errors.New("proof of payment attachment required")
	ErrInvalidAttachmentType = errors.New("unsupported attachment type")
	ErrNegativeCharge        = errors.New("balance used exceeds original amount")
)

// Transaction is a customer sale with commission pending settlement.
// Amounts are in cents. Commission is fixed at sale time and never
// recomputed here; BalanceUsed is the summed loyalty-ledger usage
// linked to the sale, populated by the storage layer.
type Transaction struct {
	ID             uuid.UUID
	StoreID        uuid.UUID
	CustomerID     uuid.UUID
	Customer       string
	Code           string
	OriginalAmount int64
	Commission     int64
	BalanceUsed    int64
	Date           time.Time
}

// LineItem is one reconciled statement row.
type LineItem struct {
	Code           string
	Customer       string
	Date           time.Time
	OriginalAmount int64
	BalanceUsed    int64
	ChargedAmount  int64
	CommissionOwed int64
	Discounted     bool
}

// Summary holds the statement totals, all in cents.
type Summary struct {
	Count            int
	OriginalTotal    int64
	BalanceUsedTotal int64
	ChargedTotal     int64
	CommissionTotal  int64
}

// Statement is the view model handed to the rendering layer.
type Statement struct {
	Items   []LineItem
	Summary Summary
}

// Submission records a store's declaration that owed commission was paid.
type Submission struct {
	ID             uuid.UUID
	StoreID        uuid.UUID
	TransactionIDs []uuid.UUID
	Amount         int64
	Method         Method
	Reference      string
	ProofRef       string
	Note           string
	Status         Status
	CreatedAt      time.Time
}

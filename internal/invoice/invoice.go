package invoice

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Status represents the lifecycle state of a subscription invoice.
// Everything except pending is terminal here; retries happen on a fresh
// invoice created by the billing service.
type Status string

const (
	StatusPending  Status = "pending"
	StatusPaid     Status = "paid"
	StatusFailed   Status = "failed"
	StatusExpired  Status = "expired"
	StatusCanceled Status = "canceled"
)

// Terminal reports whether no further transition is allowed from s.
func (s Status) Terminal() bool {
	return s != StatusPending
}

// PaymentMethod is how a paid invoice was settled.
type PaymentMethod string

const (
	MethodPix  PaymentMethod = "pix"
	MethodCard PaymentMethod = "card"
)

var (
	ErrNotFound    = errors.New("invoice not found")
	ErrAlreadyPaid = errors.New("invoice already paid")
	ErrNotPending  = errors.New("invoice is not pending")
)

// Invoice is a billing record for a store's subscription. Amount is in
// cents. PIX artifacts stay empty until a charge is generated; once the
// status is paid, amount, method and paid-at are immutable for this
// module.
type Invoice struct {
	ID             uuid.UUID
	SubscriptionID uuid.UUID
	StoreID        uuid.UUID
	Amount         int64
	DueDate        time.Time
	Status         Status
	PaidMethod     PaymentMethod
	PixQRImage     string
	PixCode        string
	PixExpiresAt   *time.Time
	GatewayRef     string
	CardBrand      string
	CardLast4      string
	PaidAt         *time.Time
	CreatedAt      time.Time
}

// NeedsPixGeneration reports whether a PIX charge still has to be
// created: true iff both the QR image and the copy-paste code are empty.
func (inv *Invoice) NeedsPixGeneration() bool {
	return inv.PixQRImage == "" && inv.PixCode == ""
}

// PixCharge holds the gateway-issued PIX artifacts.
type PixCharge struct {
	QRImage   string
	Code      string
	ExpiresAt time.Time
}

// PaymentMeta is the gateway metadata recorded on confirmation. Card
// fields stay empty for PIX payments.
type PaymentMeta struct {
	GatewayRef string
	CardBrand  string
	CardLast4  string
}

// StatusView is the view model the rendering layer consumes.
type StatusView struct {
	Invoice  *Invoice
	NeedsPix bool
}

package invoice

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/voltara/merchant-api/internal/auth"
)

//go:generate mockgen -source=service.go -destination=service_mock.go -package=invoice
type Repository interface {
	// GetInvoice fetches an invoice scoped to its owning store.
	GetInvoice(ctx context.Context, id, storeID uuid.UUID) (*Invoice, error)
	// GetInvoiceByID fetches without store scoping, for the webhook path.
	GetInvoiceByID(ctx context.Context, id uuid.UUID) (*Invoice, error)
	// SavePixCharge stores the PIX artifacts only while the invoice is
	// still pending and has none. Returns false when the guard failed.
	SavePixCharge(ctx context.Context, id uuid.UUID, charge PixCharge) (bool, error)
	// SetGatewayRef records the card-intent reference on the invoice.
	SetGatewayRef(ctx context.Context, id uuid.UUID, ref string) error
	// MarkPaid transitions pending -> paid, stamping paid-at and the
	// payment metadata. Returns false when the invoice was no longer
	// pending, which makes confirmation idempotent under concurrency.
	MarkPaid(ctx context.Context, id uuid.UUID, method PaymentMethod, meta PaymentMeta) (bool, error)
}

type PixGateway interface {
	CreateCharge(ctx context.Context, invoiceID uuid.UUID, amount int64) (*PixCharge, error)
}

type CardGateway interface {
	CreateIntent(ctx context.Context, invoiceID uuid.UUID, amount int64) (ref, clientSecret string, err error)
}

// Service implements the invoice payment workflow over the storage and
// gateway collaborators. It holds no state of its own.
type Service struct {
	repo Repository
	pix  PixGateway
	card CardGateway
}

func NewService(repo Repository, pix PixGateway, card CardGateway) *Service {
	return &Service{repo: repo, pix: pix, card: card}
}

// View returns the invoice and whether the renderer should offer PIX
// generation.
func (s *Service) View(ctx context.Context, ac auth.Context, id uuid.UUID) (*StatusView, error) {
	inv, err := s.repo.GetInvoice(ctx, id, ac.StoreID)
	if err != nil {
		return nil, err
	}

	return &StatusView{Invoice: inv, NeedsPix: inv.NeedsPixGeneration()}, nil
}

// RequestPixGeneration asks the PIX gateway for a charge and persists
// the artifacts. Generation happens at most once per invoice: existing
// artifacts are returned as-is, and a concurrent generation losing the
// conditional write falls back to whatever was stored first. Gateway
// failures are passed through untouched; the user may simply click again.
func (s *Service) RequestPixGeneration(ctx context.Context, ac auth.Context, id uuid.UUID) (*PixCharge, error) {
	inv, err := s.repo.GetInvoice(ctx, id, ac.StoreID)
	if err != nil {
		return nil, err
	}

	if err := requirePending(inv); err != nil {
		return nil, err
	}

	if !inv.NeedsPixGeneration() {
		return storedCharge(inv), nil
	}

	charge, err := s.pix.CreateCharge(ctx, inv.ID, inv.Amount)
	if err != nil {
		return nil, fmt.Errorf("creating pix charge: %w", err)
	}

	applied, err := s.repo.SavePixCharge(ctx, inv.ID, *charge)
	if err != nil {
		return nil, fmt.Errorf("saving pix charge: %w", err)
	}

	if !applied {
		inv, err = s.repo.GetInvoice(ctx, id, ac.StoreID)
		if err != nil {
			return nil, err
		}

		if err := requirePending(inv); err != nil {
			return nil, err
		}

		return storedCharge(inv), nil
	}

	return charge, nil
}

// RequestCardChargeIntent creates a card payment intent with the gateway
// and returns the opaque client secret the front end completes the
// confirmation flow with. Card data never passes through here.
func (s *Service) RequestCardChargeIntent(ctx context.Context, ac auth.Context, id uuid.UUID) (string, error) {
	inv, err := s.repo.GetInvoice(ctx, id, ac.StoreID)
	if err != nil {
		return "", err
	}

	if err := requirePending(inv); err != nil {
		return "", err
	}

	ref, secret, err := s.card.CreateIntent(ctx, inv.ID, inv.Amount)
	if err != nil {
		return "", fmt.Errorf("creating payment intent: %w", err)
	}

	if err := s.repo.SetGatewayRef(ctx, inv.ID, ref); err != nil {
		return "", fmt.Errorf("recording intent ref: %w", err)
	}

	return secret, nil
}

// ConfirmPayment transitions a pending invoice to paid. It is invoked by
// the trusted webhook collaborator, never by the rendered page, and is
// idempotent: confirming an already-paid invoice returns the stored
// record unchanged so downstream effects cannot double-apply.
func (s *Service) ConfirmPayment(ctx context.Context, id uuid.UUID, method PaymentMethod, meta PaymentMeta) (*Invoice, error) {
	inv, err := s.repo.GetInvoiceByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if inv.Status == StatusPaid {
		return inv, nil
	}

	if inv.Status.Terminal() {
		return nil, fmt.Errorf("invoice %s is %s: %w", inv.ID, inv.Status, ErrNotPending)
	}

	if _, err := s.repo.MarkPaid(ctx, id, method, meta); err != nil {
		return nil, fmt.Errorf("marking invoice paid: %w", err)
	}

	// Re-read so a lost race still returns the record the winner wrote.
	return s.repo.GetInvoiceByID(ctx, id)
}

func requirePending(inv *Invoice) error {
	switch {
	case inv.Status == StatusPaid:
		return fmt.Errorf("invoice %s: %w", inv.ID, ErrAlreadyPaid)
	case inv.Status.Terminal():
		return fmt.Errorf("invoice %s is %s: %w", inv.ID, inv.Status, ErrNotPending)
	}

	return nil
}

func storedCharge(inv *Invoice) *PixCharge {
	charge := &PixCharge{QRImage: inv.PixQRImage, Code: inv.PixCode}
	if inv.PixExpiresAt != nil {
		charge.ExpiresAt = *inv.PixExpiresAt
	}

	return charge
}

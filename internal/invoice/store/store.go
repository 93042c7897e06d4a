package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/voltara/merchant-api/internal/invoice"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

// Expected column order: id, subscription_id, store_id, amount, due_date,
// status, paid_method, pix_qr_image, pix_code, pix_expires_at,
// gateway_ref, card_brand, card_last4, paid_at, created_at
func scanInvoice(s scanner) (*invoice.Invoice, error) {
	var inv invoice.Invoice

	var statusStr, methodStr string

	var qrImage, pixCode, gatewayRef, cardBrand, cardLast4 sql.NullString

	if err := s.Scan(
		&inv.ID, &inv.SubscriptionID, &inv.StoreID, &inv.Amount, &inv.DueDate,
		&statusStr, &methodStr, &qrImage, &pixCode, &inv.PixExpiresAt,
		&gatewayRef, &cardBrand, &cardLast4, &inv.PaidAt, &inv.CreatedAt,
	); err != nil {
		return nil, err
	}

	inv.Status = invoice.Status(statusStr)
	inv.PaidMethod = invoice.PaymentMethod(methodStr)
	inv.PixQRImage = qrImage.String
	inv.PixCode = pixCode.String
	inv.GatewayRef = gatewayRef.String
	inv.CardBrand = cardBrand.String
	inv.CardLast4 = cardLast4.String

	return &inv, nil
}

const selectInvoiceColumns = `
	id, subscription_id, store_id, amount, due_date,
	status, COALESCE(paid_method, ''), pix_qr_image, pix_code, pix_expires_at,
	gateway_ref, card_brand, card_last4, paid_at, created_at
`

func (s *Store) GetInvoice(ctx context.Context, id, storeID uuid.UUID) (*invoice.Invoice, error) {
	query := `SELECT ` + selectInvoiceColumns + `
		FROM invoices
		WHERE id = $1 AND store_id = $2`

	inv, err := scanInvoice(s.db.QueryRowContext(ctx, query, id, storeID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, invoice.ErrNotFound
		}

		return nil, fmt.Errorf("getting invoice: %w", err)
	}

	return inv, nil
}

func (s *Store) GetInvoiceByID(ctx context.Context, id uuid.UUID) (*invoice.Invoice, error) {
	query := `SELECT ` + selectInvoiceColumns + `
		FROM invoices
		WHERE id = $1`

	inv, err := scanInvoice(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, invoice.ErrNotFound
		}

		return nil, fmt.Errorf("getting invoice: %w", err)
	}

	return inv, nil
}

// SavePixCharge writes the PIX artifacts only while the invoice is still
// pending and has none. The guard in the WHERE clause is what makes
// generation at-most-once under concurrent requests.
func (s *Store) SavePixCharge(ctx context.Context, id uuid.UUID, charge invoice.PixCharge) (bool, error) {
	query := `
		UPDATE invoices
		SET pix_qr_image = $1, pix_code = $2, pix_expires_at = $3, updated_at = NOW()
		WHERE id = $4 AND status = 'pending'
			AND COALESCE(pix_qr_image, '') = '' AND COALESCE(pix_code, '') = ''
	`

	res, err := s.db.ExecContext(ctx, query, charge.QRImage, charge.Code, charge.ExpiresAt, id)
	if err != nil {
		return false, fmt.Errorf("saving pix charge: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("saving pix charge: %w", err)
	}

	return n == 1, nil
}

func (s *Store) SetGatewayRef(ctx context.Context, id uuid.UUID, ref string) error {
	query := `
		UPDATE invoices
		SET gateway_ref = $1, updated_at = NOW()
		WHERE id = $2 AND status = 'pending'
	`

	if _, err := s.db.ExecContext(ctx, query, ref, id); err != nil {
		return fmt.Errorf("setting gateway ref: %w", err)
	}

	return nil
}

// MarkPaid is a conditional pending -> paid transition. A false return
// means another confirmation won the race; callers re-read and return
// the stored record.
func (s *Store) MarkPaid(ctx context.Context, id uuid.UUID, method invoice.PaymentMethod, meta invoice.PaymentMeta) (bool, error) {
	query := `
		UPDATE invoices
		SET status = 'paid',
			paid_method = $1,
			gateway_ref = COALESCE(NULLIF($2, ''), gateway_ref),
			card_brand = NULLIF($3, ''),
			card_last4 = NULLIF($4, ''),
			paid_at = NOW(),
			updated_at = NOW()
		WHERE id = $5 AND status = 'pending'
	`

	res, err := s.db.ExecContext(ctx, query, method, meta.GatewayRef, meta.CardBrand, meta.CardLast4, id)
	if err != nil {
		return false, fmt.Errorf("marking invoice paid: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("marking invoice paid: %w", err)
	}

	return n == 1, nil
}

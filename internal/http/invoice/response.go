package invoice

import (
	"time"

	"github.com/google/uuid"

	"github.com/voltara/merchant-api/internal/invoice"
)

type invoiceResponse struct {
	ID             uuid.UUID      `json:"id"`
	SubscriptionID uuid.UUID      `json:"subscription_id"`
	Amount         int64          `json:"amount"`
	DueDate        time.Time      `json:"due_date"`
	Status         invoice.Status `json:"status"`
	PaidMethod     string         `json:"paid_method,omitempty"`
	PixQRImage     string         `json:"pix_qr_image,omitempty"`
	PixCode        string         `json:"pix_code,omitempty"`
	PixExpiresAt   *time.Time     `json:"pix_expires_at,omitempty"`
	CardBrand      string         `json:"card_brand,omitempty"`
	CardLast4      string         `json:"card_last4,omitempty"`
	PaidAt         *time.Time     `json:"paid_at,omitempty"`
}

func toInvoiceResponse(inv *invoice.Invoice) invoiceResponse {
	return invoiceResponse{
		ID:             inv.ID,
		SubscriptionID: inv.SubscriptionID,
		Amount:         inv.Amount,
		DueDate:        inv.DueDate,
		Status:         inv.Status,
		PaidMethod:     string(inv.PaidMethod),
		PixQRImage:     inv.PixQRImage,
		PixCode:        inv.PixCode,
		PixExpiresAt:   inv.PixExpiresAt,
		CardBrand:      inv.CardBrand,
		CardLast4:      inv.CardLast4,
		PaidAt:         inv.PaidAt,
	}
}

type viewResponse struct {
	Invoice  invoiceResponse `json:"invoice"`
	NeedsPix bool            `json:"needs_pix"`
}

func toViewResponse(view *invoice.StatusView) viewResponse {
	return viewResponse{
		Invoice:  toInvoiceResponse(view.Invoice),
		NeedsPix: view.NeedsPix,
	}
}

type pixResponse struct {
	QRImage   string    `json:"qr_image"`
	Code      string    `json:"code"`
	ExpiresAt time.Time `json:"expires_at"`
}

func toPixResponse(charge *invoice.PixCharge) pixResponse {
	return pixResponse{
		QRImage:   charge.QRImage,
		Code:      charge.Code,
		ExpiresAt: charge.ExpiresAt,
	}
}

type cardIntentResponse struct {
	ClientSecret string `json:"client_secret"`
}

package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/voltara/merchant-api/internal/invoice"
)

// PixClient talks to the PIX payment gateway over HTTP.
type PixClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewPixClient(baseURL, apiKey string, timeout time.Duration) *PixClient {
	return &PixClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: timeout},
	}
}

type pixChargeRequest struct {
	InvoiceID string `json:"invoice_id"`
	Amount    int64  `json:"amount"`
}

type pixChargeResponse struct {
	QRImageURL    string    `json:"qr_image_url"`
	CopyPasteCode string    `json:"copy_paste_code"`
	ExpiresAt     time.Time `json:"expires_at"`
}

// CreateCharge asks the gateway for a PIX charge for the invoice. The
// gateway renders the QR image itself; only references come back.
func (c *PixClient) CreateCharge(ctx context.Context, invoiceID uuid.UUID, amount int64) (*invoice.PixCharge, error) {
	payload, err := json.Marshal(pixChargeRequest{InvoiceID: invoiceID.String(), Amount: amount})
	if err != nil {
		return nil, fmt.Errorf("encoding charge request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/pix/charges", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, errorFromResponse(resp)
	}

	var body pixChargeResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decoding charge response: %w", err)
	}

	return &invoice.PixCharge{
		QRImage:   body.QRImageURL,
		Code:      body.CopyPasteCode,
		ExpiresAt: body.ExpiresAt,
	}, nil
}

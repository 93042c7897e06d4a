package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// CardClient creates payment intents with the card gateway. The front
// end completes 3-D-Secure confirmation against the gateway directly
// using the returned client secret; card data never reaches this API.
type CardClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewCardClient(baseURL, apiKey string, timeout time.Duration) *CardClient {
	return &CardClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: timeout},
	}
}

type paymentIntentResponse struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
}

// CreateIntent registers a payment intent for the invoice amount and
// returns the intent reference plus the opaque client secret.
func (c *CardClient) CreateIntent(ctx context.Context, invoiceID uuid.UUID, amount int64) (ref, clientSecret string, err error) {
	form := url.Values{}
	form.Set("amount", strconv.FormatInt(amount, 10))
	form.Set("currency", "brl")
	form.Set("metadata[invoice_id]", invoiceID.String())

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/payment_intents", strings.NewReader(form.Encode()))
	if err != nil {
		return "", "", fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", "", fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", "", errorFromResponse(resp)
	}

	var body paymentIntentResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", "", fmt.Errorf("decoding intent response: %w", err)
	}

	return body.ID, body.ClientSecret, nil
}

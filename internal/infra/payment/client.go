// Package payment implements the hosted-checkout payment provider client and
// the verifier for its signed webhooks.
package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"evently/config"
	domainerrors "evently/internal/domain/errors"
	"evently/internal/domain/service"
	"evently/internal/errors"
)

const (
	checkoutSessionsPath = "/v1/checkout/sessions"
	requestTimeout       = 10 * time.Second
	maxErrorBodyBytes    = 1024
)

// client talks to the payment provider's REST API.
type client struct {
	httpClient *http.Client
	apiBase    string
	secretKey  string
	logger     *slog.Logger
}

// NewGateway creates the payment provider client from configuration.
func NewGateway(cfg *config.Config, logger *slog.Logger) (service.PaymentGateway, error) {
	if cfg.Payment == nil || strings.TrimSpace(cfg.Payment.SecretKey) == "" {
		return nil, domainerrors.ErrConfiguration.WrapMessage("payment secret key is required")
	}

	return &client{
		httpClient: &http.Client{Timeout: requestTimeout},
		apiBase:    strings.TrimRight(cfg.Payment.APIBase, "/"),
		secretKey:  cfg.Payment.SecretKey,
		logger:     logger,
	}, nil
}

// checkoutSessionRequest is the provider's session-creation payload. A session
// always carries exactly one line item here.
type checkoutSessionRequest struct {
	LineItems  []lineItem        `json:"line_items"`
	Mode       string            `json:"mode"`
	Metadata   map[string]string `json:"metadata"`
	SuccessURL string            `json:"success_url"`
	CancelURL  string            `json:"cancel_url"`
}

type lineItem struct {
	PriceData priceData `json:"price_data"`
	Quantity  int       `json:"quantity"`
}

type priceData struct {
	Currency    string      `json:"currency"`
	UnitAmount  int64       `json:"unit_amount"`
	ProductData productData `json:"product_data"`
}

type productData struct {
	Name string `json:"name"`
}

type checkoutSessionResponse struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// CreateCheckoutSession requests a hosted checkout session for a single line
// item and returns the session the buyer is redirected to.
func (c *client) CreateCheckoutSession(ctx context.Context, spec *service.CheckoutSessionSpec) (*service.CheckoutSession, error) {
	reqBody := checkoutSessionRequest{
		LineItems: []lineItem{{
			PriceData: priceData{
				Currency:   spec.Currency,
				UnitAmount: spec.UnitAmount,
				ProductData: productData{
					Name: spec.ProductName,
				},
			},
			Quantity: 1,
		}},
		Mode:       "payment",
		Metadata:   spec.Metadata,
		SuccessURL: spec.SuccessURL,
		CancelURL:  spec.CancelURL,
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal checkout session request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiBase+checkoutSessionsPath, bytes.NewReader(payload))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create checkout session request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.secretKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "checkout session request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		if c.logger != nil {
			c.logger.LogAttrs(ctx, slog.LevelError, "Payment provider rejected checkout session",
				slog.Int("statusCode", resp.StatusCode),
				slog.String("body", string(body)),
			)
		}

		return nil, errors.New(fmt.Sprintf("payment provider returned status %d", resp.StatusCode))
	}

	var session checkoutSessionResponse
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return nil, errors.Wrap(err, "failed to decode checkout session response")
	}
	if session.URL == "" {
		return nil, errors.New("payment provider returned a session without a redirect URL")
	}

	return &service.CheckoutSession{
		ID:  session.ID,
		URL: session.URL,
	}, nil
}

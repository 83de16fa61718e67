// Package cardpay talks to the hosted card processor: payment intents for
// charging clients and transfers for paying professionals out.
package cardpay

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/adensardi/sahal/pkg/clients"
)

const (
	IntentStatusRequiresConfirmation = "requires_confirmation"
	IntentStatusSucceeded            = "succeeded"
	IntentStatusFailed               = "failed"
)

// ErrProviderRejected wraps the processor's own message; handlers surface it
// verbatim so the client can decide whether to retry.
var ErrProviderRejected = errors.New("payment provider rejected the request")

type Intent struct {
	ID           string          `json:"id"`
	ClientSecret string          `json:"client_secret"`
	Amount       decimal.Decimal `json:"amount"`
	Currency     string          `json:"currency"`
	Status       string          `json:"status"`
}

type Gateway interface {
	CreateIntent(ctx context.Context, amount decimal.Decimal, bookingID int) (*Intent, error)
	ConfirmIntent(ctx context.Context, intentID string) (*Intent, error)
	Transfer(ctx context.Context, account string, amount decimal.Decimal) (string, error)
}

type Client struct {
	url     string
	key     string
	sandbox bool
	client  clients.HTTPClientI
}

func New(url, key string, sandbox bool, client clients.HTTPClientI) *Client {
	return &Client{
		url:     url,
		key:     key,
		sandbox: sandbox,
		client:  client,
	}
}

type providerError struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (c *Client) headers() http.Header {
	h := http.Header{}
	h.Set("Authorization", "Bearer "+c.key)
	return h
}

func (c *Client) post(ctx context.Context, path string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	statusCode, respBody, err := c.client.Post(ctx, c.url+path, c.headers(), body)
	if err != nil {
		return fmt.Errorf("card gateway request failed: %w", err)
	}
	if statusCode < http.StatusOK || statusCode >= http.StatusMultipleChoices {
		var perr providerError
		if err := json.Unmarshal(respBody, &perr); err == nil && perr.Error.Message != "" {
			return fmt.Errorf("%w: %s", ErrProviderRejected, perr.Error.Message)
		}
		return fmt.Errorf("%w: status %d", ErrProviderRejected, statusCode)
	}
	return json.Unmarshal(respBody, out)
}

func (c *Client) CreateIntent(ctx context.Context, amount decimal.Decimal, bookingID int) (*Intent, error) {
	if c.sandbox {
		id := "pi_" + uuid.NewString()
		zap.L().Info("sandbox payment intent created", zap.String("intentID", id), zap.Int("bookingID", bookingID))
		return &Intent{
			ID:           id,
			ClientSecret: id + "_secret_" + uuid.NewString(),
			Amount:       amount,
			Currency:     "DJF",
			Status:       IntentStatusRequiresConfirmation,
		}, nil
	}

	var intent Intent
	err := c.post(ctx, "/v1/payment_intents", map[string]any{
		"amount":   amount,
		"currency": "DJF",
		"metadata": map[string]any{"booking_id": bookingID},
	}, &intent)
	if err != nil {
		return nil, err
	}
	return &intent, nil
}

func (c *Client) ConfirmIntent(ctx context.Context, intentID string) (*Intent, error) {
	if c.sandbox {
		zap.L().Info("sandbox payment intent confirmed", zap.String("intentID", intentID))
		return &Intent{
			ID:       intentID,
			Currency: "DJF",
			Status:   IntentStatusSucceeded,
		}, nil
	}

	var intent Intent
	err := c.post(ctx, "/v1/payment_intents/"+intentID+"/confirm", map[string]any{}, &intent)
	if err != nil {
		return nil, err
	}
	return &intent, nil
}

func (c *Client) Transfer(ctx context.Context, account string, amount decimal.Decimal) (string, error) {
	if c.sandbox {
		id := "tr_" + uuid.NewString()
		zap.L().Info("sandbox transfer created", zap.String("transferID", id), zap.String("account", account))
		return id, nil
	}

	var resp struct {
		ID string `json:"id"`
	}
	err := c.post(ctx, "/v1/transfers", map[string]any{
		"destination": account,
		"amount":      amount,
		"currency":    "DJF",
	}, &resp)
	if err != nil {
		return "", err
	}
	return resp.ID, nil
}

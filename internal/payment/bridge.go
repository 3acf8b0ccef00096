package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

var ErrUnknownProvider = errors.New("unknown payment provider")

// Request is the JSON body the bridge functions accept.
type Request struct {
	Action   string  `json:"action"` // create, capture or refund
	OrderID  int     `json:"orderId"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// Response is what a bridge function returns.
type Response struct {
	Status string `json:"status,omitempty"`
	Error  string `json:"error,omitempty"`
}

// Bridge proxies payment actions to the per-provider serverless
// endpoints. It is deliberately decoupled from order creation: a bridge
// call never runs inside the order transaction.
type Bridge struct {
	endpoints map[string]string
	client    *http.Client
}

func NewBridge(endpoints map[string]string) *Bridge {
	return &Bridge{
		endpoints: endpoints,
		client:    &http.Client{Timeout: 15 * time.Second},
	}
}

// Providers lists the configured provider names.
func (b *Bridge) Providers() []string {
	out := make([]string, 0, len(b.endpoints))
	for name := range b.endpoints {
		out = append(out, name)
	}
	return out
}

// Send posts the request to the provider's endpoint and decodes the result.
func (b *Bridge) Send(ctx context.Context, provider string, req Request) (Response, error) {
	endpoint, ok := b.endpoints[provider]
	if !ok || endpoint == "" {
		return Response{}, ErrUnknownProvider
	}

	body, err := json.Marshal(req)
	if err != nil {
		return Response{}, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return Response{}, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	res, err := b.client.Do(httpReq)
	if err != nil {
		return Response{}, fmt.Errorf("payment bridge %s: %w", provider, err)
	}
	defer res.Body.Close()

	var out Response
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return Response{}, fmt.Errorf("payment bridge %s: bad response: %w", provider, err)
	}
	if out.Error != "" {
		return out, fmt.Errorf("payment bridge %s: %s", provider, out.Error)
	}
	return out, nil
}

package payment

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestBridgeSend(t *testing.T) {
	var got Request
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		json.Unmarshal(body, &got)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"captured"}`))
	}))
	defer server.Close()

	b := NewBridge(map[string]string{"stripe": server.URL})
	res, err := b.Send(context.Background(), "stripe", Request{Action: "capture", OrderID: 42, Amount: 65.97, Currency: "USD"})
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if res.Status != "captured" {
		t.Errorf("status = %q", res.Status)
	}
	if got.OrderID != 42 || got.Action != "capture" {
		t.Errorf("request not forwarded: %+v", got)
	}
}

func TestBridgeErrorResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error":"card declined"}`))
	}))
	defer server.Close()

	b := NewBridge(map[string]string{"stripe": server.URL})
	res, err := b.Send(context.Background(), "stripe", Request{Action: "capture", OrderID: 1})
	if err == nil {
		t.Fatal("expected error")
	}
	if res.Error != "card declined" {
		t.Errorf("error = %q", res.Error)
	}
}

func TestBridgeUnknownProvider(t *testing.T) {
	b := NewBridge(map[string]string{"stripe": "http://localhost:1"})
	if _, err := b.Send(context.Background(), "paypal", Request{}); err != ErrUnknownProvider {
		t.Fatalf("expected ErrUnknownProvider, got %v", err)
	}
	// providers with an empty endpoint are treated as unconfigured
	b = NewBridge(map[string]string{"paypal": ""})
	if _, err := b.Send(context.Background(), "paypal", Request{}); err != ErrUnknownProvider {
		t.Fatalf("expected ErrUnknownProvider for blank endpoint, got %v", err)
	}
}

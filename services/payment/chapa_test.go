package payment

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestChapaClient_Initiate(t *testing.T) {
	var gotAuth string
	var gotBody InitiateRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/v1/transaction/initialize" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Fatalf("failed to decode request body: %v", err)
		}
		json.NewEncoder(w).Encode(GatewayResponse{
			Status:  "success",
			Message: "Hosted Link",
			Data:    &GatewayData{TxRef: "TX-1", CheckoutURL: "https://checkout.example/TX-1"},
		})
	}))
	defer server.Close()

	client := NewChapaClient(server.URL, "sk_test_secret", 5*time.Second, zap.NewNop())
	resp, err := client.Initiate(context.Background(), InitiateRequest{
		Amount:      50,
		Currency:    "ETB",
		Email:       "a@b.com",
		TxRef:       "BR-1",
		CallbackURL: "https://example.com/verify",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if gotAuth != "Bearer sk_test_secret" {
		t.Errorf("expected bearer credential, got %q", gotAuth)
	}
	if gotBody.TxRef != "BR-1" || gotBody.Currency != "ETB" || gotBody.Amount != 50 {
		t.Errorf("unexpected request body: %+v", gotBody)
	}
	if resp.Status != "success" || resp.Data == nil || resp.Data.TxRef != "TX-1" {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestChapaClient_Verify(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/v1/transaction/verify/TX-1" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		json.NewEncoder(w).Encode(GatewayResponse{
			Status: "success",
			Data:   &GatewayData{TxRef: "TX-1", Status: "success"},
		})
	}))
	defer server.Close()

	client := NewChapaClient(server.URL, "sk_test_secret", 5*time.Second, zap.NewNop())
	resp, err := client.Verify(context.Background(), "TX-1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if resp.Data == nil || resp.Data.Status != "success" {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestChapaClient_NetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	client := NewChapaClient(server.URL, "sk_test_secret", time.Second, zap.NewNop())
	_, err := client.Verify(context.Background(), "TX-1")
	if !errors.Is(err, ErrGatewayUnavailable) {
		t.Fatalf("expected ErrGatewayUnavailable, got %v", err)
	}
}

func TestChapaClient_MalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>gateway exploded</html>"))
	}))
	defer server.Close()

	client := NewChapaClient(server.URL, "sk_test_secret", time.Second, zap.NewNop())
	_, err := client.Verify(context.Background(), "TX-1")
	if !errors.Is(err, ErrGatewayProtocol) {
		t.Fatalf("expected ErrGatewayProtocol, got %v", err)
	}
}

func TestChapaClient_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	client := NewChapaClient(server.URL, "sk_test_secret", 50*time.Millisecond, zap.NewNop())
	_, err := client.Verify(context.Background(), "TX-1")
	if !errors.Is(err, ErrGatewayUnavailable) {
		t.Fatalf("expected ErrGatewayUnavailable on timeout, got %v", err)
	}
}

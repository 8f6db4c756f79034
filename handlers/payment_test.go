package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	paymentRepo "voyago/database/repository/payment"
	"voyago/models"
	"voyago/services/payment"

	"github.com/gin-gonic/gin"
)

// ============================================
// Mocks
// ============================================

type stubPaymentService struct {
	initiateResp *payment.GatewayResponse
	initiateErr  error
	verifyResp   *payment.GatewayResponse
	verifyPay    *models.Payment
	verifyErr    error
}

func (s *stubPaymentService) Initiate(ctx context.Context, input payment.InitiateInput) (*payment.GatewayResponse, *models.Payment, error) {
	return s.initiateResp, nil, s.initiateErr
}

func (s *stubPaymentService) Verify(ctx context.Context, txRef string) (*payment.GatewayResponse, *models.Payment, error) {
	return s.verifyResp, s.verifyPay, s.verifyErr
}

func newPaymentRouter(svc payment.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewPaymentHandler(svc)
	r := gin.New()
	r.POST("/initiate-payment/", h.InitiatePayment)
	r.GET("/verify-payment/:tx_ref", h.VerifyPayment)
	return r
}

func postInitiate(router *gin.Engine, body gin.H) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(body)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/initiate-payment/", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

// ============================================
// Tests
// ============================================

func TestInitiatePayment_Success(t *testing.T) {
	svc := &stubPaymentService{
		initiateResp: &payment.GatewayResponse{
			Status:  "success",
			Message: "Hosted Link",
			Data:    &payment.GatewayData{TxRef: "TX-1", CheckoutURL: "https://checkout.example/tx-1"},
		},
	}
	router := newPaymentRouter(svc)

	w := postInitiate(router, gin.H{
		"booking_reference": "BR-1",
		"amount":            100.0,
		"email":             "jane@example.com",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp payment.GatewayResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Data == nil || resp.Data.CheckoutURL == "" {
		t.Error("expected checkout url in the relayed payload")
	}
}

func TestInitiatePayment_MissingFields(t *testing.T) {
	router := newPaymentRouter(&stubPaymentService{})

	w := postInitiate(router, gin.H{"amount": 100.0})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestInitiatePayment_GatewayDeclined(t *testing.T) {
	svc := &stubPaymentService{
		initiateResp: &payment.GatewayResponse{Status: "failed", Message: "invalid currency"},
		initiateErr:  payment.ErrGatewayDeclined,
	}
	router := newPaymentRouter(svc)

	w := postInitiate(router, gin.H{
		"booking_reference": "BR-1",
		"amount":            100.0,
		"email":             "jane@example.com",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
	var resp payment.GatewayResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Message != "invalid currency" {
		t.Errorf("expected the gateway payload to be relayed, got %+v", resp)
	}
}

func TestInitiatePayment_GatewayUnavailable(t *testing.T) {
	svc := &stubPaymentService{initiateErr: payment.ErrGatewayUnavailable}
	router := newPaymentRouter(svc)

	w := postInitiate(router, gin.H{
		"booking_reference": "BR-1",
		"amount":            100.0,
		"email":             "jane@example.com",
	})
	if w.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d: %s", w.Code, w.Body.String())
	}
}

func TestVerifyPayment_NotFound(t *testing.T) {
	svc := &stubPaymentService{
		verifyErr: fmt.Errorf("payment TX-404: %w", paymentRepo.ErrNotFound),
	}
	router := newPaymentRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/verify-payment/TX-404", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
	}
}

func TestVerifyPayment_AlreadyTerminal(t *testing.T) {
	svc := &stubPaymentService{
		verifyPay: &models.Payment{ID: "P1", TransactionID: "TX-1", Status: models.PaymentCompleted},
		verifyErr: payment.ErrAlreadyTerminal,
	}
	router := newPaymentRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/verify-payment/TX-1", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		Status  string          `json:"status"`
		Message string          `json:"message"`
		Data    *models.Payment `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Data == nil || resp.Data.Status != models.PaymentCompleted {
		t.Errorf("expected stored payment in response, got %+v", resp)
	}
}

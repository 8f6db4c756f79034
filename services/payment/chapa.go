package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// GatewayData is the nested payload of a gateway response. TxRef is the
// correlation token returned at initiation; Status is the nested
// transaction status reported at verification.
type GatewayData struct {
	TxRef       string `json:"tx_ref,omitempty"`
	Status      string `json:"status,omitempty"`
	CheckoutURL string `json:"checkout_url,omitempty"`
}

// GatewayResponse is the raw payload the gateway returns for both the
// initialize and verify calls.
type GatewayResponse struct {
	Status  string       `json:"status"`
	Message string       `json:"message"`
	Data    *GatewayData `json:"data,omitempty"`
}

// InitiateRequest is the wire request for a payment initiation.
type InitiateRequest struct {
	Amount      float64 `json:"amount"`
	Currency    string  `json:"currency"`
	Email       string  `json:"email"`
	TxRef       string  `json:"tx_ref"`
	CallbackURL string  `json:"callback_url"`
}

// Gateway bridges internal Payment records to the external payment API.
type Gateway interface {
	Initiate(ctx context.Context, req InitiateRequest) (*GatewayResponse, error)
	Verify(ctx context.Context, txRef string) (*GatewayResponse, error)
}

// ChapaClient talks to a Chapa-style transaction API using a bearer
// credential and an explicit request timeout.
type ChapaClient struct {
	baseURL    string
	secretKey  string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewChapaClient builds a gateway client for the given API base URL.
func NewChapaClient(baseURL, secretKey string, timeout time.Duration, logger *zap.Logger) *ChapaClient {
	return &ChapaClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		secretKey:  secretKey,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// Initiate posts a transaction-initialize request to the gateway and
// returns its raw payload.
func (c *ChapaClient) Initiate(ctx context.Context, req InitiateRequest) (*GatewayResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal initiate request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/transaction/initialize", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build initiate request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.secretKey)
	httpReq.Header.Set("Content-Type", "application/json")

	return c.do(httpReq)
}

// Verify issues a verification request keyed by the transaction reference
// and returns the gateway's raw payload.
func (c *ChapaClient) Verify(ctx context.Context, txRef string) (*GatewayResponse, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/v1/transaction/verify/"+txRef, nil)
	if err != nil {
		return nil, fmt.Errorf("build verify request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.secretKey)

	return c.do(httpReq)
}

func (c *ChapaClient) do(req *http.Request) (*GatewayResponse, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("payment gateway request failed",
			zap.String("url", req.URL.String()), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrGatewayUnavailable, err)
	}
	defer resp.Body.Close()

	var payload GatewayResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		c.logger.Error("payment gateway returned undecodable body",
			zap.String("url", req.URL.String()),
			zap.Int("http_status", resp.StatusCode), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrGatewayProtocol, err)
	}

	// The gateway reports outcomes in the payload status, also on non-2xx
	// responses. The payload is returned either way so callers can relay it.
	return &payload, nil
}

package handlers

import (
	"errors"
	"net/http"

	paymentRepo "voyago/database/repository/payment"
	"voyago/services/payment"
	"voyago/utils"

	"github.com/gin-gonic/gin"
)

// PaymentHandler exposes the payment initiation and verification endpoints.
type PaymentHandler struct {
	Svc payment.Service
}

// NewPaymentHandler wires a PaymentHandler.
func NewPaymentHandler(svc payment.Service) *PaymentHandler {
	return &PaymentHandler{Svc: svc}
}

type initiatePaymentInput struct {
	BookingReference string  `json:"booking_reference" binding:"required"`
	Amount           float64 `json:"amount" binding:"required,gt=0"`
	Email            string  `json:"email" binding:"required,email"`
}

// InitiatePayment handles POST /initiate-payment/. The gateway payload is
// relayed to the caller: 200 on gateway success, 400 on gateway decline.
func (h *PaymentHandler) InitiatePayment(c *gin.Context) {
	var input initiatePaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	resp, _, err := h.Svc.Initiate(c.Request.Context(), payment.InitiateInput{
		BookingReference: input.BookingReference,
		Amount:           input.Amount,
		Email:            input.Email,
	})
	if err != nil {
		switch {
		case errors.Is(err, payment.ErrGatewayDeclined):
			c.JSON(http.StatusBadRequest, resp)
		case errors.Is(err, payment.ErrGatewayUnavailable), errors.Is(err, payment.ErrGatewayProtocol):
			utils.JSONError(c, http.StatusBadGateway, "payment gateway error", err.Error())
		default:
			utils.JSONError(c, http.StatusInternalServerError, "failed to initiate payment", err.Error())
		}
		return
	}
	c.JSON(http.StatusOK, resp)
}

// VerifyPayment handles GET /verify-payment/:tx_ref. An unknown reference
// is a 404 with no record touched; a payment already in a terminal state
// returns its stored status without consulting the gateway again.
func (h *PaymentHandler) VerifyPayment(c *gin.Context) {
	txRef := c.Param("tx_ref")

	resp, p, err := h.Svc.Verify(c.Request.Context(), txRef)
	if err != nil {
		switch {
		case errors.Is(err, paymentRepo.ErrNotFound):
			utils.JSONError(c, http.StatusNotFound, "payment not found", err.Error())
		case errors.Is(err, payment.ErrAlreadyTerminal):
			c.JSON(http.StatusOK, gin.H{
				"status":  "success",
				"message": "payment already verified",
				"data":    p,
			})
		case errors.Is(err, payment.ErrGatewayUnavailable), errors.Is(err, payment.ErrGatewayProtocol):
			utils.JSONError(c, http.StatusBadGateway, "payment gateway error", err.Error())
		default:
			utils.JSONError(c, http.StatusInternalServerError, "failed to verify payment", err.Error())
		}
		return
	}
	c.JSON(http.StatusOK, resp)
}

package payment

import (
	"context"
	"fmt"

	paymentRepo "voyago/database/repository/payment"
	"voyago/models"
	"voyago/tasks"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// InitiateInput carries the caller-supplied fields for a payment initiation.
type InitiateInput struct {
	BookingReference string
	Amount           float64
	Email            string
}

// Service orchestrates payment initiation and verification against the
// gateway and the payment store.
type Service interface {
	Initiate(ctx context.Context, input InitiateInput) (*GatewayResponse, *models.Payment, error)
	Verify(ctx context.Context, txRef string) (*GatewayResponse, *models.Payment, error)
}

// DefaultService is the production Service implementation.
type DefaultService struct {
	Gateway     Gateway
	Payments    paymentRepo.PaymentRepository
	Tasks       tasks.Submitter
	Currency    string
	CallbackURL string
	Logger      *zap.Logger
}

// Initiate builds the gateway request with the configured currency and
// callback URL. On gateway-reported success it creates a Payment in
// Pending state keyed by the returned transaction reference; on
// gateway-reported failure it creates nothing and surfaces
// ErrGatewayDeclined alongside the raw payload.
func (s *DefaultService) Initiate(ctx context.Context, input InitiateInput) (*GatewayResponse, *models.Payment, error) {
	resp, err := s.Gateway.Initiate(ctx, InitiateRequest{
		Amount:      input.Amount,
		Currency:    s.Currency,
		Email:       input.Email,
		TxRef:       input.BookingReference,
		CallbackURL: s.CallbackURL,
	})
	if err != nil {
		return nil, nil, err
	}

	if resp.Status != "success" {
		s.Logger.Warn("payment initiation declined by gateway",
			zap.String("booking_reference", input.BookingReference),
			zap.String("gateway_message", resp.Message))
		return resp, nil, ErrGatewayDeclined
	}

	if resp.Data == nil || resp.Data.TxRef == "" {
		return resp, nil, fmt.Errorf("%w: success response without tx_ref", ErrGatewayProtocol)
	}

	payment := &models.Payment{
		ID:               uuid.New().String(),
		BookingReference: input.BookingReference,
		Amount:           input.Amount,
		Email:            input.Email,
		TransactionID:    resp.Data.TxRef,
		Status:           models.PaymentPending,
	}
	if err := s.Payments.Create(payment); err != nil {
		return resp, nil, fmt.Errorf("persist payment: %w", err)
	}

	s.Logger.Info("payment initiated",
		zap.String("payment_id", payment.ID),
		zap.String("transaction_id", payment.TransactionID),
		zap.Float64("amount", payment.Amount))
	return resp, payment, nil
}

// Verify looks up the Payment by transaction reference before trusting any
// gateway response, so an unknown reference can never update an unrelated
// record. A payment already in a terminal state is returned as-is with
// ErrAlreadyTerminal; the gateway is not consulted and nothing is
// re-enqueued. Otherwise the gateway verdict moves the payment to
// Completed or Failed through a conditional update, and the confirmation
// task is enqueued only by the call that actually performed the
// Pending -> Completed transition.
func (s *DefaultService) Verify(ctx context.Context, txRef string) (*GatewayResponse, *models.Payment, error) {
	payment, err := s.Payments.GetByTransactionID(txRef)
	if err != nil {
		return nil, nil, err
	}

	if payment.Terminal() {
		s.Logger.Info("verify on terminal payment, skipping",
			zap.String("transaction_id", txRef),
			zap.String("status", payment.Status))
		return nil, payment, ErrAlreadyTerminal
	}

	resp, err := s.Gateway.Verify(ctx, txRef)
	if err != nil {
		return nil, payment, err
	}

	if resp.Status == "success" && resp.Data != nil && resp.Data.Status == "success" {
		completed, err := s.Payments.CompleteIfPending(txRef)
		if err != nil {
			return resp, payment, fmt.Errorf("complete payment %s: %w", txRef, err)
		}
		if completed {
			payment.Status = models.PaymentCompleted
			s.enqueueConfirmation(ctx, payment)
		} else {
			// Lost the race against a concurrent verify; the winner
			// already enqueued the confirmation.
			if refreshed, err := s.Payments.GetByTransactionID(txRef); err == nil {
				payment = refreshed
			}
		}
		return resp, payment, nil
	}

	failed, err := s.Payments.FailIfPending(txRef)
	if err != nil {
		return resp, payment, fmt.Errorf("fail payment %s: %w", txRef, err)
	}
	if failed {
		payment.Status = models.PaymentFailed
	} else if refreshed, err := s.Payments.GetByTransactionID(txRef); err == nil {
		payment = refreshed
	}
	s.Logger.Warn("payment verification reported failure",
		zap.String("transaction_id", txRef),
		zap.String("gateway_message", resp.Message))
	return resp, payment, nil
}

func (s *DefaultService) enqueueConfirmation(ctx context.Context, payment *models.Payment) {
	task, err := tasks.NewPaymentConfirmationTask(payment.ID)
	if err != nil {
		s.Logger.Error("failed to build payment confirmation task",
			zap.String("payment_id", payment.ID), zap.Error(err))
		return
	}
	if err := s.Tasks.Submit(ctx, task); err != nil {
		s.Logger.Error("failed to enqueue payment confirmation",
			zap.String("payment_id", payment.ID), zap.Error(err))
		return
	}
	s.Logger.Info("payment completed, confirmation task enqueued",
		zap.String("payment_id", payment.ID),
		zap.String("transaction_id", payment.TransactionID))
}

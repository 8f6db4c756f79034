package notification

import (
	"context"
	"fmt"

	bookingRepo "voyago/database/repository/booking"
	listingRepo "voyago/database/repository/listing"
	paymentRepo "voyago/database/repository/payment"

	"go.uber.org/zap"
)

// Service formats and sends transactional emails for entities referenced
// by id. Operations run as deferred work items pulled from the task queue,
// independent of the HTTP request that triggered them.
type Service interface {
	SendBookingConfirmation(ctx context.Context, bookingID string) error
	SendPaymentConfirmation(ctx context.Context, paymentID string) error
}

// Dispatcher is the production Service implementation.
type Dispatcher struct {
	Bookings bookingRepo.BookingRepository
	Listings listingRepo.ListingRepository
	Payments paymentRepo.PaymentRepository
	Mailer   Mailer
	Logger   *zap.Logger
}

// NewDispatcher wires a Dispatcher.
func NewDispatcher(
	bookings bookingRepo.BookingRepository,
	listings listingRepo.ListingRepository,
	payments paymentRepo.PaymentRepository,
	mailer Mailer,
	logger *zap.Logger,
) *Dispatcher {
	return &Dispatcher{
		Bookings: bookings,
		Listings: listings,
		Payments: payments,
		Mailer:   mailer,
		Logger:   logger,
	}
}

// SendBookingConfirmation fetches the booking and its listing, renders the
// confirmation email and sends it to the booking's email address. The
// listing price is read live at send time. A sent-marker on the booking
// makes redelivered tasks a no-op.
func (d *Dispatcher) SendBookingConfirmation(ctx context.Context, bookingID string) error {
	booking, err := d.Bookings.GetByID(bookingID)
	if err != nil {
		d.Logger.Warn("booking confirmation: booking lookup failed",
			zap.String("booking_id", bookingID), zap.Error(err))
		return err
	}

	if booking.ConfirmationSent {
		d.Logger.Info("booking confirmation already sent, skipping",
			zap.String("booking_id", bookingID))
		return nil
	}

	listing, err := d.Listings.GetByID(booking.ListingID)
	if err != nil {
		d.Logger.Warn("booking confirmation: listing lookup failed",
			zap.String("booking_id", bookingID),
			zap.String("listing_id", booking.ListingID), zap.Error(err))
		return err
	}

	msg, err := renderBookingConfirmation(booking, listing)
	if err != nil {
		return fmt.Errorf("render booking confirmation %s: %w", bookingID, err)
	}

	if err := d.Mailer.Send(ctx, msg); err != nil {
		d.Logger.Error("booking confirmation: send failed",
			zap.String("booking_id", bookingID),
			zap.String("to", booking.UserEmail), zap.Error(err))
		return fmt.Errorf("%w: %v", ErrTransport, err)
	}

	if _, err := d.Bookings.MarkConfirmationSent(booking.ID); err != nil {
		d.Logger.Warn("booking confirmation: failed to record sent marker",
			zap.String("booking_id", bookingID), zap.Error(err))
	}

	d.Logger.Info("booking confirmation email sent",
		zap.String("booking_id", bookingID), zap.String("to", booking.UserEmail))
	return nil
}

// SendPaymentConfirmation fetches the payment, resolves the recipient from
// the email captured at initiation and sends the confirmation. A payment
// without a recipient fails with ErrMissingRecipient instead of falling
// back to a placeholder address.
func (d *Dispatcher) SendPaymentConfirmation(ctx context.Context, paymentID string) error {
	payment, err := d.Payments.GetByID(paymentID)
	if err != nil {
		d.Logger.Warn("payment confirmation: payment lookup failed",
			zap.String("payment_id", paymentID), zap.Error(err))
		return err
	}

	if payment.Email == "" {
		d.Logger.Error("payment confirmation: no recipient email",
			zap.String("payment_id", paymentID),
			zap.String("booking_reference", payment.BookingReference))
		return fmt.Errorf("payment %s: %w", paymentID, ErrMissingRecipient)
	}

	if payment.ConfirmationSent {
		d.Logger.Info("payment confirmation already sent, skipping",
			zap.String("payment_id", paymentID))
		return nil
	}

	msg, err := renderPaymentConfirmation(payment)
	if err != nil {
		return fmt.Errorf("render payment confirmation %s: %w", paymentID, err)
	}

	if err := d.Mailer.Send(ctx, msg); err != nil {
		d.Logger.Error("payment confirmation: send failed",
			zap.String("payment_id", paymentID),
			zap.String("to", payment.Email), zap.Error(err))
		return fmt.Errorf("%w: %v", ErrTransport, err)
	}

	if _, err := d.Payments.MarkConfirmationSent(payment.ID); err != nil {
		d.Logger.Warn("payment confirmation: failed to record sent marker",
			zap.String("payment_id", paymentID), zap.Error(err))
	}

	d.Logger.Info("payment confirmation email sent",
		zap.String("payment_id", paymentID), zap.String("to", payment.Email))
	return nil
}

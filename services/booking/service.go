package booking

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "voyago/database/repository/booking"
	listingRepo "voyago/database/repository/listing"
	"voyago/models"
	"voyago/tasks"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service handles booking lifecycle operations.
type Service interface {
	Create(ctx context.Context, input models.BookingInput) (*models.Booking, error)
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	List(ctx context.Context) ([]models.Booking, error)
	Delete(ctx context.Context, id string) error
}

// DefaultService is the production Service implementation.
type DefaultService struct {
	Bookings bookingRepo.BookingRepository
	Listings listingRepo.ListingRepository
	Tasks    tasks.Submitter
	Logger   *zap.Logger
}

// Create validates the date range and the listing reference, persists the
// booking and enqueues exactly one booking-confirmation task carrying the
// new booking's id. The API response does not wait for the email.
func (s *DefaultService) Create(ctx context.Context, input models.BookingInput) (*models.Booking, error) {
	if err := ValidateDates(input.CheckIn, input.CheckOut); err != nil {
		return nil, err
	}

	if _, err := s.Listings.GetByID(input.ListingID); err != nil {
		if errors.Is(err, listingRepo.ErrNotFound) {
			return nil, NewValidationError("listing_id", "listing does not exist")
		}
		return nil, fmt.Errorf("check listing %s: %w", input.ListingID, err)
	}

	booking := &models.Booking{
		ID:        uuid.New().String(),
		ListingID: input.ListingID,
		UserName:  input.UserName,
		UserEmail: input.UserEmail,
		CheckIn:   input.CheckIn,
		CheckOut:  input.CheckOut,
	}
	if err := s.Bookings.Create(booking); err != nil {
		return nil, fmt.Errorf("persist booking: %w", err)
	}

	task, err := tasks.NewBookingConfirmationTask(booking.ID)
	if err != nil {
		s.Logger.Error("failed to build booking confirmation task",
			zap.String("booking_id", booking.ID), zap.Error(err))
		return booking, nil
	}
	if err := s.Tasks.Submit(ctx, task); err != nil {
		// The booking exists; the confirmation failure is observable only
		// in logs, matching the async failure model.
		s.Logger.Error("failed to enqueue booking confirmation",
			zap.String("booking_id", booking.ID), zap.Error(err))
		return booking, nil
	}

	s.Logger.Info("booking created, confirmation task enqueued",
		zap.String("booking_id", booking.ID),
		zap.String("listing_id", booking.ListingID))
	return booking, nil
}

// GetByID fetches a single booking.
func (s *DefaultService) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	return s.Bookings.GetByID(id)
}

// List fetches all bookings, newest first.
func (s *DefaultService) List(ctx context.Context) ([]models.Booking, error) {
	return s.Bookings.GetAll()
}

// Delete removes a booking.
func (s *DefaultService) Delete(ctx context.Context, id string) error {
	return s.Bookings.Delete(id)
}

package bookingRepo

import (
	"errors"

	"voyago/models"
)

// ErrNotFound is returned when no booking matches the given id.
var ErrNotFound = errors.New("booking not found")

// BookingRepository abstracts persistence for bookings.
type BookingRepository interface {
	Create(booking *models.Booking) error
	GetByID(id string) (*models.Booking, error)
	GetAll() ([]models.Booking, error)
	Delete(id string) error

	// MarkConfirmationSent flips the confirmation-sent marker and reports
	// whether this call performed the flip. Redelivered notification tasks
	// observe false and skip the duplicate send.
	MarkConfirmationSent(id string) (bool, error)
}

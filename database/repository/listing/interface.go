package listingRepo

import (
	"errors"

	"voyago/models"
)

// ErrNotFound is returned when no listing matches the given id.
var ErrNotFound = errors.New("listing not found")

// ListingRepository abstracts persistence for listings.
type ListingRepository interface {
	Create(listing *models.Listing) error
	GetByID(id string) (*models.Listing, error)
	GetAll() ([]models.Listing, error)
	Update(listing *models.Listing) error
	Delete(id string) error
}

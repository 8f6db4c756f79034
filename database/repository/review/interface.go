package reviewRepo

import "voyago/models"

// ReviewRepository abstracts persistence for listing reviews.
type ReviewRepository interface {
	Create(review *models.Review) error
	ListByListing(listingID string) ([]models.Review, error)
}

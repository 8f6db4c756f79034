package models

import "time"

// Listing represents a property available for booking.
type Listing struct {
	ID            string    `bson:"id" json:"id"`
	Title         string    `bson:"title" json:"title"`
	Description   string    `bson:"description" json:"description"`
	Location      string    `bson:"location" json:"location"`
	PricePerNight float64   `bson:"price_per_night" json:"price_per_night"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
}

// ListingDetail is a listing enriched with its reviews and the computed
// average rating (nil when the listing has no reviews yet).
type ListingDetail struct {
	Listing
	Reviews       []Review `json:"reviews"`
	AverageRating *float64 `json:"average_rating"`
}

// ListingInput carries the fields a caller submits to create or update a
// listing.
type ListingInput struct {
	Title         string  `json:"title" binding:"required"`
	Description   string  `json:"description"`
	Location      string  `json:"location" binding:"required"`
	PricePerNight float64 `json:"price_per_night" binding:"required,gt=0"`
}

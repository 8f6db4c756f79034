package models

import "time"

// Booking represents a reservation of a listing for a date range.
// CheckIn and CheckOut are dates in "YYYY-MM-DD" format; equal dates are
// permitted. UserName and UserEmail are denormalized from the caller
// rather than linked to a User record.
type Booking struct {
	ID               string    `bson:"id" json:"id"`
	ListingID        string    `bson:"listing_id" json:"listing_id"`
	UserName         string    `bson:"user_name" json:"user_name"`
	UserEmail        string    `bson:"user_email" json:"user_email"`
	CheckIn          string    `bson:"check_in" json:"check_in"`
	CheckOut         string    `bson:"check_out" json:"check_out"`
	ConfirmationSent bool      `bson:"confirmation_sent" json:"-"`
	CreatedAt        time.Time `bson:"created_at" json:"created_at"`
}

// BookingInput carries the fields a caller submits to create a booking.
type BookingInput struct {
	ListingID string `json:"listing_id" binding:"required"`
	UserName  string `json:"user_name" binding:"required"`
	UserEmail string `json:"user_email" binding:"required,email"`
	CheckIn   string `json:"check_in" binding:"required"`
	CheckOut  string `json:"check_out" binding:"required"`
}

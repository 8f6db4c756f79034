package models

import "time"

// Review is a user rating of a listing. Rating is bounded 1-5 and the
// comment is capped at 500 characters.
type Review struct {
	ID        string    `bson:"id" json:"id"`
	ListingID string    `bson:"listing_id" json:"listing_id"`
	UserName  string    `bson:"user_name" json:"user_name"`
	Rating    int       `bson:"rating" json:"rating"`
	Comment   string    `bson:"comment" json:"comment"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// ReviewInput carries the fields a caller submits to create a review.
type ReviewInput struct {
	UserName string `json:"user_name" binding:"required"`
	Rating   int    `json:"rating" binding:"required"`
	Comment  string `json:"comment"`
}

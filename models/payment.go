package models

import "time"

// Payment lifecycle states. A payment is created Pending and moves to
// exactly one terminal state.
const (
	PaymentPending   = "Pending"
	PaymentCompleted = "Completed"
	PaymentFailed    = "Failed"
)

// Payment records a gateway transaction. BookingReference is a free-text
// correlation key supplied by the caller, not a foreign key to Booking.
// Email is the payer address captured at initiation so the confirmation
// recipient is always resolvable.
type Payment struct {
	ID               string    `bson:"id" json:"id"`
	BookingReference string    `bson:"booking_reference" json:"booking_reference"`
	Amount           float64   `bson:"amount" json:"amount"`
	Email            string    `bson:"email" json:"email"`
	TransactionID    string    `bson:"transaction_id" json:"transaction_id"`
	Status           string    `bson:"status" json:"status"`
	ConfirmationSent bool      `bson:"confirmation_sent" json:"-"`
	CreatedAt        time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt        time.Time `bson:"updated_at" json:"updated_at"`
}

// Terminal reports whether the payment has reached a final state.
func (p *Payment) Terminal() bool {
	return p.Status == PaymentCompleted || p.Status == PaymentFailed
}

package models

// BookingConfirmationPayload is the work-item payload for a deferred
// booking-confirmation email. Tasks carry only the entity id; the worker
// re-reads the entity from the store.
type BookingConfirmationPayload struct {
	BookingID string `json:"booking_id"`
}

// PaymentConfirmationPayload is the work-item payload for a deferred
// payment-confirmation email.
type PaymentConfirmationPayload struct {
	PaymentID string `json:"payment_id"`
}
